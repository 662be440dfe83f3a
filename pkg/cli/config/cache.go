package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/repository/filesystem"
)

// Cache holds configuration for the local roster cache
type Cache struct {
	dataDir    string
	rosterFile string
}

// Flags returns CLI flags for cache configuration
func (c *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "data-dir",
			Usage:       "Directory holding the cached roster files",
			Value:       ".",
			Sources:     cli.EnvVars("DUTYBOARD_DATA_DIR"),
			Destination: &c.dataDir,
		},
		&cli.StringFlag{
			Name:        "cache",
			Usage:       "Override the roster cache file name within the data directory",
			Sources:     cli.EnvVars("DUTYBOARD_CACHE_FILE"),
			Destination: &c.rosterFile,
		},
	}
}

// LogValue implements slog.LogValuer
func (c Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("data_dir", c.dataDir),
		slog.String("roster_file", c.rosterFile),
	)
}

// Configure creates the filesystem-backed roster store
func (c *Cache) Configure(extra ...filesystem.Option) (interfaces.RosterStore, error) {
	var opts []filesystem.Option
	if c.rosterFile != "" {
		opts = append(opts, filesystem.WithRosterFile(c.rosterFile))
	}
	opts = append(opts, extra...)

	store, err := filesystem.New(c.dataDir, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open cache directory", goerr.V("dir", c.dataDir))
	}

	return store, nil
}
