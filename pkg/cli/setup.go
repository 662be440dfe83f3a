package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/cli/config"
	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/repository/filesystem"
	"github.com/globalnoc/dutyboard/pkg/usecase"
)

// apiSetup bundles the flags every API-backed command shares: the Dialpad
// client, the local cache and the optional TOML config file.
type apiSetup struct {
	configPath string
	dialpadCfg config.Dialpad
	cacheCfg   config.Cache
}

func (s *apiSetup) flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to optional TOML configuration file",
			Sources:     cli.EnvVars("DUTYBOARD_CONFIG"),
			Destination: &s.configPath,
		},
	}
	flags = append(flags, s.dialpadCfg.Flags()...)
	flags = append(flags, s.cacheCfg.Flags()...)
	return flags
}

func (s *apiSetup) applyConfigFile() error {
	if s.configPath == "" {
		return nil
	}
	appCfg, err := config.LoadAppConfiguration(s.configPath)
	if err != nil {
		return err
	}
	appCfg.Apply(&s.dialpadCfg, &s.cacheCfg)
	return nil
}

// build wires the full stack: Dialpad client, cache store and use cases
func (s *apiSetup) build(storeOpts ...filesystem.Option) (*usecase.UseCases, interfaces.RosterStore, error) {
	if err := s.applyConfigFile(); err != nil {
		return nil, nil, err
	}

	api, err := s.dialpadCfg.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure Dialpad client")
	}

	store, err := s.cacheCfg.Configure(storeOpts...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure cache store")
	}

	return usecase.New(api, store, s.dialpadCfg.OfficeID()), store, nil
}

// buildOffline wires only the cache store for commands that never call the
// Dialpad API, so they work without a token.
func (s *apiSetup) buildOffline() (*usecase.UseCases, interfaces.RosterStore, error) {
	if err := s.applyConfigFile(); err != nil {
		return nil, nil, err
	}

	store, err := s.cacheCfg.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure cache store")
	}

	return usecase.New(nil, store, s.dialpadCfg.OfficeID()), store, nil
}
