package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/repository/filesystem"
	"github.com/globalnoc/dutyboard/pkg/usecase"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

func cmdCallCenters() *cli.Command {
	var setup apiSetup
	var output string
	var all bool

	flags := setup.flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Override the call-center snapshot file name within the data directory",
			Destination: &output,
		},
		&cli.BoolFlag{
			Name:        "all",
			Usage:       "Keep every call center instead of filtering to the configured office",
			Destination: &all,
		},
	)

	return &cli.Command{
		Name:  "call-centers",
		Usage: "Snapshot the Dialpad call center inventory",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var storeOpts []filesystem.Option
			if output != "" {
				storeOpts = append(storeOpts, filesystem.WithCallCentersFile(output))
			}

			uc, _, err := setup.build(storeOpts...)
			if err != nil {
				return err
			}

			snapshot, err := uc.FetchCallCenters(ctx, usecase.CallCenterOptions{All: all})
			if err != nil {
				return err
			}

			logging.Default().Info("Call center snapshot written",
				"total_in_system", snapshot.Metadata.TotalInSystem,
				"matched", snapshot.Metadata.Matched,
				"office_filter", snapshot.Metadata.FilterApplied,
			)
			return nil
		},
	}
}
