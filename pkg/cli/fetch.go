package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/usecase"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

func cmdFetch() *cli.Command {
	var setup apiSetup
	var skipSimplified bool

	flags := setup.flags()
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "skip-simplified",
			Usage:       "Skip the simplified-record merge step",
			Destination: &skipSimplified,
		},
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Fetch the office roster from Dialpad and refresh the local cache",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := setup.build()
			if err != nil {
				return err
			}

			logging.Default().Info("Fetching roster", "dialpad", setup.dialpadCfg, "cache", setup.cacheCfg)

			summary, err := uc.FetchRoster(ctx, usecase.FetchOptions{
				SkipSimplified: skipSimplified,
			})
			if err != nil {
				return err
			}

			logging.Default().Info("Roster cache updated",
				"total_fetched", summary.TotalFetched,
				"office_users", summary.TotalMatched,
				"new", summary.MergedNew,
				"updated", summary.MergedExisting,
				"retained", summary.Retained,
			)
			return nil
		},
	}
}
