package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/repository/filesystem"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
	"github.com/globalnoc/dutyboard/pkg/usecase"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

func cmdCalls() *cli.Command {
	var setup apiSetup
	var output string
	var limit int
	var days int
	var startDate string
	var endDate string
	var officeOnly bool

	flags := setup.flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Override the call-log snapshot file name within the data directory",
			Destination: &output,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of call records to fetch (0 for no limit)",
			Destination: &limit,
		},
		&cli.IntFlag{
			Name:        "days",
			Usage:       "Fetch calls from the last N days",
			Destination: &days,
		},
		&cli.StringFlag{
			Name:        "start-date",
			Usage:       "Fetch calls started on or after this date (YYYY-MM-DD)",
			Destination: &startDate,
		},
		&cli.StringFlag{
			Name:        "end-date",
			Usage:       "Fetch calls started before this date (YYYY-MM-DD)",
			Destination: &endDate,
		},
		&cli.BoolFlag{
			Name:        "office-only",
			Usage:       "Keep only calls involving cached roster users",
			Destination: &officeOnly,
		},
	)

	return &cli.Command{
		Name:  "calls",
		Usage: "Snapshot historical call records from the Dialpad call log",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := dialpad.CallQuery{Limit: limit}

			if days > 0 && startDate != "" {
				return goerr.New("--days and --start-date are mutually exclusive")
			}
			if days > 0 {
				after := time.Now().AddDate(0, 0, -days)
				query.StartedAfter = &after
			}
			if startDate != "" {
				after, err := time.Parse("2006-01-02", startDate)
				if err != nil {
					return goerr.Wrap(err, "invalid --start-date", goerr.V("value", startDate))
				}
				query.StartedAfter = &after
			}
			if endDate != "" {
				before, err := time.Parse("2006-01-02", endDate)
				if err != nil {
					return goerr.Wrap(err, "invalid --end-date", goerr.V("value", endDate))
				}
				query.StartedBefore = &before
			}

			var storeOpts []filesystem.Option
			if output != "" {
				storeOpts = append(storeOpts, filesystem.WithCallsFile(output))
			}

			uc, _, err := setup.build(storeOpts...)
			if err != nil {
				return err
			}

			log, err := uc.FetchCalls(ctx, usecase.CallsOptions{
				Query:      query,
				OfficeOnly: officeOnly,
			})
			if err != nil {
				return err
			}

			logging.Default().Info("Call log snapshot written",
				"fetched", log.Metadata.AllFetched,
				"kept", log.Metadata.TotalCalls,
				"office_only", log.Metadata.OfficeOnly,
			)
			return nil
		},
	}
}
