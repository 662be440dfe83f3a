package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/usecase"
)

func cmdStatus() *cli.Command {
	var setup apiSetup
	var format string
	var concurrency int

	flags := setup.flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format [summary, detailed, json, detailed-json]",
			Value:       string(types.FormatSummary),
			Sources:     cli.EnvVars("DUTYBOARD_FORMAT"),
			Destination: &format,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Parallel status lookups per batch",
			Value:       usecase.DefaultConcurrency,
			Sources:     cli.EnvVars("DUTYBOARD_CONCURRENCY"),
			Destination: &concurrency,
		},
	)

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"s"},
		Usage:   "Report the current duty status of every cached office user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			outFormat := types.Format(format)
			if err := outFormat.Validate(); err != nil {
				return goerr.Wrap(err, "invalid --format")
			}

			uc, _, err := setup.build()
			if err != nil {
				return err
			}

			report, err := uc.ReportStatus(ctx, usecase.StatusOptions{
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}

			return usecase.Render(os.Stdout, report, outFormat)
		},
	}
}
