package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/cli/config"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	// .env is a convenience for local runs; a missing file is fine. Loaded
	// before flag parsing so EnvVars sources can see it.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:    "dutyboard",
		Usage:   "Dialpad duty status reporting for the operations desk",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting dutyboard", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdFetch(),
			cmdStatus(),
			cmdView(),
			cmdCallCenters(),
			cmdCalls(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
