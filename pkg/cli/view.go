package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/usecase"
)

func cmdView() *cli.Command {
	var setup apiSetup
	var userID string
	var team string
	var manager string
	var listTeams bool
	var listManagers bool

	flags := setup.flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "user-id",
			Usage:       "Show only the record with this user ID",
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "team",
			Usage:       "Show only records with this team (case-insensitive)",
			Destination: &team,
		},
		&cli.StringFlag{
			Name:        "manager",
			Usage:       "Show only records with this manager (case-insensitive)",
			Destination: &manager,
		},
		&cli.BoolFlag{
			Name:        "list-teams",
			Usage:       "List distinct team values and exit",
			Destination: &listTeams,
		},
		&cli.BoolFlag{
			Name:        "list-managers",
			Usage:       "List distinct manager values and exit",
			Destination: &listManagers,
		},
	)

	return &cli.Command{
		Name:    "view",
		Aliases: []string{"v"},
		Usage:   "Browse the cached simplified records without touching the API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, _, err := setup.buildOffline()
			if err != nil {
				return err
			}

			switch {
			case listTeams:
				return uc.ListTeams(ctx, os.Stdout)
			case listManagers:
				return uc.ListManagers(ctx, os.Stdout)
			default:
				return uc.ViewSimplified(ctx, os.Stdout, usecase.ViewOptions{
					UserID:  types.UserID(userID),
					Team:    team,
					Manager: manager,
				})
			}
		},
	}
}
