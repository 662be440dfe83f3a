package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
)

// Dialpad holds configuration for the Dialpad API client
type Dialpad struct {
	token      string
	baseURL    string
	timeoutSec int
	officeID   string
	companyID  string
}

// Flags returns CLI flags for Dialpad configuration
func (d *Dialpad) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "Dialpad API bearer token",
			Sources:     cli.EnvVars("DIALPAD_BEARER_TOKEN"),
			Destination: &d.token,
		},
		&cli.StringFlag{
			Name:        "api-base-url",
			Usage:       "Dialpad API base URL",
			Value:       dialpad.DefaultBaseURL,
			Sources:     cli.EnvVars("DIALPAD_API_BASE_URL"),
			Destination: &d.baseURL,
		},
		&cli.IntFlag{
			Name:        "request-timeout",
			Usage:       "Timeout per Dialpad API request in seconds",
			Value:       int(dialpad.DefaultTimeout / time.Second),
			Sources:     cli.EnvVars("REQUEST_TIMEOUT"),
			Destination: &d.timeoutSec,
		},
		&cli.StringFlag{
			Name:        "office-id",
			Usage:       "Dialpad office ID to scope the roster to",
			Sources:     cli.EnvVars("OFFICE_ID"),
			Destination: &d.officeID,
		},
		&cli.StringFlag{
			Name:        "company-id",
			Usage:       "Dialpad company ID (reserved for company-scoped endpoints)",
			Sources:     cli.EnvVars("COMPANY_ID"),
			Destination: &d.companyID,
		},
	}
}

// LogValue implements slog.LogValuer. The token itself is never logged.
func (d Dialpad) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("token_set", d.token != ""),
		slog.String("base_url", d.baseURL),
		slog.Int("timeout_seconds", d.timeoutSec),
		slog.String("office_id", d.officeID),
		slog.String("company_id", d.companyID),
	)
}

// OfficeID returns the configured office ID
func (d *Dialpad) OfficeID() types.OfficeID {
	return types.OfficeID(d.officeID)
}

// Configure creates a Dialpad API client from the configured flags
func (d *Dialpad) Configure() (dialpad.Service, error) {
	if d.token == "" {
		return nil, goerr.Wrap(ErrMissingToken, "set DIALPAD_BEARER_TOKEN or --api-token")
	}

	svc, err := dialpad.New(dialpad.Config{
		BaseURL: d.baseURL,
		Token:   d.token,
		Timeout: time.Duration(d.timeoutSec) * time.Second,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Dialpad client")
	}

	return svc, nil
}
