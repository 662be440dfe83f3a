package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
)

// AppConfig represents the optional TOML configuration file. Flags and
// environment variables take precedence over values declared here.
type AppConfig struct {
	Dialpad DialpadSection `toml:"dialpad"`
	Cache   CacheSection   `toml:"cache"`
}

// DialpadSection configures the Dialpad API client
type DialpadSection struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	OfficeID       string `toml:"office_id"`
	CompanyID      string `toml:"company_id"`
}

// CacheSection configures the local roster cache
type CacheSection struct {
	DataDir    string `toml:"data_dir"`
	RosterFile string `toml:"roster_file"`
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.Dialpad.TimeoutSeconds < 0 {
		return goerr.Wrap(ErrInvalidTimeout, "timeout_seconds must not be negative",
			goerr.V("timeout_seconds", a.Dialpad.TimeoutSeconds))
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

// Apply fills in Dialpad and Cache settings that flags and environment
// variables left at their defaults
func (a *AppConfig) Apply(d *Dialpad, c *Cache) {
	if a.Dialpad.BaseURL != "" && d.baseURL == dialpad.DefaultBaseURL {
		d.baseURL = a.Dialpad.BaseURL
	}
	if a.Dialpad.TimeoutSeconds > 0 && d.timeoutSec == int(dialpad.DefaultTimeout/time.Second) {
		d.timeoutSec = a.Dialpad.TimeoutSeconds
	}
	if a.Dialpad.OfficeID != "" && d.officeID == "" {
		d.officeID = a.Dialpad.OfficeID
	}
	if a.Dialpad.CompanyID != "" && d.companyID == "" {
		d.companyID = a.Dialpad.CompanyID
	}
	if a.Cache.DataDir != "" && c.dataDir == "." {
		c.dataDir = a.Cache.DataDir
	}
	if a.Cache.RosterFile != "" && c.rosterFile == "" {
		c.rosterFile = a.Cache.RosterFile
	}
}
