package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrMissingToken   = goerr.New("Dialpad bearer token is not configured")
	ErrInvalidFormat  = goerr.New("invalid output format")
	ErrInvalidTimeout = goerr.New("request timeout must be positive")
)
