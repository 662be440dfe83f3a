package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Format selects the output rendering of a status report
type Format string

const (
	FormatSummary      Format = "summary"
	FormatDetailed     Format = "detailed"
	FormatJSON         Format = "json"
	FormatDetailedJSON Format = "detailed-json"
)

// Validate checks if the Format is one of the supported values
func (x Format) Validate() error {
	switch x {
	case FormatSummary, FormatDetailed, FormatJSON, FormatDetailedJSON:
		return nil
	default:
		return goerr.New("unsupported output format", goerr.V("format", string(x)))
	}
}

// String returns the string representation of Format
func (x Format) String() string {
	return string(x)
}
