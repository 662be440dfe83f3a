package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// UserID represents a unique identifier for a Dialpad user.
// Dialpad delivers IDs as decimal strings; the value is treated as opaque.
type UserID string

// Validate checks if the UserID is valid
func (x UserID) Validate() error {
	if x == "" {
		return goerr.New("user ID cannot be empty")
	}
	return nil
}

// String returns the string representation of UserID
func (x UserID) String() string {
	return string(x)
}

// OfficeID represents a unique identifier for a Dialpad office
type OfficeID string

// Validate checks if the OfficeID is valid
func (x OfficeID) Validate() error {
	if x == "" {
		return goerr.New("office ID cannot be empty")
	}
	return nil
}

// String returns the string representation of OfficeID
func (x OfficeID) String() string {
	return string(x)
}

// CallCenterID represents a unique identifier for a Dialpad call center
type CallCenterID string

// String returns the string representation of CallCenterID
func (x CallCenterID) String() string {
	return string(x)
}
