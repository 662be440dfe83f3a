package model

import (
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// User is a single roster cache entry as returned by the Dialpad user
// listing endpoint. Entries are overwritten wholesale on each fetch and
// read-only afterwards.
type User struct {
	ID           types.UserID   `json:"id"`
	DisplayName  string         `json:"display_name"`
	FirstName    string         `json:"first_name,omitempty"`
	LastName     string         `json:"last_name,omitempty"`
	Emails       []string       `json:"emails,omitempty"`
	JobTitle     string         `json:"job_title,omitempty"`
	Department   string         `json:"department,omitempty"`
	PhoneNumbers []string       `json:"phone_numbers,omitempty"`
	Timezone     string         `json:"timezone,omitempty"`
	License      string         `json:"license,omitempty"`
	IsAdmin      bool           `json:"is_admin,omitempty"`
	State        string         `json:"state,omitempty"`
	OfficeID     types.OfficeID `json:"office_id,omitempty"`
}

// PrimaryEmail returns the first listed email, or empty string
func (x *User) PrimaryEmail() string {
	if len(x.Emails) > 0 {
		return x.Emails[0]
	}
	return ""
}

// PrimaryPhone returns the first listed phone number, or empty string
func (x *User) PrimaryPhone() string {
	if len(x.PhoneNumbers) > 0 {
		return x.PhoneNumbers[0]
	}
	return ""
}

// Office describes a Dialpad office
type Office struct {
	ID   types.OfficeID `json:"id"`
	Name string         `json:"name"`
}
