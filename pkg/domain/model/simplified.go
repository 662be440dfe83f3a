package model

import (
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// SimplifiedUser is a flattened roster entry augmented with hand-edited
// custom fields that are not sourced from the Dialpad API. Standard fields
// are overwritten on every fetch; custom fields survive refreshes.
type SimplifiedUser struct {
	ID          types.UserID `json:"id"`
	DisplayName string       `json:"display_name"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	JobTitle    string       `json:"job_title"`
	Department  string       `json:"department"`
	PhoneNumber string       `json:"phone_number"`
	Timezone    string       `json:"timezone"`
	License     string       `json:"license"`
	IsAdmin     bool         `json:"is_admin"`
	State       string       `json:"state"`

	// Custom fields, editable by hand and preserved across refreshes
	Role          string `json:"role"`
	FocusTeam     string `json:"focus_team"`
	Team          string `json:"team"`
	Manager       string `json:"manager"`
	Shift         string `json:"shift"`
	PriorityLevel string `json:"priority_level"`
	Skills        string `json:"skills"`
	BackupContact string `json:"backup_contact"`
	Notes         string `json:"notes"`
}

// SimplifiedMetadata records merge bookkeeping for the simplified file
type SimplifiedMetadata struct {
	CreatedAt   time.Time `json:"created"`
	Source      string    `json:"source"`
	TotalUsers  int       `json:"total_users"`
	NewUsers    int       `json:"new_users"`
	UpdatedUsers int      `json:"updated_users"`
	Description string    `json:"description"`
}

// SimplifiedFile is the persisted simplified-record set
type SimplifiedFile struct {
	Metadata SimplifiedMetadata `json:"metadata"`
	Users    []*SimplifiedUser  `json:"users"`
}

// MergeStats summarizes one simplified merge pass
type MergeStats struct {
	New      int
	Updated  int
	Retained int
}

// copyCustomFields carries the non-empty custom fields of src into dst
func copyCustomFields(dst, src *SimplifiedUser) {
	if src.Role != "" {
		dst.Role = src.Role
	}
	if src.FocusTeam != "" {
		dst.FocusTeam = src.FocusTeam
	}
	if src.Team != "" {
		dst.Team = src.Team
	}
	if src.Manager != "" {
		dst.Manager = src.Manager
	}
	if src.Shift != "" {
		dst.Shift = src.Shift
	}
	if src.PriorityLevel != "" {
		dst.PriorityLevel = src.PriorityLevel
	}
	if src.Skills != "" {
		dst.Skills = src.Skills
	}
	if src.BackupContact != "" {
		dst.BackupContact = src.BackupContact
	}
	if src.Notes != "" {
		dst.Notes = src.Notes
	}
}

// simplify flattens a roster user into a simplified record with empty
// custom fields
func simplify(u *User) *SimplifiedUser {
	return &SimplifiedUser{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.PrimaryEmail(),
		JobTitle:    u.JobTitle,
		Department:  u.Department,
		PhoneNumber: u.PrimaryPhone(),
		Timezone:    u.Timezone,
		License:     u.License,
		IsAdmin:     u.IsAdmin,
		State:       u.State,
	}
}

// MergeSimplified performs the keyed left-join of a freshly fetched roster
// against the existing simplified record set. For each fetched user the
// standard fields come from the API and any custom fields present in the
// existing record are preserved verbatim; users seen for the first time get
// empty custom fields. Existing records absent from the fetch are carried
// through unmodified after the fetched set, keeping their prior order.
// Records are never auto-deleted here; removing departed users is a manual
// edit of the simplified file.
func MergeSimplified(fetched []*User, existing []*SimplifiedUser) ([]*SimplifiedUser, MergeStats) {
	byID := make(map[types.UserID]*SimplifiedUser, len(existing))
	for _, e := range existing {
		byID[e.ID] = e
	}

	var stats MergeStats
	merged := make([]*SimplifiedUser, 0, len(fetched))
	seen := make(map[types.UserID]bool, len(fetched))

	for _, u := range fetched {
		s := simplify(u)
		if prev, ok := byID[u.ID]; ok {
			copyCustomFields(s, prev)
			stats.Updated++
		} else {
			stats.New++
		}
		merged = append(merged, s)
		seen[u.ID] = true
	}

	for _, e := range existing {
		if !seen[e.ID] {
			merged = append(merged, e)
			stats.Retained++
		}
	}

	return merged, stats
}

// CSVHeader returns the column names of the spreadsheet rendition
func CSVHeader() []string {
	return []string{
		"id", "display_name", "first_name", "last_name", "email",
		"job_title", "department", "phone_number", "timezone", "license",
		"is_admin", "state",
		"role", "focus_team", "team", "manager", "shift",
		"priority_level", "skills", "backup_contact", "notes",
	}
}

// CSVRecord returns one flat spreadsheet row for the user
func (x *SimplifiedUser) CSVRecord() []string {
	isAdmin := "false"
	if x.IsAdmin {
		isAdmin = "true"
	}
	return []string{
		x.ID.String(), x.DisplayName, x.FirstName, x.LastName, x.Email,
		x.JobTitle, x.Department, x.PhoneNumber, x.Timezone, x.License,
		isAdmin, x.State,
		x.Role, x.FocusTeam, x.Team, x.Manager, x.Shift,
		x.PriorityLevel, x.Skills, x.BackupContact, x.Notes,
	}
}
