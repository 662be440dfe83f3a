package model

import (
	"fmt"
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// EmployeeStatus is one derived status entry in a report. Produced fresh on
// every run and never persisted.
type EmployeeStatus struct {
	UserID       types.UserID     `json:"user_id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Department   string           `json:"department,omitempty"`
	JobTitle     string           `json:"job_title,omitempty"`
	State        types.DutyState  `json:"duty_status"`
	Reason       types.DutyReason `json:"duty_reason,omitempty"`
	AccountState string           `json:"account_state,omitempty"`
	DoNotDisturb bool             `json:"do_not_disturb"`
	Duration     time.Duration    `json:"-"`
	DurationText string           `json:"duty_duration,omitempty"`
	// LookupError carries the failure message for degraded (unknown) entries
	LookupError string `json:"lookup_error,omitempty"`
}

// StatusLabel renders the bucket with the unavailability reason appended,
// e.g. "Unavailable (At Break)", plus a DND marker when set.
func (x *EmployeeStatus) StatusLabel() string {
	label := x.State.Label()
	if x.State == types.DutyUnavailable && x.Reason != "" {
		label = fmt.Sprintf("%s (%s)", label, x.Reason)
	}
	if x.DoNotDisturb {
		label += " [DND]"
	}
	return label
}

// StatusSummary holds per-bucket counts for a report. Unknown counts
// degraded lookups, kept apart from the three duty buckets.
type StatusSummary struct {
	Total        int `json:"total"`
	Available    int `json:"available"`
	Unavailable  int `json:"unavailable"`
	NoDutyStatus int `json:"no_duty_status"`
	Unknown      int `json:"unknown,omitempty"`
}

// Add counts one employee status into the summary
func (x *StatusSummary) Add(state types.DutyState) {
	x.Total++
	switch state {
	case types.DutyAvailable:
		x.Available++
	case types.DutyUnavailable:
		x.Unavailable++
	case types.DutyNone:
		x.NoDutyStatus++
	default:
		x.Unknown++
	}
}

// StatusReport is the full result of one reporter run
type StatusReport struct {
	ReportID    string           `json:"report_id"`
	GeneratedAt time.Time        `json:"generated_timestamp"`
	Metadata    RosterMetadata   `json:"metadata"`
	Office      *Office          `json:"office_info,omitempty"`
	CacheAge    time.Duration    `json:"-"`
	CacheStale  bool             `json:"cache_stale"`
	Employees   []*EmployeeStatus `json:"employees"`
	Summary     StatusSummary    `json:"summary"`
	// Raw holds the per-user status payloads as fetched, for the json format
	Raw []map[string]any `json:"-"`
}

// ClassifyDuty maps the raw on_duty_status and reason fields to the
// three-bucket classification. An absent or unrecognized duty status on an
// active account lands in DutyNone.
func ClassifyDuty(onDutyStatus, reason string) (types.DutyState, types.DutyReason) {
	switch onDutyStatus {
	case "available":
		return types.DutyAvailable, ""
	case "unavailable":
		return types.DutyUnavailable, types.NormalizeDutyReason(reason)
	default:
		return types.DutyNone, ""
	}
}

// FormatDutyDuration renders an elapsed duty time the way the report
// expects: minutes under an hour, fractional hours under a day, then days.
func FormatDutyDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	hours := d.Hours()
	switch {
	case hours < 1:
		return fmt.Sprintf("%dm", int(hours*60))
	case hours < 24:
		return fmt.Sprintf("%.1fh", hours)
	default:
		days := int(hours / 24)
		return fmt.Sprintf("%dd %.1fh", days, hours-float64(days)*24)
	}
}
