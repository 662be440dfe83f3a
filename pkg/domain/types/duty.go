package types

import "strings"

// DutyState is the three-bucket classification of a user's duty status,
// plus DutyUnknown for users whose lookup failed.
type DutyState string

const (
	// DutyAvailable means the user is on duty and taking calls
	DutyAvailable DutyState = "available"
	// DutyUnavailable means the user is on duty but not taking calls
	DutyUnavailable DutyState = "unavailable"
	// DutyNone means the account is active but carries no duty status field
	DutyNone DutyState = "no_duty_status"
	// DutyUnknown marks a user whose status lookup failed (degraded entry)
	DutyUnknown DutyState = "unknown"
)

// Label returns the human-readable form used in tabular output
func (x DutyState) Label() string {
	switch x {
	case DutyAvailable:
		return "Available"
	case DutyUnavailable:
		return "Unavailable"
	case DutyNone:
		return "No Duty Status"
	default:
		return "Unknown"
	}
}

// DutyReason is the fixed vocabulary of unavailability reasons reported by
// the Dialpad API.
type DutyReason string

const (
	ReasonOffFrontline DutyReason = "Off Frontline"
	ReasonAtBreak      DutyReason = "At Break"
	ReasonBeRightBack  DutyReason = "Be Right Back"
	ReasonRingNoAnswer DutyReason = "Ring No Answer"
	ReasonUnavailable  DutyReason = "Unavailable"
)

// String returns the string representation of DutyReason
func (x DutyReason) String() string {
	return string(x)
}

var dutyReasons = map[string]DutyReason{
	"off frontline":  ReasonOffFrontline,
	"at break":       ReasonAtBreak,
	"be right back":  ReasonBeRightBack,
	"ring no answer": ReasonRingNoAnswer,
	"unavailable":    ReasonUnavailable,
}

// NormalizeDutyReason maps a raw API reason string to the canonical
// vocabulary. The API is inconsistent about casing and separators
// ("at_break" vs "At Break"), so both forms are accepted. Unrecognized
// values pass through unchanged rather than being discarded.
func NormalizeDutyReason(raw string) DutyReason {
	if raw == "" {
		return ""
	}
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", " "))
	if reason, ok := dutyReasons[key]; ok {
		return reason
	}
	return DutyReason(raw)
}
