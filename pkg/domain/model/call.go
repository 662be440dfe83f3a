package model

import (
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// CallParticipant identifies one party of a call record
type CallParticipant struct {
	UserID types.UserID `json:"user_id,omitempty"`
	Phone  string       `json:"phone,omitempty"`
}

// Call is one historical call record from the Dialpad call log.
// DateStarted is kept as delivered (epoch milliseconds as a string).
type Call struct {
	ID           string            `json:"id"`
	Direction    string            `json:"direction,omitempty"`
	State        string            `json:"state,omitempty"`
	DateStarted  string            `json:"date_started,omitempty"`
	Duration     float64           `json:"duration,omitempty"`
	Participants []CallParticipant `json:"participants,omitempty"`
}

// InvolvesAny reports whether any call participant matches the given roster
// user IDs
func (x *Call) InvolvesAny(ids map[types.UserID]bool) bool {
	for _, p := range x.Participants {
		if p.UserID != "" && ids[p.UserID] {
			return true
		}
	}
	return false
}

// CallLogMetadata records how a call-log snapshot was built
type CallLogMetadata struct {
	FetchedAt   time.Time      `json:"fetch_timestamp"`
	OfficeID    types.OfficeID `json:"office_id"`
	TotalCalls  int            `json:"total_calls"`
	AllFetched  int            `json:"all_calls_fetched"`
	Limit       int            `json:"limit,omitempty"`
	StartedAfter  *time.Time   `json:"started_after,omitempty"`
	StartedBefore *time.Time   `json:"started_before,omitempty"`
	OfficeOnly  bool           `json:"office_only"`
}

// CallLog is the persisted call-analytics snapshot
type CallLog struct {
	Metadata CallLogMetadata `json:"metadata"`
	Calls    []*Call         `json:"calls"`
}
