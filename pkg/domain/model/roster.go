package model

import (
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// FreshnessThreshold is the cache age beyond which the status reporter
// emits an advisory warning. The warning never blocks a report.
const FreshnessThreshold = 24 * time.Hour

// RosterMetadata records when and how the roster cache was built
type RosterMetadata struct {
	FetchedAt    time.Time      `json:"fetch_timestamp"`
	OfficeID     types.OfficeID `json:"office_id"`
	OfficeName   string         `json:"office_name"`
	TotalUsers   int            `json:"total_users_in_system"`
	MatchedUsers int            `json:"office_users_count"`
	APIVersion   string         `json:"api_version"`
}

// Roster is the locally persisted, office-filtered subset of the Dialpad
// user directory. Users keep the insertion order of the API response.
type Roster struct {
	Metadata RosterMetadata `json:"metadata"`
	Office   *Office        `json:"office_info,omitempty"`
	Users    []*User        `json:"users"`
}

// Age returns how old the cache is relative to the given wall-clock time
func (x *Roster) Age(now time.Time) time.Duration {
	return now.Sub(x.Metadata.FetchedAt)
}

// Stale reports whether the cache has exceeded the freshness threshold
func (x *Roster) Stale(now time.Time) bool {
	return x.Age(now) > FreshnessThreshold
}

// RosterSummary is returned by the cache builder for operator feedback
type RosterSummary struct {
	TotalFetched   int `json:"total_fetched"`
	TotalMatched   int `json:"total_matched"`
	MergedNew      int `json:"merged_new"`
	MergedExisting int `json:"merged_existing"`
	Retained       int `json:"retained"`
}
