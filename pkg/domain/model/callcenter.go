package model

import (
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// CallCenter describes a Dialpad call center
type CallCenter struct {
	ID       types.CallCenterID `json:"id"`
	Name     string             `json:"name"`
	OfficeID types.OfficeID     `json:"office_id,omitempty"`
}

// CallCenterMetadata records how a call-center snapshot was built
type CallCenterMetadata struct {
	FetchedAt     time.Time      `json:"fetch_timestamp"`
	OfficeID      types.OfficeID `json:"office_id"`
	OfficeName    string         `json:"office_name"`
	TotalInSystem int            `json:"total_call_centers_in_system"`
	Matched       int            `json:"filtered_call_centers_count"`
	FilterApplied bool           `json:"filter_applied"`
	APIVersion    string         `json:"api_version"`
}

// CallCenterSnapshot is the persisted call-center listing
type CallCenterSnapshot struct {
	Metadata    CallCenterMetadata `json:"metadata"`
	Office      *Office            `json:"office_info,omitempty"`
	CallCenters []*CallCenter      `json:"call_centers"`
}
