package dialpad

import (
	"context"
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
)

// Service provides access to the Dialpad REST API. The wrapper is
// stateless: every method is one or more plain GET requests with the bearer
// token attached, and no method retries on failure.
type Service interface {
	// ListUsers fetches one page of the company user directory. An empty
	// cursor requests the first page; an empty next cursor means the
	// listing is exhausted.
	ListUsers(ctx context.Context, cursor string) ([]*model.User, string, error)

	// GetUserStatus fetches the current duty status of a single user
	GetUserStatus(ctx context.Context, id types.UserID) (*UserStatus, error)

	// ListOffices fetches all offices of the company
	ListOffices(ctx context.Context) ([]*model.Office, error)

	// ListCallCenters fetches all call centers of the company
	ListCallCenters(ctx context.Context) ([]*model.CallCenter, error)

	// ListCalls fetches historical call records matching the query,
	// paginating until exhaustion or the query limit
	ListCalls(ctx context.Context, q CallQuery) ([]*model.Call, error)
}

// UserStatus is the per-user duty status payload. Raw preserves the
// response body as fetched for pass-through rendering.
type UserStatus struct {
	ID               types.UserID `json:"id"`
	DisplayName      string       `json:"display_name,omitempty"`
	State            string       `json:"state,omitempty"`
	OnDutyStatus     string       `json:"on_duty_status,omitempty"`
	DutyStatusReason string       `json:"duty_status_reason,omitempty"`
	DutyStatusStarted string      `json:"duty_status_started,omitempty"`
	DoNotDisturb     bool         `json:"do_not_disturb,omitempty"`

	Raw map[string]any `json:"-"`
}

// StartedAt parses the duty_status_started timestamp. The second return is
// false when the field is absent or unparseable.
func (x *UserStatus) StartedAt() (time.Time, bool) {
	if x.DutyStatusStarted == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, x.DutyStatusStarted)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// CallQuery narrows a call-log listing
type CallQuery struct {
	Limit         int
	StartedAfter  *time.Time
	StartedBefore *time.Time
}
