package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

// StatusOptions controls one reporter run
type StatusOptions struct {
	// Concurrency bounds the parallel status lookups. Zero or negative
	// falls back to DefaultConcurrency; 1 reproduces a strict sequential
	// scan.
	Concurrency int
}

// ReportStatus reads the cached roster and looks up the current duty
// status of every cached user with a bounded fan-out. A transient failure
// on one user degrades that single entry to "unknown"; an auth failure
// cancels the whole batch because the token is invalid for every remaining
// call as well.
func (u *UseCases) ReportStatus(ctx context.Context, opts StatusOptions) (*model.StatusReport, error) {
	logger := logging.From(ctx)

	roster, err := u.store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	age := roster.Age(now)
	stale := roster.Stale(now)
	if stale {
		logger.Warn("roster cache is stale, consider re-running fetch",
			"age", age.String(), "fetched_at", roster.Metadata.FetchedAt)
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	logger.Info("checking duty status for cached users",
		"users", len(roster.Users), "concurrency", concurrency)

	entries := make([]*model.EmployeeStatus, len(roster.Users))
	raws := make([]map[string]any, len(roster.Users))

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(concurrency)

	for i, user := range roster.Users {
		grp.Go(func() error {
			status, err := u.api.GetUserStatus(grpCtx, user.ID)
			if err != nil {
				if dialpad.IsAuthError(err) {
					return goerr.Wrap(err, "aborting status batch", goerr.V("user_id", user.ID))
				}
				logger.Warn("status lookup degraded",
					"user_id", user.ID, "name", user.DisplayName, "error", err.Error())
				entries[i] = degradedStatus(user, err)
				return nil
			}

			entries[i] = classifyStatus(user, status, u.now)
			raws[i] = status.Raw
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	report := &model.StatusReport{
		ReportID:    uuid.NewString(),
		GeneratedAt: now,
		Metadata:    roster.Metadata,
		Office:      roster.Office,
		CacheAge:    age,
		CacheStale:  stale,
		Employees:   entries,
	}
	for _, e := range entries {
		report.Summary.Add(e.State)
	}
	for _, raw := range raws {
		if raw != nil {
			report.Raw = append(report.Raw, raw)
		}
	}

	logger.Info("status check completed",
		"total", report.Summary.Total,
		"available", report.Summary.Available,
		"unavailable", report.Summary.Unavailable,
		"no_duty_status", report.Summary.NoDutyStatus,
		"unknown", report.Summary.Unknown,
	)

	return report, nil
}

// classifyStatus derives one report entry from a raw status payload
func classifyStatus(user *model.User, status *dialpad.UserStatus, now func() time.Time) *model.EmployeeStatus {
	state, reason := model.ClassifyDuty(status.OnDutyStatus, status.DutyStatusReason)

	entry := &model.EmployeeStatus{
		UserID:       user.ID,
		Name:         user.DisplayName,
		Email:        user.PrimaryEmail(),
		Department:   user.Department,
		JobTitle:     user.JobTitle,
		State:        state,
		Reason:       reason,
		AccountState: status.State,
		DoNotDisturb: status.DoNotDisturb,
	}

	if started, ok := status.StartedAt(); ok {
		entry.Duration = now().Sub(started)
		entry.DurationText = model.FormatDutyDuration(entry.Duration)
	}

	return entry
}

// degradedStatus builds the "unknown" entry for a failed lookup
func degradedStatus(user *model.User, err error) *model.EmployeeStatus {
	return &model.EmployeeStatus{
		UserID:      user.ID,
		Name:        user.DisplayName,
		Email:       user.PrimaryEmail(),
		Department:  user.Department,
		JobTitle:    user.JobTitle,
		State:       types.DutyUnknown,
		LookupError: err.Error(),
	}
}
