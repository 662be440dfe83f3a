package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

// CallsOptions controls one call-log snapshot build
type CallsOptions struct {
	Query dialpad.CallQuery
	// OfficeOnly keeps only calls with at least one participant from the
	// cached roster. Requires the roster cache.
	OfficeOnly bool
}

// FetchCalls lists historical call records matching the query and persists
// a snapshot
func (u *UseCases) FetchCalls(ctx context.Context, opts CallsOptions) (*model.CallLog, error) {
	logger := logging.From(ctx)

	calls, err := u.api.ListCalls(ctx, opts.Query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch call records")
	}
	logger.Info("retrieved call records", "total", len(calls))

	filtered := calls
	if opts.OfficeOnly {
		roster, err := u.store.LoadRoster(ctx)
		if err != nil {
			return nil, goerr.Wrap(err, "office-only filtering needs the roster cache")
		}

		ids := make(map[types.UserID]bool, len(roster.Users))
		for _, user := range roster.Users {
			ids[user.ID] = true
		}

		filtered = nil
		for _, call := range calls {
			if call.InvolvesAny(ids) {
				filtered = append(filtered, call)
			}
		}
		logger.Info("filtered calls to office participants", "matched", len(filtered))
	}

	log := &model.CallLog{
		Metadata: model.CallLogMetadata{
			FetchedAt:     u.now(),
			OfficeID:      u.officeID,
			TotalCalls:    len(filtered),
			AllFetched:    len(calls),
			Limit:         opts.Query.Limit,
			StartedAfter:  opts.Query.StartedAfter,
			StartedBefore: opts.Query.StartedBefore,
			OfficeOnly:    opts.OfficeOnly,
		},
		Calls: filtered,
	}

	if err := u.store.SaveCalls(ctx, log); err != nil {
		return nil, goerr.Wrap(err, "failed to persist call log")
	}

	return log, nil
}
