package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

// maxUserPages guards the pagination loop against a cursor that never
// terminates
const maxUserPages = 1000

// rosterAPIVersion is stamped into the cache metadata
const rosterAPIVersion = "v2"

// FetchOptions controls one roster cache build
type FetchOptions struct {
	// SkipSimplified disables the simplified-record merge step
	SkipSimplified bool
}

// FetchRoster pages through the full Dialpad user directory, filters the
// result to the configured office and persists the roster cache. Nothing is
// written until the whole directory has been fetched, so a mid-pagination
// failure leaves any previous cache untouched.
func (u *UseCases) FetchRoster(ctx context.Context, opts FetchOptions) (*model.RosterSummary, error) {
	logger := logging.From(ctx)

	if err := u.officeID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "office ID is required to build the roster cache")
	}

	logger.Info("fetching all users from Dialpad API", "office_id", u.officeID)

	var all []*model.User
	cursor := ""
	for page := 0; ; page++ {
		if page >= maxUserPages {
			logger.Warn("reached pagination safety limit", "pages", page, "users", len(all))
			break
		}

		users, next, err := u.api.ListUsers(ctx, cursor)
		if err != nil {
			return nil, goerr.Wrap(err, "user directory fetch failed, keeping previous cache",
				goerr.V("page", page), goerr.V("fetched", len(all)))
		}

		all = append(all, users...)
		if next == "" || len(users) == 0 {
			break
		}
		cursor = next
	}

	logger.Info("retrieved users", "total", len(all))

	// The user listing cannot filter by office server-side
	var matched []*model.User
	for _, user := range all {
		if user.OfficeID == u.officeID {
			matched = append(matched, user)
		}
	}

	logger.Info("filtered users by office", "office_id", u.officeID, "matched", len(matched))

	roster := &model.Roster{
		Metadata: model.RosterMetadata{
			FetchedAt:    u.now(),
			OfficeID:     u.officeID,
			OfficeName:   "Unknown",
			TotalUsers:   len(all),
			MatchedUsers: len(matched),
			APIVersion:   rosterAPIVersion,
		},
		Users: matched,
	}

	// The office lookup only decorates the metadata; its failure does not
	// abort a successful directory fetch
	if offices, err := u.api.ListOffices(ctx); err != nil {
		logger.Warn("failed to fetch office info", "error", err.Error())
	} else {
		for _, office := range offices {
			if office.ID == u.officeID {
				roster.Office = office
				roster.Metadata.OfficeName = office.Name
				break
			}
		}
	}

	if err := u.store.SaveRoster(ctx, roster); err != nil {
		return nil, goerr.Wrap(err, "failed to persist roster cache")
	}

	summary := &model.RosterSummary{
		TotalFetched: len(all),
		TotalMatched: len(matched),
	}

	if !opts.SkipSimplified {
		stats, err := u.mergeSimplified(ctx, roster)
		if err != nil {
			return nil, err
		}
		summary.MergedNew = stats.New
		summary.MergedExisting = stats.Updated
		summary.Retained = stats.Retained
	}

	return summary, nil
}

// mergeSimplified folds the fresh roster into the existing simplified
// record set, preserving hand-edited custom fields
func (u *UseCases) mergeSimplified(ctx context.Context, roster *model.Roster) (model.MergeStats, error) {
	existing, err := u.store.LoadSimplified(ctx)
	if err != nil {
		return model.MergeStats{}, goerr.Wrap(err, "failed to load existing simplified users")
	}

	merged, stats := model.MergeSimplified(roster.Users, existing.Users)

	file := &model.SimplifiedFile{
		Metadata: model.SimplifiedMetadata{
			CreatedAt:    u.now(),
			Source:       "users.json",
			TotalUsers:   len(merged),
			NewUsers:     stats.New,
			UpdatedUsers: stats.Updated,
			Description:  "Simplified user list for easy editing and custom variables",
		},
		Users: merged,
	}

	if err := u.store.SaveSimplified(ctx, file); err != nil {
		return model.MergeStats{}, goerr.Wrap(err, "failed to persist simplified users")
	}

	logging.From(ctx).Info("simplified users merged",
		"total", len(merged), "new", stats.New, "updated", stats.Updated, "retained", stats.Retained)

	return stats, nil
}
