package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

// CallCenterOptions controls one call-center snapshot build
type CallCenterOptions struct {
	// All disables the office filter and keeps every call center
	All bool
}

// FetchCallCenters lists all call centers and persists a snapshot,
// filtered to the configured office unless opts.All is set
func (u *UseCases) FetchCallCenters(ctx context.Context, opts CallCenterOptions) (*model.CallCenterSnapshot, error) {
	logger := logging.From(ctx)

	all, err := u.api.ListCallCenters(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch call centers")
	}
	logger.Info("retrieved call centers", "total", len(all))

	filtered := all
	filterApplied := false
	if !opts.All && u.officeID != "" {
		filterApplied = true
		filtered = nil
		for _, cc := range all {
			if cc.OfficeID == u.officeID {
				filtered = append(filtered, cc)
			}
		}
		logger.Info("filtered call centers by office", "office_id", u.officeID, "matched", len(filtered))
	}

	snapshot := &model.CallCenterSnapshot{
		Metadata: model.CallCenterMetadata{
			FetchedAt:     u.now(),
			OfficeID:      u.officeID,
			OfficeName:    "Unknown",
			TotalInSystem: len(all),
			Matched:       len(filtered),
			FilterApplied: filterApplied,
			APIVersion:    rosterAPIVersion,
		},
		CallCenters: filtered,
	}

	if offices, err := u.api.ListOffices(ctx); err != nil {
		logger.Warn("failed to fetch office info", "error", err.Error())
	} else {
		for _, office := range offices {
			if office.ID == u.officeID {
				snapshot.Office = office
				snapshot.Metadata.OfficeName = office.Name
				break
			}
		}
	}

	if err := u.store.SaveCallCenters(ctx, snapshot); err != nil {
		return nil, goerr.Wrap(err, "failed to persist call center snapshot")
	}

	return snapshot, nil
}
