package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
)

// ErrCacheMissing is returned when the roster cache has not been built yet.
// The operator should run the fetch command first.
var ErrCacheMissing = goerr.New("roster cache not found, run `dutyboard fetch` first")

// RosterStore persists the roster cache and its derived files. The store is
// the only interchange point between the cache builder and the reporter;
// there is no concurrent-writer protocol (single-writer assumption).
type RosterStore interface {
	// SaveRoster overwrites the roster cache. Implementations must not
	// leave a partially written cache behind on failure.
	SaveRoster(ctx context.Context, roster *model.Roster) error

	// LoadRoster reads the roster cache, returning ErrCacheMissing when it
	// has never been written
	LoadRoster(ctx context.Context) (*model.Roster, error)

	// SaveSimplified overwrites the simplified record set together with its
	// spreadsheet rendition
	SaveSimplified(ctx context.Context, file *model.SimplifiedFile) error

	// LoadSimplified reads the simplified record set. A missing file is not
	// an error: it loads as an empty set.
	LoadSimplified(ctx context.Context) (*model.SimplifiedFile, error)

	// SaveCallCenters overwrites the call-center snapshot
	SaveCallCenters(ctx context.Context, snapshot *model.CallCenterSnapshot) error

	// SaveCalls overwrites the call-log snapshot
	SaveCalls(ctx context.Context, log *model.CallLog) error
}
