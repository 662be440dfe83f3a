package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/domain/model"
)

// Store is an in-memory RosterStore for tests and development. Values are
// deep-copied through JSON-free struct copies on the way in and out so
// callers cannot mutate stored state.
type Store struct {
	mu          sync.RWMutex
	roster      *model.Roster
	simplified  *model.SimplifiedFile
	callCenters *model.CallCenterSnapshot
	calls       *model.CallLog
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{}
}

func copyRoster(r *model.Roster) *model.Roster {
	cp := *r
	cp.Users = make([]*model.User, len(r.Users))
	for i, u := range r.Users {
		uc := *u
		cp.Users[i] = &uc
	}
	if r.Office != nil {
		oc := *r.Office
		cp.Office = &oc
	}
	return &cp
}

func copySimplified(f *model.SimplifiedFile) *model.SimplifiedFile {
	cp := *f
	cp.Users = make([]*model.SimplifiedUser, len(f.Users))
	for i, u := range f.Users {
		uc := *u
		cp.Users[i] = &uc
	}
	return &cp
}

// SaveRoster stores a copy of the roster
func (s *Store) SaveRoster(ctx context.Context, roster *model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = copyRoster(roster)
	return nil
}

// LoadRoster returns a copy of the stored roster
func (s *Store) LoadRoster(ctx context.Context) (*model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.roster == nil {
		return nil, goerr.Wrap(interfaces.ErrCacheMissing, "no roster in memory store")
	}
	return copyRoster(s.roster), nil
}

// SaveSimplified stores a copy of the simplified record set
func (s *Store) SaveSimplified(ctx context.Context, file *model.SimplifiedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simplified = copySimplified(file)
	return nil
}

// LoadSimplified returns a copy of the simplified record set, empty when
// never saved
func (s *Store) LoadSimplified(ctx context.Context) (*model.SimplifiedFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.simplified == nil {
		return &model.SimplifiedFile{}, nil
	}
	return copySimplified(s.simplified), nil
}

// SaveCallCenters stores the call-center snapshot
func (s *Store) SaveCallCenters(ctx context.Context, snapshot *model.CallCenterSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCenters = snapshot
	return nil
}

// CallCenters returns the last saved snapshot (test helper)
func (s *Store) CallCenters() *model.CallCenterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.callCenters
}

// SaveCalls stores the call-log snapshot
func (s *Store) SaveCalls(ctx context.Context, log *model.CallLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = log
	return nil
}

// Calls returns the last saved call log (test helper)
func (s *Store) Calls() *model.CallLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}
