package usecase

import (
	"time"

	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
)

// DefaultConcurrency bounds the status lookup fan-out
const DefaultConcurrency = 8

// UseCases wires the Dialpad client and the roster store behind the CLI
// and HTTP surfaces. Configuration is explicit; no package-level state.
type UseCases struct {
	api      dialpad.Service
	store    interfaces.RosterStore
	officeID types.OfficeID
	now      func() time.Time
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithClock replaces the wall-clock source (test injection)
func WithClock(now func() time.Time) Option {
	return func(u *UseCases) {
		u.now = now
	}
}

// New creates the use case layer
func New(api dialpad.Service, store interfaces.RosterStore, officeID types.OfficeID, opts ...Option) *UseCases {
	u := &UseCases{
		api:      api,
		store:    store,
		officeID: officeID,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
