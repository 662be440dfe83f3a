package filesystem

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/interfaces"
	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

const (
	defaultRosterFile      = "users.json"
	defaultSimplifiedFile  = "simplified_users.json"
	defaultCallCentersFile = "call_centers.json"
	defaultCallsFile       = "calls.json"
)

// Store persists cache files as JSON (plus a CSV rendition of the
// simplified set) under a single data directory.
type Store struct {
	dir             string
	rosterFile      string
	simplifiedFile  string
	callCentersFile string
	callsFile       string
}

// Option is a functional option for Store configuration
type Option func(*Store)

// WithRosterFile overrides the roster cache file name
func WithRosterFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.rosterFile = name
		}
	}
}

// WithCallCentersFile overrides the call-center snapshot file name
func WithCallCentersFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.callCentersFile = name
		}
	}
}

// WithCallsFile overrides the call-log snapshot file name
func WithCallsFile(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.callsFile = name
		}
	}
}

// New creates a filesystem store rooted at dir, creating it if needed
func New(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}

	s := &Store{
		dir:             dir,
		rosterFile:      defaultRosterFile,
		simplifiedFile:  defaultSimplifiedFile,
		callCentersFile: defaultCallCentersFile,
		callsFile:       defaultCallsFile,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// RosterPath returns the absolute location of the roster cache file
func (s *Store) RosterPath() string {
	return filepath.Join(s.dir, s.rosterFile)
}

// writeJSON writes v to path via a temp file and rename, so a failed write
// never truncates an existing cache
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal cache file", goerr.V("path", path))
	}

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("dir", s.dir))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return goerr.Wrap(err, "failed to replace cache file", goerr.V("path", path))
	}

	return nil
}

func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 - path is built from operator-provided flags
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse cache file", goerr.V("path", path))
	}
	return nil
}

// SaveRoster overwrites the roster cache atomically
func (s *Store) SaveRoster(ctx context.Context, roster *model.Roster) error {
	path := s.RosterPath()
	if err := s.writeJSON(path, roster); err != nil {
		return err
	}
	logging.From(ctx).Info("roster cache written", "path", path, "users", len(roster.Users))
	return nil
}

// LoadRoster reads the roster cache
func (s *Store) LoadRoster(ctx context.Context) (*model.Roster, error) {
	path := s.RosterPath()

	var roster model.Roster
	if err := s.readJSON(path, &roster); err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(interfaces.ErrCacheMissing, "no roster cache", goerr.V("path", path))
		}
		return nil, err
	}

	return &roster, nil
}

// SaveSimplified overwrites the simplified record set and its CSV rendition
func (s *Store) SaveSimplified(ctx context.Context, file *model.SimplifiedFile) error {
	jsonPath := filepath.Join(s.dir, s.simplifiedFile)
	if err := s.writeJSON(jsonPath, file); err != nil {
		return err
	}

	csvPath := strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".csv"
	if err := s.writeCSV(csvPath, file.Users); err != nil {
		return err
	}

	logging.From(ctx).Info("simplified user files written",
		"json", jsonPath, "csv", csvPath, "users", len(file.Users))
	return nil
}

func (s *Store) writeCSV(path string, users []*model.SimplifiedUser) error {
	f, err := os.Create(path) // #nosec G304 - path is built from operator-provided flags
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.V("path", path))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.CSVHeader()); err != nil {
		return goerr.Wrap(err, "failed to write CSV header", goerr.V("path", path))
	}
	for _, u := range users {
		if err := w.Write(u.CSVRecord()); err != nil {
			return goerr.Wrap(err, "failed to write CSV record", goerr.V("path", path), goerr.V("user_id", u.ID))
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV file", goerr.V("path", path))
	}
	return nil
}

// LoadSimplified reads the simplified record set; a missing file loads as
// an empty set
func (s *Store) LoadSimplified(ctx context.Context) (*model.SimplifiedFile, error) {
	path := filepath.Join(s.dir, s.simplifiedFile)

	var file model.SimplifiedFile
	if err := s.readJSON(path, &file); err != nil {
		if os.IsNotExist(err) {
			return &model.SimplifiedFile{}, nil
		}
		return nil, err
	}

	return &file, nil
}

// SaveCallCenters overwrites the call-center snapshot
func (s *Store) SaveCallCenters(ctx context.Context, snapshot *model.CallCenterSnapshot) error {
	path := filepath.Join(s.dir, s.callCentersFile)
	if err := s.writeJSON(path, snapshot); err != nil {
		return err
	}
	logging.From(ctx).Info("call center snapshot written", "path", path, "count", len(snapshot.CallCenters))
	return nil
}

// SaveCalls overwrites the call-log snapshot
func (s *Store) SaveCalls(ctx context.Context, log *model.CallLog) error {
	path := filepath.Join(s.dir, s.callsFile)
	if err := s.writeJSON(path, log); err != nil {
		return err
	}
	logging.From(ctx).Info("call log written", "path", path, "count", len(log.Calls))
	return nil
}
