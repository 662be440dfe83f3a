package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/repository/memory"
	"github.com/globalnoc/dutyboard/pkg/usecase"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestFetchRoster(t *testing.T) {
	t.Run("filters users by office and decorates metadata", func(t *testing.T) {
		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				if cursor == "" {
					return []*model.User{
						{ID: "u1", DisplayName: "Alice", OfficeID: "office-1"},
						{ID: "u2", DisplayName: "Bob", OfficeID: "office-2"},
					}, "page2", nil
				}
				return []*model.User{
					{ID: "u3", DisplayName: "Carol", OfficeID: "office-1"},
				}, "", nil
			},
			listOffices: func(ctx context.Context) ([]*model.Office, error) {
				return []*model.Office{
					{ID: "office-2", Name: "Chicago"},
					{ID: "office-1", Name: "Bloomington"},
				}, nil
			},
		}
		store := memory.New()
		uc := usecase.New(api, store, "office-1", usecase.WithClock(fixedClock()))

		summary, err := uc.FetchRoster(context.Background(), usecase.FetchOptions{})
		gt.NoError(t, err).Required()
		gt.Value(t, summary.TotalFetched).Equal(3)
		gt.Value(t, summary.TotalMatched).Equal(2)

		roster, err := store.LoadRoster(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, roster.Users).Length(2)
		gt.Value(t, string(roster.Users[0].ID)).Equal("u1")
		gt.Value(t, string(roster.Users[1].ID)).Equal("u3")
		gt.Value(t, roster.Metadata.OfficeName).Equal("Bloomington")
		gt.Value(t, roster.Metadata.TotalUsers).Equal(3)
		gt.Value(t, roster.Metadata.MatchedUsers).Equal(2)
		gt.Bool(t, roster.Metadata.FetchedAt.Equal(fixedClock()())).True()
	})

	t.Run("requires an office ID", func(t *testing.T) {
		uc := usecase.New(&mockAPI{}, memory.New(), "")
		_, err := uc.FetchRoster(context.Background(), usecase.FetchOptions{})
		gt.Error(t, err)
	})

	t.Run("mid-pagination failure keeps the previous cache", func(t *testing.T) {
		store := memory.New()
		ctx := context.Background()

		previous := &model.Roster{
			Metadata: model.RosterMetadata{OfficeID: "office-1", MatchedUsers: 1},
			Users:    []*model.User{{ID: "old-user", OfficeID: "office-1"}},
		}
		gt.NoError(t, store.SaveRoster(ctx, previous)).Required()

		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				if cursor == "" {
					return []*model.User{{ID: "u1", OfficeID: "office-1"}}, "page2", nil
				}
				return nil, "", errors.New("connection reset")
			},
		}
		uc := usecase.New(api, store, "office-1")

		_, err := uc.FetchRoster(ctx, usecase.FetchOptions{})
		gt.Error(t, err)

		roster, err := store.LoadRoster(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, roster.Users).Length(1)
		gt.Value(t, string(roster.Users[0].ID)).Equal("old-user")
	})

	t.Run("office lookup failure does not abort the fetch", func(t *testing.T) {
		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				return []*model.User{{ID: "u1", OfficeID: "office-1"}}, "", nil
			},
			listOffices: func(ctx context.Context) ([]*model.Office, error) {
				return nil, errors.New("offices endpoint down")
			},
		}
		store := memory.New()
		uc := usecase.New(api, store, "office-1")

		_, err := uc.FetchRoster(context.Background(), usecase.FetchOptions{})
		gt.NoError(t, err).Required()

		roster, err := store.LoadRoster(context.Background())
		gt.NoError(t, err).Required()
		gt.Value(t, roster.Metadata.OfficeName).Equal("Unknown")
	})

	t.Run("simplified merge preserves custom fields across refreshes", func(t *testing.T) {
		store := memory.New()
		ctx := context.Background()

		users := []*model.User{{ID: "u1", DisplayName: "Alice", OfficeID: "office-1"}}
		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				return users, "", nil
			},
		}
		uc := usecase.New(api, store, "office-1")

		summary, err := uc.FetchRoster(ctx, usecase.FetchOptions{})
		gt.NoError(t, err).Required()
		gt.Value(t, summary.MergedNew).Equal(1)

		// operator edits a custom field by hand
		file, err := store.LoadSimplified(ctx)
		gt.NoError(t, err).Required()
		file.Users[0].Team = "Network Ops"
		gt.NoError(t, store.SaveSimplified(ctx, file)).Required()

		// second fetch adds a user and must not clobber the edit
		users = append(users, &model.User{ID: "u2", DisplayName: "Bob", OfficeID: "office-1"})
		summary, err = uc.FetchRoster(ctx, usecase.FetchOptions{})
		gt.NoError(t, err).Required()
		gt.Value(t, summary.MergedNew).Equal(1)
		gt.Value(t, summary.MergedExisting).Equal(1)

		file, err = store.LoadSimplified(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, file.Users).Length(2)
		gt.Value(t, file.Users[0].Team).Equal("Network Ops")
		gt.Value(t, file.Users[1].Team).Equal("")
	})

	t.Run("departed users stay in the simplified set", func(t *testing.T) {
		store := memory.New()
		ctx := context.Background()

		users := []*model.User{
			{ID: "u1", DisplayName: "Alice", OfficeID: "office-1"},
			{ID: "u2", DisplayName: "Bob", OfficeID: "office-1"},
		}
		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				return users, "", nil
			},
		}
		uc := usecase.New(api, store, "office-1")

		_, err := uc.FetchRoster(ctx, usecase.FetchOptions{})
		gt.NoError(t, err).Required()

		users = users[:1]
		summary, err := uc.FetchRoster(ctx, usecase.FetchOptions{})
		gt.NoError(t, err).Required()
		gt.Value(t, summary.Retained).Equal(1)

		file, err := store.LoadSimplified(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, file.Users).Length(2)
		gt.Value(t, string(file.Users[1].ID)).Equal("u2")
	})

	t.Run("skip-simplified leaves the simplified set untouched", func(t *testing.T) {
		store := memory.New()
		api := &mockAPI{
			listUsers: func(ctx context.Context, cursor string) ([]*model.User, string, error) {
				return []*model.User{{ID: "u1", OfficeID: "office-1"}}, "", nil
			},
		}
		uc := usecase.New(api, store, "office-1")

		_, err := uc.FetchRoster(context.Background(), usecase.FetchOptions{SkipSimplified: true})
		gt.NoError(t, err).Required()

		file, err := store.LoadSimplified(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, file.Users).Length(0)
	})
}
