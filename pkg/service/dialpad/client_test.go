package dialpad_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/globalnoc/dutyboard/pkg/service/dialpad"
)

func newTestClient(t *testing.T, handler http.Handler) dialpad.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := dialpad.New(dialpad.Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
	gt.NoError(t, err).Required()
	return svc
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := dialpad.New(dialpad.Config{})
	gt.Error(t, err)
}

func TestListUsers_Pagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

		switch r.URL.Query().Get("cursor") {
		case "":
			fmt.Fprint(w, `{"items": [{"id": "u1", "display_name": "Alice"}], "cursor": "page2"}`)
		case "page2":
			fmt.Fprint(w, `{"items": [{"id": "u2", "display_name": "Bob"}]}`)
		default:
			t.Errorf("unexpected cursor: %s", r.URL.Query().Get("cursor"))
		}
	})
	svc := newTestClient(t, mux)
	ctx := context.Background()

	users, next, err := svc.ListUsers(ctx, "")
	gt.NoError(t, err).Required()
	gt.Array(t, users).Length(1)
	gt.Value(t, string(users[0].ID)).Equal("u1")
	gt.Value(t, next).Equal("page2")

	users, next, err = svc.ListUsers(ctx, next)
	gt.NoError(t, err).Required()
	gt.Array(t, users).Length(1)
	gt.Value(t, string(users[0].ID)).Equal("u2")
	gt.Value(t, next).Equal("")
}

func TestListUsers_ResultsEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": "u1"}, {"id": "u2"}]}`)
	})
	svc := newTestClient(t, mux)

	users, _, err := svc.ListUsers(context.Background(), "")
	gt.NoError(t, err).Required()
	gt.Array(t, users).Length(2)
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		status int
		check  func(err error) bool
	}{
		{"401 is an auth error", http.StatusUnauthorized, dialpad.IsAuthError},
		{"403 is an auth error", http.StatusForbidden, dialpad.IsAuthError},
		{"404 is not found", http.StatusNotFound, dialpad.IsNotFound},
		{"429 is rate limited", http.StatusTooManyRequests, func(err error) bool {
			return goerr.HasTag(err, dialpad.TagRateLimited)
		}},
		{"500 is transient", http.StatusInternalServerError, func(err error) bool {
			return goerr.HasTag(err, dialpad.TagTransient)
		}},
		{"503 is transient", http.StatusServiceUnavailable, func(err error) bool {
			return goerr.HasTag(err, dialpad.TagTransient)
		}},
		{"400 is a client error", http.StatusBadRequest, func(err error) bool {
			return goerr.HasTag(err, dialpad.TagClient)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))

			_, _, err := svc.ListUsers(context.Background(), "")
			gt.Error(t, err)
			gt.Bool(t, tc.check(err)).True()
		})
	}
}

func TestGetUserStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "u1",
			"display_name": "Alice",
			"state": "active",
			"on_duty_status": "unavailable",
			"duty_status_reason": "at_break",
			"duty_status_started": "2026-08-28T09:00:00Z",
			"do_not_disturb": true,
			"extra_field": "kept"
		}`)
	})
	svc := newTestClient(t, mux)

	status, err := svc.GetUserStatus(context.Background(), "u1")
	gt.NoError(t, err).Required()
	gt.Value(t, status.OnDutyStatus).Equal("unavailable")
	gt.Value(t, status.DutyStatusReason).Equal("at_break")
	gt.Bool(t, status.DoNotDisturb).True()

	started, ok := status.StartedAt()
	gt.Bool(t, ok).True()
	gt.Value(t, started.UTC().Hour()).Equal(9)

	// raw payload keeps fields the typed struct does not model
	gt.Value(t, status.Raw["extra_field"]).Equal("kept")
}

func TestGetUserStatus_UnparseableStart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/u1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "u1", "duty_status_started": "not-a-time"}`)
	})
	svc := newTestClient(t, mux)

	status, err := svc.GetUserStatus(context.Background(), "u1")
	gt.NoError(t, err).Required()
	_, ok := status.StartedAt()
	gt.Bool(t, ok).False()
}

func TestListCalls(t *testing.T) {
	after := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/call", func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Query().Get("started_after")).
			Equal(fmt.Sprintf("%d", after.UnixMilli()))

		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `{"results": [{"id": "c1"}, {"id": "c2"}], "cursor": "next"}`)
		} else {
			fmt.Fprint(w, `{"results": [{"id": "c3"}]}`)
		}
	})
	svc := newTestClient(t, mux)

	calls, err := svc.ListCalls(context.Background(), dialpad.CallQuery{StartedAfter: &after})
	gt.NoError(t, err).Required()
	gt.Array(t, calls).Length(3)
	gt.Value(t, calls[2].ID).Equal("c3")
}

func TestListCalls_LimitTruncates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/call", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": "c1"}, {"id": "c2"}, {"id": "c3"}], "cursor": "next"}`)
	})
	svc := newTestClient(t, mux)

	calls, err := svc.ListCalls(context.Background(), dialpad.CallQuery{Limit: 2})
	gt.NoError(t, err).Required()
	gt.Array(t, calls).Length(2)
}

func TestTimeoutIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	svc, err := dialpad.New(dialpad.Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 20 * time.Millisecond,
	})
	gt.NoError(t, err).Required()

	_, _, err = svc.ListUsers(context.Background(), "")
	gt.Error(t, err)
	gt.Bool(t, goerr.HasTag(err, dialpad.TagTransient)).True()
}
