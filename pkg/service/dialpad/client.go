package dialpad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/globalnoc/dutyboard/pkg/domain/model"
	"github.com/globalnoc/dutyboard/pkg/domain/types"
	"github.com/globalnoc/dutyboard/pkg/utils/logging"
)

const (
	// DefaultBaseURL is the Dialpad production API endpoint
	DefaultBaseURL = "https://dialpad.com/api/v2"
	// DefaultTimeout bounds every single request
	DefaultTimeout = 30 * time.Second
	// pageSafetyLimit guards the pagination loop against a cursor that
	// never terminates
	pageSafetyLimit = 1000
)

// Config holds the explicit client configuration. Token is tagged as a
// secret so it never appears in logs.
type Config struct {
	BaseURL string
	Token   string `masq:"secret"`
	Timeout time.Duration
}

// client implements Service
type client struct {
	http *resty.Client
}

// New creates a Dialpad API client from explicit configuration
func New(cfg Config) (Service, error) {
	if cfg.Token == "" {
		return nil, goerr.New("Dialpad bearer token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &client{http: httpClient}, nil
}

// apiError maps a non-2xx response to a tagged error
func apiError(resp *resty.Response, path string) error {
	code := resp.StatusCode()
	opts := []goerr.Option{
		goerr.V("status", code),
		goerr.V("path", path),
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return goerr.New("Dialpad API rejected the bearer token", append(opts, goerr.T(TagAuth))...)
	case code == http.StatusTooManyRequests:
		return goerr.New("Dialpad API rate limit exceeded", append(opts, goerr.T(TagRateLimited))...)
	case code == http.StatusNotFound:
		return goerr.New("Dialpad API resource not found", append(opts, goerr.T(TagNotFound))...)
	case code >= http.StatusInternalServerError:
		return goerr.New("Dialpad API server error", append(opts, goerr.T(TagTransient))...)
	default:
		return goerr.New("Dialpad API request failed", append(opts, goerr.T(TagClient))...)
	}
}

// transportError wraps request-level failures (timeouts, DNS, conn reset)
func transportError(err error, path string) error {
	return goerr.Wrap(err, "Dialpad API request did not complete",
		goerr.T(TagTransient), goerr.V("path", path))
}

// usersPage is the user-listing envelope. Older API revisions used
// "results" instead of "items", so both are accepted.
type usersPage struct {
	Items   []*model.User `json:"items"`
	Results []*model.User `json:"results"`
	Cursor  string        `json:"cursor"`
}

func (x *usersPage) users() []*model.User {
	if len(x.Items) > 0 {
		return x.Items
	}
	return x.Results
}

func (c *client) ListUsers(ctx context.Context, cursor string) ([]*model.User, string, error) {
	const path = "/users"

	req := c.http.R().SetContext(ctx)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, "", transportError(err, path)
	}
	if resp.IsError() {
		return nil, "", apiError(resp, path)
	}

	var page usersPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, "", goerr.Wrap(err, "failed to decode user listing", goerr.V("path", path))
	}

	users := page.users()
	logging.From(ctx).Debug("fetched user page", "count", len(users), "next_cursor", page.Cursor != "")

	return users, page.Cursor, nil
}

func (c *client) GetUserStatus(ctx context.Context, id types.UserID) (*UserStatus, error) {
	path := fmt.Sprintf("/users/%s", id)

	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, transportError(err, path)
	}
	if resp.IsError() {
		return nil, apiError(resp, path)
	}

	var status UserStatus
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user status", goerr.V("user_id", id))
	}
	if err := json.Unmarshal(resp.Body(), &status.Raw); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user status body", goerr.V("user_id", id))
	}

	return &status, nil
}

// itemsEnvelope covers the office listing, which uses "items"
type itemsEnvelope[T any] struct {
	Items []T `json:"items"`
}

// resultsEnvelope covers the call-center and call listings, which use
// "results"
type resultsEnvelope[T any] struct {
	Results []T    `json:"results"`
	Cursor  string `json:"cursor"`
}

func (c *client) ListOffices(ctx context.Context) ([]*model.Office, error) {
	const path = "/offices"

	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, transportError(err, path)
	}
	if resp.IsError() {
		return nil, apiError(resp, path)
	}

	var envelope itemsEnvelope[*model.Office]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode office listing")
	}

	return envelope.Items, nil
}

func (c *client) ListCallCenters(ctx context.Context) ([]*model.CallCenter, error) {
	const path = "/callcenters"

	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, transportError(err, path)
	}
	if resp.IsError() {
		return nil, apiError(resp, path)
	}

	var envelope resultsEnvelope[*model.CallCenter]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, goerr.Wrap(err, "failed to decode call center listing")
	}

	return envelope.Results, nil
}

func (c *client) ListCalls(ctx context.Context, q CallQuery) ([]*model.Call, error) {
	const path = "/call"

	var calls []*model.Call
	cursor := ""

	for page := 0; page < pageSafetyLimit; page++ {
		req := c.http.R().SetContext(ctx)
		if cursor != "" {
			req.SetQueryParam("cursor", cursor)
		}
		if q.StartedAfter != nil {
			req.SetQueryParam("started_after", strconv.FormatInt(q.StartedAfter.UnixMilli(), 10))
		}
		if q.StartedBefore != nil {
			req.SetQueryParam("started_before", strconv.FormatInt(q.StartedBefore.UnixMilli(), 10))
		}

		resp, err := req.Get(path)
		if err != nil {
			return nil, transportError(err, path)
		}
		if resp.IsError() {
			return nil, apiError(resp, path)
		}

		var envelope resultsEnvelope[*model.Call]
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
			return nil, goerr.Wrap(err, "failed to decode call listing")
		}

		calls = append(calls, envelope.Results...)
		logging.From(ctx).Debug("fetched call page", "count", len(envelope.Results), "total", len(calls))

		if q.Limit > 0 && len(calls) >= q.Limit {
			return calls[:q.Limit], nil
		}
		if envelope.Cursor == "" || len(envelope.Results) == 0 {
			break
		}
		cursor = envelope.Cursor
	}

	return calls, nil
}
