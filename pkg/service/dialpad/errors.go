package dialpad

import "github.com/m-mizutani/goerr/v2"

// Error tags classify API failures. Callers branch on these with
// goerr.HasTag; the client itself never retries.
var (
	// TagAuth marks 401/403 responses: the token is invalid for every
	// subsequent call too, so batch operations must abort.
	TagAuth = goerr.NewTag("auth_error")
	// TagRateLimited marks 429 responses. Backing off is the caller's call.
	TagRateLimited = goerr.NewTag("rate_limited")
	// TagTransient marks 5xx responses, timeouts and transport failures
	TagTransient = goerr.NewTag("transient_error")
	// TagNotFound marks 404 responses
	TagNotFound = goerr.NewTag("not_found")
	// TagClient marks all remaining 4xx responses
	TagClient = goerr.NewTag("client_error")
)

// IsAuthError reports whether the error is a 401/403 API failure
func IsAuthError(err error) bool {
	return goerr.HasTag(err, TagAuth)
}

// IsNotFound reports whether the error is a 404 API failure
func IsNotFound(err error) bool {
	return goerr.HasTag(err, TagNotFound)
}
