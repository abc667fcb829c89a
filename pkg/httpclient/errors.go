package httpclient

import (
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned for non-2xx responses from an upstream API.
// The body is retained (up to 1 MB) so callers can decode provider-specific
// error envelopes from it.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, string(e.Body))
}

// NewStatusError drains and closes the response body and wraps the response
// into a StatusError. The caller should only invoke this when resp.StatusCode
// indicates an error (i.e., not 2xx).
func NewStatusError(resp *http.Response) *StatusError {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB limit
	if err != nil {
		body = nil
	}
	return &StatusError{Status: resp.StatusCode, Body: body}
}

// IsClientError returns true if the HTTP status code is a 4xx client error.
// Client errors (validation, auth, bad references) should not be retried;
// the request itself was invalid.
func IsClientError(status int) bool {
	return status >= 400 && status < 500
}
