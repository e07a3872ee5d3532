package api

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrUnavailable wraps every transport-level failure: connection refused,
	// timeout, aborted request. No response reached the client.
	ErrUnavailable = errors.New("service unavailable")

	// ErrAuthRequired means the refresh path is exhausted: either the refresh
	// itself failed or the retried request was rejected again. The UI should
	// prompt for re-authentication.
	ErrAuthRequired = errors.New("authentication required")

	// ErrIdentityUnavailable means no user identifier could be derived from
	// the stored credential.
	ErrIdentityUnavailable = errors.New("identity unavailable")
)

// HTTPError is a non-2xx response that survived all applicable retries.
type HTTPError struct {
	Status int
	Body   string
	Method string
	Path   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// DecodeError is a 2xx response whose body could not be interpreted as the
// expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// mapTransportError wraps a transport failure so both ErrUnavailable and the
// underlying cause (context.Canceled included) stay matchable.
func mapTransportError(d Descriptor, err error) error {
	return fmt.Errorf("%s %s: %w: %w", d.Method, d.Path, ErrUnavailable, err)
}
