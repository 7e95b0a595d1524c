package dispatch

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Origin categorizes a delivery failure so callbacks and logs can act on
// it without parsing messages.
type Origin string

const (
	// OriginURLValidation marks requests rejected before reaching the
	// queue. The only origin reported synchronously on the caller's
	// goroutine.
	OriginURLValidation Origin = "URLValidation"

	// OriginHTTPError marks a non-2xx response from the remote endpoint.
	OriginHTTPError Origin = "HTTPError"

	// OriginTimeout marks a request that exceeded the request timeout.
	OriginTimeout Origin = "Timeout"

	// OriginRequest marks any other transport-level failure (DNS,
	// connection reset, TLS, payload encoding).
	OriginRequest Origin = "RequestException"
)

// ErrorDetail carries machine-parseable failure context inside a Result.
type ErrorDetail struct {
	Origin     Origin `json:"error_origin"`
	Message    string `json:"error,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"response_body,omitempty"`
}

// Error implements the error interface.
func (e *ErrorDetail) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Origin, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Origin, e.Message)
}

// Result is the outcome of one delivery attempt, passed exactly once to
// the request's callback and never retained by the client.
type Result struct {
	Success    bool
	StatusCode int          // 0 when no response was received
	Body       any          // decoded JSON, or raw text when not JSON
	Err        *ErrorDetail // nil on success
}

// Callback receives the delivery outcome. Invoked on the worker goroutine
// except for URL validation failures, which fire synchronously on the
// enqueueing goroutine.
type Callback func(Result)

// Request is one queued outbound POST. Owned exclusively by the queue
// from enqueue until the worker dequeues it; released after the callback
// fires.
type Request struct {
	ID         uuid.UUID
	URL        string
	Payload    any
	Headers    map[string]string
	Callback   Callback
	EnqueuedAt time.Time
}

func (r *Request) String() string {
	return fmt.Sprintf("Request(id=%s url=%s)", r.ID, r.URL)
}
