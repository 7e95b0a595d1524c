package dispatch

import "errors"

var (
	// ErrInvalidURL is returned by SyncGet when the URL fails validation.
	ErrInvalidURL = errors.New("invalid URL provided")

	// ErrRequestTimeout is returned by SyncGet when the request exceeds
	// the configured timeout.
	ErrRequestTimeout = errors.New("request timed out")

	// ErrUnexpectedStatus is returned by SyncGet on a non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrShutdownTimeout is returned by Stop when the worker fails to
	// exit within the shutdown timeout. The goroutine is abandoned.
	ErrShutdownTimeout = errors.New("shutdown timeout exceeded")

	// ErrNotRunning is returned by Healthcheck when the worker is down.
	ErrNotRunning = errors.New("dispatch worker is not running")
)
