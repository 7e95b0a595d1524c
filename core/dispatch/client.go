package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/stellarlog/relay/core/logger"
	"github.com/stellarlog/relay/pkg/urlcheck"
)

// maxBodyExcerpt bounds the response body copied into error details.
const maxBodyExcerpt = 500

// Client owns the request queue and the single worker goroutine. Safe for
// concurrent use by multiple producers.
type Client struct {
	httpClient *http.Client
	userAgent  string

	requestTimeout  time.Duration
	pollInterval    time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger

	mu     sync.Mutex
	queue  []*Request
	wake   chan struct{}
	cancel context.CancelFunc
	done   chan struct{}

	// Observability metrics
	enqueued  atomic.Int64
	delivered atomic.Int64
	failed    atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging.
type Stats struct {
	Enqueued  int64 // Total requests accepted into the queue
	Delivered int64 // Total requests delivered with a 2xx response
	Failed    int64 // Total requests that completed with a failure Result
	QueueLen  int   // Requests currently waiting in the queue
	IsRunning bool  // Whether the worker is currently running
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for internal operations.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The request timeout
// is still enforced per request via context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent overrides the User-Agent name/version pair from Config.
func WithUserAgent(name, version string) Option {
	return func(c *Client) {
		if name != "" {
			c.userAgent = name + "/" + version
		}
	}
}

// New creates a delivery client. Call Start to begin draining the queue.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}

	c := &Client{
		httpClient:      &http.Client{},
		userAgent:       cfg.ClientName + "/" + cfg.ClientVersion,
		requestTimeout:  cfg.RequestTimeout,
		pollInterval:    cfg.PollInterval,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger.Discard(),
		wake:            make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Start spawns the worker goroutine if it is not already running.
// Idempotent: starting a running client is a no-op. A worker that exited
// because the Start context was cancelled counts as stopped and may be
// started again.
func (c *Client) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.runningLocked() {
		c.logger.DebugContext(ctx, "dispatch worker already running",
			logger.Component("dispatch"))
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.worker(workerCtx, c.done)

	c.logger.InfoContext(ctx, "dispatch worker started",
		logger.Component("dispatch"),
		logger.UserAgent(c.userAgent),
		slog.Duration("poll_interval", c.pollInterval))
	return nil
}

// Stop signals the worker to exit and waits up to the shutdown timeout.
// An in-flight request is allowed to complete; requests still queued are
// dropped. On timeout the goroutine is abandoned and ErrShutdownTimeout
// is returned. Idempotent: stopping a stopped client is a no-op.
func (c *Client) Stop() error {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()

	c.logger.Info("dispatch worker stopping, waiting for in-flight request",
		logger.Component("dispatch"),
		slog.Duration("timeout", c.shutdownTimeout))

	select {
	case <-done:
		c.logger.Info("dispatch worker stopped cleanly", logger.Component("dispatch"))
		return nil
	case <-time.After(c.shutdownTimeout):
		c.logger.Warn("dispatch worker did not stop in the allocated time, abandoning",
			logger.Component("dispatch"),
			slog.Duration("timeout", c.shutdownTimeout))
		return ErrShutdownTimeout
	}
}

// Run provides errgroup compatibility for coordinated lifecycle
// management: starts the worker, waits for context cancellation, then
// performs graceful shutdown.
func (c *Client) Run(ctx context.Context) func() error {
	return func() error {
		if err := c.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		_ = c.Stop() // Best-effort shutdown; abandonment is acceptable here.
		return nil
	}
}

// EnqueuePost queues a JSON POST request and returns immediately. The
// callback fires exactly once with the outcome, on the worker goroutine.
// An invalid URL fails fast: the callback fires synchronously with a
// URLValidation origin and nothing is queued.
func (c *Client) EnqueuePost(url string, payload any, apiKey string, cb Callback) {
	if !urlcheck.IsValid(url) {
		c.logger.Error("invalid URL for POST request",
			logger.Component("dispatch"),
			logger.URL(url))
		if cb != nil {
			cb(Result{
				Success: false,
				Err: &ErrorDetail{
					Origin:  OriginURLValidation,
					Message: "invalid URL provided",
				},
			})
		}
		return
	}

	headers := map[string]string{
		"User-Agent":   c.userAgent,
		"Content-Type": "application/json",
	}
	if apiKey != "" {
		headers["x-api-key"] = apiKey
	}

	req := &Request{
		ID:         uuid.New(),
		URL:        url,
		Payload:    payload,
		Headers:    headers,
		Callback:   cb,
		EnqueuedAt: time.Now(),
	}

	c.mu.Lock()
	c.queue = append(c.queue, req)
	queued := len(c.queue)
	c.mu.Unlock()

	c.enqueued.Add(1)

	// Nudge the worker without blocking; the poll ticker covers a missed
	// signal.
	select {
	case c.wake <- struct{}{}:
	default:
	}

	c.logger.Debug("queued POST request",
		logger.Component("dispatch"),
		logger.RequestID(req.ID.String()),
		logger.URL(url),
		logger.Count("queue_len", queued))
}

// SyncGet performs a blocking GET on the caller's goroutine with the
// configured request timeout. The response body is decoded as JSON,
// falling back to raw text. Returns the body, the HTTP status code when a
// response was received, and an error for validation, transport, timeout,
// or non-2xx outcomes. The queue is never involved.
func (c *Client) SyncGet(ctx context.Context, url string, params, headers map[string]string) (any, int, error) {
	if !urlcheck.IsValid(url) {
		c.logger.Error("invalid URL for GET request",
			logger.Component("dispatch"),
			logger.URL(url))
		return nil, 0, ErrInvalidURL
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	if len(params) > 0 {
		q := httpReq.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			c.logger.Error("GET request timed out",
				logger.Component("dispatch"),
				logger.URL(url))
			return nil, 0, ErrRequestTimeout
		}
		c.logger.Error("GET request failed",
			logger.Component("dispatch"),
			logger.URL(url),
			logger.Error(err))
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("GET request returned unexpected status",
			logger.Component("dispatch"),
			logger.URL(url),
			logger.StatusCode(resp.StatusCode))
		return nil, resp.StatusCode, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return decodeBody(data), resp.StatusCode, nil
}

// QueueLen returns the number of requests currently waiting.
func (c *Client) QueueLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Stats returns current client statistics. Thread-safe.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	queued := len(c.queue)
	isRunning := c.runningLocked()
	c.mu.Unlock()

	return Stats{
		Enqueued:  c.enqueued.Load(),
		Delivered: c.delivered.Load(),
		Failed:    c.failed.Load(),
		QueueLen:  queued,
		IsRunning: isRunning,
	}
}

// Healthcheck reports whether the worker is running. Suitable for health
// check endpoints; use errors.Is against ErrNotRunning.
func (c *Client) Healthcheck(ctx context.Context) error {
	if !c.Stats().IsRunning {
		return ErrNotRunning
	}
	return nil
}

// runningLocked reports whether the worker goroutine is alive. Caller
// must hold mu. A non-nil cancel with a closed done channel means the
// worker exited on its own via external context cancellation.
func (c *Client) runningLocked() bool {
	if c.cancel == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// dequeue pops the oldest request, or nil when the queue is empty.
func (c *Client) dequeue() *Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return nil
	}
	req := c.queue[0]
	c.queue[0] = nil
	c.queue = c.queue[1:]
	return req
}

// decodeBody interprets a response body as JSON, falling back to raw
// text for non-JSON payloads.
func decodeBody(data []byte) any {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if gjson.ValidBytes(trimmed) {
		return gjson.ParseBytes(trimmed).Value()
	}
	return string(data)
}

// isTimeout distinguishes deadline expiry from other transport failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
