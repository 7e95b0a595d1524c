package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stellarlog/relay/core/logger"
)

// worker drains the queue one request at a time until ctx is cancelled.
// The shutdown signal is observed at queue-poll boundaries, so shutdown
// latency is bounded by the poll interval plus one in-flight request.
func (c *Client) worker(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			c.drainOnShutdown()
			return
		default:
		}

		if req := c.dequeue(); req != nil {
			c.process(ctx, req)
			continue
		}

		select {
		case <-ctx.Done():
			c.drainOnShutdown()
			return
		case <-c.wake:
		case <-time.After(c.pollInterval):
		}
	}
}

// drainOnShutdown drops whatever is still queued. Dropped requests are
// not failed: their callbacks never fire.
func (c *Client) drainOnShutdown() {
	c.mu.Lock()
	dropped := len(c.queue)
	c.queue = nil
	c.mu.Unlock()

	if dropped > 0 {
		c.logger.Warn("dropping queued requests on shutdown",
			logger.Component("dispatch"),
			logger.Count("dropped", dropped))
	}
}

// process performs one delivery attempt and invokes the callback exactly
// once. Any panic is treated as transient: logged, followed by a cooldown,
// never fatal to the worker.
func (c *Client) process(ctx context.Context, req *Request) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("unexpected panic in dispatch worker",
				logger.Component("dispatch"),
				logger.RequestID(req.ID.String()),
				logger.Key("panic", fmt.Sprint(r)))
			c.cooldown(ctx)
		}
	}()

	c.logger.Info("processing request",
		logger.Component("dispatch"),
		logger.RequestID(req.ID.String()),
		logger.URL(req.URL))

	res := c.post(req)

	if res.Success {
		c.delivered.Add(1)
		c.logger.Info("request delivered",
			logger.Component("dispatch"),
			logger.RequestID(req.ID.String()),
			logger.StatusCode(res.StatusCode),
			logger.Elapsed(req.EnqueuedAt))
	} else {
		c.failed.Add(1)
		c.logger.Error("request delivery failed",
			logger.Component("dispatch"),
			logger.RequestID(req.ID.String()),
			logger.URL(req.URL),
			logger.Error(res.Err))
	}

	if req.Callback != nil {
		req.Callback(res)
	}
}

// post performs the blocking POST and classifies the outcome. The request
// context is independent of the worker context so shutdown does not abort
// an in-flight request; the request timeout still applies.
func (c *Client) post(req *Request) Result {
	body, err := json.Marshal(req.Payload)
	if err != nil {
		return Result{Err: &ErrorDetail{
			Origin:  OriginRequest,
			Message: "failed to encode payload: " + err.Error(),
		}}
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, req.URL, bytes.NewReader(body))
	if err != nil {
		return Result{Err: &ErrorDetail{
			Origin:  OriginRequest,
			Message: "failed to build request: " + err.Error(),
		}}
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return Result{Err: &ErrorDetail{
				Origin:  OriginTimeout,
				Message: "request timed out",
			}}
		}
		return Result{Err: &ErrorDetail{
			Origin:  OriginRequest,
			Message: err.Error(),
		}}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{StatusCode: resp.StatusCode, Err: &ErrorDetail{
			Origin:     OriginRequest,
			Message:    "failed to read response body: " + err.Error(),
			StatusCode: resp.StatusCode,
		}}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{StatusCode: resp.StatusCode, Err: &ErrorDetail{
			Origin:     OriginHTTPError,
			Message:    fmt.Sprintf("unexpected response status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       excerpt(data),
		}}
	}

	return Result{
		Success:    true,
		StatusCode: resp.StatusCode,
		Body:       decodeBody(data),
	}
}

// cooldown pauses the worker after an unexpected failure so a hot error
// loop cannot spin. Cut short by shutdown.
func (c *Client) cooldown(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(5 * c.pollInterval):
	}
}

func excerpt(data []byte) string {
	if len(data) > maxBodyExcerpt {
		return string(data[:maxBodyExcerpt])
	}
	return string(data)
}
