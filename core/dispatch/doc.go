// Package dispatch provides the asynchronous HTTP delivery client: an
// unbounded FIFO queue of outbound POST requests drained by a single
// worker goroutine, plus an independent synchronous GET path.
//
// Producers enqueue without blocking and receive the outcome through a
// callback invoked exactly once on the worker goroutine. Requests are
// delivered in strict enqueue order, one at a time; a slow request delays
// everything behind it. Network failures never surface as errors to the
// producer — they are classified into a typed Result and handed to the
// callback.
//
// Basic usage:
//
//	client, err := dispatch.New(dispatch.DefaultConfig(),
//		dispatch.WithUserAgent("relay", "1.0.0"),
//		dispatch.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	if err := client.Start(ctx); err != nil {
//		return err
//	}
//	defer client.Stop()
//
//	client.EnqueuePost(apiURL, payload, apiKey, func(res dispatch.Result) {
//		if !res.Success {
//			log.Error("delivery failed", logger.Key("origin", res.Err.Origin))
//		}
//	})
//
// The synchronous GET path blocks the caller up to the configured request
// timeout and is safe to use from any goroutine:
//
//	body, status, err := client.SyncGet(ctx, lookupURL, params, nil)
//
// Shutdown is cooperative: Stop cancels the worker, lets an in-flight
// request finish, and waits up to the shutdown timeout. Requests still
// queued when the worker exits are dropped, not failed.
package dispatch
