package invoicing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// asyncDeadline bounds every background operation. It has to outlive a slow
// Temporal signal plus a pubsub publish, both of which retry internally.
const asyncDeadline = 10 * time.Second

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute operations synchronously.
// Production code uses safeAsync (goroutine) by default.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine detached from the request context, with
// a deadline and structured error logging. Event publishes and workflow
// signals ride this path so they never fail silently and never block or
// abort the financial mutation that triggered them.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncDeadline)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
			return
		}
		rlog.Debug("async operation succeeded", "op", op)
	}()
}
