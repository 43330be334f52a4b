// Package testutil holds helpers shared by gaia package tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds catalog queries and other blocking calls in tests.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at test cleanup. The timeout is capped
// so it expires before the test binary deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
