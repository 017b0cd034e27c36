// Package parallel provides small concurrency helpers for the batch
// evaluation path: a first-error collector and a semaphore-bounded runner.
package parallel

import "sync"

// ErrorCollector captures the first non-nil error reported by any of a
// group of goroutines. Subsequent errors are dropped; nil reports are
// ignored. The zero value is ready to use.
type ErrorCollector struct {
	mu  sync.Mutex
	err error
}

// SetError records err if it is the first non-nil error seen.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

// Err returns the captured error, or nil if none was reported.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
