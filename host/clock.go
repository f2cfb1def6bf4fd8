package host

import "sync"

// Clock supplies the ledger timestamp, in unix seconds. Contracts must treat
// it as the only source of time.
type Clock interface {
	Now() uint64
}

// ManualClock is a settable Clock for deterministic tests.
type ManualClock struct {
	mu  sync.Mutex
	now uint64
}

// Compile-time interface check.
var _ Clock = (*ManualClock)(nil)

// NewManualClock creates a clock pinned at start.
func NewManualClock(start uint64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current timestamp.
func (c *ManualClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set pins the clock to ts.
func (c *ManualClock) Set(ts uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ts
}

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
