package list

import "sync/atomic"

// Tracker is notified whenever a list allocates or releases a node.
type Tracker interface {
	Allocated()
	Released()
}

type Option func(*config)

type config struct {
	tracker Tracker
}

func WithTracker(tracker Tracker) Option {
	return func(c *config) {
		c.tracker = tracker
	}
}

// Counter is a Tracker that counts node allocations and releases.
type Counter struct {
	allocations atomic.Int64
	releases    atomic.Int64
}

var _ Tracker = &Counter{}

func (c *Counter) Allocated() {
	c.allocations.Add(1)
}

func (c *Counter) Released() {
	c.releases.Add(1)
}

func (c *Counter) Allocations() int64 {
	return c.allocations.Load()
}

func (c *Counter) Releases() int64 {
	return c.releases.Load()
}

// Live is the number of nodes allocated and not yet released.
func (c *Counter) Live() int64 {
	return c.Allocations() - c.Releases()
}
