package region

import (
	"log"
	"sync/atomic"
)

// ID labels a region. Zero is reserved for "unlabeled".
type ID = uint64

// IDSource hands out region IDs. Next must be safe for concurrent use and
// never return the same value twice or return 0.
type IDSource interface {
	Next() ID
	Current() ID
}

// Counter is an atomic IDSource. The zero value is ready to use.
type Counter struct {
	last atomic.Uint64
}

// NewCounter returns a Counter whose first ID is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next reserves and returns the next ID.
func (c *Counter) Next() ID {
	return c.last.Add(1)
}

// Current returns the most recently issued ID, 0 if none.
func (c *Counter) Current() ID {
	return c.last.Load()
}

// Reset rewinds the counter so the next ID is 1. Only meaningful when no map
// still carries labels from this counter.
func (c *Counter) Reset() {
	c.last.Store(0)
}

// Default is the process-wide IDSource used by colorers built without WithIDSource.
var Default = NewCounter()

// Options configures a Colorer.
type Options struct {
	IDs           IDSource    // where region IDs come from
	NeighborCache bool        // record neighbor caches while filling
	Logger        *log.Logger // optional; nil disables logging
}

// Option is a functional option for NewColorer.
type Option func(*Options)

// WithIDSource injects the IDSource. A nil source keeps the default.
func WithIDSource(src IDSource) Option {
	return func(o *Options) {
		if src != nil {
			o.IDs = src
		}
	}
}

// WithNeighborCache toggles neighbor-cache recording during flood fills.
func WithNeighborCache(enabled bool) Option {
	return func(o *Options) {
		o.NeighborCache = enabled
	}
}

// WithLogger reports each identified region (ID, start, size, duration) to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Default as ID source, neighbor caching on and no logger.
func DefaultOptions() Options {
	return Options{
		IDs:           Default,
		NeighborCache: true,
	}
}
