package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/region"
)

// ErrBadMaxExpanded indicates a negative expansion bound.
var ErrBadMaxExpanded = errors.New("astar: MaxExpanded must be non-negative")

// Result is the outcome of one Search.
type Result struct {
	Path     []geometry.Point // goal-first, start-last; nil when not found
	Cost     float64          // accumulated g-score of the goal
	Expanded int              // nodes popped and expanded
	Visited  int              // cells admitted to the search arena
	Found    bool
}

// StartFirst returns a copy of Path ordered start-first.
func (r Result) StartFirst() []geometry.Point {
	if len(r.Path) == 0 {
		return nil
	}
	out := make([]geometry.Point, len(r.Path))
	for i, p := range r.Path {
		out[len(r.Path)-1-i] = p
	}

	return out
}

// Options configures a Search.
type Options struct {
	Colorer     *region.Colorer // resolves region membership of the endpoints
	MaxExpanded int             // 0 = unlimited
}

// Option is a functional option for Search.
type Option func(*Options)

// WithColorer sets the colorer used to label endpoints on demand. A nil
// colorer keeps the default.
func WithColorer(c *region.Colorer) Option {
	return func(o *Options) {
		if c != nil {
			o.Colorer = c
		}
	}
}

// WithMaxExpanded stops the search unsuccessfully after n expansions.
// Panics with ErrBadMaxExpanded if n < 0.
func WithMaxExpanded(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpanded.Error())
		}
		o.MaxExpanded = n
	}
}

var defaultColorer = region.NewColorer()

// DefaultOptions returns a shared colorer drawing from region.Default and no
// expansion bound.
func DefaultOptions() Options {
	return Options{
		Colorer: defaultColorer,
	}
}
