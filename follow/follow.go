package follow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/gridmap"
)

var (
	// ErrBadSpeed indicates a non-positive walking speed.
	ErrBadSpeed = errors.New("follow: speed must be positive")
	// ErrBadStep indicates a negative time step.
	ErrBadStep = errors.New("follow: time step must be non-negative")
)

// Delta is the mover's progress between two adjacent path points.
// Travelled is in [0, 1).
type Delta struct {
	From, To  geometry.Point
	Travelled float64
}

// Follower tracks a mover's progress along a path.
type Follower struct {
	path []geometry.Point // start-first
	cur  int              // index of the point being left
	frac float64
	done bool
}

// New returns a Follower for a goal-first path as produced by astar.
// Paths with fewer than two points are complete from the start.
func New(goalFirst []geometry.Point) *Follower {
	f := &Follower{path: make([]geometry.Point, len(goalFirst))}
	for i, p := range goalFirst {
		f.path[len(goalFirst)-1-i] = p
	}
	if len(f.path) < 2 {
		f.done = true
	}

	return f
}

// Path returns the path in walking order (start-first).
func (f *Follower) Path() []geometry.Point {
	return f.path
}

// Done reports whether the goal has been reached.
func (f *Follower) Done() bool {
	return f.done
}

// Advance moves the mover forward by dt seconds at the given speed over m.
// Leftover progress carries into the following steps.
func (f *Follower) Advance(m *gridmap.Map, speed, dt float64) error {
	if speed <= 0 {
		return fmt.Errorf("%w: %v", ErrBadSpeed, speed)
	}
	if dt < 0 {
		return fmt.Errorf("%w: %v", ErrBadStep, dt)
	}
	if f.done {
		return nil
	}

	from, to := f.path[f.cur], f.path[f.cur+1]
	weight := (m.At(from).Weight + m.At(to).Weight) / 2
	f.frac += dt * speed / (weight * geometry.Euclidean(from, to))

	for f.frac >= 1 {
		f.frac--
		f.cur++
		if f.cur >= len(f.path)-1 {
			f.cur = len(f.path) - 1
			f.frac = 0
			f.done = true
			break
		}
	}

	return nil
}

// Delta returns the step in progress, or {goal, goal, 0} once done.
// An empty Follower returns the zero Delta.
func (f *Follower) Delta() Delta {
	if len(f.path) == 0 {
		return Delta{}
	}
	if f.done {
		goal := f.path[len(f.path)-1]
		return Delta{From: goal, To: goal}
	}

	return Delta{From: f.path[f.cur], To: f.path[f.cur+1], Travelled: f.frac}
}

// Position interpolates the mover's location between the two points of the
// current step.
func (f *Follower) Position() (x, y float64) {
	d := f.Delta()
	x = float64(d.From.X) + float64(d.To.X-d.From.X)*d.Travelled
	y = float64(d.From.Y) + float64(d.To.Y-d.From.Y)*d.Travelled

	return x, y
}
