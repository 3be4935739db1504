// Package follow walks a mover along a path returned by astar, tile by tile,
// at a speed scaled by terrain weight and step length.
//
// A Follower consumes an astar path (goal-first) and walks it start-first.
// Each Advance moves the mover by
//
//	dt · speed / (meanWeight(from, to) · Euclidean(from, to))
//
// of the current step, so heavy terrain and diagonal steps take longer.
// Delta reports the step in progress; once the goal is reached it reports the
// terminal delta {goal, goal, 0}.
package follow
