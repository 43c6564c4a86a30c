// Package maze defines options, outcomes and sentinel errors for the
// stack-driven depth-first maze solver.
package maze

import (
	"errors"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

var (
	// ErrNoStart is returned by Solve when the grid holds no start marker.
	// It is a configuration error: no traversal is attempted.
	ErrNoStart = errors.New("maze: no start position found")

	// ErrHook wraps an error returned by an OnVisit hook.
	ErrHook = errors.New("maze: visit hook aborted search")
)

// Outcome reports how the last Solve call ended.
type Outcome int

const (
	// Pending means Solve has not completed on this solver yet.
	Pending Outcome = iota
	// Solved means a goal cell was popped; it is the top of the path.
	Solved
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted
)

// String returns a lower-case name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}

	return "unknown"
}

// Stats summarises the last Solve call.
type Stats struct {
	// Visited is the number of cells popped from the frontier.
	Visited int
	// DeadEnds counts cells removed from the path for having no open neighbour.
	DeadEnds int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
	// Outcome is the terminal state reached.
	Outcome Outcome
}

// Option configures a Solver via NewSolver(g, opts...).
type Option func(*Options)

// Options holds the tunable behaviour of a Solver.
type Options struct {
	// OnVisit, if non-nil, is called after a cell is marked visited and
	// pushed on the path. Returning an error aborts Solve.
	OnVisit func(c gridgraph.Coord) error

	// OnDeadEnd, if non-nil, is called after a dead-end cell is popped
	// back off the path.
	OnDeadEnd func(c gridgraph.Coord)

	// StrictBounds replaces the reference neighbour bounds (x < width,
	// y < height) with the corrected ones (x+1 < width, y+1 < height).
	// Default false.
	StrictBounds bool
}

// DefaultOptions returns Options with no hooks and the reference bounds policy.
func DefaultOptions() Options {
	return Options{
		OnVisit:      nil,
		OnDeadEnd:    nil,
		StrictBounds: false,
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(c gridgraph.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnDeadEnd installs fn as the dead-end hook.
func WithOnDeadEnd(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		o.OnDeadEnd = fn
	}
}

// WithStrictBounds enables the corrected neighbour bounds. It only changes
// results on ragged grids, where a row longer than the first one has cells
// past the first row's width.
func WithStrictBounds() Option {
	return func(o *Options) {
		o.StrictBounds = true
	}
}
