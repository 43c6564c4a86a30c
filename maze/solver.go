// Package maze implements a depth-first maze search driven by two explicit
// stacks: a frontier of cells waiting to be explored and the path of cells
// on the current descent.
//
// The search pops the frontier top, marks it visited, records it on the
// path, stops on a goal, and otherwise pushes the cell's open neighbours
// (left, right, up, down, so "down" is explored first). A cell with no open
// neighbour is a dead end and is popped back off the path; its ancestors stay.
//
// Complexity:
//
//   - Time:   O(W×H); every cell is visited at most once.
//   - Memory: O(W×H) for the visited set and both stacks.
package maze

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/stack"
)

// Solver owns a grid together with the per-search state: frontier, path
// and visited set. That state is reset at the start of every Solve, so a
// Solver can be reused sequentially with identical results. It must not be
// used from several goroutines at once.
type Solver struct {
	grid *gridgraph.Grid
	opts Options

	front   *stack.Stack[gridgraph.Coord]
	path    *stack.Stack[gridgraph.Coord]
	visited map[gridgraph.Coord]struct{}
	stats   Stats
}

// NewSolver binds a solver to g. The grid is only read, never modified.
func NewSolver(g *gridgraph.Grid, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Solver{
		grid:    g,
		opts:    o,
		front:   stack.New[gridgraph.Coord](),
		path:    stack.New[gridgraph.Coord](),
		visited: make(map[gridgraph.Coord]struct{}),
	}
}

// Size returns the grid dimensions as (width, height), where width is the
// length of the first row.
func (s *Solver) Size() gridgraph.Coord {
	if s.grid == nil {
		return gridgraph.Coord{}
	}

	return gridgraph.Coord{X: s.grid.Width(), Y: s.grid.Height()}
}

// Solve runs the search to completion and returns the path stack, bottom
// to top in descent order. When a goal is reached it is the top element.
// When the frontier empties first, the stack holds whatever cells of the
// last live branch were not dismissed as dead ends; that is not an error.
//
// The returned stack belongs to the solver and is overwritten by the next
// Solve; use Duplicate to keep it.
//
// Returns ErrNoStart if the grid holds no start marker, or an ErrHook
// wrapped error if the OnVisit hook fails.
func (s *Solver) Solve() (*stack.Stack[gridgraph.Coord], error) {
	// 1. Init: reset per-call state
	s.front.Clear()
	s.path.Clear()
	clear(s.visited)
	s.stats = Stats{Outcome: Pending}

	// 2. Locate the start cell
	if s.grid == nil {
		return nil, fmt.Errorf("maze: nil grid: %w", ErrNoStart)
	}
	start, ok := s.grid.Find(gridgraph.Start)
	if !ok {
		return nil, ErrNoStart
	}
	s.front.Push(start)
	s.stats.MaxFrontier = 1

	// 3. Explore
	for s.front.Size() > 0 {
		current, _ := s.front.Pop() // size checked by the loop condition
		s.visited[current] = struct{}{}
		s.path.Push(current)
		s.stats.Visited++

		if s.opts.OnVisit != nil {
			if err := s.opts.OnVisit(current); err != nil {
				return s.path, fmt.Errorf("%w at %v: %w", ErrHook, current, err)
			}
		}

		if r, _ := s.grid.At(current); r == gridgraph.Goal {
			s.stats.Outcome = Solved

			return s.path, nil
		}

		neighbors := s.Neighbors(current)
		if len(neighbors) == 0 {
			// dead end: undo the tentative record, keep the ancestors
			_, _ = s.path.Pop()
			s.stats.DeadEnds++
			if s.opts.OnDeadEnd != nil {
				s.opts.OnDeadEnd(current)
			}
			continue
		}
		s.front.PushAll(neighbors...)
		if n := s.front.Size(); n > s.stats.MaxFrontier {
			s.stats.MaxFrontier = n
		}
	}

	// 4. Exhausted
	s.stats.Outcome = Exhausted

	return s.path, nil
}

// Neighbors returns the unvisited, passable orthogonal neighbours of c in
// the fixed order left, right, up, down.
//
// Candidates are proposed with the reference bounds: right while x < width
// and down while y < height, where width is the first row's length. Those
// checks may propose a cell one past the last index; such a cell is
// discarded when it does not exist in its row. With WithStrictBounds the
// checks become x+1 < width and y+1 < height.
func (s *Solver) Neighbors(c gridgraph.Coord) []gridgraph.Coord {
	if s.grid == nil {
		return nil
	}
	width, height := s.grid.Width(), s.grid.Height()
	rightOK, downOK := c.X < width, c.Y < height
	if s.opts.StrictBounds {
		rightOK, downOK = c.X+1 < width, c.Y+1 < height
	}

	tentative := make([]gridgraph.Coord, 0, 4)
	if c.X > 0 {
		tentative = append(tentative, gridgraph.Coord{X: c.X - 1, Y: c.Y})
	}
	if rightOK {
		tentative = append(tentative, gridgraph.Coord{X: c.X + 1, Y: c.Y})
	}
	if c.Y > 0 {
		tentative = append(tentative, gridgraph.Coord{X: c.X, Y: c.Y - 1})
	}
	if downOK {
		tentative = append(tentative, gridgraph.Coord{X: c.X, Y: c.Y + 1})
	}

	results := tentative[:0]
	for _, n := range tentative {
		if _, seen := s.visited[n]; seen {
			continue
		}
		if !s.grid.Passable(n) {
			continue // wall, or past the end of its row
		}
		results = append(results, n)
	}

	return results
}

// Outcome reports how the last Solve ended, or Pending before the first call.
func (s *Solver) Outcome() Outcome {
	return s.stats.Outcome
}

// Stats returns counters gathered by the last Solve.
func (s *Solver) Stats() Stats {
	return s.stats
}
