package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/maze"
)

// corridorMaze is a 10×14 maze with a single winding route from s to o.
var corridorMaze = []string{
	"##########",
	"#        #",
	"# ###### #",
	"# #    # #",
	"# # # ## #",
	"# # #    #",
	"# # # ## #",
	"# # # ## #",
	"# # #    #",
	"# # ######",
	"# #      #",
	"# # ######",
	"#s#     o#",
	"##########",
}

// xy is shorthand for a coordinate literal.
func xy(x, y int) gridgraph.Coord {
	return gridgraph.Coord{X: x, Y: y}
}

func TestSolve_NoStart(t *testing.T) {
	for name, lines := range map[string][]string{
		"Empty":   nil,
		"NoS":     {"###", "# o", "###"},
		"Capital": {"S o"},
	} {
		t.Run(name, func(t *testing.T) {
			s := maze.NewSolver(gridgraph.FromLines(lines...))
			path, err := s.Solve()
			assert.ErrorIs(t, err, maze.ErrNoStart)
			assert.Nil(t, path)
			assert.Equal(t, maze.Pending, s.Outcome())
		})
	}
}

func TestSolve_NilGrid(t *testing.T) {
	path, err := maze.NewSolver(nil).Solve()
	assert.ErrorIs(t, err, maze.ErrNoStart)
	assert.Nil(t, path)
}

// TestSolve_GoalDirectlyBelow: start at (1,1), goal at (1,2), walls elsewhere.
func TestSolve_GoalDirectlyBelow(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines("###", "#s#", "#o#", "###"))
	assert.Equal(t, xy(3, 4), s.Size())

	path, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(1, 1), xy(1, 2)}, path.Items())
	assert.Equal(t, 2, path.Size())
	top, err := path.Peek()
	require.NoError(t, err)
	assert.Equal(t, xy(1, 2), top)
	assert.Equal(t, maze.Solved, s.Outcome())
}

// TestSolve_OpenTwoByTwo walks ["sx","xo"] where 'x' is open floor.
// The start pushes right (1,0) then down (0,1); the last pushed is popped
// first, so the search goes down, then right onto the goal. The down move
// from (0,1) proposes (0,2), which lies past the last row and is dropped.
func TestSolve_OpenTwoByTwo(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines("sx", "xo"))
	path, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(0, 1), xy(1, 1)}, path.Items())
	assert.Equal(t, maze.Stats{Visited: 3, DeadEnds: 0, MaxFrontier: 2, Outcome: maze.Solved}, s.Stats())
}

func TestSolve_CorridorMaze(t *testing.T) {
	g := gridgraph.FromLines(corridorMaze...)
	s := maze.NewSolver(g)
	path, err := s.Solve()
	require.NoError(t, err)
	require.Equal(t, maze.Solved, s.Outcome())

	items := path.Items()
	require.Len(t, items, 50)
	assert.Equal(t, xy(1, 12), items[0], "bottom of the path is the start")
	assert.Equal(t, xy(8, 12), items[len(items)-1], "top of the path is the goal")
	r, _ := g.At(items[len(items)-1])
	assert.Equal(t, gridgraph.Goal, r)

	// the single dead end at (6,3) must not be on the final path
	assert.NotContains(t, items, xy(6, 3))
	assert.Equal(t, maze.Stats{Visited: 51, DeadEnds: 1, MaxFrontier: 4, Outcome: maze.Solved}, s.Stats())
}

// TestSolve_Deterministic checks that repeated solves on one solver agree.
func TestSolve_Deterministic(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines(corridorMaze...))

	first, err := s.Solve()
	require.NoError(t, err)
	snapshot := first.Duplicate()

	second, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, snapshot.Items(), second.Items())
	assert.Equal(t, snapshot.String(), second.String())
}

// TestSolve_ExhaustedEmptyPath: the start is boxed in, so it is popped as a dead end.
func TestSolve_ExhaustedEmptyPath(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines("s#o"))
	path, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 0, path.Size())
	assert.Equal(t, maze.Exhausted, s.Outcome())
}

// TestSolve_ExhaustedKeepsAncestors shows that only the dead-end cell is
// dismissed: its ancestors stay on the path after the frontier empties.
func TestSolve_ExhaustedKeepsAncestors(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines("s  #o"))
	path, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(1, 0)}, path.Items())
	assert.Equal(t, maze.Exhausted, s.Outcome())
}

// TestSolve_DuplicateFrontierEntries covers a cell pushed twice before it is
// popped: it is processed twice, and dismissed as a dead end both times.
func TestSolve_DuplicateFrontierEntries(t *testing.T) {
	s := maze.NewSolver(gridgraph.FromLines("s ", "  "))
	path, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(0, 1), xy(1, 1)}, path.Items())
	assert.Equal(t, maze.Stats{Visited: 5, DeadEnds: 2, MaxFrontier: 2, Outcome: maze.Exhausted}, s.Stats())
}

// TestSolve_BoundsPolicy documents the reference bounds on a ragged grid.
// The first row is 2 wide, so the right-move check is x < 2. From (1,1)
// that check passes and proposes (2,1), which exists in the longer second
// row and holds the goal. The corrected check (x+1 < 2) never proposes it.
func TestSolve_BoundsPolicy(t *testing.T) {
	lines := []string{
		"s#",
		"  o",
	}

	ref := maze.NewSolver(gridgraph.FromLines(lines...))
	path, err := ref.Solve()
	require.NoError(t, err)
	assert.Equal(t, maze.Solved, ref.Outcome())
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(0, 1), xy(1, 1), xy(2, 1)}, path.Items())

	strict := maze.NewSolver(gridgraph.FromLines(lines...), maze.WithStrictBounds())
	path, err = strict.Solve()
	require.NoError(t, err)
	assert.Equal(t, maze.Exhausted, strict.Outcome())
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(0, 1)}, path.Items())
}

func TestSolve_OnVisitHook(t *testing.T) {
	var seen []gridgraph.Coord
	s := maze.NewSolver(
		gridgraph.FromLines("sx", "xo"),
		maze.WithOnVisit(func(c gridgraph.Coord) error {
			seen = append(seen, c)
			return nil
		}),
	)
	_, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(0, 0), xy(0, 1), xy(1, 1)}, seen)
}

func TestSolve_OnVisitHookAborts(t *testing.T) {
	boom := errors.New("boom")
	s := maze.NewSolver(
		gridgraph.FromLines(corridorMaze...),
		maze.WithOnVisit(func(c gridgraph.Coord) error {
			if c == xy(1, 10) {
				return boom
			}
			return nil
		}),
	)
	path, err := s.Solve()
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, maze.ErrHook)
	require.NotNil(t, path)
	top, _ := path.Peek()
	assert.Equal(t, xy(1, 10), top)
	assert.Equal(t, maze.Pending, s.Outcome())
}

func TestSolve_OnDeadEndHook(t *testing.T) {
	var dead []gridgraph.Coord
	s := maze.NewSolver(
		gridgraph.FromLines(corridorMaze...),
		maze.WithOnDeadEnd(func(c gridgraph.Coord) { dead = append(dead, c) }),
	)
	_, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{xy(6, 3)}, dead)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "pending", maze.Pending.String())
	assert.Equal(t, "solved", maze.Solved.String())
	assert.Equal(t, "exhausted", maze.Exhausted.String())
	assert.Equal(t, "unknown", maze.Outcome(42).String())
}
