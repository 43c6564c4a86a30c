// Package gridgraph treats a 2D grid of maze characters as an implicit graph
// whose vertices are cells and whose edges join orthogonal neighbours.
//
// What:
//
//   - Grid wraps rows of runes built from text lines; rows may be ragged and
//     every lookup indexes by the actual length of the row it touches.
//   - Coord is the (X=column, Y=row) value type used as cell identity and as
//     a map key.
//   - Markers: Start ('s'), Goal ('o'), Wall ('#'); every other rune is open floor.
//   - Regions groups passable cells into 4-connected components, which tells
//     whether a goal can be reached from the start at all.
//
// Why:
//
//   - Maze solvers need a read-only, bounds-safe view of the board.
//   - Reachability analysis before or after a search (inspect tooling).
//
// Complexity:
//
//   - FromLines, Read: O(W×H) time and memory.
//   - At, InBounds, Passable: O(1).
//   - Find: O(W×H) worst case; Regions: O(W×H×4).
//
// Errors:
//
//   - ErrEmptyGrid: Read found no rows in its input.
package gridgraph
