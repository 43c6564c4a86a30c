package gridgraph

// orthogonal lists the 4-connectivity offsets: N, E, S, W.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// RegionMap is the result of Regions: passable cells grouped into
// 4-connected components, plus a label for every grouped cell.
type RegionMap struct {
	groups [][]Coord
	label  map[Coord]int
}

// Regions finds all contiguous areas of passable cells (anything in range
// that is not a Wall) under 4-connectivity. Regions are numbered in the
// row-major order of their first cell; cells inside a region are listed in
// BFS discovery order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and output.
func (g *Grid) Regions() *RegionMap {
	rm := &RegionMap{label: make(map[Coord]int, g.CellCount())}

	for y, row := range g.rows {
		for x := range row {
			c0 := Coord{X: x, Y: y}
			if !g.Passable(c0) {
				continue // wall
			}
			if _, seen := rm.label[c0]; seen {
				continue
			}
			id := len(rm.groups)
			// BFS to collect the region
			queue := []Coord{c0}
			rm.label[c0] = id
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range orthogonal {
					v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
					if !g.Passable(v) {
						continue
					}
					if _, seen := rm.label[v]; !seen {
						rm.label[v] = id
						queue = append(queue, v)
					}
				}
			}
			rm.groups = append(rm.groups, queue)
		}
	}

	return rm
}

// Len returns the number of regions.
func (rm *RegionMap) Len() int {
	return len(rm.groups)
}

// Region returns the cells of region i.
// Returns ErrRegionIndex if i is out of range.
func (rm *RegionMap) Region(i int) ([]Coord, error) {
	if i < 0 || i >= len(rm.groups) {
		return nil, ErrRegionIndex
	}
	out := make([]Coord, len(rm.groups[i]))
	copy(out, rm.groups[i])

	return out, nil
}

// Label returns the region index of c, and false for walls and out-of-range cells.
func (rm *RegionMap) Label(c Coord) (int, bool) {
	id, ok := rm.label[c]

	return id, ok
}

// Connected reports whether a and b are passable cells in the same region.
func (rm *RegionMap) Connected(a, b Coord) bool {
	la, okA := rm.label[a]
	lb, okB := rm.label[b]

	return okA && okB && la == lb
}
