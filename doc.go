// Package mazewalk is a depth-first maze walker built on explicit stacks.
//
// A maze is a text grid: 's' marks the start, 'o' a goal, '#' a wall and any
// other character is open floor. The walker keeps two stacks, a frontier of
// cells still to try and the path it is currently standing on, and stops at
// the first goal it pops. The route it returns is the one depth-first order
// happens to find, not the shortest one.
//
// Under the hood the module is split by concern:
//
//	stack/         generic LIFO container with a bottom-up dump
//	gridgraph/     grid loading, bounds, markers and 4-connected regions
//	maze/          the walker: Solve, Neighbors, hooks and run statistics
//	render/        path overlay on the grid, optionally coloured
//	cmd/mazewalk/  command-line front end (solve, inspect, version)
//
// Quick start:
//
//	g := gridgraph.FromLines(
//		"###",
//		"#s#",
//		"#o#",
//		"###",
//	)
//	path, err := maze.NewSolver(g).Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(path)
//
// Neighbour order is left, right, up, down. Because the frontier is a stack,
// the last proposed neighbour is explored first.
package mazewalk
