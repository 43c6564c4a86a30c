package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazewalk/gridgraph"
)

// ExampleGrid_Regions splits a small map into its two open areas.
func ExampleGrid_Regions() {
	g := gridgraph.FromLines(
		"s #o",
		"  # ",
	)
	rm := g.Regions()
	fmt.Println("regions:", rm.Len())
	for i := 0; i < rm.Len(); i++ {
		cells, _ := rm.Region(i)
		fmt.Println(cells)
	}
	start, _ := g.Find(gridgraph.Start)
	goal, _ := g.Find(gridgraph.Goal)
	fmt.Println("connected:", rm.Connected(start, goal))
	// Output:
	// regions: 2
	// [(0,0) (1,0) (0,1) (1,1)]
	// [(3,0) (3,1)]
	// connected: false
}

// ExampleRead parses a CRLF file with a trailing blank line.
func ExampleRead() {
	g, err := gridgraph.Read(strings.NewReader("s o\r\n\r\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.Find(gridgraph.Start)
	fmt.Printf("%dx%d start=%v\n", g.Width(), g.Height(), start)
	// Output:
	// 3x1 start=(0,0)
}
