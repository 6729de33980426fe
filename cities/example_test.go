package cities_test

import (
	"fmt"

	"github.com/katalvlaran/antsys/cities"
)

func ExampleGrid() {
	pts, err := cities.Grid(2, 2, 1)
	if err != nil {
		fmt.Printf("grid failed: %v\n", err)
		return
	}
	for _, p := range pts {
		fmt.Printf("(%.0f,%.0f)\n", p.X, p.Y)
	}

	// Output:
	// (0,0)
	// (1,0)
	// (0,1)
	// (1,1)
}

func ExampleCircle() {
	pts, err := cities.Circle(6, 10)
	if err != nil {
		fmt.Printf("circle failed: %v\n", err)
		return
	}
	fmt.Printf("points: %d\n", len(pts))
	fmt.Printf("first: (%.0f,%.0f)\n", pts[0].X, pts[0].Y)

	// Output:
	// points: 6
	// first: (10,0)
}
