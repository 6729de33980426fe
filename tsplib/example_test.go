package tsplib_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/antsys/tsplib"
)

// ExampleParse reads a minimal instance and reports its shape.
func ExampleParse() {
	const file = `NAME : demo3
TYPE : TSP
DIMENSION : 3
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 0
3 0 4
EOF
`
	inst, err := tsplib.Parse(strings.NewReader(file))
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		return
	}
	fmt.Printf("name: %s\n", inst.Name)
	fmt.Printf("points: %d\n", inst.Dimension())
	fmt.Printf("first: (%.0f,%.0f)\n", inst.Points[0].X, inst.Points[0].Y)
	// Output:
	// name: demo3
	// points: 3
	// first: (0,0)
}

// ExampleKnownOptimal resolves a published optimum by instance name.
func ExampleKnownOptimal() {
	if opt, ok := tsplib.KnownOptimal("berlin52"); ok {
		fmt.Printf("berlin52 optimum: %.0f\n", opt)
	}
	// Output:
	// berlin52 optimum: 7542
}
