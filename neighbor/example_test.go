package neighbor_test

import (
	"fmt"

	"github.com/katalvlaran/bcsd/coord"
	"github.com/katalvlaran/bcsd/neighbor"
)

// ExampleChebyshev lists the clipped 8-neighborhood of a 3×3 corner, then
// the full one of the center. Offsets vary the first axis slowest.
func ExampleChebyshev() {
	shape := coord.Shape{3, 3}
	for _, p := range []coord.Coordinate{coord.Of(0, 0), coord.Of(1, 1)} {
		nbs, err := neighbor.Chebyshev(p, shape, 1)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(p, "→", nbs)
	}
	// Output:
	// (0,0) → [(0,1) (1,0) (1,1)]
	// (1,1) → [(0,0) (0,1) (0,2) (1,0) (1,2) (2,0) (2,1) (2,2)]
}
