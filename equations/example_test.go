package equations_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/equations"
)

func ExampleSolveQuadratic() {
	fmt.Println(equations.SolveQuadratic(1, -3, 2).Display(2))
	fmt.Println(equations.SolveQuadratic(1, 0, 1).Display(2))
	// Output:
	// x1 = 2.00, x2 = 1.00
	// No real solutions
}

func ExampleSolveSimultaneous() {
	r, err := equations.SolveSimultaneous([][]float64{{1, 1, 3}, {2, -1, 0}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(r.Display(2))
	// Output:
	// x = 1.00, y = 2.00
}
