package equations_test

import (
	"testing"

	"github.com/katalvlaran/lvcalc/equations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveQuadratic_TwoRoots(t *testing.T) {
	r := equations.SolveQuadratic(1, -3, 2)
	assert.Equal(t, equations.OutcomeSolved, r.Outcome)
	assert.InDelta(t, 1.0, r.Discriminant, 1e-12)
	require.Len(t, r.Roots, 2)
	assert.InDelta(t, 2.0, r.Roots[0], 1e-12)
	assert.InDelta(t, 1.0, r.Roots[1], 1e-12)
	assert.Equal(t, "x1 = 2.00, x2 = 1.00", r.Display(2))
}

func TestSolveQuadratic_RepeatedRoot(t *testing.T) {
	r := equations.SolveQuadratic(1, -2, 1)
	assert.Equal(t, equations.OutcomeSolved, r.Outcome)
	require.Len(t, r.Roots, 1)
	assert.InDelta(t, 1.0, r.Roots[0], 1e-12)
	assert.Equal(t, "x = 1.00", r.Display(2))
}

func TestSolveQuadratic_NoRealRoots(t *testing.T) {
	r := equations.SolveQuadratic(1, 0, 1)
	assert.Equal(t, equations.OutcomeNoRealSolutions, r.Outcome)
	assert.Empty(t, r.Roots)
	assert.Equal(t, equations.TextNoRealSolutions, r.Display(2))
}

func TestSolveQuadratic_DegenerateFallsBackToLinear(t *testing.T) {
	r := equations.SolveQuadratic(0, 2, -4)
	assert.True(t, r.Degenerate)
	assert.Equal(t, equations.OutcomeSolved, r.Outcome)
	assert.Equal(t, []float64{2}, r.Roots)
	assert.Equal(t, "x = 2.00", r.Display(2))

	r = equations.SolveQuadratic(0, 0, 3)
	assert.True(t, r.Degenerate)
	assert.Equal(t, equations.OutcomeNoSolution, r.Outcome)
	assert.Equal(t, equations.TextNoSolution, r.Display(2))
}

func TestSolveQuadratic_RootsSatisfyEquation(t *testing.T) {
	cases := [][3]float64{{2, 5, -3}, {-1, 4, 5}, {0.5, -0.1, -2}, {3, 0, -27}}
	for _, c := range cases {
		r := equations.SolveQuadratic(c[0], c[1], c[2])
		require.Equal(t, equations.OutcomeSolved, r.Outcome, "%v", c)
		for _, x := range r.Roots {
			assert.InDelta(t, 0, c[0]*x*x+c[1]*x+c[2], 1e-9, "%v root %g", c, x)
		}
	}
}

func TestSolveQuadratic_Precision(t *testing.T) {
	r := equations.SolveQuadratic(1, 0, -2)
	assert.Equal(t, "x1 = 1.4142, x2 = -1.4142", r.Display(4))
}
