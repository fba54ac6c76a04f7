package equations_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSimultaneous_TwoVariables(t *testing.T) {
	r, err := equations.SolveSimultaneous([][]float64{{1, 1, 3}, {2, -1, 0}})
	require.NoError(t, err)
	assert.Equal(t, equations.OutcomeSolved, r.Outcome)
	assert.InDeltaSlice(t, []float64{1, 2}, r.Solution, 1e-12)
	assert.Equal(t, "x = 1.00, y = 2.00", r.Display(2))
}

func TestSolveSimultaneous_Singular(t *testing.T) {
	cases := map[string][][]float64{
		"dependent 2x2":    {{1, 2, 3}, {2, 4, 6}},
		"inconsistent 2x2": {{1, 2, 3}, {2, 4, 7}},
		"dependent 3x3":    {{1, 2, 3, 4}, {2, 4, 6, 8}, {1, 0, 1, 2}},
		"zero column":      {{0, 1, 0, 1}, {0, 2, 1, 2}, {0, 0, 3, 3}},
	}
	for name, sys := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := equations.SolveSimultaneous(sys)
			require.NoError(t, err)
			assert.Equal(t, equations.OutcomeNoUniqueSolution, r.Outcome)
			assert.Nil(t, r.Solution)
			assert.Equal(t, equations.TextNoUniqueSolution, r.Display(2))
		})
	}
}

func TestSolveSimultaneous_SmallCoefficients(t *testing.T) {
	r, err := equations.SolveSimultaneous([][]float64{{1e-7, 0, 1e-7}, {0, 1e-7, 2e-7}})
	require.NoError(t, err)
	assert.Equal(t, equations.OutcomeSolved, r.Outcome)
	assert.InDeltaSlice(t, []float64{1, 2}, r.Solution, 1e-9)

	r, err = equations.SolveSimultaneous([][]float64{{1e-5, 0, 0, 1e-5}, {0, 1e-5, 0, 2e-5}, {0, 0, 1e-5, 3e-5}})
	require.NoError(t, err)
	assert.Equal(t, "x = 1.00, y = 2.00, z = 3.00", r.Display(2))

	// Nearly parallel rows stay singular at any scale.
	r, err = equations.SolveSimultaneous([][]float64{{1e6, 2e6, 1}, {1e6, 2e6 + 1e-9, 1}})
	require.NoError(t, err)
	assert.Equal(t, equations.OutcomeNoUniqueSolution, r.Outcome)
}

func TestSolveSimultaneous_NonFiniteCoefficients(t *testing.T) {
	cases := map[string][][]float64{
		"nan 2x2": {{math.NaN(), 1, 3}, {2, -1, 0}},
		"inf 2x2": {{math.Inf(1), 1, 3}, {2, -1, 0}},
		"nan 3x3": {{math.NaN(), 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}},
		"inf 3x3": {{1, 0, 0, 1}, {0, math.Inf(-1), 0, 2}, {0, 0, 1, 3}},
	}
	for name, sys := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := equations.SolveSimultaneous(sys)
			require.NoError(t, err)
			assert.Equal(t, equations.OutcomeNoUniqueSolution, r.Outcome)
			assert.Equal(t, equations.TextNoUniqueSolution, r.Display(2))
		})
	}
}

func TestSolveSimultaneous_ThreeVariables(t *testing.T) {
	sys := [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	}
	r, err := equations.SolveSimultaneous(sys)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, r.Solution, 1e-9)
	assert.Equal(t, "x = 2.00, y = 3.00, z = -1.00", r.Display(2))

	res, err := equations.Residuals(sys, r.Solution)
	require.NoError(t, err)
	for i, v := range res {
		assert.InDelta(t, 0, v, 1e-9, "equation %d", i+1)
	}
}

func TestSolveSimultaneous_WithoutPivotingNeedsNonZeroDiagonal(t *testing.T) {
	sys := [][]float64{{0, 1, 1, 2}, {1, 0, 1, 2}, {1, 1, 0, 2}}

	r, err := equations.SolveSimultaneous(sys)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, r.Solution, 1e-9)

	r, err = equations.SolveSimultaneous(sys, matrix.WithPartialPivoting(false))
	require.NoError(t, err)
	assert.Equal(t, equations.OutcomeNoUniqueSolution, r.Outcome)
}

func TestSolveSimultaneous_LargeSystemNames(t *testing.T) {
	// Diagonal 5x5 with x_i = i.
	sys := make([][]float64, 5)
	for i := range sys {
		sys[i] = make([]float64, 6)
		sys[i][i] = 1
		sys[i][5] = float64(i + 1)
	}
	r, err := equations.SolveSimultaneous(sys)
	require.NoError(t, err)
	assert.Equal(t, "x1 = 1.00, x2 = 2.00, x3 = 3.00, x4 = 4.00, x5 = 5.00", r.Display(2))
}

func TestSolveSimultaneous_BadShape(t *testing.T) {
	_, err := equations.SolveSimultaneous(nil)
	assert.ErrorIs(t, err, equations.ErrEmptySystem)

	_, err = equations.SolveSimultaneous([][]float64{{1, 1, 3}, {2, -1}})
	assert.ErrorIs(t, err, equations.ErrRaggedSystem)

	_, err = equations.SolveSimultaneous([][]float64{{1, 1}, {2, -1}})
	assert.ErrorIs(t, err, equations.ErrRaggedSystem)

	_, err = equations.Residuals(nil, nil)
	assert.ErrorIs(t, err, equations.ErrEmptySystem)
}

func TestResiduals_ReportsMismatch(t *testing.T) {
	res, err := equations.Residuals([][]float64{{1, 1, 3}, {2, -1, 0}}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 0}, res)

	_, err = equations.Residuals([][]float64{{1, 1, 3}, {2, -1, 0}}, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVariableNames(t *testing.T) {
	assert.Equal(t, []string{"x"}, equations.VariableNames(1))
	assert.Equal(t, []string{"x", "y", "z", "w"}, equations.VariableNames(4))
	assert.Equal(t, []string{"x1", "x2", "x3", "x4", "x5"}, equations.VariableNames(5))
}
