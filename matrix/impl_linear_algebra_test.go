// Package matrix_test contains unit tests for the elimination and MatVec kernels.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const solveTol = 1e-6

func TestSolveAugmented_TwoByTwo(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 1, 3}, {2, -1, 0}})
	x, err := matrix.SolveAugmented(m)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1.0, x[0], solveTol)
	assert.InDelta(t, 2.0, x[1], solveTol)
}

func TestSolveAugmented_ThreeByThree(t *testing.T) {
	// 2x + y - z = 8; -3x - y + 2z = -11; -2x + y + 2z = -3 → (2, 3, -1)
	m := MustRows(t, [][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	})
	x, err := matrix.SolveAugmented(m)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, solveTol)
}

func TestSolveAugmented_OneByOne(t *testing.T) {
	x, err := matrix.SolveAugmented(MustRows(t, [][]float64{{4, 10}}))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, x[0], solveTol)
}

func TestSolveAugmented_Singular(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {2, 4, 6}})
	for _, pivoting := range []bool{true, false} {
		t.Run(fmt.Sprintf("pivoting=%v", pivoting), func(t *testing.T) {
			_, err := matrix.SolveAugmented(m, matrix.WithPartialPivoting(pivoting))
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestSolveAugmented_ZeroLeadingPivot(t *testing.T) {
	// y = 2; x = 3 written with a zero in the (0,0) slot.
	m := MustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}})

	x, err := matrix.SolveAugmented(m)
	require.NoError(t, err, "partial pivoting must swap the rows")
	assert.InDeltaSlice(t, []float64{3, 2}, x, solveTol)

	_, err = matrix.SolveAugmented(m, matrix.WithPartialPivoting(false))
	assert.ErrorIs(t, err, matrix.ErrSingular, "textbook kernel reports the zero pivot")
}

func TestSolveAugmented_PivotEpsilon(t *testing.T) {
	// Nearly dependent rows: the second pivot ends up around 1e-10.
	m := MustRows(t, [][]float64{{1, 1, 2}, {1, 1 + 1e-10, 2}})

	_, err := matrix.SolveAugmented(m)
	require.NoError(t, err, "default eps (1e-12) accepts a 1e-10 pivot")

	_, err = matrix.SolveAugmented(m, matrix.WithPivotEpsilon(1e-8))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveAugmented_Validation(t *testing.T) {
	_, err := matrix.SolveAugmented(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.SolveAugmented(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SolveAugmented(MustDense(t, 2, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveAugmented_DoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{0, 1, 2}, {1, 0, 3}}
	m := MustRows(t, rows)
	before := m.String()
	_, err := matrix.SolveAugmented(m)
	require.NoError(t, err)
	assert.Equal(t, before, m.String())
}

func TestSolveAugmented_FallbackMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows, _ := RandomSystem(rng, 4)
	m := MustRows(t, rows)

	fast, err := matrix.SolveAugmented(m)
	require.NoError(t, err)
	slow, err := matrix.SolveAugmented(hide{m})
	require.NoError(t, err)
	assert.Equal(t, fast, slow)
}

func TestSolveAugmented_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for _, n := range []int{2, 3, 4} {
		for trial := 0; trial < 25; trial++ {
			rows, want := RandomSystem(rng, n)
			t.Run(fmt.Sprintf("n=%d/trial=%d", n, trial), func(t *testing.T) {
				got, err := matrix.SolveAugmented(MustRows(t, rows))
				require.NoError(t, err)
				assert.InDeltaSlice(t, want, got, solveTol)
			})
		}
	}
}

// TestSolveAugmented_AgreesWithGonum cross-checks general (not diagonally
// dominant) systems against gonum's LU-based solver.
func TestSolveAugmented_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range []int{2, 3, 4, 6} {
		data := make([]float64, n*n)
		rhs := make([]float64, n)
		rows := make([][]float64, n)
		for i := 0; i < n; i++ {
			rows[i] = make([]float64, n+1)
			for j := 0; j < n; j++ {
				data[i*n+j] = rng.Float64()*10 - 5
				rows[i][j] = data[i*n+j]
			}
			rhs[i] = rng.Float64()*10 - 5
			rows[i][n] = rhs[i]
		}

		var ref mat.VecDense
		if err := ref.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, rhs)); err != nil {
			t.Logf("gonum rejected n=%d: %v", n, err)
			continue
		}

		got, err := matrix.SolveAugmented(MustRows(t, rows))
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			assert.InDelta(t, ref.AtVec(i), got[i], solveTol, "n=%d component %d", n, i)
		}
	}
}

func TestMatVec(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	y, err = matrix.MatVec(hide{m}, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
