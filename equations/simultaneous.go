package equations

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/matrix"
)

// SolveSimultaneous solves N linear equations in N unknowns.
//
// Each row holds the N coefficients followed by the constant term:
// {{1, 1, 3}, {2, -1, 0}} is x + y = 3, 2x − y = 0.
//
// Two-variable systems use the closed form with an explicit determinant
// check: |a1·b2 − a2·b1| ≤ eps·max(|a1|,|b1|)·max(|a2|,|b2|) means no unique
// solution, so the tolerance follows the row magnitudes the way a pivot does.
// Larger systems go through Gaussian elimination. eps and partial pivoting come from
// the matrix options. Non-finite coefficients are reported as no unique
// solution for every size.
func SolveSimultaneous(system [][]float64, opts ...matrix.Option) (SystemResult, error) {
	n := len(system)
	if n == 0 {
		return SystemResult{}, ErrEmptySystem
	}
	for i, row := range system {
		if len(row) != n+1 {
			return SystemResult{}, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), n+1, ErrRaggedSystem)
		}
	}

	if n == 2 {
		return solve2x2(system, matrix.Resolve(opts...).PivotEpsilon()), nil
	}

	m, err := matrix.NewDenseFromRows(system)
	if errors.Is(err, matrix.ErrNaNInf) {
		return SystemResult{Outcome: OutcomeNoUniqueSolution}, nil
	}
	if err != nil {
		return SystemResult{}, fmt.Errorf("SolveSimultaneous: %w", err)
	}
	x, err := matrix.SolveAugmented(m, opts...)
	if errors.Is(err, matrix.ErrSingular) {
		return SystemResult{Outcome: OutcomeNoUniqueSolution}, nil
	}
	if err != nil {
		return SystemResult{}, fmt.Errorf("SolveSimultaneous: %w", err)
	}

	return finiteOrSingular(x), nil
}

// solve2x2 applies Cramer's rule to
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
func solve2x2(s [][]float64, eps float64) SystemResult {
	a1, b1, c1 := s[0][0], s[0][1], s[0][2]
	a2, b2, c2 := s[1][0], s[1][1], s[1][2]

	det := a1*b2 - a2*b1
	scale := math.Max(math.Abs(a1), math.Abs(b1)) * math.Max(math.Abs(a2), math.Abs(b2))
	if math.Abs(det) <= eps*scale || math.IsNaN(det) {
		return SystemResult{Outcome: OutcomeNoUniqueSolution}
	}

	x := (c1*b2 - c2*b1) / det
	y := (a1*c2 - a2*c1) / det

	return finiteOrSingular([]float64{x, y})
}

func finiteOrSingular(x []float64) SystemResult {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SystemResult{Outcome: OutcomeNoUniqueSolution}
		}
	}

	return SystemResult{Solution: x, Outcome: OutcomeSolved}
}

// Residuals returns A·x − b for the system, one entry per equation.
// Useful to report how well a solution satisfies its equations.
func Residuals(system [][]float64, solution []float64) ([]float64, error) {
	n := len(system)
	if n == 0 {
		return nil, ErrEmptySystem
	}
	coeffs := make([][]float64, n)
	for i, row := range system {
		if len(row) != n+1 {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), n+1, ErrRaggedSystem)
		}
		coeffs[i] = row[:n]
	}

	a, err := matrix.NewDenseFromRows(coeffs)
	if err != nil {
		return nil, fmt.Errorf("Residuals: %w", err)
	}
	ax, err := matrix.MatVec(a, solution)
	if err != nil {
		return nil, fmt.Errorf("Residuals: %w", err)
	}
	for i := range ax {
		ax[i] -= system[i][n]
	}

	return ax, nil
}
