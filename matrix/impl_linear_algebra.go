// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the solvers:
// matrix-vector products and Gaussian elimination over augmented systems.
// All functions perform strict fail-fast validation and return sentinel
// errors wrapped with an operation tag.
//
// Notes:
//   - All kernels use central validators and wrap via matrixErrorf at the facade.
//   - Inputs are never mutated; elimination works on a private copy.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec = "MatVec"
	opSolve  = "SolveAugmented"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// SolveAugmented solves the square system encoded by an N×(N+1) augmented
// matrix [A | b] and returns x with A*x = b.
//
// Implementation:
//   - Stage 1: ValidateAugmented(m); copy into a private Dense workspace.
//   - Stage 2: Forward elimination. For each pivot row i (0..N-1):
//     optionally swap in the row j ≥ i with the largest |M[j][i]|;
//     reject |M[i][i]| ≤ eps with ErrSingular; then for every row j > i
//     compute ratio = M[j][i] / M[i][i] and subtract ratio × row i across
//     columns i..N.
//   - Stage 3: Back substitution from row N-1 up to 0:
//     x[i] = (M[i][N] − Σ_{k>i} M[i][k]·x[k]) / M[i][i].
//
// Behavior highlights:
//   - Input m is read-only.
//   - The zero-pivot test covers the last diagonal entry too, so a singular
//     system never reaches a division by a (near) zero pivot.
//
// Inputs:
//   - m: non-nil N×(N+1) matrix.
//   - opts: WithPivotEpsilon, WithPartialPivoting.
//
// Returns:
//   - []float64: solution vector of length N.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular (pivot magnitude ≤ eps).
//
// Determinism:
//   - Fixed loop orders; ties in pivot search keep the lowest row index.
//
// Complexity:
//   - Time O(N^3), Space O(N^2) for the workspace.
func SolveAugmented(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	w, copied, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if !copied {
		w = w.Clone().(*Dense)
	}

	n, c := w.r, w.c
	var (
		i, j, k, best int
		pivot, ratio  float64
		cand, bestAbs float64
		sum           float64
	)

	// Forward elimination.
	for i = 0; i < n; i++ {
		if o.partialPivoting {
			best, bestAbs = i, math.Abs(w.data[i*c+i])
			for j = i + 1; j < n; j++ {
				cand = math.Abs(w.data[j*c+i])
				if cand > bestAbs {
					best, bestAbs = j, cand
				}
			}
			if err = w.SwapRows(i, best); err != nil {
				return nil, matrixErrorf(opSolve, err)
			}
		}

		pivot = w.data[i*c+i]
		if math.Abs(pivot) <= o.pivotEps || math.IsNaN(pivot) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingular))
		}

		for j = i + 1; j < n; j++ {
			ratio = w.data[j*c+i] / pivot
			if ratio == 0 {
				continue
			}
			for k = i; k < c; k++ {
				w.data[j*c+k] -= ratio * w.data[i*c+k]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = w.data[i*c+n]
		for k = i + 1; k < n; k++ {
			sum -= w.data[i*c+k] * x[k]
		}
		x[i] = sum / w.data[i*c+i]
	}

	return x, nil
}
