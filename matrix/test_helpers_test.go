// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows")

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandomSystem builds a diagonally dominant n×n system with a known solution.
// Diagonal dominance keeps every instance comfortably non-singular.
// Returns the augmented rows and the solution that generated them.
func RandomSystem(rng *rand.Rand, n int) ([][]float64, []float64) {
	want := make([]float64, n)
	for i := range want {
		want[i] = rng.Float64()*20 - 10
	}

	rows := make([][]float64, n)
	var i, j int
	var rowAbs, rhs float64
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n+1)
		rowAbs = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = rng.Float64()*4 - 2
			if rows[i][j] < 0 {
				rowAbs -= rows[i][j]
			} else {
				rowAbs += rows[i][j]
			}
		}
		rows[i][i] = rowAbs + 1 + rng.Float64()
		rhs = 0
		for j = 0; j < n; j++ {
			rhs += rows[i][j] * want[j]
		}
		rows[i][n] = rhs
	}

	return rows, want
}
