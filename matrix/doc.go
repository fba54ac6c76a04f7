// Package matrix offers a small dense linear-algebra core for the solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - SolveAugmented, Gaussian elimination with back-substitution over an
//     N×(N+1) augmented matrix, with a pivot tolerance and optional partial
//     pivoting configured through functional options.
//   - MatVec and central validators shared by the kernels.
//
// Matrices here are tiny (a handful of unknowns typed into a calculator
// form), so the kernels favour determinism and clear error surfaces over
// blocking or SIMD tricks.
//
// See example_test.go for usage patterns.
package matrix
