// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the elimination kernel and
// the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotEpsilon is the magnitude at or below which a pivot counts as zero.
	// A value of 0 reproduces the exact-zero comparison.
	DefaultPivotEpsilon = 1e-12

	// DefaultPartialPivoting swaps in the row with the largest |pivot| candidate
	// before eliminating each column.
	DefaultPartialPivoting = true

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotEpsilonInvalid = "matrix: WithPivotEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotEps        float64 // >= 0; DefaultPivotEpsilon
	partialPivoting bool    // DefaultPartialPivoting
}

// ---------- Constructors (WithX) ----------

// WithPivotEpsilon sets the zero-pivot tolerance used by SolveAugmented.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps == 0 reproduces the exact-zero check; anything ≤ eps in magnitude
//     is treated as singular otherwise.
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithPartialPivoting toggles row exchanges during forward elimination.
// Disabling it runs the textbook kernel that divides by M[i][i] as-is.
func WithPartialPivoting(enabled bool) Option {
	return func(o *Options) { o.partialPivoting = enabled }
}

// gatherOptions applies user setters over the documented defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotEps:        DefaultPivotEpsilon,
		partialPivoting: DefaultPartialPivoting,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// PivotEpsilon reports the resolved pivot tolerance.
func (o Options) PivotEpsilon() float64 { return o.pivotEps }

// PartialPivoting reports whether row exchanges are enabled.
func (o Options) PartialPivoting() bool { return o.partialPivoting }

// Resolve exposes gatherOptions to other packages that need to read the
// effective policy (e.g. the 2×2 closed-form solver reuses pivotEps).
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }
