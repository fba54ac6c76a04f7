// Package calculus holds the numeric half of the calculus mode: composite
// trapezoid integration, a two-sided limit probe, and a derivative call that
// is handed to an expression Engine.
//
// Integrate and EstimateLimit take plain Go functions. Calculator wraps them
// with an Engine so calculator text goes in and display text comes out:
//
//	calc := calculus.NewCalculator(expr.NewEngine())
//	calc.Integral("x^2", &calculus.Bounds{Lower: 0, Upper: 1}) // "∫[0,1] = 0.33"
//
// EstimateLimit is a heuristic, not a proof: it compares f(L−ε) with f(L+ε)
// and accepts when they differ by less than ε. Functions steep near L are
// reported as undetermined even when the limit exists, and a jump narrower
// than ε can pass.
package calculus
