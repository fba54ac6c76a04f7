package calculus

import "math"

// Defaults for the numeric routines.
const (
	// DefaultSteps is the trapezoid count used when n ≤ 0.
	DefaultSteps = 1000

	// DefaultEpsilon is the limit probe offset and acceptance threshold.
	DefaultEpsilon = 1e-10
)

// Func is a real function of one variable.
type Func func(x float64) float64

// Integrate approximates ∫_a^b f(x) dx with the composite trapezoid rule
// over n uniform sub-intervals:
//
//	h   = (b − a) / n
//	sum = ½·(f(a) + f(b)) + Σ_{i=1}^{n−1} f(a + i·h)
//	∫  ≈ sum · h
//
// n ≤ 0 uses DefaultSteps. b < a yields the negated integral; a == b yields
// 0. Non-finite samples propagate into the result.
func Integrate(f Func, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if n <= 0 {
		n = DefaultSteps
	}

	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}

// EstimateLimit probes f at L−eps and L+eps. When the two values differ by
// less than eps the left value is returned with ok = true; otherwise ok is
// false. eps ≤ 0 (or NaN) uses DefaultEpsilon.
func EstimateLimit(f Func, approach, eps float64) (limit float64, ok bool) {
	if f == nil {
		return 0, false
	}
	if !(eps > 0) {
		eps = DefaultEpsilon
	}

	left := f(approach - eps)
	right := f(approach + eps)
	if math.Abs(left-right) < eps {
		return left, true
	}

	return 0, false
}

// Derivative asks engine for d(text)/d(variable).
func Derivative(engine Engine, text, variable string) (string, error) {
	if engine == nil {
		return "", ErrNilEngine
	}

	return engine.Differentiate(text, variable)
}
