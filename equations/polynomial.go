package equations

// Evaluate returns p(x) using Horner's scheme.
func Evaluate(p Polynomial, x float64) float64 {
	var acc float64
	for _, c := range p {
		acc = acc*x + c
	}

	return acc
}

// Derivative returns p′. The derivative of a constant is {0}.
func Derivative(p Polynomial) Polynomial {
	deg := p.Degree()
	if deg < 1 {
		return Polynomial{0}
	}
	d := make(Polynomial, deg)
	for i := 0; i < deg; i++ {
		d[i] = float64(deg-i) * p[i]
	}

	return d
}

// SolvePolynomial approximates the roots of p, one per degree.
//
// Each root is searched independently: draw x from [0, span), then take a
// fixed number of Newton steps x ← x − p(x)/p′(x). A step where p′(x) is
// exactly zero ends that search and keeps the current x. Roots are neither
// deduplicated nor checked for convergence, so repeated or missing roots are
// possible for ill-conditioned input.
func SolvePolynomial(p Polynomial, opts ...Option) (PolynomialResult, error) {
	if len(p) == 0 {
		return PolynomialResult{}, ErrEmptyPolynomial
	}
	o := gatherOptions(opts...)

	deg := p.Degree()
	dp := Derivative(p)
	roots := make([]float64, 0, deg)

	var x, fx, dfx float64
	for r := 0; r < deg; r++ {
		x = o.rng.Float64() * o.span
		for it := 0; it < o.iterations; it++ {
			fx = Evaluate(p, x)
			dfx = Evaluate(dp, x)
			if dfx == 0 {
				break
			}
			x -= fx / dfx
		}
		roots = append(roots, x)
	}

	return PolynomialResult{Roots: roots}, nil
}
