package equations

import (
	"math"
	"math/rand"
	"time"
)

// Defaults for the Newton root search.
const (
	// DefaultIterations is the fixed Newton step budget per root.
	DefaultIterations = 100

	// DefaultStartSpan bounds random starting points to [0, span).
	DefaultStartSpan = 10.0
)

const (
	panicNilRand          = "equations: WithRand: nil source"
	panicIterationsBad    = "equations: WithIterations: n must be > 0"
	panicStartSpanInvalid = "equations: WithStartSpan: span must be finite and > 0"
)

// Option configures SolvePolynomial.
type Option func(*Options)

// Options is the resolved root-search configuration.
type Options struct {
	rng        *rand.Rand
	iterations int
	span       float64
}

// WithRand injects the random source used for starting points.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithIterations sets the Newton step budget per root.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsBad)
	}

	return func(o *Options) { o.iterations = n }
}

// WithStartSpan sets the width of the [0, span) interval starting points are drawn from.
func WithStartSpan(span float64) Option {
	if math.IsNaN(span) || math.IsInf(span, 0) || span <= 0 {
		panic(panicStartSpanInvalid)
	}

	return func(o *Options) { o.span = span }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		iterations: DefaultIterations,
		span:       DefaultStartSpan,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.rng == nil {
		// Per-call source; nothing reads the package-level generator.
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
