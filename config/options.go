package config

import (
	"time"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/katalvlaran/lvcalc/session"
	"github.com/sirupsen/logrus"
)

// SolverOptions configures matrix.SolveAugmented.
func (c Config) SolverOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithPivotEpsilon(c.Solver.PivotEpsilon),
		matrix.WithPartialPivoting(c.Solver.PartialPivoting),
	}
}

// PolynomialOptions configures equations.SolvePolynomial. A zero seed is
// replaced by the current time, so each call to PolynomialOptions gets its
// own source.
func (c Config) PolynomialOptions() []equations.Option {
	seed := c.Newton.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return []equations.Option{
		equations.WithIterations(c.Newton.Iterations),
		equations.WithStartSpan(c.Newton.StartSpan),
		equations.WithSeed(seed),
	}
}

// CalculusOptions configures calculus.NewCalculator.
func (c Config) CalculusOptions() []calculus.Option {
	return []calculus.Option{
		calculus.WithSteps(c.Integration.Steps),
		calculus.WithEpsilon(c.Limit.Epsilon),
		calculus.WithPrecision(c.Display.Precision),
	}
}

// NewEngine builds the expression engine.
func (c Config) NewEngine(log *logrus.Entry) *expr.Engine {
	return expr.NewEngine(expr.WithCacheTTL(c.Engine.CacheTTL), expr.WithLogger(log))
}

// SessionEnv assembles everything a calculator session needs.
func (c Config) SessionEnv(log *logrus.Entry) session.Env {
	return session.Env{
		Engine:     c.NewEngine(log),
		Precision:  c.Display.Precision,
		Solver:     c.SolverOptions(),
		Polynomial: c.PolynomialOptions(),
		Calculus:   c.CalculusOptions(),
		Logger:     log,
	}
}
