// Package lvcalc is an equation and numeric solver with a scientific
// calculator's modes behind it.
//
// What is inside:
//
//	equations/ — linear, quadratic, simultaneous (Gaussian elimination) and
//	             polynomial (Newton from random starts) solvers
//	matrix/    — dense row-major matrix, elimination kernel and validators
//	expr/      — expression parser, evaluator and symbolic differentiation
//	calculus/  — trapezoid integration, limit estimate, derivative facade
//	geometry/  — area and volume formulas
//	session/   — per-mode keypad sessions (Idle → AwaitingOperand → HasResult)
//	display/   — number formatting shared by every result
//	config/    — viper-backed configuration and the logrus logger
//	cmd/lvcalc — cobra command line with one subcommand per solver and a REPL
//
// Quick start:
//
//	r := equations.SolveQuadratic(1, -3, 2)
//	fmt.Println(r.Display(2)) // x1 = 2.00, x2 = 1.00
//
//	calc := calculus.NewCalculator(expr.NewEngine())
//	fmt.Println(calc.Integral("x^2", &calculus.Bounds{Lower: 0, Upper: 1})) // ∫[0,1] = 0.33
//
// Every solver returns a typed result plus an explicit outcome ("No solution",
// "No real solutions", "No unique solution") rather than an error for
// mathematically degenerate input. Errors are reserved for malformed input
// and wrap package sentinels, so callers match them with errors.Is.
package lvcalc
