package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/geometry"
	"github.com/katalvlaran/lvcalc/session"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var errArgCount = errors.New("wrong number of values")

// coefficients accepts "1 -3 2", "1,-3,2" or a mix, after "--" when the
// first value is negative.
func coefficients(args []string) ([]float64, error) {
	return session.ParseCoefficients(strings.Join(args, ","))
}

func exactly(n int, args []string, what string) ([]float64, error) {
	c, err := coefficients(args)
	if err != nil {
		return nil, err
	}
	if len(c) != n {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", errArgCount, what, n, len(c))
	}

	return c, nil
}

func (a *app) linearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "linear A B",
		Short:   "Solve a·x + b = 0",
		Example: "  lvcalc linear 2 -- -4\n  lvcalc linear 2,-4",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := exactly(2, args, "linear (a, b)")
			if err != nil {
				return err
			}
			r := equations.SolveLinear(c[0], c[1])
			a.log.WithField("outcome", r.Outcome.String()).Debug("linear solved")
			fmt.Fprintln(cmd.OutOrStdout(), r.Display(a.cfg.Display.Precision))

			return nil
		},
	}
}

func (a *app) quadraticCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quadratic A B C",
		Short:   "Solve a·x² + b·x + c = 0 over the reals",
		Example: "  lvcalc quadratic 1,-3,2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := exactly(3, args, "quadratic (a, b, c)")
			if err != nil {
				return err
			}
			r := equations.SolveQuadratic(c[0], c[1], c[2])
			a.log.WithField("discriminant", r.Discriminant).Debug("quadratic solved")
			fmt.Fprintln(cmd.OutOrStdout(), r.Display(a.cfg.Display.Precision))

			return nil
		},
	}
}

func (a *app) systemCmd() *cobra.Command {
	var residuals bool
	cmd := &cobra.Command{
		Use:     "system ROWS",
		Short:   "Solve N linear equations in N unknowns",
		Long:    "Rows are separated by ';', values by ','. Each row lists the\ncoefficients followed by the constant term.",
		Example: `  lvcalc system "1,1,3; 2,-1,0"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := session.ParseSystem(strings.Join(args, ";"))
			if err != nil {
				return err
			}
			r, err := equations.SolveSimultaneous(rows, a.cfg.SolverOptions()...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r.Display(a.cfg.Display.Precision))
			if !residuals || r.Outcome != equations.OutcomeSolved {
				return nil
			}
			res, err := equations.Residuals(rows, r.Solution)
			if err != nil {
				return err
			}
			for i, v := range res {
				fmt.Fprintf(out, "residual %d = %.3g\n", i+1, v)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&residuals, "residuals", false, "Also print A·x − b per equation")

	return cmd
}

func (a *app) polyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "poly C0 C1 ...",
		Short:   "Approximate polynomial roots by Newton's method",
		Long:    "Coefficients run from the highest degree down: 1,0,-4 is x² − 4.\nStarting points are random; pass --seed for repeatable output.",
		Example: "  lvcalc poly 1,0,-4 --seed 1",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := coefficients(args)
			if err != nil {
				return err
			}
			r, err := equations.SolvePolynomial(c, a.cfg.PolynomialOptions()...)
			if err != nil {
				return err
			}
			a.log.WithField("degree", equations.Polynomial(c).Degree()).Debug("polynomial solved")
			fmt.Fprintln(cmd.OutOrStdout(), r.Display(a.cfg.Display.Precision))

			return nil
		},
	}
	cmd.Flags().Int("iterations", 0, "Newton steps per root (overrides config)")
	_ = a.v.BindPFlag("newton.iterations", cmd.Flags().Lookup("iterations"))

	return cmd
}

func (a *app) calculator(variable string) *calculus.Calculator {
	opts := append(a.cfg.CalculusOptions(), calculus.WithLogger(a.log))
	if variable != "" {
		opts = append(opts, calculus.WithVariable(variable))
	}

	return calculus.NewCalculator(a.cfg.NewEngine(a.log), opts...)
}

func (a *app) integrateCmd() *cobra.Command {
	var from, to float64
	var variable string
	cmd := &cobra.Command{
		Use:     "integrate EXPR",
		Short:   "Definite integral by the composite trapezoid rule",
		Example: `  lvcalc integrate "x^2" --from 0 --to 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bounds *calculus.Bounds
			if cmd.Flags().Changed("from") && cmd.Flags().Changed("to") {
				bounds = &calculus.Bounds{Lower: from, Upper: to}
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.calculator(variable).Integral(args[0], bounds))

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&from, "from", 0, "Lower bound")
	f.Float64Var(&to, "to", 0, "Upper bound")
	f.StringVar(&variable, "var", "x", "Variable of integration")
	f.Int("steps", 0, "Trapezoid count (overrides config)")
	_ = a.v.BindPFlag("integration.steps", f.Lookup("steps"))

	return cmd
}

func (a *app) limitCmd() *cobra.Command {
	var at float64
	var variable string
	cmd := &cobra.Command{
		Use:     "limit EXPR",
		Short:   "Estimate a two-sided limit",
		Example: `  lvcalc limit "sin(x)/x" --at 0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.calculator(variable).Limit(args[0], at))

			return nil
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "Value the variable approaches")
	cmd.Flags().StringVar(&variable, "var", "x", "Variable")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func (a *app) deriveCmd() *cobra.Command {
	var variable string
	cmd := &cobra.Command{
		Use:     "derive EXPR",
		Short:   "Symbolic derivative",
		Example: `  lvcalc derive "x^3 + 2x"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.calculator(variable).Derivative(args[0]))

			return nil
		},
	}
	cmd.Flags().StringVar(&variable, "var", "x", "Variable to differentiate by")

	return cmd
}

func (a *app) geometryCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "geometry SHAPE V1 [V2]",
		Short:     "Area or volume of a shape",
		Long:      "Shapes: area_rectangle (width, height), area_circle (radius),\nvolume_cube (side), volume_sphere (radius).",
		Example:   "  lvcalc geometry area_rectangle 3 4",
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: shapeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := geometry.ParseShape(args[0])
			if err != nil {
				return err
			}
			if len(args)-1 != shape.Operands() {
				return fmt.Errorf("%w: %s needs %d", errArgCount, shape, shape.Operands())
			}
			first, err := cast.ToFloat64E(args[1])
			if err != nil {
				return err
			}
			var second float64
			if len(args) == 3 {
				if second, err = cast.ToFloat64E(args[2]); err != nil {
					return err
				}
			}
			r, err := geometry.Compute(shape, first, second)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Display())

			return nil
		},
	}
}

func shapeNames() []string {
	names := make([]string, len(geometry.Shapes))
	for i, s := range geometry.Shapes {
		names[i] = string(s)
	}

	return names
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Dump(cmd.OutOrStdout())
		},
	}
}
