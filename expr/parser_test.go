package expr_test

import (
	"testing"

	"github.com/katalvlaran/lvcalc/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Print(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"3x^2 + 2x - 1", "3*x^2 + 2*x - 1"},
		{"-x^2", "-x^2"},
		{"2^3^2", "2^3^2"},
		{"(2^3)^2", "(2^3)^2"},
		{"(x+1)(x-1)", "(x + 1)*(x - 1)"},
		{"a-(b-c)", "a - (b - c)"},
		{"a/(b*c)", "a/(b*c)"},
		{"x(x+1)", "x*(x + 1)"},
		{"2 ** x", "2^x"},
		{"sin(x)/x", "sin(x)/x"},
		{"  +x ", "x"},
		{"--x", "x"},
		{"pi(r+1)", "pi*(r + 1)"},
		{"2e", "2*e"},
		{"1e-3x", "0.001*x"},
		{".5x", "0.5*x"},
		{"x^-2", "x^(-2)"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			n, err := expr.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.String())

			// Printed text parses back to the same tree.
			again, err := expr.Parse(n.String())
			require.NoError(t, err)
			assert.Equal(t, n, again)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", expr.ErrEmptyExpression},
		{"   ", expr.ErrEmptyExpression},
		{"2+", expr.ErrSyntax},
		{"(x+1", expr.ErrSyntax},
		{")", expr.ErrSyntax},
		{"2 $ 3", expr.ErrSyntax},
		{"sin x", expr.ErrSyntax},
		{"1.2.3", expr.ErrSyntax},
		{"x +* 2", expr.ErrSyntax},
		{"foo(x)", expr.ErrUnknownFunction},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := expr.Parse(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := expr.Parse("2 + $")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 5")
}

func TestIdentifiers(t *testing.T) {
	n, err := expr.Parse("a*x^2 + b*x + sin(a)")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "b"}, expr.Identifiers(n))
}
