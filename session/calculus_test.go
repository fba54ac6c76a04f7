package session_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvcalc/session"
	"github.com/stretchr/testify/assert"
)

func TestCalculus_Derivative(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	press(t, s, "derivative", "f=x^2")
	assert.Equal(t, "d/dx(x^2)", s.Display())
	assert.Equal(t, session.StateAwaitingOperand, s.State())

	press(t, s, "=")
	assert.Equal(t, "d/dx = 2*x", s.Display())
	assert.Equal(t, session.StateHasResult, s.State())
}

func TestCalculus_Integral(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	press(t, s, "integral", "f=x^2")
	assert.Equal(t, "∫ x^2 dx", s.Display())

	press(t, s, "=")
	assert.Equal(t, "Symbolic integration not supported, provide bounds", s.Display())

	press(t, s, "lower=0", "upper=1")
	assert.Equal(t, "∫[0,1] x^2 dx", s.Display())
	press(t, s, "=")
	assert.Equal(t, "∫[0,1] = 0.33", s.Display())

	press(t, s, "lower=zero", "=")
	assert.True(t, strings.HasPrefix(s.Display(), "Error: "), s.Display())
}

func TestCalculus_Limit(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	press(t, s, "limit", "f=sin(x)/x", "approach=0")
	assert.Equal(t, "lim[x→0] sin(x)/x", s.Display())
	press(t, s, "=")
	assert.Equal(t, "Limit = 1.00", s.Display())

	press(t, s, "f=1/x", "=")
	assert.Equal(t, "Cannot determine the limit", s.Display())

	press(t, s, "approach=", "=")
	assert.True(t, strings.HasPrefix(s.Display(), "Error: "), s.Display())
}

func TestCalculus_OperationResetsFields(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	press(t, s, "limit", "f=x", "approach=2", "derivative")
	assert.Equal(t, "d/dx()", s.Display())
	assert.Equal(t, session.OpDerivative, s.(*session.Calculus).Op())

	// "=" without an expression does nothing.
	press(t, s, "=")
	assert.Equal(t, session.StateAwaitingOperand, s.State())
}

func TestCalculus_KeyErrors(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	assert.ErrorIs(t, s.Press("f=x"), session.ErrNoOperation)
	assert.ErrorIs(t, s.Press("x^2"), session.ErrUnknownKey)

	press(t, s, "limit")
	assert.ErrorIs(t, s.Press("depth=3"), session.ErrUnknownKey)

	press(t, s, "clear")
	assert.Equal(t, session.StateIdle, s.State())
	assert.Equal(t, "0", s.Display())
}

func TestCalculus_DerivativeError(t *testing.T) {
	s := newSession(t, session.ModeCalculus)
	press(t, s, "derivative", "f=x +", "=")
	assert.True(t, strings.HasPrefix(s.Display(), "Error: "), s.Display())
}
