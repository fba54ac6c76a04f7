package session_test

import (
	"testing"

	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/session"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, mode session.Mode) session.Session {
	t.Helper()
	env := session.DefaultEnv()
	env.Polynomial = []equations.Option{equations.WithSeed(1)}
	s, err := session.New(mode, env)
	require.NoError(t, err)

	return s
}

func press(t *testing.T, s session.Session, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.NoError(t, s.Press(k), "key %q", k)
	}
}
