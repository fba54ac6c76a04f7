package config_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvcalc/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	d := config.Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 2, d.Display.Precision)
	assert.Equal(t, 1000, d.Integration.Steps)
	assert.Equal(t, 100, d.Newton.Iterations)
	assert.Equal(t, 10.0, d.Newton.StartSpan)
	assert.Equal(t, 1e-10, d.Limit.Epsilon)
	assert.Equal(t, 1e-12, d.Solver.PivotEpsilon)
	assert.True(t, d.Solver.PartialPivoting)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
display:
  precision: 4
newton:
  seed: 42
  iterations: 50
solver:
  partial_pivoting: false
engine:
  cache_ttl: 30s
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Display.Precision)
	assert.Equal(t, int64(42), cfg.Newton.Seed)
	assert.Equal(t, 50, cfg.Newton.Iterations)
	assert.False(t, cfg.Solver.PartialPivoting)
	assert.Equal(t, 30*time.Second, cfg.Engine.CacheTTL)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1000, cfg.Integration.Steps)
	assert.Equal(t, 1e-12, cfg.Solver.PivotEpsilon)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "display:\n  precision: 4\n")
	t.Setenv("LVCALC_DISPLAY_PRECISION", "6")
	t.Setenv("LVCALC_INTEGRATION_STEPS", "250")

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Display.Precision)
	assert.Equal(t, 250, cfg.Integration.Steps)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "newton:\n  iterations: 0\nlog:\n  format: xml\n")
	_, err = config.Load(config.NewViper(), path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "newton.iterations")
	assert.Contains(t, err.Error(), "log.format")
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*config.Config){
		"precision":     func(c *config.Config) { c.Display.Precision = 16 },
		"steps":         func(c *config.Config) { c.Integration.Steps = -1 },
		"start span":    func(c *config.Config) { c.Newton.StartSpan = 0 },
		"nan epsilon":   func(c *config.Config) { c.Limit.Epsilon = math.NaN() },
		"pivot epsilon": func(c *config.Config) { c.Solver.PivotEpsilon = -1 },
		"cache ttl":     func(c *config.Config) { c.Engine.CacheTTL = -time.Second },
		"level":         func(c *config.Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestDump_LoadsBack(t *testing.T) {
	want := config.Default()
	want.Display.Precision = 3
	want.Newton.Seed = 7

	var buf bytes.Buffer
	require.NoError(t, want.Dump(&buf))
	assert.Contains(t, buf.String(), "pivot_epsilon:")

	got, err := config.Load(config.NewViper(), writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := config.NewLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	fallback := config.NewLogger(config.LogConfig{Level: "loud"}, &buf)
	assert.Equal(t, logrus.WarnLevel, fallback.GetLevel())
}

func TestOptions(t *testing.T) {
	c := config.Default()
	c.Newton.Seed = 5
	assert.Len(t, c.SolverOptions(), 2)
	assert.Len(t, c.PolynomialOptions(), 3)
	assert.Len(t, c.CalculusOptions(), 3)

	env := c.SessionEnv(logrus.NewEntry(logrus.New()))
	assert.NotNil(t, env.Engine)
	assert.Equal(t, 2, env.Precision)
	assert.NotNil(t, env.Logger)
}
