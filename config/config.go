// Package config loads lvcalc settings from defaults, an optional YAML file,
// LVCALC_* environment variables and bound command-line flags, in rising
// order of priority, and turns them into options for the solver packages.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override: LVCALC_DISPLAY_PRECISION=4.
const EnvPrefix = "LVCALC"

// MaxPrecision caps displayed decimals; float64 carries no more.
const MaxPrecision = 15

// ErrInvalidConfig is returned by Validate and Load.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
	Integration IntegrationConfig `mapstructure:"integration" yaml:"integration"`
	Newton      NewtonConfig      `mapstructure:"newton" yaml:"newton"`
	Limit       LimitConfig       `mapstructure:"limit" yaml:"limit"`
	Solver      SolverConfig      `mapstructure:"solver" yaml:"solver"`
	Engine      EngineConfig      `mapstructure:"engine" yaml:"engine"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

// DisplayConfig controls answer formatting.
type DisplayConfig struct {
	Precision int `mapstructure:"precision" yaml:"precision"`
}

// IntegrationConfig controls the trapezoid rule.
type IntegrationConfig struct {
	Steps int `mapstructure:"steps" yaml:"steps"`
}

// NewtonConfig controls the polynomial root search. Seed 0 seeds from the clock.
type NewtonConfig struct {
	Iterations int     `mapstructure:"iterations" yaml:"iterations"`
	StartSpan  float64 `mapstructure:"start_span" yaml:"start_span"`
	Seed       int64   `mapstructure:"seed" yaml:"seed"`
}

// LimitConfig controls the limit probe.
type LimitConfig struct {
	Epsilon float64 `mapstructure:"epsilon" yaml:"epsilon"`
}

// SolverConfig controls Gaussian elimination.
type SolverConfig struct {
	PivotEpsilon    float64 `mapstructure:"pivot_epsilon" yaml:"pivot_epsilon"`
	PartialPivoting bool    `mapstructure:"partial_pivoting" yaml:"partial_pivoting"`
}

// EngineConfig controls the expression engine.
type EngineConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// LogConfig selects the log level and format ("text" or "json").
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Display:     DisplayConfig{Precision: calculus.DefaultPrecision},
		Integration: IntegrationConfig{Steps: calculus.DefaultSteps},
		Newton: NewtonConfig{
			Iterations: equations.DefaultIterations,
			StartSpan:  equations.DefaultStartSpan,
		},
		Limit: LimitConfig{Epsilon: calculus.DefaultEpsilon},
		Solver: SolverConfig{
			PivotEpsilon:    matrix.DefaultPivotEpsilon,
			PartialPivoting: matrix.DefaultPartialPivoting,
		},
		Engine: EngineConfig{CacheTTL: expr.DefaultCacheTTL},
		Log:    LogConfig{Level: "warn", Format: "text"},
	}
}

// NewViper returns a viper instance carrying the defaults and the
// environment binding. Callers bind flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("display.precision", d.Display.Precision)
	v.SetDefault("integration.steps", d.Integration.Steps)
	v.SetDefault("newton.iterations", d.Newton.Iterations)
	v.SetDefault("newton.start_span", d.Newton.StartSpan)
	v.SetDefault("newton.seed", d.Newton.Seed)
	v.SetDefault("limit.epsilon", d.Limit.Epsilon)
	v.SetDefault("solver.pivot_epsilon", d.Solver.PivotEpsilon)
	v.SetDefault("solver.partial_pivoting", d.Solver.PartialPivoting)
	v.SetDefault("engine.cache_ttl", d.Engine.CacheTTL)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads path (if not empty) into v, then decodes and validates the
// merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the solvers cannot run with.
func (c Config) Validate() error {
	var problems []string
	check := func(bad bool, format string, args ...interface{}) {
		if bad {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

	check(c.Display.Precision < 0 || c.Display.Precision > MaxPrecision,
		"display.precision %d outside [0, %d]", c.Display.Precision, MaxPrecision)
	check(c.Integration.Steps < 0, "integration.steps %d is negative", c.Integration.Steps)
	check(c.Newton.Iterations <= 0, "newton.iterations %d must be positive", c.Newton.Iterations)
	check(!finite(c.Newton.StartSpan) || c.Newton.StartSpan <= 0,
		"newton.start_span %v must be positive", c.Newton.StartSpan)
	check(!finite(c.Limit.Epsilon) || c.Limit.Epsilon < 0, "limit.epsilon %v is negative", c.Limit.Epsilon)
	check(!finite(c.Solver.PivotEpsilon) || c.Solver.PivotEpsilon < 0,
		"solver.pivot_epsilon %v is negative", c.Solver.PivotEpsilon)
	check(c.Engine.CacheTTL < 0, "engine.cache_ttl %v is negative", c.Engine.CacheTTL)
	_, err := logrus.ParseLevel(c.Log.Level)
	check(err != nil, "log.level %q is not a level", c.Log.Level)
	check(c.Log.Format != "text" && c.Log.Format != "json", "log.format %q must be text or json", c.Log.Format)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Dump writes the settings as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("Dump: %w", err)
	}

	return enc.Close()
}
