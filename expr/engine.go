package expr

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// DefaultCacheTTL is how long a parsed tree stays cached.
const DefaultCacheTTL = 10 * time.Minute

const panicCacheTTLNegative = "expr: WithCacheTTL: ttl must be >= 0"

// EngineOption configures NewEngine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	ttl    time.Duration
	logger *logrus.Entry
}

// WithCacheTTL sets the parse cache lifetime. Zero disables caching.
func WithCacheTTL(ttl time.Duration) EngineOption {
	if ttl < 0 {
		panic(panicCacheTTLNegative)
	}

	return func(o *engineOptions) { o.ttl = ttl }
}

// WithLogger attaches a logger; nil keeps the discarding default.
func WithLogger(l *logrus.Entry) EngineOption {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Engine parses, evaluates and differentiates expression text.
// It is safe for concurrent use.
type Engine struct {
	trees  *cache.Cache // nil when caching is off
	logger *logrus.Entry
}

// NewEngine builds an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	o := engineOptions{ttl: DefaultCacheTTL}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = logrus.NewEntry(discard)
	}

	e := &Engine{logger: o.logger.WithField("component", "expr")}
	if o.ttl > 0 {
		e.trees = cache.New(o.ttl, o.ttl*2)
	}

	return e
}

// Parse returns the tree for text, from the cache when possible.
func (e *Engine) Parse(text string) (Node, error) {
	key := strings.TrimSpace(text)
	if e.trees != nil {
		if v, ok := e.trees.Get(key); ok {
			return v.(Node), nil // trees are immutable
		}
	}

	n, err := Parse(key)
	if err != nil {
		e.logger.WithError(err).WithField("input", key).Debug("parse failed")

		return nil, err
	}
	if e.trees != nil {
		e.trees.SetDefault(key, n)
	}

	return n, nil
}

// Compile parses text and returns it as a function of variable.
// Identifiers other than variable and the constants are rejected.
func (e *Engine) Compile(text, variable string) (func(float64) float64, error) {
	n, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	f, err := compile(n, bindVariable(variable))
	if err != nil {
		return nil, fmt.Errorf("Compile %q: %w", text, err)
	}

	return f, nil
}

// Differentiate parses text and returns the text of its derivative with
// respect to variable.
func (e *Engine) Differentiate(text, variable string) (string, error) {
	n, err := e.Parse(text)
	if err != nil {
		return "", err
	}
	d, err := Differentiate(n, variable)
	if err != nil {
		return "", fmt.Errorf("Differentiate %q: %w", text, err)
	}
	e.logger.WithFields(logrus.Fields{"input": text, "variable": variable}).Debug("differentiated")

	return d.String(), nil
}

// Evaluate computes text with the given identifier values. Constants are
// always available; vars may be nil.
func (e *Engine) Evaluate(text string, vars map[string]float64) (float64, error) {
	n, err := e.Parse(text)
	if err != nil {
		return 0, err
	}
	f, err := compile(n, bindValues(vars))
	if err != nil {
		return 0, fmt.Errorf("Evaluate %q: %w", text, err)
	}

	return f(0), nil
}

// Cached reports how many trees the parse cache holds.
func (e *Engine) Cached() int {
	if e.trees == nil {
		return 0
	}

	return e.trees.ItemCount()
}
