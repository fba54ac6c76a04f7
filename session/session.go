package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/godruoyi/go-snowflake"
	"github.com/katalvlaran/lvcalc/calculus"
	"github.com/katalvlaran/lvcalc/equations"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownMode is returned by ParseMode and New.
	ErrUnknownMode = errors.New("session: unknown mode")

	// ErrUnknownKey is returned by Press for a key the mode does not have.
	ErrUnknownKey = errors.New("session: unknown key")

	// ErrNoOperation is returned when input arrives before an operation is chosen.
	ErrNoOperation = errors.New("session: choose an operation first")

	// ErrInvalidEnv is returned by New for unusable settings.
	ErrInvalidEnv = errors.New("session: invalid environment")
)

// Mode selects a calculator.
type Mode string

// Calculator modes.
const (
	ModeArithmetic Mode = "arithmetic"
	ModeGeometry   Mode = "geometry"
	ModeEquations  Mode = "equations"
	ModeCalculus   Mode = "calculus"
)

// Modes lists every mode.
var Modes = []Mode{ModeArithmetic, ModeGeometry, ModeEquations, ModeCalculus}

// ParseMode maps a mode name (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// State is where a session is in its input cycle.
type State int

const (
	// StateIdle means nothing has been entered since the last clear.
	StateIdle State = iota
	// StateAwaitingOperand means input or an operation is pending.
	StateAwaitingOperand
	// StateHasResult means the display shows a finished computation.
	StateHasResult
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingOperand:
		return "awaiting-operand"
	case StateHasResult:
		return "has-result"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Session is one calculator screen.
type Session interface {
	// ID is a process-unique session identifier.
	ID() string
	Mode() Mode
	State() State
	// Display is the text currently on screen.
	Display() string
	// Clear returns the session to StateIdle. Memory survives a clear.
	Clear()
	// Press feeds one key (or a pasted run of keys) to the session.
	Press(key string) error
}

// Env carries the collaborators and settings sessions are built with.
type Env struct {
	// Engine parses calculator input. Nil gets a fresh expr.NewEngine().
	Engine *expr.Engine
	// Precision is the number of decimals in solver and calculus answers.
	Precision int
	// Solver tunes Gaussian elimination for simultaneous equations.
	Solver []matrix.Option
	// Polynomial tunes the Newton root search (iterations, random source).
	Polynomial []equations.Option
	// Calculus tunes integration steps and the limit probe.
	Calculus []calculus.Option
	// Logger receives debug traces. Nil discards them.
	Logger *logrus.Entry
}

// DefaultEnv returns an Env with a fresh engine and two-decimal answers.
func DefaultEnv() Env {
	return Env{Engine: expr.NewEngine(), Precision: calculus.DefaultPrecision}
}

// New builds a session for mode.
func New(mode Mode, env Env) (Session, error) {
	if env.Precision < 0 {
		return nil, fmt.Errorf("%w: precision %d", ErrInvalidEnv, env.Precision)
	}
	if env.Engine == nil {
		env.Engine = expr.NewEngine()
	}
	if env.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		env.Logger = logrus.NewEntry(discard)
	}

	b := newBase(mode, env.Logger)
	switch mode {
	case ModeArithmetic:
		return newArithmetic(b, env), nil
	case ModeGeometry:
		return newGeometry(b), nil
	case ModeEquations:
		return newEquations(b, env), nil
	case ModeCalculus:
		return newCalculus(b, env), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
}

// base holds what every mode shares.
type base struct {
	id    string
	mode  Mode
	state State
	log   *logrus.Entry
}

func newBase(mode Mode, log *logrus.Entry) base {
	id := strconv.FormatUint(snowflake.ID(), 36)

	return base{
		id:   id,
		mode: mode,
		log:  log.WithFields(logrus.Fields{"mode": string(mode), "session": id}),
	}
}

func (b *base) ID() string   { return b.id }
func (b *base) Mode() Mode   { return b.mode }
func (b *base) State() State { return b.state }

func unknownKey(mode Mode, key string) error {
	return fmt.Errorf("%w %q in %s mode", ErrUnknownKey, key, mode)
}

// isClear reports whether key is the clear key.
func isClear(key string) bool {
	switch strings.ToLower(key) {
	case "c", "clear", "ac":
		return true
	}

	return false
}
