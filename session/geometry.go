package session

import (
	"strings"

	"github.com/katalvlaran/lvcalc/geometry"
	"github.com/spf13/cast"
)

const geometryError = "Error"

// Geometry collects one or two lengths for a shape formula: type a value,
// press a shape key, type the second value (rectangles only), press "=".
type Geometry struct {
	base
	entry string
	shape geometry.Shape
	first float64
	shown string // result text while in StateHasResult
}

func newGeometry(b base) *Geometry {
	return &Geometry{base: b}
}

// Display implements Session. An empty entry shows "0".
func (g *Geometry) Display() string {
	switch {
	case g.state == StateHasResult:
		return g.shown
	case g.entry == "":
		return "0"
	}

	return g.entry
}

// Shape is the pending shape, empty when none is selected.
func (g *Geometry) Shape() geometry.Shape { return g.shape }

// Clear implements Session.
func (g *Geometry) Clear() {
	g.entry, g.shape, g.first, g.shown = "", "", 0, ""
	g.state = StateIdle
}

// Press implements Session.
func (g *Geometry) Press(key string) error {
	k := strings.TrimSpace(key)
	switch {
	case isClear(k):
		g.Clear()

		return nil
	case k == "=":
		g.calculate()

		return nil
	case k != "" && strings.Trim(k, "0123456789.") == "":
		if g.state == StateHasResult {
			g.Clear()
		}
		g.entry += k
		g.state = StateAwaitingOperand

		return nil
	}

	shape, err := geometry.ParseShape(k)
	if err != nil {
		return unknownKey(g.mode, key)
	}
	g.selectShape(shape)

	return nil
}

// selectShape stores the typed value as the first operand. Without a typed
// value the key is ignored.
func (g *Geometry) selectShape(shape geometry.Shape) {
	if g.entry == "" || g.state == StateHasResult {
		return
	}
	v, err := cast.ToFloat64E(g.entry)
	if err != nil {
		g.fail(err)

		return
	}
	g.first, g.shape, g.entry = v, shape, ""
	g.state = StateAwaitingOperand
}

// calculate runs the pending formula. Rectangles need a second value;
// one-operand shapes accept "=" straight after the shape key.
func (g *Geometry) calculate() {
	if g.shape == "" || (g.entry == "" && g.shape.Operands() == 2) {
		return
	}
	var second float64
	if g.entry != "" {
		v, err := cast.ToFloat64E(g.entry)
		if err != nil {
			g.fail(err)

			return
		}
		second = v
	}

	r, err := geometry.Compute(g.shape, g.first, second)
	if err != nil {
		g.fail(err)

		return
	}
	g.log.WithField("shape", string(g.shape)).Debug("computed")
	g.entry, g.shape, g.first = "", "", 0
	g.shown = r.Display()
	g.state = StateHasResult
}

func (g *Geometry) fail(err error) {
	g.log.WithError(err).Debug("geometry failed")
	g.entry, g.shape, g.first = "", "", 0
	g.shown = geometryError
	g.state = StateHasResult
}
