// Package geometry evaluates the area and volume formulas offered by the
// geometry mode. Inputs are lengths: negative or non-finite values are
// rejected with ErrInvalidDimension.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvcalc/display"
)

var (
	// ErrInvalidDimension is returned for a negative, NaN or infinite length.
	ErrInvalidDimension = errors.New("geometry: dimension must be a finite non-negative number")

	// ErrUnknownShape is returned by ParseShape for an unrecognised name.
	ErrUnknownShape = errors.New("geometry: unknown shape")
)

// Shape names one formula.
type Shape string

// Supported shapes.
const (
	AreaRectangle Shape = "area_rectangle"
	AreaCircle    Shape = "area_circle"
	VolumeCube    Shape = "volume_cube"
	VolumeSphere  Shape = "volume_sphere"
)

// Shapes lists every supported shape in keypad order.
var Shapes = []Shape{AreaRectangle, AreaCircle, VolumeCube, VolumeSphere}

// ParseShape accepts the canonical names as well as keypad labels such as
// "Area (Circle)" and short forms such as "circle".
func ParseShape(s string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("(", "", ")", "", " ", "_", "-", "_").Replace(key)
	switch key {
	case string(AreaRectangle), "rectangle", "rect":
		return AreaRectangle, nil
	case string(AreaCircle), "circle":
		return AreaCircle, nil
	case string(VolumeCube), "cube":
		return VolumeCube, nil
	case string(VolumeSphere), "sphere":
		return VolumeSphere, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Operands is how many values the shape's formula reads.
func (s Shape) Operands() int {
	if s == AreaRectangle {
		return 2
	}

	return 1
}

func (s Shape) label() string {
	if strings.HasPrefix(string(s), "volume_") {
		return "Volume: "
	}

	return "Area: "
}

// Result is a computed area or volume.
type Result struct {
	Shape Shape
	Value float64
}

// Display renders "Area: 12" for rectangles and cubes (shortest form) and
// two decimals for circles and spheres: "Area: 3.14".
func (r Result) Display() string {
	switch r.Shape {
	case AreaCircle, VolumeSphere:
		return r.Shape.label() + display.Fixed(r.Value, 2)
	}

	return r.Shape.label() + display.Shortest(r.Value)
}

func checkDim(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: got %v", ErrInvalidDimension, v)
		}
	}

	return nil
}

// RectangleArea is w·h.
func RectangleArea(w, h float64) (float64, error) {
	if err := checkDim(w, h); err != nil {
		return 0, err
	}

	return w * h, nil
}

// CircleArea is π·r².
func CircleArea(r float64) (float64, error) {
	if err := checkDim(r); err != nil {
		return 0, err
	}

	return math.Pi * r * r, nil
}

// CubeVolume is s³.
func CubeVolume(s float64) (float64, error) {
	if err := checkDim(s); err != nil {
		return 0, err
	}

	return s * s * s, nil
}

// SphereVolume is 4/3·π·r³.
func SphereVolume(r float64) (float64, error) {
	if err := checkDim(r); err != nil {
		return 0, err
	}

	return 4.0 / 3.0 * math.Pi * r * r * r, nil
}

// Compute dispatches to the shape's formula. second is read only by
// rectangles.
func Compute(shape Shape, first, second float64) (Result, error) {
	var (
		v   float64
		err error
	)
	switch shape {
	case AreaRectangle:
		v, err = RectangleArea(first, second)
	case AreaCircle:
		v, err = CircleArea(first)
	case VolumeCube:
		v, err = CubeVolume(first)
	case VolumeSphere:
		v, err = SphereVolume(first)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownShape, string(shape))
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", shape, err)
	}

	return Result{Shape: shape, Value: v}, nil
}
