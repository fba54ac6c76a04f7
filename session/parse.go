package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ErrBadCoefficients is returned for coefficient text that does not parse.
var ErrBadCoefficients = errors.New("session: bad coefficients")

// ParseCoefficients reads numbers separated by commas or spaces: "1, -3, 2".
func ParseCoefficients(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrBadCoefficients)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(f)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d %q", ErrBadCoefficients, i+1, f)
		}
		out[i] = v
	}

	return out, nil
}

// ParseSystem reads rows separated by ";": "1,1,3; 2,-1,0".
func ParseSystem(text string) ([][]float64, error) {
	parts := strings.Split(text, ";")
	rows := make([][]float64, 0, len(parts))
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue // tolerate a trailing ";"
		}
		row, err := ParseCoefficients(p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadCoefficients)
	}

	return rows, nil
}
