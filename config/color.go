package config

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Color is linear RGB, components may exceed 1 to feed bloom
// YAML accepts "#rrggbb" (sRGB, converted to linear) or [r, g, b] (linear, taken as-is)
type Color [3]float64

// Colorful returns the color as a go-colorful value in linear space
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

// Hex parses an sRGB hex string into a linear Color
func Hex(s string) (Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := col.LinearRgb()
	return Color{r, g, b}, nil
}

// MustHex is Hex for constants, panics on malformed input
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		parsed, err := Hex(s)
		if err != nil {
			return errors.Wrapf(err, "line %d", value.Line)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var v []float64
		if err := value.Decode(&v); err != nil {
			return errors.Wrapf(err, "line %d", value.Line)
		}
		if len(v) != 3 {
			return errors.Errorf("line %d: color needs 3 components, got %d", value.Line, len(v))
		}
		*c = Color{v[0], v[1], v[2]}
		return nil
	default:
		return errors.Errorf("line %d: color must be a hex string or [r, g, b]", value.Line)
	}
}
