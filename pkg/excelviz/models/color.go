package models

import (
	"encoding/json"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an HSL color with alpha.
// H is a fraction of the hue circle in [0, 1); S, L and A are in [0, 1].
type Color struct {
	H float64
	S float64
	L float64
	A float64
}

// HSL returns an opaque color. h is in degrees.
func HSL(h, s, l float64) Color {
	return Color{H: h / 360, S: s, L: l, A: 1}
}

// WithAlpha returns a copy of c with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// CSS formats the color as a CSS hsl() or hsla() value.
func (c Color) CSS() string {
	h := round2(c.H * 360)
	s := round2(c.S * 100)
	l := round2(c.L * 100)
	if c.A >= 1 {
		return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", h, s, l, math.Round(c.A*1000)/1000)
}

// Hex returns the #rrggbb form of the color, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Hsl(c.H*360, c.S, c.L).Clamped().Hex()
}

// RGBA returns 8-bit channels, alpha included.
func (c Color) RGBA() (r, g, b, a uint8) {
	r, g, b = colorful.Hsl(c.H*360, c.S, c.L).Clamped().RGB255()
	return r, g, b, uint8(math.Round(c.A * 255))
}

type colorJSON struct {
	H   float64 `json:"h"`
	S   float64 `json:"s"`
	L   float64 `json:"l"`
	A   float64 `json:"a"`
	CSS string  `json:"css"`
	Hex string  `json:"hex"`
}

// MarshalJSON emits the HSL components along with CSS and hex forms.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(colorJSON{H: c.H, S: c.S, L: c.L, A: c.A, CSS: c.CSS(), Hex: c.Hex()})
}

// UnmarshalJSON reads the HSL components; CSS and hex are derived.
func (c *Color) UnmarshalJSON(data []byte) error {
	var v colorJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Color{H: v.H, S: v.S, L: v.L, A: v.A}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
