// package colors contains the Color type used to tint the rendered marker and axis indicators, and functions to quickly
// generate Color instances by name (i.e. "White()", "Red()", "Green()", etc).
package colors

import "image/color"

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHexInt returns a new, opaque Color out of a 0xRRGGBB integer (the format the viewers' scene colors are written in).
func NewColorFromHexInt(hex uint32) Color {
	return NewColor(
		float32((hex>>16)&0xff)/255,
		float32((hex>>8)&0xff)/255,
		float32(hex&0xff)/255,
		1,
	)
}

// Floats returns the Color's components as a [4]float64, in R, G, B, A order.
func (c Color) Floats() [4]float64 {
	return [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

// ToNRGBA converts the Color to a non-premultiplied color.NRGBA.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

// ToRGB8 returns the Color's red, green and blue components as 0-255 integers (ignoring alpha).
func (c Color) ToRGB8() (int32, int32, int32) {
	return int32(to8(c.R)), int32(to8(c.G)), int32(to8(c.B))
}

// WithAlpha returns a copy of the Color with the alpha component replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	} else if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// White generates a Color instance of the provided name.
func White() Color {
	return NewColor(1, 1, 1, 1)
}

// Black generates a Color instance of the provided name.
func Black() Color {
	return NewColor(0, 0, 0, 1)
}

// DarkGray generates a Color instance of the provided name.
func DarkGray() Color {
	return NewColor(0.2, 0.2, 0.2, 1)
}

// Red generates a Color instance of the provided name.
func Red() Color {
	return NewColor(1, 0, 0, 1)
}

// Green generates a Color instance of the provided name.
func Green() Color {
	return NewColor(0, 1, 0, 1)
}
