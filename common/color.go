package common

import "github.com/gogpu/gg"

// Color is a linear RGB triple with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{1, 1, 1}
)

// HexColor parses "#rgb" or "#rrggbb" notation. Malformed input yields black.
//
// Parameters:
//   - hex: the color string, with or without the leading '#'
//
// Returns:
//   - Color: the parsed color
func HexColor(hex string) Color {
	c := gg.Hex(hex)
	return Color{c.R, c.G, c.B}
}

// Lerp interpolates each channel between c and o.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{Lerp(c.R, o.R, t), Lerp(c.G, o.G, t), Lerp(c.B, o.B, t)}
}

// Scale multiplies each channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Add sums two colors channel by channel.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul modulates c by o channel by channel.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Clamped returns c with every channel bounded into [0, 1].
func (c Color) Clamped() Color {
	return Color{Clamp01(c.R), Clamp01(c.G), Clamp01(c.B)}
}

// RGBA converts c to a gg paint color with the given alpha.
func (c Color) RGBA(alpha float64) gg.RGBA {
	c = c.Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: Clamp01(alpha)}
}

// Float32 packs c and an extra fourth channel for GPU upload.
func (c Color) Float32(w float64) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(w)}
}
