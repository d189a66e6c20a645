// Package gradient paints two-colour linear gradients one scanline (or
// column) at a time.
package gradient

import (
	"image"
	"image/color"
	"math"

	"github.com/xob0t/storeshots/pkg/canvas"
)

// Axis is the direction along which the colour changes.
type Axis int

const (
	// Vertical varies colour from top to bottom; each row is one colour.
	Vertical Axis = iota
	// Horizontal varies colour from left to right; each column is one colour.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Spec is a linear gradient between two colours.
type Spec struct {
	Axis  Axis
	Start color.RGBA
	End   color.RGBA
}

// Solid returns a gradient that paints c everywhere.
func Solid(c color.RGBA) Spec {
	return Spec{Axis: Vertical, Start: c, End: c}
}

// At returns the colour of line i out of length lines: each channel is
// round(start + (end-start)*i/length), clamped to [0,255]. Every step is
// computed independently so the banding is identical from run to run. The
// last line lands within one level of End. length <= 1 yields Start.
func (s Spec) At(i, length int) color.RGBA {
	if length <= 1 || i <= 0 {
		return s.Start
	}
	i = min(i, length-1)
	return color.RGBA{
		R: lerp(s.Start.R, s.End.R, i, length),
		G: lerp(s.Start.G, s.End.G, i, length),
		B: lerp(s.Start.B, s.End.B, i, length),
		A: lerp(s.Start.A, s.End.A, i, length),
	}
}

// Length is the number of lines the gradient needs to cover r.
func (s Spec) Length(r image.Rectangle) int {
	if s.Axis == Horizontal {
		return r.Dx()
	}
	return r.Dy()
}

// Paint fills r on c with s, drawing one full-length line per step.
func Paint(c *canvas.Canvas, r image.Rectangle, s Spec) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	n := s.Length(r)
	for i := 0; i < n; i++ {
		col := s.At(i, n)
		if s.Axis == Horizontal {
			x := r.Min.X + i
			c.Line(image.Pt(x, r.Min.Y), image.Pt(x, r.Max.Y-1), col, 1)
		} else {
			y := r.Min.Y + i
			c.Line(image.Pt(r.Min.X, y), image.Pt(r.Max.X-1, y), col, 1)
		}
	}
}

// lerp steps i/n of the way from a to b, multiplying before dividing.
func lerp(a, b uint8, i, n int) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*float64(i)/float64(n))
	return uint8(min(max(v, 0), 255))
}
