// Package icon builds the composite vector shapes used as the security motif
// (shield, lock) and the small glyphs that stand in for emoji, all out of
// canvas primitives.
package icon

import (
	"image/color"

	"github.com/xob0t/storeshots/pkg/canvas"
)

// Unit shield size. Scale 1 yields a shield this large.
const (
	ShieldWidth  = 328
	ShieldHeight = 400
)

// unitShield holds the hexagon relative to the top-left of its bounding box,
// in order: apex, upper-right, lower-right, base, lower-left, upper-left.
var unitShield = [6]canvas.Point{
	{X: 164, Y: 0},
	{X: 328, Y: 60},
	{X: 328, Y: 220},
	{X: 164, Y: 400},
	{X: 0, Y: 220},
	{X: 0, Y: 60},
}

// unitGlint is the highlight triangle on the upper-right facet.
var unitGlint = [3]canvas.Point{
	{X: 164, Y: 10},
	{X: 318, Y: 65},
	{X: 164, Y: 40},
}

// Shield is a hexagonal shield placed with its bounding box at Offset.
type Shield struct {
	Offset  canvas.Point
	Scale   float64
	Fill    color.RGBA
	Outline color.RGBA
	Width   float64
}

// Vertices returns the six corners, apex first, clockwise.
func (s Shield) Vertices() [6]canvas.Point {
	var out [6]canvas.Point
	for i, p := range unitShield {
		out[i] = s.place(p)
	}
	return out
}

// Center is the middle of the shield's bounding box.
func (s Shield) Center() canvas.Point {
	return s.place(canvas.Pt(ShieldWidth/2, ShieldHeight/2))
}

// Draw fills the hexagon, then outlines it.
func (s Shield) Draw(c *canvas.Canvas) {
	v := s.Vertices()
	c.Polygon(v[:], canvas.FilledOutlined(s.Fill, s.Outline, s.Width*s.scale()))
}

// DrawGlint paints the highlight triangle in col on top of the shield.
func (s Shield) DrawGlint(c *canvas.Canvas, col color.RGBA) {
	pts := make([]canvas.Point, len(unitGlint))
	for i, p := range unitGlint {
		pts[i] = s.place(p)
	}
	c.Polygon(pts, canvas.Filled(col))
}

func (s Shield) scale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}

func (s Shield) place(p canvas.Point) canvas.Point {
	k := s.scale()
	return canvas.Pt(s.Offset.X+p.X*k, s.Offset.Y+p.Y*k)
}
