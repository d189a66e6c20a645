// Package canvas is the raster surface every scene paints on.
//
// A Canvas owns one fixed-size RGBA buffer. Primitives mutate it in call
// order; later calls paint over earlier ones. Axis-aligned rectangles and
// lines are written pixel-exact through image/draw so flat regions keep
// their exact palette colour. Everything else goes through gg and is
// anti-aliased. Coordinates outside the buffer are clipped.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/xob0t/storeshots/pkg/generator"
)

// Point is a sub-pixel position.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Style selects fill and outline for closed shapes. A nil colour disables
// that part. Outlines are laid inside the shape, Width pixels thick.
type Style struct {
	Fill    color.Color
	Outline color.Color
	Width   float64
}

// Filled is a fill-only style.
func Filled(c color.Color) Style { return Style{Fill: c} }

// Outlined is an outline-only style.
func Outlined(c color.Color, width float64) Style { return Style{Outline: c, Width: width} }

// FilledOutlined fills with fill and draws an outline of the given width.
func FilledOutlined(fill, outline color.Color, width float64) Style {
	return Style{Fill: fill, Outline: outline, Width: width}
}

func (s Style) strokeWidth() float64 {
	if s.Outline == nil {
		return 0
	}
	return max(s.Width, 1)
}

// Canvas is a mutable pixel buffer plus its drawing primitives.
// It is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// New creates a width x height canvas filled with bg.
func New(width, height int, bg color.RGBA) *Canvas {
	img := generator.NewSolidImage(max(width, 1), max(height, 1), bg)
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCapButt()
	dc.SetLineJoinRound()
	return &Canvas{img: img, dc: dc}
}

// Image returns the underlying buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// At returns the pixel at (x, y), or the zero colour outside the canvas.
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Save encodes the canvas to path (format by extension) and returns the file size.
// The parent directory must exist.
func (c *Canvas) Save(path string) (int64, error) {
	return generator.WriteFile(path, c.img)
}

// Line draws a segment from a to b. Horizontal and vertical segments include
// both end points, like a pixel run.
func (c *Canvas) Line(a, b image.Point, col color.Color, width int) {
	width = max(width, 1)
	lo := (width - 1) / 2
	switch {
	case a.Y == b.Y:
		r := image.Rect(min(a.X, b.X), a.Y-lo, max(a.X, b.X)+1, a.Y-lo+width)
		c.fillRect(r, col)
	case a.X == b.X:
		r := image.Rect(a.X-lo, min(a.Y, b.Y), a.X-lo+width, max(a.Y, b.Y)+1)
		c.fillRect(r, col)
	default:
		c.dc.SetColor(col)
		c.dc.SetLineWidth(float64(width))
		c.dc.DrawLine(float64(a.X)+0.5, float64(a.Y)+0.5, float64(b.X)+0.5, float64(b.Y)+0.5)
		c.dc.Stroke()
	}
}

// Rectangle draws an axis-aligned rectangle, pixel-exact.
func (c *Canvas) Rectangle(r image.Rectangle, s Style) {
	r = r.Canon()
	if s.Fill != nil {
		c.fillRect(r, s.Fill)
	}
	if s.Outline == nil {
		return
	}
	w := int(math.Round(s.strokeWidth()))
	if 2*w >= r.Dx() || 2*w >= r.Dy() {
		c.fillRect(r, s.Outline)
		return
	}
	c.fillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), s.Outline)
	c.fillRect(image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), s.Outline)
	c.fillRect(image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), s.Outline)
	c.fillRect(image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), s.Outline)
}

// RoundedRectangle draws r with corners of the given radius.
func (c *Canvas) RoundedRectangle(r image.Rectangle, radius float64, s Style) {
	r = r.Canon()
	radius = min(radius, float64(min(r.Dx(), r.Dy()))/2)
	if s.Fill != nil {
		c.dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), radius)
		c.fill(s.Fill)
	}
	if w := s.strokeWidth(); w > 0 {
		h := w / 2
		c.dc.DrawRoundedRectangle(float64(r.Min.X)+h, float64(r.Min.Y)+h, float64(r.Dx())-w, float64(r.Dy())-w, max(radius-h, 0))
		c.stroke(s.Outline, w)
	}
}

// Ellipse draws the ellipse inscribed in r.
func (c *Canvas) Ellipse(r image.Rectangle, s Style) {
	r = r.Canon()
	cx, cy, rx, ry := ellipseOf(r)
	if s.Fill != nil {
		c.dc.DrawEllipse(cx, cy, rx, ry)
		c.fill(s.Fill)
	}
	if w := s.strokeWidth(); w > 0 {
		c.dc.DrawEllipse(cx, cy, max(rx-w/2, 0), max(ry-w/2, 0))
		c.stroke(s.Outline, w)
	}
}

// Arc strokes part of the ellipse inscribed in r. Angles are in degrees,
// measured clockwise from 3 o'clock, and the arc runs clockwise from start
// to end; 180 to 0 is the upper half.
func (c *Canvas) Arc(r image.Rectangle, start, end float64, col color.Color, width float64) {
	r = r.Canon()
	width = max(width, 1)
	for end <= start {
		end += 360
	}
	cx, cy, rx, ry := ellipseOf(r)
	c.dc.NewSubPath()
	c.dc.DrawEllipticalArc(cx, cy, max(rx-width/2, 0), max(ry-width/2, 0), gg.Radians(start), gg.Radians(end))
	c.stroke(col, width)
}

// Polygon draws the closed polygon through pts. Fewer than three points draw nothing.
func (c *Canvas) Polygon(pts []Point, s Style) {
	if len(pts) < 3 {
		return
	}
	path := func() {
		c.dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			c.dc.LineTo(p.X, p.Y)
		}
		c.dc.ClosePath()
	}
	if s.Fill != nil {
		path()
		c.fill(s.Fill)
	}
	if w := s.strokeWidth(); w > 0 {
		path()
		c.stroke(s.Outline, w)
	}
}

// Polyline strokes the open path through pts with round joins.
func (c *Canvas) Polyline(pts []Point, col color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.stroke(col, max(width, 1))
}

// Text draws s with its top-left corner at p.
func (c *Canvas) Text(p image.Point, s string, face font.Face, col color.Color) {
	if s == "" || face == nil {
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	baseline := p.Y + face.Metrics().Ascent.Ceil()
	c.dc.DrawString(s, float64(p.X), float64(baseline))
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(s string, face font.Face) int {
	if face == nil {
		return 0
	}
	return font.MeasureString(face, s).Ceil()
}

func (c *Canvas) fillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r.Canon(), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Fill()
}

func (c *Canvas) stroke(col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.Stroke()
}

func ellipseOf(r image.Rectangle) (cx, cy, rx, ry float64) {
	rx = float64(r.Dx()) / 2
	ry = float64(r.Dy()) / 2
	return float64(r.Min.X) + rx, float64(r.Min.Y) + ry, rx, ry
}
