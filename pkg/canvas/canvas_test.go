package canvas

import (
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

var (
	bg    = color.RGBA{13, 61, 26, 255}
	red   = color.RGBA{255, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestNewFillsBackground(t *testing.T) {
	c := New(40, 30, bg)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 30, c.Height())
	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 29}, {39, 29}, {20, 15}} {
		assert.Equal(t, bg, c.At(p.X, p.Y), "%v", p)
	}
}

func TestRectangleIsPixelExact(t *testing.T) {
	c := New(50, 50, bg)
	c.Rectangle(image.Rect(10, 10, 40, 40), FilledOutlined(red, white, 3))

	assert.Equal(t, white, c.At(10, 10))
	assert.Equal(t, white, c.At(12, 25))
	assert.Equal(t, red, c.At(13, 13))
	assert.Equal(t, red, c.At(25, 25))
	assert.Equal(t, white, c.At(39, 39))
	assert.Equal(t, bg, c.At(40, 40))
	assert.Equal(t, bg, c.At(9, 9))
}

func TestLineAxisAligned(t *testing.T) {
	c := New(20, 20, bg)
	c.Line(image.Pt(2, 5), image.Pt(17, 5), red, 1)
	c.Line(image.Pt(8, 0), image.Pt(8, 3), white, 1)

	for x := 2; x <= 17; x++ {
		assert.Equal(t, red, c.At(x, 5), "x=%d", x)
	}
	assert.Equal(t, bg, c.At(1, 5))
	assert.Equal(t, bg, c.At(18, 5))
	assert.Equal(t, bg, c.At(2, 4))
	assert.Equal(t, white, c.At(8, 3))
	assert.Equal(t, bg, c.At(8, 4))
}

func TestOutOfBoundsIsClipped(t *testing.T) {
	c := New(10, 10, bg)
	assert.NotPanics(t, func() {
		c.Rectangle(image.Rect(-50, -50, 500, 5), Filled(red))
		c.Line(image.Pt(-20, 20), image.Pt(40, 20), red, 2)
		c.Line(image.Pt(-20, -20), image.Pt(40, 40), red, 2)
		c.Ellipse(image.Rect(-100, -100, -50, -50), Filled(red))
		c.Polygon([]Point{{-5, -5}, {100, 0}, {0, 100}}, FilledOutlined(red, white, 2))
		c.RoundedRectangle(image.Rect(5, 5, 200, 200), 30, Filled(white))
		c.Arc(image.Rect(-10, -10, 10, 10), 180, 0, red, 4)
		c.Text(image.Pt(-30, -30), "clipped", basicfont.Face7x13, white)
	})
	assert.Equal(t, red, c.At(0, 0))
}

func TestPolygonFillsInterior(t *testing.T) {
	c := New(100, 100, bg)
	c.Polygon([]Point{{10, 10}, {90, 10}, {90, 90}, {10, 90}}, Filled(red))
	assert.Equal(t, red, c.At(50, 50))
	assert.Equal(t, bg, c.At(5, 5))

	c.Polygon([]Point{{0, 0}, {10, 10}}, Filled(white))
	assert.Equal(t, bg, c.At(1, 1), "degenerate polygon must not draw")
}

func TestEllipseAndRoundedRectangle(t *testing.T) {
	c := New(100, 100, bg)
	c.Ellipse(image.Rect(20, 20, 80, 80), Filled(red))
	assert.Equal(t, red, c.At(50, 50))
	assert.Equal(t, bg, c.At(21, 21), "corner of the bounding box lies outside the circle")

	c.RoundedRectangle(image.Rect(0, 0, 100, 10), 4, Filled(white))
	assert.Equal(t, white, c.At(50, 5))
	assert.Equal(t, bg, c.At(0, 0))
}

func TestArcUpperHalf(t *testing.T) {
	c := New(100, 100, bg)
	c.Arc(image.Rect(20, 20, 80, 80), 180, 0, red, 6)

	assert.Equal(t, red, c.At(50, 22), "top of the arc")
	assert.Equal(t, bg, c.At(50, 77), "bottom half is not drawn")
	assert.Equal(t, bg, c.At(50, 50))
}

func TestTextPaintsGlyphs(t *testing.T) {
	c := New(120, 30, bg)
	c.Text(image.Pt(2, 2), "Secure", basicfont.Face7x13, white)

	painted := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if c.At(x, y) != bg {
				painted++
			}
		}
	}
	assert.Positive(t, painted)
	assert.Equal(t, 6*7, MeasureText("Secure", basicfont.Face7x13))
}

func TestSave(t *testing.T) {
	c := New(8, 8, bg)
	dir := t.TempDir()

	n, err := c.Save(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Positive(t, n)

	_, err = c.Save(filepath.Join(dir, "nope", "a.png"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPolyline(t *testing.T) {
	c := New(40, 40, bg)
	c.Polyline([]Point{{5, 20.5}, {35, 20.5}}, red, 3)
	assert.Equal(t, red, c.At(20, 20))
	assert.Equal(t, bg, c.At(20, 10))

	c.Polyline([]Point{{1, 1}}, white, 3)
	assert.Equal(t, bg, c.At(1, 1))
}
