// compose.go - Scene composition: background, status bar, then regions.
package scene

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/xob0t/storeshots/pkg/canvas"
	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/gradient"
	"github.com/xob0t/storeshots/pkg/icon"
	"github.com/xob0t/storeshots/pkg/palette"
)

// DefaultFamily is the font family every scene asks for first.
const DefaultFamily = "DejaVuSans"

// Composer paints scenes. The zero value uses the embedded fonts and the
// default palette. A Composer may be shared between goroutines as long as
// its Resolver is; each Compose call keeps its own faces.
type Composer struct {
	Fonts   fonts.Resolver
	Palette palette.Palette
	Family  string
}

// Compose paints s with the embedded fonts and default palette.
func Compose(s Scene, r fonts.Resolver) *canvas.Canvas {
	return Composer{Fonts: r}.Compose(s)
}

// Compose returns a fully painted canvas for s. It performs no I/O.
func (c Composer) Compose(s Scene) *canvas.Canvas {
	pal := c.Palette
	if pal == nil {
		pal = palette.Default
	}
	family := c.Family
	if family == "" {
		family = DefaultFamily
	}

	cv := canvas.New(s.Width, s.Height, s.Background.Start)
	gradient.Paint(cv, cv.Bounds(), s.Background)

	f := &Frame{
		Canvas:  cv,
		Palette: pal,
		Fonts:   fonts.NewCache(c.Fonts),
		Family:  family,
	}
	defer f.Fonts.Close()

	if s.Phone {
		StatusBar{Clock: s.Clock}.Render(f)
	}
	for _, r := range s.Regions {
		r.Render(f)
	}
	return cv
}

// Frame is what a region draws with: the canvas, colours and fonts of the
// scene being composed.
type Frame struct {
	Canvas  *canvas.Canvas
	Palette palette.Palette
	Fonts   *fonts.Cache
	Family  string
}

// Color looks up a palette colour.
func (f *Frame) Color(n palette.Name) color.RGBA { return f.Palette.Color(n) }

// Face returns the scene font at the given weight and size.
func (f *Frame) Face(w fonts.Weight, size float64) font.Face {
	return f.Fonts.Face(fonts.Spec{Family: f.Family, Weight: w, Size: size})
}

// Text draws s with its top-left corner at (x, y).
func (f *Frame) Text(x, y int, s string, w fonts.Weight, size float64, col palette.Name) {
	f.Canvas.Text(image.Pt(x, y), s, f.Face(w, size), f.Color(col))
}

// TextCentered draws s horizontally centred on cx, top at y.
func (f *Frame) TextCentered(cx, y int, s string, w fonts.Weight, size float64, col palette.Name) {
	face := f.Face(w, size)
	f.Canvas.Text(image.Pt(cx-canvas.MeasureText(s, face)/2, y), s, face, f.Color(col))
}

// TextWidth measures s in the scene font.
func (f *Frame) TextWidth(s string, w fonts.Weight, size float64) int {
	return canvas.MeasureText(s, f.Face(w, size))
}

// TextHeight is the line height of the scene font at size.
func (f *Frame) TextHeight(w fonts.Weight, size float64) int {
	return f.Face(w, size).Metrics().Height.Ceil()
}

// Status bar geometry.
const (
	StatusBarHeight = 40
	statusGlyph     = 28
)

// StatusBar shows the clock on the left and signal and battery on the right.
// Compose draws it first on every phone scene.
type StatusBar struct {
	Clock string
}

func (StatusBar) Kind() string { return "status-bar" }

func (s StatusBar) Render(f *Frame) {
	w := f.Canvas.Width()
	clock := s.Clock
	if clock == "" {
		clock = "18:30"
	}
	f.Text(24, 8, clock, fonts.Bold, 22, palette.Text)

	white := f.Color(palette.Text)
	top := (StatusBarHeight - statusGlyph) / 2
	icon.GlyphSignal.Draw(f.Canvas, image.Rect(w-110, top, w-110+statusGlyph, top+statusGlyph), white, white)
	icon.GlyphBattery.Draw(f.Canvas, image.Rect(w-24-statusGlyph-8, top-4, w-24, top+statusGlyph+4), white, white)
}
