package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/xob0t/storeshots/pkg/canvas"
)

// Glyph is a small pictogram drawn into a square box. Glyphs replace the
// emoji of the store mockups, which the bundled fonts cannot render.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphCheck
	GlyphLock
	GlyphShield
	GlyphSignal
	GlyphBattery
	GlyphSend
	GlyphSearch
	GlyphHome
	GlyphChat
	GlyphPhone
	GlyphPeople
	GlyphGear
	GlyphHeart
	GlyphGlobe
)

var glyphNames = [...]string{
	GlyphNone:    "none",
	GlyphCheck:   "check",
	GlyphLock:    "lock",
	GlyphShield:  "shield",
	GlyphSignal:  "signal",
	GlyphBattery: "battery",
	GlyphSend:    "send",
	GlyphSearch:  "search",
	GlyphHome:    "home",
	GlyphChat:    "chat",
	GlyphPhone:   "phone",
	GlyphPeople:  "people",
	GlyphGear:    "gear",
	GlyphHeart:   "heart",
	GlyphGlobe:   "globe",
}

func (g Glyph) String() string {
	if g < 0 || int(g) >= len(glyphNames) {
		return "glyph(?)"
	}
	return glyphNames[g]
}

// box maps unit coordinates (0..1) into r.
type box struct {
	x, y, s float64
}

func newBox(r image.Rectangle) box {
	r = r.Canon()
	s := float64(min(r.Dx(), r.Dy()))
	return box{
		x: float64(r.Min.X) + (float64(r.Dx())-s)/2,
		y: float64(r.Min.Y) + (float64(r.Dy())-s)/2,
		s: s,
	}
}

func (b box) pt(u, v float64) canvas.Point { return canvas.Pt(b.x+u*b.s, b.y+v*b.s) }

func (b box) rect(u0, v0, u1, v1 float64) image.Rectangle {
	return image.Rect(
		int(math.Round(b.x+u0*b.s)), int(math.Round(b.y+v0*b.s)),
		int(math.Round(b.x+u1*b.s)), int(math.Round(b.y+v1*b.s)),
	)
}

func (b box) pts(uv ...float64) []canvas.Point {
	out := make([]canvas.Point, 0, len(uv)/2)
	for i := 0; i+1 < len(uv); i += 2 {
		out = append(out, b.pt(uv[i], uv[i+1]))
	}
	return out
}

// Draw paints g centred in the largest square that fits r. bg is the colour
// behind the glyph, used to cut holes.
func (g Glyph) Draw(c *canvas.Canvas, r image.Rectangle, col, bg color.RGBA) {
	b := newBox(r)
	if b.s < 4 {
		return
	}
	stroke := max(b.s*0.12, 1.5)

	switch g {
	case GlyphCheck:
		c.Polyline(b.pts(0.16, 0.52, 0.40, 0.76, 0.86, 0.26), col, stroke*1.2)
	case GlyphLock:
		Lock{Rect: b.rect(0.2, 0.05, 0.8, 0.95), Body: col, Outline: col, Hole: bg}.Draw(c)
	case GlyphShield:
		Shield{Offset: b.pt(0.5-0.5*ShieldWidth/ShieldHeight, 0), Scale: b.s / ShieldHeight, Fill: col, Outline: col, Width: 1}.Draw(c)
	case GlyphSignal:
		for i := 0; i < 4; i++ {
			u := 0.08 + float64(i)*0.23
			top := 0.75 - float64(i)*0.2
			c.Rectangle(b.rect(u, top, u+0.16, 0.9), canvas.Filled(col))
		}
	case GlyphBattery:
		c.Rectangle(b.rect(0.04, 0.28, 0.86, 0.72), canvas.Outlined(col, max(b.s*0.07, 1)))
		c.Rectangle(b.rect(0.86, 0.40, 0.96, 0.60), canvas.Filled(col))
		c.Rectangle(b.rect(0.14, 0.38, 0.66, 0.62), canvas.Filled(col))
	case GlyphSend:
		c.Polygon(b.pts(0.12, 0.12, 0.92, 0.5, 0.12, 0.88, 0.24, 0.5), canvas.Filled(col))
	case GlyphSearch:
		c.Ellipse(b.rect(0.08, 0.08, 0.68, 0.68), canvas.Outlined(col, stroke))
		c.Polyline(b.pts(0.60, 0.60, 0.90, 0.90), col, stroke*1.3)
	case GlyphHome:
		c.Polygon(b.pts(0.5, 0.08, 0.94, 0.48, 0.06, 0.48), canvas.Filled(col))
		c.Rectangle(b.rect(0.18, 0.46, 0.82, 0.92), canvas.Filled(col))
		c.Rectangle(b.rect(0.42, 0.62, 0.58, 0.92), canvas.Filled(bg))
	case GlyphChat:
		c.RoundedRectangle(b.rect(0.06, 0.1, 0.94, 0.72), b.s*0.16, canvas.Filled(col))
		c.Polygon(b.pts(0.22, 0.66, 0.46, 0.70, 0.18, 0.92), canvas.Filled(col))
	case GlyphPhone:
		c.RoundedRectangle(b.rect(0.26, 0.04, 0.74, 0.96), b.s*0.1, canvas.Outlined(col, stroke))
		c.Ellipse(b.rect(0.44, 0.78, 0.56, 0.90), canvas.Filled(col))
	case GlyphPeople:
		c.Ellipse(b.rect(0.52, 0.10, 0.84, 0.42), canvas.Filled(col))
		c.RoundedRectangle(b.rect(0.44, 0.48, 0.96, 0.90), b.s*0.18, canvas.Filled(col))
		c.Ellipse(b.rect(0.14, 0.18, 0.50, 0.54), canvas.FilledOutlined(col, bg, stroke/2))
		c.RoundedRectangle(b.rect(0.04, 0.58, 0.62, 0.94), b.s*0.18, canvas.FilledOutlined(col, bg, stroke/2))
	case GlyphGear:
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			ca, sa := math.Cos(a), math.Sin(a)
			c.Polyline([]canvas.Point{b.pt(0.5+ca*0.28, 0.5+sa*0.28), b.pt(0.5+ca*0.46, 0.5+sa*0.46)}, col, b.s*0.16)
		}
		c.Ellipse(b.rect(0.18, 0.18, 0.82, 0.82), canvas.Filled(col))
		c.Ellipse(b.rect(0.38, 0.38, 0.62, 0.62), canvas.Filled(bg))
	case GlyphHeart:
		c.Ellipse(b.rect(0.06, 0.12, 0.54, 0.60), canvas.Filled(col))
		c.Ellipse(b.rect(0.46, 0.12, 0.94, 0.60), canvas.Filled(col))
		c.Polygon(b.pts(0.08, 0.45, 0.92, 0.45, 0.5, 0.92), canvas.Filled(col))
	case GlyphGlobe:
		c.Ellipse(b.rect(0.06, 0.06, 0.94, 0.94), canvas.Outlined(col, stroke))
		c.Ellipse(b.rect(0.30, 0.06, 0.70, 0.94), canvas.Outlined(col, stroke*0.7))
		c.Line(image.Pt(int(b.x+0.06*b.s), int(b.y+0.5*b.s)), image.Pt(int(b.x+0.94*b.s), int(b.y+0.5*b.s)), col, int(max(stroke*0.7, 1)))
	}
}
