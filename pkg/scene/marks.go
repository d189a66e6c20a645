// marks.go - Security emblem regions (shield, lock, hero badge) and banner text.
package scene

import (
	"image"
	"math"

	"github.com/xob0t/storeshots/pkg/canvas"
	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/icon"
	"github.com/xob0t/storeshots/pkg/palette"
)

// ShieldMark is the app emblem: a shield with a padlock on it and a glint on
// the upper-right facet.
type ShieldMark struct {
	Offset canvas.Point
	Scale  float64
	Width  float64 // shield outline width at scale 1

	Fill    palette.Name
	Outline palette.Name
	Glint   palette.Name // empty means no glint

	LockSize     image.Point // padlock centred on the shield; zero means none
	LockBody     palette.Name
	LockOutline  palette.Name
	LockHole     palette.Name
	LockOutlineW float64
	LockShackleW float64
}

func (ShieldMark) Kind() string { return "shield-mark" }

// Shield returns the shield this mark paints.
func (m ShieldMark) Shield(p palette.Palette) icon.Shield {
	return icon.Shield{
		Offset:  m.Offset,
		Scale:   m.Scale,
		Fill:    p.Color(m.Fill),
		Outline: p.Color(m.Outline),
		Width:   m.Width,
	}
}

// LockRect is the padlock rectangle, centred on the shield.
func (m ShieldMark) LockRect() image.Rectangle {
	c := icon.Shield{Offset: m.Offset, Scale: m.Scale}.Center()
	x := int(math.Round(c.X)) - m.LockSize.X/2
	y := int(math.Round(c.Y)) - m.LockSize.Y/2
	return image.Rect(x, y, x+m.LockSize.X, y+m.LockSize.Y)
}

func (m ShieldMark) Render(f *Frame) {
	sh := m.Shield(f.Palette)
	sh.Draw(f.Canvas)
	if lock := m.LockRect(); !lock.Empty() {
		icon.Lock{
			Rect:         lock,
			Body:         f.Color(m.LockBody),
			Outline:      f.Color(m.LockOutline),
			Hole:         f.Color(m.LockHole),
			OutlineWidth: m.LockOutlineW,
			ShackleWidth: m.LockShackleW,
		}.Draw(f.Canvas)
	}
	if m.Glint != "" {
		sh.DrawGlint(f.Canvas, f.Color(m.Glint))
	}
}

// Badge is a round outlined disc holding a padlock, used as the hero of the
// privacy screen and the emblem of the about screen.
type Badge struct {
	Rect    image.Rectangle
	Fill    palette.Name
	Outline palette.Name
	Width   float64
	Lock    image.Rectangle
}

func (Badge) Kind() string { return "badge" }

func (b Badge) Render(f *Frame) {
	f.Canvas.Ellipse(b.Rect, canvas.FilledOutlined(f.Color(b.Fill), f.Color(b.Outline), b.Width))
	if b.Lock.Empty() {
		return
	}
	icon.Lock{
		Rect:    b.Lock,
		Body:    f.Color(palette.AccentLight),
		Outline: f.Color(palette.Surface),
		Hole:    f.Color(b.Fill),
	}.Draw(f.Canvas)
}

// StatusLine is a centred glyph followed by a bold line of text.
type StatusLine struct {
	Y     int
	Glyph icon.Glyph
	Text  string
	Size  float64
}

func (StatusLine) Kind() string { return "status-line" }

func (s StatusLine) Render(f *Frame) {
	size := s.Size
	if size <= 0 {
		size = 28
	}
	g := f.TextHeight(fonts.Bold, size)
	tw := f.TextWidth(s.Text, fonts.Bold, size)
	x := (f.Canvas.Width() - g - 12 - tw) / 2
	s.Glyph.Draw(f.Canvas, image.Rect(x, s.Y, x+g, s.Y+g), f.Color(palette.Accent), f.Color(palette.Accent))
	f.Text(x+g+12, s.Y, s.Text, fonts.Bold, size, palette.Text)
}

// BannerText is the text column of the feature graphic: title, italic
// subtitle, a divider, one line per feature and a version tag.
type BannerText struct {
	X, Right  int
	TitleY    int
	Title     string
	Subtitle  string
	DividerY  int
	FeaturesY int
	LineStep  int
	Features  []string
	Version   string
	VersionAt image.Point
}

func (BannerText) Kind() string { return "banner-text" }

// FeatureTop is the top of feature line i.
func (b BannerText) FeatureTop(i int) int { return b.FeaturesY + i*b.LineStep }

// Overflow reports how many feature lines fall past the bottom of a canvas of the given height.
func (b BannerText) Overflow(height int) int {
	over := 0
	for i := range b.Features {
		if b.FeatureTop(i)+b.LineStep > height {
			over++
		}
	}
	return over
}

func (b BannerText) Render(f *Frame) {
	f.Text(b.X, b.TitleY, b.Title, fonts.Bold, 48, palette.Text)
	f.Text(b.X, b.TitleY+f.TextHeight(fonts.Bold, 48)+4, b.Subtitle, fonts.Italic, 28, palette.Pale)
	f.Canvas.Line(image.Pt(b.X, b.DividerY), image.Pt(b.Right, b.DividerY), f.Color(palette.AccentLight), 2)
	for i, line := range b.Features {
		f.Text(b.X, b.FeatureTop(i), line, fonts.Regular, 20, palette.Pale)
	}
	if b.Version != "" {
		f.Text(b.VersionAt.X, b.VersionAt.Y, b.Version, fonts.Regular, 18, palette.AccentLight)
	}
}
