// Package palette maps the semantic colour names shared by every scene to
// concrete RGB values.
package palette

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/xob0t/storeshots/pkg/generator"
)

// Name is a semantic colour name.
type Name string

const (
	BackgroundDeep  Name = "background-deep"
	BackgroundDark  Name = "background-dark"
	Surface         Name = "surface"
	Accent          Name = "accent"
	AccentLight     Name = "accent-light"
	Muted           Name = "muted"
	Pale            Name = "pale"
	Text            Name = "text"
	BubbleIncoming  Name = "bubble-incoming"
	BubbleOutgoing  Name = "bubble-outgoing"
	Unread          Name = "unread"
	GradientTop     Name = "gradient-top"
	GradientFoliage Name = "gradient-foliage"
	GradientNight   Name = "gradient-night"
	GradientMoss    Name = "gradient-moss"
	GradientSea     Name = "gradient-sea"
	GradientFern    Name = "gradient-fern"
)

// Palette is a read-only lookup table. It is safe for concurrent reads.
type Palette map[Name]color.RGBA

// Default is the "green" theme of the messenger.
var Default = mustParse(map[Name]string{
	BackgroundDeep:  "#0D3D1A",
	BackgroundDark:  "#1B5E20",
	Surface:         "#2E7D32",
	Accent:          "#4CAF50",
	AccentLight:     "#81C784",
	Muted:           "#66BB6A",
	Pale:            "#C8E6C9",
	Text:            "#FFFFFF",
	BubbleIncoming:  "#1B5E20",
	BubbleOutgoing:  "#2E7D32",
	Unread:          "#2E7D32",
	GradientTop:     "#1B7D32",
	GradientFoliage: "#1E3C28",
	GradientNight:   "#14281E",
	GradientMoss:    "#1B5532",
	GradientSea:     "#2E7D48",
	GradientFern:    "#1B5F32",
})

// Color returns the colour for n. Unknown names yield white so a typo shows
// up on screen instead of aborting a render.
func (p Palette) Color(n Name) color.RGBA {
	if c, ok := p[n]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}

// Names lists the palette entries in sorted order.
func (p Palette) Names() []Name {
	names := make([]Name, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func mustParse(hex map[Name]string) Palette {
	p := make(Palette, len(hex))
	for n, h := range hex {
		c, err := generator.ParseColor(h)
		if err != nil {
			panic(fmt.Sprintf("palette %s: %v", n, err))
		}
		p[n] = c
	}
	return p
}
