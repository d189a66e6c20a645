package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, color.RGBA{46, 125, 50, 255}, Default.Color(Surface))
	assert.Equal(t, color.RGBA{129, 199, 132, 255}, Default.Color(AccentLight))
	assert.Equal(t, color.RGBA{13, 61, 26, 255}, Default.Color(BackgroundDeep))
	assert.Equal(t, "#1E3C28", Hex(Default.Color(GradientFoliage)))
}

func TestUnknownNameIsWhite(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Default.Color("no-such-colour"))
}

func TestNamesSorted(t *testing.T) {
	names := Default.Names()
	assert.Len(t, names, len(Default))
	assert.IsNonDecreasing(t, names)
	for _, c := range Default {
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestMustParseRejectsBadHex(t *testing.T) {
	assert.Panics(t, func() { mustParse(map[Name]string{Accent: "#12345"}) })
	p := mustParse(map[Name]string{Accent: "4CAF50", Text: "#fff"})
	assert.Equal(t, color.RGBA{76, 175, 80, 255}, p.Color(Accent))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, p.Color(Text))
}
