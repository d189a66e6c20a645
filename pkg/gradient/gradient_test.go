package gradient

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xob0t/storeshots/pkg/canvas"
)

func channels(c color.RGBA) [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// Axis lengths of the store listing canvases.
var catalogLengths = []int{500, 512, 1024, 1080, 1920}

func TestEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 500; n++ {
		s := Spec{
			Start: color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255},
			End:   color.RGBA{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), 255},
		}
		length := catalogLengths[rng.Intn(len(catalogLengths))]
		assert.Equal(t, s.Start, s.At(0, length))

		last, end := channels(s.At(length-1, length)), channels(s.End)
		for ch := range last {
			assert.InDelta(t, end[ch], last[ch], 1, "len=%d ch=%d", length, ch)
		}
	}
}

func TestAtFormula(t *testing.T) {
	expect := func(a, b uint8, i, length int) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*float64(i)/float64(length)))
	}
	specs := []Spec{
		{Start: color.RGBA{27, 125, 50, 255}, End: color.RGBA{30, 60, 40, 255}},
		{Start: color.RGBA{0, 0, 0, 255}, End: color.RGBA{255, 255, 255, 255}},
		{Start: color.RGBA{27, 125, 50, 255}, End: color.RGBA{46, 125, 72, 255}},
	}
	for _, s := range specs {
		for _, length := range append([]int{4, 17}, catalogLengths...) {
			for i := 0; i < length; i++ {
				got := s.At(i, length)
				want := color.RGBA{
					R: expect(s.Start.R, s.End.R, i, length),
					G: expect(s.Start.G, s.End.G, i, length),
					B: expect(s.Start.B, s.End.B, i, length),
					A: 255,
				}
				if !assert.Equal(t, want, got, "len=%d i=%d", length, i) {
					return
				}
			}
		}
	}

	// Row 192 of the home background and the quarter step of a 4-line ramp.
	home := Spec{Start: color.RGBA{27, 125, 50, 255}, End: color.RGBA{30, 60, 40, 255}}
	assert.Equal(t, uint8(119), home.At(192, 1920).G)
	ramp := Spec{Start: color.RGBA{A: 255}, End: color.RGBA{255, 255, 255, 255}}
	assert.Equal(t, uint8(64), ramp.At(1, 4).R)
}

func TestMonotonicPerChannel(t *testing.T) {
	specs := []Spec{
		{Start: color.RGBA{27, 125, 50, 255}, End: color.RGBA{30, 60, 40, 255}},
		{Start: color.RGBA{13, 61, 26, 255}, End: color.RGBA{20, 40, 30, 255}},
		{Start: color.RGBA{0, 255, 0, 255}, End: color.RGBA{255, 0, 0, 255}},
	}
	for _, s := range specs {
		for _, length := range []int{2, 3, 17, 500, 1920} {
			start, end := channels(s.Start), channels(s.End)
			prev := channels(s.At(0, length))
			for i := 1; i < length; i++ {
				cur := channels(s.At(i, length))
				for ch := range cur {
					if end[ch] >= start[ch] {
						assert.GreaterOrEqual(t, cur[ch], prev[ch], "len=%d i=%d ch=%d", length, i, ch)
					} else {
						assert.LessOrEqual(t, cur[ch], prev[ch], "len=%d i=%d ch=%d", length, i, ch)
					}
				}
				prev = cur
			}
		}
	}
}

func TestDegenerateLength(t *testing.T) {
	s := Spec{Start: color.RGBA{1, 2, 3, 255}, End: color.RGBA{200, 200, 200, 255}}
	for _, length := range []int{-3, 0, 1} {
		assert.NotPanics(t, func() {
			assert.Equal(t, s.Start, s.At(0, length))
		})
	}
}

func TestSolid(t *testing.T) {
	c := color.RGBA{13, 61, 26, 255}
	s := Solid(c)
	for _, i := range []int{0, 10, 999} {
		assert.Equal(t, c, s.At(i, 1000))
	}
}

func TestPaintVertical(t *testing.T) {
	s := Spec{Axis: Vertical, Start: color.RGBA{0, 0, 0, 255}, End: color.RGBA{0, 100, 0, 255}}
	c := canvas.New(30, 101, color.RGBA{255, 255, 255, 255})
	Paint(c, c.Bounds(), s)

	for y := 0; y < 101; y++ {
		want := s.At(y, 101)
		assert.Equal(t, want, c.At(0, y))
		assert.Equal(t, want, c.At(29, y))
	}
	assert.Equal(t, uint8(50), c.At(15, 50).G)
}

func TestPaintHorizontalSubRect(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	s := Spec{Axis: Horizontal, Start: color.RGBA{27, 125, 50, 255}, End: color.RGBA{46, 125, 72, 255}}
	c := canvas.New(100, 20, white)
	r := image.Rect(10, 5, 60, 15)
	Paint(c, r, s)

	assert.Equal(t, s.Start, c.At(10, 5))
	assert.Equal(t, s.At(49, 50), c.At(59, 14))
	assert.Equal(t, white, c.At(9, 5))
	assert.Equal(t, white, c.At(60, 5))
	assert.Equal(t, white, c.At(30, 4))
	assert.Equal(t, white, c.At(30, 15))
	assert.Equal(t, 50, s.Length(r))
}

func TestPaintEmptyRect(t *testing.T) {
	c := canvas.New(4, 4, color.RGBA{A: 255})
	assert.NotPanics(t, func() { Paint(c, image.Rectangle{}, Solid(color.RGBA{255, 0, 0, 255})) })
	assert.Equal(t, color.RGBA{A: 255}, c.At(0, 0))
}
