package scene

import (
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xob0t/storeshots/pkg/layout"
	"github.com/xob0t/storeshots/pkg/palette"
)

func mustFind(t *testing.T, name string) Scene {
	t.Helper()
	s, ok := Find(name)
	require.True(t, ok, "scene %q missing from catalog", name)
	return s
}

func TestCatalog(t *testing.T) {
	want := map[string][2]int{
		"icon":     {512, 512},
		"feature":  {1024, 500},
		"home":     {1080, 1920},
		"chat":     {1080, 1920},
		"settings": {1080, 1920},
		"privacy":  {1080, 1920},
		"about":    {1080, 1920},
	}
	cat := Catalog()
	require.Len(t, cat, len(want))
	assert.Equal(t, []string{"icon", "feature", "home", "chat", "settings", "privacy", "about"}, Names())

	files := map[string]bool{}
	for _, s := range cat {
		size, ok := want[s.Name]
		require.True(t, ok, s.Name)
		assert.Equal(t, size[0], s.Width, s.Name)
		assert.Equal(t, size[1], s.Height, s.Name)
		assert.False(t, files[s.File], "duplicate file %s", s.File)
		files[s.File] = true
		assert.Equal(t, s.Height == PhoneHeight, s.Phone, s.Name)
	}

	_, ok := Find("nope")
	assert.False(t, ok)
}

func TestCatalogFitsCanvas(t *testing.T) {
	for _, s := range Catalog() {
		assert.Empty(t, Validate(s), s.Name)
	}
}

func TestValidateReportsOverflow(t *testing.T) {
	rows := make([]ChatRow, 30)
	s := Scene{
		Name: "long", File: "long.png", Width: 1080, Height: 1920,
		Regions: []Region{
			Header{Title: "x"},
			ChatList{List: layout.List{Origin: 200, Left: 20, Right: 1060, Height: 80, Gap: 5}, Rows: rows},
		},
	}
	w := Validate(s)
	require.Len(t, w, 1)
	// 200 + i*85 + 80 > 1920 for i >= 20
	assert.Contains(t, w[0], "chat-list")
	assert.Contains(t, w[0], "10 row(s)")

	assert.Len(t, Validate(Scene{Name: "empty"}), 2)
}

func TestDescribe(t *testing.T) {
	out := Describe(Catalog())
	assert.True(t, strings.HasPrefix(out, "7 scene(s):"))
	for _, n := range Names() {
		assert.Contains(t, out, n)
	}
	assert.Contains(t, out, "status-bar, chat-header, message-thread, input-bar")
}

func TestDescribePalette(t *testing.T) {
	out := DescribePalette(palette.Default)
	assert.True(t, strings.HasPrefix(out, fmt.Sprintf("%d colour(s):", len(palette.Default))))
	assert.Contains(t, out, "accent-light")
	assert.Contains(t, out, "#81C784")
	// sorted: background-dark comes before text
	assert.Less(t, strings.Index(out, "background-dark"), strings.Index(out, "  text "))
}

func TestShieldMarkLockIsCentred(t *testing.T) {
	s := mustFind(t, "icon")
	mark, ok := s.Regions[0].(ShieldMark)
	require.True(t, ok)
	assert.Equal(t, image.Rect(196, 140, 316, 380), mark.LockRect())

	mark.LockSize = image.Point{}
	assert.True(t, mark.LockRect().Empty())
}

func TestIconPixels(t *testing.T) {
	s := mustFind(t, "icon")
	cv := Compose(s, nil)
	require.Equal(t, 512, cv.Width())
	require.Equal(t, 512, cv.Height())

	bg := palette.Default.Color(palette.Surface)
	for _, p := range []image.Point{{0, 0}, {511, 0}, {0, 511}, {511, 511}} {
		assert.Equal(t, bg, cv.At(p.X, p.Y), "corner %v", p)
	}
	assert.Equal(t, palette.Default.Color(palette.AccentLight), cv.At(256, 256))
}

func TestBubblesHugMargins(t *testing.T) {
	rows := []MessageRow{
		{Side: Incoming, Text: "a"},
		{Side: Outgoing, Text: "b"},
		{Side: Incoming, Text: "c"},
		{Side: Outgoing, Text: "d"},
		{Side: Incoming, Text: "e"},
		{Side: Outgoing, Text: "f"},
	}
	thread := MessageThread{
		List:        layout.List{Origin: 140, Height: 55, Gap: 15},
		Margin:      30,
		BubbleWidth: 490,
		Rows:        rows,
	}

	check := func(bs []Bubble) {
		for i, b := range bs {
			assert.Equal(t, 140+i*70, b.Rect.Min.Y, "top of %d", i)
			assert.Equal(t, 490, b.Rect.Dx())
			if b.Row.Side == Outgoing {
				assert.Equal(t, 1080-30, b.Rect.Max.X, "outgoing %d", i)
			} else {
				assert.Equal(t, 30, b.Rect.Min.X, "incoming %d", i)
			}
		}
	}
	check(thread.Bubbles(1080))

	// Order of sides does not matter.
	reversed := make([]MessageRow, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}
	thread.Rows = reversed
	check(thread.Bubbles(1080))
}

func TestChatBubbleFill(t *testing.T) {
	s := mustFind(t, "chat")
	cv := Compose(s, nil)

	var thread MessageThread
	for _, r := range s.Regions {
		if m, ok := r.(MessageThread); ok {
			thread = m
		}
	}
	require.NotEmpty(t, thread.Rows)

	for _, b := range thread.Bubbles(cv.Width()) {
		want := palette.Default.Color(palette.BubbleIncoming)
		if b.Row.Side == Outgoing {
			want = palette.Default.Color(palette.BubbleOutgoing)
		}
		assert.Equal(t, want, cv.At(b.Rect.Min.X+20, b.Rect.Max.Y-5), "bubble %q", b.Row.Text)
	}
}

func TestHomeRows(t *testing.T) {
	s := mustFind(t, "home")
	cv := Compose(s, nil)

	list := layout.List{Origin: 200, Left: 20, Right: 1060, Height: 80, Gap: 5}
	unread := list.Slot(0)
	read := list.Slot(2)
	assert.Equal(t, palette.Default.Color(palette.Unread), cv.At(1000, unread.Min.Y+3))
	assert.Equal(t, palette.Default.Color(palette.BackgroundDark), cv.At(1000, read.Min.Y+3))
}

func TestSettingsSlots(t *testing.T) {
	l := SettingsList{
		Top: 130, Left: 20, Right: 1060,
		Sections: []SettingsSection{
			{Title: "a", Items: []SettingsItem{{Label: "1"}, {Label: "2"}}},
			{Title: "b", Items: []SettingsItem{{Label: "3"}}},
		},
	}
	titles, items := l.Slots()
	require.Len(t, titles, 2)
	require.Len(t, items, 2)

	assert.Equal(t, image.Rect(20, 130, 1060, 164), titles[0])
	assert.Equal(t, 170, items[0][0].Min.Y)
	assert.Equal(t, 240, items[0][1].Min.Y)
	// 240 + 60 + 10 + 20 section gap
	assert.Equal(t, 330, titles[1].Min.Y)
	assert.Equal(t, 370, items[1][0].Min.Y)

	assert.Zero(t, l.Overflow(1920))
	assert.Equal(t, 1, l.Overflow(400))
}

func TestButtonRowRects(t *testing.T) {
	b := ButtonRow{Top: 1000, Height: 70, Left: 100, Right: 980, Gap: 40,
		Buttons: []Button{{Label: "a"}, {Label: "b"}}}
	r := b.Rects()
	require.Len(t, r, 2)
	assert.Equal(t, image.Rect(100, 1000, 520, 1070), r[0])
	assert.Equal(t, image.Rect(560, 1000, 980, 1070), r[1])
	assert.Nil(t, ButtonRow{}.Rects())
}

func TestComposeEveryScene(t *testing.T) {
	for _, s := range Catalog() {
		t.Run(s.Name, func(t *testing.T) {
			cv := Compose(s, nil)
			assert.Equal(t, s.Width, cv.Width())
			assert.Equal(t, s.Height, cv.Height())
			assert.Equal(t, s.Background.Start, cv.At(0, 0), "background shows at the origin")
		})
	}
}
