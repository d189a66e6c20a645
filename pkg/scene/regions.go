// regions.go - Layout regions shared by the phone screenshots.
package scene

import (
	"fmt"
	"image"

	"github.com/xob0t/storeshots/pkg/canvas"
	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/icon"
	"github.com/xob0t/storeshots/pkg/layout"
	"github.com/xob0t/storeshots/pkg/palette"
)

// Header is a screen title with an optional subtitle below it.
type Header struct {
	X, Y     int
	Title    string
	Size     float64
	Subtitle string
}

func (Header) Kind() string { return "header" }

func (h Header) Render(f *Frame) {
	size := h.Size
	if size <= 0 {
		size = 32
	}
	f.Text(h.X, h.Y, h.Title, fonts.Bold, size, palette.Text)
	if h.Subtitle != "" {
		f.Text(h.X, h.Y+f.TextHeight(fonts.Bold, size), h.Subtitle, fonts.Regular, 20, palette.AccentLight)
	}
}

// Label is a single run of text, optionally centred on X.
type Label struct {
	X, Y   int
	Text   string
	Weight fonts.Weight
	Size   float64
	Color  palette.Name
	Center bool
}

func (Label) Kind() string { return "label" }

func (l Label) Render(f *Frame) {
	if l.Center {
		f.TextCentered(l.X, l.Y, l.Text, l.Weight, l.Size, l.Color)
		return
	}
	f.Text(l.X, l.Y, l.Text, l.Weight, l.Size, l.Color)
}

// SearchBar is a rounded search field with a magnifier and placeholder.
type SearchBar struct {
	Rect        image.Rectangle
	Placeholder string
}

func (SearchBar) Kind() string { return "search-bar" }

func (s SearchBar) Render(f *Frame) {
	r := s.Rect
	f.Canvas.RoundedRectangle(r, 10, canvas.FilledOutlined(f.Color(palette.Surface), f.Color(palette.Accent), 1))
	g := r.Dy() * 6 / 10
	gy := r.Min.Y + (r.Dy()-g)/2
	icon.GlyphSearch.Draw(f.Canvas, image.Rect(r.Min.X+20, gy, r.Min.X+20+g, gy+g), f.Color(palette.AccentLight), f.Color(palette.Surface))
	f.Text(r.Min.X+30+g, r.Min.Y+(r.Dy()-f.TextHeight(fonts.Regular, 18))/2, s.Placeholder, fonts.Regular, 18, palette.AccentLight)
}

// ChatList is the conversation list of the home screen.
type ChatList struct {
	List layout.List
	Rows []ChatRow
}

func (ChatList) Kind() string { return "chat-list" }

// Overflow reports how many rows fall past the bottom of a canvas of the given height.
func (l ChatList) Overflow(height int) int { return l.List.Overflow(len(l.Rows), height) }

func (l ChatList) Render(f *Frame) {
	for i, row := range l.Rows {
		r := l.List.Slot(i)
		bg := palette.BackgroundDark
		if row.Unread {
			bg = palette.Unread
		}
		f.Canvas.Rectangle(r, canvas.Filled(f.Color(bg)))

		// avatar with initial
		av := image.Rect(r.Min.X+15, r.Min.Y+10, r.Min.X+75, r.Min.Y+70)
		f.Canvas.Ellipse(av, canvas.Filled(f.Color(palette.Accent)))
		initial := layout.Truncate(row.Name, 1)
		f.TextCentered((av.Min.X+av.Max.X)/2, av.Min.Y+(av.Dy()-f.TextHeight(fonts.Bold, 24))/2, initial, fonts.Bold, 24, palette.Text)

		f.Text(r.Min.X+90, r.Min.Y+12, row.Name, fonts.Bold, 20, palette.Text)
		f.Text(r.Min.X+90, r.Min.Y+42, layout.Truncate(row.Preview, PreviewBudget), fonts.Regular, 16, palette.AccentLight)
		f.Text(r.Max.X-80, r.Min.Y+15, row.Time, fonts.Regular, 14, palette.Muted)

		if row.Unread {
			badge := image.Rect(r.Max.X-42, r.Min.Y+38, r.Max.X-14, r.Min.Y+66)
			f.Canvas.Ellipse(badge, canvas.Filled(f.Color(palette.Accent)))
			n := max(row.UnreadCount, 1)
			f.TextCentered((badge.Min.X+badge.Max.X)/2, badge.Min.Y+(badge.Dy()-f.TextHeight(fonts.Bold, 14))/2, fmt.Sprint(n), fonts.Bold, 14, palette.Text)
		}

		f.Canvas.Line(image.Pt(r.Min.X, r.Max.Y), image.Pt(r.Max.X-1, r.Max.Y), f.Color(palette.Surface), 1)
	}
}

// BottomNav is the navigation bar pinned to the bottom of the home screen.
type BottomNav struct {
	Top   int
	Items []NavItem
}

func (BottomNav) Kind() string { return "bottom-nav" }

func (n BottomNav) Render(f *Frame) {
	w, h := f.Canvas.Width(), f.Canvas.Height()
	bg := f.Color(palette.BackgroundDark)
	f.Canvas.Rectangle(image.Rect(0, n.Top, w, h), canvas.Filled(bg))
	if len(n.Items) == 0 {
		return
	}
	const size = 52
	cell := w / len(n.Items)
	y := n.Top + (h-n.Top-size)/2
	for i, item := range n.Items {
		col := palette.AccentLight
		if item.Active {
			col = palette.Accent
		}
		x := i*cell + (cell-size)/2
		item.Glyph.Draw(f.Canvas, image.Rect(x, y, x+size, y+size), f.Color(col), bg)
	}
}

// ChatHeader is the top bar of a conversation: avatar, name, presence, lock.
type ChatHeader struct {
	Top    int
	Name   string
	Status string
}

func (ChatHeader) Kind() string { return "chat-header" }

func (c ChatHeader) Render(f *Frame) {
	w := f.Canvas.Width()
	bar := image.Rect(0, c.Top, w, c.Top+70)
	f.Canvas.Rectangle(bar, canvas.Filled(f.Color(palette.BackgroundDark)))

	av := image.Rect(30, bar.Min.Y+10, 80, bar.Min.Y+60)
	f.Canvas.Ellipse(av, canvas.Filled(f.Color(palette.Accent)))
	f.TextCentered(55, av.Min.Y+(av.Dy()-f.TextHeight(fonts.Bold, 22))/2, layout.Truncate(c.Name, 1), fonts.Bold, 22, palette.Text)

	f.Text(95, bar.Min.Y+8, c.Name, fonts.Bold, 24, palette.Text)
	f.Text(95, bar.Min.Y+42, c.Status, fonts.Regular, 14, palette.AccentLight)

	icon.GlyphLock.Draw(f.Canvas, image.Rect(w-80, bar.Min.Y+15, w-40, bar.Min.Y+55), f.Color(palette.Accent), f.Color(palette.BackgroundDark))
}

// MessageThread lays out a conversation. Incoming bubbles hang from the left
// margin and outgoing ones from the right margin; both use the same rounded
// bubble and differ only in colour.
type MessageThread struct {
	List        layout.List // Left/Right are ignored; margins come from Margin
	Margin      int
	BubbleWidth int
	Rows        []MessageRow
}

func (MessageThread) Kind() string { return "message-thread" }

// Bubble is a placed message.
type Bubble struct {
	Rect image.Rectangle
	Row  MessageRow
}

// Bubbles places every message on a canvas of the given width.
func (m MessageThread) Bubbles(width int) []Bubble {
	out := make([]Bubble, len(m.Rows))
	for i, row := range m.Rows {
		slot := m.List.Slot(i)
		x0 := m.Margin
		if row.Side == Outgoing {
			x0 = width - m.Margin - m.BubbleWidth
		}
		out[i] = Bubble{
			Rect: image.Rect(x0, slot.Min.Y, x0+m.BubbleWidth, slot.Max.Y),
			Row:  row,
		}
	}
	return out
}

// Overflow reports how many messages fall past the bottom of a canvas of the given height.
func (m MessageThread) Overflow(height int) int { return m.List.Overflow(len(m.Rows), height) }

func (m MessageThread) Render(f *Frame) {
	for _, b := range m.Bubbles(f.Canvas.Width()) {
		fill := palette.BubbleIncoming
		if b.Row.Side == Outgoing {
			fill = palette.BubbleOutgoing
		}
		r := b.Rect
		f.Canvas.RoundedRectangle(r, 15, canvas.Filled(f.Color(fill)))
		f.Text(r.Min.X+20, r.Min.Y+10, layout.Truncate(b.Row.Text, MessageBudget), fonts.Regular, 18, palette.Text)
		tw := f.TextWidth(b.Row.Time, fonts.Regular, 12)
		f.Text(r.Max.X-tw-14, r.Max.Y-20, b.Row.Time, fonts.Regular, 12, palette.AccentLight)
	}
}

// InputBar is the message composer at the bottom of a conversation.
type InputBar struct {
	Top         int
	Placeholder string
}

func (InputBar) Kind() string { return "input-bar" }

func (in InputBar) Render(f *Frame) {
	w, h := f.Canvas.Width(), f.Canvas.Height()
	f.Canvas.Rectangle(image.Rect(0, in.Top, w, h), canvas.Filled(f.Color(palette.BackgroundDark)))

	field := image.Rect(20, in.Top+15, w-130, h-15)
	f.Canvas.RoundedRectangle(field, 25, canvas.Filled(f.Color(palette.Surface)))
	f.Text(field.Min.X+30, field.Min.Y+(field.Dy()-f.TextHeight(fonts.Regular, 18))/2, in.Placeholder, fonts.Regular, 18, palette.AccentLight)

	send := image.Rect(w-110, in.Top+25, w-30, h-25)
	f.Canvas.Ellipse(send, canvas.Filled(f.Color(palette.Accent)))
	icon.GlyphSend.Draw(f.Canvas, send.Inset(send.Dy()/4), f.Color(palette.Text), f.Color(palette.Accent))
}

// Settings entry kinds.
const (
	kindSectionTitle layout.Kind = "section-title"
	kindSettingsItem layout.Kind = "settings-item"
	kindSectionEnd   layout.Kind = "section-end"
)

// SettingsMetrics is the fixed geometry of the settings screen.
var SettingsMetrics = map[layout.Kind]layout.Metric{
	kindSectionTitle: {Height: 34, Gap: 6},
	kindSettingsItem: {Height: 60, Gap: 10},
	kindSectionEnd:   {Gap: 20},
}

// SettingsList renders titled groups of settings rows.
type SettingsList struct {
	Top, Left, Right int
	Sections         []SettingsSection
}

func (SettingsList) Kind() string { return "settings-list" }

// Slots returns the title rectangle of each section and the rectangles of
// its items, in the order they are drawn.
func (s SettingsList) Slots() (titles []image.Rectangle, items [][]image.Rectangle) {
	cur := layout.NewCursor(s.Top, s.Left, s.Right, SettingsMetrics)
	for _, sec := range s.Sections {
		titles = append(titles, cur.Next(kindSectionTitle))
		rows := make([]image.Rectangle, len(sec.Items))
		for i := range sec.Items {
			rows[i] = cur.Next(kindSettingsItem)
		}
		items = append(items, rows)
		cur.Next(kindSectionEnd)
	}
	return titles, items
}

// Overflow reports how many settings rows fall past the bottom of a canvas of the given height.
func (s SettingsList) Overflow(height int) int {
	_, items := s.Slots()
	over := 0
	for _, sec := range items {
		for _, r := range sec {
			if r.Max.Y > height {
				over++
			}
		}
	}
	return over
}

func (s SettingsList) Render(f *Frame) {
	titles, items := s.Slots()
	for i, sec := range s.Sections {
		t := titles[i]
		text := t.Min.X
		if sec.Icon != icon.GlyphNone {
			g := t.Dy() - 6
			sec.Icon.Draw(f.Canvas, image.Rect(t.Min.X, t.Min.Y+3, t.Min.X+g, t.Min.Y+3+g), f.Color(palette.Accent), f.Color(palette.Accent))
			text += g + 10
		}
		f.Text(text, t.Min.Y+(t.Dy()-f.TextHeight(fonts.Bold, 18))/2, sec.Title, fonts.Bold, 18, palette.Accent)

		for j, item := range sec.Items {
			r := items[i][j]
			f.Canvas.Rectangle(r, canvas.Filled(f.Color(palette.Surface)))
			f.Text(r.Min.X+20, r.Min.Y+(r.Dy()-f.TextHeight(fonts.Regular, 18))/2, item.Label, fonts.Regular, 18, palette.Text)
			f.Text(r.Max.X-40, r.Min.Y+(r.Dy()-f.TextHeight(fonts.Bold, 28))/2, "›", fonts.Bold, 28, palette.AccentLight)
		}
	}
}

// FeatureList is the list of protections on the privacy screen.
type FeatureList struct {
	List layout.List
	Rows []FeatureRow
}

func (FeatureList) Kind() string { return "feature-list" }

// Overflow reports how many rows fall past the bottom of a canvas of the given height.
func (l FeatureList) Overflow(height int) int { return l.List.Overflow(len(l.Rows), height) }

func (l FeatureList) Render(f *Frame) {
	bg := f.Color(palette.BackgroundDark)
	for i, row := range l.Rows {
		r := l.List.Slot(i)
		f.Canvas.Rectangle(r, canvas.Filled(bg))
		g := r.Dy() / 2
		gy := r.Min.Y + (r.Dy()-g)/2
		row.Icon.Draw(f.Canvas, image.Rect(r.Min.X+20, gy, r.Min.X+20+g, gy+g), f.Color(palette.Accent), bg)
		f.Text(r.Min.X+40+g, r.Min.Y+12, row.Title, fonts.Bold, 18, palette.Text)
		f.Text(r.Min.X+40+g, r.Min.Y+40, layout.Truncate(row.Description, DescriptionBudget), fonts.Regular, 14, palette.AccentLight)
	}
}

// InfoList is the label/value table of the about screen.
type InfoList struct {
	List   layout.List
	ValueX int
	Rows   []InfoRow
}

func (InfoList) Kind() string { return "info-list" }

// Overflow reports how many rows fall past the bottom of a canvas of the given height.
func (l InfoList) Overflow(height int) int { return l.List.Overflow(len(l.Rows), height) }

func (l InfoList) Render(f *Frame) {
	for i, row := range l.Rows {
		r := l.List.Slot(i)
		f.Text(r.Min.X, r.Min.Y, row.Label, fonts.Bold, 18, palette.Accent)
		f.Text(l.ValueX, r.Min.Y, row.Value, fonts.Regular, 18, palette.Text)
	}
}

// LinkCard is a framed box with two centred lines, used for the repository link.
type LinkCard struct {
	Rect  image.Rectangle
	Title string
	Path  string
}

func (LinkCard) Kind() string { return "link-card" }

func (l LinkCard) Render(f *Frame) {
	r := l.Rect
	f.Canvas.Rectangle(r, canvas.FilledOutlined(f.Color(palette.Surface), f.Color(palette.Accent), 1))
	cx := (r.Min.X + r.Max.X) / 2
	f.TextCentered(cx, r.Min.Y+10, l.Title, fonts.Regular, 20, palette.Text)
	f.TextCentered(cx, r.Min.Y+38, l.Path, fonts.Regular, 18, palette.AccentLight)
}

// ButtonRow places equally wide buttons side by side between Left and Right.
type ButtonRow struct {
	Top, Height int
	Left, Right int
	Gap         int
	Buttons     []Button
}

func (ButtonRow) Kind() string { return "button-row" }

// Rects returns the rectangle of every button.
func (b ButtonRow) Rects() []image.Rectangle {
	n := len(b.Buttons)
	if n == 0 {
		return nil
	}
	w := (b.Right - b.Left - b.Gap*(n-1)) / n
	out := make([]image.Rectangle, n)
	for i := range out {
		x := b.Left + i*(w+b.Gap)
		out[i] = image.Rect(x, b.Top, x+w, b.Top+b.Height)
	}
	return out
}

func (b ButtonRow) Render(f *Frame) {
	for i, r := range b.Rects() {
		btn := b.Buttons[i]
		style := canvas.FilledOutlined(f.Color(palette.Surface), f.Color(palette.Accent), 1)
		if btn.Primary {
			style = canvas.Filled(f.Color(palette.Accent))
		}
		f.Canvas.RoundedRectangle(r, 10, style)
		f.TextCentered((r.Min.X+r.Max.X)/2, r.Min.Y+(r.Dy()-f.TextHeight(fonts.Bold, 18))/2, btn.Label, fonts.Bold, 18, palette.Text)
	}
}

// Footer is a centred sign-off line with a glyph between two text runs.
type Footer struct {
	Y      int
	Before string
	Glyph  icon.Glyph
	After  string
}

func (Footer) Kind() string { return "footer" }

func (ft Footer) Render(f *Frame) {
	const size = 16
	g := f.TextHeight(fonts.Regular, size)
	wb := f.TextWidth(ft.Before, fonts.Regular, size)
	wa := f.TextWidth(ft.After, fonts.Regular, size)
	total := wb + g + wa + 16
	x := (f.Canvas.Width() - total) / 2

	f.Text(x, ft.Y, ft.Before, fonts.Regular, size, palette.Muted)
	x += wb + 8
	ft.Glyph.Draw(f.Canvas, image.Rect(x, ft.Y, x+g, ft.Y+g), f.Color(palette.Muted), f.Color(palette.Muted))
	x += g + 8
	f.Text(x, ft.Y, ft.After, fonts.Regular, size, palette.Muted)
}
