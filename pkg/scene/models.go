// Package scene composes the store listing images from declarative
// descriptions.
//
// A Scene is an ordered list of regions (status bar, header, lists, footer)
// painted over a gradient background. List regions are driven by small data
// tables of row entries and placed with the cursor rule of package layout,
// so no region carries hand-computed per-row coordinates.
package scene

import (
	"github.com/xob0t/storeshots/pkg/gradient"
	"github.com/xob0t/storeshots/pkg/icon"
)

// Scene is one output image plus everything needed to paint it.
type Scene struct {
	Name       string
	File       string // path relative to the output root
	Width      int
	Height     int
	Background gradient.Spec

	// Phone scenes get a status bar before any region.
	Phone bool
	Clock string

	Regions []Region
}

// Region is one layer of a scene. Regions render in order; later ones paint
// over earlier ones.
type Region interface {
	Kind() string
	Render(f *Frame)
}

// ── Row entries ──

// ChatRow is one conversation in the chat list.
type ChatRow struct {
	Name        string
	Preview     string
	Time        string
	Unread      bool
	UnreadCount int
}

// Side is the direction of a message.
type Side int

const (
	Incoming Side = iota
	Outgoing
)

func (s Side) String() string {
	if s == Outgoing {
		return "outgoing"
	}
	return "incoming"
}

// MessageRow is one message bubble in a thread.
type MessageRow struct {
	Side Side
	Text string
	Time string
}

// SettingsItem is one tappable settings row.
type SettingsItem struct {
	Label string
}

// SettingsSection groups items under a title.
type SettingsSection struct {
	Icon  icon.Glyph
	Title string
	Items []SettingsItem
}

// FeatureRow is one entry of the privacy feature list.
type FeatureRow struct {
	Icon        icon.Glyph
	Title       string
	Description string
}

// InfoRow is a label/value pair on the about screen.
type InfoRow struct {
	Label string
	Value string
}

// NavItem is one bottom navigation destination.
type NavItem struct {
	Glyph  icon.Glyph
	Active bool
}

// Button is one entry of a ButtonRow.
type Button struct {
	Label   string
	Primary bool
}

// Text budgets, in characters.
const (
	PreviewBudget     = 50
	MessageBudget     = 40
	DescriptionBudget = 60
)
