// Package layout places list entries with a running vertical cursor.
//
// Every entry kind has a fixed height and a fixed gap after it, so a list of
// n entries of one kind occupies exactly n*(height+gap) pixels and entry i
// starts at origin + i*stride. Nothing is clipped or paginated: entries that
// run past the canvas are still placed, and Overflow reports them.
package layout

import "image"

// List lays out entries of one kind.
type List struct {
	Origin int // top of the first entry
	Left   int
	Right  int
	Height int // entry height
	Gap    int // space after each entry
}

// Stride is the distance between the tops of consecutive entries.
func (l List) Stride() int { return l.Height + l.Gap }

// Slot returns the rectangle of entry i.
func (l List) Slot(i int) image.Rectangle {
	top := l.Origin + i*l.Stride()
	return image.Rect(l.Left, top, l.Right, top+l.Height)
}

// Extent is the vertical space taken by n entries, gaps included.
func (l List) Extent(n int) int { return max(n, 0) * l.Stride() }

// Overflow counts how many of n entries end below limit.
func (l List) Overflow(n, limit int) int {
	if n <= 0 || l.Origin+l.Extent(n)-l.Gap <= limit {
		return 0
	}
	over := 0
	for i := n - 1; i >= 0; i-- {
		if l.Slot(i).Max.Y <= limit {
			break
		}
		over++
	}
	return over
}

// Kind identifies a class of entry for a Cursor.
type Kind string

// Metric is the fixed geometry of one entry kind.
type Metric struct {
	Height int
	Gap    int
}

// Cursor walks down a column placing entries of mixed kinds. It is the same
// rule as List applied per kind.
type Cursor struct {
	Y       int
	Left    int
	Right   int
	Metrics map[Kind]Metric
}

// NewCursor starts a cursor at y.
func NewCursor(y, left, right int, metrics map[Kind]Metric) *Cursor {
	return &Cursor{Y: y, Left: left, Right: right, Metrics: metrics}
}

// Next places an entry of kind k and advances by its height plus gap.
// Unknown kinds take no space.
func (c *Cursor) Next(k Kind) image.Rectangle {
	m := c.Metrics[k]
	r := image.Rect(c.Left, c.Y, c.Right, c.Y+m.Height)
	c.Y += m.Height + m.Gap
	return r
}

// Skip advances the cursor by n pixels.
func (c *Cursor) Skip(n int) { c.Y += n }
