package icon

import (
	"image"
	"image/color"

	"github.com/xob0t/storeshots/pkg/canvas"
)

// Lock is a padlock filling Rect.
type Lock struct {
	Rect    image.Rectangle
	Body    color.RGBA
	Outline color.RGBA
	Hole    color.RGBA

	// OutlineWidth and ShackleWidth default to a size proportional to Rect.
	OutlineWidth float64
	ShackleWidth float64
}

// LockParts is the geometry of a Lock, in drawing order.
type LockParts struct {
	Body    image.Rectangle
	Shackle image.Rectangle // bounding box of the full shackle ellipse
	Keyhole image.Rectangle
	Stem    image.Rectangle
}

// Parts computes where each piece of the lock goes. The body takes the lower
// 55% of Rect; the shackle is the upper half of an ellipse resting on the
// body's top edge and rising through the upper 35%.
func (l Lock) Parts() LockParts {
	r := l.Rect.Canon()
	w, h := r.Dx(), r.Dy()
	cx := r.Min.X + w/2

	bodyTop := r.Min.Y + h*45/100
	rx := w * 35 / 100
	ry := h * 35 / 100

	d := max(w*18/100, 4)
	holeTop := bodyTop + (r.Max.Y-bodyTop)*30/100
	stemW := max(d/2, 2)

	return LockParts{
		Body:    image.Rect(r.Min.X, bodyTop, r.Max.X, r.Max.Y),
		Shackle: image.Rect(cx-rx, bodyTop-ry, cx+rx, bodyTop+ry),
		Keyhole: image.Rect(cx-d/2, holeTop, cx-d/2+d, holeTop+d),
		Stem:    image.Rect(cx-stemW/2, holeTop+d/2, cx-stemW/2+stemW, holeTop+d+d*3/2),
	}
}

// Draw paints body, shackle, keyhole and stem, in that order.
func (l Lock) Draw(c *canvas.Canvas) {
	p := l.Parts()
	w := float64(l.Rect.Dx())

	ow := l.OutlineWidth
	if ow == 0 {
		ow = max(w/28, 1)
	}
	sw := l.ShackleWidth
	if sw == 0 {
		sw = max(w/9, 2)
	}

	c.Rectangle(p.Body, canvas.FilledOutlined(l.Body, l.Outline, ow))
	c.Arc(p.Shackle, 180, 0, l.Body, sw)
	c.Ellipse(p.Keyhole, canvas.Filled(l.Hole))
	c.Rectangle(p.Stem, canvas.Filled(l.Hole))
}
