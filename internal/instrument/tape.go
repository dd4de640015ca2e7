package instrument

import (
	"strconv"

	"github.com/gogpu/gg"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/style"
)

// tape renders a vertically scrolling scale with a pointer read-out.
type tape struct {
	m         layout.Tape
	value     float64
	target    float64
	hasTarget bool

	background *canvas.Paint // optional box fill
	outline    *canvas.Paint
	scale      *canvas.Paint
	label      *canvas.Paint
	arrowFill  *canvas.Paint
	arrowPen   *canvas.Paint
	targetPen  *canvas.Paint

	path *gg.Path
}

// draw renders the tape. Everything is clipped to the tape's box and the clip
// is released before returning.
func (t *tape) draw(c canvas.Canvas) {
	box := t.m.Box
	if t.background != nil {
		c.DrawRect(box, t.background)
	}
	c.DrawRect(box, t.outline)

	c.Save()
	defer c.Restore()
	c.ClipRect(box)

	lo, hi := t.m.Visible(t.value)

	// Target marker, or a flush edge line when off-scale. The window is the
	// continuous span the box shows, not the whole ticks inside it.
	targetY, targetShown := 0.0, false
	if t.hasTarget {
		switch {
		case t.target < t.value-t.m.Range/2:
			c.DrawLine(box.Left, box.Bottom, box.Right, box.Bottom, t.targetPen)
		case t.target > t.value+t.m.Range/2:
			c.DrawLine(box.Left, box.Top, box.Right, box.Top, t.targetPen)
		default:
			targetY, targetShown = t.m.Y(t.value, t.target), true
			c.DrawLine(box.Left, targetY, box.Right, targetY, t.targetPen)
		}
	}

	for a := lo; a <= hi; a++ {
		if a%5 != 0 {
			continue
		}
		y := t.m.Y(t.value, float64(a))
		c.DrawLine(t.m.TicStart, y, t.m.TicEnd, y, t.scale)
		c.DrawText(strconv.Itoa(a), t.m.TextX, y+t.m.TextOffset, t.label)
	}

	// Pointer with the current value.
	readout := strconv.Itoa(int(t.value))
	cy := t.m.CenterY
	p := t.path
	p.Clear()
	p.MoveTo(t.m.StickX, t.m.ArrowTop)
	p.LineTo(t.m.BaseX, t.m.ArrowTop)
	p.LineTo(t.m.PointX, cy)
	p.LineTo(t.m.BaseX, t.m.ArrowBottom)
	p.LineTo(t.m.StickX, t.m.ArrowBottom)
	c.DrawPath(p, t.arrowFill)

	// Keep the target marker visible beside the read-out.
	if targetShown && targetY > t.m.ArrowTop && targetY < t.m.ArrowBottom {
		tw, _ := c.MeasureText(readout, t.label)
		gap := tw + t.label.TextSize/2
		if t.m.Handedness == style.Left {
			c.DrawLine(box.Left, targetY, t.m.TextX-gap, targetY, t.targetPen)
		} else {
			c.DrawLine(t.m.TextX+gap, targetY, box.Right, targetY, t.targetPen)
		}
	}

	c.DrawPath(p, t.arrowPen)
	c.DrawText(readout, t.m.TextX, cy+t.m.TextOffset, t.label)
}

// vsi renders the vertical speed bar: a filled bar from the centre to the
// current rate over a fixed tick ladder.
type vsi struct {
	m     layout.VSI
	value float64

	background *canvas.Paint
	outline    *canvas.Paint
	fill       *canvas.Paint
	thin       *canvas.Paint
	thick      *canvas.Paint
	zero       *canvas.Paint
	border     float64

	path *gg.Path
}

func (v *vsi) draw(c canvas.Canvas) {
	s := v.m.Strip
	inner := s.Right
	outer := s.Left
	w := v.m.BarWidth
	cy := s.CenterY()

	// Bevelled box.
	p := v.path
	p.Clear()
	p.MoveTo(inner, s.Top)
	p.LineTo(outer, s.Top+w)
	p.LineTo(outer, s.Bottom-w)
	p.LineTo(inner, s.Bottom)
	c.DrawPath(p, v.background)
	c.DrawPath(p, v.outline)

	c.Save()
	c.ClipRect(s)

	end := cy - v.value*v.m.LineSpace
	p.Clear()
	p.MoveTo(inner, cy)
	p.LineTo(outer, cy)
	p.LineTo(outer, end)
	p.LineTo(inner, end)
	p.Close()
	c.DrawPath(p, v.fill)
	c.DrawLine(outer, end, inner, end, v.thin)

	for a := 1; a < layout.VSIRange; a++ {
		y := s.Top + v.m.LineSpace*float64(a)
		c.DrawLine(outer, y, outer+w/3, y, v.thick)
	}
	c.Restore()

	// Zero marker.
	c.DrawLine(inner+v.border, cy, outer-v.border, cy, v.zero)
}
