// Package instrument implements the flight instruments: the full head-up
// display and the simple pitch/roll, heading and scroller gauges.
//
// Widgets are not safe for concurrent use. The host sizes a widget with
// SetSize, feeds it values through setters and calls Draw whenever it
// reports itself dirty. Setters never draw; they mark the widget dirty and
// call the invalidator installed with SetInvalidator.
package instrument

import (
	"elrs-hud/internal/canvas"
	"elrs-hud/internal/style"
)

// Widget is the host-facing side of every instrument.
type Widget interface {
	// SetSize recomputes the layout for a w x h surface.
	SetSize(w, h int)
	// Draw renders the current state. It is a no-op while either dimension
	// is zero or negative.
	Draw(c canvas.Canvas)
	// Dirty reports whether state changed since the last Draw.
	Dirty() bool
	// SetInvalidator installs the hook called on every change.
	SetInvalidator(fn func())
}

// base carries the size and dirty-state bookkeeping shared by all widgets.
type base struct {
	width, height int
	dirty         bool
	invalidate    func()
}

func (b *base) Dirty() bool { return b.dirty }

func (b *base) SetInvalidator(fn func()) { b.invalidate = fn }

// Size returns the last size set.
func (b *base) Size() (w, h int) { return b.width, b.height }

func (b *base) resize(w, h int) {
	b.width, b.height = w, h
}

func (b *base) markDirty() {
	b.dirty = true
	if b.invalidate != nil {
		b.invalidate()
	}
}

// beginDraw clears the dirty flag and reports whether there is anything to
// draw on.
func (b *base) beginDraw() bool {
	b.dirty = false
	return b.width > 0 && b.height > 0
}

func fillPaint(c style.Color) canvas.Paint {
	return canvas.Paint{Color: c.NRGBA(), Style: canvas.Fill, AntiAlias: true}
}

func strokePaint(c style.Color, width float64) canvas.Paint {
	return canvas.Paint{Color: c.NRGBA(), Style: canvas.Stroke, StrokeWidth: width, AntiAlias: true}
}

func textPaint(c style.Color, size float64, align canvas.Align) canvas.Paint {
	return canvas.Paint{Color: c.NRGBA(), Style: canvas.Fill, TextSize: size, Align: align, AntiAlias: true}
}
