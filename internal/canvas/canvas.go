// Package canvas defines the immediate-mode drawing surface the instruments
// render onto.
//
// The surface has its origin top-left with y growing downwards. Rotations are
// in degrees and clockwise-positive on screen. Translations and rotations
// compose into a current transform, and clipping is a rectangular mask that
// is scoped by Save/Restore.
package canvas

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is implemented by every rendering backend.
type Canvas interface {
	// Save pushes the current transform and clip.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()

	Translate(dx, dy float64)
	// Rotate rotates the frame about its origin.
	Rotate(deg float64)
	// RotateAbout rotates the frame about (px, py).
	RotateAbout(deg, px, py float64)
	// ClipRect intersects the clip with r, expressed in the current frame.
	ClipRect(r Rect)

	DrawLine(x0, y0, x1, y1 float64, p *Paint)
	DrawRect(r Rect, p *Paint)
	DrawCircle(cx, cy, radius float64, p *Paint)
	// DrawArc draws the arc of the oval inscribed in r, starting at startDeg
	// (0 = 3 o'clock) and sweeping clockwise by sweepDeg.
	DrawArc(r Rect, startDeg, sweepDeg float64, p *Paint)
	DrawPath(path *gg.Path, p *Paint)
	// DrawText draws s with its baseline at y, anchored at x according to
	// p.Align.
	DrawText(s string, x, y float64, p *Paint)
	MeasureText(s string, p *Paint) (w, h float64)
}

// Style selects whether a closed shape is filled or outlined. Lines are
// always stroked.
type Style int

const (
	Fill Style = iota
	Stroke
)

// Align is the horizontal text anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Paint carries the per-draw style.
type Paint struct {
	Color       color.NRGBA
	Style       Style
	StrokeWidth float64
	TextSize    float64
	Align       Align
	AntiAlias   bool
}

// LineWidth is the effective stroke width. A zero width is a hairline.
func (p *Paint) LineWidth() float64 {
	if p.StrokeWidth <= 0 {
		return 1
	}
	return p.StrokeWidth
}

// Rect is an axis-aligned rectangle in edge form.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R returns the rectangle with the given edges.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (r Rect) Width() float64   { return r.Right - r.Left }
func (r Rect) Height() float64  { return r.Bottom - r.Top }
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Bounds returns the device-space bounding box of r under m.
func (r Rect) Bounds(m gg.Matrix) Rect {
	pts := [4]gg.Point{
		m.TransformPoint(gg.Pt(r.Left, r.Top)),
		m.TransformPoint(gg.Pt(r.Right, r.Top)),
		m.TransformPoint(gg.Pt(r.Right, r.Bottom)),
		m.TransformPoint(gg.Pt(r.Left, r.Bottom)),
	}
	out := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		out.Left = min(out.Left, p.X)
		out.Top = min(out.Top, p.Y)
		out.Right = max(out.Right, p.X)
		out.Bottom = max(out.Bottom, p.Y)
	}
	return out
}
