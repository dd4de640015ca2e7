// Package ggcanvas renders instruments offscreen onto a gg context.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"elrs-hud/internal/canvas"
)

// Canvas implements canvas.Canvas over a *gg.Context. gg keeps the transform
// and clip; state mirrors them so arc resolution can follow the current
// scale.
type Canvas struct {
	dc     *gg.Context
	state  canvas.StateStack
	source *text.FontSource
	faces  map[float64]text.Face
	depth  int
}

// New creates a w x h canvas with the Go regular font for text.
func New(w, h int) (*Canvas, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	c := &Canvas{
		dc:     gg.NewContext(w, h),
		source: source,
		faces:  make(map[float64]text.Face),
	}
	c.state.Reset(w, h)
	return c, nil
}

// Close releases the font source and the context.
func (c *Canvas) Close() error {
	if err := c.source.Close(); err != nil {
		return err
	}
	return c.dc.Close()
}

// Clear fills the whole surface with col, ignoring transform and clip.
func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *Canvas) Context() *gg.Context { return c.dc }

// Image returns a copy of the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) Save() {
	c.dc.Push()
	c.state.Save()
	c.depth++
}

func (c *Canvas) Restore() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.state.Restore()
	c.depth--
}

func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
	c.state.Translate(dx, dy)
}

func (c *Canvas) Rotate(deg float64) {
	c.dc.Rotate(canvas.Radians(deg))
	c.state.Rotate(deg)
}

func (c *Canvas) RotateAbout(deg, px, py float64) {
	c.dc.RotateAbout(canvas.Radians(deg), px, py)
	c.state.RotateAbout(deg, px, py)
}

func (c *Canvas) ClipRect(r canvas.Rect) {
	c.dc.ClipRect(r.Left, r.Top, r.Width(), r.Height())
	c.state.ClipRect(r)
}

// apply sets the colour and pen of p and paints the current path.
func (c *Canvas) apply(p *canvas.Paint, stroke bool) {
	dc := c.dc
	dc.SetColor(p.Color)
	if !stroke {
		_ = dc.Fill()
		return
	}
	dc.SetLineWidth(p.LineWidth())
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinMiter)
	_ = dc.Stroke()
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p *canvas.Paint) {
	c.dc.DrawLine(x0, y0, x1, y1)
	c.apply(p, true)
}

func (c *Canvas) DrawRect(r canvas.Rect, p *canvas.Paint) {
	c.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	c.apply(p, p.Style == canvas.Stroke)
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, p *canvas.Paint) {
	c.dc.DrawCircle(cx, cy, radius)
	c.apply(p, p.Style == canvas.Stroke)
}

// DrawArc flattens the arc itself; gg arcs are circular only.
func (c *Canvas) DrawArc(r canvas.Rect, startDeg, sweepDeg float64, p *canvas.Paint) {
	radius := max(r.Width(), r.Height()) / 2 * c.state.Scale()
	pts := canvas.ArcPoints(r, startDeg, sweepDeg, canvas.ArcSegments(radius, sweepDeg))
	dc := c.dc
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
	stroke := p.Style == canvas.Stroke
	if !stroke {
		dc.ClosePath()
	}
	c.apply(p, stroke)
}

func (c *Canvas) DrawPath(path *gg.Path, p *canvas.Paint) {
	dc := c.dc
	path.Iterate(func(verb gg.PathVerb, v []float64) {
		switch verb {
		case gg.MoveTo:
			dc.MoveTo(v[0], v[1])
		case gg.LineTo:
			dc.LineTo(v[0], v[1])
		case gg.QuadTo:
			dc.QuadraticTo(v[0], v[1], v[2], v[3])
		case gg.CubicTo:
			dc.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		case gg.Close:
			dc.ClosePath()
		}
	})
	c.apply(p, p.Style == canvas.Stroke)
}

func (c *Canvas) face(size float64) text.Face {
	f, ok := c.faces[size]
	if !ok {
		f = c.source.Face(size)
		c.faces[size] = f
	}
	return f
}

func (c *Canvas) DrawText(s string, x, y float64, p *canvas.Paint) {
	dc := c.dc
	dc.SetFont(c.face(p.TextSize))
	dc.SetColor(p.Color)
	w, _ := dc.MeasureString(s)
	switch p.Align {
	case canvas.AlignCenter:
		x -= w / 2
	case canvas.AlignRight:
		x -= w
	}
	dc.DrawString(s, x, y)
}

func (c *Canvas) MeasureText(s string, p *canvas.Paint) (w, h float64) {
	c.dc.SetFont(c.face(p.TextSize))
	return c.dc.MeasureString(s)
}
