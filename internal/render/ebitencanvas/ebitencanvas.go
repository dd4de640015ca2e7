// Package ebitencanvas renders instruments onto an ebiten image.
//
// Geometry is transformed on the CPU, tessellated with ebiten's vector
// package and drawn as triangles onto a sub-image covering the current clip.
package ebitencanvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/render/fontface"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements canvas.Canvas over an *ebiten.Image.
type Canvas struct {
	canvas.StateStack
	dst   *ebiten.Image
	faces *fontface.Cache

	vs []ebiten.Vertex
	is []uint16
}

// New loads the Go regular font. Call Begin before drawing each frame.
func New() (*Canvas, error) {
	faces, err := fontface.New(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ebitencanvas: %w", err)
	}
	return &Canvas{faces: faces}, nil
}

// Begin targets dst and resets the transform and clip to its bounds.
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	b := dst.Bounds()
	c.StateStack.Reset(b.Dx(), b.Dy())
}

// target is the sub-image of the current clip, or nil when nothing is
// visible.
func (c *Canvas) target() *ebiten.Image {
	clip := c.Current().Clip
	r := image.Rect(
		int(math.Floor(clip.Left)), int(math.Floor(clip.Top)),
		int(math.Ceil(clip.Right)), int(math.Ceil(clip.Bottom)),
	)
	if r.Empty() {
		return nil
	}
	return c.dst.SubImage(r).(*ebiten.Image)
}

// devicePath maps pts into device space.
func (c *Canvas) devicePath(pts []gg.Point, closed bool) *vector.Path {
	var path vector.Path
	for i, pt := range pts {
		d := c.Transform(pt.X, pt.Y)
		if i == 0 {
			path.MoveTo(float32(d.X), float32(d.Y))
		} else {
			path.LineTo(float32(d.X), float32(d.Y))
		}
	}
	if closed {
		path.Close()
	}
	return &path
}

func (c *Canvas) render(path *vector.Path, p *canvas.Paint, stroke bool) {
	dst := c.target()
	if dst == nil {
		return
	}
	c.vs, c.is = c.vs[:0], c.is[:0]
	if stroke {
		c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs, c.is, &vector.StrokeOptions{
			Width:      float32(p.LineWidth() * c.Scale()),
			LineCap:    vector.LineCapButt,
			LineJoin:   vector.LineJoinMiter,
			MiterLimit: 10,
		})
	} else {
		c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs, c.is)
	}

	col := p.Color
	r, g, b, a := float32(col.R)/0xff, float32(col.G)/0xff, float32(col.B)/0xff, float32(col.A)/0xff
	for i := range c.vs {
		c.vs[i].SrcX, c.vs[i].SrcY = 1, 1
		c.vs[i].ColorR, c.vs[i].ColorG, c.vs[i].ColorB, c.vs[i].ColorA = r, g, b, a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: p.AntiAlias}
	if !stroke {
		op.FillRule = ebiten.EvenOdd
	}
	dst.DrawTriangles(c.vs, c.is, whiteSubImage, op)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p *canvas.Paint) {
	c.render(c.devicePath([]gg.Point{gg.Pt(x0, y0), gg.Pt(x1, y1)}, false), p, true)
}

func (c *Canvas) DrawRect(r canvas.Rect, p *canvas.Paint) {
	pts := []gg.Point{
		gg.Pt(r.Left, r.Top), gg.Pt(r.Right, r.Top),
		gg.Pt(r.Right, r.Bottom), gg.Pt(r.Left, r.Bottom),
	}
	c.render(c.devicePath(pts, true), p, p.Style == canvas.Stroke)
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, p *canvas.Paint) {
	oval := canvas.R(cx-radius, cy-radius, cx+radius, cy+radius)
	pts := canvas.ArcPoints(oval, 0, 360, canvas.ArcSegments(radius*c.Scale(), 360))
	c.render(c.devicePath(pts[:len(pts)-1], true), p, p.Style == canvas.Stroke)
}

func (c *Canvas) DrawArc(r canvas.Rect, startDeg, sweepDeg float64, p *canvas.Paint) {
	radius := max(r.Width(), r.Height()) / 2 * c.Scale()
	pts := canvas.ArcPoints(r, startDeg, sweepDeg, canvas.ArcSegments(radius, sweepDeg))
	stroke := p.Style == canvas.Stroke
	c.render(c.devicePath(pts, !stroke), p, stroke)
}

func (c *Canvas) DrawPath(path *gg.Path, p *canvas.Paint) {
	var vp vector.Path
	pt := func(x, y float64) (float32, float32) {
		d := c.Transform(x, y)
		return float32(d.X), float32(d.Y)
	}
	path.Iterate(func(verb gg.PathVerb, v []float64) {
		switch verb {
		case gg.MoveTo:
			vp.MoveTo(pt(v[0], v[1]))
		case gg.LineTo:
			vp.LineTo(pt(v[0], v[1]))
		case gg.QuadTo:
			x1, y1 := pt(v[0], v[1])
			x2, y2 := pt(v[2], v[3])
			vp.QuadTo(x1, y1, x2, y2)
		case gg.CubicTo:
			x1, y1 := pt(v[0], v[1])
			x2, y2 := pt(v[2], v[3])
			x3, y3 := pt(v[4], v[5])
			vp.CubicTo(x1, y1, x2, y2, x3, y3)
		case gg.Close:
			vp.Close()
		}
	})
	c.render(&vp, p, p.Style == canvas.Stroke)
}

// DrawText renders s at the transformed anchor. Glyphs follow the current
// rotation and scale.
func (c *Canvas) DrawText(s string, x, y float64, p *canvas.Paint) {
	dst := c.target()
	if dst == nil || s == "" {
		return
	}
	face := c.faces.Face(p.TextSize)
	w := float64(font.MeasureString(face, s)) / 64
	switch p.Align {
	case canvas.AlignCenter:
		x -= w / 2
	case canvas.AlignRight:
		x -= w
	}

	m := c.Current().M
	var geo ebiten.GeoM
	geo.SetElement(0, 0, m.A)
	geo.SetElement(0, 1, m.B)
	geo.SetElement(0, 2, m.C)
	geo.SetElement(1, 0, m.D)
	geo.SetElement(1, 1, m.E)
	geo.SetElement(1, 2, m.F)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(p.Color)
	op.Filter = ebiten.FilterLinear
	text.DrawWithOptions(dst, s, face, op)
}

func (c *Canvas) MeasureText(s string, p *canvas.Paint) (w, h float64) {
	face := c.faces.Face(p.TextSize)
	w = float64(font.MeasureString(face, s)) / 64
	h = float64(face.Metrics().Height) / 64
	return w, h
}
