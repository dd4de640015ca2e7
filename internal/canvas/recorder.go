package canvas

import (
	"unicode/utf8"

	"github.com/gogpu/gg"
)

// OpKind identifies a recorded drawing command.
type OpKind int

const (
	OpLine OpKind = iota
	OpRect
	OpCircle
	OpArc
	OpPath
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpArc:
		return "arc"
	case OpPath:
		return "path"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is a drawing command together with the state it was issued under.
// Geometry is kept in the local frame; use Device to map it.
type Op struct {
	Kind   OpKind
	M      gg.Matrix
	Clip   Rect
	Paint  Paint
	Pts    []gg.Point // line endpoints, path vertices, text anchor, circle centre
	Closed bool       // path was closed
	Rect   Rect       // rect, arc oval
	Start  float64    // arc start, degrees
	Sweep  float64    // arc sweep, degrees
	Radius float64    // circle radius
	Text   string
}

// Device returns the i-th point in device space.
func (o Op) Device(i int) gg.Point {
	return o.M.TransformPoint(o.Pts[i])
}

// Recorder is a Canvas that keeps every command instead of rasterizing.
type Recorder struct {
	StateStack
	ops []Op
}

// NewRecorder returns a recorder for a w x h surface.
func NewRecorder(w, h int) *Recorder {
	r := &Recorder{}
	r.Reset(w, h)
	return r
}

// Reset discards recorded commands and state.
func (r *Recorder) Reset(w, h int) {
	r.StateStack.Reset(w, h)
	r.ops = r.ops[:0]
}

// Ops returns the recorded commands in issue order.
func (r *Recorder) Ops() []Op { return r.ops }

// Filter returns the commands of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) push(op Op, p *Paint) {
	st := r.Current()
	op.M = st.M
	op.Clip = st.Clip
	if p != nil {
		op.Paint = *p
	}
	r.ops = append(r.ops, op)
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p *Paint) {
	r.push(Op{Kind: OpLine, Pts: []gg.Point{gg.Pt(x0, y0), gg.Pt(x1, y1)}}, p)
}

func (r *Recorder) DrawRect(rect Rect, p *Paint) {
	r.push(Op{Kind: OpRect, Rect: rect}, p)
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, p *Paint) {
	r.push(Op{Kind: OpCircle, Pts: []gg.Point{gg.Pt(cx, cy)}, Radius: radius}, p)
}

func (r *Recorder) DrawArc(rect Rect, startDeg, sweepDeg float64, p *Paint) {
	r.push(Op{Kind: OpArc, Rect: rect, Start: startDeg, Sweep: sweepDeg}, p)
}

func (r *Recorder) DrawPath(path *gg.Path, p *Paint) {
	op := Op{Kind: OpPath}
	path.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo, gg.LineTo:
			op.Pts = append(op.Pts, gg.Pt(coords[0], coords[1]))
		case gg.Close:
			op.Closed = true
		}
	})
	r.push(op, p)
}

func (r *Recorder) DrawText(s string, x, y float64, p *Paint) {
	r.push(Op{Kind: OpText, Pts: []gg.Point{gg.Pt(x, y)}, Text: s}, p)
}

// MeasureText uses a fixed advance of half the text size per rune.
func (r *Recorder) MeasureText(s string, p *Paint) (w, h float64) {
	return float64(utf8.RuneCountInString(s)) * p.TextSize / 2, p.TextSize
}
