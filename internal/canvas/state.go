package canvas

import (
	"math"

	"github.com/gogpu/gg"
)

// State is one entry of a StateStack.
type State struct {
	M    gg.Matrix
	Clip Rect // device space
}

// StateStack tracks the current transform and clip for backends that do not
// have their own. The zero value is not usable; call Reset first.
type StateStack struct {
	cur    State
	saved  []State
	bounds Rect
}

// Reset installs the identity transform and clips to w x h.
func (s *StateStack) Reset(w, h int) {
	s.bounds = R(0, 0, float64(w), float64(h))
	s.cur = State{M: gg.Identity(), Clip: s.bounds}
	s.saved = s.saved[:0]
}

// Current returns the active state.
func (s *StateStack) Current() State { return s.cur }

// Depth is the number of unmatched Save calls.
func (s *StateStack) Depth() int { return len(s.saved) }

func (s *StateStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore is a no-op when nothing is saved.
func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *StateStack) Translate(dx, dy float64) {
	s.cur.M = s.cur.M.Multiply(gg.Translate(dx, dy))
}

func (s *StateStack) Rotate(deg float64) {
	s.cur.M = s.cur.M.Multiply(gg.Rotate(Radians(deg)))
}

func (s *StateStack) RotateAbout(deg, px, py float64) {
	s.Translate(px, py)
	s.Rotate(deg)
	s.Translate(-px, -py)
}

func (s *StateStack) ClipRect(r Rect) {
	s.cur.Clip = s.cur.Clip.Intersect(r.Bounds(s.cur.M))
}

// Transform maps a point of the current frame to device space.
func (s *StateStack) Transform(x, y float64) gg.Point {
	return s.cur.M.TransformPoint(gg.Pt(x, y))
}

// Scale is the uniform scale factor of the current transform.
func (s *StateStack) Scale() float64 {
	m := s.cur.M
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ArcPoints flattens the arc of the oval inscribed in r into segs+1 points of
// the local frame.
func ArcPoints(r Rect, startDeg, sweepDeg float64, segs int) []gg.Point {
	if segs < 1 {
		segs = 1
	}
	cx, cy := r.CenterX(), r.CenterY()
	rx, ry := r.Width()/2, r.Height()/2
	pts := make([]gg.Point, 0, segs+1)
	for i := 0; i <= segs; i++ {
		a := Radians(startDeg + sweepDeg*float64(i)/float64(segs))
		pts = append(pts, gg.Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	return pts
}

// ArcSegments picks a flattening resolution of roughly one segment per
// 5 degrees, growing with the radius.
func ArcSegments(radius, sweepDeg float64) int {
	n := int(math.Ceil(math.Abs(sweepDeg) / 5))
	if radius > 200 {
		n *= 2
	}
	return max(n, 4)
}
