package instrument

import (
	"fmt"

	"github.com/gogpu/gg"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/style"
)

// Scroller is the simple tape: an outlined box with a scale centred on the
// current value, a pointer read-out and an optional target marker.
type Scroller struct {
	base
	st style.Scroller

	value     float64
	target    float64
	hasTarget bool

	stroke, label canvas.Paint
	arrowFill     canvas.Paint
	arrowPen      canvas.Paint
	targetPen     canvas.Paint

	t tape
}

// NewScroller returns ErrInvalidRange when the scroll range is not positive.
func NewScroller(st style.Scroller) (*Scroller, error) {
	if err := checkScrollRange(st.ScrollToRange); err != nil {
		return nil, err
	}
	s := &Scroller{st: st, value: st.ScrollTo}
	s.t = tape{
		outline:   &s.stroke,
		scale:     &s.stroke,
		label:     &s.label,
		arrowFill: &s.arrowFill,
		arrowPen:  &s.arrowPen,
		targetPen: &s.targetPen,
		path:      gg.NewPath(),
	}
	s.relayout()
	return s, nil
}

func checkScrollRange(r float64) error {
	if r <= 0 {
		return fmt.Errorf("%w: scroll range %v must be positive", ErrInvalidRange, r)
	}
	return nil
}

// SetSize implements Widget.
func (s *Scroller) SetSize(w, h int) {
	s.resize(w, h)
	s.relayout()
	s.markDirty()
}

func (s *Scroller) relayout() {
	st := s.st
	align := canvas.AlignRight
	if st.Handedness == style.Right {
		align = canvas.AlignLeft
	}
	s.stroke = strokePaint(st.StrokeColor, st.StrokeWidth)
	s.label = textPaint(st.StrokeColor, st.TextSize, align)
	s.arrowFill = fillPaint(st.ArrowBgColor)
	s.arrowPen = strokePaint(st.ArrowStrokeColor, st.StrokeWidth)
	s.targetPen = strokePaint(st.TargetColor, 3*st.StrokeWidth)

	s.t.m = layout.TapeMetrics(layout.TapeSpec{
		Box:         canvas.R(0, 0, float64(s.width), float64(s.height)),
		Range:       st.ScrollToRange,
		Handedness:  st.Handedness,
		TicWidth:    st.TicWidth,
		TextMargin:  st.TextHorizontalMargin,
		TextOffset:  st.TextSize/2 + st.TextVerticalMargin,
		ArrowHeight: st.ArrowHeight,
		Border:      layout.Round(st.StrokeWidth),
	})
}

// Metrics returns the current layout.
func (s *Scroller) Metrics() layout.Tape { return s.t.m }

// Draw implements Widget.
func (s *Scroller) Draw(c canvas.Canvas) {
	if !s.beginDraw() {
		return
	}
	s.t.value = s.value
	s.t.target, s.t.hasTarget = s.target, s.hasTarget
	s.t.draw(c)
}

func (s *Scroller) Value() float64 { return s.value }

// SetValue scrolls the tape to v.
func (s *Scroller) SetValue(v float64) {
	s.value = v
	s.markDirty()
}

func (s *Scroller) Range() float64 { return s.st.ScrollToRange }

// SetRange sets the span of values visible at once.
func (s *Scroller) SetRange(r float64) error {
	if err := checkScrollRange(r); err != nil {
		return err
	}
	s.st.ScrollToRange = r
	s.restyle()
	return nil
}

// Target returns the target marker value and whether one is set.
func (s *Scroller) Target() (float64, bool) { return s.target, s.hasTarget }

func (s *Scroller) SetTarget(v float64) {
	s.target, s.hasTarget = v, true
	s.markDirty()
}

func (s *Scroller) ClearTarget() {
	s.target, s.hasTarget = 0, false
	s.markDirty()
}

func (s *Scroller) SetHandedness(h style.Handedness) {
	s.st.Handedness = h
	s.restyle()
}

func (s *Scroller) SetArrowHeight(h float64) {
	s.st.ArrowHeight = h
	s.restyle()
}

func (s *Scroller) SetTicWidth(w float64) {
	s.st.TicWidth = w
	s.restyle()
}

// SetTextMargins sets the label inset from the scale edge and its vertical
// offset from the tick.
func (s *Scroller) SetTextMargins(horizontal, vertical float64) {
	s.st.TextHorizontalMargin = horizontal
	s.st.TextVerticalMargin = vertical
	s.restyle()
}

func (s *Scroller) SetStrokeColor(c style.Color) {
	s.st.StrokeColor = c
	s.restyle()
}

func (s *Scroller) SetArrowStrokeColor(c style.Color) {
	s.st.ArrowStrokeColor = c
	s.restyle()
}

func (s *Scroller) SetArrowBgColor(c style.Color) {
	s.st.ArrowBgColor = c
	s.restyle()
}

func (s *Scroller) SetTextSize(size float64) {
	s.st.TextSize = size
	s.restyle()
}

func (s *Scroller) restyle() {
	s.relayout()
	s.markDirty()
}
