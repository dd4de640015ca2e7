package instrument

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/style"
)

// Internal rendering ranges of the pitch/roll indicator. External values are
// mapped onto them before drawing.
var (
	pitchScale = Range{Min: layout.PitchScaleMin, Max: layout.PitchScaleMax}
	rollScale  = Range{Min: layout.RollScaleMin, Max: layout.RollScaleMax}
)

// PitchRoll is the simple pitch/roll indicator: a fixed roll arc with a
// moving marker, and a short pitch ladder and reticle that bank with roll.
// Pitch and roll are bounded; setters reject values outside their range.
type PitchRoll struct {
	base
	st style.PitchRoll
	m  layout.PitchRoll

	pitch, roll           float64
	pitchRange, rollRange Range

	pitchPen, rollPen, reticle canvas.Paint

	path *gg.Path
}

// NewPitchRoll validates st and returns the indicator. Without an initial
// pitch or roll the widget starts at the middle of the range.
func NewPitchRoll(st style.PitchRoll) (*PitchRoll, error) {
	pr := Range{Min: st.PitchMin, Max: st.PitchMax}
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	rr := Range{Min: st.RollMin, Max: st.RollMax}
	if err := rr.Validate(); err != nil {
		return nil, err
	}

	pitch, roll := pr.Mid(), rr.Mid()
	if st.Pitch != nil {
		pitch = *st.Pitch
	}
	if st.Roll != nil {
		roll = *st.Roll
	}
	if err := pr.check("pitch", pitch); err != nil {
		return nil, err
	}
	if err := rr.check("roll", roll); err != nil {
		return nil, err
	}

	p := &PitchRoll{
		st:         st,
		pitch:      pitch,
		roll:       roll,
		pitchRange: pr,
		rollRange:  rr,
		path:       gg.NewPath(),
	}
	p.relayout()
	return p, nil
}

// SetSize implements Widget.
func (p *PitchRoll) SetSize(w, h int) {
	p.resize(w, h)
	p.relayout()
	p.markDirty()
}

func (p *PitchRoll) relayout() {
	st := p.st
	p.m = layout.PitchRollMetrics(float64(p.width), float64(p.height), st)

	p.pitchPen = strokePaint(st.PitchColor, st.StrokeWidth)
	p.pitchPen.TextSize = st.TextSize
	p.pitchPen.Align = canvas.AlignCenter
	p.rollPen = strokePaint(st.RollColor, st.StrokeWidth)
	p.rollPen.TextSize = st.TextSize
	p.reticle = strokePaint(st.ReticleColor, st.StrokeWidth)
}

// Metrics returns the current layout.
func (p *PitchRoll) Metrics() layout.PitchRoll { return p.m }

func (p *PitchRoll) normalizedRoll() float64 {
	return normalize(rollScale, p.rollRange, p.roll)
}

// Draw implements Widget.
func (p *PitchRoll) Draw(c canvas.Canvas) {
	if !p.beginDraw() {
		return
	}
	p.drawRoll(c)
	p.drawPitch(c)
	p.drawReticle(c)
}

func (p *PitchRoll) drawRoll(c canvas.Canvas) {
	m := p.m
	hw, hh := m.Width/2, m.Height/2
	r := p.st.ReticleRadius

	c.DrawArc(m.Arc, layout.RollArcStart, layout.RollArcSweep, &p.rollPen)

	// Fixed top marker.
	tmp := 2 * p.reticle.StrokeWidth
	path := p.path
	path.Clear()
	path.MoveTo(hw, r-tmp)
	path.LineTo(hw-r, 0)
	path.LineTo(hw+r, 0)
	path.Close()
	c.DrawPath(path, &p.reticle)

	// Ticks, mirrored about the top.
	for i := int(layout.RollScaleMin); i < 0; i += layout.RollTickStep {
		sin, cos := math.Sincos(canvas.Radians(float64(i)))
		dx, dy := sin*m.ArcHRadius, cos*m.ArcVRadius
		ex, ey := sin*(m.ArcHRadius+r/2), cos*(m.ArcVRadius+r/2)
		c.DrawLine(hw+dx, hh-dy, hw+ex, hh-ey, &p.rollPen)
		c.DrawLine(hw-dx, hh-dy, hw-ex, hh-ey, &p.rollPen)
	}

	// Moving marker.
	c.Save()
	defer c.Restore()
	c.RotateAbout(-p.normalizedRoll(), hw, hh)
	baseY := 2*r + tmp
	path.Clear()
	path.MoveTo(hw, r+tmp)
	path.LineTo(hw-r, baseY)
	path.LineTo(hw+r, baseY)
	path.Close()
	c.DrawPath(path, &p.reticle)
}

func (p *PitchRoll) drawPitch(c canvas.Canvas) {
	m := p.m
	hw, hh := m.Width/2, m.Height/2
	psw, margin := p.st.PitchScaleWidth, p.st.PitchScaleMargin
	outer := psw + margin
	textOffset := p.st.TextSize * layout.PitchTextRatio
	yOffset := normalize(pitchScale, p.pitchRange, p.pitch) * m.PixPerDegree

	c.Save()
	defer c.Restore()
	c.RotateAbout(-p.normalizedRoll(), hw, hh)

	for i := int(layout.PitchScaleMin); i <= int(layout.PitchScaleMax); i++ {
		y := -float64(i)*m.PixPerDegree + yOffset + hh
		if y < m.UpperLimit || y > m.LowerLimit {
			continue
		}
		if i%2 == 0 {
			label := strconv.Itoa(int(denormalize(pitchScale, p.pitchRange, float64(i))))
			c.DrawLine(hw-outer, y, hw-margin, y, &p.pitchPen)
			c.DrawText(label, hw, y+textOffset, &p.pitchPen)
			c.DrawLine(hw+margin, y, hw+outer, y, &p.pitchPen)
		} else {
			c.DrawLine(hw-psw/2, y, hw+psw/2, y, &p.pitchPen)
		}
	}
}

// drawReticle draws the reticle banked with roll.
func (p *PitchRoll) drawReticle(c canvas.Canvas) {
	m := p.m
	hw, hh := m.Width/2, m.Height/2
	r := p.st.ReticleRadius

	c.Save()
	defer c.Restore()
	c.RotateAbout(-p.normalizedRoll(), hw, hh)

	c.DrawCircle(hw, hh, r, &p.reticle)
	c.DrawLine(hw-r, hh, hw-r*2, hh, &p.reticle)
	c.DrawLine(hw+r, hh, hw+r*2, hh, &p.reticle)
	c.DrawLine(hw, hh-r, hw, hh-r*2, &p.reticle)
}

func (p *PitchRoll) Pitch() float64 { return p.pitch }

func (p *PitchRoll) Roll() float64 { return p.roll }

func (p *PitchRoll) PitchRange() Range { return p.pitchRange }

func (p *PitchRoll) RollRange() Range { return p.rollRange }

// SetPitch returns ErrOutOfRange and keeps the old pitch when v is outside
// the pitch range.
func (p *PitchRoll) SetPitch(v float64) error {
	if err := p.pitchRange.check("pitch", v); err != nil {
		return err
	}
	p.pitch = v
	p.markDirty()
	return nil
}

// SetRoll returns ErrOutOfRange and keeps the old roll when v is outside
// the roll range.
func (p *PitchRoll) SetRoll(v float64) error {
	if err := p.rollRange.check("roll", v); err != nil {
		return err
	}
	p.roll = v
	p.markDirty()
	return nil
}

// SetPitchRoll sets both values, or neither if either is out of range.
func (p *PitchRoll) SetPitchRoll(pitch, roll float64) error {
	if err := p.pitchRange.check("pitch", pitch); err != nil {
		return err
	}
	if err := p.rollRange.check("roll", roll); err != nil {
		return err
	}
	p.pitch, p.roll = pitch, roll
	p.markDirty()
	return nil
}

// PinPitchRoll sets both values, first pinning each to its range. Only a
// NaN is rejected.
func (p *PitchRoll) PinPitchRoll(pitch, roll float64) error {
	return p.SetPitchRoll(p.pitchRange.Clamp(pitch), p.rollRange.Clamp(roll))
}

// SetPitchRange replaces the pitch bounds. The current pitch must lie
// within the new range.
func (p *PitchRoll) SetPitchRange(lo, hi float64) error {
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.check("pitch", p.pitch); err != nil {
		return err
	}
	p.pitchRange = r
	p.st.PitchMin, p.st.PitchMax = lo, hi
	p.markDirty()
	return nil
}

// SetRollRange replaces the roll bounds. The current roll must lie within
// the new range.
func (p *PitchRoll) SetRollRange(lo, hi float64) error {
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.check("roll", p.roll); err != nil {
		return err
	}
	p.rollRange = r
	p.st.RollMin, p.st.RollMax = lo, hi
	p.markDirty()
	return nil
}

func (p *PitchRoll) SetPitchScaleWidth(w float64) {
	p.st.PitchScaleWidth = w
	p.restyle()
}

func (p *PitchRoll) SetPitchScaleMargin(m float64) {
	p.st.PitchScaleMargin = m
	p.restyle()
}

func (p *PitchRoll) SetPitchColor(c style.Color) {
	p.st.PitchColor = c
	p.restyle()
}

func (p *PitchRoll) SetRollColor(c style.Color) {
	p.st.RollColor = c
	p.restyle()
}

func (p *PitchRoll) SetTextSize(size float64) {
	p.st.TextSize = size
	p.restyle()
}

// SetReticleRadius also rescales the ladder, which is fitted around the
// reticle.
func (p *PitchRoll) SetReticleRadius(r float64) {
	p.st.ReticleRadius = r
	p.restyle()
}

func (p *PitchRoll) SetReticleColor(c style.Color) {
	p.st.ReticleColor = c
	p.restyle()
}

func (p *PitchRoll) restyle() {
	p.relayout()
	p.markDirty()
}
