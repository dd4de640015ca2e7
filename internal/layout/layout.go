// Package layout derives the pixel metrics every instrument needs from its
// size and style. All functions are pure; widgets call them on every size or
// metric-affecting style change and keep the result until the next one.
package layout

import (
	"math"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/style"
)

// Stroke width factors, relative to the average of width and height.
const (
	BorderFactor   = 0.0075
	ThickTicFactor = 0.005
	ThinTicFactor  = 0.0025
)

// Attitude factors.
const (
	// PitchTextYOffset is relative to the text size.
	PitchTextYOffset = -0.16
	// PitchScaleYSpace is relative to the attitude height.
	PitchScaleYSpace = 0.02
	// PitchScaleTextXOffset is relative to the width.
	PitchScaleTextXOffset = 0.025
	// RollTicLength is relative to the roll top offset.
	RollTicLength = 0.25
)

// Heading strip factors, relative to the top bar height unless noted.
const (
	// YawTextYOffset is relative to the text size.
	YawTextYOffset       = -0.16
	YawTicsSmall         = 0.20
	YawTicsTall          = 0.35
	// YawTicsCompass sets the compass points apart from the numbered ticks.
	YawTicsCompass       = 0.50
	YawCenterlineOverrun = 0.2

	HUDYawDegrees    = 90
	SimpleYawDegrees = 120
)

// Info text factors.
const (
	// InfoTextYOffset is relative to the text size.
	InfoTextYOffset = -0.1
	// InfoTextXOffset is relative to the width.
	InfoTextXOffset = 0.013
)

// Scroller ranges of the HUD tapes.
const (
	SpeedRange    = 26
	AltitudeRange = 26
	VSIRange      = 12
)

// Round rounds half up, matching the rounding the metrics were tuned with.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// StrokeWidth scales factor by the average of w and h and clamps it to one
// pixel. The average is an integer one.
func StrokeWidth(w, h int, factor float64) float64 {
	sw := float64((w+h)/2) * factor
	if sw < 1 {
		return 1
	}
	return sw
}

// InfoText holds the baselines of the four read-out slots and their inset
// from the side edges.
type InfoText struct {
	UpperTop    float64
	UpperBottom float64
	LowerTop    float64
	LowerBottom float64
	XOffset     float64
}

// HUD is the metrics bundle of the full head-up display. Vertical positions
// are relative to the frame origin at (OriginX, OriginY).
type HUD struct {
	Width, Height    int
	OriginX, OriginY float64

	BorderWidth   float64
	ThickTicWidth float64
	ThinTicWidth  float64

	AttHeight int

	PitchTextCenterOffset int
	PitchScaleTextXOffset int
	PitchPixPerDegree     int

	RollTopOffset int
	RollTicLength int

	YawTicsSmall      int
	YawTicsTall       int
	YawTicsCompass    int
	YawText           int
	CenterlineOverrun int
	YawPixPerDegree   float64

	Info InfoText
}

// HUDMetrics computes the HUD metrics for a w x h surface.
func HUDMetrics(w, h int, st style.HUD) HUD {
	ts := st.TextSize
	topBar := st.TopBarHeight
	m := HUD{
		Width:         w,
		Height:        h,
		OriginX:       float64(w / 2),
		OriginY:       (float64(h) + topBar) / 2,
		BorderWidth:   StrokeWidth(w, h, BorderFactor),
		ThickTicWidth: StrokeWidth(w, h, ThickTicFactor),
		ThinTicWidth:  StrokeWidth(w, h, ThinTicFactor),
		AttHeight:     h - int(topBar),
	}

	// Info text.
	offset := float64(Round(ts * InfoTextYOffset))
	clearance := float64(Round((float64(m.AttHeight) - st.ScrollerHeight - 4*ts) / 6))
	half := float64(m.AttHeight / 2)
	m.Info = InfoText{
		UpperTop:    -half + ts + offset + clearance,
		UpperBottom: -half + 2*ts + offset + 2*clearance,
		LowerBottom: half + offset - clearance,
		LowerTop:    half - ts + offset - 2*clearance,
		XOffset:     float64(Round(float64(w) * InfoTextXOffset)),
	}

	// Pitch.
	m.PitchTextCenterOffset = Round(-ts/2 - ts*PitchTextYOffset)
	m.PitchScaleTextXOffset = Round(float64(w) * PitchScaleTextXOffset)
	m.PitchPixPerDegree = Round(float64(m.AttHeight) * PitchScaleYSpace)

	// Heading.
	m.YawTicsSmall = Round(topBar * YawTicsSmall)
	m.YawTicsTall = Round(topBar * YawTicsTall)
	m.YawTicsCompass = Round(topBar * YawTicsCompass)
	small := float64(m.YawTicsSmall)
	m.YawText = Round(small + (topBar-small)/2 - ts/2 - float64(Round(ts*YawTextYOffset)))
	m.CenterlineOverrun = Round(topBar * YawCenterlineOverrun)
	m.YawPixPerDegree = float64(w / HUDYawDegrees)

	// Roll.
	m.RollTopOffset = int(topBar)
	m.RollTicLength = Round(float64(m.RollTopOffset) * RollTicLength)
	return m
}

// RollTriangleBottom is the frame y of the moving roll marker's base. The
// pitch ladder is confined to (RollTriangleBottom, -RollTriangleBottom).
func (m HUD) RollTriangleBottom() int {
	return -m.AttHeight/2 + m.RollTopOffset/2 + m.RollTopOffset
}

// RollRadius is the radius of the fixed roll arc.
func (m HUD) RollRadius() int {
	return m.AttHeight/2 - m.RollTopOffset
}

// YawBottom is the frame y of the heading strip's lower edge.
func (m HUD) YawBottom() int {
	return -m.AttHeight / 2
}

// SpeedBox is the frame rectangle of the airspeed tape.
func (m HUD) SpeedBox(st style.HUD) canvas.Rect {
	left := float64(-m.Width / 2)
	return canvas.R(left, -st.ScrollerHeight/2, left+st.ScrollerWidth, st.ScrollerHeight/2)
}

// AltitudeBox is the frame rectangle of the altitude tape. The vertical speed
// bar hangs off its left edge.
func (m HUD) AltitudeBox(st style.HUD) canvas.Rect {
	right := float64(m.Width / 2)
	return canvas.R(right-st.ScrollerWidth, -st.ScrollerHeight/2, right, st.ScrollerHeight/2)
}

// PitchRoll is the metrics bundle of the simple pitch/roll indicator.
type PitchRoll struct {
	Width, Height float64
	PixPerDegree  float64

	// Inset oval of the roll arc.
	Arc        canvas.Rect
	ArcHRadius float64
	ArcVRadius float64

	// Ladder band.
	UpperLimit float64
	LowerLimit float64
}

// Normalized ranges of the simple pitch/roll indicator.
const (
	PitchScaleMax  = 5.0
	PitchScaleMin  = -PitchScaleMax
	RollArcSweep   = 90.0
	RollScaleMax   = RollArcSweep / 2
	RollScaleMin   = -RollScaleMax
	RollArcStart   = 225.0
	RollTickStep   = 15
	PitchTextRatio = 0.25
)

// PitchRollMetrics computes the simple pitch/roll metrics for a w x h surface.
func PitchRollMetrics(w, h float64, st style.PitchRoll) PitchRoll {
	r := st.ReticleRadius
	upper := 2.5 * r
	return PitchRoll{
		Width:        w,
		Height:       h,
		PixPerDegree: (h - 5*r) * 2 / (PitchScaleMax - PitchScaleMin),
		Arc:          canvas.R(r, r, w-r, h-r),
		ArcHRadius:   w/2 - r,
		ArcVRadius:   h/2 - r,
		UpperLimit:   upper,
		LowerLimit:   h - upper,
	}
}

// Yaw is the metrics bundle of the simple heading strip.
type Yaw struct {
	Width, Height float64
	PixPerDegree  float64
	TicksTop      float64
	TicksBottom   float64
	TextY         float64
}

// YawMetrics computes the simple heading strip metrics for a w x h surface.
func YawMetrics(w, h float64, st style.Yaw) Yaw {
	ticks := h / 5
	m := Yaw{
		Width:        w,
		Height:       h,
		PixPerDegree: w / SimpleYawDegrees,
		TextY:        h/2 + st.TextSize/3,
	}
	if st.TicksPosition == style.Top {
		m.TicksTop, m.TicksBottom = 0, ticks
	} else {
		m.TicksTop, m.TicksBottom = h-ticks, h
	}
	return m
}

// TapeSpec describes a scrolling tape to lay out.
type TapeSpec struct {
	Box        canvas.Rect
	Range      float64
	Handedness style.Handedness

	TicWidth    float64
	TextMargin  float64
	TextOffset  float64
	ArrowHeight float64
	// Border is the pointer's stroke width; the pointer is pushed out by it.
	Border int
}

// Tape is the metrics bundle of a scrolling tape.
type Tape struct {
	Box     canvas.Rect
	CenterY float64
	// Space is the pixel distance of one unit.
	Space float64
	Range float64

	TicStart, TicEnd float64
	TextX            float64
	TextOffset       float64

	StickX, BaseX, PointX float64
	ArrowTop, ArrowBottom float64

	Handedness style.Handedness
}

// TapeMetrics lays out a tape. A left-handed tape has its ticks on the right
// edge with the pointer pointing right; a right-handed one is mirrored.
func TapeMetrics(s TapeSpec) Tape {
	b := s.Box
	t := Tape{
		Box:         b,
		CenterY:     b.CenterY(),
		Range:       s.Range,
		TextOffset:  s.TextOffset,
		ArrowTop:    b.CenterY() - s.ArrowHeight/2,
		ArrowBottom: b.CenterY() + s.ArrowHeight/2,
		Handedness:  s.Handedness,
	}
	if s.Range > 0 {
		t.Space = b.Height() / s.Range
	}
	border := float64(s.Border)
	if s.Handedness == style.Left {
		t.TicStart = b.Right
		t.TicEnd = b.Right - s.TicWidth
		t.TextX = b.Right - s.TextMargin
		t.StickX = b.Left - border
		t.BaseX = b.Right - s.ArrowHeight/4 - border
		t.PointX = b.Right - border
	} else {
		t.TicStart = b.Left
		t.TicEnd = b.Left + s.TicWidth
		t.TextX = b.Left + s.TextMargin
		t.StickX = b.Right + border
		t.BaseX = b.Left + s.ArrowHeight/4 + border
		t.PointX = b.Left + border
	}
	return t
}

// Y maps a tape value to its frame y, given the value at the centre.
func (t Tape) Y(centre, v float64) float64 {
	return t.CenterY - t.Space*(v-centre)
}

// Visible returns the first and last integer tick values shown around
// centre.
func (t Tape) Visible(centre float64) (lo, hi int) {
	return int(centre - t.Range/2), int(centre + t.Range/2)
}

// VSI is the metrics bundle of the vertical speed bar.
type VSI struct {
	// Strip spans from the altitude box's left edge outwards.
	Strip     canvas.Rect
	BarWidth  float64
	LineSpace float64
}

// VSIMetrics lays out the vertical speed bar against box.
func VSIMetrics(box canvas.Rect) VSI {
	vw := box.Width() / 4
	return VSI{
		Strip:     canvas.R(box.Left-vw, box.Top, box.Left, box.Bottom),
		BarWidth:  vw,
		LineSpace: box.Height() / VSIRange,
	}
}
