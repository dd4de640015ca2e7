package instrument

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/style"
)

// HUD is the full head-up display: attitude with pitch ladder and roll arc,
// a heading strip in the top bar, an airspeed tape on the left, an altitude
// tape and vertical speed bar on the right, and four text read-outs.
type HUD struct {
	base
	st style.HUD
	m  layout.HUD
	tm Telemetry

	// Pens, rebuilt on every layout.
	ground, sky    canvas.Paint
	thin, thick    canvas.Paint
	border         canvas.Paint
	reticle        canvas.Paint
	text, info     canvas.Paint
	topBar         canvas.Paint
	scrollerBg     canvas.Paint
	black          canvas.Paint
	targetPen      canvas.Paint
	vsiFill        canvas.Paint
	compassHeights [3]float64

	speed tape
	alt   tape
	vs    vsi

	path *gg.Path
}

// NewHUD creates a HUD with the given style. It draws nothing until sized.
func NewHUD(st style.HUD) *HUD {
	h := &HUD{st: st, path: gg.NewPath()}
	h.speed = tape{
		background: &h.scrollerBg,
		outline:    &h.border,
		scale:      &h.thick,
		label:      &h.text,
		arrowFill:  &h.black,
		arrowPen:   &h.reticle,
		targetPen:  &h.targetPen,
		path:       h.path,
	}
	h.alt = h.speed
	h.vs = vsi{
		background: &h.scrollerBg,
		outline:    &h.border,
		fill:       &h.vsiFill,
		thin:       &h.thin,
		thick:      &h.thick,
		zero:       &h.reticle,
		path:       h.path,
	}
	h.relayout()
	return h
}

// SetSize implements Widget.
func (h *HUD) SetSize(w, ht int) {
	h.resize(w, ht)
	h.relayout()
	h.markDirty()
}

// Metrics returns the current layout.
func (h *HUD) Metrics() layout.HUD { return h.m }

// Style returns a copy of the current style.
func (h *HUD) Style() style.HUD { return h.st }

// Telemetry returns the values currently displayed.
func (h *HUD) Telemetry() Telemetry { return h.tm }

func (h *HUD) relayout() {
	h.m = layout.HUDMetrics(h.width, h.height, h.st)
	st, m := h.st, h.m

	if st.Enabled {
		h.ground, h.sky = fillPaint(st.GroundColor), fillPaint(st.SkyColor)
	} else {
		h.ground, h.sky = fillPaint(st.DisabledGroundColor), fillPaint(st.DisabledSkyColor)
	}
	h.thin = strokePaint(style.White, m.ThinTicWidth)
	h.thick = strokePaint(style.White, m.ThickTicWidth)
	h.border = strokePaint(style.White, m.BorderWidth)
	h.reticle = strokePaint(st.ReticleColor, st.ReticleStrokeWidth)
	h.text = textPaint(st.TextColor, st.TextSize, canvas.AlignCenter)
	h.info = textPaint(st.TextColor, st.TextSize, canvas.AlignLeft)
	h.topBar = fillPaint(st.TopBarColor)
	h.scrollerBg = fillPaint(st.ScrollerColor)
	h.black = fillPaint(style.Black)
	h.targetPen = strokePaint(st.TargetColor, st.TargetStrokeWidth)
	h.vsiFill = fillPaint(st.VSIColor)

	h.compassHeights = [3]float64{
		tickPlain:   float64(m.YawTicsSmall),
		tickNumeric: float64(m.YawTicsTall),
		tickCompass: float64(m.YawTicsCompass),
	}

	border := layout.Round(m.BorderWidth)
	spec := layout.TapeSpec{
		TicWidth:    st.ScrollerTicWidth,
		TextMargin:  st.ScrollerTextHorizontalMargin,
		TextOffset:  st.TextSize/2 - st.ScrollerTextVerticalMargin,
		ArrowHeight: st.ScrollerArrowHeight,
		Border:      border,
	}
	spec.Box, spec.Range, spec.Handedness = m.SpeedBox(st), layout.SpeedRange, style.Left
	h.speed.m = layout.TapeMetrics(spec)
	spec.Box, spec.Range, spec.Handedness = m.AltitudeBox(st), layout.AltitudeRange, style.Right
	h.alt.m = layout.TapeMetrics(spec)
	h.vs.m = layout.VSIMetrics(m.AltitudeBox(st))
	h.vs.border = float64(border)
}

// Draw implements Widget.
func (h *HUD) Draw(c canvas.Canvas) {
	if !h.beginDraw() {
		return
	}

	c.Save()
	defer c.Restore()

	// Centre of the attitude area, below the top bar.
	c.Translate(h.m.OriginX, h.m.OriginY)

	h.drawPitch(c)
	h.drawRoll(c)
	h.drawYaw(c)
	h.drawReticle(c)
	h.drawScrollers(c)
	h.drawInfo(c)
}

// pitchOffset is the horizon's distance below the frame origin.
func (h *HUD) pitchOffset() int {
	return int(h.tm.Pitch * float64(h.m.PitchPixPerDegree))
}

// ladderVisible reports whether the ladder tick at yPos is drawn: inside the
// band between the roll markers and not on the horizon.
func ladderVisible(yPos, horizon, rollTriangleBottom int) bool {
	return yPos < -rollTriangleBottom && yPos > rollTriangleBottom && yPos != horizon
}

func (h *HUD) drawPitch(c canvas.Canvas) {
	m := h.m
	ppd := m.PitchPixPerDegree
	off := h.pitchOffset()
	rtb := m.RollTriangleBottom()

	c.Save()
	defer c.Restore()
	c.Rotate(-h.tm.Roll)

	// Ground and sky stay larger than the diagonal at any roll and pitch.
	ext := float64(m.Width+m.Height) + math.Abs(float64(off))
	y := float64(off)
	c.DrawRect(canvas.R(-ext, y, ext, ext), &h.ground)
	c.DrawRect(canvas.R(-ext, -ext, ext, y), &h.sky)
	c.DrawLine(-ext, y, ext, y, &h.thin)

	// Roll marker, turning with the horizon.
	tmp := float64(layout.Round(h.st.ReticleStrokeWidth + m.BorderWidth/2))
	top := float64(-m.AttHeight/2 + m.RollTopOffset)
	third := float64(m.RollTopOffset / 3)
	p := h.path
	p.Clear()
	p.MoveTo(0, top+tmp)
	p.LineTo(-third, float64(rtb)+tmp)
	p.LineTo(third, float64(rtb)+tmp)
	p.Close()
	c.DrawPath(p, &h.reticle)

	// Ladder.
	psw := h.st.PitchScaleWidth
	gap := float64(m.PitchScaleTextXOffset)
	for i := -180; i <= 180; i += 5 {
		yPos := -i*ppd + off
		if !ladderVisible(yPos, off, rtb) {
			continue
		}
		y := float64(yPos)
		if i%2 == 0 {
			c.DrawLine(-psw, y, -gap, y, &h.thin)
			c.DrawText(strconv.Itoa(i), 0, y-float64(m.PitchTextCenterOffset), &h.text)
			c.DrawLine(gap, y, psw, y, &h.thin)
		} else {
			c.DrawLine(-psw/2, y, psw/2, y, &h.thin)
		}
	}
}

func (h *HUD) drawRoll(c canvas.Canvas) {
	m := h.m
	r := float64(m.RollRadius())
	c.DrawArc(canvas.R(-r, -r, r, r), layout.RollArcStart, layout.RollArcSweep, &h.border)

	// Fixed centre marker.
	tmp := float64(layout.Round(h.st.ReticleStrokeWidth / 2))
	top := float64(-m.AttHeight/2 + m.RollTopOffset)
	mid := float64(-m.AttHeight/2 + m.RollTopOffset/2)
	third := float64(m.RollTopOffset / 3)
	p := h.path
	p.Clear()
	p.MoveTo(0, top-tmp)
	p.LineTo(-third, mid-tmp)
	p.LineTo(third, mid-tmp)
	p.Close()
	c.DrawPath(p, &h.reticle)

	tic := r + float64(m.RollTicLength)
	for i := -45; i <= 45; i += layout.RollTickStep {
		if i == 0 {
			continue
		}
		sin, cos := math.Sincos(canvas.Radians(float64(i)))
		c.DrawLine(sin*r, -cos*r, sin*tic, -cos*tic, &h.thick)
	}
}

func (h *HUD) drawYaw(c canvas.Canvas) {
	m := h.m
	bottom := float64(m.YawBottom())
	half := float64(m.Width / 2)
	topBar := h.st.TopBarHeight

	c.DrawRect(canvas.R(-half, bottom-topBar, half, bottom), &h.topBar)
	c.DrawLine(-half, bottom, half, bottom, &h.border)

	labelY := bottom - float64(m.YawText)
	headingTicks(h.tm.Yaw, layout.HUDYawDegrees, func(t headingTick) {
		x := float64(int(t.Offset * m.YawPixPerDegree))
		c.DrawLine(x, bottom-h.compassHeights[t.Class], x, bottom, &h.thin)
		if t.Label != "" {
			c.DrawText(t.Label, x, labelY, &h.text)
		}
	})

	// Centre line.
	c.DrawLine(0, bottom-topBar, 0, bottom+float64(m.CenterlineOverrun), &h.reticle)
}

func (h *HUD) drawReticle(c canvas.Canvas) {
	r := h.st.ReticleRadius
	c.DrawCircle(0, 0, r, &h.reticle)
	c.DrawLine(-r, 0, -r*2, 0, &h.reticle)
	c.DrawLine(r, 0, r*2, 0, &h.reticle)
	c.DrawLine(0, -r, 0, -r*2, &h.reticle)
}

func (h *HUD) drawScrollers(c canvas.Canvas) {
	h.speed.value = h.tm.Airspeed
	h.speed.target = h.tm.TargetSpeed
	h.speed.hasTarget = h.tm.TargetSpeed != 0
	h.speed.draw(c)

	h.alt.value = h.tm.Altitude
	h.alt.draw(c)

	h.vs.value = h.tm.VerticalSpeed
	h.vs.draw(c)
}

func (h *HUD) drawInfo(c canvas.Canvas) {
	in := h.m.Info
	x := float64(-h.m.Width/2) + in.XOffset
	c.DrawText(fmt.Sprintf("ALT %.0f", h.tm.Altitude), x, in.UpperTop, &h.info)
	c.DrawText(fmt.Sprintf("VS %.1f", h.tm.VerticalSpeed), x, in.UpperBottom, &h.info)
	c.DrawText(fmt.Sprintf("PIT %.0f", h.tm.Pitch), x, in.LowerTop, &h.info)
	c.DrawText(fmt.Sprintf("ROL %.0f", h.tm.Roll), x, in.LowerBottom, &h.info)
}

// Telemetry setters.

func (h *HUD) SetPitch(v float64) {
	h.tm.Pitch = v
	h.markDirty()
}

func (h *HUD) SetRoll(v float64) {
	h.tm.Roll = v
	h.markDirty()
}

func (h *HUD) SetYaw(v float64) {
	h.tm.Yaw = v
	h.markDirty()
}

func (h *HUD) SetSpeed(v float64) {
	h.tm.Airspeed = v
	h.markDirty()
}

// SetTargetSpeed sets the speed bug. Zero hides it.
func (h *HUD) SetTargetSpeed(v float64) {
	h.tm.TargetSpeed = v
	h.markDirty()
}

func (h *HUD) SetVerticalSpeed(v float64) {
	h.tm.VerticalSpeed = v
	h.markDirty()
}

func (h *HUD) SetAltitude(v float64) {
	h.tm.Altitude = v
	h.markDirty()
}

// SetTelemetry replaces every value at once.
func (h *HUD) SetTelemetry(tm Telemetry) {
	h.tm = tm
	h.markDirty()
}

// Style setters.

func (h *HUD) Enabled() bool { return h.st.Enabled }

// SetEnabled switches between the live and the grey sky and ground.
func (h *HUD) SetEnabled(enabled bool) {
	h.st.Enabled = enabled
	h.restyle()
}

func (h *HUD) SetGroundColor(c style.Color) {
	h.st.GroundColor = c
	h.restyle()
}

func (h *HUD) SetSkyColor(c style.Color) {
	h.st.SkyColor = c
	h.restyle()
}

func (h *HUD) SetReticleColor(c style.Color) {
	h.st.ReticleColor = c
	h.restyle()
}

func (h *HUD) SetReticleRadius(r float64) {
	h.st.ReticleRadius = r
	h.restyle()
}

func (h *HUD) SetTextColor(c style.Color) {
	h.st.TextColor = c
	h.restyle()
}

func (h *HUD) SetTextSize(size float64) {
	h.st.TextSize = size
	h.restyle()
}

// SetTopBarColor sets the heading strip background.
func (h *HUD) SetTopBarColor(c style.Color) {
	h.st.TopBarColor = c
	h.restyle()
}

func (h *HUD) restyle() {
	h.relayout()
	h.markDirty()
}
