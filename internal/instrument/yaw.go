package instrument

import (
	"elrs-hud/internal/canvas"
	"elrs-hud/internal/layout"
	"elrs-hud/internal/style"
)

// Yaw is the simple heading strip. It shows a wider field of view than the
// HUD's strip, with uniform ticks along one edge and a fixed needle.
type Yaw struct {
	base
	st  style.Yaw
	m   layout.Yaw
	yaw float64

	ticks, needle canvas.Paint
}

func NewYaw(st style.Yaw) *Yaw {
	y := &Yaw{st: st, yaw: st.Yaw}
	y.relayout()
	return y
}

// SetSize implements Widget.
func (y *Yaw) SetSize(w, h int) {
	y.resize(w, h)
	y.relayout()
	y.markDirty()
}

func (y *Yaw) relayout() {
	st := y.st
	y.m = layout.YawMetrics(float64(y.width), float64(y.height), st)
	y.ticks = strokePaint(st.TicksColor, st.StrokeWidth)
	y.ticks.TextSize = st.TextSize
	y.ticks.Align = canvas.AlignCenter
	y.needle = strokePaint(st.YawNeedleColor, st.YawNeedleThickness)
}

// Draw implements Widget.
func (y *Yaw) Draw(c canvas.Canvas) {
	if !y.beginDraw() {
		return
	}
	m := y.m
	half := m.Width / 2

	headingTicks(y.yaw, layout.SimpleYawDegrees, func(t headingTick) {
		x := float64(int(t.Offset*m.PixPerDegree + half))
		c.DrawLine(x, m.TicksTop, x, m.TicksBottom, &y.ticks)
		if t.Label != "" {
			c.DrawText(t.Label, x, m.TextY, &y.ticks)
		}
	})

	c.DrawLine(half, 0, half, m.Height, &y.needle)
}

func (y *Yaw) Yaw() float64 { return y.yaw }

func (y *Yaw) SetYaw(v float64) {
	y.yaw = v
	y.markDirty()
}

func (y *Yaw) SetTicksColor(c style.Color) {
	y.st.TicksColor = c
	y.restyle()
}

func (y *Yaw) SetTicksPosition(pos style.TickPosition) {
	y.st.TicksPosition = pos
	y.restyle()
}

func (y *Yaw) SetTextSize(size float64) {
	y.st.TextSize = size
	y.restyle()
}

func (y *Yaw) SetYawNeedleColor(c style.Color) {
	y.st.YawNeedleColor = c
	y.restyle()
}

func (y *Yaw) SetYawNeedleThickness(w float64) {
	y.st.YawNeedleThickness = w
	y.restyle()
}

func (y *Yaw) restyle() {
	y.relayout()
	y.markDirty()
}
