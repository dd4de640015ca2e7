package main

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/render/ebitencanvas"
	"elrs-hud/internal/style"
)

const (
	PanelWidth = 280 // Left instrument panel width
)

// slot is a widget with its screen rectangle and a cached rendering that is
// refreshed only while the widget is dirty.
type slot struct {
	w       instrument.Widget
	rect    image.Rectangle
	img     *ebiten.Image
	redraws int
}

func (s *slot) setRect(r image.Rectangle) {
	if r == s.rect {
		return
	}
	s.rect = r
	if s.img != nil {
		s.img.Dispose()
		s.img = nil
	}
	if !r.Empty() {
		s.img = ebiten.NewImage(r.Dx(), r.Dy())
	}
	s.w.SetSize(r.Dx(), r.Dy())
}

func (s *slot) draw(screen *ebiten.Image, cv *ebitencanvas.Canvas) {
	if s.img == nil {
		return
	}
	if s.w.Dirty() {
		s.img.Clear()
		cv.Begin(s.img)
		s.w.Draw(cv)
		s.redraws++
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.rect.Min.X), float64(s.rect.Min.Y))
	screen.DrawImage(s.img, op)
}

// Panel renders the left instrument panel built from the simple widgets
type Panel struct {
	pitchRoll *instrument.PitchRoll
	yaw       *instrument.Yaw
	speed     *instrument.Scroller
	alt       *instrument.Scroller
	slots     []*slot

	panelW  int
	panelBg color.RGBA
	frame   color.RGBA
}

// NewPanel creates a new instrument panel
func NewPanel(st style.File) (*Panel, error) {
	pr, err := instrument.NewPitchRoll(st.PitchRoll)
	if err != nil {
		return nil, err
	}
	speed, err := instrument.NewScroller(st.Speed)
	if err != nil {
		return nil, err
	}
	alt, err := instrument.NewScroller(st.Altitude)
	if err != nil {
		return nil, err
	}
	p := &Panel{
		pitchRoll: pr,
		yaw:       instrument.NewYaw(st.Yaw),
		speed:     speed,
		alt:       alt,
		panelW:    PanelWidth,
		panelBg:   color.RGBA{25, 25, 30, 255},
		frame:     color.RGBA{60, 60, 70, 255},
	}
	for _, w := range []instrument.Widget{p.pitchRoll, p.yaw, p.speed, p.alt} {
		p.slots = append(p.slots, &slot{w: w})
	}
	return p, nil
}

// GetPanelWidth returns the panel width for HUD offset calculation
func (p *Panel) GetPanelWidth() int {
	return p.panelW
}

// SetInvalidator installs fn on every panel widget.
func (p *Panel) SetInvalidator(fn func()) {
	for _, s := range p.slots {
		s.w.SetInvalidator(fn)
	}
}

// Layout stacks the attitude and heading instruments above the two tapes.
func (p *Panel) Layout(screenH int) {
	margin := 10
	w := p.panelW - 2*margin

	ahY := margin
	ahH := 200
	p.slots[0].setRect(image.Rect(margin, ahY, margin+w, ahY+ahH))

	yawY := ahY + ahH + margin
	yawH := 50
	p.slots[1].setRect(image.Rect(margin, yawY, margin+w, yawY+yawH))

	tapeY := yawY + yawH + margin
	tapeH := max(0, min(260, screenH-statusBarH-margin-tapeY))
	tapeW := 96
	p.slots[2].setRect(image.Rect(margin, tapeY, margin+tapeW, tapeY+tapeH))
	p.slots[3].setRect(image.Rect(margin+w-tapeW, tapeY, margin+w, tapeY+tapeH))
}

// Update feeds a telemetry sample into the widgets. Attitude outside the
// indicator's range is pinned to its limits.
func (p *Panel) Update(tm instrument.Telemetry) {
	pitch := p.pitchRoll.PitchRange().Clamp(tm.Pitch)
	roll := p.pitchRoll.RollRange().Clamp(tm.Roll)
	if pitch != p.pitchRoll.Pitch() || roll != p.pitchRoll.Roll() {
		if err := p.pitchRoll.PinPitchRoll(tm.Pitch, tm.Roll); err != nil {
			log.Printf("Attitude sample dropped: %v", err)
		}
	}
	if tm.Yaw != p.yaw.Yaw() {
		p.yaw.SetYaw(tm.Yaw)
	}
	if tm.Airspeed != p.speed.Value() {
		p.speed.SetValue(tm.Airspeed)
	}
	if tm.TargetSpeed == 0 {
		if _, ok := p.speed.Target(); ok {
			p.speed.ClearTarget()
		}
	} else if v, ok := p.speed.Target(); !ok || v != tm.TargetSpeed {
		p.speed.SetTarget(tm.TargetSpeed)
	}
	if tm.Altitude != p.alt.Value() {
		p.alt.SetValue(tm.Altitude)
	}
}

// Draw renders the full instrument panel
func (p *Panel) Draw(screen *ebiten.Image, cv *ebitencanvas.Canvas) {
	screenH := screen.Bounds().Dy()

	// Panel background
	vector.DrawFilledRect(screen, 0, 0, float32(p.panelW), float32(screenH), p.panelBg, true)

	for _, s := range p.slots {
		s.draw(screen, cv)
		r := s.rect
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, p.frame, true)
	}

	// Panel right border
	vector.StrokeLine(screen, float32(p.panelW), 0, float32(p.panelW), float32(screenH), 2, p.frame, true)
}

// Redraws is the number of widget renderings since start.
func (p *Panel) Redraws() int {
	n := 0
	for _, s := range p.slots {
		n += s.redraws
	}
	return n
}
