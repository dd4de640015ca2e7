package instrument

import (
	"errors"
	"math"
	"slices"
	"testing"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/style"
)

func newTestPitchRoll(t *testing.T) *PitchRoll {
	t.Helper()
	p, err := NewPitchRoll(style.DefaultPitchRoll())
	if err != nil {
		t.Fatalf("NewPitchRoll: %v", err)
	}
	p.SetSize(200, 150)
	return p
}

func TestNewPitchRollDefaults(t *testing.T) {
	p := newTestPitchRoll(t)
	if p.Pitch() != 0 || p.Roll() != 0 {
		t.Errorf("initial pitch/roll = %v/%v, want mid-range", p.Pitch(), p.Roll())
	}
	if p.PitchRange() != (Range{Min: -5, Max: 5}) || p.RollRange() != (Range{Min: -45, Max: 45}) {
		t.Errorf("ranges = %v %v", p.PitchRange(), p.RollRange())
	}
}

func TestNewPitchRollInvalid(t *testing.T) {
	st := style.DefaultPitchRoll()
	st.PitchMin, st.PitchMax = 3, 3
	if _, err := NewPitchRoll(st); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("flat pitch range: err = %v", err)
	}

	st = style.DefaultPitchRoll()
	st.RollMin, st.RollMax = 10, -10
	if _, err := NewPitchRoll(st); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted roll range: err = %v", err)
	}

	st = style.DefaultPitchRoll()
	pitch := 7.0
	st.Pitch = &pitch
	if _, err := NewPitchRoll(st); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("initial pitch out of range: err = %v", err)
	}
}

func TestPitchRollRejectsOutOfRange(t *testing.T) {
	p := newTestPitchRoll(t)
	if err := p.SetPitch(2); err != nil {
		t.Fatal(err)
	}
	if err := p.SetRoll(-20); err != nil {
		t.Fatal(err)
	}

	if err := p.SetPitch(5.01); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetPitch(5.01): err = %v", err)
	}
	if err := p.SetRoll(-46); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetRoll(-46): err = %v", err)
	}
	if err := p.SetPitchRoll(1, 100); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SetPitchRoll(1, 100): err = %v", err)
	}
	if p.Pitch() != 2 || p.Roll() != -20 {
		t.Errorf("values changed to %v/%v after rejected updates", p.Pitch(), p.Roll())
	}

	// Bounds are inclusive.
	if err := p.SetPitchRoll(-5, 45); err != nil {
		t.Errorf("SetPitchRoll at bounds: %v", err)
	}
}

func TestPitchRollPin(t *testing.T) {
	tests := []struct {
		pitch, roll         float64
		wantPitch, wantRoll float64
	}{
		{2, -20, 2, -20},
		{12, 100, 5, 45},
		{-30, -90, -5, -45},
	}
	for _, tt := range tests {
		p := newTestPitchRoll(t)
		if err := p.PinPitchRoll(tt.pitch, tt.roll); err != nil {
			t.Errorf("PinPitchRoll(%v, %v): %v", tt.pitch, tt.roll, err)
			continue
		}
		if p.Pitch() != tt.wantPitch || p.Roll() != tt.wantRoll {
			t.Errorf("PinPitchRoll(%v, %v) = %v/%v, want %v/%v",
				tt.pitch, tt.roll, p.Pitch(), p.Roll(), tt.wantPitch, tt.wantRoll)
		}
	}

	p := newTestPitchRoll(t)
	if err := p.PinPitchRoll(1, -10); err != nil {
		t.Fatal(err)
	}
	if err := p.PinPitchRoll(math.NaN(), 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NaN pitch: err = %v, want ErrOutOfRange", err)
	}
	if err := p.PinPitchRoll(0, math.NaN()); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("NaN roll: err = %v, want ErrOutOfRange", err)
	}
	if p.Pitch() != 1 || p.Roll() != -10 {
		t.Errorf("values changed to %v/%v after NaN", p.Pitch(), p.Roll())
	}
}

func TestPitchRollSetRange(t *testing.T) {
	p := newTestPitchRoll(t)
	if err := p.SetPitchRange(3, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("flat range: err = %v", err)
	}
	if err := p.SetPitchRange(1, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("range excluding current pitch: err = %v", err)
	}
	if p.PitchRange() != (Range{Min: -5, Max: 5}) {
		t.Errorf("range changed to %v after rejected update", p.PitchRange())
	}
	if err := p.SetRollRange(-90, 90); err != nil {
		t.Fatal(err)
	}
	if err := p.SetRoll(80); err != nil {
		t.Errorf("SetRoll(80) after widening: %v", err)
	}
}

func TestPitchRollLadderLabels(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		pitch  float64
		want   []string
	}{
		{"identity", -5, 5, 0, []string{"-2", "0", "2"}},
		{"scaled", -10, 10, 0, []string{"-4", "0", "4"}},
		{"nose up", -5, 5, 5, []string{"4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPitchRoll(t)
			if err := p.SetPitchRange(tt.lo, tt.hi); err != nil {
				t.Fatal(err)
			}
			if err := p.SetPitch(tt.pitch); err != nil {
				t.Fatal(err)
			}
			rec := canvas.NewRecorder(200, 150)
			p.Draw(rec)
			if got := rec.Texts(); !slices.Equal(got, tt.want) {
				t.Errorf("labels = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPitchRollReticleBanks(t *testing.T) {
	p := newTestPitchRoll(t)
	if err := p.SetRollRange(-90, 90); err != nil {
		t.Fatal(err)
	}
	if err := p.SetRoll(90); err != nil {
		t.Fatal(err)
	}
	rec := canvas.NewRecorder(200, 150)
	p.Draw(rec)

	circles := rec.Filter(canvas.OpCircle)
	if len(circles) != 1 {
		t.Fatalf("got %d circles", len(circles))
	}
	m := circles[0].M
	// Full roll maps onto the 45 degree end of the arc.
	if angle := math.Atan2(m.D, m.A) * 180 / math.Pi; math.Abs(angle+45) > 1e-9 {
		t.Errorf("reticle rotation = %v, want -45", angle)
	}
	if c := circles[0].Device(0); math.Abs(c.X-100) > 1e-9 || math.Abs(c.Y-75) > 1e-9 {
		t.Errorf("reticle centre = %+v", c)
	}
	if rec.Depth() != 0 {
		t.Errorf("state depth = %d after Draw", rec.Depth())
	}
}

func TestPitchRollArc(t *testing.T) {
	p := newTestPitchRoll(t)
	// Bank so the ladder is drawn rotated and only the arc ticks stay upright.
	if err := p.SetRoll(10); err != nil {
		t.Fatal(err)
	}
	rec := canvas.NewRecorder(200, 150)
	p.Draw(rec)

	arcs := rec.Filter(canvas.OpArc)
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs", len(arcs))
	}
	a := arcs[0]
	if a.Rect != canvas.R(10, 10, 190, 140) || a.Start != 225 || a.Sweep != 90 {
		t.Errorf("arc = %+v %v %v", a.Rect, a.Start, a.Sweep)
	}

	// Two mirrored ticks each at 15, 30 and 45 degrees.
	var ticks int
	for _, op := range rec.Filter(canvas.OpLine) {
		if op.Paint.Color == style.White.NRGBA() && op.M.IsIdentity() {
			ticks++
		}
	}
	if ticks != 6 {
		t.Errorf("got %d roll ticks, want 6", ticks)
	}
}
