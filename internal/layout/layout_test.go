package layout

import (
	"testing"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/style"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{2.5, 3},
		{-2.5, -2},
		{-8.5, -8},
		{5.4, 5},
		{-5.6, -6},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStrokeWidthClamp(t *testing.T) {
	tests := []struct {
		w, h   int
		factor float64
		want   float64
	}{
		{0, 0, BorderFactor, 1},
		{100, 100, BorderFactor, 1},
		{10, 10, ThickTicFactor, 1},
		{399, 0, ThinTicFactor, 1},
		{1000, 1000, BorderFactor, 7.5},
		{1001, 1000, BorderFactor, 7.5}, // integer average
	}
	for _, tt := range tests {
		got := StrokeWidth(tt.w, tt.h, tt.factor)
		if got != tt.want {
			t.Errorf("StrokeWidth(%d, %d, %v) = %v, want %v", tt.w, tt.h, tt.factor, got, tt.want)
		}
		if got < 1 {
			t.Errorf("StrokeWidth(%d, %d, %v) = %v, below one pixel", tt.w, tt.h, tt.factor, got)
		}
	}
}

func TestHUDMetrics400x300(t *testing.T) {
	m := HUDMetrics(400, 300, style.DefaultHUD())

	ints := []struct {
		name      string
		got, want int
	}{
		{"AttHeight", m.AttHeight, 270},
		{"PitchTextCenterOffset", m.PitchTextCenterOffset, -8},
		{"PitchScaleTextXOffset", m.PitchScaleTextXOffset, 10},
		{"PitchPixPerDegree", m.PitchPixPerDegree, 5},
		{"RollTopOffset", m.RollTopOffset, 30},
		{"RollTicLength", m.RollTicLength, 8},
		{"YawTicsSmall", m.YawTicsSmall, 6},
		{"YawTicsCompass", m.YawTicsCompass, 15},
		{"YawText", m.YawText, 10},
		{"CenterlineOverrun", m.CenterlineOverrun, 6},
		{"RollTriangleBottom", m.RollTriangleBottom(), -90},
		{"RollRadius", m.RollRadius(), 105},
		{"YawBottom", m.YawBottom(), -135},
	}
	for _, tt := range ints {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	floats := []struct {
		name      string
		got, want float64
	}{
		{"OriginX", m.OriginX, 200},
		{"OriginY", m.OriginY, 165},
		{"BorderWidth", m.BorderWidth, 2.625},
		{"ThinTicWidth", m.ThinTicWidth, 1},
		{"YawPixPerDegree", m.YawPixPerDegree, 4},
		{"Info.UpperTop", m.Info.UpperTop, -117},
		{"Info.UpperBottom", m.Info.UpperBottom, -97},
		{"Info.LowerTop", m.Info.LowerTop, 118},
		{"Info.LowerBottom", m.Info.LowerBottom, 138},
		{"Info.XOffset", m.Info.XOffset, 5},
	}
	for _, tt := range floats {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if m.YawTicsSmall >= m.YawTicsTall || m.YawTicsTall >= m.YawTicsCompass {
		t.Errorf("tick heights not increasing: %d, %d, %d", m.YawTicsSmall, m.YawTicsTall, m.YawTicsCompass)
	}
}

func TestHUDBoxes(t *testing.T) {
	st := style.DefaultHUD()
	m := HUDMetrics(401, 300, st)

	speed := m.SpeedBox(st)
	if speed != canvas.R(-200, -100, -104, 100) {
		t.Errorf("SpeedBox = %+v", speed)
	}
	alt := m.AltitudeBox(st)
	if alt != canvas.R(104, -100, 200, 100) {
		t.Errorf("AltitudeBox = %+v", alt)
	}

	vsi := VSIMetrics(alt)
	if vsi.BarWidth != 24 || vsi.Strip.Right != alt.Left || vsi.Strip.Left != alt.Left-24 {
		t.Errorf("VSI strip = %+v, bar width %v", vsi.Strip, vsi.BarWidth)
	}
	if want := 200.0 / VSIRange; vsi.LineSpace != want {
		t.Errorf("VSI line space = %v, want %v", vsi.LineSpace, want)
	}
}

func TestPitchRollMetrics(t *testing.T) {
	m := PitchRollMetrics(200, 150, style.DefaultPitchRoll())
	if m.PixPerDegree != 20 {
		t.Errorf("PixPerDegree = %v, want 20", m.PixPerDegree)
	}
	if m.Arc != canvas.R(10, 10, 190, 140) {
		t.Errorf("Arc = %+v", m.Arc)
	}
	if m.ArcHRadius != 90 || m.ArcVRadius != 65 {
		t.Errorf("arc radii = %v, %v", m.ArcHRadius, m.ArcVRadius)
	}
	if m.UpperLimit != 25 || m.LowerLimit != 125 {
		t.Errorf("ladder band = [%v, %v]", m.UpperLimit, m.LowerLimit)
	}
}

func TestYawMetrics(t *testing.T) {
	st := style.DefaultYaw()
	m := YawMetrics(240, 50, st)
	if m.PixPerDegree != 2 {
		t.Errorf("PixPerDegree = %v, want 2", m.PixPerDegree)
	}
	if m.TicksTop != 40 || m.TicksBottom != 50 {
		t.Errorf("bottom ticks span [%v, %v]", m.TicksTop, m.TicksBottom)
	}

	st.TicksPosition = style.Top
	m = YawMetrics(240, 50, st)
	if m.TicksTop != 0 || m.TicksBottom != 10 {
		t.Errorf("top ticks span [%v, %v]", m.TicksTop, m.TicksBottom)
	}
}

func TestTapeMetrics(t *testing.T) {
	box := canvas.R(0, 0, 96, 260)
	left := TapeMetrics(TapeSpec{
		Box:         box,
		Range:       26,
		Handedness:  style.Left,
		TicWidth:    16,
		TextMargin:  23,
		ArrowHeight: 24,
		Border:      2,
	})
	if left.Space != 10 {
		t.Fatalf("Space = %v, want 10", left.Space)
	}
	if lo, hi := left.Visible(100); lo != 87 || hi != 113 {
		t.Errorf("Visible(100) = [%d, %d], want [87, 113]", lo, hi)
	}
	for _, v := range []float64{-40.5, 0, 3.25, 100, 999.9} {
		if y := left.Y(v, v); y != left.CenterY {
			t.Errorf("Y(%v, %v) = %v, want centre %v", v, v, y, left.CenterY)
		}
	}
	if left.TicStart != 96 || left.TicEnd != 80 || left.TextX != 73 {
		t.Errorf("left ticks %v..%v text %v", left.TicStart, left.TicEnd, left.TextX)
	}
	if left.PointX != 94 || left.StickX != -2 || left.BaseX != 88 {
		t.Errorf("left arrow stick %v base %v point %v", left.StickX, left.BaseX, left.PointX)
	}

	right := TapeMetrics(TapeSpec{
		Box:         box,
		Range:       26,
		Handedness:  style.Right,
		TicWidth:    16,
		TextMargin:  23,
		ArrowHeight: 24,
		Border:      2,
	})
	if right.TicStart != 0 || right.TicEnd != 16 || right.TextX != 23 {
		t.Errorf("right ticks %v..%v text %v", right.TicStart, right.TicEnd, right.TextX)
	}
	if right.PointX != 2 || right.StickX != 98 || right.BaseX != 8 {
		t.Errorf("right arrow stick %v base %v point %v", right.StickX, right.BaseX, right.PointX)
	}

	zero := TapeMetrics(TapeSpec{Box: box})
	if zero.Space != 0 {
		t.Errorf("zero range Space = %v, want 0", zero.Space)
	}
}

func TestWindowResize(t *testing.T) {
	var w Window
	steps := []struct {
		w, h int
		want bool
	}{
		{1024, 600, true}, // first call
		{1024, 600, false},
		{800, 600, true},
		{800, 10, true}, // shorter than any status bar
		{800, 10, false},
		{800, 10, false},
		{0, 0, true},
		{0, 0, false},
	}
	for i, s := range steps {
		if got := w.Resize(s.w, s.h); got != s.want {
			t.Errorf("step %d: Resize(%d, %d) = %v, want %v", i, s.w, s.h, got, s.want)
		}
		if gw, gh := w.Size(); gw != s.w || gh != s.h {
			t.Errorf("step %d: Size() = %dx%d", i, gw, gh)
		}
	}

	// A zero-size first call still counts as a change.
	var z Window
	if !z.Resize(0, 0) {
		t.Error("first Resize(0, 0) reported no change")
	}
}
