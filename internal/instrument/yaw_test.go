package instrument

import (
	"slices"
	"testing"

	"elrs-hud/internal/canvas"
	"elrs-hud/internal/style"
)

func TestYawStrip(t *testing.T) {
	y := NewYaw(style.DefaultYaw())
	y.SetSize(240, 50)
	rec := canvas.NewRecorder(240, 50)
	y.Draw(rec)

	want := []string{"300", "NW", "330", "345", "N", "15", "30", "NE", "60"}
	if got := rec.Texts(); !slices.Equal(got, want) {
		t.Errorf("labels = %q, want %q", got, want)
	}
	for _, op := range rec.Filter(canvas.OpText) {
		if op.Text == "N" && op.Pts[0].X != 120 {
			t.Errorf("N at x=%v, want 120", op.Pts[0].X)
		}
	}

	lines := rec.Filter(canvas.OpLine)
	if len(lines) != 26 {
		t.Fatalf("got %d lines, want 25 ticks and the needle", len(lines))
	}
	for _, op := range lines[:25] {
		if op.Pts[0].Y != 40 || op.Pts[1].Y != 50 {
			t.Errorf("tick spans %v..%v, want 40..50", op.Pts[0].Y, op.Pts[1].Y)
		}
	}
	needle := lines[25]
	if needle.Pts[0].X != 120 || needle.Pts[0].Y != 0 || needle.Pts[1].Y != 50 {
		t.Errorf("needle = %+v", needle.Pts)
	}
	if needle.Paint.Color != style.Red.NRGBA() || needle.Paint.StrokeWidth != 2 {
		t.Errorf("needle paint = %+v", needle.Paint)
	}
}

func TestYawTicksTop(t *testing.T) {
	y := NewYaw(style.DefaultYaw())
	y.SetSize(240, 50)
	y.SetTicksPosition(style.Top)
	rec := canvas.NewRecorder(240, 50)
	y.Draw(rec)

	tick := rec.Filter(canvas.OpLine)[0]
	if tick.Pts[0].Y != 0 || tick.Pts[1].Y != 10 {
		t.Errorf("top tick spans %v..%v, want 0..10", tick.Pts[0].Y, tick.Pts[1].Y)
	}
}

func TestYawWrapsLikeHeading(t *testing.T) {
	draw := func(v float64) []string {
		y := NewYaw(style.DefaultYaw())
		y.SetSize(240, 50)
		y.SetYaw(v)
		rec := canvas.NewRecorder(240, 50)
		y.Draw(rec)
		return rec.Texts()
	}
	if a, b := draw(362), draw(2); !slices.Equal(a, b) {
		t.Errorf("362 = %q, 2 = %q", a, b)
	}
}
