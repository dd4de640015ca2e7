package main

import (
	"errors"
	"image/color"
	"testing"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/style"
)

func TestBuildWidget(t *testing.T) {
	tm := instrument.Telemetry{Pitch: 2, Roll: 10, Yaw: 90, Airspeed: 55, TargetSpeed: 70, Altitude: 120}
	for _, name := range widgetNames {
		t.Run(name, func(t *testing.T) {
			w, err := buildWidget(name, style.Default(), tm, true)
			if err != nil {
				t.Fatalf("buildWidget(%q): %v", name, err)
			}
			cv, err := snapshot(w, 200, 150)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			defer cv.Close()
			if b := cv.Image().Bounds(); b.Dx() != 200 || b.Dy() != 150 {
				t.Errorf("bounds = %v", b)
			}
			if w.Dirty() {
				t.Error("widget still dirty after snapshot")
			}
		})
	}
}

func TestBuildWidgetErrors(t *testing.T) {
	if _, err := buildWidget("gauge", style.Default(), instrument.Telemetry{}, true); err == nil {
		t.Error("unknown widget accepted")
	}
	_, err := buildWidget("pitchroll", style.Default(), instrument.Telemetry{Pitch: 40}, true)
	if !errors.Is(err, instrument.ErrOutOfRange) {
		t.Errorf("pitch 40: err = %v, want ErrOutOfRange", err)
	}
}

func TestSnapshotInvalidSize(t *testing.T) {
	w, err := buildWidget("yaw", style.Default(), instrument.Telemetry{}, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := snapshot(w, 0, 50); err == nil {
		t.Error("zero width accepted")
	}
}

func TestSnapshotBackground(t *testing.T) {
	w, err := buildWidget("yaw", style.Default(), instrument.Telemetry{}, true)
	if err != nil {
		t.Fatal(err)
	}
	cv, err := snapshot(w, 240, 50)
	if err != nil {
		t.Fatal(err)
	}
	defer cv.Close()
	// Above the labels, between two ticks.
	r, g, b, _ := cv.Image().At(65, 3).RGBA()
	want := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	wr, wg, wb, _ := want.RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("background = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
