package main

import (
	"fmt"
	"image/color"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/render/ggcanvas"
	"elrs-hud/internal/style"
)

var widgetNames = []string{"hud", "pitchroll", "yaw", "speed", "altitude"}

// buildWidget creates the named widget from st and loads tm into it.
func buildWidget(name string, st style.File, tm instrument.Telemetry, enabled bool) (instrument.Widget, error) {
	switch name {
	case "hud":
		hs := st.HUD
		hs.Enabled = enabled
		h := instrument.NewHUD(hs)
		h.SetTelemetry(tm)
		return h, nil
	case "pitchroll":
		pr, err := instrument.NewPitchRoll(st.PitchRoll)
		if err != nil {
			return nil, err
		}
		if err := pr.SetPitchRoll(tm.Pitch, tm.Roll); err != nil {
			return nil, err
		}
		return pr, nil
	case "yaw":
		y := instrument.NewYaw(st.Yaw)
		y.SetYaw(tm.Yaw)
		return y, nil
	case "speed", "altitude":
		ss, v := st.Speed, tm.Airspeed
		if name == "altitude" {
			ss, v = st.Altitude, tm.Altitude
		}
		s, err := instrument.NewScroller(ss)
		if err != nil {
			return nil, err
		}
		s.SetValue(v)
		if name == "speed" && tm.TargetSpeed != 0 {
			s.SetTarget(tm.TargetSpeed)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown widget %q (want one of %v)", name, widgetNames)
}

// snapshot renders w at width x height over a dark background.
func snapshot(w instrument.Widget, width, height int) (*ggcanvas.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	cv, err := ggcanvas.New(width, height)
	if err != nil {
		return nil, err
	}
	cv.Clear(color.NRGBA{R: 30, G: 30, B: 30, A: 255})
	w.SetSize(width, height)
	w.Draw(cv)
	return cv, nil
}
