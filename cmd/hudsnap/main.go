// Command hudsnap renders a single instrument offscreen and writes it as a
// PNG.
package main

import (
	"bytes"
	"flag"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/style"
)

func main() {
	widget := flag.String("widget", "hud", "Widget to render: hud, pitchroll, yaw, speed, altitude")
	width := flag.Int("width", 800, "Image width")
	height := flag.Int("height", 480, "Image height")
	stylePath := flag.String("style", "", "Style YAML file (defaults when empty)")
	out := flag.String("o", "hud.png", "Output PNG path")
	enabled := flag.Bool("enabled", true, "Render the HUD in its enabled colours")
	verbose := flag.Bool("v", false, "Debug logging")

	var tm instrument.Telemetry
	flag.Float64Var(&tm.Pitch, "pitch", 0, "Pitch in degrees")
	flag.Float64Var(&tm.Roll, "roll", 0, "Roll in degrees")
	flag.Float64Var(&tm.Yaw, "yaw", 0, "Heading in degrees")
	flag.Float64Var(&tm.Airspeed, "speed", 60, "Airspeed")
	flag.Float64Var(&tm.TargetSpeed, "target", 0, "Target airspeed, 0 for none")
	flag.Float64Var(&tm.VerticalSpeed, "vs", 0, "Vertical speed")
	flag.Float64Var(&tm.Altitude, "alt", 100, "Altitude")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	if err := run(*widget, *stylePath, *out, *width, *height, *enabled, tm); err != nil {
		slog.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(name, stylePath, out string, width, height int, enabled bool, tm instrument.Telemetry) error {
	st := style.Default()
	if stylePath != "" {
		var err error
		if st, err = style.Load(stylePath); err != nil {
			return err
		}
		slog.Debug("loaded style", "path", stylePath)
	}

	w, err := buildWidget(name, st, tm, enabled)
	if err != nil {
		return err
	}
	cv, err := snapshot(w, width, height)
	if err != nil {
		return err
	}
	defer cv.Close()

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	slog.Info("wrote snapshot", "widget", name, "path", out,
		"size", humanize.Bytes(uint64(buf.Len())))
	return nil
}
