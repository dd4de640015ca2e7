package ggcanvas

import (
	"image"
	"image/color"
	"testing"

	"elrs-hud/internal/instrument"
	"elrs-hud/internal/style"
)

func render(t *testing.T, enabled bool) image.Image {
	t.Helper()
	c, err := New(400, 300)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Clear(color.Black)

	hud := instrument.NewHUD(style.DefaultHUD())
	hud.SetEnabled(enabled)
	hud.SetSize(400, 300)
	hud.Draw(c)
	return c.Image()
}

func rgb(img image.Image, x, y int) (r, g, b uint32) {
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestHUDHorizon(t *testing.T) {
	img := render(t, true)

	// Between the speed tape and the ladder, clear of the roll arc.
	if r, g, b := rgb(img, 120, 120); !(b > g && b > r) {
		t.Errorf("sky pixel = %d,%d,%d, want blue dominant", r, g, b)
	}
	if r, g, b := rgb(img, 120, 230); !(g > b && g > r) {
		t.Errorf("ground pixel = %d,%d,%d, want green dominant", r, g, b)
	}
	// Top bar, between two heading labels.
	if r, g, b := rgb(img, 110, 10); r != 0 || g != 0 || b != 0 {
		t.Errorf("top bar pixel = %d,%d,%d, want black", r, g, b)
	}
}

func TestHUDDisabledIsGrey(t *testing.T) {
	img := render(t, false)
	for _, y := range []int{120, 230} {
		r, g, b := rgb(img, 120, y)
		if r != g || g != b || r == 0 {
			t.Errorf("pixel at y=%d = %d,%d,%d, want grey", y, r, g, b)
		}
	}
	sky, _, _ := rgb(img, 120, 120)
	ground, _, _ := rgb(img, 120, 230)
	if sky <= ground {
		t.Errorf("sky %d not lighter than ground %d", sky, ground)
	}
}

func TestRestoreUnbalanced(t *testing.T) {
	c, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Restore()
	c.Save()
	c.Restore()
	c.Restore()
	if c.depth != 0 {
		t.Errorf("depth = %d", c.depth)
	}
}
