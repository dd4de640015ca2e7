package fontface

import (
	"math"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(goregular.TTF)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsBadFont(t *testing.T) {
	if _, err := New([]byte("not a font")); err == nil {
		t.Error("New accepted garbage")
	}
}

func TestFaceCached(t *testing.T) {
	c := newTestCache(t)
	a := c.Face(25)
	if b := c.Face(25); a != b {
		t.Error("second Face(25) built a new face")
	}
	if c.Face(DefaultSize) != c.fallback {
		t.Error("default face not reused")
	}
	if w25, w12 := font.MeasureString(a, "100"), font.MeasureString(c.Face(12), "100"); w25 <= w12 {
		t.Errorf("25pt width %v not wider than 12pt width %v", w25, w12)
	}
}

func TestFaceDegenerateSizes(t *testing.T) {
	c := newTestCache(t)
	one := c.Face(1)
	for _, size := range []float64{0, 0.5, -3, math.Inf(-1), math.NaN()} {
		if got := c.Face(size); got != one {
			t.Errorf("Face(%v) is not the 1pt face", size)
		}
	}
	if got := c.Face(math.Inf(1)); got != c.fallback {
		t.Error("Face(+Inf) is not the default face")
	}
}
