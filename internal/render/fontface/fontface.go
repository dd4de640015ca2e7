// Package fontface caches sized faces of a single OpenType font.
package fontface

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultSize is the size of the face built up front. It also stands in for
// sizes that cannot be rendered.
const DefaultSize = 12

// Cache hands out faces of one font by point size.
type Cache struct {
	font     *opentype.Font
	faces    map[float64]font.Face
	fallback font.Face
}

// New parses ttf and builds its DefaultSize face.
func New(ttf []byte) (*Cache, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	c := &Cache{font: f, faces: make(map[float64]font.Face)}
	face, err := c.newFace(DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("face %v: %w", DefaultSize, err)
	}
	c.faces[DefaultSize] = face
	c.fallback = face
	return c, nil
}

// Face returns the face of the given size. Sizes below one point, NaN
// included, are drawn at one point. Infinite sizes and faces that fail to
// build get the DefaultSize face.
func (c *Cache) Face(size float64) font.Face {
	if !(size >= 1) {
		size = 1
	}
	if math.IsInf(size, 1) {
		return c.fallback
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f, err := c.newFace(size)
	if err != nil {
		return c.fallback
	}
	c.faces[size] = f
	return f
}

func (c *Cache) newFace(size float64) (font.Face, error) {
	return opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
