package style

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Handedness is the side of a scroller that carries the pointer.
type Handedness int

const (
	// Left places the scale on the right edge with the arrow pointing right.
	Left Handedness = iota
	// Right mirrors Left.
	Right
)

func (h Handedness) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

func (h *Handedness) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "left":
		*h = Left
	case "right":
		*h = Right
	default:
		return fmt.Errorf("line %d: unknown handedness %q", value.Line, s)
	}
	return nil
}

func (h Handedness) MarshalYAML() (any, error) { return h.String(), nil }

// TickPosition is the edge of the yaw strip that carries the ticks.
type TickPosition int

const (
	Bottom TickPosition = iota
	Top
)

func (t TickPosition) String() string {
	if t == Top {
		return "top"
	}
	return "bottom"
}

func (t *TickPosition) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "bottom":
		*t = Bottom
	case "top":
		*t = Top
	default:
		return fmt.Errorf("line %d: unknown ticks position %q", value.Line, s)
	}
	return nil
}

func (t TickPosition) MarshalYAML() (any, error) { return t.String(), nil }
