package instrument

import "fmt"

// Range is a closed interval of values.
type Range struct {
	Min, Max float64
}

// Validate rejects equal or inverted bounds.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %v must be below max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies within r, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp pins v to [r.Min, r.Max]. A NaN stays NaN.
func (r Range) Clamp(v float64) float64 {
	return min(max(v, r.Min), r.Max)
}

// Mid returns the centre of r.
func (r Range) Mid() float64 { return (r.Max + r.Min) / 2 }

func (r Range) check(what string, v float64) error {
	if !r.Contains(v) {
		return fmt.Errorf("%w: %s %v not within [%v, %v]", ErrOutOfRange, what, v, r.Min, r.Max)
	}
	return nil
}

// Normalize maps v from the external range value onto the internal range
// scale. It is the identity when both ranges are equal.
func Normalize(scale, value Range, v float64) (float64, error) {
	if scale.Min == scale.Max || value.Min == value.Max {
		return 0, fmt.Errorf("%w: max and min must differ", ErrInvalidRange)
	}
	return normalize(scale, value, v), nil
}

// Denormalize is the inverse of Normalize.
func Denormalize(scale, value Range, n float64) (float64, error) {
	if scale.Min == scale.Max || value.Min == value.Max {
		return 0, fmt.Errorf("%w: max and min must differ", ErrInvalidRange)
	}
	return denormalize(scale, value, n), nil
}

func normalize(scale, value Range, v float64) float64 {
	if scale == value {
		return v
	}
	return scale.Min + (v-value.Min)*(scale.Max-scale.Min)/(value.Max-value.Min)
}

func denormalize(scale, value Range, n float64) float64 {
	if scale == value {
		return n
	}
	return value.Min + (n-scale.Min)*(value.Max-value.Min)/(scale.Max-scale.Min)
}
