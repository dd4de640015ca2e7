package instrument

import "errors"

var (
	// ErrOutOfRange is returned when a value falls outside its configured
	// bounds. The widget keeps its previous value.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidRange is returned for a degenerate range: equal or inverted
	// bounds, or a non-positive scroll range.
	ErrInvalidRange = errors.New("invalid range")
)
