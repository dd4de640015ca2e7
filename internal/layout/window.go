package layout

// Window remembers the host surface size so a host lays its widgets out once
// per size change instead of once per frame.
type Window struct {
	width, height int
	sized         bool
}

// Resize records the size and reports whether the widgets need laying out:
// on the first call and whenever the size differs from the last one.
func (w *Window) Resize(width, height int) bool {
	if w.sized && width == w.width && height == w.height {
		return false
	}
	w.width, w.height, w.sized = width, height, true
	return true
}

// Size returns the last recorded size.
func (w *Window) Size() (width, height int) { return w.width, w.height }
