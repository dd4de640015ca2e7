package instrument

import (
	"math"
	"strconv"
)

// tickClass is the visual weight of a heading tick.
type tickClass int

const (
	tickPlain tickClass = iota
	tickNumeric
	tickCompass
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// headingTick is one candidate tick of a heading strip.
type headingTick struct {
	// Offset is the tick's angular distance from the centre heading.
	Offset float64
	// Angle is the tick's heading in [0, 360).
	Angle int
	Class tickClass
	Label string
}

// headingTicks calls fn for every 5 degree tick within fov degrees centred
// on yaw, left to right. Candidates are snapped to whole multiples of 5
// before they are classified.
func headingTicks(yaw, fov float64, fn func(headingTick)) {
	base := 5 * math.Floor(yaw/5)
	half := fov / 2
	n := int(fov / 5)
	for k := 0; k <= n; k++ {
		angle := base - half + float64(5*k)
		work := wrapDegrees(5 * math.Round(angle/5))
		class, label := classifyHeading(work)
		fn(headingTick{Offset: angle - yaw, Angle: work, Class: class, Label: label})
	}
}

// wrapDegrees folds a whole angle into [0, 360).
func wrapDegrees(a float64) int {
	w := int(a) % 360
	if w < 0 {
		w += 360
	}
	return w
}

func classifyHeading(a int) (tickClass, string) {
	switch {
	case a%45 == 0:
		return tickCompass, compassPoints[a/45]
	case a%15 == 0:
		return tickNumeric, strconv.Itoa(a)
	}
	return tickPlain, ""
}
