package viewport

// Point is a position in screen space, in the units the pointer reports.
type Point struct {
	X, Y float64
}

// Size is a window size in the same units as Point.
type Size struct {
	W, H float64
}

// Key identifies a keyboard key as far as the controller cares.
type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyP
)

// Button identifies a mouse button.
type Button int

const (
	ButtonOther Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Wheel notch values reported on the vertical scroll axis.
const (
	ScrollUp   = 1.0
	ScrollDown = -1.0
)

// Bindings selects which key pauses and which buttons paint, erase and pan.
type Bindings struct {
	Pause Key
	Paint Button
	Erase Button
	Pan   Button
}

// DefaultBindings pauses on space, paints with left, erases with right and
// pans with the middle button.
func DefaultBindings() Bindings {
	return Bindings{
		Pause: KeySpace,
		Paint: ButtonLeft,
		Erase: ButtonRight,
		Pan:   ButtonMiddle,
	}
}
