package input

import "github.com/hajimehoshi/ebiten/v2"

// Vector is a 2D analog stick position. Axis values follow ebiten's
// convention: -1..1 on each axis, Y positive downward.
type Vector struct {
	X float64
	Y float64
}

// Snapshot is the state of one controller at one poll instant: which
// physical buttons were held and where the left stick sat. Snapshots are
// plain values; the tracker replaces them wholesale and never mutates one
// in place.
type Snapshot struct {
	Buttons [ebiten.StandardGamepadButtonMax + 1]bool
	Stick   Vector
}

// Down reports whether the physical button was held at the poll instant.
// Buttons outside the standard mapping read as released.
func (s Snapshot) Down(b ebiten.StandardGamepadButton) bool {
	if b < 0 || int(b) >= len(s.Buttons) {
		return false
	}
	return s.Buttons[b]
}
