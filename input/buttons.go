package input

import "github.com/hajimehoshi/ebiten/v2"

// Button is a cabinet-facing logical button name. The cabinet has four
// main buttons and four side buttons per player, a menu button, and a
// four-direction stick.
type Button int

const (
	A1 Button = iota
	A2
	A3
	A4
	B1
	B2
	B3
	B4
	Menu
	StickUp
	StickDown
	StickLeft
	StickRight

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	A1:         "A1",
	A2:         "A2",
	A3:         "A3",
	A4:         "A4",
	B1:         "B1",
	B2:         "B2",
	B3:         "B3",
	B4:         "B4",
	Menu:       "Menu",
	StickUp:    "StickUp",
	StickDown:  "StickDown",
	StickLeft:  "StickLeft",
	StickRight: "StickRight",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "Unknown"
	}
	return buttonNames[b]
}

// ParseButton resolves a button name as it appears in layout files.
func ParseButton(name string) (Button, bool) {
	for b, n := range buttonNames {
		if n == name {
			return Button(b), true
		}
	}
	return 0, false
}

// physical binds each logical button onto ebiten's standard gamepad
// mapping. The table is fixed; cabinets wire their panels to match it.
var physical = [ButtonCount]ebiten.StandardGamepadButton{
	A1:         ebiten.StandardGamepadButtonRightBottom,
	A2:         ebiten.StandardGamepadButtonRightRight,
	A3:         ebiten.StandardGamepadButtonRightLeft,
	A4:         ebiten.StandardGamepadButtonRightTop,
	B1:         ebiten.StandardGamepadButtonFrontTopLeft,
	B2:         ebiten.StandardGamepadButtonFrontTopRight,
	B3:         ebiten.StandardGamepadButtonFrontBottomLeft,
	B4:         ebiten.StandardGamepadButtonFrontBottomRight,
	Menu:       ebiten.StandardGamepadButtonCenterRight,
	StickUp:    ebiten.StandardGamepadButtonLeftTop,
	StickDown:  ebiten.StandardGamepadButtonLeftBottom,
	StickLeft:  ebiten.StandardGamepadButtonLeftLeft,
	StickRight: ebiten.StandardGamepadButtonLeftRight,
}

// Physical returns the standard gamepad button b is bound to, or -1 for
// values outside the logical range.
func (b Button) Physical() ebiten.StandardGamepadButton {
	if b < 0 || b >= ButtonCount {
		return -1
	}
	return physical[b]
}

// Buttons returns every logical button in declaration order.
func Buttons() []Button {
	all := make([]Button, 0, ButtonCount)
	for b := Button(0); b < ButtonCount; b++ {
		all = append(all, b)
	}
	return all
}
