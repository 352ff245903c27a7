package input

import "github.com/hajimehoshi/ebiten/v2"

// Poller captures controller snapshots for the tracker. Slot is the
// 0-based cabinet controller index; slots with no controller behind them
// read as fully released.
type Poller interface {
	Poll(slot int) Snapshot
}

// GamepadPoller reads connected gamepads through ebiten's standard
// mapping. Slot n is the n-th connected gamepad id, so the first two pads
// plugged in become player 1 and player 2.
type GamepadPoller struct {
	ids []ebiten.GamepadID
}

func NewGamepadPoller() *GamepadPoller {
	return &GamepadPoller{}
}

func (p *GamepadPoller) Poll(slot int) Snapshot {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	if slot < 0 || slot >= len(p.ids) {
		return Snapshot{}
	}
	id := p.ids[slot]

	var snap Snapshot
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		snap.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, b)
	}
	// Raw axis values pass through; dead-zones are the caller's concern.
	snap.Stick = Vector{
		X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
	}
	return snap
}
