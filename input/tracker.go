// Package input remaps physical gamepad buttons to the cabinet's logical
// button names for two players and tracks per-frame press, release, and
// hold transitions against a two-generation snapshot buffer.
package input

import "errors"

// ErrAdvanceConflict is returned when both Advance and AdvanceManaged are
// invoked on the same tracker. Exactly one path may own the frame advance
// for a tracker's lifetime; hitting this means two subsystems are wired to
// drive the same tracker.
var ErrAdvanceConflict = errors.New("input: tracker advanced by both the host loop and an update manager")

// PlayerCount is the number of cabinet players.
const PlayerCount = 2

type advanceOwner int

const (
	ownerNone advanceOwner = iota
	ownerHost
	ownerManaged
)

// Tracker holds the current and previous controller snapshots for both
// players and answers edge-detection queries against them. It is owned by
// the host frame loop and is not safe for concurrent use. Queries are pure
// reads; only Reset and the advance entry points mutate state.
type Tracker struct {
	poller   Poller
	current  [PlayerCount]Snapshot
	previous [PlayerCount]Snapshot
	owner    advanceOwner
}

// NewTracker seeds both generations from the poller so the first real
// frame reports no spurious edges.
func NewTracker(p Poller) *Tracker {
	t := &Tracker{poller: p}
	t.Reset()
	return t
}

// Reset re-seeds both generations from a fresh poll, so current equals
// previous. Calling it again simply re-seeds.
func (t *Tracker) Reset() {
	for i := range t.current {
		t.current[i] = t.poller.Poll(i)
		t.previous[i] = t.current[i]
	}
}

// Advance ages current into previous and repolls both controllers. The
// host frame loop calls it exactly once per frame. A tracker already
// driven through AdvanceManaged returns ErrAdvanceConflict and leaves its
// snapshots untouched.
func (t *Tracker) Advance() error {
	return t.advance(ownerHost)
}

// AdvanceManaged is the advance entry point for an external update
// manager (see package loop). It carries the same once-per-frame contract
// as Advance, and the same conflict rule: a tracker is advanced by the
// host or by a manager, never both.
func (t *Tracker) AdvanceManaged() error {
	return t.advance(ownerManaged)
}

func (t *Tracker) advance(by advanceOwner) error {
	if t.owner == ownerNone {
		t.owner = by
	} else if t.owner != by {
		return ErrAdvanceConflict
	}
	for i := range t.current {
		t.previous[i] = t.current[i]
		t.current[i] = t.poller.Poll(i)
	}
	return nil
}

func (t *Tracker) slot(player int) (int, bool) {
	if player < 1 || player > PlayerCount {
		return 0, false
	}
	return player - 1, true
}

// IsDown reports whether the player holds the button in the current
// frame. Players outside 1..2 read as "no input", not an error.
func (t *Tracker) IsDown(player int, b Button) bool {
	i, ok := t.slot(player)
	return ok && t.current[i].Down(b.Physical())
}

// WasDown reports whether the player held the button in the previous
// frame.
func (t *Tracker) WasDown(player int, b Button) bool {
	i, ok := t.slot(player)
	return ok && t.previous[i].Down(b.Physical())
}

// Pressed reports a rising edge: down now, up last frame.
func (t *Tracker) Pressed(player int, b Button) bool {
	return t.IsDown(player, b) && !t.WasDown(player, b)
}

// Released reports a falling edge: up now, down last frame.
func (t *Tracker) Released(player int, b Button) bool {
	return !t.IsDown(player, b) && t.WasDown(player, b)
}

// Held reports a sustained press: down now and down last frame. Held and
// Pressed never overlap; the first down frame is Pressed only.
func (t *Tracker) Held(player int, b Button) bool {
	return t.IsDown(player, b) && t.WasDown(player, b)
}

// Stick returns the player's current stick position, or the zero vector
// for players outside 1..2.
func (t *Tracker) Stick(player int) Vector {
	i, ok := t.slot(player)
	if !ok {
		return Vector{}
	}
	return t.current[i].Stick
}

// States returns both players' current snapshots by value.
func (t *Tracker) States() (Snapshot, Snapshot) {
	return t.current[0], t.current[1]
}
