// Package loop is a minimal per-frame update manager: systems registered
// in order, run once per tick by the host.
package loop

import "github.com/milk9111/cabinet/input"

// System is one unit of per-frame work.
type System interface {
	Update() error
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order. The first error aborts the tick and
// is returned to the host.
func (s *Scheduler) Update() error {
	for _, system := range s.systems {
		if err := system.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// TrackerSystem advances an input tracker at its place in the tick order.
// Register it first so every later system sees the new frame's edges. A
// host that also calls Tracker.Advance directly gets
// input.ErrAdvanceConflict out of the scheduler.
type TrackerSystem struct {
	tracker *input.Tracker
}

func NewTrackerSystem(t *input.Tracker) *TrackerSystem {
	return &TrackerSystem{tracker: t}
}

func (s *TrackerSystem) Update() error {
	return s.tracker.AdvanceManaged()
}
