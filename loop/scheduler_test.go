package loop

import (
	"errors"
	"testing"

	"github.com/milk9111/cabinet/input"
)

type funcSystem func() error

func (f funcSystem) Update() error { return f() }

type stubPoller struct {
	snaps [input.PlayerCount]input.Snapshot
}

func (p *stubPoller) Poll(slot int) input.Snapshot {
	if slot < 0 || slot >= len(p.snaps) {
		return input.Snapshot{}
	}
	return p.snaps[slot]
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	record := func(name string) funcSystem {
		return func() error {
			order = append(order, name)
			return nil
		}
	}

	s := NewScheduler(record("a"), record("b"))
	s.Add(record("c"))
	s.Add(nil)

	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("systems ran out of order: %v", order)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

func TestSchedulerStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var ran []string

	s := NewScheduler(
		funcSystem(func() error { ran = append(ran, "first"); return nil }),
		funcSystem(func() error { return boom }),
		funcSystem(func() error { ran = append(ran, "after"); return nil }),
	)

	if err := s.Update(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("systems after the error should not run: %v", ran)
	}
}

func TestTrackerSystemAdvances(t *testing.T) {
	p := &stubPoller{}
	tr := input.NewTracker(p)

	s := NewScheduler(NewTrackerSystem(tr))

	var down input.Snapshot
	down.Buttons[input.A1.Physical()] = true
	p.snaps[0] = down

	if err := s.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !tr.Pressed(1, input.A1) {
		t.Fatalf("expected the managed tick to surface the press")
	}
}

func TestTrackerSystemConflictsWithHostAdvance(t *testing.T) {
	p := &stubPoller{}
	tr := input.NewTracker(p)
	s := NewScheduler(NewTrackerSystem(tr))

	if err := tr.Advance(); err != nil {
		t.Fatalf("host advance: %v", err)
	}
	if err := s.Update(); !errors.Is(err, input.ErrAdvanceConflict) {
		t.Fatalf("expected ErrAdvanceConflict, got %v", err)
	}
}
