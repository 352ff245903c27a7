// Package layout describes where the cabinet's buttons and sticks sit on
// screen for the viewer. Layouts are display data only; the logical to
// physical button mapping is fixed in package input.
package layout

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cabinet/input"
)

// PlacementSpec positions one logical button on screen.
type PlacementSpec struct {
	Button string  `yaml:"button"`
	Label  string  `yaml:"label"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Logical resolves the placement's button name.
func (p PlacementSpec) Logical() (input.Button, bool) {
	return input.ParseButton(p.Button)
}

// PlayerSpec is one player's panel: button placements plus the stick
// rest position.
type PlayerSpec struct {
	Buttons []PlacementSpec `yaml:"buttons"`
	StickX  float64         `yaml:"stick_x"`
	StickY  float64         `yaml:"stick_y"`
}

// CabinetSpec is a full two-panel cabinet layout.
type CabinetSpec struct {
	Name    string       `yaml:"name"`
	Players []PlayerSpec `yaml:"players"`
}

// LoadSpec loads and validates a layout by name ("cabinet" resolves to
// cabinet.yaml, disk copy first, embedded fallback).
func LoadSpec(name string) (*CabinetSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", name, err)
	}

	var spec CabinetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("layout: unmarshal %s: %w", name, err)
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *CabinetSpec) validate() error {
	if len(s.Players) == 0 || len(s.Players) > input.PlayerCount {
		return fmt.Errorf("layout %s: expected 1..%d players, got %d", s.Name, input.PlayerCount, len(s.Players))
	}
	for pi, p := range s.Players {
		for _, b := range p.Buttons {
			if _, ok := b.Logical(); !ok {
				return fmt.Errorf("layout %s: player %d: unknown button %q", s.Name, pi+1, b.Button)
			}
		}
	}
	return nil
}
