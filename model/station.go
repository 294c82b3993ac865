package model

import "github.com/theoremus-urban-solutions/subway-topology-validator/geo"

// Station is a single railway=station|halt node (spec.md §3 Station).
// Built once and never mutated (spec.md §9 Design Notes); may back
// multiple StopAreas, one per stop-area relation referencing it.
type Station struct {
	ID      ID
	Element *Element
	Modes   map[string]bool
	Name    string
	IntName string
	Colour  string
	Center  geo.Point
}

// HasMode reports whether m is one of this station's modes.
func (s *Station) HasMode(m string) bool {
	return s.Modes[m]
}
