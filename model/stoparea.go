package model

import "github.com/theoremus-urban-solutions/subway-topology-validator/geo"

// StopArea represents one physical station hall (spec.md §3 StopArea): a
// Station plus the platforms/stop-positions, entrances and exits that
// belong to it, either via an explicit stop_area relation or by spatial
// proximity.
type StopArea struct {
	ID ID

	// Relation is the backing stop_area relation, nil for implicit
	// (proximity-based) construction.
	Relation *Element
	Station  *Station

	StopsAndPlatforms map[ID]bool
	Entrances         map[ID]bool
	Exits             map[ID]bool

	Name    string
	IntName string
	Colour  string
	Modes   map[string]bool

	Center  geo.Point
	Centers map[ID]geo.Point // per-element center, for every element in GetElements
}

// GetElements returns the set of every element id this StopArea spans:
// itself, its station, and every platform/stop/entrance/exit.
func (sa *StopArea) GetElements() map[ID]bool {
	result := map[ID]bool{sa.ID: true, sa.Station.ID: true}
	for id := range sa.Entrances {
		result[id] = true
	}
	for id := range sa.Exits {
		result[id] = true
	}
	for id := range sa.StopsAndPlatforms {
		result[id] = true
	}
	return result
}
