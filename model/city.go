package model

import (
	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/report"
)

// Expectations is one row of the city expectations table (spec.md §6
// "City expectations record").
type Expectations struct {
	Name              string
	Country           string
	Continent         string
	NumStations       int
	NumLines          int
	NumLightLines     int
	NumInterchanges   int
	BBox              geo.Bound
	HasBBox           bool
	Networks          map[string]bool
}

// City holds one city's expectations, its bound elements, and the
// reconstructed topology built from them (spec.md §3 City).
type City struct {
	Expectations Expectations

	// Elements holds every element bound to this city, keyed by canonical
	// id, in insertion order via Order (spec.md §9: iteration-order
	// determinism is required for "first non-null wins" rules).
	Elements map[ID]*Element
	Order    []ID

	// Stations maps every element id a StopArea spans to the list of
	// StopAreas it belongs to (spec_py: self.stations).
	Stations map[ID][]*StopArea

	// RouteMasters is keyed by the RouteMaster aggregation key: either the
	// explicit route_master relation's canonical ID, or the route's ref.
	RouteMasters map[string]*RouteMaster

	StationIDs        map[ID]bool
	StopsAndPlatforms map[ID]bool
	Transfers         []Transfer

	// RouteMasterOf maps a route relation's id to the explicit
	// route_master relation that lists it as a member (spec.md §4.4/§4.5).
	RouteMasterOf map[ID]*Element

	// StopAreaMembership maps an element id to every stop_area relation
	// that references it (spec.md §4.2/§4.5).
	StopAreaMembership map[ID][]*Element

	Collector *report.Collector

	// Populated by cityvalidator.Validate.
	FoundStations         int
	FoundLines            int
	FoundLightLines       int
	FoundInterchanges     int
	FoundNetworks         int
	UnusedStations        int
	UnusedEntrances       int
	EntrancesNotInStopArea int
}

// NewCity creates an empty City for the given expectations.
func NewCity(exp Expectations) *City {
	return &City{
		Expectations:      exp,
		Elements:          make(map[ID]*Element),
		Stations:          make(map[ID][]*StopArea),
		RouteMasters:      make(map[string]*RouteMaster),
		StationIDs:         make(map[ID]bool),
		StopsAndPlatforms:  make(map[ID]bool),
		RouteMasterOf:      make(map[ID]*Element),
		StopAreaMembership: make(map[ID][]*Element),
		Collector:          report.NewCollector(),
	}
}

// Add binds an element to this city, preserving the order it arrived in,
// and — for route_master and stop_area relations — records the
// cross-references spec.md §4.5 requires for later duplicate detection
// (ported from subway_structure.py's City.add).
func (c *City) Add(el *Element) {
	id := el.ID()
	if _, exists := c.Elements[id]; !exists {
		c.Order = append(c.Order, id)
	}
	c.Elements[id] = el

	if el.Kind != KindRelation {
		return
	}
	switch {
	case el.Tag("type") == "route_master":
		for _, m := range el.Members {
			if m.Kind != KindRelation {
				continue
			}
			mid := m.ID()
			if _, dup := c.RouteMasterOf[mid]; dup {
				c.Err("Route in two route_masters", el)
				continue
			}
			c.RouteMasterOf[mid] = el
		}
	case el.Tag("public_transport") == "stop_area":
		warnedOnce := false
		for _, m := range el.Members {
			mid := m.ID()
			already := false
			for _, existing := range c.StopAreaMembership[mid] {
				if existing == el {
					already = true
					break
				}
			}
			if already {
				if !warnedOnce {
					c.Warn("Duplicate element in a stop area", el)
					warnedOnce = true
				}
				continue
			}
			c.StopAreaMembership[mid] = append(c.StopAreaMembership[mid], el)
		}
	}
}

// Subject builds a report.Subject attribution from an element, the way
// subway_structure.py's City.log_message reads type/id/name-or-ref.
func Subject(el *Element) *report.Subject {
	if el == nil {
		return nil
	}
	name := el.Tag("name")
	if name == "" {
		name = el.Tag("ref")
	}
	return &report.Subject{Type: string(el.Kind), ID: el.Num, Name: name}
}

// Warn records a warning, optionally attributed to an element.
func (c *City) Warn(text string, el *Element) {
	c.Collector.Warn(text, Subject(el))
}

// Err records an error, optionally attributed to an element.
func (c *City) Err(text string, el *Element) {
	c.Collector.Err(text, Subject(el))
}

// IsGood reports whether this city's validation has recorded no errors.
func (c *City) IsGood() bool {
	return c.Collector.IsGood()
}
