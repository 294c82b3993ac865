package model

// RailSegment is the (first, last) node id pair of one railway way that
// belongs to a route, used for the connectivity check in spec.md §4.3.
type RailSegment struct {
	Head int64
	Tail int64
}

// Route is a single direction/variant of a line (spec.md §3 Route).
type Route struct {
	ID       ID
	Element  *Element
	Ref      string
	Name     string
	Colour   string
	Network  string
	Mode     string
	Circular bool

	// Stops is the ordered, distinct stop sequence — StopAreas, not bare
	// Stations, since a route walks stop_area identity (the same Station
	// can back more than one StopArea). Exported as a plain slice rather
	// than an indexing operator — see SPEC_FULL.md §5.3 on the Python
	// original's __get__ open question.
	Stops []*StopArea
	Rails []RailSegment
}

// Len returns the number of stops in the route.
func (r *Route) Len() int {
	return len(r.Stops)
}
