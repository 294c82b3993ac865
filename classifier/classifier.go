// Package classifier implements the pure tag predicates spec.md §4.1
// describes: no state, no I/O, dispatch by tag-string lookup rather than
// runtime type. Ported from the @staticmethod predicates on Station,
// StopArea and Route in original_source/subway_structure.py.
package classifier

import "github.com/theoremus-urban-solutions/subway-topology-validator/model"

// Modes are the rail modes this engine reconstructs (spec.md §6 MODES).
var Modes = []string{"subway", "light_rail", "monorail"}

// ConstructionKeys mark a feature as not yet in service (spec.md §6
// CONSTRUCTION_KEYS).
var ConstructionKeys = []string{"construction", "proposed", "construction:railway", "proposed:railway"}

// HasConstructionTag reports whether any construction key is present.
func HasConstructionTag(e *model.Element) bool {
	for _, k := range ConstructionKeys {
		if e.HasTag(k) {
			return true
		}
	}
	return false
}

func isMode(m string) bool {
	for _, mode := range Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// ModesOf returns the derived mode set of an element: the union of
// tags.station (if set) and every mode tagged "yes" (spec.md §3 Station).
func ModesOf(e *model.Element) map[string]bool {
	modes := make(map[string]bool)
	if m := e.Tag("station"); m != "" {
		modes[m] = true
	}
	for _, m := range Modes {
		if e.Tag(m) == "yes" {
			modes[m] = true
		}
	}
	return modes
}

func modesIntersectKnown(modes map[string]bool) bool {
	for m := range modes {
		if isMode(m) {
			return true
		}
	}
	return false
}

// IsStation reports whether e is a usable subway/halt station node
// (spec.md §4.1).
func IsStation(e *model.Element) bool {
	railway := e.Tag("railway")
	if railway != "station" && railway != "halt" {
		return false
	}
	if HasConstructionTag(e) {
		return false
	}
	return modesIntersectKnown(ModesOf(e))
}

// IsStopOrPlatform reports whether e is a platform or stop position
// (spec.md §4.1).
func IsStopOrPlatform(e *model.Element) bool {
	if e.Tag("railway") == "platform" {
		return true
	}
	pt := e.Tag("public_transport")
	return pt == "platform" || pt == "stop_position"
}

// IsSubwayEntrance reports whether e is a subway_entrance feature.
func IsSubwayEntrance(e *model.Element) bool {
	return e.Tag("railway") == "subway_entrance"
}

// IsRoute reports whether e is a route relation (spec.md §4.1).
func IsRoute(e *model.Element) bool {
	if e.Kind != model.KindRelation || e.Tag("type") != "route" {
		return false
	}
	if len(e.Members) == 0 {
		return false
	}
	if !isMode(e.Tag("route")) {
		return false
	}
	if HasConstructionTag(e) {
		return false
	}
	return e.Tag("ref") != "" || e.Tag("name") != ""
}

// IsRouteMaster reports whether e is a route_master relation.
func IsRouteMaster(e *model.Element) bool {
	return e.Kind == model.KindRelation && e.Tag("type") == "route_master" && len(e.Members) > 0
}

// IsStopArea reports whether e is a public_transport=stop_area relation.
func IsStopArea(e *model.Element) bool {
	return e.Kind == model.KindRelation && e.Tag("public_transport") == "stop_area"
}

// IsStopAreaGroup reports whether e is a public_transport=stop_area_group
// relation.
func IsStopAreaGroup(e *model.Element) bool {
	return e.Kind == model.KindRelation && e.Tag("public_transport") == "stop_area_group"
}

// NetworkOf returns tags.network, falling back to tags.operator, or "" if
// neither is present (spec.md §4.1 network-of).
func NetworkOf(e *model.Element) string {
	if n := e.Tag("network"); n != "" {
		return n
	}
	return e.Tag("operator")
}
