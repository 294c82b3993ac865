// Package routemaster aggregates Routes into RouteMasters (lines) under
// the identity/conflict rules of spec.md §4.4. Ported from RouteMaster in
// original_source/subway_structure.py, with the mode-backfill REDESIGN
// from SPEC_FULL.md §5.1.
package routemaster

import (
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

// New creates a RouteMaster, explicit (backed by a route_master relation)
// or implicit (keyed by a route's ref).
func New(master *model.Element) *model.RouteMaster {
	rm := &model.RouteMaster{HasExplicitMaster: master != nil, MasterElement: master}
	if master != nil {
		rm.ID = master.ID()
		rm.Ref = master.Tag("ref")
		if rm.Ref == "" {
			rm.Ref = master.Tag("name")
		}
		rm.Colour = master.Tag("colour")
		rm.Network = networkOf(master)
		rm.Mode = master.Tag("route_master")
		rm.Name = master.Tag("name")
	}
	return rm
}

func networkOf(el *model.Element) string {
	if n := el.Tag("network"); n != "" {
		return n
	}
	return el.Tag("operator")
}

// Add folds route into master, applying spec.md §4.4's conflict rules.
// Returns false when the route is rejected (mode conflict) — the route is
// not appended to master.Routes.
func Add(city *model.City, master *model.RouteMaster, route *model.Route) bool {
	if master.Network == "" {
		master.Network = route.Network
	} else if route.Network != "" && route.Network != master.Network {
		city.Err(`Route has different network ("`+route.Network+`") from master "`+master.Network+`"`, route.Element)
	}

	if master.Colour == "" {
		master.Colour = route.Colour
	} else if route.Colour != "" && route.Colour != master.Colour {
		city.Warn(`Route "`+route.Colour+`" has different colour from master "`+master.Colour+`"`, route.Element)
	}

	if master.Ref == "" {
		master.Ref = route.Ref
	} else if route.Ref != master.Ref {
		city.Warn(`Route "`+route.Ref+`" has different ref from master "`+master.Ref+`"`, route.Element)
	}

	if master.Name == "" {
		master.Name = route.Name
	}

	if master.Mode == "" {
		// REDESIGN (SPEC_FULL.md §5.1): backfill mode from the first member
		// route when the route_master relation is missing its
		// route_master=<mode> tag, so the mode-consistency invariant holds
		// unconditionally instead of silently never firing.
		master.Mode = route.Mode
	} else if route.Mode != master.Mode {
		city.Err("Incompatible PT mode: master has "+master.Mode+" and route has "+route.Mode, route.Element)
		return false
	}

	if !master.HasExplicitMaster && (master.ID == "" || master.ID > route.ID) {
		master.ID = route.ID
	}

	master.Routes = append(master.Routes, route)
	if master.Best == nil || route.Len() > master.Best.Len() {
		master.Best = route
	}
	return true
}
