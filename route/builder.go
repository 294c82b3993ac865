// Package route builds a Route's ordered stop sequence and rail-segment
// list by walking a route relation's ordered membership (spec.md §4.3).
// Ported from Route.__init__ in original_source/subway_structure.py.
package route

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/subway-topology-validator/classifier"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

// roleStop / rolePlatform are the member roles that must resolve to a
// station-backed element (spec.md §4.3).
const (
	roleStop     = "stop"
	rolePlatform = "platform"
)

func isStopOrPlatformRole(role string) bool {
	return role == roleStop || role == rolePlatform
}

// Build walks relation's members and assembles a Route. It returns
// ok=false when the route must be abandoned (spec.md §7: a stop/platform
// member absent from the index) — the error is already recorded on city
// before Build returns.
func Build(city *model.City, relation *model.Element) (route *model.Route, ok bool) {
	route = &model.Route{
		ID:       relation.ID(),
		Element:  relation,
		Name:     relation.Tag("name"),
		Colour:   relation.Tag("colour"),
		Network:  classifier.NetworkOf(relation),
		Mode:     relation.Tag("route"),
		Circular: relation.Tag("circular") == "yes",
	}
	route.Ref = relation.Tag("ref")
	if route.Ref == "" {
		route.Ref = relation.Tag("name")
		city.Warn("Missing ref on a route", relation)
	}
	if relation.Tag("colour") == "" {
		city.Warn("Missing colour on a route", relation)
	}

	enoughStops := false

	for _, m := range relation.Members {
		k := m.ID()

		if stopAreas, isStation := city.Stations[k]; isStation {
			st := stopAreas[0]
			if len(stopAreas) > 1 {
				city.Err(fmt.Sprintf(
					"Ambigous station %s in route. Please use stop_position or split interchange stations",
					st.Name), relation)
			}
			if len(route.Stops) == 0 || route.Stops[len(route.Stops)-1] != st {
				switch {
				case enoughStops:
					if !containsArea(route.Stops, st) {
						city.Err(fmt.Sprintf(
							`Inconsistent platform-stop "%s" in route`, st.Name), relation)
					}
				case !containsArea(route.Stops, st) || route.Circular:
					route.Stops = append(route.Stops, st)
					if !st.Station.HasMode(route.Mode) {
						city.Warn(fmt.Sprintf("%s station %q in %s route",
							joinModes(st.Modes), st.Name, route.Mode), relation)
					}
				case len(route.Stops) > 0 && route.Stops[0] == st && !enoughStops:
					enoughStops = true
				default:
					city.Err(fmt.Sprintf(
						`Duplicate stop %q in route - check stop/platform order`, st.Name), relation)
				}
			}
			continue
		}

		el, found := city.Elements[k]
		if !found {
			if isStopOrPlatformRole(m.Role) {
				city.Err(fmt.Sprintf("%s %s %d for route relation is not in the dataset",
					m.Role, string(m.Kind), m.Ref), relation)
				return nil, false
			}
			continue
		}
		if el.Tags == nil {
			city.Err("Untagged object in a route", relation)
			continue
		}

		if isStopOrPlatformRole(m.Role) {
			if classifier.HasConstructionTag(el) {
				city.Err(fmt.Sprintf("An under construction %s in route", m.Role), el)
			} else if el.Tag("railway") == "station" || el.Tag("railway") == "halt" {
				city.Err(fmt.Sprintf("Missing station=%s on a %s", route.Mode, m.Role), el)
			} else {
				city.Err(fmt.Sprintf("%s %s %d is not connected to a station in route",
					m.Role, string(m.Kind), m.Ref), relation)
			}
		}

		if isRailway(el) {
			if len(el.Nodes) > 0 {
				route.Rails = append(route.Rails, model.RailSegment{
					Head: el.Nodes[0],
					Tail: el.Nodes[len(el.Nodes)-1],
				})
			} else {
				city.Err("Cannot find nodes in a railway", el)
			}
		}
	}

	if len(route.Stops) == 0 {
		city.Err("Route has no stops", relation)
	}

	for i := 1; i < len(route.Rails); i++ {
		cur, prev := route.Rails[i], route.Rails[i-1]
		connected := cur.Head == prev.Head || cur.Head == prev.Tail ||
			cur.Tail == prev.Head || cur.Tail == prev.Tail
		if !connected {
			city.Warn(fmt.Sprintf("Hole in route rails near node %d", cur.Head), relation)
			break
		}
	}

	return route, true
}

func containsArea(stops []*model.StopArea, st *model.StopArea) bool {
	for _, s := range stops {
		if s == st {
			return true
		}
	}
	return false
}

func isRailway(el *model.Element) bool {
	switch el.Tag("railway") {
	case "rail", "subway", "light_rail", "monorail":
		return true
	default:
		return false
	}
}

func joinModes(modes map[string]bool) string {
	names := make([]string, 0, len(modes))
	for m := range modes {
		names = append(names, m)
	}
	return strings.Join(names, "+")
}
