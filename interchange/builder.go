// Package interchange builds per-city Transfers from stop_area_group
// relations (spec.md §4.5 Transfer), and filters them down to the
// StopAreas actually reached by a built route. Ported from
// City.make_transfer and the "filter transfers" step of
// City.extract_routes in original_source/subway_structure.py.
package interchange

import "github.com/theoremus-urban-solutions/subway-topology-validator/model"

// Build scans city's elements for stop_area_group relations and records a
// Transfer for each one whose members resolve to more than one distinct
// StopArea. Must run after city.Stations has been populated (station/
// stop-area construction has completed).
func Build(city *model.City) {
	for _, id := range city.Order {
		el := city.Elements[id]
		if el.Kind != model.KindRelation || el.Tag("public_transport") != "stop_area_group" {
			continue
		}
		if t := makeTransfer(city, el); t.Len() > 1 {
			city.Transfers = append(city.Transfers, t)
		}
	}
}

func makeTransfer(city *model.City, stopAreaGroup *model.Element) model.Transfer {
	seen := make(map[model.ID]bool)
	var areas []*model.StopArea
	for _, m := range stopAreaGroup.Members {
		k := m.ID()
		stopAreas, ok := city.Stations[k]
		if !ok || len(stopAreas) == 0 {
			continue
		}
		sa := stopAreas[0]
		if seen[sa.ID] {
			continue
		}
		seen[sa.ID] = true
		areas = append(areas, sa)
	}
	return model.NewTransfer(areas)
}

// FilterUsed keeps only the StopAreas of every city.Transfers entry that
// belong to a stop actually visited by a built route, and drops any
// Transfer left with fewer than two StopAreas as a result. A station never
// reached by a route contributes nothing to the interchange count.
func FilterUsed(city *model.City) {
	used := make(map[model.ID]bool)
	for _, rm := range city.RouteMasters {
		for _, r := range rm.Routes {
			for _, st := range r.Stops {
				used[st.ID] = true
			}
		}
	}
	filtered := make([]model.Transfer, 0, len(city.Transfers))
	for _, t := range city.Transfers {
		kept := t.Filter(func(sa *model.StopArea) bool { return used[sa.ID] })
		if kept.Len() > 1 {
			filtered = append(filtered, kept)
		}
	}
	city.Transfers = filtered
}
