// Package crosscity recomputes Transfers across every city's Stations map
// at once, the way original_source/subway_structure.py's module-level
// find_transfers does. A stop_area_group relation whose members fall in
// two adjacent cities is invisible to interchange.Build, which only ever
// sees one city's bound elements — this pass is the whole-network view
// used for combined reporting (e.g. a network-wide interchange export),
// not a replacement for each city's own found_interchanges count.
package crosscity

import "github.com/theoremus-urban-solutions/subway-topology-validator/model"

// Merge scans the full, unfiltered element stream for stop_area_group
// relations and resolves their members against the union of every city's
// Stations map, returning one Transfer per group with more than one
// distinct StopArea.
func Merge(cities []*model.City, elements []*model.Element) []model.Transfer {
	stations := make(map[model.ID][]*model.StopArea)
	for _, city := range cities {
		for id, areas := range city.Stations {
			stations[id] = append(stations[id], areas...)
		}
	}

	var out []model.Transfer
	for _, el := range elements {
		if el.Kind != model.KindRelation || len(el.Members) == 0 {
			continue
		}
		if el.Tag("public_transport") != "stop_area_group" {
			continue
		}
		seen := make(map[model.ID]bool)
		var areas []*model.StopArea
		for _, m := range el.Members {
			k := m.ID()
			for _, sa := range stations[k] {
				if seen[sa.ID] {
					continue
				}
				seen[sa.ID] = true
				areas = append(areas, sa)
			}
		}
		if t := model.NewTransfer(areas); t.Len() > 1 {
			out = append(out, t)
		}
	}
	return out
}
