// Package cityvalidator compares a built City against its expectations
// and produces the diagnostic counts of spec.md §4.7. Ported from
// City.validate and City.count_unused_entrances in
// original_source/subway_structure.py.
package cityvalidator

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

// maxListed caps how many element ids are named inline in a diagnostic
// before it falls back to "...".
const maxListed = 20

// Validate compares city's built topology against its Expectations,
// recording warnings and errors on city.Collector and populating its
// Found*/Unused* counters. city.Transfers must already be built and
// filtered (interchange.Build + interchange.FilterUsed).
func Validate(city *model.City, cfg *validatorconfig.Config) {
	networks := make(map[string]int)
	unusedStations := make(map[model.ID]bool, len(city.StationIDs))
	for id := range city.StationIDs {
		unusedStations[id] = true
	}

	for _, rm := range city.RouteMasters {
		networks[rm.Network]++
		for _, r := range rm.Routes {
			for _, st := range r.Stops {
				delete(unusedStations, st.Station.ID)
			}
		}
	}

	if len(unusedStations) > 0 {
		city.UnusedStations = len(unusedStations)
		city.Warn(fmt.Sprintf("%d unused stations: %s",
			city.UnusedStations, formatIDList(keysOf(unusedStations))), nil)
	}

	countUnusedEntrances(city)

	for _, rm := range city.RouteMasters {
		if rm.Mode != "subway" {
			city.FoundLightLines++
		}
	}
	city.FoundLines = len(city.RouteMasters) - city.FoundLightLines

	if city.FoundLines != city.Expectations.NumLines {
		msg := fmt.Sprintf("Found %d subway lines, expected %d", city.FoundLines, city.Expectations.NumLines)
		city.Err(msg, nil)
	}
	if city.FoundLightLines != city.Expectations.NumLightLines {
		msg := fmt.Sprintf("Found %d light rail lines, expected %d", city.FoundLightLines, city.Expectations.NumLightLines)
		city.Err(msg, nil)
	}

	city.FoundStations = len(city.StationIDs) - len(unusedStations)
	if city.FoundStations != city.Expectations.NumStations {
		msg := fmt.Sprintf("Found %d stations in routes, expected %d", city.FoundStations, city.Expectations.NumStations)
		if withinTolerance(city.Expectations.NumStations, city.FoundStations, cfg.AllowedStationsMismatch) {
			city.Warn(msg, nil)
		} else {
			city.Err(msg, nil)
		}
	}

	city.FoundInterchanges = len(city.Transfers)
	if city.FoundInterchanges != city.Expectations.NumInterchanges {
		msg := fmt.Sprintf("Found %d interchanges, expected %d", city.FoundInterchanges, city.Expectations.NumInterchanges)
		if city.Expectations.NumInterchanges == 0 ||
			withinTolerance(city.Expectations.NumInterchanges, city.FoundInterchanges, cfg.AllowedTransfersMismatch) {
			city.Warn(msg, nil)
		} else {
			city.Err(msg, nil)
		}
	}

	city.FoundNetworks = len(networks)
	limit := 1
	if len(city.Expectations.Networks) > limit {
		limit = len(city.Expectations.Networks)
	}
	if len(networks) > limit {
		parts := make([]string, 0, len(networks))
		for k, v := range networks {
			parts = append(parts, fmt.Sprintf("%s (%d)", k, v))
		}
		city.Warn("More than one network: "+strings.Join(parts, "; "), nil)
	}
}

// withinTolerance reports whether found is within allowed fraction below
// expected (spec.md §4.7's mismatch-tolerance rule: only a shortfall is
// forgiven, never an excess — a found count above expected never passes).
func withinTolerance(expected, found int, allowed float64) bool {
	if expected == 0 {
		return false
	}
	ratio := float64(expected-found) / float64(expected)
	return ratio >= 0 && ratio <= allowed
}

func keysOf(m map[model.ID]bool) []model.ID {
	out := make([]model.ID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out
}

func formatIDList(ids []model.ID) string {
	n := len(ids)
	if n > maxListed {
		n = maxListed
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = string(ids[i])
	}
	msg := strings.Join(parts, ", ")
	if len(ids) > maxListed {
		msg += ", ..."
	}
	return msg
}

func countUnusedEntrances(city *model.City) {
	stopAreaMembers := make(map[model.ID]bool)
	for _, id := range city.Order {
		el := city.Elements[id]
		if el.Kind == model.KindRelation && el.Tag("public_transport") == "stop_area" && len(el.Members) > 0 {
			for _, m := range el.Members {
				stopAreaMembers[m.ID()] = true
			}
		}
	}

	var unused []model.ID
	var notInStopArea []model.ID
	for _, id := range city.Order {
		el := city.Elements[id]
		if el.Kind != model.KindNode || el.Tag("railway") != "subway_entrance" {
			continue
		}
		i := el.ID()
		_, inStation := city.Stations[i]
		if !stopAreaMembers[i] {
			notInStopArea = append(notInStopArea, i)
			if !inStation {
				unused = append(unused, i)
			}
		}
	}

	city.UnusedEntrances = len(unused)
	city.EntrancesNotInStopArea = len(notInStopArea)
	if len(unused) > 0 {
		city.Err(fmt.Sprintf("Found %d entrances not used in routes or stop_areas: %s",
			len(unused), formatIDList(unused)), nil)
	}
	if len(notInStopArea) > 0 {
		city.Warn(fmt.Sprintf("%d subway entrances are not in stop_area relations", len(notInStopArea)), nil)
	}
}
