// Package stoparea assembles model.StopArea records for every station,
// either from an explicit stop_area relation or by spatial proximity
// (spec.md §4.2). Ported from StopArea.__init__ in
// original_source/subway_structure.py.
package stoparea

import (
	"github.com/theoremus-urban-solutions/subway-topology-validator/classifier"
	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

// Build constructs the set of StopAreas for one Station: one per explicit
// stop_area relation referencing it, or a single implicit one if none
// exist (spec.md §4.2).
func Build(city *model.City, cfg *validatorconfig.Config, station *model.Station) []*model.StopArea {
	relations := city.StopAreaMembership[station.ID]
	if len(relations) == 0 {
		return []*model.StopArea{buildOne(city, cfg, station, nil)}
	}
	out := make([]*model.StopArea, 0, len(relations))
	for _, rel := range relations {
		out = append(out, buildOne(city, cfg, station, rel))
	}
	return out
}

func buildOne(city *model.City, cfg *validatorconfig.Config, station *model.Station, relation *model.Element) *model.StopArea {
	sa := &model.StopArea{
		Station:           station,
		Relation:          relation,
		StopsAndPlatforms: make(map[model.ID]bool),
		Entrances:         make(map[model.ID]bool),
		Exits:             make(map[model.ID]bool),
		Name:              station.Name,
		IntName:           station.IntName,
		Colour:            station.Colour,
		Modes:             station.Modes,
	}
	if relation != nil {
		sa.ID = relation.ID()
	} else {
		sa.ID = station.ID
	}

	if relation != nil {
		if n := relation.Tag("name"); n != "" {
			sa.Name = n
		}
		if n := relation.Tag("int_name"); n != "" {
			sa.IntName = n
		} else if n := relation.Tag("name:en"); n != "" {
			sa.IntName = n
		}
		if c := relation.Tag("colour"); c != "" {
			sa.Colour = c
		}
		buildExplicit(city, station, relation, sa)
	} else {
		buildImplicit(city, cfg, station, sa)
	}

	checkEntranceExitSymmetry(city, relation, station, sa)
	computeCenter(city, sa)
	return sa
}

func buildExplicit(city *model.City, station *model.Station, relation *model.Element, sa *model.StopArea) {
	warnedAboutTracks := false
	for _, m := range relation.Members {
		k := m.ID()
		el, ok := city.Elements[k]
		if !ok || el.Tags == nil {
			continue
		}
		switch {
		case classifier.IsStation(el):
			if k != station.ID {
				city.Err("Stop area has multiple stations", relation)
			}
		case classifier.IsStopOrPlatform(el):
			sa.StopsAndPlatforms[k] = true
		case classifier.IsSubwayEntrance(el):
			if el.Kind != model.KindNode {
				city.Warn("Subway entrance is not a node", el)
			}
			if el.Tag("entrance") != "exit" && m.Role != "exit_only" {
				sa.Entrances[k] = true
			}
			if el.Tag("entrance") != "entrance" && m.Role != "entry_only" {
				sa.Exits[k] = true
			}
		case isTrack(el):
			if !warnedAboutTracks {
				city.Err("Tracks in a stop_area relation", relation)
				warnedAboutTracks = true
			}
		}
	}
}

func buildImplicit(city *model.City, cfg *validatorconfig.Config, station *model.Station, sa *model.StopArea) {
	center := station.Center
	for _, id := range city.Order {
		el := city.Elements[id]
		if el.Tags == nil || el.Center == nil {
			continue
		}
		cCenter := *el.Center
		switch {
		case classifier.IsStopOrPlatform(el):
			if !el.HasTag("station") {
				if geo.Distance(center, cCenter) <= cfg.MaxDistanceNearby {
					sa.StopsAndPlatforms[el.ID()] = true
				}
			}
		case classifier.IsSubwayEntrance(el):
			if geo.Distance(center, cCenter) <= cfg.MaxDistanceNearby {
				if el.Kind != model.KindNode {
					city.Warn("Subway entrance is not a node", el)
				}
				etag := el.Tag("entrance")
				// No role-based override here: there is no relation
				// membership to read a role from (spec.md §4.2 implicit
				// branch; see SPEC_FULL.md §5.2 on the exit-only asymmetry
				// this preserves).
				if etag != "exit" {
					sa.Entrances[el.ID()] = true
				}
				if etag != "entrance" {
					sa.Exits[el.ID()] = true
				}
			}
		}
	}
}

func isTrack(el *model.Element) bool {
	r := el.Tag("railway")
	if r == "rail" {
		return true
	}
	for _, m := range classifier.Modes {
		if r == m {
			return true
		}
	}
	return false
}

func checkEntranceExitSymmetry(city *model.City, relation *model.Element, station *model.Station, sa *model.StopArea) {
	subjectEl := relation
	if subjectEl == nil {
		subjectEl = station.Element
	}
	if len(sa.Exits) > 0 && len(sa.Entrances) == 0 {
		city.Err("Only exits for a station, no entrances", subjectEl)
	}
	if len(sa.Entrances) > 0 && len(sa.Exits) == 0 {
		city.Err("No exits for a station", subjectEl)
	}
}

func computeCenter(city *model.City, sa *model.StopArea) {
	if len(sa.StopsAndPlatforms) == 0 {
		sa.Center = sa.Station.Center
	} else {
		// Matches subway_structure.py exactly: sums centers of whichever
		// platforms/stops have one, but divides by the full set size, not
		// the count found — so a StopArea with an uncentered member pulls
		// its center slightly toward the origin. Preserved deliberately.
		var sum geo.Point
		for id := range sa.StopsAndPlatforms {
			if el, ok := city.Elements[id]; ok && el.Center != nil {
				sum[0] += el.Center[0]
				sum[1] += el.Center[1]
			}
		}
		n := float64(len(sa.StopsAndPlatforms))
		sa.Center = geo.Point{sum[0] / n, sum[1] / n}
	}

	sa.Centers = make(map[model.ID]geo.Point)
	for id := range sa.GetElements() {
		if el, ok := city.Elements[id]; ok && el.Center != nil {
			sa.Centers[id] = *el.Center
		}
	}
}
