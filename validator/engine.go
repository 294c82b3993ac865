// Package validator wires together the ingest → index → per-city
// reconstruction → validation pipeline spec.md §2 describes. Ported from
// City.extract_routes (the full per-city pass) in
// original_source/subway_structure.py; cityindex, stoparea, route,
// routemaster, interchange and cityvalidator each carry one phase of it.
package validator

import (
	"github.com/theoremus-urban-solutions/subway-topology-validator/classifier"
	"github.com/theoremus-urban-solutions/subway-topology-validator/cityindex"
	"github.com/theoremus-urban-solutions/subway-topology-validator/cityvalidator"
	"github.com/theoremus-urban-solutions/subway-topology-validator/crosscity"
	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/interchange"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/report"
	"github.com/theoremus-urban-solutions/subway-topology-validator/route"
	"github.com/theoremus-urban-solutions/subway-topology-validator/routemaster"
	"github.com/theoremus-urban-solutions/subway-topology-validator/stoparea"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

// Run builds the shared element index once, then binds and validates each
// city in expectationsList (spec.md §2). A non-empty cfg.CountryFilter
// restricts the run to cities whose Expectations.Country matches it.
// Returns each validated City alongside the whole-network cross-city
// transfer view crosscity.Merge computes.
func Run(elements []*model.Element, expectationsList []model.Expectations, cfg *validatorconfig.Config) ([]*model.City, []model.Transfer) {
	idx := cityindex.Build(elements)
	cities := make([]*model.City, 0, len(expectationsList))
	for _, exp := range expectationsList {
		if cfg.CountryFilter != "" && exp.Country != cfg.CountryFilter {
			continue
		}
		city := cityindex.BindCity(idx, exp)
		ValidateCity(city, cfg)
		cities = append(cities, city)
	}
	return cities, crosscity.Merge(cities, elements)
}

// ValidateCity runs the full reconstruction-and-validation pipeline for one
// already-bound city (spec.md §2 steps 3-8).
func ValidateCity(city *model.City, cfg *validatorconfig.Config) {
	extractStations(city, cfg)
	extractRoutes(city)
	interchange.Build(city)
	interchange.FilterUsed(city)
	cityvalidator.Validate(city, cfg)
}

// extractStations builds a Station for every station-tagged element, then
// the StopArea(s) that span it, registering each StopArea's elements in
// city.Stations so route building and interchange detection can resolve
// them later (spec.md §4.2; ported from the station-extraction half of
// City.extract_routes).
func extractStations(city *model.City, cfg *validatorconfig.Config) {
	processed := make(map[model.ID]bool)
	for _, id := range city.Order {
		el := city.Elements[id]
		if !classifier.IsStation(el) {
			continue
		}
		st := newStation(city, el)

		for _, sa := range stoparea.Build(city, cfg, st) {
			if processed[sa.ID] {
				continue
			}
			processed[sa.ID] = true
			for elID := range sa.GetElements() {
				city.Stations[elID] = append(city.Stations[elID], sa)
			}
			for spID := range sa.StopsAndPlatforms {
				if city.StopsAndPlatforms[spID] {
					city.Warn("A stop or a platform belongs to multiple stations, might be correct", nil)
				} else {
					city.StopsAndPlatforms[spID] = true
				}
			}
		}
	}
}

func newStation(city *model.City, el *model.Element) *model.Station {
	if el.Kind != model.KindNode {
		city.Warn("Station is not a node", el)
	}
	name := el.Tag("name")
	if name == "" {
		name = "?"
	}
	intName := el.Tag("int_name")
	if intName == "" {
		intName = el.Tag("name:en")
	}
	var center geo.Point
	if el.Center != nil {
		center = *el.Center
	}
	st := &model.Station{
		ID:      el.ID(),
		Element: el,
		Modes:   classifier.ModesOf(el),
		Name:    name,
		IntName: intName,
		Colour:  el.Tag("colour"),
		Center:  center,
	}
	city.StationIDs[st.ID] = true
	return st
}

// extractRoutes walks every route relation, applies the optional network
// filter (SPEC_FULL.md §4), builds its Route, and folds it into the owning
// RouteMaster — creating one if this is the first route to reach it.
// Ported from the route half of City.extract_routes.
func extractRoutes(city *model.City) {
	for _, id := range city.Order {
		el := city.Elements[id]
		if !classifier.IsRoute(el) {
			continue
		}

		if len(city.Expectations.Networks) > 0 && !routeNetworkAllowed(city, el) {
			continue
		}

		r, ok := route.Build(city, el)
		if !ok {
			continue
		}

		master, hasMaster := city.RouteMasterOf[el.ID()]
		key := r.Ref
		if hasMaster {
			key = string(master.ID())
		}

		rm, exists := city.RouteMasters[key]
		if !exists {
			if hasMaster {
				rm = routemaster.New(master)
			} else {
				rm = routemaster.New(nil)
			}
			city.RouteMasters[key] = rm
		}
		routemaster.Add(city, rm, r)
		if rm.Len() == 0 {
			delete(city.RouteMasters, key)
		}
	}
}

func routeNetworkAllowed(city *model.City, el *model.Element) bool {
	network := classifier.NetworkOf(el)
	if city.Expectations.Networks[network] {
		return true
	}
	if master, ok := city.RouteMasterOf[el.ID()]; ok {
		if city.Expectations.Networks[classifier.NetworkOf(master)] {
			return true
		}
	}
	return false
}

// Results collects the report.Result for every validated city, in the
// order cities was given.
func Results(cities []*model.City) []report.Result {
	out := make([]report.Result, 0, len(cities))
	for _, city := range cities {
		out = append(out, report.Result{
			Name:              city.Expectations.Name,
			Country:           city.Expectations.Country,
			Continent:         city.Expectations.Continent,
			StationsExpected:  city.Expectations.NumStations,
			SubwaylExpected:   city.Expectations.NumLines,
			LightrlExpected:   city.Expectations.NumLightLines,
			TransfersExpected: city.Expectations.NumInterchanges,
			StationsFound:     city.FoundStations,
			SubwaylFound:      city.FoundLines,
			LightrlFound:      city.FoundLightLines,
			TransfersFound:    city.FoundInterchanges,
			UnusedEntrances:   city.UnusedEntrances,
			Networks:          city.FoundNetworks,
			Warnings:          city.Collector.Warnings(),
			Errors:            city.Collector.Errors(),
		})
	}
	return out
}
