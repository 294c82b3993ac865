// Package testutil provides shared fixture builders for tests across the
// module: small OSM-style node/way/relation constructors, instead of
// hand-rolled literals in every _test.go file.
package testutil

import (
	"testing"

	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

// Test tolerances, mirroring spec.md §6's defaults, for tests that want a
// concrete number rather than importing validatorconfig.Default().
const (
	TestMaxDistanceNearby        = 150.0
	TestAllowedStationsMismatch  = 0.02
	TestAllowedTransfersMismatch = 0.07
)

// Node builds a model.Element of kind node with a center at (lon, lat).
func Node(id int64, tags map[string]string, lon, lat float64) *model.Element {
	p := geo.Point{lon, lat}
	return &model.Element{
		Kind:   model.KindNode,
		Num:    id,
		Tags:   tags,
		Center: &p,
	}
}

// NodeNoTags builds an untagged node, useful as a route member that
// should trigger the "untagged object" diagnostic.
func NodeNoTags(id int64, lon, lat float64) *model.Element {
	p := geo.Point{lon, lat}
	return &model.Element{Kind: model.KindNode, Num: id, Center: &p}
}

// Way builds a model.Element of kind way spanning the given node ids.
func Way(id int64, tags map[string]string, nodes []int64) *model.Element {
	return &model.Element{Kind: model.KindWay, Num: id, Tags: tags, Nodes: nodes}
}

// WayWithCenter is Way plus an explicit center, for ways Overpass reports
// a "center" field for (e.g. platform ways).
func WayWithCenter(id int64, tags map[string]string, nodes []int64, lon, lat float64) *model.Element {
	w := Way(id, tags, nodes)
	p := geo.Point{lon, lat}
	w.Center = &p
	return w
}

// Member builds a relation member reference.
func Member(kind model.Kind, ref int64, role string) model.Member {
	return model.Member{Kind: kind, Ref: ref, Role: role}
}

// Relation builds a model.Element of kind relation with the given members
// and a center (most test relations need one to pass City Binding).
func Relation(id int64, tags map[string]string, members []model.Member, lon, lat float64) *model.Element {
	p := geo.Point{lon, lat}
	return &model.Element{
		Kind:    model.KindRelation,
		Num:     id,
		Tags:    tags,
		Members: members,
		Center:  &p,
	}
}

// RelationNoCenter builds a relation with no center, the way a
// route_master or stop_area_group often arrives from Overpass.
func RelationNoCenter(id int64, tags map[string]string, members []model.Member) *model.Element {
	return &model.Element{Kind: model.KindRelation, Num: id, Tags: tags, Members: members}
}

// Station builds a minimal railway=station node tagged for the subway
// mode, the shape classifier.IsStation accepts.
func Station(id int64, name string, lon, lat float64) *model.Element {
	return Node(id, map[string]string{
		"railway": "station",
		"station": "subway",
		"name":    name,
	}, lon, lat)
}

// Platform builds a minimal public_transport=platform node.
func Platform(id int64, lon, lat float64) *model.Element {
	return Node(id, map[string]string{"public_transport": "platform"}, lon, lat)
}

// Entrance builds a subway_entrance node, optionally tagged entrance=
// "entrance" or "exit"; pass "" for an unrestricted (both-way) entrance.
func Entrance(id int64, entranceTag string, lon, lat float64) *model.Element {
	tags := map[string]string{"railway": "subway_entrance"}
	if entranceTag != "" {
		tags["entrance"] = entranceTag
	}
	return Node(id, tags, lon, lat)
}

// RequireNoErrors fails the test if city recorded any error-severity
// diagnostic, printing them for debugging.
func RequireNoErrors(t *testing.T, city *model.City) {
	t.Helper()
	if errs := city.Collector.Errors(); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
