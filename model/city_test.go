package model

import "testing"

func relEl(id int64, tags map[string]string, members []Member) *Element {
	return &Element{Kind: KindRelation, Num: id, Tags: tags, Members: members}
}

func TestAddPreservesOrderAndDedupsByID(t *testing.T) {
	city := NewCity(Expectations{})
	a := &Element{Kind: KindNode, Num: 1, Tags: map[string]string{"name": "first"}}
	aAgain := &Element{Kind: KindNode, Num: 1, Tags: map[string]string{"name": "second"}}
	b := &Element{Kind: KindNode, Num: 2}

	city.Add(a)
	city.Add(b)
	city.Add(aAgain)

	if len(city.Order) != 2 {
		t.Fatalf("expected 2 distinct ids in Order, got %d", len(city.Order))
	}
	if city.Elements[a.ID()].Tag("name") != "second" {
		t.Error("expected a later Add for the same id to replace the stored element")
	}
}

func TestAddRouteMasterRegistersMembership(t *testing.T) {
	city := NewCity(Expectations{})
	route := relEl(1, map[string]string{"type": "route"}, nil)
	master := relEl(2, map[string]string{"type": "route_master"}, []Member{
		{Kind: KindRelation, Ref: 1},
	})

	city.Add(route)
	city.Add(master)

	got, ok := city.RouteMasterOf[route.ID()]
	if !ok || got != master {
		t.Error("expected the route to be registered under its route_master")
	}
}

func TestAddRouteInTwoMastersErrors(t *testing.T) {
	city := NewCity(Expectations{})
	route := relEl(1, map[string]string{"type": "route"}, nil)
	masterA := relEl(2, map[string]string{"type": "route_master"}, []Member{{Kind: KindRelation, Ref: 1}})
	masterB := relEl(3, map[string]string{"type": "route_master"}, []Member{{Kind: KindRelation, Ref: 1}})

	city.Add(route)
	city.Add(masterA)
	city.Add(masterB)

	if len(city.Collector.Errors()) != 1 {
		t.Fatalf("expected one error for a route claimed by two masters, got %v", city.Collector.Errors())
	}
	if city.RouteMasterOf[route.ID()] != masterA {
		t.Error("expected the first route_master claim to stick")
	}
}

func TestAddStopAreaDuplicateMemberWarns(t *testing.T) {
	city := NewCity(Expectations{})
	stopArea := relEl(1, map[string]string{"public_transport": "stop_area"}, []Member{
		{Kind: KindNode, Ref: 10},
		{Kind: KindNode, Ref: 10},
	})
	city.Add(stopArea)

	if len(city.Collector.Warnings()) != 1 {
		t.Fatalf("expected one duplicate-member warning, got %v", city.Collector.Warnings())
	}
	if len(city.StopAreaMembership[NewID(KindNode, 10)]) != 1 {
		t.Errorf("expected the member registered only once, got %d", len(city.StopAreaMembership[NewID(KindNode, 10)]))
	}
}

func TestIsGoodReflectsErrorsOnly(t *testing.T) {
	city := NewCity(Expectations{})
	city.Warn("a warning", nil)
	if !city.IsGood() {
		t.Error("a warning alone should not make IsGood false")
	}
	city.Err("an error", nil)
	if city.IsGood() {
		t.Error("expected IsGood to become false after an error")
	}
}
