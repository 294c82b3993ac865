package classifier

import (
	"testing"

	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

func node(tags map[string]string) *model.Element {
	return &model.Element{Kind: model.KindNode, Num: 1, Tags: tags}
}

func relation(tags map[string]string, members []model.Member) *model.Element {
	return &model.Element{Kind: model.KindRelation, Num: 1, Tags: tags, Members: members}
}

func TestIsStation(t *testing.T) {
	cases := []struct {
		name string
		tags map[string]string
		want bool
	}{
		{"plain subway station", map[string]string{"railway": "station", "station": "subway"}, true},
		{"halt with mode tag", map[string]string{"railway": "halt", "light_rail": "yes"}, true},
		{"station under construction", map[string]string{"railway": "station", "station": "subway", "construction": "yes"}, false},
		{"station with unknown mode only", map[string]string{"railway": "station", "station": "funicular"}, false},
		{"not a railway station", map[string]string{"railway": "platform"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsStation(node(c.tags)); got != c.want {
				t.Errorf("IsStation(%v) = %v, want %v", c.tags, got, c.want)
			}
		})
	}
}

func TestIsStopOrPlatform(t *testing.T) {
	if !IsStopOrPlatform(node(map[string]string{"railway": "platform"})) {
		t.Error("railway=platform should be a stop/platform")
	}
	if !IsStopOrPlatform(node(map[string]string{"public_transport": "stop_position"})) {
		t.Error("public_transport=stop_position should be a stop/platform")
	}
	if IsStopOrPlatform(node(map[string]string{"railway": "station"})) {
		t.Error("a station is not itself a stop/platform")
	}
}

func TestIsRoute(t *testing.T) {
	good := relation(map[string]string{"type": "route", "route": "subway", "ref": "1"},
		[]model.Member{{Kind: model.KindNode, Ref: 1, Role: "stop"}})
	if !IsRoute(good) {
		t.Error("expected a valid route relation to be recognized")
	}

	noMembers := relation(map[string]string{"type": "route", "route": "subway", "ref": "1"}, nil)
	if IsRoute(noMembers) {
		t.Error("a route relation with no members should not be a route")
	}

	underConstruction := relation(map[string]string{
		"type": "route", "route": "subway", "ref": "1", "construction": "yes",
	}, []model.Member{{Kind: model.KindNode, Ref: 1, Role: "stop"}})
	if IsRoute(underConstruction) {
		t.Error("an under-construction route should not be recognized")
	}

	noRefOrName := relation(map[string]string{"type": "route", "route": "subway"},
		[]model.Member{{Kind: model.KindNode, Ref: 1, Role: "stop"}})
	if IsRoute(noRefOrName) {
		t.Error("a route without ref or name should not be recognized")
	}
}

func TestNetworkOf(t *testing.T) {
	if n := NetworkOf(node(map[string]string{"network": "Metro"})); n != "Metro" {
		t.Errorf("NetworkOf = %q, want Metro", n)
	}
	if n := NetworkOf(node(map[string]string{"operator": "City Transit"})); n != "City Transit" {
		t.Errorf("NetworkOf fallback to operator = %q, want City Transit", n)
	}
	if n := NetworkOf(node(nil)); n != "" {
		t.Errorf("NetworkOf with no tags = %q, want empty", n)
	}
}
