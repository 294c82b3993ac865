package route

import (
	"testing"

	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/stoparea"
	"github.com/theoremus-urban-solutions/subway-topology-validator/testutil"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

// registerStation registers one station in city.Stations the way the
// orchestrator's station-extraction phase would, without pulling in the
// whole engine package (avoids an import cycle with validator).
func registerStation(city *model.City, cfg *validatorconfig.Config, el *model.Element) {
	city.Add(el)
	st := &model.Station{
		ID:      el.ID(),
		Element: el,
		Modes:   map[string]bool{"subway": true},
		Name:    el.Tag("name"),
		Center:  *el.Center,
	}
	city.StationIDs[st.ID] = true
	for _, sa := range stoparea.Build(city, cfg, st) {
		for id := range sa.GetElements() {
			city.Stations[id] = append(city.Stations[id], sa)
		}
	}
}

func TestBuildSimpleRoute(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	s1 := testutil.Station(1, "A", 0, 0)
	s2 := testutil.Station(2, "B", 0, 0.01)
	registerStation(city, cfg, s1)
	registerStation(city, cfg, s2)

	members := []model.Member{
		testutil.Member(model.KindNode, 1, "stop"),
		testutil.Member(model.KindNode, 2, "stop"),
	}
	rel := testutil.Relation(100, map[string]string{
		"type": "route", "route": "subway", "ref": "1", "name": "Line 1", "colour": "red",
	}, members, 0, 0.005)
	city.Add(rel)

	r, ok := Build(city, rel)
	if !ok {
		t.Fatalf("expected route to build, errors: %v", city.Collector.Errors())
	}
	if len(r.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(r.Stops))
	}
	if len(city.Collector.Errors()) != 0 {
		t.Errorf("expected no errors, got %v", city.Collector.Errors())
	}
}

func TestBuildAbandonsOnMissingStopElement(t *testing.T) {
	city := model.NewCity(model.Expectations{})

	members := []model.Member{
		testutil.Member(model.KindNode, 999, "stop"),
	}
	rel := testutil.Relation(100, map[string]string{
		"type": "route", "route": "subway", "ref": "1",
	}, members, 0, 0)
	city.Add(rel)

	_, ok := Build(city, rel)
	if ok {
		t.Fatal("expected route to be abandoned when a stop member is not in the dataset")
	}
	if len(city.Collector.Errors()) == 0 {
		t.Error("expected an error to be recorded before abandoning the route")
	}
}

func TestBuildLoopClosesWithoutDuplicateStopError(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	s1 := testutil.Station(1, "A", 0, 0)
	s2 := testutil.Station(2, "B", 0, 0.01)
	registerStation(city, cfg, s1)
	registerStation(city, cfg, s2)

	// A naturally-looping route (no circular=yes) that revisits its first
	// stop: "enough_stops" should latch on return-to-start, silently
	// tolerating the repeat instead of appending it or erroring.
	members := []model.Member{
		testutil.Member(model.KindNode, 1, "stop"),
		testutil.Member(model.KindNode, 2, "stop"),
		testutil.Member(model.KindNode, 1, "stop"),
	}
	rel := testutil.Relation(100, map[string]string{
		"type": "route", "route": "subway", "ref": "1",
	}, members, 0, 0.005)
	city.Add(rel)

	r, ok := Build(city, rel)
	if !ok {
		t.Fatalf("expected route to build, errors: %v", city.Collector.Errors())
	}
	if len(r.Stops) != 2 {
		t.Fatalf("expected the closing revisit to be absorbed, got %d stops", len(r.Stops))
	}
	if len(city.Collector.Errors()) != 0 {
		t.Errorf("expected no errors for a clean loop closure, got %v", city.Collector.Errors())
	}
}

func TestBuildCircularTagAllowsRepeatedStops(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	s1 := testutil.Station(1, "A", 0, 0)
	s2 := testutil.Station(2, "B", 0, 0.01)
	registerStation(city, cfg, s1)
	registerStation(city, cfg, s2)

	// circular=yes disables order/duplicate checking entirely (a documented
	// hack): every non-consecutive revisit is appended again, not merged.
	members := []model.Member{
		testutil.Member(model.KindNode, 1, "stop"),
		testutil.Member(model.KindNode, 2, "stop"),
		testutil.Member(model.KindNode, 1, "stop"),
	}
	rel := testutil.Relation(100, map[string]string{
		"type": "route", "route": "subway", "ref": "1", "circular": "yes",
	}, members, 0, 0.005)
	city.Add(rel)

	r, ok := Build(city, rel)
	if !ok {
		t.Fatalf("expected circular route to build, errors: %v", city.Collector.Errors())
	}
	if len(r.Stops) != 3 {
		t.Fatalf("circular route should re-append the repeated stop, got %d stops", len(r.Stops))
	}
}

func TestBuildMissingRefWarns(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	s1 := testutil.Station(1, "A", 0, 0)
	registerStation(city, cfg, s1)

	members := []model.Member{testutil.Member(model.KindNode, 1, "stop")}
	rel := testutil.Relation(100, map[string]string{
		"type": "route", "route": "subway", "name": "Line 1",
	}, members, 0, 0)
	city.Add(rel)

	if _, ok := Build(city, rel); !ok {
		t.Fatal("expected route to build despite missing ref")
	}
	found := false
	for _, w := range city.Collector.Warnings() {
		if w == "Missing ref on a route (relation 100, \"Line 1\")" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-ref warning, got %v", city.Collector.Warnings())
	}
}
