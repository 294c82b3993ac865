package stoparea

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/testutil"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

// latOffsetForMeters returns a latitude delta (degrees) that puts a point
// due north of (0,0) at approximately the given distance, using the same
// equirectangular approximation geo.Distance uses (dx=0 simplifies it to
// a direct inversion).
func latOffsetForMeters(meters float64) float64 {
	return meters / geo.EarthRadius * (180 / math.Pi)
}

func newStation(id int64, lon, lat float64) *model.Station {
	return &model.Station{
		ID:      model.NewID(model.KindNode, id),
		Element: testutil.Station(id, "Test Station", lon, lat),
		Modes:   map[string]bool{"subway": true},
		Name:    "Test Station",
		Center:  geo.Point{lon, lat},
	}
}

func TestBuildImplicitIncludesPlatformWithinRadius(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	station := newStation(1, 0, 0)
	platform := testutil.Platform(2, 0, latOffsetForMeters(100))
	city.Add(platform)

	areas := Build(city, cfg, station)
	if len(areas) != 1 {
		t.Fatalf("expected exactly one implicit stop area, got %d", len(areas))
	}
	if !areas[0].StopsAndPlatforms[platform.ID()] {
		t.Error("platform within MaxDistanceNearby should be included")
	}
}

func TestBuildImplicitExcludesPlatformBeyondRadius(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	station := newStation(1, 0, 0)
	platform := testutil.Platform(2, 0, latOffsetForMeters(300))
	city.Add(platform)

	areas := Build(city, cfg, station)
	if areas[0].StopsAndPlatforms[platform.ID()] {
		t.Error("platform beyond MaxDistanceNearby should not be included")
	}
}

func TestBuildImplicitBoundaryIsInclusive(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	station := newStation(1, 0, 0)
	platform := testutil.Platform(2, 0, latOffsetForMeters(cfg.MaxDistanceNearby))
	city.Add(platform)

	// latOffsetForMeters and geo.Distance share the same equirectangular
	// formula, so the platform should land within a hair of the boundary;
	// assert on the measured distance directly rather than trusting float
	// round-trip to land on exactly 150.000.
	d := geo.Distance(station.Center, *platform.Center)
	if d > cfg.MaxDistanceNearby+0.01 {
		t.Fatalf("fixture distance = %v, want <= %v", d, cfg.MaxDistanceNearby)
	}

	areas := Build(city, cfg, station)
	if !areas[0].StopsAndPlatforms[platform.ID()] {
		t.Error("platform at the boundary distance should be included (inclusive <=)")
	}
}

func TestBuildExplicitEntranceExitRoles(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()

	station := newStation(1, 0, 0)
	entrance := testutil.Entrance(2, "", 0, 0)
	exitOnly := testutil.Entrance(3, "", 0, 0)
	city.Add(station.Element)
	city.Add(entrance)
	city.Add(exitOnly)

	members := []model.Member{
		testutil.Member(model.KindNode, 1, "station"),
		testutil.Member(model.KindNode, 2, ""),
		testutil.Member(model.KindNode, 3, "exit_only"),
	}
	sa := testutil.Relation(10, map[string]string{"public_transport": "stop_area"}, members, 0, 0)
	city.Add(sa)

	areas := Build(city, cfg, station)
	if len(areas) != 1 {
		t.Fatalf("expected one explicit stop area, got %d", len(areas))
	}
	a := areas[0]
	if !a.Entrances[entrance.ID()] || !a.Exits[entrance.ID()] {
		t.Error("an entrance with no role restriction should be both entrance and exit")
	}
	if a.Entrances[exitOnly.ID()] {
		t.Error("role=exit_only member should not be registered as an entrance")
	}
	if !a.Exits[exitOnly.ID()] {
		t.Error("role=exit_only member should still be registered as an exit")
	}
}

func TestNoEntrancesNoAsymmetryError(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	cfg := validatorconfig.Default()
	station := newStation(1, 0, 0)

	Build(city, cfg, station)
	// No stops_and_platforms, no entrances/exits nearby: no asymmetry error expected.
	if len(city.Collector.Errors()) != 0 {
		t.Errorf("expected no errors for a station with no nearby entrances, got %v", city.Collector.Errors())
	}
}
