package crosscity

import (
	"testing"

	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/testutil"
)

func stopArea(id int64, stationID int64) *model.StopArea {
	sid := model.NewID(model.KindNode, stationID)
	return &model.StopArea{
		ID:      model.NewID(model.KindNode, id),
		Station: &model.Station{ID: sid},
	}
}

func TestMergeCombinesStationsAcrossCities(t *testing.T) {
	cityA := model.NewCity(model.Expectations{Name: "A"})
	cityB := model.NewCity(model.Expectations{Name: "B"})

	saA := stopArea(1, 1)
	saB := stopArea(2, 2)
	cityA.Stations[saA.ID] = []*model.StopArea{saA}
	cityB.Stations[saB.ID] = []*model.StopArea{saB}

	members := []model.Member{
		testutil.Member(model.KindNode, 1, ""),
		testutil.Member(model.KindNode, 2, ""),
	}
	group := testutil.Relation(100, map[string]string{"public_transport": "stop_area_group"}, members, 0, 0)

	transfers := Merge([]*model.City{cityA, cityB}, []*model.Element{group})

	if len(transfers) != 1 {
		t.Fatalf("expected one cross-city transfer, got %d", len(transfers))
	}
	if transfers[0].Len() != 2 {
		t.Errorf("expected transfer spanning both cities' stop areas, got %d", transfers[0].Len())
	}
}

func TestMergeIgnoresNonStopAreaGroupRelations(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	rel := testutil.Relation(100, map[string]string{"type": "multipolygon"}, []model.Member{
		testutil.Member(model.KindNode, 1, ""),
	}, 0, 0)

	transfers := Merge([]*model.City{city}, []*model.Element{rel})
	if len(transfers) != 0 {
		t.Errorf("expected no transfers from an unrelated relation, got %d", len(transfers))
	}
}

func TestMergeSkipsGroupsWithoutKnownStations(t *testing.T) {
	city := model.NewCity(model.Expectations{})
	members := []model.Member{
		testutil.Member(model.KindNode, 1, ""),
		testutil.Member(model.KindNode, 2, ""),
	}
	group := testutil.Relation(100, map[string]string{"public_transport": "stop_area_group"}, members, 0, 0)

	transfers := Merge([]*model.City{city}, []*model.Element{group})
	if len(transfers) != 0 {
		t.Errorf("expected no transfer when none of the group's members resolve to a known station, got %d", len(transfers))
	}
}
