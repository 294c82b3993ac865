// Package geojsonexport renders unused subway entrances as a GeoJSON
// FeatureCollection, for visual review on a map. Ported from
// get_unused_entrances_geojson in original_source/subway_structure.py,
// using paulmach/orb/geojson as the feature carrier (SPEC_FULL.md §2
// domain-stack table).
package geojsonexport

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
)

// UnusedEntrances builds a FeatureCollection of every subway_entrance node
// not present in used: an entrance a route or stop_area never reached.
func UnusedEntrances(elements []*model.Element, used map[model.ID]bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, el := range elements {
		if el.Kind != model.KindNode || el.Tag("railway") != "subway_entrance" {
			continue
		}
		if used[el.ID()] {
			continue
		}
		if el.Center == nil {
			continue
		}
		f := geojson.NewFeature(orb.Point(*el.Center))
		for k, v := range el.Tags {
			if k == "railway" || k == "entrance" {
				continue
			}
			f.Properties[k] = v
		}
		fc.Append(f)
	}
	return fc
}
