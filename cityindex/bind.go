package cityindex

import "github.com/theoremus-urban-solutions/subway-topology-validator/model"

// Contains reports whether el belongs to a city bounded by exp (spec.md
// §4.5): its center falls inside the bounding box, or — for elements with
// no center — it carries a route_master or public_transport tag (such
// relations cannot be filtered by geometry alone).
func Contains(exp model.Expectations, el *model.Element) bool {
	if el.Center != nil {
		if !exp.HasBBox {
			return false
		}
		lon, lat := el.Center[0], el.Center[1]
		return exp.BBox.Min[1] <= lat && lat <= exp.BBox.Max[1] &&
			exp.BBox.Min[0] <= lon && lon <= exp.BBox.Max[0]
	}
	return el.HasTag("route_master") || el.HasTag("public_transport")
}

// BindCity walks the index in input order and adds every element
// belonging to exp's city to a fresh model.City, applying model.City.Add's
// route_master/stop_area bookkeeping as each element is added — mirroring
// subway_structure.py's City.contains/City.add pairing exactly.
func BindCity(idx *Index, exp model.Expectations) *model.City {
	city := model.NewCity(exp)
	for _, el := range idx.Elements() {
		if Contains(exp, el) {
			city.Add(el)
		}
	}
	return city
}
