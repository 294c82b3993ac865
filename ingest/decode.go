// Package ingest decodes the Element-record input stream (spec.md §6)
// into model.Element values. It uses goccy/go-json, a drop-in faster
// replacement for encoding/json with identical struct-tag semantics —
// the input is Overpass-API-shaped JSON, often tens of megabytes for a
// large city, so decode throughput matters (SPEC_FULL.md §2).
package ingest

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/report"
)

type rawCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type rawMember struct {
	Type string `json:"type"`
	Ref  int64  `json:"ref"`
	Role string `json:"role"`
}

type rawElement struct {
	Type    string            `json:"type"`
	ID      int64             `json:"id"`
	Tags    map[string]string `json:"tags"`
	Lat     *float64          `json:"lat"`
	Lon     *float64          `json:"lon"`
	Center  *rawCenter        `json:"center"`
	Nodes   []int64           `json:"nodes"`
	Members []rawMember       `json:"members"`
}

// envelope accepts either a bare JSON array of elements or an
// Overpass-API-style {"elements": [...]} wrapper.
type envelope struct {
	Elements []rawElement `json:"elements"`
}

// Decode reads the Element-record stream and returns the decoded
// elements, in input order, with the ingest-time rules of spec.md §3
// applied: a relation without members is dropped; a centerless
// route_master/stop_area_group relation decodes with a nil Center.
//
// Returns a *report.MalformedElementError if any element is missing its
// "type" field (spec.md §7: the only case that fails loudly rather than
// producing a diagnostic, since there would be nothing to attribute one to).
func Decode(r io.Reader) ([]*model.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raws []rawElement
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Elements != nil {
		raws = env.Elements
	} else if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	out := make([]*model.Element, 0, len(raws))
	for i, raw := range raws {
		if raw.Type == "" {
			return nil, &report.MalformedElementError{Index: i}
		}
		el, ok := convert(raw)
		if !ok {
			continue // relation without members, dropped at ingest (spec.md §3)
		}
		out = append(out, el)
	}
	return out, nil
}

func convert(raw rawElement) (*model.Element, bool) {
	kind := model.Kind(raw.Type)

	if kind == model.KindRelation && len(raw.Members) == 0 {
		return nil, false
	}

	el := &model.Element{
		Kind: kind,
		Num:  raw.ID,
		Tags: raw.Tags,
	}

	switch kind {
	case model.KindNode:
		if raw.Lat != nil && raw.Lon != nil {
			p := geo.Point{*raw.Lon, *raw.Lat}
			el.Center = &p
		}
	case model.KindWay:
		el.Nodes = raw.Nodes
		if raw.Center != nil {
			p := geo.Point{raw.Center.Lon, raw.Center.Lat}
			el.Center = &p
		}
	case model.KindRelation:
		for _, m := range raw.Members {
			el.Members = append(el.Members, model.Member{
				Kind: model.Kind(m.Type),
				Ref:  m.Ref,
				Role: m.Role,
			})
		}
		if raw.Center != nil {
			if raw.Center.Lat == 0.0 && raw.Center.Lon == 0.0 && isCenterless(el) {
				break
			}
			p := geo.Point{raw.Center.Lon, raw.Center.Lat}
			el.Center = &p
		}
	}

	return el, true
}

// isCenterless implements spec.md §3's rule: a relation whose center is
// (0,0) and whose type is route_master or stop_area_group has no usable
// geometry, since (0,0) there means "Overpass didn't compute one."
func isCenterless(el *model.Element) bool {
	t := el.Tag("type")
	pt := el.Tag("public_transport")
	return t == "route_master" || pt == "stop_area_group"
}
