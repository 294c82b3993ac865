// Package model holds the object graph the reconstruction engine builds:
// raw Elements decoded from the input stream, and the derived Station,
// StopArea, Route, RouteMaster, Transfer and City types built from them.
package model

import (
	"fmt"

	"github.com/theoremus-urban-solutions/subway-topology-validator/geo"
)

// Kind is the element discriminator: node, way, or relation.
type Kind string

const (
	KindNode     Kind = "node"
	KindWay      Kind = "way"
	KindRelation Kind = "relation"
)

func (k Kind) letter() byte {
	return k[0]
}

// ID is the canonical composite identity of an element: the first
// character of its type plus its decimal numeric id ("n123", "w456",
// "r789" — spec.md §6 el_id).
type ID string

// NewID builds the canonical ID for a (kind, numeric id) pair.
func NewID(kind Kind, num int64) ID {
	return ID(fmt.Sprintf("%c%d", kind.letter(), num))
}

// Member is one entry in a relation's ordered member list.
type Member struct {
	Kind Kind
	Ref  int64
	Role string
}

// ID returns the canonical ID the member references.
func (m Member) ID() ID {
	return NewID(m.Kind, m.Ref)
}

// Element is a tagged geographic object: a node, way, or relation. All
// three variants are represented by one struct (rather than three Go
// types behind an interface) because Overpass-style input arrives as one
// flat JSON shape per element and distinguishing by Kind is cheaper than
// a type switch at every call site. Kind is the single authoritative
// discriminator, never tag presence.
type Element struct {
	Kind   Kind
	Num    int64
	Tags   map[string]string
	Center *geo.Point // nil when unavailable (spec.md §3 centerless rule)

	// Way-only.
	Nodes []int64

	// Relation-only.
	Members []Member
}

// ID returns the element's canonical composite identity.
func (e *Element) ID() ID {
	return NewID(e.Kind, e.Num)
}

// Tag returns a tag value, or "" if absent.
func (e *Element) Tag(key string) string {
	if e.Tags == nil {
		return ""
	}
	return e.Tags[key]
}

// HasTag reports whether a tag key is present, regardless of value.
func (e *Element) HasTag(key string) bool {
	if e.Tags == nil {
		return false
	}
	_, ok := e.Tags[key]
	return ok
}

// Name returns the element's name tag, falling back to its ref tag, or ""
// if neither is present — the same name-or-ref rule model.Subject applies.
func (e *Element) Name() string {
	if n := e.Tag("name"); n != "" {
		return n
	}
	return e.Tag("ref")
}
