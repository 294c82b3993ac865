// Package cityindex builds the content-addressed element index (spec.md
// §2 step 1) and selects, for each city, the subset of elements that
// belong to it (spec.md §2 step 2 / §4.5 City Binding).
package cityindex

import "github.com/theoremus-urban-solutions/subway-topology-validator/model"

// Index is a content-addressed mapping from element identity to element
// record, built once from the full input stream. It is shared, read-only,
// immutable input to every city's binding pass.
type Index struct {
	byID  map[model.ID]*model.Element
	order []model.ID
}

// Build constructs an Index from the decoded element stream, preserving
// input order.
func Build(elements []*model.Element) *Index {
	idx := &Index{
		byID:  make(map[model.ID]*model.Element, len(elements)),
		order: make([]model.ID, 0, len(elements)),
	}
	for _, el := range elements {
		id := el.ID()
		if _, exists := idx.byID[id]; !exists {
			idx.order = append(idx.order, id)
		}
		idx.byID[id] = el
	}
	return idx
}

// Get looks up an element by canonical id.
func (idx *Index) Get(id model.ID) (*model.Element, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Elements returns every indexed element, in input order.
func (idx *Index) Elements() []*model.Element {
	out := make([]*model.Element, 0, len(idx.order))
	for _, id := range idx.order {
		out = append(out, idx.byID[id])
	}
	return out
}

// Len returns the number of indexed elements.
func (idx *Index) Len() int {
	return len(idx.order)
}
