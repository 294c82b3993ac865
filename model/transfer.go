package model

// Transfer is a set (size ≥ 2) of StopAreas known to be interchangeable
// (spec.md §3 Transfer).
type Transfer struct {
	stopAreas map[ID]*StopArea
}

// NewTransfer builds a Transfer from a set of StopAreas, deduplicated by
// StopArea ID.
func NewTransfer(areas []*StopArea) Transfer {
	t := Transfer{stopAreas: make(map[ID]*StopArea, len(areas))}
	for _, a := range areas {
		t.stopAreas[a.ID] = a
	}
	return t
}

// Len returns the number of distinct StopAreas in the transfer.
func (t Transfer) Len() int {
	return len(t.stopAreas)
}

// Contains reports whether a StopArea with the given id is a member.
func (t Transfer) Contains(id ID) bool {
	_, ok := t.stopAreas[id]
	return ok
}

// StopAreas returns the member StopAreas in unspecified order.
func (t Transfer) StopAreas() []*StopArea {
	out := make([]*StopArea, 0, len(t.stopAreas))
	for _, a := range t.stopAreas {
		out = append(out, a)
	}
	return out
}

// Filter returns a new Transfer containing only StopAreas for which keep
// returns true.
func (t Transfer) Filter(keep func(*StopArea) bool) Transfer {
	out := Transfer{stopAreas: make(map[ID]*StopArea)}
	for id, a := range t.stopAreas {
		if keep(a) {
			out.stopAreas[id] = a
		}
	}
	return out
}
