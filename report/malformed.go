package report

import "fmt"

// MalformedElementError reports an element with no discoverable type —
// the one case spec.md §7 requires failing loudly rather than emitting a
// diagnostic, since there is no type to attribute the diagnostic to.
type MalformedElementError struct {
	Index int // position in the input stream
}

func (e *MalformedElementError) Error() string {
	return fmt.Sprintf("malformed element at index %d: missing \"type\"", e.Index)
}
