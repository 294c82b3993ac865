package report

import "fmt"

// Subject identifies the element an Entry is attributed to, independent of
// the model package to avoid an import cycle (model.City accumulates
// report.Entry values; report must not import model back).
type Subject struct {
	Type string // "node", "way", or "relation"
	ID   int64
	Name string // name, falling back to ref — whatever the caller had handy
}

// Entry is one validation diagnostic. Message formatting matches spec.md
// §6: `"<text> (<type> <id>, "<name-or-ref>")"` when attributed to an
// element, otherwise the plain text.
type Entry struct {
	Text     string
	Severity Severity
	Subject  *Subject
}

// String renders the entry exactly as spec.md §6 describes.
func (e Entry) String() string {
	if e.Subject == nil {
		return e.Text
	}
	return fmt.Sprintf("%s (%s %d, %q)", e.Text, e.Subject.Type, e.Subject.ID, e.Subject.Name)
}
