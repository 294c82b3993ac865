package report

// Collector accumulates diagnostics in discovery order, per city, mirroring
// subway_structure.py's City.warn/City.error. It deliberately has no
// deduplication: ordering and duplication are part of spec.md §8's
// determinism property.
type Collector struct {
	entries []Entry
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn appends a warning-severity entry.
func (c *Collector) Warn(text string, subject *Subject) {
	c.entries = append(c.entries, Entry{Text: text, Severity: Warning, Subject: subject})
}

// Err appends an error-severity entry.
func (c *Collector) Err(text string, subject *Subject) {
	c.entries = append(c.entries, Entry{Text: text, Severity: Error, Subject: subject})
}

// Entries returns all accumulated entries in discovery order.
func (c *Collector) Entries() []Entry {
	return c.entries
}

// Errors returns the message text of every error-severity entry, in
// discovery order.
func (c *Collector) Errors() []string {
	return c.filterText(Error)
}

// Warnings returns the message text of every warning-severity entry, in
// discovery order.
func (c *Collector) Warnings() []string {
	return c.filterText(Warning)
}

func (c *Collector) filterText(sev Severity) []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Severity == sev {
			out = append(out, e.String())
		}
	}
	return out
}

// IsGood reports whether no error-severity entry has been recorded
// (spec.md §8 invariant 6: is_good ⇔ errors == []).
func (c *Collector) IsGood() bool {
	for _, e := range c.entries {
		if e.Severity == Error {
			return false
		}
	}
	return true
}
