package freq

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"unicode"
)

// WhitespaceLabel is the bucket AddFold assigns to every whitespace
// character: spaces, tabs, and line breaks all land here.
const WhitespaceLabel = "whitespace"

// Entry is one row of a frequency report.
type Entry struct {
	Label string // the character, or WhitespaceLabel for the folded bucket
	Count int
}

// Counter accumulates character frequencies. The zero value is not usable;
// construct with NewCounter. Not safe for concurrent use.
type Counter struct {
	counts map[string]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add counts r verbatim.
func (c *Counter) Add(r rune) {
	c.counts[string(r)]++
}

// AddFold counts r case-insensitively: whitespace collapses into
// WhitespaceLabel, everything else is lowered first.
func (c *Counter) AddFold(r rune) {
	if unicode.IsSpace(r) {
		c.counts[WhitespaceLabel]++

		return
	}
	c.counts[string(unicode.ToLower(r))]++
}

// AddString counts every character of s verbatim.
func (c *Counter) AddString(s string) {
	for _, r := range s {
		c.Add(r)
	}
}

// AddStringFold counts every character of s through AddFold.
func (c *Counter) AddStringFold(s string) {
	for _, r := range s {
		c.AddFold(r)
	}
}

// Count returns the accumulated count for a label. Single characters are
// their own labels; folded whitespace lives under WhitespaceLabel.
func (c *Counter) Count(label string) int {
	return c.counts[label]
}

// Len returns the number of distinct labels seen so far.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Entries returns a sorted snapshot of the counts. A nil less falls back to
// descending count with ties broken by ascending label, which keeps reports
// deterministic. The snapshot is independent of the Counter: further Add
// calls do not affect it.
// Complexity: O(u·log u) for u unique labels.
func (c *Counter) Entries(less func(a, b Entry) bool) []Entry {
	entries := make([]Entry, 0, len(c.counts))
	for label, count := range c.counts {
		entries = append(entries, Entry{Label: label, Count: count})
	}
	if less == nil {
		less = byCountDescending
	}
	sort.Slice(entries, func(i, j int) bool { return less(entries[i], entries[j]) })

	return entries
}

// WriteTable renders the default-ordered entries as a fixed-width
// "Character | Frequency" report.
func (c *Counter) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprint(w, "Character  | Frequency\n-----------+----------\n"); err != nil {
		return err
	}
	for _, e := range c.Entries(nil) {
		if _, err := fmt.Fprintf(w, "%-10s | %-9d\n", e.Label, e.Count); err != nil {
			return err
		}
	}

	return nil
}

// WriteCSV writes the default-ordered entries as label,count records.
func (c *Counter) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, e := range c.Entries(nil) {
		if err := cw.Write([]string{e.Label, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// byCountDescending is the default report order: most frequent first,
// ties alphabetical.
func byCountDescending(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}

	return a.Label < b.Label
}
