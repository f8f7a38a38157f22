package freq_test

import (
	"strings"
	"testing"

	"github.com/cipherkit/subcipher/freq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounter_AddAndCount verifies verbatim counting.
func TestCounter_AddAndCount(t *testing.T) {
	c := freq.NewCounter()
	c.AddString("aabA")

	assert.Equal(t, 2, c.Count("a"))
	assert.Equal(t, 1, c.Count("b"))
	assert.Equal(t, 1, c.Count("A"), "verbatim counting keeps cases apart")
	assert.Equal(t, 0, c.Count("z"))
	assert.Equal(t, 3, c.Len())
}

// TestCounter_AddFold verifies case folding and the whitespace bucket.
func TestCounter_AddFold(t *testing.T) {
	c := freq.NewCounter()
	c.AddStringFold("Go Go\tgo!\n")

	assert.Equal(t, 3, c.Count("g"))
	assert.Equal(t, 3, c.Count("o"))
	assert.Equal(t, 3, c.Count(freq.WhitespaceLabel), "space, tab, and newline fold together")
	assert.Equal(t, 1, c.Count("!"))
	assert.Equal(t, 0, c.Count("G"), "folded counting has no uppercase labels")
}

// TestCounter_EntriesDefaultOrder verifies the default report order:
// descending count, ties broken by label.
func TestCounter_EntriesDefaultOrder(t *testing.T) {
	c := freq.NewCounter()
	c.AddStringFold("Go Go go!")

	got := c.Entries(nil)
	want := []freq.Entry{
		{Label: "g", Count: 3},
		{Label: "o", Count: 3},
		{Label: freq.WhitespaceLabel, Count: 2},
		{Label: "!", Count: 1},
	}
	assert.Equal(t, want, got)
}

// TestCounter_EntriesCustomOrder verifies that a caller-supplied comparison
// replaces the default.
func TestCounter_EntriesCustomOrder(t *testing.T) {
	c := freq.NewCounter()
	c.AddString("bbbac")

	got := c.Entries(func(a, b freq.Entry) bool { return a.Label < b.Label })
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Label)
	assert.Equal(t, "b", got[1].Label)
	assert.Equal(t, "c", got[2].Label)
}

// TestCounter_EntriesSnapshot verifies that a snapshot is unaffected by
// later additions.
func TestCounter_EntriesSnapshot(t *testing.T) {
	c := freq.NewCounter()
	c.AddString("xy")

	snap := c.Entries(nil)
	c.AddString("xxxx")

	for _, e := range snap {
		assert.Equal(t, 1, e.Count, "snapshot must not track later Add calls")
	}
	assert.Equal(t, 5, c.Count("x"))
}

// TestCounter_WriteTable pins down the report layout.
func TestCounter_WriteTable(t *testing.T) {
	c := freq.NewCounter()
	c.AddStringFold("Go Go go!")

	var b strings.Builder
	require.NoError(t, c.WriteTable(&b))

	want := "Character  | Frequency\n" +
		"-----------+----------\n" +
		"g          | 3        \n" +
		"o          | 3        \n" +
		"whitespace | 2        \n" +
		"!          | 1        \n"
	assert.Equal(t, want, b.String())
}

// TestCounter_WriteCSV verifies the CSV rows match the default entry order.
func TestCounter_WriteCSV(t *testing.T) {
	c := freq.NewCounter()
	c.AddStringFold("Go Go go!")

	var b strings.Builder
	require.NoError(t, c.WriteCSV(&b))
	assert.Equal(t, "g,3\no,3\nwhitespace,2\n!,1\n", b.String())
}
