package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/filing"
)

func TestDisclosureCoversSchedulesAtoI(t *testing.T) {
	p := Disclosure()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}, p.Order)
	for _, id := range p.Order {
		assert.Contains(t, p.Parsers, id)
		assert.Contains(t, p.Schemas, id)
	}
	assert.Equal(t, "Schedule A", p.Schemas["A"].Name)
}

func TestDisclosureHeaderMatching(t *testing.T) {
	p := Disclosure()
	assert.True(t, p.Patterns[0].Pattern.MatchString("SCHEDULE A: ASSETS AND UNEARNED INCOME"))
	assert.True(t, p.Patterns[0].Pattern.MatchString("Schedule A"))
	assert.False(t, p.Patterns[0].Pattern.MatchString("Schedule AB"))
}

func TestDisclosureScheduleCRow(t *testing.T) {
	p := Disclosure()
	line := filing.Line{
		Text: "State of Texas Salary $55,000.00",
		Words: []filing.Word{
			{X: 10, Text: "State"},
			{X: 38, Text: "of"},
			{X: 52, Text: "Texas"},
			{X: 200, Text: "Salary"},
			{X: 400, Text: "$55,000.00"},
		},
	}
	records, skipped := p.Parsers["C"].Parse([]filing.Line{line})
	require.Len(t, records, 1)
	assert.Zero(t, skipped)
	assert.Equal(t, "State of Texas", records[0]["Source"].Display())
	assert.Equal(t, "Salary", records[0]["Type"].Display())
	assert.Equal(t, "$55,000.00", records[0]["Amount"].Display())
}

func TestDisclosureKeepLineDropsCaptionsAndFooters(t *testing.T) {
	keep := fdKeepLine([]string{"Source", "Type", "Amount"})
	assert.False(t, keep(filing.Line{Text: "Source Type Amount"}))
	assert.False(t, keep(filing.Line{Text: "Page 3 of 12"}))
	assert.False(t, keep(filing.Line{Text: "Filing ID #10012345"}))
	assert.True(t, keep(filing.Line{Text: "State of Texas Salary $55,000.00"}))
}
