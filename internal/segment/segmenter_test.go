package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/filing"
)

func linesOf(texts ...string) []filing.Line {
	out := make([]filing.Line, len(texts))
	for i, t := range texts {
		out[i] = filing.Line{Index: i, Page: 1, Text: t}
	}
	return out
}

func TestSplitBasic(t *testing.T) {
	s := NewSegmenter([]HeaderPattern{
		Header("A", `^SCHEDULE A\b`),
		Header("B", `^SCHEDULE B\b`),
	}, nil)

	out := s.Split(linesOf(
		"Filer: Example Committee",
		"SCHEDULE A",
		"row one",
		"row two",
		"SCHEDULE B",
		"row three",
	))

	require.True(t, out.Matched)
	require.Len(t, out.Segments, 2)
	assert.Equal(t, "A", out.Segments[0].ScheduleID)
	assert.Len(t, out.Segments[0].Lines, 2)
	assert.Equal(t, "B", out.Segments[1].ScheduleID)
	assert.Len(t, out.Segments[1].Lines, 1)
	require.Len(t, out.Preamble, 1)
	assert.Equal(t, "Filer: Example Committee", out.Preamble[0].Text)
}

func TestSplitEmptySegmentPreserved(t *testing.T) {
	s := NewSegmenter([]HeaderPattern{
		Header("A", `^SCHEDULE A\b`),
		Header("B", `^SCHEDULE B\b`),
	}, nil)

	out := s.Split(linesOf("SCHEDULE A", "SCHEDULE B", "row"))

	require.Len(t, out.Segments, 2)
	assert.Equal(t, "A", out.Segments[0].ScheduleID)
	assert.Empty(t, out.Segments[0].Lines, "header followed by header yields an empty segment")
	assert.Len(t, out.Segments[1].Lines, 1)
}

func TestSplitFirstPatternWins(t *testing.T) {
	// Both patterns match the same line; the earlier one takes it.
	s := NewSegmenter([]HeaderPattern{
		Header("SPECIFIC", `^SCHEDULE A - Contributions$`),
		Header("GENERIC", `^SCHEDULE A\b`),
	}, nil)

	out := s.Split(linesOf("SCHEDULE A - Contributions", "row"))
	require.Len(t, out.Segments, 1)
	assert.Equal(t, "SPECIFIC", out.Segments[0].ScheduleID)
}

func TestSplitNoHeaders(t *testing.T) {
	s := NewSegmenter([]HeaderPattern{Header("A", `^SCHEDULE A\b`)}, nil)
	out := s.Split(linesOf("just", "plain", "text"))
	assert.False(t, out.Matched)
	assert.Empty(t, out.Segments)
	assert.Len(t, out.Preamble, 3)
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	merged := Merge([]filing.Segment{
		{ScheduleID: "A", Lines: linesOf("a1")},
		{ScheduleID: "B", Lines: linesOf("b1")},
		{ScheduleID: "A", Lines: linesOf("a2", "a3")},
	})
	require.Len(t, merged["A"], 3)
	assert.Equal(t, "a1", merged["A"][0].Text)
	assert.Equal(t, "a2", merged["A"][1].Text)
	assert.Equal(t, "a3", merged["A"][2].Text)
	assert.Len(t, merged["B"], 1)
}
