package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPennsylvaniaRaggedRows(t *testing.T) {
	wb, err := paAssemble(linesOf(
		"A,B,C",
		"D,E",
		"F,G,H,I",
	))
	require.NoError(t, err)
	require.Len(t, wb.Tables, 1)

	table := wb.Tables[0]
	assert.Equal(t, "Records", table.Name)
	assert.Equal(t, []string{"Column 1", "Column 2", "Column 3", "Column 4"}, table.Columns)
	require.Len(t, table.Records, 3)
	// Short rows pad out to the widest row.
	assert.Equal(t, []string{"D", "E", "", ""}, table.Row(1))
	assert.Equal(t, []string{"F", "G", "H", "I"}, table.Row(2))
}

func TestPennsylvaniaBlankAndQuotedCells(t *testing.T) {
	wb, err := paAssemble(linesOf(
		`"Smith, John",100.00,2024-01-02`,
		",,",
		"  Jones  ,200.00,2024-02-03",
	))
	require.NoError(t, err)
	table := wb.Tables[0]
	require.Len(t, table.Records, 2, "all-blank rows are dropped")
	assert.Equal(t, "Smith, John", table.Row(0)[0])
	assert.Equal(t, "Jones", table.Row(1)[0], "cells are trimmed")
}

func TestPennsylvaniaEmptyInput(t *testing.T) {
	wb, err := paAssemble(nil)
	require.NoError(t, err)
	require.Len(t, wb.Tables, 1)
	assert.Empty(t, wb.Tables[0].Records)
}
