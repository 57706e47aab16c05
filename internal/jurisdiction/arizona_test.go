package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArizonaContributionBlock(t *testing.T) {
	p := Arizona()
	records, skipped := p.Parsers["C2"].Parse(linesOf(
		"Smith, John",
		"123 Main St, Phoenix, AZ 85001",
		"01/02/2024 $100.00 Name:",
		"$250.00",
		"Engineer, Acme Corp Occupation:",
	))
	require.Len(t, records, 1)
	assert.Zero(t, skipped)

	rec := records[0]
	assert.Equal(t, "Smith", rec["LAST NAME"].Display())
	assert.Equal(t, "John", rec["FIRST NAME"].Display())
	assert.Equal(t, "123 Main St", rec["ADDRESS (Line 1)"].Display())
	assert.Equal(t, "AZ", rec["STATE"].Display())
	assert.Equal(t, "85001", rec["ZIP"].Display())
	assert.Equal(t, "2024-01-02", rec["DATE"].Display())
	assert.Equal(t, "100", rec["AMOUNT"].Display())
	assert.Equal(t, "250", rec["TOTAL TO DATE"].Display())
	assert.Equal(t, "Engineer", rec["OCCUPATION"].Display())
	assert.Equal(t, "Acme Corp", rec["EMPLOYER"].Display())
	assert.Equal(t, "Contribution", rec["TYPE"].Display())
	assert.NotEmpty(t, rec["RAW"].Display())
}

func TestArizonaContributionWithoutDateIsSkipped(t *testing.T) {
	p := Arizona()
	records, skipped := p.Parsers["C2"].Parse(linesOf(
		"Jones, Bob",
		"456 Elm St",
	))
	assert.Empty(t, records)
	assert.Equal(t, 1, skipped)
}

func TestArizonaRefundType(t *testing.T) {
	p := Arizona()
	records, _ := p.Parsers["C2"].Parse(linesOf(
		"Smith, Jane",
		"10 Oak Ave",
		"Tucson, AZ 85701",
		"03/05/2024 $(50.00) Name:",
	))
	require.Len(t, records, 1)
	assert.Equal(t, "-50", records[0]["AMOUNT"].Display())
	assert.Equal(t, "Refunded Contribution", records[0]["TYPE"].Display())
}

func TestArizonaZipPadding(t *testing.T) {
	assert.Equal(t, "00501", azPadZip("501"))
	assert.Equal(t, "85001", azPadZip("85001"))
	assert.Equal(t, "00501-1234", azPadZip("501-1234"))
}

func TestArizonaNameLine(t *testing.T) {
	assert.True(t, azIsNameLine("Smith, John"))
	assert.False(t, azIsNameLine("123 Main St, Phoenix"))
	assert.False(t, azIsNameLine("Occupation: Engineer"))
	assert.False(t, azIsNameLine("Smith, John, Jr"))
}

func TestArizonaVendorBlock(t *testing.T) {
	p := Arizona()
	records, skipped := p.Parsers["E1"].Parse(linesOf(
		"Acme Printing LLC",
		"200 Industrial Way, Phoenix, AZ 85009",
		"Acme Printing LLC 02/10/2024 $500.00 Name:",
		"Credit Card Address:",
		"$1,200.00",
		"Advertising Category:",
		"Operating Expense Trans. Type:",
	))
	require.Len(t, records, 1)
	assert.Zero(t, skipped)

	rec := records[0]
	assert.Equal(t, "Acme Printing LLC", rec["NAME"].Display())
	assert.Equal(t, "2024-02-10", rec["DATE"].Display())
	assert.Equal(t, "500", rec["AMOUNT"].Display())
	assert.Equal(t, "Credit Card", rec["PAYMENT METHOD"].Display())
	assert.Equal(t, "1200", rec["CYCLE TO DATE"].Display())
	assert.Equal(t, "Advertising", rec["CATEGORY"].Display())
	assert.Equal(t, "Operating Expense", rec["TRANSACTION TYPE"].Display())
}

func TestArizonaMetadata(t *testing.T) {
	records, _ := azParseMetadata(linesOf(
		"Quarter 1 2024",
		"Covers 01/01/2024 - 03/31/2024",
		"Jurisdiction: Arizona Secretary of State",
		"Report Filed on 04/15/2024",
		"Quarter 1 2024", // repeated page header, ignored
	))
	require.Len(t, records, 4)
	assert.Equal(t, "Quarter", records[0]["Field"].Display())
	assert.Equal(t, "1 2024", records[0]["Value"].Display())
	assert.Equal(t, "Filed", records[3]["Field"].Display())
	assert.Equal(t, "04/15/2024", records[3]["Value"].Display())
}
