package jurisdiction

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/filing"
)

// Pennsylvania campaign finance TXT exports are comma-separated with
// inconsistent row lengths. The converter tolerates ragged rows, trims every
// cell, drops blank rows, and pads to a uniform column count under generated
// "Column N" headers. No schedule segmentation applies.

func Pennsylvania() *Profile {
	return &Profile{
		ID:       string(constants.JurisdictionPennsylvania),
		Name:     "Pennsylvania Campaign Finance (TXT)",
		Format:   filing.FormatTXT,
		Assemble: paAssemble,
	}
}

func paAssemble(lines []filing.Line) (*filing.Workbook, error) {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(texts, "\n")))
	reader.FieldsPerRecord = -1 // tolerate inconsistent row lengths
	reader.LazyQuotes = true

	var rows [][]string
	maxCols := 0
	skipped := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// A malformed row is skipped, not fatal.
			skipped++
			continue
		}
		cleaned := make([]string, len(row))
		blank := true
		for i, cell := range row {
			cleaned[i] = strings.TrimSpace(cell)
			if cleaned[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		if len(cleaned) > maxCols {
			maxCols = len(cleaned)
		}
		rows = append(rows, cleaned)
	}

	columns := make([]string, maxCols)
	for i := range columns {
		columns[i] = fmt.Sprintf("Column %d", i+1)
	}

	table := filing.NewTable("RECORDS", filing.Schema{Name: "Records", Columns: columns})
	table.Skipped = skipped
	for _, row := range rows {
		rec := make(filing.Record, maxCols)
		for i, col := range columns {
			if i < len(row) {
				rec[col] = filing.TextValue(row[i])
			}
		}
		table.Append(rec)
	}

	return &filing.Workbook{Tables: []*filing.Table{table}}, nil
}
