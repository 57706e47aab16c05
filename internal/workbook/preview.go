package workbook

import "github.com/filingworks/filing-converter/internal/filing"

// PreviewLimit is the number of records the UI can display per table.
const PreviewLimit = 25

// SheetPreview is the displayable slice of one table.
type SheetPreview struct {
	Name         string     `json:"name"`
	Columns      []string   `json:"columns"`
	Rows         [][]string `json:"rows"`
	TotalRecords int        `json:"total_records"`
	SkippedRows  int        `json:"skipped_rows"`
}

// Preview materializes the first PreviewLimit records of every table,
// metadata last.
func Preview(wb *filing.Workbook) []SheetPreview {
	tables := wb.Tables
	if wb.Metadata != nil {
		tables = append(append([]*filing.Table{}, tables...), wb.Metadata)
	}
	previews := make([]SheetPreview, 0, len(tables))
	for _, t := range tables {
		limit := len(t.Records)
		if limit > PreviewLimit {
			limit = PreviewLimit
		}
		p := SheetPreview{
			Name:         t.Name,
			Columns:      t.Columns,
			Rows:         make([][]string, 0, limit),
			TotalRecords: len(t.Records),
			SkippedRows:  t.Skipped,
		}
		for i := 0; i < limit; i++ {
			p.Rows = append(p.Rows, t.Row(i))
		}
		previews = append(previews, p)
	}
	return previews
}
