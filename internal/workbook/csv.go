package workbook

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/filingworks/filing-converter/internal/filing"
)

// WriteCSV serializes one table as CSV: header row then records in order.
func WriteCSV(table *filing.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for i := range table.Records {
		if err := w.Write(table.Row(i)); err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonTable mirrors the AZ reference output: one object per record with
// display-formatted values.
type jsonTable struct {
	Schedule string              `json:"schedule"`
	Name     string              `json:"name"`
	Skipped  int                 `json:"skipped_rows"`
	Records  []map[string]string `json:"records"`
}

// WriteJSON serializes the whole workbook as JSON.
func WriteJSON(wb *filing.Workbook) ([]byte, error) {
	tables := wb.Tables
	if wb.Metadata != nil {
		tables = append(append([]*filing.Table{}, tables...), wb.Metadata)
	}
	out := make([]jsonTable, 0, len(tables))
	for _, t := range tables {
		jt := jsonTable{Schedule: t.ScheduleID, Name: t.Name, Skipped: t.Skipped, Records: []map[string]string{}}
		for i := range t.Records {
			rec := make(map[string]string, len(t.Columns))
			row := t.Row(i)
			for c, col := range t.Columns {
				rec[col] = row[c]
			}
			jt.Records = append(jt.Records, rec)
		}
		out = append(out, jt)
	}
	return json.MarshalIndent(out, "", "  ")
}
