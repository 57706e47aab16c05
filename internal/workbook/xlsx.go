// Package workbook serializes assembled tables for download and preview.
package workbook

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/filingworks/filing-converter/internal/filing"
)

var invalidSheetChars = regexp.MustCompile(`[:\\/?*\[\]]`)

// safeSheetName coerces a table name into an Excel-compliant sheet title,
// keeping it unique within the workbook.
func safeSheetName(name string, used map[string]bool) string {
	title := strings.TrimSpace(invalidSheetChars.ReplaceAllString(name, "_"))
	if title == "" {
		title = "Sheet"
	}
	// Excel's 31-char limit counts characters, and a byte slice could cut a
	// multi-byte rune in half, so truncate on runes.
	if runes := []rune(title); len(runes) > 31 {
		title = string(runes[:31])
	}
	if !used[title] {
		used[title] = true
		return title
	}
	base := title
	if runes := []rune(base); len(runes) > 29 {
		base = string(runes[:29])
	}
	for suffix := 1; ; suffix++ {
		candidate := fmt.Sprintf("%s_%d", base, suffix)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// WriteXLSX returns an XLSX workbook (as bytes) with one sheet per table and
// a trailing metadata sheet when present. All cells are written as text so a
// written workbook reads back exactly as it was produced.
func WriteXLSX(wb *filing.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	used := map[string]bool{}

	tables := wb.Tables
	if wb.Metadata != nil {
		tables = append(append([]*filing.Table{}, tables...), wb.Metadata)
	}

	first := ""
	for _, table := range tables {
		sheet := safeSheetName(table.Name, used)
		if first == "" {
			first = sheet
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %q: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, table); err != nil {
			return nil, err
		}
	}

	// Drop excelize's default sheet so only our tables remain.
	if first != "" && first != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}
	if index, err := f.GetSheetIndex(first); err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, table *filing.Table) error {
	for i, h := range table.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return err
		}
	}
	for r := range table.Records {
		row := table.Row(r)
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadXLSX reads a workbook written by WriteXLSX back into tables, in sheet
// order. Used by callers that verify round-trip fidelity.
func ReadXLSX(data []byte) ([]*filing.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xlsx open: %w", err)
	}
	defer f.Close()

	var tables []*filing.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		table := &filing.Table{Name: sheet}
		if len(rows) == 0 {
			tables = append(tables, table)
			continue
		}
		table.Columns = rows[0]
		for _, row := range rows[1:] {
			rec := make(filing.Record, len(table.Columns))
			for i, col := range table.Columns {
				v := ""
				if i < len(row) {
					v = row[i]
				}
				rec[col] = filing.TextValue(v)
			}
			table.Records = append(table.Records, rec)
		}
		tables = append(tables, table)
	}
	return tables, nil
}
