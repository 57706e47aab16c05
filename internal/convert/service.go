// Package convert runs the full pipeline for one document: extract lines,
// segment by schedule headers, parse rows per segment, and assemble the
// workbook. One conversion per call, no state shared between calls.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/extract"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/jurisdiction"
	"github.com/filingworks/filing-converter/internal/segment"
)

type Service struct {
	Registry *jurisdiction.Registry
	// Timeout bounds one conversion; zero means no limit.
	Timeout time.Duration
	Log     *slog.Logger
}

func NewService(registry *jurisdiction.Registry, timeout time.Duration, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{Registry: registry, Timeout: timeout, Log: log}
}

// Result is the outcome of one conversion.
type Result struct {
	ConversionID uuid.UUID
	Jurisdiction string
	Workbook     *filing.Workbook
	Pages        int
	Warnings     []string
	Elapsed      time.Duration
}

// Convert runs one document end to end. Extraction failures abort the whole
// conversion; segmentation and row-level failures degrade to partial or empty
// output, because a malformed filing should still yield what it can.
func (s *Service) Convert(ctx context.Context, jurisdictionID string, doc filing.Document) (*Result, error) {
	start := time.Now()
	id := uuid.New()

	profile, err := s.Registry.Get(jurisdictionID)
	if err != nil {
		return nil, err
	}
	if doc.Format != profile.Format {
		return nil, common.NewAppError("CONVERT_FORMAT",
			fmt.Sprintf("%s expects %s input, got %s", profile.ID, profile.Format, doc.Format),
			common.ErrInvalidInput)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	extractor, err := extract.ForFormat(doc.Format)
	if err != nil {
		return nil, err
	}
	extracted, err := extractor.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ConversionID: id,
		Jurisdiction: profile.ID,
		Pages:        extracted.Pages,
		Warnings:     extracted.Warnings,
	}

	if profile.Assemble != nil {
		wb, err := profile.Assemble(extracted.Lines)
		if err != nil {
			return nil, err
		}
		res.Workbook = wb
	} else {
		res.Workbook = s.assemble(profile, doc, extracted.Lines, res)
	}

	res.Elapsed = time.Since(start)
	s.Log.Info("convert.ok",
		"conversion_id", id.String(),
		"jurisdiction", profile.ID,
		"document", doc.Name,
		"pages", res.Pages,
		"tables", len(res.Workbook.Tables),
		"skipped_rows", res.Workbook.TotalSkipped(),
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res, nil
}

// assemble groups records by schedule across all segments and builds one
// table per schedule in profile order. Schedules the document never opened
// still get a table: an empty schedule means "nothing reported", not an
// absent sheet.
func (s *Service) assemble(profile *jurisdiction.Profile, doc filing.Document, lines []filing.Line, res *Result) *filing.Workbook {
	seg := segment.NewSegmenter(profile.Patterns, s.Log)
	out := seg.Split(lines)
	if !out.Matched {
		res.Warnings = append(res.Warnings, "no recognized schedule headers")
	}
	merged := segment.Merge(out.Segments)

	// Filer-level fields come from the preamble, parsed through the same
	// row-parser mechanism under the reserved metadata schedule. They are
	// parsed first so profiles that stamp filing context onto every schedule
	// row have the values in hand.
	var metaRecords []filing.Record
	if profile.MetadataParser != nil && len(out.Preamble) > 0 {
		metaRecords, _ = profile.MetadataParser.Parse(out.Preamble)
	}
	stamp := metadataValues(profile, doc, metaRecords)

	wb := &filing.Workbook{}
	for _, scheduleID := range profile.Order {
		table := filing.NewTable(scheduleID, profile.Schemas[scheduleID])
		if parser := profile.Parsers[scheduleID]; parser != nil {
			records, skipped := parser.Parse(merged[scheduleID])
			table.Skipped = skipped
			for _, rec := range records {
				for col, v := range stamp {
					rec[col] = v
				}
				table.Append(rec)
			}
		}
		wb.Tables = append(wb.Tables, table)
	}

	if len(metaRecords) > 0 {
		meta := filing.NewTable(constants.MetadataScheduleID, profile.MetadataSchema)
		for _, rec := range metaRecords {
			meta.Append(rec)
		}
		wb.Metadata = meta
	}
	return wb
}

// metadataValues resolves the profile's MetadataColumns against the parsed
// preamble records. The metadata schema's first column carries the field
// label, the second its value; the reserved Source File column resolves to
// the document name. Fields the preamble never mentions are left out, so the
// table schema fills them as empty cells.
func metadataValues(profile *jurisdiction.Profile, doc filing.Document, records []filing.Record) map[string]filing.Value {
	if len(profile.MetadataColumns) == 0 || len(profile.MetadataSchema.Columns) < 2 {
		return nil
	}
	labelCol := profile.MetadataSchema.Columns[0]
	valueCol := profile.MetadataSchema.Columns[1]
	byLabel := make(map[string]filing.Value, len(records))
	for _, rec := range records {
		label, ok := rec[labelCol]
		if !ok {
			continue
		}
		byLabel[label.Display()] = rec[valueCol]
	}

	values := make(map[string]filing.Value, len(profile.MetadataColumns))
	for _, col := range profile.MetadataColumns {
		if col == constants.SourceFileColumn {
			values[col] = filing.TextValue(doc.Name)
			continue
		}
		if v, ok := byLabel[col]; ok {
			values[col] = v
		}
	}
	return values
}
