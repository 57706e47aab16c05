// Package batch converts every matching filing in a directory, one output
// workbook per input file.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/convert"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/workbook"
)

// Runner walks a source directory and converts each file it matches.
type Runner struct {
	Service *convert.Service
	Log     *slog.Logger
}

func NewRunner(service *convert.Service, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{Service: service, Log: log}
}

// Summary describes one converted file.
type Summary struct {
	Filename    string
	Pages       int
	Tables      int
	Rows        int
	SkippedRows int
	OutputPath  string
}

// Stats aggregates a whole run.
type Stats struct {
	Matched   int
	Converted int
	Failed    int
}

// Run converts every file in srcDir whose name matches pattern (a filepath
// glob, e.g. "*.pdf") and writes one XLSX per input into outDir. A file that
// fails conversion is logged and skipped; the run continues.
func (r *Runner) Run(ctx context.Context, jurisdictionID, srcDir, pattern, outDir string) ([]Summary, Stats, error) {
	var stats Stats

	matches, err := filepath.Glob(filepath.Join(srcDir, pattern))
	if err != nil {
		return nil, stats, common.NewAppError("BATCH_PATTERN", pattern, common.ErrInvalidInput)
	}
	if len(matches) == 0 {
		return nil, stats, common.NewAppError("BATCH_EMPTY",
			fmt.Sprintf("no files match %s in %s", pattern, srcDir), common.ErrInvalidInput)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, stats, common.WrapError(err, "create output dir")
	}

	var summaries []Summary
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return summaries, stats, err
		}
		stats.Matched++

		summary, err := r.runOne(ctx, jurisdictionID, path, outDir)
		if err != nil {
			stats.Failed++
			r.Log.Warn("batch.file_failed", "file", path, "error", err)
			continue
		}
		stats.Converted++
		summaries = append(summaries, *summary)
	}

	r.Log.Info("batch.done",
		"jurisdiction", jurisdictionID,
		"matched", stats.Matched,
		"converted", stats.Converted,
		"failed", stats.Failed,
	)
	return summaries, stats, nil
}

func (r *Runner) runOne(ctx context.Context, jurisdictionID, path, outDir string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read input")
	}

	name := filepath.Base(path)
	format := constants.MapExtToFormat(filepath.Ext(name))
	if format == "" {
		return nil, common.NewAppError("BATCH_EXT", name, common.ErrUnsupportedFormat)
	}

	res, err := r.Service.Convert(ctx, jurisdictionID, filing.Document{
		Name:   name,
		Format: filing.Format(format),
		Data:   data,
	})
	if err != nil {
		return nil, err
	}

	out, err := workbook.WriteXLSX(res.Workbook)
	if err != nil {
		return nil, err
	}
	outPath := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+".xlsx")
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return nil, common.WrapError(err, "write output")
	}

	rows := 0
	for _, t := range res.Workbook.Tables {
		rows += len(t.Records)
	}
	return &Summary{
		Filename:    name,
		Pages:       res.Pages,
		Tables:      len(res.Workbook.Tables),
		Rows:        rows,
		SkippedRows: res.Workbook.TotalSkipped(),
		OutputPath:  outPath,
	}, nil
}
