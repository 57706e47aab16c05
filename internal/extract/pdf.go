package extract

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
)

// PDFExtractor reconstructs text lines from a PDF's positioned glyphs.
// Glyphs are grouped into rows by Y coordinate, ordered by X within a row,
// and joined into words using a spacing threshold relative to font size.
type PDFExtractor struct {
	// RowTolerance is the Y distance (points) within which glyphs belong to
	// the same visual line.
	RowTolerance float64
	// WordSpaceMultiplier of the font size marks a word boundary gap.
	WordSpaceMultiplier float64
}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{
		RowTolerance:        2.0,
		WordSpaceMultiplier: 0.3,
	}
}

// Extract pulls every page's text lines in reading order. It fails with an
// extraction error when the document is unreadable, encrypted, or carries no
// text layer (e.g. a scanned image without OCR).
func (e *PDFExtractor) Extract(ctx context.Context, doc filing.Document) (res Result, err error) {
	// The underlying reader panics on some malformed cross-reference tables;
	// surface those as extraction errors instead of crashing the conversion.
	defer func() {
		if r := recover(); r != nil {
			err = common.NewExtractionError("malformed PDF", fmt.Errorf("%v", r))
		}
	}()

	if len(doc.Data) == 0 {
		return Result{}, common.NewExtractionError("empty document", nil)
	}
	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return Result{}, common.NewExtractionError("unreadable PDF", err)
	}

	res = Result{Method: "pdf-text", Pages: reader.NumPage()}
	index := 0
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		if ctx.Err() != nil {
			return Result{}, common.WrapError(ctx.Err(), "pdf extraction canceled")
		}
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: missing content", pageNum))
			continue
		}
		content := page.Content()
		for _, row := range e.buildRows(content.Text) {
			line := e.buildLine(row)
			if line.Text == "" {
				continue
			}
			line.Index = index
			line.Page = pageNum
			res.Lines = append(res.Lines, line)
			index++
		}
	}

	if len(res.Lines) == 0 {
		return Result{}, common.NewExtractionError("no extractable text layer", nil)
	}
	return res, nil
}

// buildRows groups glyphs into visual rows, top of page first.
func (e *PDFExtractor) buildRows(texts []pdf.Text) [][]pdf.Text {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" && t.S != " " {
			continue
		}
		glyphs = append(glyphs, t)
	}
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].Y != glyphs[j].Y {
			return glyphs[i].Y > glyphs[j].Y // PDF Y grows upward
		}
		return glyphs[i].X < glyphs[j].X
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	var rowY float64
	for _, g := range glyphs {
		if current == nil || rowY-g.Y > e.RowTolerance {
			if current != nil {
				rows = append(rows, current)
			}
			current = []pdf.Text{g}
			rowY = g.Y
			continue
		}
		current = append(current, g)
	}
	if current != nil {
		rows = append(rows, current)
	}
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// buildLine joins a row's glyphs into text and records word start positions.
func (e *PDFExtractor) buildLine(row []pdf.Text) filing.Line {
	var sb strings.Builder
	var words []filing.Word
	var wordStart float64
	var word strings.Builder
	var prevEnd float64

	flush := func() {
		if word.Len() == 0 {
			return
		}
		text := strings.TrimSpace(word.String())
		if text != "" {
			words = append(words, filing.Word{X: wordStart, Text: text})
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
		}
		word.Reset()
	}

	for i, g := range row {
		gap := g.X - prevEnd
		threshold := e.WordSpaceMultiplier * g.FontSize
		if threshold <= 0 {
			threshold = 1.0
		}
		if i > 0 && gap > threshold {
			flush()
		}
		if word.Len() == 0 {
			wordStart = g.X
		}
		word.WriteString(g.S)
		prevEnd = g.X + g.W
	}
	flush()

	return filing.Line{Text: filing.CleanLine(sb.String()), Words: words}
}
