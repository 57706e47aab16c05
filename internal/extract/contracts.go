package extract

import (
	"context"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
)

// LineExtractor is Stage 1: document bytes -> ordered text lines.
type LineExtractor interface {
	Extract(ctx context.Context, doc filing.Document) (Result, error)
}

type Result struct {
	Lines    []filing.Line
	Pages    int
	Method   string // "pdf-text" | "txt"
	Warnings []string
}

// ForFormat returns the extractor for a document format.
func ForFormat(f filing.Format) (LineExtractor, error) {
	switch f {
	case filing.FormatPDF:
		return NewPDFExtractor(), nil
	case filing.FormatTXT:
		return NewTXTExtractor(), nil
	default:
		return nil, common.NewAppError("EXTRACT_FORMAT", string(f), common.ErrUnsupportedFormat)
	}
}
