package extract

import (
	"context"
	"strings"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
)

// TXTExtractor splits a plain-text export into lines, dropping blank and
// whitespace-only lines as a normalization step.
type TXTExtractor struct{}

func NewTXTExtractor() *TXTExtractor {
	return &TXTExtractor{}
}

func (e *TXTExtractor) Extract(_ context.Context, doc filing.Document) (Result, error) {
	if len(doc.Data) == 0 {
		return Result{}, common.NewExtractionError("empty document", nil)
	}
	text := strings.ToValidUTF8(string(doc.Data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	res := Result{Method: "txt", Pages: 1}
	index := 0
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		res.Lines = append(res.Lines, filing.Line{Index: index, Page: 1, Text: raw})
		index++
	}
	if len(res.Lines) == 0 {
		return Result{}, common.NewExtractionError("no extractable text", nil)
	}
	return res, nil
}
