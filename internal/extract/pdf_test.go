package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/pdftest"
)

func TestPDFExtractorLinesInOrder(t *testing.T) {
	data := pdftest.Build([]string{
		"SCHEDULE C2",
		"Smith, John",
		"123 Main St, Phoenix, AZ 85001",
	})
	doc := filing.Document{Name: "filing.pdf", Format: filing.FormatPDF, Data: data}

	res, err := NewPDFExtractor().Extract(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "pdf-text", res.Method)

	require.Len(t, res.Lines, 3)
	assert.Equal(t, "SCHEDULE C2", res.Lines[0].Text)
	assert.Equal(t, "Smith, John", res.Lines[1].Text)
	assert.Equal(t, "123 Main St, Phoenix, AZ 85001", res.Lines[2].Text)
	for i, line := range res.Lines {
		assert.Equal(t, i, line.Index)
		assert.Equal(t, 1, line.Page)
	}
}

func TestPDFExtractorMultiPage(t *testing.T) {
	data := pdftest.Build(
		[]string{"page one line"},
		[]string{"page two line"},
	)
	doc := filing.Document{Format: filing.FormatPDF, Data: data}

	res, err := NewPDFExtractor().Extract(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, 1, res.Lines[0].Page)
	assert.Equal(t, 2, res.Lines[1].Page)
}

func TestPDFExtractorEmptyDocument(t *testing.T) {
	_, err := NewPDFExtractor().Extract(context.Background(), filing.Document{Format: filing.FormatPDF})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
}

func TestPDFExtractorGarbageInput(t *testing.T) {
	doc := filing.Document{Format: filing.FormatPDF, Data: []byte("this is not a pdf at all")}
	_, err := NewPDFExtractor().Extract(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
}
