// Package pdftest builds minimal single-font PDF documents for tests. The
// files are uncompressed and carry a correct cross-reference table, which is
// all the extractor needs.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Text is one string drawn at an absolute page position, in points with the
// origin at the bottom-left corner.
type Text struct {
	X, Y float64
	S    string
}

// Build returns a PDF with one page per element of pages; each page draws its
// lines top to bottom in 12pt Helvetica.
func Build(pages ...[]string) []byte {
	streams := make([]string, len(pages))
	for i, lines := range pages {
		var stream bytes.Buffer
		stream.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
		for j, line := range lines {
			if j > 0 {
				stream.WriteString("0 -24 Td\n")
			}
			fmt.Fprintf(&stream, "(%s) Tj\n", escape(line))
		}
		stream.WriteString("ET")
		streams[i] = stream.String()
	}
	return build(streams)
}

// BuildPositioned returns a PDF whose pages draw each Text at its exact
// position, so tests can exercise word-position column splitting. Texts that
// share a Y land on the same extracted line as separate words.
func BuildPositioned(pages ...[]Text) []byte {
	streams := make([]string, len(pages))
	for i, texts := range pages {
		var stream bytes.Buffer
		for j, t := range texts {
			if j > 0 {
				stream.WriteString("\n")
			}
			fmt.Fprintf(&stream, "BT\n/F1 12 Tf\n%g %g Td\n(%s) Tj\nET", t.X, t.Y, escape(t.S))
		}
		streams[i] = stream.String()
	}
	return build(streams)
}

func build(streams []string) []byte {
	var body bytes.Buffer
	body.WriteString("%PDF-1.4\n")

	type object struct {
		num    int
		offset int
	}
	var objects []object
	write := func(num int, content string) {
		objects = append(objects, object{num: num, offset: body.Len()})
		fmt.Fprintf(&body, "%d 0 obj\n%s\nendobj\n", num, content)
	}

	// Object numbering: 1 catalog, 2 pages, 3 font, then one page + one
	// content stream per input page.
	pageCount := len(streams)
	kids := make([]string, pageCount)
	for i := 0; i < pageCount; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	write(1, "<< /Type /Catalog /Pages 2 0 R >>")
	write(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), pageCount))
	write(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, stream := range streams {
		pageNum := 4 + 2*i
		contentNum := pageNum + 1

		write(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentNum))
		write(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream",
			len(stream), stream))
	}

	xrefOffset := body.Len()
	fmt.Fprintf(&body, "xref\n0 %d\n", len(objects)+1)
	body.WriteString("0000000000 65535 f \n")
	for _, obj := range objects {
		fmt.Fprintf(&body, "%010d 00000 n \n", obj.offset)
	}
	fmt.Fprintf(&body, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)
	return body.Bytes()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
