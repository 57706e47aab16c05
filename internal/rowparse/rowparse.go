// Package rowparse converts a schedule's line range into structured records.
// Each parser skips and counts lines that do not conform to its layout; a
// malformed line is never fatal to the conversion.
package rowparse

import (
	"regexp"
	"sort"
	"strings"

	"github.com/filingworks/filing-converter/internal/filing"
)

// RowParser turns a schedule's lines into records plus a skipped-line count.
type RowParser interface {
	Parse(lines []filing.Line) ([]filing.Record, int)
}

// Func adapts a plain function to the RowParser interface.
type Func func(lines []filing.Line) ([]filing.Record, int)

func (f Func) Parse(lines []filing.Line) ([]filing.Record, int) {
	return f(lines)
}

// Filtered drops lines for which keep returns false before delegating.
// Dropped lines are noise (page footers, repeated headers), not skips.
func Filtered(p RowParser, keep func(filing.Line) bool) RowParser {
	return Func(func(lines []filing.Line) ([]filing.Record, int) {
		kept := make([]filing.Line, 0, len(lines))
		for _, l := range lines {
			if keep(l) {
				kept = append(kept, l)
			}
		}
		return p.Parse(kept)
	})
}

// DelimiterParser splits each line on Delim and maps tokens to Fields by
// position. Lines with fewer than MinFields tokens are skipped; surplus
// tokens are folded into the last field.
type DelimiterParser struct {
	Delim     string
	Fields    []string
	MinFields int
}

func (p *DelimiterParser) Parse(lines []filing.Line) ([]filing.Record, int) {
	var records []filing.Record
	skipped := 0
	for _, line := range lines {
		tokens := strings.Split(line.Text, p.Delim)
		for i := range tokens {
			tokens[i] = strings.TrimSpace(tokens[i])
		}
		if len(tokens) < p.MinFields {
			skipped++
			continue
		}
		rec := make(filing.Record, len(p.Fields))
		for i, field := range p.Fields {
			switch {
			case i == len(p.Fields)-1 && len(tokens) > len(p.Fields):
				rec[field] = filing.TextValue(strings.Join(tokens[i:], p.Delim))
			case i < len(tokens):
				rec[field] = filing.TextValue(tokens[i])
			}
		}
		records = append(records, rec)
	}
	return records, skipped
}

// RegexParser maps named capture groups to record fields. Lines that do not
// match are skipped. Groups listed in Currency or Dates are normalized.
type RegexParser struct {
	Pattern  *regexp.Regexp
	Currency map[string]bool
	Dates    map[string]bool
}

func (p *RegexParser) Parse(lines []filing.Line) ([]filing.Record, int) {
	var records []filing.Record
	skipped := 0
	names := p.Pattern.SubexpNames()
	for _, line := range lines {
		m := p.Pattern.FindStringSubmatch(filing.CleanLine(line.Text))
		if m == nil {
			skipped++
			continue
		}
		rec := filing.Record{}
		for i, name := range names {
			if i == 0 || name == "" {
				continue
			}
			switch {
			case p.Currency[name]:
				rec[name] = filing.CurrencyValue(m[i])
			case p.Dates[name]:
				rec[name] = filing.DateValue(m[i])
			default:
				rec[name] = filing.TextValue(m[i])
			}
		}
		records = append(records, rec)
	}
	return records, skipped
}

// GapColumnParser assigns each line's words to a fixed number of columns by
// treating the widest inter-word gaps as column boundaries. This suits
// layouts where the extractor supplies word position hints but the column
// grid is not delimiter-based (tabular PDF schedules).
type GapColumnParser struct {
	Fields []string
	// MinWords below which a line is skipped (defaults to 2).
	MinWords int
	// MinGap is the smallest horizontal gap (points) accepted as a column
	// boundary (defaults to 8).
	MinGap float64
}

func (p *GapColumnParser) Parse(lines []filing.Line) ([]filing.Record, int) {
	minWords := p.MinWords
	if minWords < 2 {
		minWords = 2
	}
	minGap := p.MinGap
	if minGap <= 0 {
		minGap = 8.0
	}

	var records []filing.Record
	skipped := 0
	for _, line := range lines {
		if len(line.Words) < minWords {
			skipped++
			continue
		}
		cells := splitByGaps(line.Words, len(p.Fields), minGap)
		if cells == nil {
			skipped++
			continue
		}
		rec := make(filing.Record, len(p.Fields))
		for i, field := range p.Fields {
			if i < len(cells) {
				rec[field] = filing.TextValue(cells[i])
			}
		}
		records = append(records, rec)
	}
	return records, skipped
}

// splitByGaps partitions words into at most n cells, cutting at the n-1
// widest gaps that clear minGap. Returns nil when no gap qualifies.
func splitByGaps(words []filing.Word, n int, minGap float64) []string {
	type gap struct {
		index int // cut before words[index]
		width float64
	}
	var gaps []gap
	for i := 1; i < len(words); i++ {
		// Word extents are start positions only, so approximate the end of
		// the previous word from its rune count.
		approxEnd := words[i-1].X + float64(len([]rune(words[i-1].Text)))*5.0
		w := words[i].X - approxEnd
		if w >= minGap {
			gaps = append(gaps, gap{index: i, width: w})
		}
	}
	if len(gaps) == 0 {
		return nil
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].width > gaps[j].width })
	if len(gaps) > n-1 {
		gaps = gaps[:n-1]
	}
	cuts := make([]int, 0, len(gaps))
	for _, g := range gaps {
		cuts = append(cuts, g.index)
	}
	sort.Ints(cuts)

	var cells []string
	prev := 0
	for _, cut := range cuts {
		cells = append(cells, joinWords(words[prev:cut]))
		prev = cut
	}
	cells = append(cells, joinWords(words[prev:]))
	return cells
}

func joinWords(words []filing.Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// LabelValueParser collects "Label: value" lines into two-column records.
// Lines without a colon are skipped.
type LabelValueParser struct{}

func (p *LabelValueParser) Parse(lines []filing.Line) ([]filing.Record, int) {
	var records []filing.Record
	skipped := 0
	for _, line := range lines {
		text := filing.CleanLine(line.Text)
		label, value, ok := strings.Cut(text, ":")
		if !ok || strings.TrimSpace(label) == "" {
			skipped++
			continue
		}
		records = append(records, filing.Record{
			"Label": filing.TextValue(label),
			"Value": filing.TextValue(value),
		})
	}
	return records, skipped
}

// BlockParser groups consecutive lines into multi-line entries. Start reports
// whether a line begins a new entry; Build converts one entry's lines into a
// record. Lines before the first entry start are skipped, as are entries
// Build rejects.
type BlockParser struct {
	Start func(text string) bool
	Stop  func(text string) bool // optional: terminates parsing (totals footer)
	Build func(lines []filing.Line) (filing.Record, bool)
}

func (p *BlockParser) Parse(lines []filing.Line) ([]filing.Record, int) {
	var records []filing.Record
	skipped := 0
	var block []filing.Line

	flush := func() {
		if len(block) == 0 {
			return
		}
		if rec, ok := p.Build(block); ok {
			records = append(records, rec)
		} else {
			skipped++
		}
		block = nil
	}

	started := false
	for _, line := range lines {
		text := filing.CleanLine(line.Text)
		if text == "" {
			continue
		}
		if p.Stop != nil && p.Stop(text) {
			break
		}
		if p.Start(text) {
			flush()
			started = true
		} else if !started {
			skipped++
			continue
		}
		block = append(block, line)
	}
	flush()
	return records, skipped
}
