// Package segment locates schedule boundaries in an extracted line sequence.
package segment

import (
	"log/slog"
	"regexp"

	"github.com/filingworks/filing-converter/internal/filing"
)

// HeaderPattern pairs a schedule identifier with the regexp that recognizes
// its header line. Patterns are tried in slice order; the first match wins.
type HeaderPattern struct {
	ScheduleID string
	Pattern    *regexp.Regexp
}

// Header is a convenience constructor; expr must compile.
func Header(scheduleID, expr string) HeaderPattern {
	return HeaderPattern{ScheduleID: scheduleID, Pattern: regexp.MustCompile(expr)}
}

type Segmenter struct {
	Patterns []HeaderPattern
	Log      *slog.Logger
}

func NewSegmenter(patterns []HeaderPattern, log *slog.Logger) *Segmenter {
	if log == nil {
		log = slog.Default()
	}
	return &Segmenter{Patterns: patterns, Log: log}
}

// Output is the result of splitting one document's lines.
type Output struct {
	// Segments in document order. The same schedule may appear more than
	// once (continuation across pages); callers concatenate with Merge.
	Segments []filing.Segment
	// Preamble holds the lines before the first header match. They are
	// excluded from schedule parsing but feed the metadata parser.
	Preamble []filing.Line
	// Matched reports whether any header was recognized at all.
	Matched bool
}

// Split scans lines in order. A header match closes the open segment (if any)
// and opens a new one starting at the next line; end of input closes the last
// open segment. A header immediately followed by another header yields an
// empty segment, which is preserved: empty schedules are meaningful.
func (s *Segmenter) Split(lines []filing.Line) Output {
	var out Output
	open := -1 // index into out.Segments

	for _, line := range lines {
		text := filing.CleanLine(line.Text)
		matched := ""
		for _, hp := range s.Patterns {
			if hp.Pattern.MatchString(text) {
				matched = hp.ScheduleID
				break
			}
		}
		if matched != "" {
			out.Segments = append(out.Segments, filing.Segment{ScheduleID: matched})
			open = len(out.Segments) - 1
			out.Matched = true
			continue
		}
		if open < 0 {
			out.Preamble = append(out.Preamble, line)
			continue
		}
		out.Segments[open].Lines = append(out.Segments[open].Lines, line)
	}

	if !out.Matched {
		s.Log.Warn("no recognized schedule headers", "lines", len(lines))
	}
	return out
}

// Merge concatenates same-schedule segments in document order, so that a
// schedule continued across pages parses as one contiguous line range.
func Merge(segments []filing.Segment) map[string][]filing.Line {
	merged := make(map[string][]filing.Line, len(segments))
	for _, seg := range segments {
		if _, ok := merged[seg.ScheduleID]; !ok {
			merged[seg.ScheduleID] = []filing.Line{}
		}
		merged[seg.ScheduleID] = append(merged[seg.ScheduleID], seg.Lines...)
	}
	return merged
}
