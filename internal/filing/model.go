// Package filing defines the data model shared by every conversion workflow:
// documents, extracted lines, schedule segments, records, tables, and the
// assembled workbook. All values are created fresh per conversion and
// discarded once the workbook has been handed off.
package filing

// Format is the declared type of an uploaded document.
type Format string

const (
	FormatPDF Format = "PDF"
	FormatTXT Format = "TXT"
)

// Document is one uploaded filing: raw bytes plus the declared format.
// Immutable once constructed.
type Document struct {
	Name   string
	Format Format
	Data   []byte
}

// Line is one unit of extracted text with its position in the document.
// Words carries per-word horizontal positions when the extractor can supply
// them (PDF input); fixed-width row parsers use these as column hints.
type Line struct {
	Index int
	Page  int
	Text  string
	Words []Word
}

// Word is a token with its horizontal start position on the page, in points.
type Word struct {
	X    float64
	Text string
}

// Segment is a contiguous run of lines attributed to one schedule.
type Segment struct {
	ScheduleID string
	Lines      []Line
}

// ValueKind discriminates scalar record values.
type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindDate
)

// Value is one scalar field of a record. When normalization of a numeric or
// date token fails, the raw token is retained with Raw set instead of being
// dropped, preserving auditability.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Raw    bool
}

// Display returns the string written to output sheets.
func (v Value) Display() string {
	return v.Text
}

// Record maps field names to scalar values.
type Record map[string]Value

// Schema is the fixed column set of one schedule's table, known ahead of time.
type Schema struct {
	Name    string // sheet name
	Columns []string
}

// Table holds all records of one schedule, conforming to its schema.
type Table struct {
	ScheduleID string
	Name       string
	Columns    []string
	Records    []Record
	Skipped    int // lines/entries that could not be parsed
}

// NewTable returns an empty table for the given schedule and schema.
func NewTable(scheduleID string, schema Schema) *Table {
	return &Table{ScheduleID: scheduleID, Name: schema.Name, Columns: schema.Columns}
}

// Append adds a record, filling any column missing from rec with an empty
// text value so every stored record conforms to the table schema.
func (t *Table) Append(rec Record) {
	conformed := make(Record, len(t.Columns))
	for _, col := range t.Columns {
		if v, ok := rec[col]; ok {
			conformed[col] = v
		} else {
			conformed[col] = Value{Kind: KindText}
		}
	}
	t.Records = append(t.Records, conformed)
}

// Row returns the record's values in schema column order, as display strings.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.Columns))
	for c, col := range t.Columns {
		out[c] = t.Records[i][col].Display()
	}
	return out
}

// Workbook is the full multi-table output of one conversion. Tables keep the
// schedule order of the producing jurisdiction profile; Metadata holds
// filer/report-level attributes when the document exposes them.
type Workbook struct {
	Tables   []*Table
	Metadata *Table
}

// TotalSkipped sums the skipped-row counts across all tables.
func (w *Workbook) TotalSkipped() int {
	n := 0
	for _, t := range w.Tables {
		n += t.Skipped
	}
	return n
}
