package jurisdiction

import (
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/rowparse"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Congressional annual financial disclosure PDFs: schedules A-I, each a
// column grid split from word position hints.

var fdSchedules = []struct {
	id, sheet string
	columns   []string
}{
	{"A", "Schedule A", []string{"Asset", "Owner", "Value of Asset", "Income Type(s)", "Income", "Tx. > $1,000?"}},
	{"B", "Schedule B", []string{"Asset", "Owner", "Date", "Tx. Type", "Amount", "Cap. Gains > $200?"}},
	{"C", "Schedule C", []string{"Source", "Type", "Amount"}},
	{"D", "Schedule D", []string{"Owner", "Creditor", "Date Incurred", "Type", "Amount of Liability"}},
	{"E", "Schedule E", []string{"Position", "Name of Organization"}},
	{"F", "Schedule F", []string{"Date", "Parties To", "Terms of Agreement"}},
	{"G", "Schedule G", []string{"Source", "Description", "Value"}},
	{"H", "Schedule H", []string{"Date(s)", "City and State", "Nature of Event", "Item(s) Provided/Expenses Paid", "Provided By"}},
	{"I", "Schedule I", []string{"Date(s)", "Payee", "Amount"}},
}

func Disclosure() *Profile {
	p := &Profile{
		ID:             string(constants.JurisdictionDisclosure),
		Name:           "Congressional Financial Disclosure",
		Format:         filing.FormatPDF,
		Parsers:        map[string]rowparse.RowParser{},
		Schemas:        map[string]filing.Schema{},
		MetadataParser: &rowparse.LabelValueParser{},
		MetadataSchema: filing.Schema{Name: "Filer", Columns: []string{"Label", "Value"}},
	}
	for _, s := range fdSchedules {
		s := s
		p.Patterns = append(p.Patterns, segment.Header(s.id, `(?i)^Schedule `+s.id+`\b`))
		p.Parsers[s.id] = rowparse.Filtered(
			&rowparse.GapColumnParser{Fields: s.columns},
			fdKeepLine(s.columns),
		)
		p.Schemas[s.id] = filing.Schema{Name: s.sheet, Columns: s.columns}
		p.Order = append(p.Order, s.id)
	}
	return p
}

// fdKeepLine drops the repeated column-caption rows and page footers that
// reappear at every page break inside a schedule.
func fdKeepLine(columns []string) func(filing.Line) bool {
	caption := strings.ToLower(filing.CleanLine(strings.Join(columns, " ")))
	return func(line filing.Line) bool {
		text := strings.ToLower(filing.CleanLine(line.Text))
		if text == "" || text == caption {
			return false
		}
		if strings.HasPrefix(text, "page ") && strings.Contains(text, " of ") {
			return false
		}
		if strings.HasPrefix(text, "filing id") {
			return false
		}
		return true
	}
}
