package jurisdiction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/rowparse"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Michigan Candidate Report PDFs: Schedule I parts A-E (receipts), Schedule
// II part G (in-kind), and Schedule III (expenditures). Each entry spreads a
// name, mailing address, amount, and date over consecutive lines.

var (
	miAmountRe   = regexp.MustCompile(`\$ ?([\d,]+\.\d{2})`)
	miDateRe     = regexp.MustCompile(`^(\d{1,2})\s+(\d{1,2})\s+(\d{4})$`)
	miDateScanRe = regexp.MustCompile(`(\d{1,2})\s+(\d{1,2})\s+(\d{4})`)
	miStateRe    = regexp.MustCompile(`^[A-Z]{2}$`)
)

var miEntryColumns = []string{
	"NAME", "AMOUNT", "DATE", "CITY", "STATE", "ZIP", "CONTRIBUTOR TYPE", "PAGE",
}

var miExpenditureColumns = []string{
	"NAME", "AMOUNT", "DATE", "CITY", "STATE", "ZIP", "PAGE",
}

func Michigan() *Profile {
	entrySchema := func(name string) filing.Schema {
		return filing.Schema{Name: name, Columns: miEntryColumns}
	}
	return &Profile{
		ID:     string(constants.JurisdictionMichigan),
		Name:   "Michigan Campaign Finance",
		Format: filing.FormatPDF,
		// Part letters are unique across schedules, so parts segment the
		// document directly; the SCHEDULE I/II banner lines land in the
		// surrounding segments and miKeepLine drops them before parsing.
		Patterns: []segment.HeaderPattern{
			segment.Header("I_A", `^PART A\b`),
			segment.Header("I_B", `^PART B\b`),
			segment.Header("I_C", `^PART C\b`),
			segment.Header("I_D", `^PART D\b`),
			segment.Header("I_E", `^PART E\b`),
			segment.Header("II_G", `^PART G\b`),
			segment.Header("III", `^SCHEDULE III\b`),
		},
		Parsers: map[string]rowparse.RowParser{
			"I_A":  rowparse.Filtered(miEntryParser("Full Name of Contributing Committee", "Political Committee"), miKeepLine),
			"I_B":  rowparse.Filtered(miEntryParser("Full Name of Contributor", "Other"), miKeepLine),
			"I_C":  rowparse.Filtered(miEntryParser("Full Name of Contributing Committee", "Political Committee"), miKeepLine),
			"I_D":  rowparse.Filtered(miEntryParser("Full Name of Contributor", "Other"), miKeepLine),
			"I_E":  rowparse.Filtered(miEntryParser("Full Name", ""), miKeepLine),
			"II_G": rowparse.Filtered(miEntryParser("Full Name of Contributor", "In-Kind"), miKeepLine),
			"III":  rowparse.Filtered(miExpenditureParser(), miKeepLine),
		},
		Schemas: map[string]filing.Schema{
			"I_A":  entrySchema("Committee Contributions"),
			"I_B":  entrySchema("Direct Contributions"),
			"I_C":  entrySchema("Committee Other Receipts"),
			"I_D":  entrySchema("Other Receipts"),
			"I_E":  entrySchema("Fundraisers"),
			"II_G": entrySchema("In-Kind Contributions"),
			"III":  {Name: "Expenditures", Columns: miExpenditureColumns},
		},
		Order:          []string{"I_A", "I_B", "I_C", "I_D", "I_E", "II_G", "III"},
		MetadataParser: &rowparse.LabelValueParser{},
		MetadataSchema: filing.Schema{Name: "Report", Columns: []string{"Label", "Value"}},
	}
}

// miKeepLine drops the structural noise that lands inside part segments: the
// SCHEDULE banner lines, repeated form headings, and page footers. Without
// the filter these count as parse skips.
func miKeepLine(line filing.Line) bool {
	text := filing.CleanLine(line.Text)
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "SCHEDULE I") || strings.HasPrefix(text, "SCHEDULE II") {
		return false
	}
	if strings.HasPrefix(text, "MICHIGAN DEPARTMENT OF STATE") {
		return false
	}
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "page ") && strings.Contains(lower, " of ") {
		return false
	}
	return true
}

// miEntryParser parses one receipts part. Entries open with startPrefix; the
// amount rides on the "Mailing Address" line and the date either stands alone
// ("MO DAY YEAR" columns) or trails the city line.
func miEntryParser(startPrefix, contributorType string) rowparse.RowParser {
	return &rowparse.BlockParser{
		Start: func(text string) bool { return strings.HasPrefix(text, startPrefix) },
		Build: func(lines []filing.Line) (filing.Record, bool) {
			rec, ok := miBuildEntry(lines)
			if !ok {
				return nil, false
			}
			rec["CONTRIBUTOR TYPE"] = filing.TextValue(contributorType)
			return rec, true
		},
	}
}

func miExpenditureParser() rowparse.RowParser {
	return &rowparse.BlockParser{
		Start: func(text string) bool { return strings.HasPrefix(text, "To Whom Paid") },
		Build: func(lines []filing.Line) (filing.Record, bool) {
			return miBuildEntry(lines)
		},
	}
}

// miBuildEntry walks one entry's lines: header, optional "MO DAY YEAR"
// column caption, name lines, "Mailing Address" line with the amount, then
// city/state/zip with the date nearby.
func miBuildEntry(lines []filing.Line) (filing.Record, bool) {
	if len(lines) < 2 {
		return nil, false
	}
	page := lines[0].Page
	texts := make([]string, 0, len(lines))
	for _, l := range lines[1:] { // drop the "Full Name ..." header line
		t := filing.CleanLine(l.Text)
		if t == "" || t == "MO DAY YEAR" {
			continue
		}
		texts = append(texts, t)
	}
	if len(texts) == 0 {
		return nil, false
	}

	// Name lines run until the mailing-address line.
	var nameParts []string
	idx := 0
	for ; idx < len(texts); idx++ {
		if strings.HasPrefix(texts[idx], "Mailing Address") {
			break
		}
		nameParts = append(nameParts, texts[idx])
	}
	if idx == len(texts) || len(nameParts) == 0 {
		return nil, false
	}
	name := strings.Join(nameParts, " ")

	amount := ""
	if m := miAmountRe.FindStringSubmatch(texts[idx]); m != nil {
		amount = m[1]
	}
	idx++

	month, day, year := "", "", ""
	if idx < len(texts) {
		if m := miDateRe.FindStringSubmatch(texts[idx]); m != nil {
			month, day, year = m[1], m[2], m[3]
			idx++
		}
	}

	city := ""
	if idx < len(texts) {
		cityLine := texts[idx]
		var trailing string
		city, trailing = miSplitCityLine(cityLine)
		if month == "" {
			if m := miDateScanRe.FindStringSubmatch(trailing); m != nil {
				month, day, year = m[1], m[2], m[3]
			}
		}
		idx++
	}

	state, zip := "", ""
	if idx < len(texts) {
		state, zip = miParseStateZip(texts[idx])
	}

	date := ""
	if month != "" && day != "" && year != "" {
		date = fmt.Sprintf("%s/%s/%s", month, day, year)
	}

	return filing.Record{
		"NAME":   filing.TextValue(name),
		"AMOUNT": filing.CurrencyValue(amount),
		"DATE":   filing.DateValue(date),
		"CITY":   filing.TextValue(city),
		"STATE":  filing.TextValue(state),
		"ZIP":    filing.TextValue(zip),
		"PAGE":   filing.NumberValue(float64(page)),
	}, true
}

var miCityRe = regexp.MustCompile(`^City\s+(?P<city>.+?)(?:\s+State\b(?P<rest>.*))?$`)

// miSplitCityLine breaks a "City ... State ... Zip Code ..." line into the
// city value and whatever trails the echoed labels.
func miSplitCityLine(line string) (string, string) {
	m := miCityRe.FindStringSubmatch(line)
	if m == nil {
		return "", line
	}
	city := strings.TrimSpace(m[1])
	rest := strings.TrimSpace(m[2])
	for _, label := range []string{"Zip Code (Plus 4)", "Zip Code"} {
		rest = strings.TrimSpace(strings.ReplaceAll(rest, label, " "))
	}
	return city, rest
}

func miParseStateZip(line string) (string, string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", ""
	}
	if !miStateRe.MatchString(tokens[0]) {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}
