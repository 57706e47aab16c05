package jurisdiction

import (
	"regexp"
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/rowparse"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Alaska POFD (Public Official Financial Disclosure) filings: schedules are
// tables whose header row doubles as the schedule marker. Rows are assigned
// to columns from the extractor's word position hints, and income amounts are
// textual ranges ("more than $1,000") expanded into numeric bounds.

var akAmountNumberRe = regexp.MustCompile(`\$?\s*([0-9][0-9,]*)`)

// akMetadataColumns are the report-level fields stamped onto every schedule
// row, so a row read out of context still identifies its filing. Values come
// from the preamble's "Label: value" lines, except Source File which is the
// document name.
var akMetadataColumns = []string{
	constants.SourceFileColumn, "Report Year", "Report Type", "Submission Date", "Report Dates", "Filing As",
}

var akIncomeColumns = []string{
	"Owner", "Type", "Detail", "Description", "Amount", "Amount Minimum", "Amount Maximum",
}

// akSchema prepends the report metadata columns to a schedule's own.
func akSchema(name string, columns ...string) filing.Schema {
	merged := make([]string, 0, len(akMetadataColumns)+len(columns))
	merged = append(merged, akMetadataColumns...)
	merged = append(merged, columns...)
	return filing.Schema{Name: name, Columns: merged}
}

func AlaskaPOFD() *Profile {
	return &Profile{
		ID:     string(constants.JurisdictionAlaskaPOFD),
		Name:   "Alaska POFD",
		Format: filing.FormatPDF,
		Patterns: []segment.HeaderPattern{
			segment.Header("INCOME", `^Owner Type Detail Description Amount$`),
			segment.Header("INTERESTS", `^Owner Type Detail Description / Interest$`),
			segment.Header("LOANS", `^Owner Type Name$`),
			segment.Header("LEASES", `^Owner Type of Lease Lease/Contract ID Interest Status Description$`),
			segment.Header("ASSOCIATIONS", `^Associated Person Description$`),
			segment.Header("LOBBYIST", `^Name Address Compensation$`),
		},
		Parsers: map[string]rowparse.RowParser{
			"INCOME": rowparse.Filtered(
				akIncomeParser(),
				akKeepLine,
			),
			"INTERESTS": rowparse.Filtered(
				&rowparse.GapColumnParser{Fields: []string{"Owner", "Type", "Detail", "Description / Interest"}},
				akKeepLine,
			),
			"LOANS": rowparse.Filtered(
				&rowparse.GapColumnParser{Fields: []string{"Owner", "Type", "Name"}},
				akKeepLine,
			),
			"LEASES": rowparse.Filtered(
				&rowparse.GapColumnParser{Fields: []string{"Owner", "Type of Lease", "Lease/Contract ID", "Interest", "Status", "Description"}},
				akKeepLine,
			),
			"ASSOCIATIONS": rowparse.Filtered(
				&rowparse.GapColumnParser{Fields: []string{"Associated Person", "Description"}},
				akKeepLine,
			),
			"LOBBYIST": rowparse.Filtered(
				&rowparse.GapColumnParser{Fields: []string{"Name", "Address", "Compensation"}},
				akKeepLine,
			),
		},
		Schemas: map[string]filing.Schema{
			"INCOME":       akSchema("Income", akIncomeColumns...),
			"INTERESTS":    akSchema("Interests", "Owner", "Type", "Detail", "Description / Interest"),
			"LOANS":        akSchema("LoansAndDebts", "Owner", "Type", "Name"),
			"LEASES":       akSchema("Leases", "Owner", "Type of Lease", "Lease/Contract ID", "Interest", "Status", "Description"),
			"ASSOCIATIONS": akSchema("CloseEconomicAssociations", "Associated Person", "Description"),
			"LOBBYIST":     akSchema("LobbyistPartnerEmployers", "Name", "Address", "Compensation"),
		},
		Order:           []string{"INCOME", "INTERESTS", "LOANS", "LEASES", "ASSOCIATIONS", "LOBBYIST"},
		MetadataParser:  &rowparse.LabelValueParser{},
		MetadataSchema:  filing.Schema{Name: "Report", Columns: []string{"Label", "Value"}},
		MetadataColumns: akMetadataColumns,
	}
}

func akKeepLine(line filing.Line) bool {
	text := strings.ToLower(filing.CleanLine(line.Text))
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "page ") && strings.Contains(text, " of ") {
		return false
	}
	return true
}

// akIncomeParser extends the positional column split with numeric bounds
// derived from the textual amount range.
func akIncomeParser() rowparse.RowParser {
	inner := &rowparse.GapColumnParser{Fields: []string{"Owner", "Type", "Detail", "Description", "Amount"}}
	return rowparse.Func(func(lines []filing.Line) ([]filing.Record, int) {
		records, skipped := inner.Parse(lines)
		for _, rec := range records {
			min, max, ok := akParseAmountBounds(rec["Amount"].Display())
			if !ok {
				continue
			}
			if min != nil {
				rec["Amount Minimum"] = filing.NumberValue(float64(*min))
			}
			if max != nil {
				rec["Amount Maximum"] = filing.NumberValue(float64(*max))
			}
		}
		return records, skipped
	})
}

// akParseAmountBounds turns a textual amount range into numeric lower/upper
// bounds. A bare number is both bounds; "more than $X" sets only the lower,
// upper-only phrases ("not more than", "or less", "up to") set the upper.
func akParseAmountBounds(amount string) (*int, *int, bool) {
	text := strings.TrimSpace(amount)
	if text == "" {
		return nil, nil, false
	}
	lower := strings.ToLower(text)

	var numbers []int
	for _, m := range akAmountNumberRe.FindAllStringSubmatch(text, -1) {
		n := 0
		for _, r := range strings.ReplaceAll(m[1], ",", "") {
			n = n*10 + int(r-'0')
		}
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return nil, nil, false
	}

	hasRange := strings.Contains(text, "-") || strings.Contains(lower, "between") ||
		(strings.Contains(lower, "from") && (strings.Contains(lower, " to ") || strings.Contains(lower, "through")))
	hasUpper := false
	for _, phrase := range []string{"not more than", "no more than", "or less", "less than", "up to", "at most"} {
		if strings.Contains(lower, phrase) {
			hasUpper = true
			break
		}
	}
	sanitized := strings.ReplaceAll(strings.ReplaceAll(lower, "not more than", ""), "no more than", "")
	hasLower := false
	for _, phrase := range []string{"more than", "at least", "greater than", "minimum"} {
		if strings.Contains(sanitized, phrase) {
			hasLower = true
			break
		}
	}

	var min, max *int
	if hasRange || (len(numbers) >= 2 && (strings.Contains(lower, " and ") || hasUpper || hasLower)) {
		min = &numbers[0]
		if len(numbers) > 1 {
			max = &numbers[len(numbers)-1]
		}
	}
	if hasUpper {
		max = &numbers[len(numbers)-1]
		if len(numbers) > 1 {
			min = &numbers[0]
		}
	}
	if strings.Contains(lower, "or more") {
		min = &numbers[len(numbers)-1]
		max = nil
	} else if hasLower && min == nil {
		min = &numbers[0]
	}
	if len(numbers) == 1 && min == nil && max == nil {
		min, max = &numbers[0], &numbers[0]
	}
	return min, max, true
}
