package jurisdiction

import (
	"regexp"
	"strings"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/rowparse"
	"github.com/filingworks/filing-converter/internal/segment"
)

// Arizona quarterly reports: Schedule C2 individual contributions plus the
// expense/receipt schedules. Entries span several lines; a contribution block
// opens with a "Last, First" name line and carries its date and amount on a
// later line.

var (
	azDateAmountRe = regexp.MustCompile(`(?P<date>\d{2}/\d{2}/\d{4}).*?\$(?P<amount>[()\d,.]+)`)
	azStateZipRe   = regexp.MustCompile(`\b([A-Z]{2})\s+(\d{3,5}(?:-\d{4})?)\b`)
	azDateNameRe   = regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s+\$[()\d,.]+\s+Name:`)
	azLeadingIDRe  = regexp.MustCompile(`^\d{3,}\s`)
	azSummaryRe    = regexp.MustCompile(`^(?P<name>.+?)\s+(?P<date>\d{2}/\d{2}/\d{4})\s+\$(?P<amount>[\d,]+\.\d{2})\s+Name:`)
)

var azContributionColumns = []string{
	"LAST NAME", "FIRST NAME", "ADDRESS (Line 1)", "STATE", "ZIP",
	"OCCUPATION", "EMPLOYER", "ADDRESS (Full)", "DATE", "AMOUNT",
	"TYPE", "TOTAL TO DATE", "RAW",
}

var azExpenseColumns = []string{
	"NAME", "ADDRESS", "DATE", "AMOUNT", "PAYMENT METHOD",
	"CYCLE TO DATE", "CATEGORY", "TRANSACTION TYPE", "MEMO", "DETAILS", "RAW",
}

var azReceiptColumns = []string{
	"NAME", "ADDRESS", "DATE", "AMOUNT", "PAYMENT METHOD",
	"CYCLE TO DATE", "TRANSACTION TYPE", "MEMO", "DETAILS", "RAW",
}

func Arizona() *Profile {
	contributions := rowparse.Filtered(
		&rowparse.BlockParser{
			Start: azIsNameLine,
			Stop:  azIsTotalsLine,
			Build: azBuildContribution,
		},
		azKeepLine,
	)
	return &Profile{
		ID:     string(constants.JurisdictionArizona),
		Name:   "Arizona Campaign Finance",
		Format: filing.FormatPDF,
		Patterns: []segment.HeaderPattern{
			segment.Header("C2", `(?i)^Schedule C2\b`),
			segment.Header("C2_SMALL", `(?i)^Schedule In-State Contributions of \$100 or Less`),
			segment.Header("E1", `(?i)^Schedule E1\b`),
			segment.Header("E4", `(?i)^Schedule E4\b`),
			segment.Header("R1", `(?i)^Schedule R1\b`),
		},
		Parsers: map[string]rowparse.RowParser{
			"C2":       contributions,
			"C2_SMALL": rowparse.Filtered(rowparse.Func(azParseSummary), azKeepLine),
			"E1":       rowparse.Filtered(azVendorParser(true), azKeepLine),
			"E4":       rowparse.Filtered(rowparse.Func(azParseSummary), azKeepLine),
			"R1":       rowparse.Filtered(azVendorParser(false), azKeepLine),
		},
		Schemas: map[string]filing.Schema{
			"C2":       {Name: "Contributions", Columns: azContributionColumns},
			"C2_SMALL": {Name: "In-State Small Contributions", Columns: []string{"Label", "Value"}},
			"E1":       {Name: "Operating Expenses", Columns: azExpenseColumns},
			"E4":       {Name: "Aggregate Small Expenses", Columns: []string{"Label", "Value"}},
			"R1":       {Name: "Other Receipts", Columns: azReceiptColumns},
		},
		Order:          []string{"C2", "C2_SMALL", "E1", "E4", "R1"},
		MetadataParser: rowparse.Func(azParseMetadata),
		MetadataSchema: filing.Schema{Name: "Report", Columns: []string{"Field", "Value"}},
	}
}

// azKeepLine drops boilerplate repeated on every page of the report.
func azKeepLine(line filing.Line) bool {
	text := filing.CleanLine(line.Text)
	if text == "" {
		return false
	}
	for _, prefix := range []string{"Quarter ", "Covers ", "Jurisdiction:"} {
		if strings.HasPrefix(text, prefix) {
			return false
		}
	}
	if strings.Contains(text, "Filed on") || strings.Contains(text, "Secretary of State") {
		return false
	}
	if strings.Contains(text, "Cycle To Date") {
		return false
	}
	if azLeadingIDRe.MatchString(text) && !strings.Contains(text, ",") {
		return false
	}
	return true
}

// azIsNameLine reports whether a line looks like "Last, First".
func azIsNameLine(text string) bool {
	if strings.Contains(text, ":") {
		return false
	}
	if strings.Count(text, ",") != 1 {
		return false
	}
	return !strings.ContainsAny(text, "0123456789")
}

func azIsTotalsLine(text string) bool {
	for _, prefix := range []string{"Total of", "Net Total", "Total Small", "Total of Aggregate"} {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

// azLabelValue extracts the value around an embedded "Label:" marker; the
// source layout places the value before or after the label, sometimes both.
func azLabelValue(text, label string) (string, bool) {
	if !strings.Contains(text, label) {
		return "", false
	}
	before, after, _ := strings.Cut(text, label)
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)
	switch {
	case before == "" && after == "":
		return "", false
	case before == "":
		return after, true
	case after == "":
		return before, true
	default:
		return before + " " + after, true
	}
}

func azBuildContribution(lines []filing.Line) (filing.Record, bool) {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = filing.CleanLine(l.Text)
	}

	dateIdx := -1
	for i, t := range texts {
		if azDateAmountRe.MatchString(t) {
			dateIdx = i
			break
		}
	}
	if dateIdx < 1 {
		return nil, false
	}

	last, first, _ := strings.Cut(texts[0], ",")

	addressLines := texts[1:dateIdx]
	addressFull := strings.Join(addressLines, ", ")
	addressLine1 := ""
	state, zip := "", ""
	if len(addressLines) > 0 {
		addressLine1, _, _ = strings.Cut(addressLines[0], ",")
		if m := azStateZipRe.FindStringSubmatch(addressLines[len(addressLines)-1]); m != nil {
			state, zip = m[1], azPadZip(m[2])
		}
	}

	m := azDateAmountRe.FindStringSubmatch(texts[dateIdx])
	date, amount := m[1], m[2]

	totalToDate := ""
	occupation, employer := "", ""
	transType, originalDate := "", ""
	for _, t := range texts[dateIdx+1:] {
		switch {
		case strings.HasPrefix(t, "$") && !strings.Contains(t, "Original"):
			if totalToDate == "" {
				totalToDate = t
			}
		case strings.Contains(t, "Occupation:"):
			before, _, _ := strings.Cut(t, "Occupation:")
			occupation, employer = azSplitOccupationEmployer(strings.TrimSpace(before))
		case strings.Contains(t, "Trans. Type:"):
			before, _, _ := strings.Cut(t, "Trans. Type:")
			transType = strings.TrimSpace(before)
		case strings.Contains(t, "Original Date:"):
			_, after, _ := strings.Cut(t, "Original Date:")
			originalDate = strings.TrimSpace(after)
		}
	}

	amountValue := filing.CurrencyValue(amount)
	display := transType
	switch {
	case transType != "" && originalDate != "":
		display = transType + " " + originalDate
	case transType != "":
	case !amountValue.Raw && amountValue.Number < 0:
		display = "Refunded Contribution"
	default:
		display = "Contribution"
	}

	return filing.Record{
		"LAST NAME":        filing.TextValue(last),
		"FIRST NAME":       filing.TextValue(first),
		"ADDRESS (Line 1)": filing.TextValue(addressLine1),
		"STATE":            filing.TextValue(state),
		"ZIP":              filing.TextValue(zip),
		"OCCUPATION":       filing.TextValue(occupation),
		"EMPLOYER":         filing.TextValue(employer),
		"ADDRESS (Full)":   filing.TextValue(addressFull),
		"DATE":             filing.DateValue(date),
		"AMOUNT":           amountValue,
		"TYPE":             filing.TextValue(display),
		"TOTAL TO DATE":    filing.CurrencyValue(totalToDate),
		"RAW":              filing.TextValue(strings.Join(texts, "\n")),
	}, true
}

func azSplitOccupationEmployer(s string) (string, string) {
	if s == "" {
		return "", ""
	}
	occupation, employer, found := strings.Cut(s, ",")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(occupation), strings.TrimSpace(employer)
}

// azPadZip left-pads zip codes whose leading zeros were lost in extraction.
func azPadZip(zip string) string {
	prefix, suffix, found := strings.Cut(zip, "-")
	if len(prefix) < 5 && isDigits(prefix) {
		prefix = strings.Repeat("0", 5-len(prefix)) + prefix
	}
	if found {
		return prefix + "-" + suffix
	}
	return prefix
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// azVendorParser parses the vendor-block layout shared by Schedule E1 and R1:
// a vendor name line, address lines, one date/amount line, then labeled
// detail lines. withCategory toggles the Category column (E1 only).
func azVendorParser(withCategory bool) rowparse.RowParser {
	return rowparse.Func(func(lines []filing.Line) ([]filing.Record, int) {
		var records []filing.Record
		skipped := 0

		var head []string // name + address lines of the open block
		var details []string
		var dateLine string

		flush := func() {
			if len(head) == 0 {
				return
			}
			if dateLine == "" {
				skipped++
			} else if rec, ok := azBuildVendor(head, dateLine, details, withCategory); ok {
				records = append(records, rec)
			} else {
				skipped++
			}
			head, details, dateLine = nil, nil, ""
		}

		for _, line := range lines {
			text := filing.CleanLine(line.Text)
			if text == "" {
				continue
			}
			if strings.HasPrefix(text, "Total") || strings.HasPrefix(text, "Net ") {
				break
			}
			switch {
			case azDateNameRe.MatchString(text):
				dateLine = text
			case dateLine == "":
				head = append(head, text)
			case strings.Contains(text, ":") || strings.HasPrefix(text, "$"):
				details = append(details, text)
			default:
				// A bare line after the details opens the next vendor block.
				flush()
				head = append(head, text)
			}
		}
		flush()
		return records, skipped
	})
}

func azBuildVendor(head []string, dateLine string, details []string, withCategory bool) (filing.Record, bool) {
	m := azDateAmountRe.FindStringSubmatch(dateLine)
	if m == nil {
		return nil, false
	}
	date, amount := m[1], m[2]

	name := head[0]
	address := strings.Join(head[1:], " | ")

	paymentMethod, cycleToDate := "", ""
	category, transType, memo := "", "", ""
	var extras []string
	for _, d := range details {
		if strings.HasPrefix(d, "$") {
			if cycleToDate == "" {
				cycleToDate = d
			} else {
				extras = append(extras, d)
			}
			continue
		}
		// The payment method shares the "Address:" label line in this layout.
		if v, ok := azLabelValue(d, "Address:"); ok {
			paymentMethod = v
			continue
		}
		if v, ok := azLabelValue(d, "Category:"); ok {
			if withCategory {
				category = v
			} else {
				extras = append(extras, "Category: "+v)
			}
			continue
		}
		if v, ok := azLabelValue(d, "Trans. Type:"); ok {
			transType = v
			continue
		}
		if v, ok := azLabelValue(d, "Memo:"); ok {
			memo = v
			continue
		}
		extras = append(extras, d)
	}

	raw := strings.Join(append(append(append([]string{}, head...), dateLine), details...), "\n")
	rec := filing.Record{
		"NAME":             filing.TextValue(name),
		"ADDRESS":          filing.TextValue(address),
		"DATE":             filing.DateValue(date),
		"AMOUNT":           filing.CurrencyValue(amount),
		"PAYMENT METHOD":   filing.TextValue(paymentMethod),
		"CYCLE TO DATE":    filing.CurrencyValue(cycleToDate),
		"TRANSACTION TYPE": filing.TextValue(transType),
		"MEMO":             filing.TextValue(memo),
		"DETAILS":          filing.TextValue(strings.Join(extras, " | ")),
		"RAW":              filing.TextValue(raw),
	}
	if withCategory {
		rec["CATEGORY"] = filing.TextValue(category)
	}
	return rec, true
}

// azParseSummary flattens the single-entry summary schedules (in-state small
// contributions, aggregate small expenses) into label/value rows.
func azParseSummary(lines []filing.Line) ([]filing.Record, int) {
	if len(lines) == 0 {
		return nil, 0
	}
	var records []filing.Record
	skipped := 0

	add := func(label, value string) {
		records = append(records, filing.Record{
			"Label": filing.TextValue(label),
			"Value": filing.TextValue(value),
		})
	}

	first := filing.CleanLine(lines[0].Text)
	rest := lines
	if m := azSummaryRe.FindStringSubmatch(first); m != nil {
		add("Name", m[1])
		add("Date", m[2])
		add("Amount", m[3])
		rest = lines[1:]
	}

	paymentMethod := ""
	var amounts []string
	var labels []string
	for _, line := range rest {
		text := filing.CleanLine(line.Text)
		switch {
		case text == "":
		case strings.HasPrefix(text, "$"):
			amounts = append(amounts, strings.TrimSpace(strings.TrimPrefix(text, "$")))
		case strings.HasPrefix(text, "Total") || strings.HasPrefix(text, "Net"):
			labels = append(labels, text)
		default:
			if v, ok := azLabelValue(text, "Address:"); ok && paymentMethod == "" {
				paymentMethod = v
				continue
			}
			if v, ok := azLabelValue(text, "Trans. Type:"); ok {
				add("Transaction Type", v)
				continue
			}
			skipped++
		}
	}

	if paymentMethod != "" {
		add("Payment Method", paymentMethod)
	}
	if len(amounts) > 0 {
		add("Cycle to Date", amounts[0])
	}
	for i, label := range labels {
		if i+1 >= len(amounts) {
			break
		}
		add(label, amounts[i+1])
	}
	return records, skipped
}

// azParseMetadata pulls report-level fields from the page header preamble.
func azParseMetadata(lines []filing.Line) ([]filing.Record, int) {
	var records []filing.Record
	seen := map[string]bool{}

	add := func(field, value string) {
		if value == "" || seen[field] {
			return
		}
		seen[field] = true
		records = append(records, filing.Record{
			"Field": filing.TextValue(field),
			"Value": filing.TextValue(value),
		})
	}

	for _, line := range lines {
		text := filing.CleanLine(line.Text)
		switch {
		case strings.HasPrefix(text, "Quarter "):
			add("Quarter", strings.TrimPrefix(text, "Quarter "))
		case strings.HasPrefix(text, "Covers "):
			add("Period", strings.TrimPrefix(text, "Covers "))
		case strings.HasPrefix(text, "Jurisdiction:"):
			add("Jurisdiction", strings.TrimSpace(strings.TrimPrefix(text, "Jurisdiction:")))
		case strings.Contains(text, "Filed on"):
			_, after, _ := strings.Cut(text, "Filed on")
			add("Filed", strings.TrimSpace(after))
		}
	}
	return records, 0
}
