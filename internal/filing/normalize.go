package filing

import (
	"strconv"
	"strings"
	"time"
)

// CleanLine collapses internal whitespace and replaces non-breaking spaces.
func CleanLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\u00a0", " ")), " ")
}

// ParseCurrency normalizes a currency token to a decimal value. Grouping
// separators and currency symbols are stripped; accounting-style parentheses
// and a leading minus both negate.
func ParseCurrency(tok string) (float64, bool) {
	cleaned := strings.TrimSpace(tok)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0, false
	}
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	} else if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

// CurrencyValue parses tok as currency. On failure the raw token is retained
// with the Raw flag set rather than dropped.
func CurrencyValue(tok string) Value {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Value{Kind: KindText}
	}
	n, ok := ParseCurrency(tok)
	if !ok {
		return Value{Kind: KindNumber, Text: tok, Raw: true}
	}
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n}
}

// NumberValue wraps an already-parsed numeric value.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n}
}

var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate normalizes a date token to ISO yyyy-mm-dd.
func ParseDate(tok string) (string, bool) {
	tok = strings.TrimSpace(tok)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, tok, time.UTC); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// DateValue parses tok as a date; unparseable dates keep the raw token.
func DateValue(tok string) Value {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Value{Kind: KindText}
	}
	iso, ok := ParseDate(tok)
	if !ok {
		return Value{Kind: KindDate, Text: tok, Raw: true}
	}
	return Value{Kind: KindDate, Text: iso}
}

// TextValue wraps a plain string field.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: strings.TrimSpace(s)}
}
