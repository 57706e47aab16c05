package filing

import "testing"

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"$1,234.56", 1234.56, true},
		{"1234.56", 1234.56, true},
		{"(500.00)", -500.00, true},
		{"($500.00)", -500.00, true},
		{"-75.25", -75.25, true},
		{"$ 100.00", 100.00, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"$", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseCurrency(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseCurrency(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCurrencyValueKeepsRawOnFailure(t *testing.T) {
	v := CurrencyValue("N/A")
	if !v.Raw {
		t.Fatal("expected Raw flag for unparseable amount")
	}
	if v.Display() != "N/A" {
		t.Errorf("Display() = %q, want the original token", v.Display())
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"01/02/2024", "2024-01-02", true},
		{"1/2/2024", "2024-01-02", true},
		{"2024-01-02", "2024-01-02", true},
		{"01-02-2024", "2024-01-02", true},
		{"January 2, 2024", "2024-01-02", true},
		{"Jan 2, 2024", "2024-01-02", true},
		{"02/30/2024", "", false},
		{"not a date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDateValueKeepsRawOnFailure(t *testing.T) {
	v := DateValue("13/45/9999")
	if !v.Raw {
		t.Fatal("expected Raw flag for unparseable date")
	}
	if v.Display() != "13/45/9999" {
		t.Errorf("Display() = %q, want the original token", v.Display())
	}
}

func TestCleanLine(t *testing.T) {
	if got := CleanLine("  a \t b c  "); got != "a b c" {
		t.Errorf("CleanLine = %q", got)
	}
}

func TestTableAppendConforms(t *testing.T) {
	table := NewTable("S", Schema{Name: "Sheet", Columns: []string{"A", "B"}})
	table.Append(Record{"A": TextValue("x"), "C": TextValue("dropped")})
	if len(table.Records) != 1 {
		t.Fatalf("records = %d", len(table.Records))
	}
	row := table.Row(0)
	if row[0] != "x" || row[1] != "" {
		t.Errorf("Row(0) = %v", row)
	}
	if _, ok := table.Records[0]["C"]; ok {
		t.Error("unexpected off-schema column retained")
	}
}
