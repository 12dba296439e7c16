package money

import "testing"

func TestFormat(t *testing.T) {
	f := NewFormatter("USD")
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{100, "$100.00"},
		{199.99, "$199.99"},
		{-42.5, "-$42.50"},
		{500, "$500.00"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPtrNilIsZero(t *testing.T) {
	f := NewFormatter("USD")
	if got := f.FormatPtr(nil); got != "$0.00" {
		t.Errorf("FormatPtr(nil) = %q, want $0.00", got)
	}
	v := 50.0
	if got := f.FormatPtr(&v); got != "$50.00" {
		t.Errorf("FormatPtr(&50) = %q, want $50.00", got)
	}
}

func TestZeroValueFormatterFallsBackToUSD(t *testing.T) {
	var f Formatter
	if got := f.Format(1); got != "$1.00" {
		t.Errorf("zero-value formatter = %q, want $1.00", got)
	}
}

func TestUnknownCurrencyFallsBackToUSD(t *testing.T) {
	f := NewFormatter("???")
	if got := f.Format(1); got != "$1.00" {
		t.Errorf("unknown currency = %q, want $1.00", got)
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"bought":  "Bought",
		"sold":    "Sold",
		"scammed": "Scammed",
		"":        "",
	}
	for in, want := range cases {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
