package tui

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"100", 100, false},
		{" 42.50 ", 42.5, false},
		{"-25", -25, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"12,50", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
		{"-Inf", 0, true},
		{"Infinity", 0, true},
	}
	for _, tc := range cases {
		got, err := parseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSellPriceRejectsNonPositive(t *testing.T) {
	for _, in := range []string{"0", "-5", "abc", "", "NaN", "+Inf"} {
		if _, err := parseSellPrice(in); err == nil {
			t.Errorf("parseSellPrice(%q): expected error", in)
		}
	}
	if _, err := parseSellPrice("-5"); !errors.Is(err, errNotPositive) {
		t.Error("negative price should report errNotPositive")
	}
	got, err := parseSellPrice("199.99")
	if err != nil || got != 199.99 {
		t.Errorf("parseSellPrice(199.99) = %v, %v", got, err)
	}
}

func TestValidateNewPhone(t *testing.T) {
	if _, err := validateNewPhone("", "X1", "100"); !errors.Is(err, errMissingField) {
		t.Error("blank brand should be rejected")
	}
	if _, err := validateNewPhone("Acme", "   ", "100"); !errors.Is(err, errMissingField) {
		t.Error("whitespace model should be rejected")
	}
	if _, err := validateNewPhone("Acme", "X1", "cheap"); err == nil {
		t.Error("non-numeric price should be rejected")
	}
	got, err := validateNewPhone("Acme", "X1", "123.45")
	if err != nil || got != 123.45 {
		t.Errorf("validateNewPhone = %v, %v", got, err)
	}
}
