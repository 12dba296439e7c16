package tui

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Client-side input checks. A failure here produces a warning notice and an
// early return; no request is made.

var (
	errNotANumber   = errors.New("not a number")
	errNotPositive  = errors.New("must be greater than zero")
	errMissingField = errors.New("required field is empty")
)

func trimmed(s string) string { return strings.TrimSpace(s) }

// parseAmount accepts any finite numeric input, sign unrestricted. Used for
// the budget total.
func parseAmount(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errNotANumber
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errNotANumber
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable amount and
	// neither survives JSON encoding.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	return v, nil
}

// parseSellPrice requires a positive number. Zero, negatives and garbage are
// all rejected before any network call.
func parseSellPrice(input string) (float64, error) {
	v, err := parseAmount(input)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errNotPositive
	}
	return v, nil
}

// validateNewPhone checks the add-phone form: brand and model must be
// non-blank after trimming, price must parse. Notes are optional.
func validateNewPhone(brand, model, price string) (float64, error) {
	if strings.TrimSpace(brand) == "" || strings.TrimSpace(model) == "" {
		return 0, errMissingField
	}
	return parseAmount(price)
}
