// Package normalize cleans raw registry cell values before any downstream
// parsing. Every call site in the converter goes through Clean first so the
// absent-value sentinels are interpreted exactly once.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// absentSentinels are literal cell values the registry uses for "no data".
// Matched case-sensitively, after whitespace trimming.
var absentSentinels = map[string]struct{}{
	"":     {},
	"N":    {},
	"n/a":  {},
	"N/A":  {},
	"null": {},
	"NULL": {},
}

// Clean trims a raw cell value and reports whether it carries data. Sentinel
// values and whitespace-only strings are absent.
func Clean(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if _, absent := absentSentinels[trimmed]; absent {
		return "", false
	}
	return trimmed, true
}

// Slug derives a URI-safe identifier segment from a label: lowercase, every
// run of characters outside [a-z0-9] collapsed to a single hyphen, leading
// and trailing hyphens stripped. An empty result falls back to "unnamed".
func Slug(label string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}

// Monetary parses a registry money string such as "$50,000". The currency
// symbol, thousands separators and whitespace are stripped before conversion.
// Only finite non-negative amounts count as present; anything else is absent.
func Monetary(value string) (float64, bool) {
	cleaned, ok := Clean(value)
	if !ok {
		return 0, false
	}
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t':
			return -1
		}
		return r
	}, cleaned)
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) || amount < 0 {
		return 0, false
	}
	return amount, true
}

// Coordinate parses a latitude or longitude cell into a finite float.
func Coordinate(value string) (float64, bool) {
	cleaned, ok := Clean(value)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Integer parses a numeric cell into an int. The registry stores some
// integer columns as decimals ("1901.0"), so float syntax is accepted.
func Integer(value string) (int, bool) {
	cleaned, ok := Clean(value)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return int(f), true
}
