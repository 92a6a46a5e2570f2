// Package format holds the tolerant currency and date coercion used across
// normalization, printing and export. Nothing here ever returns an error:
// unparseable input passes through unchanged so that years of hand-typed
// legacy values keep displaying as they were stored.
package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// dateLayouts are the shapes the sheet has accumulated over time.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDateInput re-renders any parseable date as YYYY-MM-DD, the shape
// the edit form expects. Empty input becomes today; unparseable input is
// returned untouched.
func NormalizeDateInput(value string) string {
	if strings.TrimSpace(value) == "" {
		return time.Now().Format("2006-01-02")
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("2006-01-02")
}

// Date renders a date as DD/MM/YYYY for display. Empty stays empty and
// unparseable input passes through unchanged.
func Date(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	t, ok := parseDate(value)
	if !ok {
		return value
	}
	return t.Format("02/01/2006")
}

// ParseAmount coerces a stored currency-ish string to a number for
// arithmetic: everything except digits, comma and minus is stripped, the
// decimal comma becomes a period. Garbage parses to 0.
func ParseAmount(value string) float64 {
	n, ok := parseAmount(value)
	if !ok {
		return 0
	}
	return n
}

func parseAmount(value string) (float64, bool) {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Currency renders a stored amount with Brazilian grouping and decimal
// conventions. The empty string stays empty; a value that does not coerce
// to a number is returned as-is instead of being zeroed.
func Currency(value string) string {
	if value == "" {
		return ""
	}
	n, ok := parseAmount(value)
	if !ok {
		return value
	}
	return ptBR.Sprintf("R$ %.2f", n)
}

// CurrencyFloat renders an already numeric amount the same way.
func CurrencyFloat(n float64) string {
	return ptBR.Sprintf("R$ %.2f", n)
}
