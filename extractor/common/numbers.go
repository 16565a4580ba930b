package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts on these statements arrive in two conventions:
//
//	Indonesian: 1.234.567,89  ('.' groups thousands, ',' is the decimal)
//	Western:    1,234,567.89  (',' groups thousands, '.' is the decimal)
//
// When both separators are present, whichever appears last is the
// decimal separator. A lone ',' is treated as a Western thousands
// separator unless Indonesian parsing is requested explicitly.

// ResolveAmount parses a numeric token of ambiguous locale into a
// decimal. Parse failures yield zero; this feeds arithmetic (turnover
// sums), never display.
func ResolveAmount(value string) decimal.Decimal {
	d, ok := resolve(value)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseIndonesian parses a token under the Indonesian convention only.
// Returns zero on failure.
func ParseIndonesian(value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}
	cleaned := strings.ReplaceAll(value, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DisplayNumber converts a numeric token into its canonical display
// form: no thousands separators, trailing ".00" stripped so whole
// numbers stay whole. Anything that does not parse as a number passes
// through unchanged; this feeds CSV cells, never arithmetic.
func DisplayNumber(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if !hasDigit(value) {
		return value
	}
	d, ok := resolve(value)
	if !ok {
		return value
	}
	formatted := d.StringFixed(2)
	return strings.TrimSuffix(formatted, ".00")
}

func resolve(value string) (decimal.Decimal, bool) {
	original := strings.TrimSpace(value)
	if original == "" {
		return decimal.Zero, false
	}

	commaPos := strings.LastIndex(original, ",")
	periodPos := strings.LastIndex(original, ".")

	var cleaned string
	switch {
	case commaPos >= 0 && periodPos >= 0:
		if commaPos > periodPos {
			// Comma after period: Indonesian, e.g. 1.234.567,89
			cleaned = strings.ReplaceAll(original, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			// Period after comma: Western, e.g. 1,234,567.89
			cleaned = strings.ReplaceAll(original, ",", "")
		}
	case commaPos >= 0:
		// Only commas: Western grouping without decimals, e.g. 10,000
		cleaned = strings.ReplaceAll(original, ",", "")
	default:
		cleaned = original
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
