package rekening_koran

import (
	"regexp"
	"strings"
)

// SummaryTotals are the statement's own declared turnover figures,
// printed as a block of stacked bilingual labels followed by a block of
// stacked values. Raw strings as scanned; "" marks an absent figure.
type SummaryTotals struct {
	TotalDebit     string
	TotalCredit    string
	OpeningBalance string
	ClosingBalance string
}

type summaryLabel struct {
	key string
	re  *regexp.Regexp
}

// Association with values is by position on the page, not by this
// order.
var summaryLabels = []summaryLabel{
	{"opening_balance", regexp.MustCompile(`(?i)^Saldo\s+Awal$|^Opening\s+Balance$`)},
	{"total_debit", regexp.MustCompile(`(?i)^Total\s+Transaksi\s+Debet$|^Total\s+Debit\s+Transaction$`)},
	{"total_credit", regexp.MustCompile(`(?i)^Total\s+Transaksi\s+Kredit$|^Total\s+Credit\s+Transaction$`)},
	{"closing_balance", regexp.MustCompile(`(?i)^Saldo\s+Akhir$|^Closing\s+Balance$`)},
}

var (
	// A line that is entirely one numeric token.
	summaryValueLine = regexp.MustCompile(`^[\d,.]+$`)
	// Numeric or empty; lines outside this end the value block.
	summaryNumericOnly = regexp.MustCompile(`^[\d,.]*$`)
)

// Inline fallbacks for statements that print "label : value" on one
// line. Only the turnover pair appears inline in the wild.
var (
	inlineDebitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total\s+Transaksi\s+Debet\s*[:\s]*([\d.,]+)`),
		regexp.MustCompile(`(?i)Total\s+Debit\s+Transaction\s*[:\s]*([\d.,]+)`),
	}
	inlineCreditPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total\s+Transaksi\s+Kredit\s*[:\s]*([\d.,]+)`),
		regexp.MustCompile(`(?i)Total\s+Credit\s+Transaction\s*[:\s]*([\d.,]+)`),
	}
)

// ExtractSummaryTotals locates the summary block and maps values to
// labels by position. The statement prints every label twice (Indonesian
// then English), so repeated sightings of a key keep only the first.
// When the value count reaches the label count the two runs are zipped
// in order; otherwise each label takes the first amount that appears
// below it. Missing figures stay "".
func ExtractSummaryTotals(text string) SummaryTotals {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	// First occurrence of each label key, in appearance order.
	var keys []string
	labelLine := map[string]int{}
	for i, line := range lines {
		for _, sl := range summaryLabels {
			if sl.re.MatchString(line) {
				if _, seen := labelLine[sl.key]; !seen {
					labelLine[sl.key] = i
					keys = append(keys, sl.key)
				}
				break
			}
		}
	}

	totals := SummaryTotals{}
	if len(keys) > 0 {
		// Numeric lines from the first label onward form the value
		// run. The label lines themselves pass through harmlessly; a
		// non-numeric line ends the run once it plausibly started.
		start := labelLine[keys[0]]

		var values []string
		var valueLine []int
		for i := start; i < len(lines); i++ {
			line := lines[i]
			if summaryValueLine.MatchString(line) {
				values = append(values, line)
				valueLine = append(valueLine, i)
			} else if !summaryNumericOnly.MatchString(line) {
				if len(values) >= 2 {
					break
				}
			}
		}

		if len(values) >= len(keys) {
			for i, key := range keys {
				setSummaryField(&totals, key, values[i])
			}
		} else {
			for _, key := range keys {
				for i, v := range values {
					if valueLine[i] > labelLine[key] {
						setSummaryField(&totals, key, v)
						break
					}
				}
			}
		}
	}

	if totals.TotalDebit == "" {
		totals.TotalDebit = firstInlineMatch(inlineDebitPatterns, text)
	}
	if totals.TotalCredit == "" {
		totals.TotalCredit = firstInlineMatch(inlineCreditPatterns, text)
	}

	return totals
}

func setSummaryField(t *SummaryTotals, key, value string) {
	switch key {
	case "total_debit":
		t.TotalDebit = value
	case "total_credit":
		t.TotalCredit = value
	case "opening_balance":
		t.OpeningBalance = value
	case "closing_balance":
		t.ClosingBalance = value
	}
}

func firstInlineMatch(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
