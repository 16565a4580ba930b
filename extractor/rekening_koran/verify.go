package rekening_koran

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rekon-id/rekon/extractor/common"
)

// DefaultTolerance absorbs rounding drift between the statement's
// declared totals and the recomputed sums.
var DefaultTolerance = decimal.RequireFromString("0.01")

// CalculateDebitSum adds up the debit column. Unparseable and empty
// fields contribute zero.
func CalculateDebitSum(transactions []common.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(common.ResolveAmount(txn.Debit))
	}
	return sum
}

// CalculateCreditSum adds up the credit column.
func CalculateCreditSum(transactions []common.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(common.ResolveAmount(txn.Credit))
	}
	return sum
}

// Verify cross-checks the parsed transactions against the statement's
// own summary totals. The summary is read from summaryText, which is the
// full normalized statement text; verification never mutates or depends
// on anything but its inputs. When the statement declares no totals at
// all the result is not_available rather than a failure.
func Verify(transactions []common.Transaction, tolerance decimal.Decimal, summaryText string) common.Verification {
	totals := ExtractSummaryTotals(summaryText)

	v := common.Verification{
		TotalDebitExtracted:   totals.TotalDebit,
		TotalDebitCalculated:  CalculateDebitSum(transactions),
		TotalCreditExtracted:  totals.TotalCredit,
		TotalCreditCalculated: CalculateCreditSum(transactions),
	}

	if totals.TotalDebit == "" && totals.TotalCredit == "" {
		v.Status = common.StatusNotAvailable
		v.Message = "Summary totals not found in PDF - verification not applicable"
		return v
	}

	// A side the statement does not declare cannot fail.
	v.DebitMatch = true
	if totals.TotalDebit != "" {
		declared := common.ResolveAmount(totals.TotalDebit)
		v.DebitDiscrepancy = declared.Sub(v.TotalDebitCalculated).Abs()
		v.DebitMatch = v.DebitDiscrepancy.LessThanOrEqual(tolerance)
	}

	v.CreditMatch = true
	if totals.TotalCredit != "" {
		declared := common.ResolveAmount(totals.TotalCredit)
		v.CreditDiscrepancy = declared.Sub(v.TotalCreditCalculated).Abs()
		v.CreditMatch = v.CreditDiscrepancy.LessThanOrEqual(tolerance)
	}

	if v.DebitMatch && v.CreditMatch {
		v.Passed = true
		v.Status = common.StatusPassed
		v.Message = "All turnover totals match within tolerance"
	} else {
		v.Status = common.StatusFailed
		var parts []string
		if !v.DebitMatch {
			parts = append(parts, fmt.Sprintf("debit discrepancy: %s", groupThousands(v.DebitDiscrepancy)))
		}
		if !v.CreditMatch {
			parts = append(parts, fmt.Sprintf("credit discrepancy: %s", groupThousands(v.CreditDiscrepancy)))
		}
		v.Message = "Turnover mismatch - " + strings.Join(parts, ", ")
	}

	return v
}

// groupThousands renders a decimal with comma thousands separators and
// two decimal places, for human-facing messages.
func groupThousands(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
