package rekening_koran

import (
	"regexp"
	"strings"

	"github.com/rekon-id/rekon/extractor/common"
)

var (
	// New-record anchor: date and time at the start of a line.
	txnDateAnchor = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2}:\d{2}`)

	// A line holding nothing but an amount; terminates description
	// collection.
	numericLine = regexp.MustCompile(`^[\d,.]+$`)

	// Decimal amount in either locale: digit groups ending in a
	// two-digit fraction (10.000,00 or 10,000.00 or 10000.00).
	amountToken = regexp.MustCompile(`^[\d.,]*\d[.,]\d{2}$`)

	// Teller/user ids are plain 6-8 digit integers. A whole-number
	// amount in that digit window is indistinguishable from an id and
	// is classified as the user by stated precedence; see the parser
	// tests for the documented limitation.
	userIDToken = regexp.MustCompile(`^\d{6,8}$`)

	// One whole transaction on a single line, for backends that keep
	// rows intact: date, description, user, optional debit, optional
	// credit, balance.
	inlineRowPattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+(\w+)\s+([\d,.]+)?\s+([\d,.]+)?\s+([\d,.]+)`)
)

// ExtractTransactions reconstructs transaction records from normalized
// text where each field sits on its own line:
//
//	DD/MM/YY HH:MM:SS
//	description (one or more lines)
//	user/teller id (optional)
//	debit
//	credit
//	balance
//
// A single left-to-right scan; the function never fails and always
// returns a (possibly empty) slice. Malformed or truncated trailing
// records are dropped, never reported.
func ExtractTransactions(text string) []common.Transaction {
	transactions := []common.Transaction{}
	lines := strings.Split(text, "\n")
	i := 0

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || !txnDateAnchor.MatchString(line) {
			i++
			continue
		}

		// Keep the full date+time token as scanned.
		date := line
		i++

		// Accumulate description lines until an amount or the next
		// record begins; blank lines are skipped silently.
		var descParts []string
		for i < len(lines) {
			next := strings.TrimSpace(lines[i])
			if txnDateAnchor.MatchString(next) || numericLine.MatchString(next) {
				break
			}
			if next != "" {
				descParts = append(descParts, next)
			}
			i++
		}
		description := strings.Join(descParts, " ")

		for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
			i++
		}
		if i >= len(lines) {
			// Truncated trailing record: no fields left to read.
			break
		}

		next := strings.TrimSpace(lines[i])

		var user, debit, credit, balance string
		switch {
		case userIDToken.MatchString(next):
			user = next
			i++
			debit = readField(lines, &i)
			credit = readField(lines, &i)
			balance = readField(lines, &i)
		case amountToken.MatchString(next):
			// No user field on this record; the token is the debit.
			debit = next
			i++
			credit = readField(lines, &i)
			balance = readField(lines, &i)
		case txnDateAnchor.MatchString(next):
			// The next record starts immediately: this one carried no
			// trailing fields. Emit it as scanned and reprocess the
			// anchor line.
		default:
			// Neither an id nor an amount; treat it as the user rather
			// than dropping the record, and still consume the amount
			// triplet.
			user = next
			i++
			debit = readField(lines, &i)
			credit = readField(lines, &i)
			balance = readField(lines, &i)
		}

		transactions = append(transactions, common.Transaction{
			Date:        date,
			Description: description,
			User:        user,
			Debit:       debit,
			Credit:      credit,
			Balance:     balance,
		})
	}

	return transactions
}

// readField skips blank lines and returns the next line's content, or
// "" when the input is exhausted.
func readField(lines []string, i *int) string {
	for *i < len(lines) && strings.TrimSpace(lines[*i]) == "" {
		*i++
	}
	if *i >= len(lines) {
		return ""
	}
	v := strings.TrimSpace(lines[*i])
	*i++
	return v
}

// Column headings and summary labels that must not be mistaken for
// inline transaction rows.
var inlineSkipMarkers = []string{
	"Tanggal Transaksi", "Transaction Date",
	"Uraian Transaksi", "Transaction Description",
	"Teller", "User ID",
	"Debet", "Debit",
	"Kredit", "Credit",
	"Saldo", "Balance",
	"Total Transaksi", "Opening Balance",
}

// ExtractTransactionsInline parses transaction rows that survived
// extraction as single lines. Used as a fallback when the column-based
// scan finds nothing.
func ExtractTransactionsInline(text string) []common.Transaction {
	transactions := []common.Transaction{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isInlineHeader(line) {
			continue
		}

		m := inlineRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		transactions = append(transactions, common.Transaction{
			Date:        strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
			User:        strings.TrimSpace(m[3]),
			Debit:       strings.TrimSpace(m[4]),
			Credit:      strings.TrimSpace(m[5]),
			Balance:     strings.TrimSpace(m[6]),
		})
	}

	return transactions
}

func isInlineHeader(line string) bool {
	for _, marker := range inlineSkipMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
