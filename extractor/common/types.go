package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metadata holds the labeled header fields of one statement plus the
// statement's own declared summary totals. Every key always exists;
// a field that could not be resolved holds "" so callers never have to
// branch on presence.
type Metadata struct {
	AccountNo         string `json:"account_no"`
	BusinessUnit      string `json:"business_unit"`
	ProductName       string `json:"product_name"`
	StatementDate     string `json:"statement_date"`
	Valuta            string `json:"valuta"`
	UnitAddress       string `json:"unit_address"`
	TransactionPeriod string `json:"transaction_period"`
	TotalDebit        string `json:"total_debit"`
	TotalCredit       string `json:"total_credit"`
	OpeningBalance    string `json:"opening_balance"`
	ClosingBalance    string `json:"closing_balance"`
}

// FieldValue is one metadata entry in CSV emission order.
type FieldValue struct {
	Field string
	Value string
}

// Pairs returns all metadata fields in their fixed output order.
func (m Metadata) Pairs() []FieldValue {
	return []FieldValue{
		{"account_no", m.AccountNo},
		{"business_unit", m.BusinessUnit},
		{"product_name", m.ProductName},
		{"statement_date", m.StatementDate},
		{"valuta", m.Valuta},
		{"unit_address", m.UnitAddress},
		{"transaction_period", m.TransactionPeriod},
		{"total_debit", m.TotalDebit},
		{"total_credit", m.TotalCredit},
		{"opening_balance", m.OpeningBalance},
		{"closing_balance", m.ClosingBalance},
	}
}

// NonEmpty counts resolved metadata fields.
func (m Metadata) NonEmpty() int {
	n := 0
	for _, p := range m.Pairs() {
		if strings.TrimSpace(p.Value) != "" {
			n++
		}
	}
	return n
}

// Transaction is one reconstructed statement row. All fields are kept as
// the raw strings scanned from the page text; debit XOR credit populated
// is the expected case, but informational rows leave both empty.
type Transaction struct {
	Date        string `json:"date" csv:"Date"`
	Description string `json:"description" csv:"Description"`
	User        string `json:"user" csv:"User"`
	Debit       string `json:"debit" csv:"Debit"`
	Credit      string `json:"credit" csv:"Credit"`
	Balance     string `json:"balance" csv:"Balance"`
}

// ParseResult owns one statement's extracted data. FullText is the
// normalized multi-page text, retained for the turnover verifier.
type ParseResult struct {
	Metadata     Metadata      `json:"metadata"`
	Transactions []Transaction `json:"transactions"`
	FullText     string        `json:"-"`
}

// Verification statuses.
const (
	StatusPassed       = "passed"
	StatusFailed       = "failed"
	StatusNotAvailable = "not_available"
)

// Verification is the outcome of the turnover cross-check. Computed once
// per ParseResult and never mutated.
type Verification struct {
	Passed                bool            `json:"passed"`
	DebitMatch            bool            `json:"debit_match"`
	CreditMatch           bool            `json:"credit_match"`
	TotalDebitExtracted   string          `json:"total_debit_extracted"`
	TotalDebitCalculated  decimal.Decimal `json:"total_debit_calculated"`
	DebitDiscrepancy      decimal.Decimal `json:"debit_discrepancy"`
	TotalCreditExtracted  string          `json:"total_credit_extracted"`
	TotalCreditCalculated decimal.Decimal `json:"total_credit_calculated"`
	CreditDiscrepancy     decimal.Decimal `json:"credit_discrepancy"`
	Status                string          `json:"status"`
	Message               string          `json:"message"`
}

// IsValidParse is the data-quality gate applied by callers, not by the
// parser itself: at least two resolved metadata fields, at least one
// transaction, and every transaction carries a date and a balance.
func IsValidParse(metadata Metadata, transactions []Transaction) bool {
	if metadata.NonEmpty() < 2 {
		return false
	}
	if len(transactions) == 0 {
		return false
	}
	for _, txn := range transactions {
		if txn.Date == "" || txn.Balance == "" {
			return false
		}
	}
	return true
}
