// Package output writes parse results as semicolon-delimited CSV, the
// delimiter Indonesian spreadsheet locales expect.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rekon-id/rekon/extractor/common"
)

func init() {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = ';'
		return gocsv.NewSafeCSVWriter(w)
	})
}

// WriteMetadataCSV emits the metadata as Field;Value rows in the fixed
// pair order. The summary totals are rendered in display form; header
// fields pass through untouched so account numbers keep leading zeros.
func WriteMetadataCSV(w io.Writer, md common.Metadata) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{"Field", "Value"}); err != nil {
		return fmt.Errorf("writing metadata header: %w", err)
	}
	for _, p := range md.Pairs() {
		value := p.Value
		switch p.Field {
		case "total_debit", "total_credit", "opening_balance", "closing_balance":
			value = common.DisplayNumber(value)
		}
		if err := cw.Write([]string{p.Field, value}); err != nil {
			return fmt.Errorf("writing metadata row %s: %w", p.Field, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTransactionsCSV emits the transaction table with the amount
// columns in display form. An empty slice still writes the header row.
func WriteTransactionsCSV(w io.Writer, transactions []common.Transaction) error {
	rows := make([]common.Transaction, len(transactions))
	for i, txn := range transactions {
		txn.Debit = common.DisplayNumber(txn.Debit)
		txn.Credit = common.DisplayNumber(txn.Credit)
		txn.Balance = common.DisplayNumber(txn.Balance)
		rows[i] = txn
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}

// SaveMetadataCSV writes the metadata CSV to path.
func SaveMetadataCSV(path string, md common.Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteMetadataCSV(f, md)
}

// SaveTransactionsCSV writes the transaction CSV to path.
func SaveTransactionsCSV(path string, transactions []common.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return WriteTransactionsCSV(f, transactions)
}
