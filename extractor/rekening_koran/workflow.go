package rekening_koran

import (
	"log"

	"github.com/rekon-id/rekon/extractor/common"
)

// Parse runs the whole reconstruction over already-normalized page
// texts. Header fields anchor on page one; transactions and summary
// totals are scanned across all pages. The column-based transaction scan
// runs first and the inline row parser only fires when it finds nothing,
// so the two can never double-count.
func Parse(normalizedPages []string, headerPage string) *common.ParseResult {
	var fullText string
	for _, page := range normalizedPages {
		fullText += page + "\n"
	}

	metadata := ExtractMetadata(headerPage)

	transactions := ExtractTransactions(fullText)
	if len(transactions) == 0 {
		log.Printf("column scan found no transactions, trying inline rows")
		transactions = ExtractTransactionsInline(fullText)
	}
	log.Printf("extracted %d transactions", len(transactions))

	totals := ExtractSummaryTotals(fullText)
	if totals.TotalDebit != "" {
		metadata.TotalDebit = totals.TotalDebit
	}
	if totals.TotalCredit != "" {
		metadata.TotalCredit = totals.TotalCredit
	}
	if totals.OpeningBalance != "" {
		metadata.OpeningBalance = totals.OpeningBalance
	}
	if totals.ClosingBalance != "" {
		metadata.ClosingBalance = totals.ClosingBalance
	}

	return &common.ParseResult{
		Metadata:     metadata,
		Transactions: transactions,
		FullText:     fullText,
	}
}
