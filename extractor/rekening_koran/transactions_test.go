package rekening_koran

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTransactions_IndonesianFormat(t *testing.T) {
	text := `
01/01/23 10:00:00
Transfer
User123
10.000,00
0,00
1.000.000,00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 1)

	txn := transactions[0]
	// "User123" is not a bare 6-8 digit id, so it joins the description;
	// the Indonesian amount must still be classified as the debit.
	assert.Equal(t, "Transfer User123", txn.Description)
	assert.Equal(t, "10.000,00", txn.Debit)
	assert.Equal(t, "0,00", txn.Credit)
	assert.Equal(t, "1.000.000,00", txn.Balance)
	assert.NotEqual(t, "10.000,00", txn.User)
	assert.Equal(t, "", txn.User)
}

func TestExtractTransactions_NumericUserID(t *testing.T) {
	text := `
01/01/24 10:00:00
SETORAN TUNAI
123456
10.000,00
0,00
5.000.000,00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 1)

	txn := transactions[0]
	assert.Equal(t, "01/01/24 10:00:00", txn.Date)
	assert.Equal(t, "SETORAN TUNAI", txn.Description)
	assert.Equal(t, "123456", txn.User)
	assert.Equal(t, "10.000,00", txn.Debit)
	assert.Equal(t, "0,00", txn.Credit)
	assert.Equal(t, "5.000.000,00", txn.Balance)
}

func TestExtractTransactions_USFormat(t *testing.T) {
	text := `
01/01/23 10:00:00
Transfer
654321
10000.00
0.00
1000000.00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 1)

	txn := transactions[0]
	assert.Equal(t, "654321", txn.User)
	assert.Equal(t, "10000.00", txn.Debit)
	assert.Equal(t, "0.00", txn.Credit)
	assert.Equal(t, "1000000.00", txn.Balance)
}

func TestExtractTransactions_NineDigitUserID(t *testing.T) {
	text := `
01/01/24 12:00:00
Transfer Test
123456789
100000.00
0.00
500000.00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 1)

	txn := transactions[0]
	assert.Equal(t, "123456789", txn.User)
	assert.Equal(t, "100000.00", txn.Debit)
	assert.Equal(t, "500000.00", txn.Balance)
}

func TestExtractTransactions_MultipleRecords(t *testing.T) {
	text := `01/01/24 10:00:00
SETORAN TUNAI
123456
10.000,00
0,00
5.000.000,00
02/01/24 11:30:00
BIAYA ADMIN
10.000,00
0,00
4.990.000,00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "123456", transactions[0].User)
	assert.Equal(t, "", transactions[1].User)
	assert.Equal(t, "10.000,00", transactions[1].Debit)
	assert.Equal(t, "4.990.000,00", transactions[1].Balance)
}

func TestExtractTransactions_MultiLineDescription(t *testing.T) {
	text := `01/01/24 10:00:00
TRANSFER KE
PT MAJU JAYA
123456
100.00
0.00
900.00
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "TRANSFER KE PT MAJU JAYA", transactions[0].Description)
}

func TestExtractTransactions_EmptyInput(t *testing.T) {
	transactions := ExtractTransactions("")
	assert.NotNil(t, transactions)
	assert.Len(t, transactions, 0)
}

func TestExtractTransactions_ArbitraryText(t *testing.T) {
	transactions := ExtractTransactions("nothing here\nresembles a statement\n42\n")
	assert.Len(t, transactions, 0)
}

func TestExtractTransactions_TruncatedTrailingRecordDropped(t *testing.T) {
	text := `01/01/24 10:00:00
TRANSFER MASUK
`
	transactions := ExtractTransactions(text)
	assert.Len(t, transactions, 0)
}

func TestExtractTransactionsInline_Row(t *testing.T) {
	text := "01/01/24 TRANSFER 123456 100.00 0.00 900.00\n"
	transactions := ExtractTransactionsInline(text)
	assert.Len(t, transactions, 1)

	txn := transactions[0]
	assert.Equal(t, "01/01/24", txn.Date)
	assert.Equal(t, "TRANSFER", txn.Description)
	assert.Equal(t, "123456", txn.User)
	assert.Equal(t, "100.00", txn.Debit)
	assert.Equal(t, "0.00", txn.Credit)
	assert.Equal(t, "900.00", txn.Balance)
}

func TestExtractTransactionsInline_SkipsHeaderLines(t *testing.T) {
	text := "Tanggal Transaksi Uraian Transaksi Teller\n01/01/24 TRANSFER 123456 100.00 0.00 900.00\n"
	transactions := ExtractTransactionsInline(text)
	assert.Len(t, transactions, 1)
	assert.Equal(t, "TRANSFER", transactions[0].Description)
}

func TestExtractTransactionsInline_NoMatches(t *testing.T) {
	transactions := ExtractTransactionsInline("free text without rows\n")
	assert.Len(t, transactions, 0)
}
