package rekening_koran

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rekon-id/rekon/extractor/common"
)

func verifyFixture() []common.Transaction {
	return []common.Transaction{
		{Date: "01/01/24 10:00:00", Debit: "100.000,25", Credit: "0,00", Balance: "900.000,00"},
		{Date: "02/01/24 11:00:00", Debit: "200.000,25", Credit: "50.000,00", Balance: "750.000,00"},
	}
}

func TestCalculateDebitSum(t *testing.T) {
	sum := CalculateDebitSum(verifyFixture())
	assert.Equal(t, "300000.5", sum.String())
}

func TestCalculateCreditSum(t *testing.T) {
	sum := CalculateCreditSum(verifyFixture())
	assert.Equal(t, "50000", sum.String())
}

func TestCalculateDebitSum_IgnoresUnparseable(t *testing.T) {
	txns := []common.Transaction{
		{Debit: "100.00"},
		{Debit: ""},
		{Debit: "n/a"},
	}
	sum := CalculateDebitSum(txns)
	assert.Equal(t, "100", sum.String())
}

func TestVerify_Passed(t *testing.T) {
	summary := "Total Transaksi Debet : 300.000,50\nTotal Transaksi Kredit : 50.000,00\n"
	v := Verify(verifyFixture(), DefaultTolerance, summary)

	assert.True(t, v.Passed)
	assert.True(t, v.DebitMatch)
	assert.True(t, v.CreditMatch)
	assert.Equal(t, common.StatusPassed, v.Status)
	assert.Equal(t, "All turnover totals match within tolerance", v.Message)
	assert.Equal(t, "300.000,50", v.TotalDebitExtracted)
	assert.Equal(t, "300000.5", v.TotalDebitCalculated.String())
}

func TestVerify_WithinTolerance(t *testing.T) {
	summary := "Total Transaksi Debet : 300.000,51\nTotal Transaksi Kredit : 50.000,00\n"
	v := Verify(verifyFixture(), DefaultTolerance, summary)

	assert.True(t, v.Passed)
	assert.Equal(t, common.StatusPassed, v.Status)
}

func TestVerify_Failed(t *testing.T) {
	summary := "Total Transaksi Debet : 305.000,00\nTotal Transaksi Kredit : 50.000,00\n"
	v := Verify(verifyFixture(), DefaultTolerance, summary)

	assert.False(t, v.Passed)
	assert.False(t, v.DebitMatch)
	assert.True(t, v.CreditMatch)
	assert.Equal(t, common.StatusFailed, v.Status)
	assert.Equal(t, "4499.5", v.DebitDiscrepancy.String())
	assert.Equal(t, "Turnover mismatch - debit discrepancy: 4,499.50", v.Message)
}

func TestVerify_BothSidesFailed(t *testing.T) {
	summary := "Total Transaksi Debet : 305.000,00\nTotal Transaksi Kredit : 60.000,00\n"
	v := Verify(verifyFixture(), DefaultTolerance, summary)

	assert.Equal(t, common.StatusFailed, v.Status)
	assert.Equal(t, "Turnover mismatch - debit discrepancy: 4,499.50, credit discrepancy: 10,000.00", v.Message)
}

func TestVerify_NotAvailable(t *testing.T) {
	v := Verify(verifyFixture(), DefaultTolerance, "no totals anywhere\n")

	assert.False(t, v.Passed)
	assert.Equal(t, common.StatusNotAvailable, v.Status)
	assert.Equal(t, "Summary totals not found in PDF - verification not applicable", v.Message)
}

func TestVerify_CustomTolerance(t *testing.T) {
	summary := "Total Transaksi Debet : 300.005,50\nTotal Transaksi Kredit : 50.000,00\n"

	strict := Verify(verifyFixture(), DefaultTolerance, summary)
	assert.Equal(t, common.StatusFailed, strict.Status)

	loose := Verify(verifyFixture(), decimal.RequireFromString("10"), summary)
	assert.Equal(t, common.StatusPassed, loose.Status)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,234,567.89", groupThousands(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "0.00", groupThousands(decimal.Zero))
	assert.Equal(t, "-1,000.00", groupThousands(decimal.RequireFromString("-1000")))
}
