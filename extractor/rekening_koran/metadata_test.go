package rekening_koran

import (
	"testing"
)

const stackedHeader = `No. Rekening
Account No
: 1234567890
Unit Kerja
Business Unit
:
KCP JAKARTA SUDIRMAN
Nama Produk
Product Name
:
Giro Bisnis-IDR
Tanggal Laporan
Statement Date
:
31 Januari 2024
Valuta
Currency
:
IDR
Periode Transaksi
Transaction Period
:
01/01/2024 - 31/01/2024
Alamat Unit Kerja
:
JL. JEND. SUDIRMAN NO. 1
`

func TestExtractMetadata_StackedBilingualHeader(t *testing.T) {
	md := ExtractMetadata(stackedHeader)

	if md.AccountNo != "1234567890" {
		t.Errorf("Expected account no '1234567890', got '%s'", md.AccountNo)
	}
	if md.BusinessUnit != "KCP JAKARTA SUDIRMAN" {
		t.Errorf("Expected business unit 'KCP JAKARTA SUDIRMAN', got '%s'", md.BusinessUnit)
	}
	if md.StatementDate != "31 Januari 2024" {
		t.Errorf("Expected statement date '31 Januari 2024', got '%s'", md.StatementDate)
	}
	if md.Valuta != "IDR" {
		t.Errorf("Expected valuta 'IDR', got '%s'", md.Valuta)
	}
	if md.UnitAddress != "JL. JEND. SUDIRMAN NO. 1" {
		t.Errorf("Expected unit address 'JL. JEND. SUDIRMAN NO. 1', got '%s'", md.UnitAddress)
	}
	if md.TransactionPeriod != "01/01/2024 - 31/01/2024" {
		t.Errorf("Expected transaction period '01/01/2024 - 31/01/2024', got '%s'", md.TransactionPeriod)
	}
}

func TestExtractMetadata_StripsProductCurrencySuffix(t *testing.T) {
	md := ExtractMetadata(stackedHeader)
	if md.ProductName != "Giro Bisnis" {
		t.Errorf("Expected product name 'Giro Bisnis', got '%s'", md.ProductName)
	}
}

func TestExtractMetadata_EmptyInput(t *testing.T) {
	md := ExtractMetadata("")
	for _, p := range md.Pairs() {
		if p.Value != "" {
			t.Errorf("Expected empty %s, got '%s'", p.Field, p.Value)
		}
	}
}

func TestExtractMetadata_RejectsLabelAsValue(t *testing.T) {
	// A header where the product pattern would latch onto the next
	// label instead of a real value.
	text := "Product Name\nUnit Kerja\n"
	md := ExtractMetadata(text)
	if md.ProductName != "" {
		t.Errorf("Expected label rejected as product name, got '%s'", md.ProductName)
	}
}

func TestExtractMetadata_InlineRetry(t *testing.T) {
	text := "No. Rekening : 9876543210\nNama Produk : Tabungan Bisnis\nTanggal Laporan : 28 Februari 2024\n"
	md := ExtractMetadata(text)

	if md.AccountNo != "9876543210" {
		t.Errorf("Expected account no '9876543210', got '%s'", md.AccountNo)
	}
	if md.ProductName != "Tabungan Bisnis" {
		t.Errorf("Expected product name 'Tabungan Bisnis', got '%s'", md.ProductName)
	}
	if md.StatementDate != "28 Februari 2024" {
		t.Errorf("Expected statement date '28 Februari 2024', got '%s'", md.StatementDate)
	}
}

func TestExtractMetadata_InlineDoesNotOverwriteStacked(t *testing.T) {
	// Stacked header resolves fewer than two fields, triggering the
	// inline pass; the stacked value must survive.
	text := "No. Rekening\nAccount No\n: 1234567890\nNama Produk : Deposito\n"
	md := ExtractMetadata(text)

	if md.AccountNo != "1234567890" {
		t.Errorf("Expected stacked account no kept, got '%s'", md.AccountNo)
	}
	if md.ProductName != "Deposito" {
		t.Errorf("Expected inline product name 'Deposito', got '%s'", md.ProductName)
	}
}

func TestExtractMetadata_CollapsesAddressWhitespace(t *testing.T) {
	text := "Alamat Unit Kerja\n:\nJL. GATOT   SUBROTO\n"
	md := ExtractMetadata(text)
	if md.UnitAddress != "JL. GATOT SUBROTO" {
		t.Errorf("Expected collapsed whitespace, got '%s'", md.UnitAddress)
	}
}
