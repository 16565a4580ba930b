package rekening_koran

import (
	"testing"
)

func TestSmashChain_EmptyInput(t *testing.T) {
	if got := SmashChain.Apply(""); got != "" {
		t.Errorf("Expected '', got '%s'", got)
	}
}

func TestSmashChain_CleanTextUnchanged(t *testing.T) {
	clean := "01/01/24 10:00:00\nSETORAN TUNAI\n123456\n10.000,00\n0,00\n5.000.000,00\n"
	if got := SmashChain.Apply(clean); got != clean {
		t.Errorf("Expected clean text unchanged, got '%s'", got)
	}
}

func TestSmashChain_SplitsSmashedAmounts(t *testing.T) {
	got := SmashChain.Apply("0.0026,000.00")
	if got != "0.00\n26,000.00" {
		t.Errorf("Expected '0.00\\n26,000.00', got '%s'", got)
	}
}

func TestSmashChain_SplitsThreeSmashedAmounts(t *testing.T) {
	got := SmashChain.Apply("10.0020.0030.00")
	if got != "10.00\n20.00\n30.00" {
		t.Errorf("Expected three lines, got '%s'", got)
	}
}

func TestSmashChain_SplitsGroupedSmashedAmounts(t *testing.T) {
	got := SmashChain.Apply("1,234.567,890.12")
	if got != "1,234.56\n7,890.12" {
		t.Errorf("Expected '1,234.56\\n7,890.12', got '%s'", got)
	}
}

func TestSmashChain_SplitsMidSentence(t *testing.T) {
	got := SmashChain.Apply("Balance: 1,000.002,500.00 End")
	if got != "Balance: 1,000.00\n2,500.00 End" {
		t.Errorf("Expected split inside sentence, got '%s'", got)
	}
}

func TestSmashChain_KeepsIndonesianGrouping(t *testing.T) {
	if got := SmashChain.Apply("1.000.000,00"); got != "1.000.000,00" {
		t.Errorf("Expected Indonesian amount untouched, got '%s'", got)
	}
}

func TestSmashChain_KeepsSingleWesternAmount(t *testing.T) {
	if got := SmashChain.Apply("1,000.00"); got != "1,000.00" {
		t.Errorf("Expected single amount untouched, got '%s'", got)
	}
}

func TestSmashChain_SplitsTextFromAmount(t *testing.T) {
	got := SmashChain.Apply("TRANSFER MASUK26,000.00")
	if got != "TRANSFER MASUK\n26,000.00" {
		t.Errorf("Expected text split from amount, got '%s'", got)
	}
}

func TestSmashChain_SplitsTextFromUserID(t *testing.T) {
	got := SmashChain.Apply("SETORAN TUNAI123456 ")
	if got != "SETORAN TUNAI\n123456 " {
		t.Errorf("Expected text split from user id, got '%s'", got)
	}
}

func TestSmashChain_SplitsDateTimeFromDescription(t *testing.T) {
	got := SmashChain.Apply("01/01/24 10:00:00TRANSFER MASUK")
	if got != "01/01/24 10:00:00\nTRANSFER MASUK" {
		t.Errorf("Expected date split from description, got '%s'", got)
	}
}

func TestSmashChain_Idempotent(t *testing.T) {
	once := SmashChain.Apply("01/01/24 10:00:00TRANSFER MASUK0.0026,000.001,026,000.00")
	twice := SmashChain.Apply(once)
	if once != twice {
		t.Errorf("Expected idempotent chain, got '%s' then '%s'", once, twice)
	}
}

func TestSplitHeaderLabels_SmashedLabel(t *testing.T) {
	got := splitHeaderLabels("PT SUBUR JAYAAlamat Unit Kerja")
	if got != "PT SUBUR JAYA\nAlamat Unit Kerja" {
		t.Errorf("Expected label on its own line, got '%s'", got)
	}
}

func TestSplitHeaderLabels_LabelAtLineStartUntouched(t *testing.T) {
	clean := "Alamat Unit Kerja\n: JL. SUDIRMAN"
	if got := splitHeaderLabels(clean); got != clean {
		t.Errorf("Expected clean label untouched, got '%s'", got)
	}
}

func TestSplitHeaderLabels_ContainedLabelNotSplit(t *testing.T) {
	// "Unit Kerja" inside "Alamat Unit Kerja" must not be treated as
	// its own label.
	got := splitHeaderLabels("XAlamat Unit Kerja")
	if got != "X\nAlamat Unit Kerja" {
		t.Errorf("Expected one split before the full label, got '%s'", got)
	}
}

func TestSplitHeaderLabels_AdjacentLabels(t *testing.T) {
	got := splitHeaderLabels("Unit KerjaBusiness Unit")
	if got != "Unit Kerja\nBusiness Unit" {
		t.Errorf("Expected adjacent labels separated, got '%s'", got)
	}
}

func TestSplitHeaderLabels_DropsGapSpaces(t *testing.T) {
	got := splitHeaderLabels("1234567890   Periode Transaksi")
	if got != "1234567890\nPeriode Transaksi" {
		t.Errorf("Expected gap replaced by newline, got '%s'", got)
	}
}

func TestChainFor_RowBackend(t *testing.T) {
	if got := ChainFor("dslipak"); got != RowChain {
		t.Errorf("Expected row chain for dslipak, got '%s'", got.Name())
	}
}

func TestChainFor_DefaultsToSmash(t *testing.T) {
	if got := ChainFor("ledongthuc"); got != SmashChain {
		t.Errorf("Expected smash chain, got '%s'", got.Name())
	}
	if got := ChainFor("unknown"); got != SmashChain {
		t.Errorf("Expected smash chain for unknown backend, got '%s'", got.Name())
	}
}
