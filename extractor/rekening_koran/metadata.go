package rekening_koran

import (
	"regexp"
	"strings"

	"github.com/rekon-id/rekon/extractor/common"
)

// Header fields are anchored on bilingual labels. The statement renders
// each label twice (Indonesian over English) with the value on a
// following line, so the primary patterns span line breaks. Statements
// printed with inline "Label : value" rows use the alternate set below.
var (
	accountNoPattern         = regexp.MustCompile(`(?i)No\.?\s*Rekening\s*\n(?:Account\s+No\s*\n)?\s*:?\s*([0-9]+)`)
	businessUnitPattern      = regexp.MustCompile(`(?i)(?:Unit\s+Kerja\s*\n)?Business\s+Unit\s*\n\s*:\s*\n\s*([^\n]+)`)
	productNamePattern       = regexp.MustCompile(`(?i)(?:Nama\s+Produk\s*\n)?Product\s+Name\s*[:\s]*([A-Za-z0-9]+(?:\s+[A-Za-z0-9]+)*(?:\.[A-Za-z]+)?)`)
	statementDatePattern     = regexp.MustCompile(`(?i)Statement\s+Date\s*[:\s]*([^\n]+)`)
	valutaPattern            = regexp.MustCompile(`(?i)(?:Valuta|Currency)\s*\n(?:Currency|Valuta)?\s*\n\s*:?\s*([A-Z]{3})`)
	transactionPeriodPattern = regexp.MustCompile(`(?i)(?:Periode\s+Transaksi|Transaction\s+Period)\s*\n(?:Transaction\s+Periode|Transaction\s+Period)?\s*\n\s*:\s*\n\s*([^\n]+)`)
	unitAddressPattern       = regexp.MustCompile(`(?i)(?:Alamat\s+Unit\s+Kerja|Business\s+Unit\s+Address)\s*\n\s*:\s*\n\s*([A-Za-z][^\n]*(?:\s+[A-Za-z][^\n]*)?)`)
)

// Alternate set for inline Indonesian-labeled statements.
var (
	accountNoInlinePattern     = regexp.MustCompile(`(?i)No\.\s*Rekening\s*:\s*([^\n]+)`)
	businessUnitInlinePattern  = regexp.MustCompile(`(?i)Unit\s*Kerja\s*:\s*([^\n]+)`)
	productNameInlinePattern   = regexp.MustCompile(`(?i)Nama\s*Produk\s*:\s*([^\n]+)`)
	statementDateInlinePattern = regexp.MustCompile(`(?i)Tanggal\s*Laporan\s*:\s*([^\n]+)`)
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Strings that are themselves field labels. The normalizer can leave a
// label stacked above another label, and a pattern may then latch onto
// the wrong occurrence; a captured value matching one of these is
// rejected as implausible.
var labelIndicators = map[string]struct{}{
	"unit kerja":              {},
	"nama produk":             {},
	"alamat unit":             {},
	"valuta":                  {},
	"currency":                {},
	"tanggal transaksi":       {},
	"uraian transaksi":        {},
	"teller":                  {},
	"user id":                 {},
	"debet":                   {},
	"kredit":                  {},
	"saldo":                   {},
	"transaction date":        {},
	"transaction description": {},
}

func isLikelyLabel(value string) bool {
	_, ok := labelIndicators[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractMetadata pulls the labeled header fields from page-1 text.
// Every key of the result is always populated, with "" for anything
// unresolved; the function never fails. The bilingual stacked-label
// patterns run first; if they resolve fewer than two header fields the
// inline Indonesian set runs as a second pass and fills only fields the
// first pass left empty.
func ExtractMetadata(text string) common.Metadata {
	md := extractStacked(text)

	if headerFieldCount(md) < 2 {
		merged := extractInline(text)
		if md.AccountNo == "" {
			md.AccountNo = merged.AccountNo
		}
		if md.BusinessUnit == "" {
			md.BusinessUnit = merged.BusinessUnit
		}
		if md.ProductName == "" {
			md.ProductName = merged.ProductName
		}
		if md.StatementDate == "" {
			md.StatementDate = merged.StatementDate
		}
	}

	return md
}

func extractStacked(text string) common.Metadata {
	var md common.Metadata

	accountNo := firstMatch(accountNoPattern, text)
	if isLikelyLabel(accountNo) {
		accountNo = ""
	}
	md.AccountNo = accountNo

	md.BusinessUnit = firstMatch(businessUnitPattern, text)

	productName := firstMatch(productNamePattern, text)
	if isLikelyLabel(productName) {
		productName = ""
	}
	// A currency-code suffix is part of the layout, not the product.
	productName = strings.TrimSuffix(productName, "-IDR")
	md.ProductName = productName

	md.StatementDate = firstMatch(statementDatePattern, text)
	md.Valuta = firstMatch(valutaPattern, text)

	if address := firstMatch(unitAddressPattern, text); address != "" {
		address = whitespaceRun.ReplaceAllString(address, " ")
		if !isLikelyLabel(address) {
			md.UnitAddress = address
		}
	}

	md.TransactionPeriod = firstMatch(transactionPeriodPattern, text)

	return md
}

func extractInline(text string) common.Metadata {
	return common.Metadata{
		AccountNo:     firstMatch(accountNoInlinePattern, text),
		BusinessUnit:  firstMatch(businessUnitInlinePattern, text),
		ProductName:   firstMatch(productNameInlinePattern, text),
		StatementDate: firstMatch(statementDateInlinePattern, text),
	}
}

// headerFieldCount counts only the seven label-extracted fields; the
// summary totals are merged in later by the workflow and do not count
// toward the retry threshold.
func headerFieldCount(md common.Metadata) int {
	n := 0
	for _, v := range []string{
		md.AccountNo, md.BusinessUnit, md.ProductName, md.StatementDate,
		md.Valuta, md.UnitAddress, md.TransactionPeriod,
	} {
		if v != "" {
			n++
		}
	}
	return n
}
