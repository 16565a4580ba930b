package rekening_koran

import (
	"regexp"
	"strings"
)

// The text-extraction backends lose structural whitespace in different
// ways. The worst offender concatenates adjacent table cells outright,
// producing "smashed" fields: two amounts fused with no separator, a
// description fused to an amount, a date+time token fused to the next
// field, or a header label buried mid-line. Each repair below targets
// one merge pattern; the passes run in a fixed order and later passes
// assume earlier ones ran.
//
// Pattern tables are built once at package init and never mutated.

type transform func(string) string

// rePass applies a substitution a fixed number of times. A chain of
// three smashed amounts needs two applications because the regexp
// engine consumes only the first boundary of a run per application.
func rePass(re *regexp.Regexp, repl string, repeat int) transform {
	return func(text string) string {
		for n := 0; n < repeat; n++ {
			text = re.ReplaceAllString(text, repl)
		}
		return text
	}
}

// Chain is an ordered sequence of repair passes for one backend's
// extraction quirks.
type Chain struct {
	name   string
	passes []transform
}

// Name identifies the chain in logs.
func (c *Chain) Name() string { return c.name }

// Apply runs every pass in order. Pure function: empty input returns
// empty output, clean text passes through unchanged, and re-applying
// the chain to its own output changes nothing.
func (c *Chain) Apply(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range c.passes {
		text = p(text)
	}
	return text
}

// Header labels that must sit on their own line for the metadata
// patterns to anchor on. Ordered longest-first so that a label
// containing another label is consumed as one match ("Alamat Unit
// Kerja" never splits at its inner "Unit Kerja").
var headerLabels = []string{
	"Business Unit Address",
	"Transaction Period",
	"Alamat Unit Kerja",
	"Periode Transaksi",
	"Tanggal Laporan",
	"Statement Date",
	"Business Unit",
	"Product Name",
	"No. Rekening",
	"Nama Produk",
	"Account No",
	"Unit Kerja",
	"Currency",
	"Valuta",
}

var headerLabelAlternation = func() *regexp.Regexp {
	quoted := make([]string, len(headerLabels))
	for i, label := range headerLabels {
		quoted[i] = regexp.QuoteMeta(label)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}()

// splitHeaderLabels puts every header label occurrence at the start of
// a line. A label already at line start stays put; one preceded by
// other text on the same line gets a line break in place of the gap.
func splitHeaderLabels(text string) string {
	matches := headerLabelAlternation.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, m := range matches {
		start := m[0]
		j := start - 1
		for j >= last && (text[j] == ' ' || text[j] == '\t') {
			j--
		}
		if j >= last && text[j] != '\n' {
			sb.WriteString(text[last : j+1])
			sb.WriteByte('\n')
			last = start
		}
	}
	sb.WriteString(text[last:])
	return sb.String()
}

var (
	// "0.0026,000.00" -> "0.00\n26,000.00": the second amount starts
	// immediately after the first's two-digit fraction. The trailing
	// guard keeps Indonesian-grouped amounts (1.000.000,00) intact.
	smashedAmountsPass = rePass(
		regexp.MustCompile(`(\.\d{2})(\d{1,3}(?:,\d{3})*\.\d{2})(\D|$)`),
		"${1}\n${2}${3}", 2)

	// Same defect with a plain space instead of nothing.
	spacedAmountsPass = rePass(
		regexp.MustCompile(`(\.\d{2}) (\d{1,3}(?:,\d{3})*\.\d{2})(\D|$)`),
		"${1}\n${2}${3}", 2)

	// Alphabetic description fused to a decimal amount.
	textAmountPass = rePass(
		regexp.MustCompile(`([A-Za-z])(\d{1,3}(?:,\d{3})*\.\d{2})`),
		"${1}\n${2}", 1)

	// Alphabetic description fused to a 6-8 digit user/teller id.
	textUserIDPass = rePass(
		regexp.MustCompile(`([A-Za-z])(\d{6,8})(\D|$)`),
		"${1}\n${2}${3}", 1)

	// Date+time token fused to the next field: break after the seconds.
	dateTimePass = rePass(
		regexp.MustCompile(`(\d{2}/\d{2}/\d{2} \d{2}:\d{2}:\d{2})[ \t]*([^ \t\n])`),
		"${1}\n${2}", 1)
)

// SmashChain repairs plain-text extraction, which concatenates adjacent
// fields with no separator at all.
var SmashChain = &Chain{
	name: "smash",
	passes: []transform{
		smashedAmountsPass,
		spacedAmountsPass,
		textAmountPass,
		textUserIDPass,
		dateTimePass,
		splitHeaderLabels,
	},
}

// RowChain repairs row-joined extraction, which keeps cells apart with
// single spaces; no-separator smashes cannot occur there.
var RowChain = &Chain{
	name: "row",
	passes: []transform{
		spacedAmountsPass,
		dateTimePass,
		splitHeaderLabels,
	},
}

// ChainFor selects the normalization strategy for a backend by
// identity. Unknown backends get the full smash chain, which is
// harmless on clean text.
func ChainFor(backendName string) *Chain {
	if backendName == "dslipak" {
		return RowChain
	}
	return SmashChain
}
