package backend

import (
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// dslipakDocument reads text row by row, which keeps table cells apart
// with spaces but drops the original column boundaries.
type dslipakDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openDslipak(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &dslipakDocument{file: f, reader: reader}, nil
}

func (d *dslipakDocument) Backend() string { return "dslipak" }

func (d *dslipakDocument) PageCount() int { return d.reader.NumPage() }

func (d *dslipakDocument) ExtractText(page int) (string, error) {
	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d is null", page)
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", page, err)
	}

	var sb strings.Builder
	for _, row := range rows {
		var cells []string
		for _, text := range row.Content {
			if s := strings.TrimSpace(text.S); s != "" {
				cells = append(cells, s)
			}
		}
		if len(cells) > 0 {
			sb.WriteString(strings.Join(cells, " "))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (d *dslipakDocument) Close() error { return d.file.Close() }
