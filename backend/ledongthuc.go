package backend

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// ledongthucDocument extracts plain text, which concatenates adjacent
// table cells with no separator. Its output is the "smashed" form the
// normalizer repairs.
type ledongthucDocument struct {
	file   *os.File
	reader *pdf.Reader
}

func openLedongthuc(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &ledongthucDocument{file: f, reader: r}, nil
}

func (d *ledongthucDocument) Backend() string { return "ledongthuc" }

func (d *ledongthucDocument) PageCount() int { return d.reader.NumPage() }

// ExtractText recovers from panics inside the library; malformed
// content streams on scanned statements trip them regularly.
func (d *ledongthucDocument) ExtractText(page int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting page %d: %v", page, r)
		}
	}()

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d is null", page)
	}

	text, err = p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", page, err)
	}
	return text, nil
}

func (d *ledongthucDocument) Close() error { return d.file.Close() }
