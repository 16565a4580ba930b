package backend

import (
	"fmt"
	"os"
	"sync"

	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

var unidocLicenseOnce sync.Once

// unipdf runs unlicensed by default, which watermarks its console
// output but not extracted text. A metered key is picked up from the
// environment when present.
func loadUnidocLicense() {
	unidocLicenseOnce.Do(func() {
		if key := os.Getenv("UNIDOC_LICENSE_API_KEY"); key != "" {
			_ = license.SetMeteredKey(key)
		}
	})
}

type unipdfDocument struct {
	file   *os.File
	reader *model.PdfReader
	pages  int
}

func openUnipdf(path string) (Document, error) {
	loadUnidocLicense()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	reader, err := model.NewPdfReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pages, err := reader.GetNumPages()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("counting pages of %s: %w", path, err)
	}

	return &unipdfDocument{file: f, reader: reader, pages: pages}, nil
}

func (d *unipdfDocument) Backend() string { return "unipdf" }

func (d *unipdfDocument) PageCount() int { return d.pages }

func (d *unipdfDocument) ExtractText(page int) (string, error) {
	p, err := d.reader.GetPage(page + 1)
	if err != nil {
		return "", fmt.Errorf("loading page %d: %w", page, err)
	}

	ex, err := extractor.New(p)
	if err != nil {
		return "", fmt.Errorf("preparing page %d: %w", page, err)
	}

	text, err := ex.ExtractText()
	if err != nil {
		return "", fmt.Errorf("extracting page %d: %w", page, err)
	}
	return text, nil
}

func (d *unipdfDocument) Close() error { return d.file.Close() }
