// Package backend abstracts the PDF text-extraction libraries behind a
// single Document interface. Each backend loses layout information in
// its own way, so callers pick the normalization strategy by the
// backend's name.
package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend marks a backend name outside Names().
	ErrUnknownBackend = errors.New("unknown pdf backend")

	// ErrNoPages marks a structurally valid PDF with nothing to read.
	ErrNoPages = errors.New("pdf contains no pages")
)

// Document is one open PDF. Pages are addressed zero-based regardless
// of the underlying library's convention. Implementations are not safe
// for concurrent use; open one Document per goroutine.
type Document interface {
	// Backend returns the name this document was opened with.
	Backend() string

	// PageCount reports the number of pages.
	PageCount() int

	// ExtractText returns the text of the given zero-based page.
	ExtractText(page int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Names lists the registered backends. The first entry is the default.
func Names() []string {
	return []string{"ledongthuc", "dslipak", "unipdf"}
}

// Open opens path with the named backend.
func Open(path, name string) (Document, error) {
	switch name {
	case "ledongthuc":
		return openLedongthuc(path)
	case "dslipak":
		return openDslipak(path)
	case "unipdf":
		return openUnipdf(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
