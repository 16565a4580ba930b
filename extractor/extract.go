// Package extractor turns an opened PDF into a structured parse result
// by chaining the backend, the normalizer, and the reconstruction
// engine.
package extractor

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rekon-id/rekon/backend"
	"github.com/rekon-id/rekon/extractor/common"
	"github.com/rekon-id/rekon/extractor/rekening_koran"
)

// Some statements are delivered with the account number in the file
// name and a header the extractor cannot resolve.
var filenameAccountPattern = regexp.MustCompile(`\d{10,16}`)

// Process extracts and normalizes every page of doc and reconstructs
// the statement. Pages that fail to extract are logged and skipped; the
// parse proceeds on whatever text survived.
func Process(doc backend.Document) (*common.ParseResult, error) {
	pages := doc.PageCount()
	if pages == 0 {
		return nil, backend.ErrNoPages
	}

	chain := rekening_koran.ChainFor(doc.Backend())
	log.Printf("processing %d pages with backend %s, chain %s", pages, doc.Backend(), chain.Name())

	normalized := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		text, err := doc.ExtractText(i)
		if err != nil {
			log.Printf("skipping page %d: %v", i+1, err)
			continue
		}
		normalized = append(normalized, chain.Apply(text))
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("no page of %d could be extracted", pages)
	}

	return rekening_koran.Parse(normalized, normalized[0]), nil
}

// ProcessFile opens path with the named backend and processes it. When
// the header yields no account number but the file name embeds one, the
// file name wins over an empty field.
func ProcessFile(path, backendName string) (*common.ParseResult, error) {
	doc, err := backend.Open(path, backendName)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result, err := Process(doc)
	if err != nil {
		return nil, fmt.Errorf("processing %s: %w", path, err)
	}

	if result.Metadata.AccountNo == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if acc := filenameAccountPattern.FindString(stem); acc != "" {
			log.Printf("account number taken from file name: %s", acc)
			result.Metadata.AccountNo = acc
		}
	}

	return result, nil
}
