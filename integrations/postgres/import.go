package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rekon-id/rekon/extractor"
	"github.com/rekon-id/rekon/extractor/common"
	"github.com/rekon-id/rekon/extractor/rekening_koran"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool   // Force reprocessing of existing statements
	Backend string // PDF backend name, default when empty
	Verbose bool   // Enable verbose logging
}

// ImportFile parses a single statement PDF and stores it. The parse
// must pass the validity gate and resolve both parts of the natural key
// before anything is written.
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed, skipped, failed int, errors []string) {
	fileName := filepath.Base(filePath)

	backendName := opts.Backend
	if backendName == "" {
		backendName = "ledongthuc"
	}

	result, err := extractor.ProcessFile(filePath, backendName)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: parse failed: %v", fileName, err)}
	}

	if !common.IsValidParse(result.Metadata, result.Transactions) {
		return 0, 0, 1, []string{fmt.Sprintf("%s: parse did not pass validity checks", fileName)}
	}
	if result.Metadata.AccountNo == "" {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no account number extracted", fileName)}
	}
	if result.Metadata.TransactionPeriod == "" {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: no transaction period extracted", fileName, result.Metadata.AccountNo)}
	}

	accountID, err := db.GetOrCreateAccount(ctx, result.Metadata)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: account error: %v", fileName, result.Metadata.AccountNo, err)}
	}

	exists, existingID, err := db.StatementExists(ctx, accountID, result.Metadata.TransactionPeriod)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: check error: %v", fileName, result.Metadata.AccountNo, err)}
	}

	if exists {
		if !opts.Force {
			if opts.Verbose {
				log.Printf("skipping %s: statement already imported", fileName)
			}
			return 0, 1, 0, nil
		}
		if err := db.DeleteStatement(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: delete error: %v", fileName, result.Metadata.AccountNo, err)}
		}
	}

	verification := rekening_koran.Verify(
		result.Transactions, rekening_koran.DefaultTolerance, result.FullText)

	statementID, err := db.CreateStatement(ctx, accountID, fileName, result.Metadata, &verification)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: statement error: %v", fileName, result.Metadata.AccountNo, err)}
	}

	if err := db.InsertTransactions(ctx, statementID, result.Transactions); err != nil {
		// Leave nothing half-written.
		db.DeleteStatement(ctx, statementID)
		return 0, 0, 1, []string{fmt.Sprintf("%s [%s]: transaction error: %v", fileName, result.Metadata.AccountNo, err)}
	}

	if opts.Verbose {
		log.Printf("imported %s: %d transactions, verification %s",
			fileName, len(result.Transactions), verification.Status)
	}
	return 1, 0, 0, nil
}

// ImportDirectory imports every PDF found under dir recursively.
func (db *DB) ImportDirectory(ctx context.Context, dir string, opts ImportOptions) (ImportResult, error) {
	var result ImportResult

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("failed to scan directory: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		p, s, f, errs := db.ImportFile(ctx, path, opts)
		result.Processed += p
		result.Skipped += s
		result.Failed += f
		result.Errors = append(result.Errors, errs...)
	}

	return result, nil
}

// Import handles a path that may be a file or a directory.
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return db.ImportDirectory(ctx, path, opts)
	}

	var result ImportResult
	result.Processed, result.Skipped, result.Failed, result.Errors = db.ImportFile(ctx, path, opts)
	return result, nil
}
