// Package batch runs the extractor over many statements with a bounded
// worker pool and aggregates per-file outcomes into run metrics.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rekon-id/rekon/extractor"
	"github.com/rekon-id/rekon/extractor/common"
	"github.com/rekon-id/rekon/extractor/rekening_koran"
	"github.com/rekon-id/rekon/output"
)

// MaxWorkersCap bounds the pool regardless of host core count; the
// work is I/O heavy and more workers only multiply open file handles.
const MaxWorkersCap = 16

// ProcessFunc parses one file with one backend. Injectable so tests
// can run the pool without PDFs on disk.
type ProcessFunc func(path, backendName string) (*common.ParseResult, error)

// Options configures one batch run. The zero value is usable: default
// backend, automatic worker count, no CSV output, no verification.
type Options struct {
	Backend    string
	MaxWorkers int
	OutputDir  string

	// Tolerance bounds the allowed turnover discrepancy. A zero value
	// selects DefaultTolerance, which makes an exact-zero tolerance
	// inexpressible here; pass a sub-cent value when exactness matters.
	Tolerance      decimal.Decimal
	VerifyTurnover bool
	Process        ProcessFunc
}

// Record is the outcome for a single input file.
type Record struct {
	File             string               `json:"file"`
	Success          bool                 `json:"success"`
	Error            string               `json:"error,omitempty"`
	Valid            bool                 `json:"valid"`
	TransactionCount int                  `json:"transaction_count"`
	MetadataFields   int                  `json:"metadata_fields"`
	Verification     *common.Verification `json:"verification,omitempty"`
}

// Result aggregates a finished run. Records preserve input order.
type Result struct {
	Total       int           `json:"total"`
	Successful  int           `json:"successful"`
	Failed      int           `json:"failed"`
	SuccessRate float64       `json:"success_rate"`
	Duration    time.Duration `json:"duration"`
	Throughput  float64       `json:"throughput_files_per_sec"`
	Records     []Record      `json:"records"`
}

// OptimalWorkers picks a pool size from the host core count, capped.
func OptimalWorkers() int {
	n := runtime.NumCPU()
	if n > MaxWorkersCap {
		return MaxWorkersCap
	}
	if n < 1 {
		return 1
	}
	return n
}

// Run processes every path with a bounded pool and returns aggregate
// metrics. A panic inside one file's processing is downgraded to that
// file's failure; the run always completes.
func Run(paths []string, opts Options) Result {
	start := time.Now()

	if opts.Backend == "" {
		opts.Backend = "ledongthuc"
	}
	if opts.Process == nil {
		opts.Process = extractor.ProcessFile
	}
	if opts.Tolerance.IsZero() {
		opts.Tolerance = rekening_koran.DefaultTolerance
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = OptimalWorkers()
	}
	if workers > MaxWorkersCap {
		workers = MaxWorkersCap
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	records := make([]Record, len(paths))
	if len(paths) > 0 {
		log.Printf("batch start: %d files, %d workers, backend %s", len(paths), workers, opts.Backend)

		jobs := make(chan int)
		done := make(chan struct{})
		for w := 0; w < workers; w++ {
			go func() {
				for i := range jobs {
					records[i] = processOne(paths[i], opts)
					done <- struct{}{}
				}
			}()
		}
		go func() {
			for i := range paths {
				jobs <- i
			}
			close(jobs)
		}()
		for range paths {
			<-done
		}
	}

	result := Result{
		Total:    len(paths),
		Duration: time.Since(start),
		Records:  records,
	}
	for _, r := range records {
		if r.Success {
			result.Successful++
		} else {
			result.Failed++
		}
	}
	if result.Total > 0 {
		result.SuccessRate = float64(result.Successful) / float64(result.Total) * 100
	}
	if secs := result.Duration.Seconds(); secs > 0 {
		result.Throughput = float64(result.Total) / secs
	}

	log.Printf("batch done: %d/%d ok in %s", result.Successful, result.Total, result.Duration)
	return result
}

func processOne(path string, opts Options) (rec Record) {
	rec = Record{File: path}
	defer func() {
		if r := recover(); r != nil {
			rec.Success = false
			rec.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	result, err := opts.Process(path, opts.Backend)
	if err != nil {
		rec.Error = classifyError(err)
		return rec
	}

	rec.Success = true
	rec.TransactionCount = len(result.Transactions)
	rec.MetadataFields = result.Metadata.NonEmpty()
	rec.Valid = common.IsValidParse(result.Metadata, result.Transactions)

	if opts.VerifyTurnover {
		v := rekening_koran.Verify(result.Transactions, opts.Tolerance, result.FullText)
		rec.Verification = &v
	}

	if opts.OutputDir != "" && rec.Valid {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		metaPath := filepath.Join(opts.OutputDir, stem+"_metadata.csv")
		txnPath := filepath.Join(opts.OutputDir, stem+"_transactions.csv")
		if err := output.SaveMetadataCSV(metaPath, result.Metadata); err != nil {
			log.Printf("writing %s: %v", metaPath, err)
		}
		if err := output.SaveTransactionsCSV(txnPath, result.Transactions); err != nil {
			log.Printf("writing %s: %v", txnPath, err)
		}
	}

	return rec
}

// classifyError collapses the well-known failure modes to short labels.
// The backends wrap their open errors, so the sentinels must be matched
// through the chain.
func classifyError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "file not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}

// RunDirectory discovers PDFs under dir recursively, sorts them for a
// deterministic record order, and runs the batch over them.
func RunDirectory(dir string, opts Options) (Result, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("discovering pdfs under %s: %w", dir, err)
	}
	sort.Strings(paths)
	return Run(paths, opts), nil
}
