// Package api exposes the statement parser over HTTP. A capability
// module that can be started from the CLI or mounted programmatically.
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rekon-id/rekon/backend"
	"github.com/rekon-id/rekon/extractor"
	"github.com/rekon-id/rekon/extractor/common"
	"github.com/rekon-id/rekon/extractor/rekening_koran"
)

// Config holds the API server configuration
type Config struct {
	Port           string
	DefaultBackend string
	LogPrefix      string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:           ":8080",
		DefaultBackend: backend.Names()[0],
		LogPrefix:      "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/parse", s.handleParse)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server so it can be mounted
// in a custom http.Server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ParseOptions holds the per-request flags
type ParseOptions struct {
	Backend          string
	MetadataOnly     bool
	TransactionsOnly bool
	TextOnly         bool
	Verify           bool
}

func (s *Server) parseOptions(r *http.Request) ParseOptions {
	flag := func(name string) bool {
		return r.FormValue(name) == "true" || r.URL.Query().Get(name) == "true"
	}
	backendName := coalesce(r.FormValue("backend"), r.URL.Query().Get("backend"), s.config.DefaultBackend)
	return ParseOptions{
		Backend:          backendName,
		MetadataOnly:     flag("metadata_only"),
		TransactionsOnly: flag("transactions_only"),
		TextOnly:         flag("text_only"),
		Verify:           flag("verify"),
	}
}

// handleParse accepts one uploaded statement and returns the parse as
// JSON. The upload is spooled to a temp file because the PDF libraries
// need random access.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmpPath, err := spoolUpload(file, handler.Filename)
	if err != nil {
		log.Printf("%sError spooling upload: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not store uploaded file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmpPath)

	opts := s.parseOptions(r)

	result, err := extractor.ProcessFile(tmpPath, opts.Backend)
	if err != nil {
		log.Printf("%sError processing %s: %v", s.config.LogPrefix, handler.Filename, err)
		http.Error(w, "Could not parse file: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buildResponse(handler.Filename, result, opts))
}

func buildResponse(filename string, result *common.ParseResult, opts ParseOptions) map[string]any {
	if opts.TextOnly {
		return map[string]any{
			"filename": filename,
			"text":     result.FullText,
		}
	}

	out := map[string]any{"filename": filename}
	switch {
	case opts.MetadataOnly:
		out["metadata"] = result.Metadata
	case opts.TransactionsOnly:
		out["transactions"] = result.Transactions
	default:
		out["metadata"] = result.Metadata
		out["transactions"] = result.Transactions
		out["valid"] = common.IsValidParse(result.Metadata, result.Transactions)
	}

	if opts.Verify {
		out["verification"] = rekening_koran.Verify(
			result.Transactions, rekening_koran.DefaultTolerance, result.FullText)
	}
	return out
}

// spoolUpload writes the uploaded stream to a temp file, preserving the
// original extension.
func spoolUpload(file io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf"
	}
	tmp, err := os.CreateTemp("", "rekon-upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// coalesce returns the first non-empty string
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
