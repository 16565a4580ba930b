package backend

import (
	"errors"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 3 {
		t.Fatalf("Expected 3 backends, got %d", len(names))
	}
	if names[0] != "ledongthuc" {
		t.Errorf("Expected 'ledongthuc' as default backend, got '%s'", names[0])
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("statement.pdf", "mupdf")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Expected ErrUnknownBackend, got %v", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	for _, name := range Names() {
		if _, err := Open("/does/not/exist.pdf", name); err == nil {
			t.Errorf("Expected error opening missing file with backend '%s'", name)
		}
	}
}
