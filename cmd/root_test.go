package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

func TestInitConfig_PartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("backend: dslipak\n"), 0o644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	viper.Reset()
	cfgFile = path
	defer func() {
		cfgFile = ""
		viper.Reset()
	}()

	initConfig()

	if got := viper.GetString("backend"); got != "dslipak" {
		t.Errorf("Expected backend 'dslipak' from config file, got '%s'", got)
	}
	if got := viper.GetString("tolerance"); got != "0.01" {
		t.Errorf("Expected default tolerance '0.01', got '%s'", got)
	}
	if _, err := decimal.NewFromString(viper.GetString("tolerance")); err != nil {
		t.Errorf("Expected parseable tolerance: %v", err)
	}
	if got := viper.GetString("output_dir"); got != "output" {
		t.Errorf("Expected default output dir 'output', got '%s'", got)
	}
}

func TestInitConfig_NoConfigFileUsesDefaults(t *testing.T) {
	viper.Reset()
	// Point both search locations at directories guaranteed to hold no
	// .rekon.yaml.
	t.Setenv("HOME", t.TempDir())
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer func() {
		os.Chdir(cwd)
		cfgFile = ""
		viper.Reset()
	}()

	initConfig()

	if got := viper.GetString("backend"); got != "ledongthuc" {
		t.Errorf("Expected default backend 'ledongthuc', got '%s'", got)
	}
	if got := viper.GetString("tolerance"); got != "0.01" {
		t.Errorf("Expected default tolerance '0.01', got '%s'", got)
	}
}
