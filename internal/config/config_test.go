// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Defaults.Format)
	}
	if cfg.Defaults.Locale != "ko" {
		t.Errorf("default locale = %q, want ko", cfg.Defaults.Locale)
	}
	if cfg.Defaults.Verbose || cfg.Defaults.Debug || cfg.Defaults.NoColor {
		t.Error("boolean defaults should be false")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardscan.yaml")
	content := `defaults:
  format: json
  verbose: true
lexicons:
  company:
    - 테크
  surnames:
    - 독고
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Defaults.Format)
	}
	if !cfg.Defaults.Verbose {
		t.Error("verbose should be true")
	}
	// Unset fields keep their defaults.
	if cfg.Defaults.Locale != "ko" {
		t.Errorf("locale = %q, want ko", cfg.Defaults.Locale)
	}
	if len(cfg.Lexicons.Company) != 1 || cfg.Lexicons.Company[0] != "테크" {
		t.Errorf("company lexicon = %v", cfg.Lexicons.Company)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("defaults: [not a map"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfigOrDefault(path)
	if cfg == nil {
		t.Fatal("expected a config")
	}
	if cfg.Defaults.Format != "text" || cfg.Defaults.Locale != "ko" {
		t.Errorf("fallback config = %+v, want defaults", cfg.Defaults)
	}
}

func TestProfile_AppliesExtensions(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	cfg.Lexicons.Surnames = []string{"독고"}
	cfg.Lexicons.Company = []string{"테크"}

	profile := cfg.Profile()
	if !profile.HasSurname("독고탁") {
		t.Error("extended surname not applied")
	}
	found := false
	for _, kw := range profile.CompanyKeywords {
		if kw == "테크" {
			found = true
		}
	}
	if !found {
		t.Error("extended company keyword not applied")
	}
	// Built-ins survive the merge.
	if !profile.HasSurname("김철수") {
		t.Error("built-in surname lost")
	}
}
