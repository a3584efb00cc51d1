package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFromFile(t *testing.T) {
	content := `
[form]
title = "Applicant Dossier"

[limits]
soft_text_limit = 300
year_min = 1970
year_max = 2035

[ui]
removal_delay_ms = 150
show_help = false

[required.education]
major = true

[required.personal]
birth_date = false
`
	dir := t.TempDir()
	path := filepath.Join(dir, "dossier.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	if cfg.Form.Title != "Applicant Dossier" {
		t.Errorf("form.title = %q, want %q", cfg.Form.Title, "Applicant Dossier")
	}
	if cfg.Limits.SoftTextLimit != 300 {
		t.Errorf("limits.soft_text_limit = %d, want 300", cfg.Limits.SoftTextLimit)
	}
	if cfg.UI.ShowHelp {
		t.Error("ui.show_help = true, want false")
	}
	if got := cfg.RemovalDelay(); got != 150*time.Millisecond {
		t.Errorf("RemovalDelay = %v, want 150ms", got)
	}

	opts := cfg.CatalogOptions()
	if opts.YearMin != 1970 || opts.YearMax != 2035 {
		t.Errorf("year range = %d..%d, want 1970..2035", opts.YearMin, opts.YearMax)
	}
	if req, ok := opts.Required["education.major"]; !ok || !req {
		t.Errorf("education.major override = %v, %v", req, ok)
	}
	if req, ok := opts.Required["personal.birth_date"]; !ok || req {
		t.Errorf("personal.birth_date override = %v, %v", req, ok)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dossier.toml")
	if err := os.WriteFile(path, []byte("[form]\ntitle = \"X\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Limits.SoftTextLimit != 500 {
		t.Errorf("soft_text_limit = %d, want default 500", cfg.Limits.SoftTextLimit)
	}
	if cfg.RemovalDelay() != 300*time.Millisecond {
		t.Errorf("RemovalDelay = %v, want 300ms", cfg.RemovalDelay())
	}
	if cfg.CatalogOptions().Required != nil {
		t.Error("no overrides expected")
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/dossier.toml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromFile_BadYearRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dossier.toml")
	if err := os.WriteFile(path, []byte("[limits]\nyear_min = 2030\nyear_max = 2000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFromFile(path)
	if err == nil || !strings.Contains(err.Error(), "year_min") {
		t.Errorf("err = %v, want year range error", err)
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dossier.toml")
	if err := os.WriteFile(path, []byte("[form\ntitle = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Form.Title == "" {
		t.Error("default form.title is empty")
	}
	if cfg.Limits.YearMin != 1950 || cfg.Limits.YearMax != 2030 {
		t.Errorf("default year range = %d..%d", cfg.Limits.YearMin, cfg.Limits.YearMax)
	}
	if !cfg.UI.ShowHelp {
		t.Error("help should be shown by default")
	}
}

func TestRemovalDelay_Negative(t *testing.T) {
	cfg := Defaults()
	cfg.UI.RemovalDelayMS = -5
	if cfg.RemovalDelay() != 0 {
		t.Errorf("RemovalDelay = %v, want 0", cfg.RemovalDelay())
	}
}
