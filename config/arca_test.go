package config

import (
	"strings"
	"testing"
)

func TestParseArcaDefaults(t *testing.T) {
	data := []byte(`
base_url: https://arca.example.com/api
username: sync
password: s3cret
`)
	cfg, err := ParseArca(data)
	if err != nil {
		t.Fatalf("ParseArca: %v", err)
	}
	if cfg.Sync.Schedule != "0 6 * * *" {
		t.Errorf("default schedule = %q, want %q", cfg.Sync.Schedule, "0 6 * * *")
	}
	if cfg.Sync.LookbackDays != 7 {
		t.Errorf("default lookback_days = %d, want 7", cfg.Sync.LookbackDays)
	}
	if cfg.Sync.Masters {
		t.Error("masters should default to false")
	}
}

func TestParseArcaFull(t *testing.T) {
	data := []byte(`
base_url: https://arca.example.com/api
username: sync
password: s3cret
sync:
  schedule: "*/15 6-20 * * 1-6"
  lookback_days: 30
  masters: true
`)
	cfg, err := ParseArca(data)
	if err != nil {
		t.Fatalf("ParseArca: %v", err)
	}
	if cfg.BaseURL != "https://arca.example.com/api" {
		t.Errorf("base_url = %q", cfg.BaseURL)
	}
	if cfg.Sync.Schedule != "*/15 6-20 * * 1-6" {
		t.Errorf("schedule = %q", cfg.Sync.Schedule)
	}
	if cfg.Sync.LookbackDays != 30 {
		t.Errorf("lookback_days = %d, want 30", cfg.Sync.LookbackDays)
	}
	if !cfg.Sync.Masters {
		t.Error("masters = false, want true")
	}
}

func TestParseArcaMissingFields(t *testing.T) {
	_, err := ParseArca([]byte(`username: sync`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "base_url is required") {
		t.Errorf("error %q should mention base_url", err)
	}
	if !strings.Contains(err.Error(), "password is required") {
		t.Errorf("error %q should mention password", err)
	}
}

func TestParseArcaInvalidYAML(t *testing.T) {
	if _, err := ParseArca([]byte("base_url: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadArcaMissingFile(t *testing.T) {
	if _, err := LoadArca("/nonexistent/arca.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
