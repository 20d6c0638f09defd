package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8799" {
		t.Fatalf("api base url = %s", cfg.APIBaseURL)
	}
	if cfg.Swipe.DistanceThreshold != 150 || cfg.Swipe.VelocityThreshold != 500 {
		t.Fatalf("thresholds = %v", cfg.Swipe)
	}
	if cfg.DBPath != filepath.Join(dir, "giftdrift.db") {
		t.Fatalf("db path = %s", cfg.DBPath)
	}
}

func TestLoadAppliesFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	raw := "api_base_url: https://api.example.com\nswipe:\n  max_swipes_per_session: 25\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GIFTDRIFT_API_KEY", "k-123")
	t.Setenv("GIFTDRIFT_MAX_SWIPES", "30")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("api base url = %s", cfg.APIBaseURL)
	}
	if cfg.APIKey != "k-123" {
		t.Fatalf("api key = %s", cfg.APIKey)
	}
	if cfg.Swipe.MaxSwipes != 30 {
		t.Fatalf("max swipes = %d, env should win over file", cfg.Swipe.MaxSwipes)
	}
	if cfg.Swipe.PageSize != 10 {
		t.Fatalf("page size = %d, defaults should survive partial file", cfg.Swipe.PageSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GIFTDRIFT_MAX_SWIPES", "zero")
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for non-numeric GIFTDRIFT_MAX_SWIPES")
	}

	t.Setenv("GIFTDRIFT_MAX_SWIPES", "")
	raw := "swipe:\n  distance_threshold: -1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for negative distance threshold")
	}
}
