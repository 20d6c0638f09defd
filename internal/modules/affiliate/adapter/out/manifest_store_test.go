package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	affiliateout "giftdrift/internal/modules/affiliate/adapter/out"
)

func TestFileManifestStoreLoadMissingReturnsEmpty(t *testing.T) {
	t.Parallel()
	store := affiliateout.NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected empty manifests, got %d", len(manifests))
	}
}

func TestFileManifestStoreResolvesRelativeBinary(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	providersDir := filepath.Join(base, "providers")
	if err := os.MkdirAll(providersDir, 0o755); err != nil {
		t.Fatalf("mkdir providers: %v", err)
	}
	raw := `[
  {
    "name": "amazon",
    "version": "1.0.0",
    "binary": "providers/amazon/amazon-provider",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true,
    "capabilities": ["link"]
  }
]`
	if err := os.WriteFile(filepath.Join(providersDir, "providers.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write providers.json: %v", err)
	}
	store := affiliateout.NewFileManifestStore(base)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load manifests: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("expected one manifest, got %d", len(manifests))
	}
	if !filepath.IsAbs(manifests[0].Binary) {
		t.Fatalf("expected absolute binary path, got %s", manifests[0].Binary)
	}
}

func TestFileManifestStoreRejectsUnknownField(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	providersDir := filepath.Join(base, "providers")
	if err := os.MkdirAll(providersDir, 0o755); err != nil {
		t.Fatalf("mkdir providers: %v", err)
	}
	raw := `[
  {
    "name": "amazon",
    "version": "1.0.0",
    "binary": "/tmp/amazon-provider",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true,
    "capabilities": ["link"],
    "unknown_field": true
  }
]`
	if err := os.WriteFile(filepath.Join(providersDir, "providers.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write providers.json: %v", err)
	}
	store := affiliateout.NewFileManifestStore(base)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected unknown field error")
	}
}
