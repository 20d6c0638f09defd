package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	affiliateout "giftdrift/internal/modules/affiliate/adapter/out"
	"giftdrift/internal/modules/affiliate/domain"
)

func TestGRPCHostIntegrationAmazonProvider(t *testing.T) {
	binPath, checksum := buildAmazonProvider(t)
	manifest := domain.Manifest{
		Name:         "amazon",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       checksum,
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityEligibility, domain.CapabilityLink, domain.CapabilityReport},
	}

	host := affiliateout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "amazon" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}

	eligible, err := host.IsEligible(ctx, manifest, "https://www.amazon.com/dp/B0TESTASIN")
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if !eligible {
		t.Fatalf("expected amazon url to be eligible")
	}

	tracked, err := host.BuildTrackedLink(ctx, manifest, "https://www.amazon.com/dp/B0TESTASIN", domain.LinkRequest{
		Campaign: "gift_discovery",
		Medium:   "swipe",
	})
	if err != nil {
		t.Fatalf("build tracked link: %v", err)
	}
	if !strings.Contains(tracked, "tag=") {
		t.Fatalf("expected associate tag in tracked url: %s", tracked)
	}

	if err := host.ReportClick(ctx, manifest, domain.ClickReport{
		ProductID:   "p1",
		OriginalURL: "https://www.amazon.com/dp/B0TESTASIN",
		TrackedURL:  tracked,
	}); err != nil {
		t.Fatalf("report click: %v", err)
	}
}

func buildAmazonProvider(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "amazon-provider")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/amazon")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build amazon provider: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built provider: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
