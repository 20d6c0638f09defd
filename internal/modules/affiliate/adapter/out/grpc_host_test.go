package out_test

import (
	"context"
	"errors"
	"testing"

	affiliateout "giftdrift/internal/modules/affiliate/adapter/out"
	"giftdrift/internal/modules/affiliate/domain"
	apperrors "giftdrift/internal/platform/errors"
)

// A disabled manifest must be refused before any process is launched.
func TestGRPCHostRefusesDisabledProvider(t *testing.T) {
	t.Parallel()
	host := affiliateout.NewGRPCHost()
	manifest := domain.Manifest{
		Name:    "amazon",
		Version: "1.0.0",
		Binary:  "/nonexistent/provider",
		Enabled: false,
	}

	err := host.CheckLifecycle(context.Background(), manifest)
	if !errors.Is(err, apperrors.ErrProviderDisabled) {
		t.Fatalf("expected the disabled sentinel, got %v", err)
	}
	if _, err := host.GetMetadata(context.Background(), manifest); !errors.Is(err, apperrors.ErrProviderDisabled) {
		t.Fatalf("metadata call against a disabled provider must fail, got %v", err)
	}
}
