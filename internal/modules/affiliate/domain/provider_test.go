package domain_test

import (
	"testing"

	"giftdrift/internal/modules/affiliate/domain"
)

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		manifest  domain.Manifest
		shouldErr bool
	}{
		{name: "valid", manifest: domain.Manifest{Name: "amazon", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink}}, shouldErr: false},
		{name: "missing name", manifest: domain.Manifest{Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink}}, shouldErr: true},
		{name: "missing version", manifest: domain.Manifest{Name: "amazon", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink}}, shouldErr: true},
		{name: "missing binary", manifest: domain.Manifest{Name: "amazon", Version: "1", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink}}, shouldErr: true},
		{name: "bad sha", manifest: domain.Manifest{Name: "amazon", Version: "1", Binary: "/tmp/p", SHA256: "nope", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink}}, shouldErr: true},
		{name: "invalid capability", manifest: domain.Manifest{Name: "amazon", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{"invalid"}}, shouldErr: true},
		{name: "duplicate capability", manifest: domain.Manifest{Name: "amazon", Version: "1", Binary: "/tmp/p", SHA256: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Enabled: true, Capabilities: []domain.Capability{domain.CapabilityLink, domain.CapabilityLink}}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestAmazonEligible(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		url      string
		eligible bool
	}{
		{name: "marketplace", url: "https://www.amazon.com/dp/B0TESTASIN", eligible: true},
		{name: "shortlink", url: "https://amzn.to/3xyz", eligible: true},
		{name: "regional", url: "https://www.amazon.co.uk/gp/product/B0TESTASIN", eligible: true},
		{name: "smile subdomain", url: "https://smile.amazon.com/dp/B0TESTASIN", eligible: true},
		{name: "other retailer", url: "https://www.etsy.com/listing/123", eligible: false},
		{name: "lookalike host", url: "https://notamazon.com/dp/B0TESTASIN", eligible: false},
		{name: "garbage", url: "://not a url", eligible: false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.AmazonEligible(tc.url); got != tc.eligible {
				t.Fatalf("AmazonEligible(%q) = %t, want %t", tc.url, got, tc.eligible)
			}
		})
	}
}

func TestExtractASIN(t *testing.T) {
	t.Parallel()
	if got := domain.ExtractASIN("https://www.amazon.com/dp/B0TESTASIN?ref=x"); got != "B0TESTASIN" {
		t.Fatalf("expected asin from dp path, got %q", got)
	}
	if got := domain.ExtractASIN("https://www.amazon.com/gp/product/B0TESTASIN"); got != "B0TESTASIN" {
		t.Fatalf("expected asin from gp path, got %q", got)
	}
	if got := domain.ExtractASIN("https://www.amazon.com/s?k=gifts"); got != "" {
		t.Fatalf("expected no asin on a search url, got %q", got)
	}
}

func TestClickReportValidate(t *testing.T) {
	t.Parallel()
	report := domain.ClickReport{ProductID: "p1", OriginalURL: "https://www.amazon.com/dp/B0TESTASIN"}
	if err := report.Validate(); err != nil {
		t.Fatalf("validate report: %v", err)
	}
	if err := (domain.ClickReport{OriginalURL: "x"}).Validate(); err == nil {
		t.Fatalf("expected missing product id error")
	}
	if err := (domain.ClickReport{ProductID: "p1"}).Validate(); err == nil {
		t.Fatalf("expected missing url error")
	}
}
