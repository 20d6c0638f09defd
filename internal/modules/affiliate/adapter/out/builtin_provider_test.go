package out_test

import (
	"context"
	"net/url"
	"testing"

	affiliateout "giftdrift/internal/modules/affiliate/adapter/out"
	"giftdrift/internal/modules/affiliate/domain"
)

func TestBuiltinProviderEligibility(t *testing.T) {
	t.Parallel()
	provider := affiliateout.NewBuiltinProvider("giftdrift-20")

	eligible, err := provider.IsEligible(context.Background(), "https://www.amazon.com/dp/B0TESTASIN")
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if !eligible {
		t.Fatalf("expected amazon url to be eligible")
	}

	eligible, err = provider.IsEligible(context.Background(), "https://www.etsy.com/listing/1")
	if err != nil {
		t.Fatalf("eligibility: %v", err)
	}
	if eligible {
		t.Fatalf("expected non-amazon url to be rejected")
	}
}

func TestBuiltinProviderBuildsTrackedLink(t *testing.T) {
	t.Parallel()
	provider := affiliateout.NewBuiltinProvider("giftdrift-20")

	tracked, err := provider.BuildTrackedLink(context.Background(),
		"https://www.amazon.com/dp/B0TESTASIN?ref=abc",
		domain.LinkRequest{Campaign: "gift_discovery", Medium: "swipe", Source: "swipe_interface", Content: "p1"},
	)
	if err != nil {
		t.Fatalf("build link: %v", err)
	}
	parsed, err := url.Parse(tracked)
	if err != nil {
		t.Fatalf("parse tracked url: %v", err)
	}
	query := parsed.Query()
	if query.Get("tag") != "giftdrift-20" {
		t.Fatalf("expected associate tag, got %q", query.Get("tag"))
	}
	if query.Get("ref") != "abc" {
		t.Fatalf("existing query params must survive, got %q", query.Get("ref"))
	}
	if query.Get("utm_campaign") != "gift_discovery" || query.Get("utm_medium") != "swipe" {
		t.Fatalf("attribution params missing: %s", tracked)
	}
	if parsed.Path != "/dp/B0TESTASIN" {
		t.Fatalf("path must be untouched, got %s", parsed.Path)
	}
}
