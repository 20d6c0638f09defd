package out

import (
	"context"
	"fmt"
	"net/url"

	"giftdrift/internal/modules/affiliate/domain"
)

const builtinName = "builtin"

// BuiltinProvider rewrites Amazon product links with the configured
// associate tag, in process. It is the fallback when no plugin manifest is
// enabled, so the click path works out of the box.
type BuiltinProvider struct {
	tag string
}

func NewBuiltinProvider(associateTag string) *BuiltinProvider {
	return &BuiltinProvider{tag: associateTag}
}

func (p *BuiltinProvider) Name() string { return builtinName }

func (p *BuiltinProvider) IsEligible(_ context.Context, raw string) (bool, error) {
	return domain.AmazonEligible(raw), nil
}

func (p *BuiltinProvider) BuildTrackedLink(_ context.Context, raw string, req domain.LinkRequest) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse product url: %w", err)
	}
	query := parsed.Query()
	if p.tag != "" {
		query.Set("tag", p.tag)
	}
	if req.Campaign != "" {
		query.Set("utm_campaign", req.Campaign)
	}
	if req.Medium != "" {
		query.Set("utm_medium", req.Medium)
	}
	if req.Source != "" {
		query.Set("utm_source", req.Source)
	}
	if req.Content != "" {
		query.Set("utm_content", req.Content)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// ReportClick is a no-op: the builtin has no reporting backend, the platform
// analytics event already carries the click.
func (p *BuiltinProvider) ReportClick(context.Context, domain.ClickReport) error {
	return nil
}
