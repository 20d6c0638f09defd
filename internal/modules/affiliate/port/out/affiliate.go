package out

import (
	"context"

	"giftdrift/internal/modules/affiliate/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Provider is the affiliate capability surface, implemented either by the
// in-process builtin or by the plugin host wrapping one enabled manifest.
type Provider interface {
	Name() string
	IsEligible(ctx context.Context, url string) (bool, error)
	BuildTrackedLink(ctx context.Context, url string, req domain.LinkRequest) (string, error)
	ReportClick(ctx context.Context, report domain.ClickReport) error
}

// Host runs provider plugins out of process.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	IsEligible(ctx context.Context, manifest domain.Manifest, url string) (bool, error)
	BuildTrackedLink(ctx context.Context, manifest domain.Manifest, url string, req domain.LinkRequest) (string, error)
	ReportClick(ctx context.Context, manifest domain.Manifest, report domain.ClickReport) error
}
