package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"giftdrift/internal/modules/affiliate/domain"
	"giftdrift/internal/modules/affiliate/dto"
	affiliateout "giftdrift/internal/modules/affiliate/port/out"
	apperrors "giftdrift/internal/platform/errors"
)

// AffiliateService picks a provider per click: the first enabled plugin
// manifest whose binary checks out, otherwise the builtin fallback.
type AffiliateService struct {
	store   affiliateout.ManifestStore
	host    affiliateout.Host
	builtin affiliateout.Provider
}

func NewAffiliateService(store affiliateout.ManifestStore, host affiliateout.Host, builtin affiliateout.Provider) *AffiliateService {
	return &AffiliateService{store: store, host: host, builtin: builtin}
}

func (s *AffiliateService) ProcessClick(ctx context.Context, input dto.ClickInput) (dto.ClickOutput, error) {
	if input.URL == "" {
		return dto.ClickOutput{}, fmt.Errorf("%w: product url is required", apperrors.ErrInvalidInput)
	}

	req := domain.LinkRequest{
		Campaign: "gift_discovery",
		Medium:   "swipe",
		Source:   input.Source,
		Content:  input.ProductID,
	}
	report := domain.ClickReport{
		ProductID:   input.ProductID,
		ASIN:        domain.ExtractASIN(input.URL),
		Category:    input.Category,
		Price:       input.Price,
		Currency:    input.Currency,
		OriginalURL: input.URL,
		Source:      input.Source,
	}

	if manifest, ok := s.activeManifest(ctx); ok {
		out, err := s.clickViaPlugin(ctx, manifest, input.URL, req, report)
		if err == nil {
			return out, nil
		}
		// Plugin failure degrades to the builtin rather than to the caller.
	}
	return s.clickViaBuiltin(ctx, input.URL, req, report)
}

func (s *AffiliateService) clickViaPlugin(ctx context.Context, manifest domain.Manifest, rawURL string, req domain.LinkRequest, report domain.ClickReport) (dto.ClickOutput, error) {
	if manifest.HasCapability(domain.CapabilityEligibility) {
		eligible, err := s.host.IsEligible(ctx, manifest, rawURL)
		if err != nil {
			return dto.ClickOutput{}, err
		}
		if !eligible {
			return dto.ClickOutput{URL: rawURL, Tracked: false, Provider: manifest.Name}, nil
		}
	}
	if !manifest.HasCapability(domain.CapabilityLink) {
		return dto.ClickOutput{URL: rawURL, Tracked: false, Provider: manifest.Name}, nil
	}

	tracked, err := s.host.BuildTrackedLink(ctx, manifest, rawURL, req)
	if err != nil {
		return dto.ClickOutput{}, err
	}
	if tracked == "" {
		tracked = rawURL
	}
	if manifest.HasCapability(domain.CapabilityReport) {
		report.TrackedURL = tracked
		// Reporting failure never undoes the link.
		_ = s.host.ReportClick(ctx, manifest, report)
	}
	return dto.ClickOutput{URL: tracked, Tracked: tracked != rawURL, Provider: manifest.Name}, nil
}

func (s *AffiliateService) clickViaBuiltin(ctx context.Context, rawURL string, req domain.LinkRequest, report domain.ClickReport) (dto.ClickOutput, error) {
	eligible, err := s.builtin.IsEligible(ctx, rawURL)
	if err != nil {
		return dto.ClickOutput{}, err
	}
	if !eligible {
		return dto.ClickOutput{URL: rawURL, Tracked: false, Provider: s.builtin.Name()}, nil
	}
	tracked, err := s.builtin.BuildTrackedLink(ctx, rawURL, req)
	if err != nil {
		return dto.ClickOutput{}, err
	}
	report.TrackedURL = tracked
	_ = s.builtin.ReportClick(ctx, report)
	return dto.ClickOutput{URL: tracked, Tracked: tracked != rawURL, Provider: s.builtin.Name()}, nil
}

func (s *AffiliateService) List(ctx context.Context) ([]dto.ProviderOutput, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderOutput, 0, len(manifests)+1)
	for _, m := range manifests {
		out = append(out, dto.ProviderOutput{Name: m.Name, Version: m.Version, Binary: m.Binary, Enabled: m.Enabled})
	}
	out = append(out, dto.ProviderOutput{Name: s.builtin.Name(), Version: "builtin", Enabled: true, Builtin: true})
	return out, nil
}

func (s *AffiliateService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

// activeManifest returns the first enabled manifest whose binary passes the
// checksum. Anything wrong means the builtin takes over.
func (s *AffiliateService) activeManifest(ctx context.Context) (domain.Manifest, bool) {
	if s.host == nil {
		return domain.Manifest{}, false
	}
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, false
	}
	for _, m := range manifests {
		if !m.Enabled {
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			continue
		}
		return m, true
	}
	return domain.Manifest{}, false
}

func (s *AffiliateService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate provider name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read provider binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("checksum mismatch: %s", filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
