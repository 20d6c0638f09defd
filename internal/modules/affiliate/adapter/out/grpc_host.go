package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	affiliaterpc "giftdrift/internal/modules/affiliate/adapter/out/rpc"
	"giftdrift/internal/modules/affiliate/domain"
	affiliateout "giftdrift/internal/modules/affiliate/port/out"
	apperrors "giftdrift/internal/platform/errors"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 2 * time.Second
)

// GRPCHost launches a provider binary per call and tears it down afterwards.
// Calls are short and click-driven, so a persistent process is not worth the
// lifecycle bookkeeping.
type GRPCHost struct{}

func NewGRPCHost() affiliateout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	capabilities := make([]domain.Capability, 0, len(meta.Capabilities))
	for _, capability := range meta.Capabilities {
		capabilities = append(capabilities, domain.Capability(capability))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Capabilities: capabilities}, nil
}

func (h *GRPCHost) IsEligible(ctx context.Context, manifest domain.Manifest, url string) (bool, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return false, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	resp, err := client.IsEligible(callCtx, &affiliaterpc.EligibilityRequest{URL: url})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return false, fmt.Errorf("%w: %s", apperrors.ErrProviderTimeout, manifest.Name)
		}
		return false, fmt.Errorf("eligibility check: %w", err)
	}
	return resp.Eligible, nil
}

func (h *GRPCHost) BuildTrackedLink(ctx context.Context, manifest domain.Manifest, url string, req domain.LinkRequest) (string, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	resp, err := client.BuildTrackedLink(callCtx, &affiliaterpc.LinkRequest{
		URL:      url,
		Campaign: req.Campaign,
		Medium:   req.Medium,
		Source:   req.Source,
		Content:  req.Content,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: %s", apperrors.ErrProviderTimeout, manifest.Name)
		}
		return "", fmt.Errorf("build tracked link: %w", err)
	}
	return resp.TrackedURL, nil
}

func (h *GRPCHost) ReportClick(ctx context.Context, manifest domain.Manifest, report domain.ClickReport) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	if _, err := client.ReportClick(callCtx, &affiliaterpc.ClickReport{
		ProductID:   report.ProductID,
		ASIN:        report.ASIN,
		Category:    report.Category,
		Price:       report.Price,
		Currency:    report.Currency,
		TrackedURL:  report.TrackedURL,
		OriginalURL: report.OriginalURL,
		Source:      report.Source,
	}); err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %s", apperrors.ErrProviderTimeout, manifest.Name)
		}
		return fmt.Errorf("report click: %w", err)
	}
	return nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (affiliaterpc.AffiliateProviderClient, func(), error) {
	if !manifest.Enabled {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrProviderDisabled, manifest.Name)
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  affiliaterpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          affiliaterpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start provider client: %w", err)
	}
	raw, err := rpcClient.Dispense(affiliaterpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense provider: %w", err)
	}
	typed, ok := raw.(affiliaterpc.AffiliateProviderClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("provider rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
