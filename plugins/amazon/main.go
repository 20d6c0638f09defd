package main

import (
	"context"
	"fmt"
	"net/url"
	"os"

	affiliaterpc "giftdrift/internal/modules/affiliate/adapter/out/rpc"
	"giftdrift/internal/modules/affiliate/domain"

	"github.com/hashicorp/go-plugin"
)

const defaultTag = "giftdrift-20"

type server struct {
	tag string
}

func (s *server) GetMetadata(_ context.Context, _ *affiliaterpc.Empty) (*affiliaterpc.Metadata, error) {
	return &affiliaterpc.Metadata{
		Name:         "amazon",
		Version:      "1.0.0",
		Capabilities: []string{"eligibility", "link", "report"},
	}, nil
}

func (s *server) IsEligible(_ context.Context, in *affiliaterpc.EligibilityRequest) (*affiliaterpc.EligibilityResponse, error) {
	return &affiliaterpc.EligibilityResponse{Eligible: domain.AmazonEligible(in.URL)}, nil
}

func (s *server) BuildTrackedLink(_ context.Context, in *affiliaterpc.LinkRequest) (*affiliaterpc.LinkResponse, error) {
	parsed, err := url.Parse(in.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	query := parsed.Query()
	query.Set("tag", s.tag)
	if in.Campaign != "" {
		query.Set("utm_campaign", in.Campaign)
	}
	if in.Medium != "" {
		query.Set("utm_medium", in.Medium)
	}
	if in.Source != "" {
		query.Set("utm_source", in.Source)
	}
	if in.Content != "" {
		query.Set("utm_content", in.Content)
	}
	parsed.RawQuery = query.Encode()
	return &affiliaterpc.LinkResponse{TrackedURL: parsed.String()}, nil
}

func (s *server) ReportClick(_ context.Context, in *affiliaterpc.ClickReport) (*affiliaterpc.ClickAck, error) {
	if in.ProductID == "" {
		return &affiliaterpc.ClickAck{Accepted: false}, nil
	}
	// The associates reporting API is not wired here; the ack just confirms
	// the report was well-formed.
	return &affiliaterpc.ClickAck{Accepted: true}, nil
}

func main() {
	tag := os.Getenv("GIFTDRIFT_ASSOCIATE_TAG")
	if tag == "" {
		tag = defaultTag
	}
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: affiliaterpc.HandshakeConfig,
		Plugins:         affiliaterpc.PluginMap(&server{tag: tag}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
