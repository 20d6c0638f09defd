package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey          = "giftdrift"
	serviceName           = "giftdrift.affiliate.v1.AffiliateProvider"
	jsonCodecName         = "json"
	methodGetMetadata     = "/" + serviceName + "/GetMetadata"
	methodIsEligible      = "/" + serviceName + "/IsEligible"
	methodBuildTrackedURL = "/" + serviceName + "/BuildTrackedLink"
	methodReportClick     = "/" + serviceName + "/ReportClick"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "GIFTDRIFT_AFFILIATE",
	MagicCookieValue: "giftdrift",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

type EligibilityRequest struct {
	URL string `json:"url"`
}

type EligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

type LinkRequest struct {
	URL      string `json:"url"`
	Campaign string `json:"campaign"`
	Medium   string `json:"medium"`
	Source   string `json:"source"`
	Content  string `json:"content"`
}

type LinkResponse struct {
	TrackedURL string `json:"tracked_url"`
}

type ClickReport struct {
	ProductID   string  `json:"product_id"`
	ASIN        string  `json:"asin,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	TrackedURL  string  `json:"tracked_url"`
	OriginalURL string  `json:"original_url"`
	Source      string  `json:"source"`
}

type ClickAck struct {
	Accepted bool `json:"accepted"`
}

type AffiliateProviderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	IsEligible(ctx context.Context, in *EligibilityRequest) (*EligibilityResponse, error)
	BuildTrackedLink(ctx context.Context, in *LinkRequest) (*LinkResponse, error)
	ReportClick(ctx context.Context, in *ClickReport) (*ClickAck, error)
}

type AffiliateProviderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	IsEligible(ctx context.Context, in *EligibilityRequest) (*EligibilityResponse, error)
	BuildTrackedLink(ctx context.Context, in *LinkRequest) (*LinkResponse, error)
	ReportClick(ctx context.Context, in *ClickReport) (*ClickAck, error)
}

type affiliateProviderClient struct {
	conn *grpc.ClientConn
}

func NewAffiliateProviderClient(conn *grpc.ClientConn) AffiliateProviderClient {
	return &affiliateProviderClient{conn: conn}
}

func (c *affiliateProviderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *affiliateProviderClient) IsEligible(ctx context.Context, in *EligibilityRequest) (*EligibilityResponse, error) {
	out := &EligibilityResponse{}
	if err := c.conn.Invoke(ctx, methodIsEligible, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *affiliateProviderClient) BuildTrackedLink(ctx context.Context, in *LinkRequest) (*LinkResponse, error) {
	out := &LinkResponse{}
	if err := c.conn.Invoke(ctx, methodBuildTrackedURL, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *affiliateProviderClient) ReportClick(ctx context.Context, in *ClickReport) (*ClickAck, error) {
	out := &ClickAck{}
	if err := c.conn.Invoke(ctx, methodReportClick, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterAffiliateProviderServer(server grpc.ServiceRegistrar, impl AffiliateProviderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*AffiliateProviderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "IsEligible",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &EligibilityRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.IsEligible(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodIsEligible}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*EligibilityRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.IsEligible(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "BuildTrackedLink",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &LinkRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.BuildTrackedLink(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodBuildTrackedURL}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*LinkRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.BuildTrackedLink(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "ReportClick",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &ClickReport{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.ReportClick(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodReportClick}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*ClickReport)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.ReportClick(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/affiliate-rpc-v1.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl AffiliateProviderServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterAffiliateProviderServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewAffiliateProviderClient(conn), nil
}

func PluginMap(impl AffiliateProviderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}
