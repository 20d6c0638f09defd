package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"giftdrift/internal/modules/discovery/domain"
	discoveryout "giftdrift/internal/modules/discovery/port/out"
	"giftdrift/internal/platform/id"
)

// HTTPGateway is the JSON/HTTP client of the platform API. One instance
// backs the SessionGateway, ProductSource, and AnalyticsSink ports.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	ids     id.Generator
	client  *http.Client
}

func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		ids:     id.RandomHex{},
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type createSessionRequest struct {
	SessionType     string         `json:"session_type"`
	CategoryFocus   string         `json:"category_focus,omitempty"`
	TargetRecipient string         `json:"target_recipient,omitempty"`
	Context         map[string]any `json:"context"`
}

type createSessionResponse struct {
	ID string `json:"id"`
}

func (g *HTTPGateway) CreateSession(ctx context.Context, input discoveryout.CreateSessionInput) (string, error) {
	body := createSessionRequest{
		SessionType:     string(input.Type),
		CategoryFocus:   input.CategoryFocus,
		TargetRecipient: input.TargetRecipient,
		Context: map[string]any{
			"user_agent": input.Context.UserAgent,
			"viewport":   input.Context.Viewport,
			"started_at": input.Context.StartedAt.UTC().Format(time.RFC3339),
		},
	}

	var resp createSessionResponse
	if err := g.post(ctx, "/v1/swipe-sessions", body, &resp); err != nil {
		return "", fmt.Errorf("create swipe session: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("create swipe session: response carried no id")
	}
	return resp.ID, nil
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

func (g *HTTPGateway) FetchPage(ctx context.Context, query discoveryout.ProductQuery) ([]domain.Product, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(query.Limit))
	if query.SessionID != "" {
		params.Set("session_id", query.SessionID)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if len(query.ExcludeSeen) > 0 {
		params.Set("exclude_seen", strings.Join(query.ExcludeSeen, ","))
	}

	var resp productsResponse
	if err := g.get(ctx, "/v1/products?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return resp.Products, nil
}

type swipeRequest struct {
	ProductID        string  `json:"product_id"`
	ContentType      string  `json:"content_type"`
	Direction        string  `json:"direction"`
	Velocity         float64 `json:"velocity"`
	Distance         float64 `json:"distance"`
	DurationMS       int     `json:"duration_ms"`
	Position         int     `json:"position"`
	SinceLastSwipeMS int     `json:"since_last_swipe_ms"`
	ElapsedMS        int     `json:"elapsed_ms"`
}

func (g *HTTPGateway) RecordSwipe(ctx context.Context, record discoveryout.SwipeRecord) error {
	body := swipeRequest{
		ProductID:        record.ProductID,
		ContentType:      "product",
		Direction:        string(record.Direction),
		Velocity:         record.Gesture.Velocity,
		Distance:         record.Gesture.Distance,
		DurationMS:       record.Gesture.DurationMS,
		Position:         record.Position,
		SinceLastSwipeMS: record.SinceLastSwipeMS,
		ElapsedMS:        record.ElapsedMS,
	}
	path := "/v1/swipe-sessions/" + url.PathEscape(record.SessionID) + "/swipes"
	if err := g.post(ctx, path, body, nil); err != nil {
		return fmt.Errorf("record swipe: %w", err)
	}
	return nil
}

type eventRequest struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
}

func (g *HTTPGateway) Track(ctx context.Context, event string, properties map[string]any) error {
	if err := g.post(ctx, "/v1/events", eventRequest{Event: event, Properties: properties}, nil); err != nil {
		return fmt.Errorf("track event: %w", err)
	}
	return nil
}

// ─── transport ───────────────────────────────────────────────────────────────

func (g *HTTPGateway) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *HTTPGateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return g.do(req, out)
}

func (g *HTTPGateway) do(req *http.Request, out any) error {
	if g.apiKey != "" {
		req.Header.Set("X-Api-Key", g.apiKey)
	}
	req.Header.Set("X-Request-Id", g.ids.New())
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
