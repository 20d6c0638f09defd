// Package stub is a local twin of the platform's product/session API, used
// for offline demos and gateway integration tests.
package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"giftdrift/internal/modules/discovery/domain"
)

type Server struct {
	store *memoryStore
}

// NewServer builds a stub backed by the given catalog; nil means the seeded
// gift list.
func NewServer(catalog []domain.Product) *Server {
	if catalog == nil {
		catalog = seedCatalog()
	}
	return &Server{store: newMemoryStore(catalog)}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/swipe-sessions", s.createSession)
		r.Post("/swipe-sessions/{sessionID}/swipes", s.recordSwipe)
		r.Get("/products", s.listProducts)
		r.Post("/events", s.captureEvent)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	return r
}

type createSessionRequest struct {
	SessionType     string         `json:"session_type"`
	CategoryFocus   string         `json:"category_focus"`
	TargetRecipient string         `json:"target_recipient"`
	Context         map[string]any `json:"context"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.SessionType == "" {
		writeError(w, http.StatusBadRequest, "session_type is required")
		return
	}
	record := s.store.createSession(sessionRecord{
		SessionType:     req.SessionType,
		CategoryFocus:   req.CategoryFocus,
		TargetRecipient: req.TargetRecipient,
		Context:         req.Context,
	})
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":           record.ID,
		"session_type": record.SessionType,
		"created_at":   record.CreatedAt,
	})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	exclude := map[string]struct{}{}
	if raw := r.URL.Query().Get("exclude_seen"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				exclude[id] = struct{}{}
			}
		}
	}
	products := s.store.products(limit, r.URL.Query().Get("category"), exclude)
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) recordSwipe(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !s.store.sessionExists(sessionID) {
		writeError(w, http.StatusNotFound, "unknown session: "+sessionID)
		return
	}
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	productID, _ := payload["product_id"].(string)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	direction, _ := payload["direction"].(string)
	s.store.recordSwipe(swipeRecord{
		SessionID: sessionID,
		ProductID: productID,
		Direction: direction,
		Payload:   payload,
	})
	writeJSON(w, http.StatusAccepted, map[string]any{"recorded": true})
}

type captureRequest struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
}

func (s *Server) captureEvent(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Event == "" {
		writeError(w, http.StatusBadRequest, "event is required")
		return
	}
	s.store.recordEvent(eventRecord{Event: req.Event, Properties: req.Properties})
	writeJSON(w, http.StatusAccepted, map[string]any{"captured": true})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"error": detail})
}
