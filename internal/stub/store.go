package stub

import (
	"fmt"
	"sync"
	"time"

	"giftdrift/internal/modules/discovery/domain"
)

type sessionRecord struct {
	ID              string         `json:"id"`
	SessionType     string         `json:"session_type"`
	CategoryFocus   string         `json:"category_focus,omitempty"`
	TargetRecipient string         `json:"target_recipient,omitempty"`
	Context         map[string]any `json:"context,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

type swipeRecord struct {
	SessionID  string         `json:"session_id"`
	ProductID  string         `json:"product_id"`
	Direction  string         `json:"direction"`
	Payload    map[string]any `json:"payload,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
}

type eventRecord struct {
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
}

// memoryStore holds all stub state. Everything is process-local and lost on
// restart, which is the point of a demo twin.
type memoryStore struct {
	mu       sync.RWMutex
	catalog  []domain.Product
	sessions map[string]sessionRecord
	swipes   []swipeRecord
	events   []eventRecord
	seq      int
}

func newMemoryStore(catalog []domain.Product) *memoryStore {
	return &memoryStore{
		catalog:  catalog,
		sessions: make(map[string]sessionRecord),
	}
}

func (s *memoryStore) createSession(record sessionRecord) sessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	record.ID = fmt.Sprintf("stub-sess-%04d", s.seq)
	record.CreatedAt = time.Now()
	s.sessions[record.ID] = record
	return record
}

func (s *memoryStore) sessionExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok
}

func (s *memoryStore) products(limit int, category string, exclude map[string]struct{}) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, limit)
	for _, p := range s.catalog {
		if len(out) == limit {
			break
		}
		if category != "" && p.Category != category {
			continue
		}
		if _, seen := exclude[p.ID]; seen {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *memoryStore) recordSwipe(record swipeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ReceivedAt = time.Now()
	s.swipes = append(s.swipes, record)
}

func (s *memoryStore) recordEvent(record eventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ReceivedAt = time.Now()
	s.events = append(s.events, record)
}

func (s *memoryStore) swipeCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sw := range s.swipes {
		if sw.SessionID == sessionID {
			n++
		}
	}
	return n
}
