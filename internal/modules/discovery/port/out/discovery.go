package out

import (
	"context"
	"time"

	"giftdrift/internal/modules/discovery/domain"
	gesture "giftdrift/internal/modules/gesture/domain"
)

// ClientContext travels with session creation so the platform can segment by
// surface.
type ClientContext struct {
	UserAgent string
	Viewport  string
	StartedAt time.Time
}

type CreateSessionInput struct {
	Type            domain.SessionType
	CategoryFocus   string
	TargetRecipient string
	Context         ClientContext
}

// SwipeRecord is one fire-and-forget write against the platform. Records are
// independent and idempotent by (session, product), so out-of-order arrival
// under network jitter is acceptable.
type SwipeRecord struct {
	SessionID        string
	ProductID        string
	Direction        gesture.Direction
	Gesture          gesture.Gesture
	Position         int
	SinceLastSwipeMS int
	ElapsedMS        int
}

type SessionGateway interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (string, error)
	RecordSwipe(ctx context.Context, record SwipeRecord) error
}

type ProductQuery struct {
	Limit       int
	SessionID   string
	Category    string
	ExcludeSeen []string
}

type ProductSource interface {
	FetchPage(ctx context.Context, query ProductQuery) ([]domain.Product, error)
}

// AnalyticsSink is best-effort: callers discard its error beyond a notice.
type AnalyticsSink interface {
	Track(ctx context.Context, event string, properties map[string]any) error
}

// Haptics is best-effort and therefore returns nothing.
type Haptics interface {
	Pulse(pattern gesture.HapticPattern)
}

type LinkOpener interface {
	Open(ctx context.Context, url string) error
}

// JournalEntry is the local record of one swipe, kept even when the remote
// write failed so a later reconciliation stays possible.
type JournalEntry struct {
	SessionID  string
	ProductID  string
	Direction  gesture.Direction
	Velocity   float64
	Distance   float64
	DurationMS int
	Position   int
	RemoteOK   bool
	At         time.Time
}

type SwipeJournal interface {
	Append(ctx context.Context, entry JournalEntry) error
	SeenProductIDs(ctx context.Context, limit int) ([]string, error)
}

type SessionNoteStore interface {
	Save(ctx context.Context, session domain.Session) (string, error)
}
