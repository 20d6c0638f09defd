package domain

// Phase is the deck's lifecycle position. Transitions are driven only by the
// discovery usecase; the UI just renders whatever phase it is handed.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseActive        Phase = "active"
	PhaseExhausted     Phase = "exhausted"
	PhaseCompleting    Phase = "completing"
	PhaseCompleted     Phase = "completed"
)

// Card wraps one product for presentation in the swipe stack. Cards behind
// the current index are never re-shown.
type Card struct {
	ID       string
	Product  Product
	Position int
}

// SwipeState is the single source of truth the deck mutates. It is owned by
// the discovery usecase and exposed to the UI only as snapshots.
type SwipeState struct {
	Phase        Phase
	Deck         []Card
	Index        int
	Fetching     bool
	HasMore      bool
	Session      Session
	ShowProgress bool
}

// ActiveCard returns the topmost unswiped card, if any.
func (s SwipeState) ActiveCard() (Card, bool) {
	if s.Index < 0 || s.Index >= len(s.Deck) {
		return Card{}, false
	}
	return s.Deck[s.Index], true
}

// Upcoming returns up to n cards behind the active one, for the preview
// stack. They render non-interactive.
func (s SwipeState) Upcoming(n int) []Card {
	start := s.Index + 1
	if start >= len(s.Deck) {
		return nil
	}
	end := start + n
	if end > len(s.Deck) {
		end = len(s.Deck)
	}
	return s.Deck[start:end]
}

// Remaining counts unswiped cards including the active one.
func (s SwipeState) Remaining() int {
	if s.Index >= len(s.Deck) {
		return 0
	}
	return len(s.Deck) - s.Index
}
