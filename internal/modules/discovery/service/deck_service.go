package service

import (
	"giftdrift/internal/modules/discovery/domain"
	gesture "giftdrift/internal/modules/gesture/domain"
)

const progressRevealAt = 10

// SwipeOutcome reports what a single applied swipe triggered. The usecase
// turns these signals into side effects; this service only does bookkeeping.
type SwipeOutcome struct {
	Positive            bool
	Completed           bool
	RecommendationPulse bool
	NeedsFetch          bool
}

type DeckService struct {
	maxSwipes int
	lowWater  int
}

func NewDeckService(maxSwipes, lowWater int) *DeckService {
	return &DeckService{maxSwipes: maxSwipes, lowWater: lowWater}
}

// ApplySwipe advances counters and the deck index for one handled gesture.
// Like counts right and up; dislike counts left and down. The progress flag
// flips once at the tenth swipe and never reverts within a session. The
// recommendation pulse fires on every positive multiple of ten.
func (s *DeckService) ApplySwipe(state *domain.SwipeState, dir gesture.Direction) SwipeOutcome {
	state.Session.SwipeCount++
	positive := dir.Positive()
	switch {
	case positive:
		state.Session.LikeCount++
	case dir == gesture.DirectionLeft || dir == gesture.DirectionDown:
		state.Session.DislikeCount++
	}
	state.Index++

	if state.Session.SwipeCount >= progressRevealAt {
		state.ShowProgress = true
	}

	out := SwipeOutcome{
		Positive:            positive,
		RecommendationPulse: state.Session.SwipeCount%progressRevealAt == 0,
	}
	if state.Remaining() <= s.lowWater && state.HasMore && !state.Fetching {
		out.NeedsFetch = true
	}
	if state.Session.SwipeCount >= s.maxSwipes || (state.Remaining() == 0 && !state.HasMore) {
		out.Completed = true
	}
	return out
}

// Append materializes a fetched batch as cards at the tail of the deck. A
// batch shorter than the page size is treated as the last page.
func (s *DeckService) Append(state *domain.SwipeState, products []domain.Product, pageSize int) {
	for _, p := range products {
		state.Deck = append(state.Deck, domain.Card{
			ID:       p.ID,
			Product:  p,
			Position: len(state.Deck),
		})
	}
	state.HasMore = len(products) == pageSize && pageSize > 0
}
