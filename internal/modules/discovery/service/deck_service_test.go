package service_test

import (
	"fmt"
	"testing"

	"giftdrift/internal/modules/discovery/domain"
	"giftdrift/internal/modules/discovery/service"
	gesture "giftdrift/internal/modules/gesture/domain"
)

func deckOf(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range cards {
		id := fmt.Sprintf("p%d", i)
		cards[i] = domain.Card{ID: id, Product: domain.Product{ID: id, Name: id, Price: 10}, Position: i}
	}
	return cards
}

func TestApplySwipeCounters(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{Deck: deckOf(10), HasMore: false}

	dirs := []gesture.Direction{
		gesture.DirectionRight, gesture.DirectionUp,
		gesture.DirectionLeft, gesture.DirectionDown,
		gesture.DirectionRight,
	}
	for _, d := range dirs {
		svc.ApplySwipe(state, d)
	}

	if state.Session.SwipeCount != 5 {
		t.Fatalf("expected 5 swipes, got %d", state.Session.SwipeCount)
	}
	if state.Session.LikeCount != 3 || state.Session.DislikeCount != 2 {
		t.Fatalf("expected 3 likes / 2 dislikes, got %d/%d", state.Session.LikeCount, state.Session.DislikeCount)
	}
	if state.Session.LikeCount+state.Session.DislikeCount != state.Session.SwipeCount {
		t.Fatalf("recognized directions must account for every swipe")
	}
	if state.Index != 5 {
		t.Fatalf("expected index 5, got %d", state.Index)
	}
}

func TestProgressFlagFlipsOnceAtTen(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{Deck: deckOf(30), HasMore: false}

	for i := 0; i < 9; i++ {
		svc.ApplySwipe(state, gesture.DirectionRight)
		if state.ShowProgress {
			t.Fatalf("progress flag must stay hidden before the tenth swipe (swipe %d)", i+1)
		}
	}
	svc.ApplySwipe(state, gesture.DirectionRight)
	if !state.ShowProgress {
		t.Fatalf("progress flag must flip at the tenth swipe")
	}
	for i := 0; i < 15; i++ {
		svc.ApplySwipe(state, gesture.DirectionLeft)
		if !state.ShowProgress {
			t.Fatalf("progress flag is one-way within a session")
		}
	}
}

func TestRecommendationPulseCadence(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(100, 2)
	state := &domain.SwipeState{Deck: deckOf(35), HasMore: false}

	var pulses []int
	for i := 1; i <= 35; i++ {
		out := svc.ApplySwipe(state, gesture.DirectionRight)
		if out.RecommendationPulse {
			pulses = append(pulses, i)
		}
	}
	want := []int{10, 20, 30}
	if len(pulses) != len(want) {
		t.Fatalf("expected pulses at %v, got %v", want, pulses)
	}
	for i := range want {
		if pulses[i] != want[i] {
			t.Fatalf("expected pulses at %v, got %v", want, pulses)
		}
	}
}

func TestCompletionAtMaxSwipes(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(5, 2)
	state := &domain.SwipeState{Deck: deckOf(20), HasMore: false}

	for i := 1; i <= 4; i++ {
		if out := svc.ApplySwipe(state, gesture.DirectionRight); out.Completed {
			t.Fatalf("completed before max swipes at swipe %d", i)
		}
	}
	out := svc.ApplySwipe(state, gesture.DirectionRight)
	if !out.Completed {
		t.Fatalf("expected completion at max swipes")
	}
	if state.Session.SwipeCount != 5 {
		t.Fatalf("expected swipe count 5 at completion, got %d", state.Session.SwipeCount)
	}
}

func TestCompletionOnExhaustedDeck(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{Deck: deckOf(3), HasMore: false}

	svc.ApplySwipe(state, gesture.DirectionRight)
	svc.ApplySwipe(state, gesture.DirectionLeft)
	out := svc.ApplySwipe(state, gesture.DirectionRight)
	if !out.Completed {
		t.Fatalf("expected completion when the deck runs out before max swipes")
	}
}

func TestReplenishmentTriggerAtLowWater(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{Deck: deckOf(10), HasMore: true}

	var fetchAt []int
	for i := 1; i <= 8; i++ {
		out := svc.ApplySwipe(state, gesture.DirectionRight)
		if out.NeedsFetch {
			fetchAt = append(fetchAt, i)
			state.Fetching = true // the usecase marks the fetch in flight
		}
	}
	if len(fetchAt) != 1 || fetchAt[0] != 8 {
		t.Fatalf("expected exactly one fetch signal at swipe 8, got %v", fetchAt)
	}
}

func TestNoReplenishmentWhenNoMore(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{Deck: deckOf(4), HasMore: false}
	for i := 0; i < 3; i++ {
		if out := svc.ApplySwipe(state, gesture.DirectionLeft); out.NeedsFetch {
			t.Fatalf("must not fetch when the source is drained")
		}
	}
}

func TestAppendSetsHasMoreFromBatchSize(t *testing.T) {
	t.Parallel()
	svc := service.NewDeckService(50, 2)
	state := &domain.SwipeState{}

	full := make([]domain.Product, 10)
	for i := range full {
		full[i] = domain.Product{ID: fmt.Sprintf("a%d", i), Name: "x", Price: 1}
	}
	svc.Append(state, full, 10)
	if !state.HasMore {
		t.Fatalf("a full page means more may exist")
	}
	if len(state.Deck) != 10 || state.Deck[9].Position != 9 {
		t.Fatalf("cards must be appended at the tail with running positions")
	}

	svc.Append(state, full[:3], 10)
	if state.HasMore {
		t.Fatalf("a short page is the last page")
	}
	if state.Deck[12].Position != 12 {
		t.Fatalf("positions must keep counting across batches, got %d", state.Deck[12].Position)
	}
}
