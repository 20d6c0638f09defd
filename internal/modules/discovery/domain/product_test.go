package domain_test

import (
	"strings"
	"testing"

	"giftdrift/internal/modules/discovery/domain"
)

func TestProductValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		product domain.Product
		wantErr string
	}{
		{"valid full price", domain.Product{ID: "p1", Name: "Mug", Price: 12}, ""},
		{"valid discounted", domain.Product{ID: "p1", Name: "Mug", Price: 9, OriginalPrice: 12}, ""},
		{"missing id", domain.Product{Name: "Mug", Price: 12}, "id is required"},
		{"missing name", domain.Product{ID: "p1", Price: 12}, "name is required"},
		{"negative price", domain.Product{ID: "p1", Name: "Mug", Price: -1}, "must not be negative"},
		{"price above original", domain.Product{ID: "p1", Name: "Mug", Price: 15, OriginalPrice: 12}, "exceeds original"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.product.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDiscountPercentNeverNegative(t *testing.T) {
	t.Parallel()
	if d := (domain.Product{Price: 75, OriginalPrice: 100}).DiscountPercent(); d != 25 {
		t.Fatalf("expected 25%% discount, got %f", d)
	}
	if d := (domain.Product{Price: 100}).DiscountPercent(); d != 0 {
		t.Fatalf("no original price means no discount, got %f", d)
	}
	if d := (domain.Product{Price: 100, OriginalPrice: 80}).DiscountPercent(); d != 0 {
		t.Fatalf("derived discount must not go negative, got %f", d)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()
	if got := (domain.Product{Price: 49.99, Currency: "USD"}).FormatPrice(); got != "$49.99" {
		t.Fatalf("expected $49.99, got %s", got)
	}
	if got := (domain.Product{Price: 30, Currency: "SEK"}).FormatPrice(); got != "SEK 30.00" {
		t.Fatalf("expected ISO fallback, got %s", got)
	}
}

func TestSwipeStateDeckViews(t *testing.T) {
	t.Parallel()
	deck := []domain.Card{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
		{ID: "d", Position: 3},
	}
	state := domain.SwipeState{Deck: deck, Index: 1}

	active, ok := state.ActiveCard()
	if !ok || active.ID != "b" {
		t.Fatalf("expected active card b, got %+v ok=%t", active, ok)
	}
	up := state.Upcoming(2)
	if len(up) != 2 || up[0].ID != "c" || up[1].ID != "d" {
		t.Fatalf("unexpected upcoming stack: %+v", up)
	}
	if state.Remaining() != 3 {
		t.Fatalf("expected 3 remaining, got %d", state.Remaining())
	}

	state.Index = 4
	if _, ok := state.ActiveCard(); ok {
		t.Fatalf("no active card past the end of the deck")
	}
	if state.Remaining() != 0 {
		t.Fatalf("expected 0 remaining past the end")
	}
}

func TestSessionTypeValidate(t *testing.T) {
	t.Parallel()
	for _, st := range []domain.SessionType{
		domain.SessionOnboarding,
		domain.SessionDiscovery,
		domain.SessionCategoryExploration,
		domain.SessionGiftSelection,
	} {
		if err := st.Validate(); err != nil {
			t.Fatalf("expected %s to validate: %v", st, err)
		}
	}
	if err := domain.SessionType("speedrun").Validate(); err == nil {
		t.Fatalf("unknown session type must not validate")
	}
}
