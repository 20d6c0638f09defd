package domain_test

import (
	"testing"
	"time"

	"giftdrift/internal/modules/gesture/domain"
)

func TestResolveDirectionMapping(t *testing.T) {
	t.Parallel()
	th := domain.DefaultThresholds()
	cases := []struct {
		name   string
		offset domain.Vec
		want   domain.Direction
	}{
		{"right past distance", domain.Vec{X: 220}, domain.DirectionRight},
		{"left past distance", domain.Vec{X: -220}, domain.DirectionLeft},
		{"up past distance", domain.Vec{Y: -220}, domain.DirectionUp},
		{"down past distance", domain.Vec{Y: 220}, domain.DirectionDown},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir, ok := domain.Resolve(tc.offset, domain.Vec{}, th)
			if !ok {
				t.Fatalf("expected committed swipe for offset %+v", tc.offset)
			}
			if dir != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, dir)
			}
		})
	}
}

func TestResolveSnapsBackUnderBothThresholds(t *testing.T) {
	t.Parallel()
	th := domain.Thresholds{Distance: 150, Velocity: 500}
	cases := []struct {
		name     string
		offset   domain.Vec
		velocity domain.Vec
	}{
		{"small horizontal drag", domain.Vec{X: 80}, domain.Vec{X: 120}},
		{"small vertical drag", domain.Vec{Y: -90}, domain.Vec{Y: -200}},
		{"exactly at distance threshold", domain.Vec{X: 150}, domain.Vec{}},
		{"exactly at velocity threshold", domain.Vec{X: 10}, domain.Vec{X: 500}},
		{"no motion", domain.Vec{}, domain.Vec{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if dir, ok := domain.Resolve(tc.offset, tc.velocity, th); ok {
				t.Fatalf("expected snap back, got committed %s", dir)
			}
		})
	}
}

func TestResolveVelocityAloneCommits(t *testing.T) {
	t.Parallel()
	th := domain.Thresholds{Distance: 150, Velocity: 500}
	dir, ok := domain.Resolve(domain.Vec{X: -40}, domain.Vec{X: -900}, th)
	if !ok || dir != domain.DirectionLeft {
		t.Fatalf("expected fast flick left to commit, got ok=%t dir=%s", ok, dir)
	}
}

// An exactly diagonal release enters neither axis branch, so no swipe is
// registered regardless of how far or fast the drag was.
func TestResolveDiagonalTieIsNoSwipe(t *testing.T) {
	t.Parallel()
	th := domain.Thresholds{Distance: 150, Velocity: 500}
	offsets := []domain.Vec{
		{X: 300, Y: 300},
		{X: -300, Y: 300},
		{X: 300, Y: -300},
		{X: -300, Y: -300},
	}
	for _, off := range offsets {
		if dir, ok := domain.Resolve(off, domain.Vec{X: 2000, Y: 2000}, th); ok {
			t.Fatalf("diagonal tie %+v must not swipe, got %s", off, dir)
		}
	}
}

func TestMakeDerivesMagnitudes(t *testing.T) {
	t.Parallel()
	g := domain.Make(
		domain.DirectionRight,
		domain.Vec{X: 3, Y: 4},
		domain.Vec{X: 30, Y: 40},
		domain.Vec{},
		domain.Vec{X: 3, Y: 4},
		420*time.Millisecond,
	)
	if g.Distance != 5 {
		t.Fatalf("expected distance 5, got %f", g.Distance)
	}
	if g.Velocity != 50 {
		t.Fatalf("expected velocity 50, got %f", g.Velocity)
	}
	if g.DurationMS != 420 {
		t.Fatalf("expected duration 420ms, got %d", g.DurationMS)
	}
}

func TestCanonicalGesture(t *testing.T) {
	t.Parallel()
	for _, dir := range []domain.Direction{domain.DirectionLeft, domain.DirectionRight, domain.DirectionUp, domain.DirectionDown} {
		g := domain.Canonical(dir)
		if g.Velocity != 1 || g.Distance != 200 || g.DurationMS != 300 {
			t.Fatalf("canonical %s must use fixed parameters, got %+v", dir, g)
		}
		if g.Direction != dir {
			t.Fatalf("canonical gesture lost its direction: %+v", g)
		}
	}
	if domain.Canonical(domain.DirectionUp).End.Y != -200 {
		t.Fatalf("canonical up must end above the origin")
	}
}

func TestDirectionPredicates(t *testing.T) {
	t.Parallel()
	if !domain.DirectionRight.Positive() || !domain.DirectionUp.Positive() {
		t.Fatalf("right and up are positive directions")
	}
	if domain.DirectionLeft.Positive() || domain.DirectionDown.Positive() {
		t.Fatalf("left and down are not positive directions")
	}
	if domain.Direction("sideways").Valid() {
		t.Fatalf("unknown direction must not validate")
	}
}

func TestHapticPatternsDistinctPerDirection(t *testing.T) {
	t.Parallel()
	seen := map[string]domain.Direction{}
	for _, dir := range []domain.Direction{domain.DirectionLeft, domain.DirectionRight, domain.DirectionUp, domain.DirectionDown} {
		key := ""
		for _, ms := range domain.PatternFor(dir) {
			key += string(rune(ms)) + ","
		}
		if prev, dup := seen[key]; dup {
			t.Fatalf("directions %s and %s share a haptic pattern", prev, dir)
		}
		seen[key] = dir
	}
	if len(domain.CoarsePattern(true)) == 0 || len(domain.CoarsePattern(false)) == 0 {
		t.Fatalf("coarse patterns must be non-empty")
	}
}
