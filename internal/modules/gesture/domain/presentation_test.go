package domain_test

import (
	"testing"

	"giftdrift/internal/modules/gesture/domain"
)

func TestPresentAtOrigin(t *testing.T) {
	t.Parallel()
	p := domain.Present(0, 0)
	if p.Rotation != 0 || p.Opacity != 1 || p.Scale != 1 {
		t.Fatalf("origin must render untouched, got %+v", p)
	}
	if p.LikeOpacity != 0 || p.NopeOpacity != 0 || p.SuperOpacity != 0 {
		t.Fatalf("no overlay may be visible at origin, got %+v", p)
	}
}

func TestPresentOverlayRamps(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		x, y float64
		pick func(domain.Presentation) float64
	}{
		{"like follows rightward drag", 150, 0, func(p domain.Presentation) float64 { return p.LikeOpacity }},
		{"nope follows leftward drag", -150, 0, func(p domain.Presentation) float64 { return p.NopeOpacity }},
		{"super follows upward drag", 0, -150, func(p domain.Presentation) float64 { return p.SuperOpacity }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.pick(domain.Present(tc.x, tc.y)); got != 1 {
				t.Fatalf("expected fully visible overlay, got %f", got)
			}
			if got := tc.pick(domain.Present(tc.x*2/3, tc.y*2/3)); got <= 0 || got >= 1 {
				t.Fatalf("expected partial overlay mid-drag, got %f", got)
			}
			// The ramp opens strictly past its start offset.
			if got := tc.pick(domain.Present(tc.x/3, tc.y/3)); got != 0 {
				t.Fatalf("no overlay may show at the ramp boundary, got %f", got)
			}
		})
	}
}

func TestPresentRotationClampsAndSigns(t *testing.T) {
	t.Parallel()
	if r := domain.Present(1000, 0).Rotation; r != 15 {
		t.Fatalf("rotation must clamp at 15, got %f", r)
	}
	if r := domain.Present(-1000, 0).Rotation; r != -15 {
		t.Fatalf("rotation must clamp at -15, got %f", r)
	}
	if r := domain.Present(100, 0).Rotation; r <= 0 || r >= 15 {
		t.Fatalf("mid-drag rotation should interpolate, got %f", r)
	}
}

func TestPresentFadesAndShrinksWithDistance(t *testing.T) {
	t.Parallel()
	near := domain.Present(60, 0)
	far := domain.Present(400, 0)
	if far.Opacity >= near.Opacity {
		t.Fatalf("opacity must fall with distance: near=%f far=%f", near.Opacity, far.Opacity)
	}
	if far.Scale >= near.Scale {
		t.Fatalf("scale must fall with distance: near=%f far=%f", near.Scale, far.Scale)
	}
	huge := domain.Present(10000, 10000)
	if huge.Opacity != 0.4 || huge.Scale != 0.95 {
		t.Fatalf("fade and shrink must clamp, got %+v", huge)
	}
}
