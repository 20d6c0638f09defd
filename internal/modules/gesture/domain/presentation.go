package domain

import "math"

// Presentation holds the derived visual values for a card at drag offset
// (x, y). It is a pure interpolation recomputed on every motion sample and is
// deliberately separate from Resolve, which runs once, on release.
type Presentation struct {
	Rotation     float64 // degrees, -15..15
	Opacity      float64 // 0.4..1
	Scale        float64 // 0.95..1
	LikeOpacity  float64 // 0..1, rightward drag
	NopeOpacity  float64 // 0..1, leftward drag
	SuperOpacity float64 // 0..1, upward drag
}

const (
	maxRotation  = 15.0
	rotationSpan = 200.0
	overlayStart = 50.0
	overlayFull  = 150.0
	fadeSpan     = 600.0
	shrinkSpan   = 2000.0
	minOpacity   = 0.4
	minScale     = 0.95
)

func Present(x, y float64) Presentation {
	dist := math.Hypot(x, y)
	return Presentation{
		Rotation:     clamp(x/rotationSpan*maxRotation, -maxRotation, maxRotation),
		Opacity:      clamp(1-dist/fadeSpan, minOpacity, 1),
		Scale:        clamp(1-dist/shrinkSpan, minScale, 1),
		LikeOpacity:  ramp(x),
		NopeOpacity:  ramp(-x),
		SuperOpacity: ramp(-y),
	}
}

// ramp maps a directional offset onto 0..1: nothing below overlayStart,
// fully opaque at overlayFull.
func ramp(v float64) float64 {
	if v <= overlayStart {
		return 0
	}
	return clamp((v-overlayStart)/(overlayFull-overlayStart), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
