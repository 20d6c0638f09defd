package domain

import (
	"math"
	"time"
)

// Direction is the discrete decision a resolved drag maps to.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return true
	default:
		return false
	}
}

// Positive reports whether the direction signals preference (like or superlike).
func (d Direction) Positive() bool {
	return d == DirectionRight || d == DirectionUp
}

// Vec is a 2-D coordinate pair relative to the card origin.
type Vec struct {
	X float64
	Y float64
}

// Thresholds gate whether a released drag commits to a swipe.
type Thresholds struct {
	Distance float64
	Velocity float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Distance: 150, Velocity: 500}
}

// Gesture is one resolved pointer interaction. It is created fresh on every
// release or button press and handed to the deck, never retained here.
type Gesture struct {
	Direction  Direction
	Velocity   float64
	Distance   float64
	DurationMS int
	Start      Vec
	End        Vec
}

// Resolve classifies a released drag. The dominant axis is chosen by strict
// inequality, so an exactly diagonal release (|dx| == |dy|) resolves to no
// swipe at all. On the dominant axis the swipe commits only when the offset
// exceeds the distance threshold or the axis velocity exceeds the velocity
// threshold; otherwise the card snaps back.
func Resolve(offset, velocity Vec, th Thresholds) (Direction, bool) {
	absX := math.Abs(offset.X)
	absY := math.Abs(offset.Y)
	switch {
	case absX > absY:
		if absX > th.Distance || math.Abs(velocity.X) > th.Velocity {
			if offset.X > 0 {
				return DirectionRight, true
			}
			return DirectionLeft, true
		}
	case absY > absX:
		if absY > th.Distance || math.Abs(velocity.Y) > th.Velocity {
			if offset.Y < 0 {
				return DirectionUp, true
			}
			return DirectionDown, true
		}
	}
	return "", false
}

// Make builds the Gesture record for a committed drag. Velocity and distance
// are the 2-D magnitudes of the raw pointer deltas.
func Make(dir Direction, offset, velocity, start, end Vec, duration time.Duration) Gesture {
	return Gesture{
		Direction:  dir,
		Velocity:   math.Hypot(velocity.X, velocity.Y),
		Distance:   math.Hypot(offset.X, offset.Y),
		DurationMS: int(duration.Milliseconds()),
		Start:      start,
		End:        end,
	}
}

// Canonical is the fixed-parameter gesture used by action buttons and
// keyboard shortcuts. It bypasses threshold resolution and always commits.
func Canonical(dir Direction) Gesture {
	var end Vec
	switch dir {
	case DirectionLeft:
		end = Vec{X: -200}
	case DirectionRight:
		end = Vec{X: 200}
	case DirectionUp:
		end = Vec{Y: -200}
	case DirectionDown:
		end = Vec{Y: 200}
	}
	return Gesture{Direction: dir, Velocity: 1, Distance: 200, DurationMS: 300, End: end}
}

// HapticPattern is an alternating vibrate/pause signature in milliseconds.
// Emitting one is always best-effort.
type HapticPattern []int

func PatternFor(dir Direction) HapticPattern {
	switch dir {
	case DirectionRight:
		return HapticPattern{40}
	case DirectionLeft:
		return HapticPattern{80}
	case DirectionUp:
		return HapticPattern{30, 40, 30}
	case DirectionDown:
		return HapticPattern{60}
	default:
		return nil
	}
}

// CoarsePattern distinguishes only positive from other directions; the deck
// fires it once per handled swipe on top of the card's own pattern.
func CoarsePattern(positive bool) HapticPattern {
	if positive {
		return HapticPattern{25, 25, 25}
	}
	return HapticPattern{50}
}
