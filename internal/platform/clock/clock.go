package clock

import "time"

// Clock is the time source behind swipe pacing and session durations.
// Interactors take it as a seam so tests can script the timeline.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in UTC, the zone every session
// timestamp is journaled and noted in.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
