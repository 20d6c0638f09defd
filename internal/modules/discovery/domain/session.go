package domain

import (
	"fmt"
	"time"
)

const SchemaVersion = 1

// SessionType scopes what the recommendation engine does with the swipes.
type SessionType string

const (
	SessionOnboarding          SessionType = "onboarding"
	SessionDiscovery           SessionType = "discovery"
	SessionCategoryExploration SessionType = "category_exploration"
	SessionGiftSelection       SessionType = "gift_selection"
)

func (t SessionType) Validate() error {
	switch t {
	case SessionOnboarding, SessionDiscovery, SessionCategoryExploration, SessionGiftSelection:
		return nil
	default:
		return fmt.Errorf("unknown session type: %s", t)
	}
}

// Session mirrors the server-side record. The ID is assigned remotely on
// creation; counters are advanced locally after every gesture and the whole
// record is handed to the host once completed.
type Session struct {
	ID              string
	Type            SessionType
	CategoryFocus   string
	TargetRecipient string
	SwipeCount      int
	LikeCount       int
	DislikeCount    int
	StartedAt       time.Time
	Completed       bool
	CompletedAt     time.Time
	Duration        time.Duration
}
