package dto

import (
	"time"

	"giftdrift/internal/modules/discovery/domain"
)

type StartInput struct {
	SessionType     string
	CategoryFocus   string
	TargetRecipient string
}

type CardOutput struct {
	Product  domain.Product
	Position int
	Active   bool
}

// StateOutput is the snapshot the UI renders. Cards holds the active card
// first, then the preview stack.
type StateOutput struct {
	Phase        string
	SessionID    string
	SessionType  string
	Cards        []CardOutput
	SwipeCount   int
	LikeCount    int
	DislikeCount int
	Remaining    int
	MaxSwipes    int
	ShowProgress bool
	HasMore      bool
	Fetching     bool
	Notice       string
}

type SessionSummary struct {
	SessionID       string
	SessionType     string
	CategoryFocus   string
	TargetRecipient string
	SwipeCount      int
	LikeCount       int
	DislikeCount    int
	StartedAt       time.Time
	CompletedAt     time.Time
	Duration        time.Duration
	NotePath        string
}

type SwipeOutput struct {
	State                StateOutput
	Completed            bool
	RecommendationsReady bool
	Summary              *SessionSummary
}

type ClickOutput struct {
	URL     string
	Tracked bool
	Opened  bool
}

type BrowseInput struct {
	Category string
	Limit    int
}
