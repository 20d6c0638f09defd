package in

import (
	"context"

	"giftdrift/internal/modules/discovery/dto"
	gesture "giftdrift/internal/modules/gesture/domain"
)

// Usecase is what hosts (TUI, CLI, tests) drive the discovery deck through.
type Usecase interface {
	Initialize(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	HandleSwipe(ctx context.Context, dir gesture.Direction, g gesture.Gesture) (dto.SwipeOutput, error)
	FetchMore(ctx context.Context) (dto.StateOutput, error)
	ProductClick(ctx context.Context) (dto.ClickOutput, error)
	Reset(ctx context.Context, input dto.StartInput) (dto.StateOutput, error)
	Snapshot() dto.StateOutput
	Browse(ctx context.Context, input dto.BrowseInput) ([]dto.CardOutput, error)
}

// Observer receives the host-facing notifications. Delivery is at most once
// per triggering condition.
type Observer interface {
	SessionCompleted(summary dto.SessionSummary)
	RecommendationsReady()
}
