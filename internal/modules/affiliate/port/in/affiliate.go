package in

import (
	"context"

	"giftdrift/internal/modules/affiliate/dto"
)

// Usecase turns raw product URLs into tracked affiliate links and reports
// clicks. Every operation is best-effort from the caller's point of view:
// a failure must never block navigation.
type Usecase interface {
	ProcessClick(ctx context.Context, input dto.ClickInput) (dto.ClickOutput, error)
	List(ctx context.Context) ([]dto.ProviderOutput, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
