package usecase

import (
	"context"

	"giftdrift/internal/modules/affiliate/dto"
	affiliatein "giftdrift/internal/modules/affiliate/port/in"
	"giftdrift/internal/modules/affiliate/service"
)

type Interactor struct {
	svc *service.AffiliateService
}

func NewInteractor(svc *service.AffiliateService) affiliatein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ProcessClick(ctx context.Context, input dto.ClickInput) (dto.ClickOutput, error) {
	return i.svc.ProcessClick(ctx, input)
}

func (i *Interactor) List(ctx context.Context) ([]dto.ProviderOutput, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
