package in

import (
	"context"

	"giftdrift/internal/modules/affiliate/dto"
	affiliatein "giftdrift/internal/modules/affiliate/port/in"
)

type CLIHandler struct {
	usecase affiliatein.Usecase
}

func NewCLIHandler(usecase affiliatein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ProviderOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
