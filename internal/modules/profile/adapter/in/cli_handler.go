package in

import (
	"context"

	"giftdrift/internal/modules/profile/dto"
	profilein "giftdrift/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, token string) (dto.UserOutput, error) {
	return h.usecase.Login(ctx, token)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.CurrentUser(ctx)
}
