package in

import (
	"context"

	"giftdrift/internal/modules/profile/dto"
)

type Usecase interface {
	Login(ctx context.Context, token string) (dto.UserOutput, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (dto.UserOutput, error)
}
