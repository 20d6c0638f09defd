package usecase

import (
	"context"
	"fmt"
	"strings"

	"giftdrift/internal/modules/profile/domain"
	"giftdrift/internal/modules/profile/dto"
	profilein "giftdrift/internal/modules/profile/port/in"
	profileout "giftdrift/internal/modules/profile/port/out"
	"giftdrift/internal/platform/clock"
	apperrors "giftdrift/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Interactor stores the platform token and exposes the identity inside it.
// The token is parsed unverified: signature verification is the platform's
// concern, the client only displays who the token says you are.
type Interactor struct {
	store profileout.TokenStore
	clk   clock.Clock
}

func NewInteractor(store profileout.TokenStore, clk clock.Clock) profilein.Usecase {
	return &Interactor{store: store, clk: clk}
}

func (i *Interactor) Login(ctx context.Context, token string) (dto.UserOutput, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return dto.UserOutput{}, fmt.Errorf("%w: token is required", apperrors.ErrInvalidInput)
	}
	user, err := decodeUser(token)
	if err != nil {
		return dto.UserOutput{}, err
	}
	if err := i.store.Save(ctx, token); err != nil {
		return dto.UserOutput{}, fmt.Errorf("store token: %w", err)
	}
	return i.output(user), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (i *Interactor) CurrentUser(ctx context.Context) (dto.UserOutput, error) {
	token, err := i.store.Load(ctx)
	if err != nil {
		return dto.UserOutput{}, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return dto.UserOutput{}, apperrors.ErrNotLoggedIn
	}
	user, err := decodeUser(token)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return i.output(user), nil
}

func (i *Interactor) output(user domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: user.ExpiresAt,
		Expired:   user.Expired(i.clk.Now()),
	}
}

func decodeUser(token string) (domain.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return domain.User{}, fmt.Errorf("%w: decode token: %v", apperrors.ErrInvalidInput, err)
	}

	user := domain.User{}
	if sub, err := claims.GetSubject(); err == nil {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		user.Name = name
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		user.ExpiresAt = exp.Time
	}
	if err := user.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("%w: token claims: %v", apperrors.ErrInvalidInput, err)
	}
	return user, nil
}
