package out

import "context"

type TokenStore interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
