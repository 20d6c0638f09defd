package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoSession        = errors.New("no active discovery session")
	ErrSessionStale     = errors.New("response targets a superseded session")
	ErrDeckExhausted    = errors.New("no cards left to swipe")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrProviderDisabled = errors.New("affiliate provider is disabled")
	ErrProviderTimeout  = errors.New("affiliate provider timeout")
)
