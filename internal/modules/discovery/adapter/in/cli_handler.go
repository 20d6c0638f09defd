package in

import (
	"context"
	"fmt"
	"strings"

	discoverydto "giftdrift/internal/modules/discovery/dto"
	discoveryin "giftdrift/internal/modules/discovery/port/in"
	gesture "giftdrift/internal/modules/gesture/domain"
	apperrors "giftdrift/internal/platform/errors"
)

type CLIHandler struct {
	usecase discoveryin.Usecase
}

func NewCLIHandler(usecase discoveryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, sessionType, category, recipient string) (discoverydto.StateOutput, error) {
	return h.usecase.Initialize(ctx, discoverydto.StartInput{
		SessionType:     sessionType,
		CategoryFocus:   category,
		TargetRecipient: recipient,
	})
}

func (h CLIHandler) Swipe(ctx context.Context, dir gesture.Direction) (discoverydto.SwipeOutput, error) {
	return h.usecase.HandleSwipe(ctx, dir, gesture.Canonical(dir))
}

func (h CLIHandler) Browse(ctx context.Context, category string, limit int) ([]discoverydto.CardOutput, error) {
	return h.usecase.Browse(ctx, discoverydto.BrowseInput{Category: category, Limit: limit})
}

// Run replays a comma-separated swipe script (r,l,u,d or right,left,up,down)
// against a fresh session. It stops early on completion.
func (h CLIHandler) Run(ctx context.Context, sessionType, category, recipient, script string) (discoverydto.SwipeOutput, error) {
	if _, err := h.Start(ctx, sessionType, category, recipient); err != nil {
		return discoverydto.SwipeOutput{}, err
	}

	var out discoverydto.SwipeOutput
	for _, token := range strings.Split(script, ",") {
		dir, err := parseDirection(strings.TrimSpace(token))
		if err != nil {
			return out, err
		}
		out, err = h.Swipe(ctx, dir)
		if err != nil {
			return out, err
		}
		if out.Completed {
			break
		}
	}
	return out, nil
}

func parseDirection(token string) (gesture.Direction, error) {
	switch token {
	case "r", "right":
		return gesture.DirectionRight, nil
	case "l", "left":
		return gesture.DirectionLeft, nil
	case "u", "up":
		return gesture.DirectionUp, nil
	case "d", "down":
		return gesture.DirectionDown, nil
	default:
		return "", fmt.Errorf("%w: swipe token %q", apperrors.ErrInvalidInput, token)
	}
}
