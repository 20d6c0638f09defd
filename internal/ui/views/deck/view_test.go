package deck

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"giftdrift/internal/modules/discovery/dto"
	gesture "giftdrift/internal/modules/gesture/domain"
)

type capturePort struct {
	dirs []gesture.Direction
}

func (p *capturePort) Initialize(context.Context, dto.StartInput) (dto.StateOutput, error) {
	return dto.StateOutput{}, nil
}

func (p *capturePort) HandleSwipe(_ context.Context, dir gesture.Direction, _ gesture.Gesture) (dto.SwipeOutput, error) {
	p.dirs = append(p.dirs, dir)
	return dto.SwipeOutput{}, nil
}

func (p *capturePort) FetchMore(context.Context) (dto.StateOutput, error) {
	return dto.StateOutput{}, nil
}

func (p *capturePort) ProductClick(context.Context) (dto.ClickOutput, error) {
	return dto.ClickOutput{}, nil
}

func (p *capturePort) Reset(context.Context, dto.StartInput) (dto.StateOutput, error) {
	return dto.StateOutput{}, nil
}

func (p *capturePort) Snapshot() dto.StateOutput { return dto.StateOutput{} }

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Every swipe letter swipes in both cases, since a held shift during a fast
// run of keystrokes is easy to hit by accident.
func TestSwipeKeysBoundInBothCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		key  string
		want gesture.Direction
	}{
		{"x", gesture.DirectionLeft},
		{"X", gesture.DirectionLeft},
		{"l", gesture.DirectionRight},
		{"L", gesture.DirectionRight},
		{"s", gesture.DirectionUp},
		{"S", gesture.DirectionUp},
	}
	port := &capturePort{}
	m := New(port, dto.StartInput{}, gesture.DefaultThresholds())
	for _, tc := range cases {
		cmd := (&m).handleKey(keyMsg(tc.key))
		if cmd == nil {
			t.Fatalf("key %q is not bound", tc.key)
		}
		cmd()
		if got := port.dirs[len(port.dirs)-1]; got != tc.want {
			t.Fatalf("key %q swiped %s, want %s", tc.key, got, tc.want)
		}
	}
}
