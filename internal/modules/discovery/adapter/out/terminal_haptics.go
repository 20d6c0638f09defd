package out

import (
	"io"
	"time"

	gesture "giftdrift/internal/modules/gesture/domain"
)

// TerminalHaptics approximates vibration feedback with terminal bells. One
// bell per pattern segment, spaced by the segment duration. Silently does
// nothing when the writer rejects the bell; feedback is never load-bearing.
type TerminalHaptics struct {
	w io.Writer
}

func NewTerminalHaptics(w io.Writer) *TerminalHaptics {
	return &TerminalHaptics{w: w}
}

func (h *TerminalHaptics) Pulse(pattern gesture.HapticPattern) {
	if h.w == nil {
		return
	}
	go func() {
		for i, ms := range pattern {
			if i > 0 {
				time.Sleep(time.Duration(ms) * time.Millisecond)
			}
			h.w.Write([]byte("\a"))
		}
	}()
}

// NopHaptics is used when the host disables audible feedback.
type NopHaptics struct{}

func (NopHaptics) Pulse(gesture.HapticPattern) {}
