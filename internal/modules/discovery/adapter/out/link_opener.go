package out

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

type OSLinkOpener struct{}

func NewOSLinkOpener() *OSLinkOpener {
	return &OSLinkOpener{}
}

func (l *OSLinkOpener) Open(_ context.Context, url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("opening a browser is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open product page: %w", err)
	}
	return nil
}
