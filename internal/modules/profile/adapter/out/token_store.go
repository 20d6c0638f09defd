package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	profileout "giftdrift/internal/modules/profile/port/out"
)

// FileTokenStore keeps the platform token in a mode-0600 file under the data
// directory.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(dataDir string) profileout.TokenStore {
	return &FileTokenStore{path: filepath.Join(dataDir, "token")}
}

func (s *FileTokenStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Load(_ context.Context) (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *FileTokenStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
