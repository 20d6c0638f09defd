package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"giftdrift/internal/modules/discovery/domain"
	"giftdrift/internal/platform/markdown"
	"giftdrift/internal/platform/slug"
)

// NoteSessionStore writes one markdown summary note per completed session
// under <dataDir>/sessions/YYYY/MM/DD/.
type NoteSessionStore struct {
	dataDir string
}

func NewNoteSessionStore(dataDir string) *NoteSessionStore {
	return &NoteSessionStore{dataDir: dataDir}
}

func (s *NoteSessionStore) Save(_ context.Context, session domain.Session) (string, error) {
	date := session.StartedAt
	dir := filepath.Join(s.dataDir, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(string(session.Type)))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"id":               session.ID,
		"session_type":     string(session.Type),
		"category_focus":   session.CategoryFocus,
		"target_recipient": session.TargetRecipient,
		"started_at":       session.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"completed_at":     session.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_seconds": int(session.Duration.Seconds()),
		"swipe_count":      session.SwipeCount,
		"like_count":       session.LikeCount,
		"dislike_count":    session.DislikeCount,
	}
	body := fmt.Sprintf(
		"# Discovery session %s\n\n- Type: %s\n- Swipes: %d (%d liked, %d passed)\n- Duration: %s\n",
		session.ID, session.Type, session.SwipeCount, session.LikeCount, session.DislikeCount,
		session.Duration.Round(time.Second),
	)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
