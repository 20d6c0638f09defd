package out

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"giftdrift/internal/modules/discovery/domain"
	"giftdrift/internal/platform/markdown"
)

func TestSaveWritesDatedNoteWithFrontmatter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewNoteSessionStore(dir)

	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	session := domain.Session{
		ID:              "sess-42",
		Type:            domain.SessionCategoryExploration,
		CategoryFocus:   "kitchen",
		TargetRecipient: "friend",
		SwipeCount:      12,
		LikeCount:       7,
		DislikeCount:    5,
		StartedAt:       started,
		Completed:       true,
		CompletedAt:     started.Add(3 * time.Minute),
		Duration:        3 * time.Minute,
	}

	path, err := store.Save(context.Background(), session)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	wantDir := filepath.Join(dir, "sessions", "2026", "03", "14")
	if filepath.Dir(path) != wantDir {
		t.Fatalf("note dir = %s, want %s", filepath.Dir(path), wantDir)
	}
	if filepath.Base(path) != "093000-category-exploration.md" {
		t.Fatalf("note name = %s", filepath.Base(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if meta["id"] != "sess-42" {
		t.Fatalf("meta id = %v", meta["id"])
	}
	if meta["session_type"] != "category_exploration" {
		t.Fatalf("meta session_type = %v", meta["session_type"])
	}
	if meta["schema_version"] != domain.SchemaVersion {
		t.Fatalf("meta schema_version = %v", meta["schema_version"])
	}
	if meta["swipe_count"] != 12 || meta["like_count"] != 7 {
		t.Fatalf("meta counters = %v / %v", meta["swipe_count"], meta["like_count"])
	}
	if !strings.Contains(body, "Discovery session sess-42") {
		t.Fatalf("body missing heading: %q", body)
	}
	if !strings.Contains(body, "12 (7 liked, 5 passed)") {
		t.Fatalf("body missing counters: %q", body)
	}
}
