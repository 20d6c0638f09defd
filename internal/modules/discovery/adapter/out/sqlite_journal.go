package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	discoveryout "giftdrift/internal/modules/discovery/port/out"
	gesture "giftdrift/internal/modules/gesture/domain"

	_ "modernc.org/sqlite"
)

// SQLiteSwipeJournal keeps a local record of every swipe, including the ones
// whose remote write failed, and feeds the exclude-seen filter on product
// fetches.
type SQLiteSwipeJournal struct {
	db *sql.DB
}

func NewSQLiteSwipeJournal(dbPath string) (*SQLiteSwipeJournal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	journal := &SQLiteSwipeJournal{db: db}
	if err := journal.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return journal, nil
}

func (s *SQLiteSwipeJournal) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS swipes (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  direction TEXT NOT NULL,
  velocity REAL NOT NULL,
  distance REAL NOT NULL,
  duration_ms INTEGER NOT NULL,
  position INTEGER NOT NULL,
  remote_ok INTEGER NOT NULL,
  at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS swipes_product_idx ON swipes (product_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create swipes table: %w", err)
	}
	return nil
}

func (s *SQLiteSwipeJournal) Append(ctx context.Context, entry discoveryout.JournalEntry) error {
	const stmt = `
INSERT INTO swipes (session_id, product_id, direction, velocity, distance, duration_ms, position, remote_ok, at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	remoteOK := 0
	if entry.RemoteOK {
		remoteOK = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		entry.SessionID,
		entry.ProductID,
		string(entry.Direction),
		entry.Velocity,
		entry.Distance,
		entry.DurationMS,
		entry.Position,
		remoteOK,
		entry.At.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("append swipe: %w", err)
	}
	return nil
}

// SeenProductIDs returns the most recently swiped product ids, newest first,
// deduplicated across sessions.
func (s *SQLiteSwipeJournal) SeenProductIDs(ctx context.Context, limit int) ([]string, error) {
	const query = `
SELECT product_id FROM swipes
GROUP BY product_id
ORDER BY MAX(id) DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query seen products: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seen product: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seen products: %w", err)
	}
	return ids, nil
}

// History lists journaled swipes for the session history command, newest
// first.
type HistoryEntry struct {
	SessionID  string
	ProductID  string
	Direction  gesture.Direction
	Position   int
	RemoteOK   bool
	At         time.Time
	DurationMS int
}

func (s *SQLiteSwipeJournal) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	const query = `
SELECT session_id, product_id, direction, position, remote_ok, at, duration_ms
FROM swipes ORDER BY id DESC LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			entry    HistoryEntry
			dir      string
			remoteOK int
			at       string
		)
		if err := rows.Scan(&entry.SessionID, &entry.ProductID, &dir, &entry.Position, &remoteOK, &at, &entry.DurationMS); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entry.Direction = gesture.Direction(dir)
		entry.RemoteOK = remoteOK == 1
		if parsed, err := time.Parse("2006-01-02T15:04:05Z07:00", at); err == nil {
			entry.At = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

func (s *SQLiteSwipeJournal) Close() error {
	return s.db.Close()
}
