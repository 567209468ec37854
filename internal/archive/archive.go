// Package archive records generated quotes and card exports in sqlite.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/migrations"
)

// ErrNotFound is returned when a row to delete does not exist.
var ErrNotFound = errors.New("archive entry not found")

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Quote is one successful generation.
type Quote struct {
	ID        string
	Topic     string
	Tone      string
	Language  string
	Text      string
	CreatedAt time.Time
}

// Request returns the request that produced q.
func (q Quote) Request() card.Request {
	return card.Request{Topic: q.Topic, Tone: q.Tone, Language: q.Language}
}

// Export is one written PNG.
type Export struct {
	ID        string
	QuoteText string
	Path      string
	CreatedAt time.Time
}

// ToneCount is the number of archived quotes with one tone.
type ToneCount struct {
	Tone  string
	Count int
}

// Store wraps the archive database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open opens (creating if needed) the sqlite database at path and applies
// the embedded migrations. Use ":memory:" for a throwaway archive.
func Open(path string, logger *log.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create directories: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// One connection: sqlite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)

	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	return New(db), nil
}

// Migrate applies the embedded goose migrations.
func Migrate(db *sql.DB, logger *log.Logger) error {
	goose.SetLogger(&gooseLogger{logger})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveQuote records a successful generation.
func (s *Store) SaveQuote(ctx context.Context, req card.Request, text string) (Quote, error) {
	q := Quote{
		ID:        uuid.NewString(),
		Topic:     req.Topic,
		Tone:      req.Tone,
		Language:  req.Language,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (id, topic, tone, language, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, q.ID, q.Topic, q.Tone, q.Language, q.Text, q.CreatedAt.Format(timeLayout))
	if err != nil {
		return Quote{}, fmt.Errorf("save quote: %w", err)
	}
	return q, nil
}

// ListQuotes returns archived quotes, newest first. limit <= 0 returns all.
func (s *Store) ListQuotes(ctx context.Context, limit int) ([]Quote, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic, tone, language, text, created_at
		FROM quotes
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []Quote
	for rows.Next() {
		var q Quote
		var created string
		if err := rows.Scan(&q.ID, &q.Topic, &q.Tone, &q.Language, &q.Text, &created); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		if q.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// DeleteQuote removes one archived quote.
func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountsByTone returns the number of archived quotes per tone, most
// frequent first.
func (s *Store) CountsByTone(ctx context.Context) ([]ToneCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tone, COUNT(*)
		FROM quotes
		GROUP BY tone
		ORDER BY COUNT(*) DESC, tone ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}
	defer rows.Close()

	var counts []ToneCount
	for rows.Next() {
		var c ToneCount
		if err := rows.Scan(&c.Tone, &c.Count); err != nil {
			return nil, fmt.Errorf("scan tone count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}
	return counts, nil
}

// RecordExport records a written PNG.
func (s *Store) RecordExport(ctx context.Context, quoteText, path string) (Export, error) {
	e := Export{
		ID:        uuid.NewString(),
		QuoteText: quoteText,
		Path:      path,
		CreatedAt: s.now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (id, quote_text, path, created_at)
		VALUES (?, ?, ?, ?)
	`, e.ID, e.QuoteText, e.Path, e.CreatedAt.Format(timeLayout))
	if err != nil {
		return Export{}, fmt.Errorf("record export: %w", err)
	}
	return e, nil
}

// ListExports returns recorded exports, newest first. limit <= 0 returns all.
func (s *Store) ListExports(ctx context.Context, limit int) ([]Export, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, quote_text, path, created_at
		FROM exports
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var exports []Export
	for rows.Next() {
		var e Export
		var created string
		if err := rows.Scan(&e.ID, &e.QuoteText, &e.Path, &created); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return exports, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows inserted with the column default carry no fraction.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
		}
	}
	return t, nil
}
