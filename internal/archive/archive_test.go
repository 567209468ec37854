package archive

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotesmith.codes/tui/card"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	// Deterministic, strictly increasing timestamps.
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestSaveAndListQuotes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.SaveQuote(ctx, card.Request{Topic: "rain", Tone: "hopeful", Language: "English"}, "Rain feeds roots.")
	require.NoError(t, err)
	second, err := s.SaveQuote(ctx, card.Request{Topic: "tea", Tone: "witty", Language: "Urdu"}, "Chai first.")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	quotes, err := s.ListQuotes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, second.ID, quotes[0].ID, "newest first")
	assert.Equal(t, "Chai first.", quotes[0].Text)
	assert.Equal(t, card.Request{Topic: "tea", Tone: "witty", Language: "Urdu"}, quotes[0].Request())
	assert.True(t, second.CreatedAt.Equal(quotes[0].CreatedAt))

	limited, err := s.ListQuotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestListQuotesEmpty(t *testing.T) {
	s := newTestStore(t)
	quotes, err := s.ListQuotes(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestDeleteQuote(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q, err := s.SaveQuote(ctx, card.Request{Topic: "x", Tone: "serious", Language: "English"}, "X.")
	require.NoError(t, err)

	require.NoError(t, s.DeleteQuote(ctx, q.ID))
	assert.ErrorIs(t, s.DeleteQuote(ctx, q.ID), ErrNotFound)

	quotes, err := s.ListQuotes(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestCountsByTone(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, tone := range []string{"witty", "hopeful", "witty", "serious", "witty", "hopeful"} {
		_, err := s.SaveQuote(ctx, card.Request{Topic: "t", Tone: tone, Language: "English"}, "q")
		require.NoError(t, err)
	}

	counts, err := s.CountsByTone(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ToneCount{
		{Tone: "witty", Count: 3},
		{Tone: "hopeful", Count: 2},
		{Tone: "serious", Count: 1},
	}, counts)
}

func TestRecordExport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.RecordExport(ctx, "first", "/tmp/quote.png")
	require.NoError(t, err)
	e, err := s.RecordExport(ctx, "second", "/tmp/quote (1).png")
	require.NoError(t, err)

	exports, err := s.ListExports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, exports, 2)
	assert.Equal(t, e.ID, exports[0].ID)
	assert.Equal(t, "/tmp/quote (1).png", exports[0].Path)
}

func TestOpenFileIsReusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.db")
	logger := log.New(io.Discard)

	s, err := Open(path, logger)
	require.NoError(t, err)
	_, err = s.SaveQuote(context.Background(), card.Request{Topic: "a", Tone: "witty", Language: "English"}, "kept")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Migrations are idempotent on reopen.
	s, err = Open(path, logger)
	require.NoError(t, err)
	defer s.Close()

	quotes, err := s.ListQuotes(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "kept", quotes[0].Text)
}

func TestParseTimeAcceptsColumnDefault(t *testing.T) {
	got, err := parseTime("2025-03-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}
