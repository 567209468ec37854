package pages

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/internal/archive"
)

func newTestHistory(t *testing.T, texts map[string]string) (*HistoryPage, *archive.Store) {
	t.Helper()
	store, err := archive.Open(":memory:", log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for tone, text := range texts {
		_, err := store.SaveQuote(context.Background(), card.Request{Topic: "t", Tone: tone, Language: "English"}, text)
		require.NoError(t, err)
	}

	p := NewHistoryPage(store)
	p.SetSize(120, 40)
	return p, store
}

// initPage runs InitCmd and feeds the result back.
func initPage(p *HistoryPage) {
	for _, msg := range collect(p.InitCmd()) {
		p.Update(msg)
	}
}

func TestHistoryLoads(t *testing.T) {
	p, _ := newTestHistory(t, map[string]string{"witty": "Ha.", "serious": "Hm."})
	initPage(p)

	assert.Len(t, p.quotes, 2)
	assert.Len(t, p.counts, 2)
	view := ansi.Strip(p.View())
	assert.Contains(t, view, "Archived quotes (2)")
	assert.Contains(t, view, "Witty 1")
	assert.Len(t, p.KeyMap(), 3)
}

func TestHistoryEmpty(t *testing.T) {
	p, _ := newTestHistory(t, nil)
	initPage(p)

	assert.Contains(t, ansi.Strip(p.View()), "Nothing archived yet")
	assert.Len(t, p.KeyMap(), 1)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestHistoryEnterLoadsQuote(t *testing.T) {
	p, _ := newTestHistory(t, map[string]string{"hopeful": "Morning comes."})
	initPage(p)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg := find[LoadQuoteMsg](t, collect(cmd))
	assert.Equal(t, "Morning comes.", msg.Quote.Text)
	assert.Equal(t, "hopeful", msg.Quote.Tone)
}

func TestHistoryDelete(t *testing.T) {
	p, store := newTestHistory(t, map[string]string{"witty": "Gone soon."})
	initPage(p)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	_, cmd = p.Update(find[historyDeletedMsg](t, collect(cmd)))
	p.Update(find[historyLoadedMsg](t, collect(cmd)))

	assert.Empty(t, p.quotes)
	quotes, err := store.ListQuotes(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestHistoryReload(t *testing.T) {
	p, store := newTestHistory(t, nil)
	initPage(p)

	_, err := store.SaveQuote(context.Background(), card.Request{Topic: "new", Tone: "witty", Language: "Urdu"}, "Fresh.")
	require.NoError(t, err)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.True(t, p.loading)
	p.Update(find[historyLoadedMsg](t, collect(cmd)))
	assert.False(t, p.loading)
	assert.Len(t, p.quotes, 1)
}

func TestHistoryWithoutArchive(t *testing.T) {
	p := NewHistoryPage(nil)
	assert.Nil(t, p.InitCmd())
	assert.Contains(t, p.View(), "unavailable")
	assert.Empty(t, p.KeyMap())
}
