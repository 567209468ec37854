package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/clients"
	"quotesmith.codes/tui/internal/archive"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	for _, key := range []string{"GEMINI_API_KEY", "API_KEY", "QUOTESMITH_LLM_API_KEY", "QUOTESMITH_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return root
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommandWritesNumberedFiles(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "cards")

	out, err := run(t, "render", "--quote", "Stay curious.", "--out", dir, "--scale", "1", "--no-save")
	require.NoError(t, err)
	first := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "quote.png"), first)
	assert.FileExists(t, first)

	out, err = run(t, "render", "--quote", "Stay curious.", "--out", dir, "--scale", "1", "--no-save")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quote (1).png"), strings.TrimSpace(out))
}

func TestRenderCommandRecordsExport(t *testing.T) {
	root := isolate(t)
	dir := filepath.Join(root, "cards")

	_, err := run(t, "render", "--quote", "Keep going.", "--out", dir, "--name", "mine.png", "--scale", "1")
	require.NoError(t, err)

	out, err := run(t, "history", "--exports")
	require.NoError(t, err)
	assert.Contains(t, out, "mine.png")
	assert.Contains(t, out, "Keep going.")
}

func TestRenderCommandValidatesFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad colour", []string{"--theme", "blue"}, "--theme"},
		{"bad font", []string{"--font", "comic-sans"}, "not a valid cardfont"},
		{"bad alignment", []string{"--align", "justify"}, "--align"},
		{"bad scale", []string{"--scale", "0"}, "out of range"},
		{"bad tone", []string{"--tone", "grumpy"}, "not a valid tone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := isolate(t)
			args := append([]string{"render", "--no-save", "--out", filepath.Join(root, "cards")}, tt.args...)
			_, err := run(t, args...)
			assert.ErrorContains(t, err, tt.want)
			assert.NoFileExists(t, filepath.Join(root, "cards", "quote.png"))
		})
	}
}

func TestRenderCommandRejectsQuoteWithGenerate(t *testing.T) {
	isolate(t)
	_, err := run(t, "render", "--quote", "x", "--generate", "--no-save")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestGenerateCommandNeedsAPIKey(t *testing.T) {
	isolate(t)
	_, err := run(t, "generate", "--no-save")
	assert.ErrorIs(t, err, clients.ErrMissingAPIKey)
}

func TestGenerateCommandValidatesLanguage(t *testing.T) {
	isolate(t)
	_, err := run(t, "generate", "--language", "Klingon")
	assert.ErrorContains(t, err, "not a valid language")
}

func TestHistoryCommandEmpty(t *testing.T) {
	isolate(t)
	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No quotes archived yet.")
}

func TestFontsCommandListsCatalog(t *testing.T) {
	isolate(t)
	out, err := run(t, "fonts")
	require.NoError(t, err)
	for _, want := range []string{"font-roboto", "Playfair Display", "font-raavi"} {
		assert.Contains(t, out, want)
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, logLevel("error", true))
	assert.Equal(t, log.WarnLevel, logLevel("warn", false))
	assert.Equal(t, log.InfoLevel, logLevel("nonsense", false))
}

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, log.Default(), loggerFromContext(ctx))
	assert.Equal(t, "gemini-2.5-flash", configFromContext(ctx).LLM.Model)

	l := log.New(&bytes.Buffer{})
	assert.Same(t, l, loggerFromContext(withLogger(ctx, l)))
}

func TestGenerateQuoteTrimsAndArchives(t *testing.T) {
	store, err := archive.Open(":memory:", log.New(io.Discard))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	req := card.Request{Topic: "tides", Tone: "hopeful", Language: card.LanguageEnglish}

	quote, err := generateQuote(ctx, fixedGenerator{text: "  The sea returns.\n"}, store, req, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "The sea returns.", quote)

	_, err = generateQuote(ctx, clients.Unavailable(errors.New("offline")), store, req, time.Second)
	assert.ErrorContains(t, err, "generation failed")

	saved, err := store.ListQuotes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "The sea returns.", saved[0].Text)
	assert.Equal(t, "tides", saved[0].Topic)
}
