package pages

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"quotesmith.codes/tui/card"
)

func TestCardPreviewDefault(t *testing.T) {
	view := ansi.Strip(CardPreview(card.DefaultConfig(), 60))

	assert.Contains(t, view, card.PlaceholderQuote)
	assert.Contains(t, view, "- Gemini")
	assert.Contains(t, view, openMark)
	assert.Contains(t, view, closeMark)
	assert.NotContains(t, view, ImageGlyph, "no image uploaded")
}

func TestCardPreviewEmptyQuoteShowsPlaceholder(t *testing.T) {
	cfg := card.DefaultConfig()
	cfg.Quote = ""
	assert.Contains(t, ansi.Strip(CardPreview(cfg, 60)), card.PlaceholderQuote)
}

func TestCardPreviewEmptySignature(t *testing.T) {
	cfg := card.DefaultConfig()
	cfg.Signature = ""
	assert.NotContains(t, ansi.Strip(CardPreview(cfg, 60)), "- ")
}

func TestCardPreviewWidthIsClamped(t *testing.T) {
	cfg := card.DefaultConfig()
	cfg.Quote = strings.Repeat("word ", 60)

	for _, width := range []int{5, 40, 500} {
		view := CardPreview(cfg, width)
		got := lipgloss.Width(view)
		assert.GreaterOrEqual(t, got, minPreviewWidth)
		assert.LessOrEqual(t, got, maxPreviewWidth)
	}
}

func TestCardPreviewAlignment(t *testing.T) {
	cfg := card.DefaultConfig()
	cfg.Quote = "hi"

	line := func(a card.Alignment) string {
		cfg.Style.Alignment = a
		for _, l := range strings.Split(ansi.Strip(CardPreview(cfg, 40)), "\n") {
			if strings.Contains(l, "hi") {
				return l
			}
		}
		return ""
	}
	left, center, right := line(card.AlignLeft), line(card.AlignCenter), line(card.AlignRight)
	assert.Less(t, strings.Index(left, "hi"), strings.Index(center, "hi"))
	assert.Less(t, strings.Index(center, "hi"), strings.Index(right, "hi"))
}

func TestPreviewColorFallsBack(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ABCDEF"), previewColor("#abcdef", "#000000"))
	assert.Equal(t, lipgloss.Color("#000000"), previewColor("nope", "#000000"))
}

func TestImageSlot(t *testing.T) {
	cfg := card.DefaultConfig()
	assert.True(t, strings.HasPrefix(ImageSlot(cfg), ImagePlaceholderGlyph))

	cfg.UserImage = "data:image/jpeg;base64,AAAA"
	assert.Equal(t, ImageGlyph+" image/jpeg", ImageSlot(cfg))
}
