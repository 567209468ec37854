package pages

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/render"
)

const (
	openMark  = "“"
	closeMark = "”"

	// ImageGlyph marks an uploaded signature image.
	ImageGlyph = "◉"
	// ImagePlaceholderGlyph fills the image slot when nothing is uploaded.
	ImagePlaceholderGlyph = "◌"

	minPreviewWidth = 24
	maxPreviewWidth = 72
)

var (
	previewQuoteColor     = lipgloss.Color("#1E293B")
	previewSignatureColor = lipgloss.Color("#475569")
	previewPlaceholder    = lipgloss.AdaptiveColor{Light: "250", Dark: "240"}
)

// previewColor returns hex normalized, or fallback when hex is not a colour.
func previewColor(hex, fallback string) lipgloss.Color {
	if c := render.NormalizeColor(hex); c != "" {
		return lipgloss.Color(c)
	}
	return lipgloss.Color(fallback)
}

func previewAlign(a card.Alignment) lipgloss.Position {
	switch a {
	case card.AlignLeft:
		return lipgloss.Left
	case card.AlignRight:
		return lipgloss.Right
	}
	return lipgloss.Center
}

// CardPreview draws cfg as a terminal card at most width cells wide. It
// follows the raster layout: a theme-coloured frame with quote marks, the
// aligned quote, the signature and image badge, and an accent strip.
func CardPreview(cfg card.Config, width int) string {
	width = min(max(width, minPreviewWidth), maxPreviewWidth)

	theme := previewColor(cfg.Style.ThemeColor, card.DefaultThemeColor)
	accent := previewColor(cfg.Style.AccentColor, card.DefaultAccentColor)
	align := previewAlign(cfg.Style.Alignment)

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme).
		Padding(1, 2)
	inner := width - frame.GetHorizontalFrameSize()

	markStyle := lipgloss.NewStyle().Foreground(theme).Bold(true)
	textStyle := lipgloss.NewStyle().Width(inner).Align(align)

	var rows []string

	if cfg.ImageVisible() {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, markStyle.Render("["+ImageGlyph+"]")))
	}
	rows = append(rows, markStyle.Render(openMark))

	if cfg.Quote == "" {
		rows = append(rows, textStyle.Foreground(previewPlaceholder).Italic(true).Render(card.PlaceholderQuote))
	} else {
		rows = append(rows, textStyle.Foreground(previewQuoteColor).Bold(true).Render(cfg.Quote))
	}

	if cfg.SignatureVisible() {
		rows = append(rows, "", textStyle.Foreground(previewSignatureColor).Render("- "+cfg.Signature))
	}
	rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Right, markStyle.Render(closeMark)))

	box := frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	// Accent strip under the bottom-right 40% of the card.
	stripWidth := lipgloss.Width(box) * 2 / 5
	strip := lipgloss.NewStyle().Background(accent).Render(strings.Repeat(" ", stripWidth))
	strip = lipgloss.PlaceHorizontal(lipgloss.Width(box), lipgloss.Right, strip)

	return lipgloss.JoinVertical(lipgloss.Left, box, strip)
}

// ImageSlot renders the control panel's image field: a badge naming the
// image type when one is uploaded, the placeholder glyph otherwise.
func ImageSlot(cfg card.Config) string {
	if !cfg.HasImage() {
		return ImagePlaceholderGlyph + " no image"
	}
	return ImageGlyph + " " + card.ImageMIME(cfg.UserImage)
}
