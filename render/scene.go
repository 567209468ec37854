// Package render turns a card configuration into a positioned scene and
// rasterizes that scene into a PNG card.
package render

import (
	"image/color"
	"math"

	"quotesmith.codes/tui/card"
)

// Card geometry in layout units. A scene is these values times the scale.
const (
	CardSize      = 700.0
	cardRadius    = 16.0
	cardPadding   = 48.0
	frameTopPad   = 32.0
	textPadding   = 32.0
	borderWidth   = 4.0
	markGap       = 64.0 // border gap left for each quote mark
	imageGap      = 52.0 // half-width of the border gap under the image
	imageSize     = 96.0
	imageRadius   = 12.0
	markSize      = 96.0
	markInset     = 8.0
	minTextHeight = 120.0
	accentFrac    = 0.4

	QuoteSize         = 36.0
	QuoteLineHeight   = 1.25
	SignatureSize     = 20.0
	signatureLineBox  = 28.0
	signatureSpacing  = 16.0
	quoteMarkOpen     = "“"
	quoteMarkClose    = "”"
	signaturePrefix   = "- "
)

var (
	cardColor      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	quoteColor     = color.RGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF} // slate-800
	signatureColor = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xFF} // slate-600
)

// Measurer wraps text to a width for a given font and size.
type Measurer interface {
	WrapText(text, font string, bold bool, size, width float64) []string
}

// Rect is a filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Radius     float64
	Color      color.Color
}

// Glyph is a single anchored string, used for the quote marks.
type Glyph struct {
	Text   string
	X, Y   float64
	AX, AY float64
	Size   float64
	Color  color.Color
}

// TextBlock is wrapped text whose first line box starts at Y.
type TextBlock struct {
	Lines      []string
	Font       string
	Size       float64
	Bold       bool
	LineHeight float64 // distance between baselines, absolute
	X, Y       float64
	AX         float64
	Color      color.Color
}

// Height returns the total height of the block's line boxes.
func (b TextBlock) Height() float64 {
	return float64(len(b.Lines)) * b.LineHeight
}

// ImageSlot is where the user image is drawn.
type ImageSlot struct {
	X, Y    float64
	Size    float64
	Radius  float64
	DataURL string
}

// Scene is the positioned content of one card.
type Scene struct {
	Width, Height float64
	Scale         float64

	Background Rect
	Accent     Rect
	Borders    []Rect
	OpenMark   Glyph
	CloseMark  Glyph

	Quote     *TextBlock
	Signature *TextBlock
	Image     *ImageSlot

	// Placeholder is set when there is no quote text to draw.
	Placeholder bool
	Alignment   card.Alignment
}

// Compose lays out cfg on a square card scaled by scale. It is a pure
// function of its inputs; m only answers text wrapping questions.
func Compose(cfg card.Config, m Measurer, scale float64) Scene {
	if scale <= 0 {
		scale = 1
	}
	u := func(v float64) float64 { return v * scale }

	size := u(CardSize)
	theme := ParseColor(cfg.Style.ThemeColor, card.DefaultThemeColor)
	accent := ParseColor(cfg.Style.AccentColor, card.DefaultAccentColor)

	accentSide := size * accentFrac
	accentPos := size - accentSide

	s := Scene{
		Width:      size,
		Height:     size,
		Scale:      scale,
		Background: Rect{W: size, H: size, Radius: u(cardRadius), Color: cardColor},
		Accent:     Rect{X: accentPos, Y: accentPos, W: accentSide, H: accentSide, Color: accent},
		Alignment:  normalizeAlignment(cfg.Style.Alignment),
	}

	x0 := u(cardPadding)
	x1 := size - u(cardPadding)
	frameW := x1 - x0
	cx := x0 + frameW/2
	textW := frameW - 2*u(textPadding)

	// Text first: its height decides the frame height.
	var textH float64
	if cfg.Quote != "" {
		lines := m.WrapText(cfg.Quote, cfg.Style.Font, true, u(QuoteSize), textW)
		s.Quote = &TextBlock{
			Lines:      lines,
			Font:       cfg.Style.Font,
			Size:       u(QuoteSize),
			Bold:       true,
			LineHeight: u(QuoteSize * QuoteLineHeight),
			Color:      quoteColor,
		}
		textH += s.Quote.Height()
	} else {
		s.Placeholder = true
	}
	if cfg.SignatureVisible() {
		s.Signature = &TextBlock{
			Lines:      m.WrapText(signaturePrefix+cfg.Signature, cfg.Style.Font, false, u(SignatureSize), textW),
			Font:       cfg.Style.Font,
			Size:       u(SignatureSize),
			LineHeight: u(signatureLineBox),
			Color:      signatureColor,
		}
		if s.Quote != nil {
			textH += u(signatureSpacing)
		}
		textH += s.Signature.Height()
	}

	boxH := math.Max(u(minTextHeight), textH+2*u(textPadding))
	frameH := u(frameTopPad) + boxH
	y0 := (size - frameH) / 2
	y1 := y0 + frameH

	// Text is vertically centered inside its box.
	ty := y0 + u(frameTopPad) + (boxH-textH)/2
	tx, ax := alignAnchor(s.Alignment, x0+u(textPadding), cx, x1-u(textPadding))
	if s.Quote != nil {
		s.Quote.X, s.Quote.Y, s.Quote.AX = tx, ty, ax
		ty += s.Quote.Height() + u(signatureSpacing)
	}
	if s.Signature != nil {
		s.Signature.X, s.Signature.Y, s.Signature.AX = tx, ty, ax
	}

	bw := u(borderWidth)
	s.Borders = []Rect{
		{X: x0, Y: y0, W: bw, H: frameH, Color: theme},
		{X: x1 - bw, Y: y0, W: bw, H: frameH, Color: theme},
		{X: x0 + u(markGap), Y: y0, W: (cx - u(imageGap)) - (x0 + u(markGap)), H: bw, Color: theme},
		{X: cx + u(imageGap), Y: y0, W: x1 - (cx + u(imageGap)), H: bw, Color: theme},
		{X: x0, Y: y1 - bw, W: (x1 - u(markGap)) - x0, H: bw, Color: theme},
	}

	s.OpenMark = Glyph{Text: quoteMarkOpen, X: x0 + u(markInset), Y: y0, AX: 0, AY: 0.5, Size: u(markSize), Color: theme}
	s.CloseMark = Glyph{Text: quoteMarkClose, X: x1 - u(markInset), Y: y1, AX: 1, AY: 0.5, Size: u(markSize), Color: theme}

	if cfg.ImageVisible() {
		is := u(imageSize)
		s.Image = &ImageSlot{
			X:       cx - is/2,
			Y:       y0 - is/2,
			Size:    is,
			Radius:  u(imageRadius),
			DataURL: cfg.UserImage,
		}
	}

	return s
}

func normalizeAlignment(a card.Alignment) card.Alignment {
	if _, ok := card.ParseAlignment(string(a)); ok {
		return a
	}
	return card.DefaultAlignment
}

// alignAnchor returns the anchor x and horizontal anchor fraction for a.
func alignAnchor(a card.Alignment, left, center, right float64) (float64, float64) {
	switch a {
	case card.AlignLeft:
		return left, 0
	case card.AlignRight:
		return right, 1
	default:
		return center, 0.5
	}
}
