// Package card holds the quote card configuration, its option catalogs and
// the session store the TUI and CLI mutate.
package card

// Alignment is the horizontal alignment of the quote block.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Alignments lists the alignments in the order the control panel cycles them.
var Alignments = []Alignment{AlignLeft, AlignCenter, AlignRight}

// ParseAlignment returns the alignment named s, or false if s is unknown.
func ParseAlignment(s string) (Alignment, bool) {
	for _, a := range Alignments {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Style holds the visual options of a card.
type Style struct {
	Font        string
	Alignment   Alignment
	ThemeColor  string
	AccentColor string
}

// Config is the complete set of user-adjustable fields describing one
// quote card's content and appearance.
type Config struct {
	Quote     string
	Topic     string
	Signature string
	Language  string
	Tone      string
	Style     Style

	// UserImage is a data URL, empty when no image is set.
	UserImage     string
	ShowSignature bool
	IsGenerating  bool
}

const (
	// PlaceholderQuote is the initial quote text and the preview placeholder.
	PlaceholderQuote = "Your generated quote will appear here."

	// FallbackQuote replaces the quote when generation fails.
	FallbackQuote = "Sorry, something went wrong. Please try again."

	DefaultTopic       = "creativity"
	DefaultSignature   = "Gemini"
	DefaultLanguage    = LanguageEnglish
	DefaultTone        = "inspirational"
	DefaultFont        = "font-playfair-display"
	DefaultAlignment   = AlignCenter
	DefaultThemeColor  = "#4F46E5" // indigo-600
	DefaultAccentColor = "#DBEAFE" // blue-100
)

// DefaultConfig returns the configuration a new session starts with.
func DefaultConfig() Config {
	return Config{
		Quote:     PlaceholderQuote,
		Topic:     DefaultTopic,
		Signature: DefaultSignature,
		Language:  DefaultLanguage,
		Tone:      DefaultTone,
		Style: Style{
			Font:        DefaultFont,
			Alignment:   DefaultAlignment,
			ThemeColor:  DefaultThemeColor,
			AccentColor: DefaultAccentColor,
		},
		ShowSignature: true,
	}
}

// HasImage reports whether a user image is set.
func (c Config) HasImage() bool { return c.UserImage != "" }

// SignatureVisible reports whether the signature line is drawn.
func (c Config) SignatureVisible() bool { return c.ShowSignature && c.Signature != "" }

// ImageVisible reports whether the user image is drawn on the card.
func (c Config) ImageVisible() bool { return c.ShowSignature && c.UserImage != "" }
