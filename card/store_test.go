package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, PlaceholderQuote, cfg.Quote)
	assert.Equal(t, "creativity", cfg.Topic)
	assert.Equal(t, "Gemini", cfg.Signature)
	assert.Equal(t, "English", cfg.Language)
	assert.Equal(t, "inspirational", cfg.Tone)
	assert.Equal(t, "font-playfair-display", cfg.Style.Font)
	assert.Equal(t, AlignCenter, cfg.Style.Alignment)
	assert.Equal(t, "#4F46E5", cfg.Style.ThemeColor)
	assert.Equal(t, "#DBEAFE", cfg.Style.AccentColor)
	assert.True(t, cfg.ShowSignature)
	assert.False(t, cfg.IsGenerating)
	assert.Empty(t, cfg.UserImage)
}

func TestSettersAreIndependent(t *testing.T) {
	s := NewStore(DefaultConfig())

	s.SetTopic("rain")
	s.SetTone("witty")
	s.SetSignature("Ada")
	s.SetAlignment(AlignRight)
	s.SetThemeColor("#000000")
	s.SetAccentColor("#FFFFFF")
	s.SetQuote("hello")

	cfg := s.Config()
	assert.Equal(t, "rain", cfg.Topic)
	assert.Equal(t, "witty", cfg.Tone)
	assert.Equal(t, "Ada", cfg.Signature)
	assert.Equal(t, AlignRight, cfg.Style.Alignment)
	assert.Equal(t, "#000000", cfg.Style.ThemeColor)
	assert.Equal(t, "#FFFFFF", cfg.Style.AccentColor)
	assert.Equal(t, "hello", cfg.Quote)
	assert.Equal(t, DefaultFont, cfg.Style.Font)
	assert.Equal(t, "English", cfg.Language)
}

func TestPunjabiForcesPunjabiFont(t *testing.T) {
	for _, f := range Fonts {
		t.Run(f.Name, func(t *testing.T) {
			s := NewStore(DefaultConfig())
			s.SetFont(f.Value)
			s.SetLanguage(LanguagePunjabi)

			font := s.Config().Style.Font
			assert.True(t, IsPunjabiFont(font), "font %q is not Punjabi-compatible", font)
			if IsPunjabiFont(f.Value) {
				assert.Equal(t, f.Value, font, "an already compatible font is kept")
			} else {
				assert.Equal(t, PunjabiDefaultFont, font)
			}
		})
	}
}

func TestPunjabiCorrectsLaterFontChanges(t *testing.T) {
	s := NewStore(DefaultConfig())
	s.SetLanguage(LanguagePunjabi)

	s.SetFont("font-roboto")
	assert.Equal(t, PunjabiDefaultFont, s.Config().Style.Font)

	s.SetFont("font-raavi")
	assert.Equal(t, "font-raavi", s.Config().Style.Font)
}

func TestLeavingPunjabiKeepsFont(t *testing.T) {
	s := NewStore(DefaultConfig())
	s.SetLanguage(LanguagePunjabi)
	s.SetLanguage(LanguageUrdu)

	assert.Equal(t, PunjabiDefaultFont, s.Config().Style.Font)

	s.SetFont("font-lato")
	assert.Equal(t, "font-lato", s.Config().Style.Font)
}

func TestNewStoreReconciles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = LanguagePunjabi

	s := NewStore(cfg)
	assert.Equal(t, PunjabiDefaultFont, s.Config().Style.Font)
}

func TestGenerationSuccess(t *testing.T) {
	s := NewStore(DefaultConfig())

	require.True(t, s.BeginGeneration())
	assert.True(t, s.Config().IsGenerating)
	assert.Empty(t, s.Config().Quote)

	s.FinishGeneration("  \n Stay curious.\t\n", nil)

	cfg := s.Config()
	assert.False(t, cfg.IsGenerating)
	assert.Equal(t, "Stay curious.", cfg.Quote)
}

func TestGenerationFailure(t *testing.T) {
	s := NewStore(DefaultConfig())

	require.True(t, s.BeginGeneration())
	s.FinishGeneration("ignored", errors.New("boom"))

	cfg := s.Config()
	assert.False(t, cfg.IsGenerating)
	assert.Equal(t, FallbackQuote, cfg.Quote)
}

func TestBeginGenerationWhilePending(t *testing.T) {
	s := NewStore(DefaultConfig())
	require.True(t, s.BeginGeneration())
	s.SetQuote("typed while waiting")

	assert.False(t, s.BeginGeneration())
	assert.Equal(t, "typed while waiting", s.Config().Quote)
	assert.True(t, s.Config().IsGenerating)
}

func TestRemoveUserImage(t *testing.T) {
	s := NewStore(DefaultConfig())
	s.SetUserImage("data:image/png;base64,AAAA")
	require.True(t, s.Config().HasImage())

	s.RemoveUserImage()
	assert.Empty(t, s.Config().UserImage)
	assert.False(t, s.Config().HasImage())
}

func TestVisibility(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserImage = "data:image/png;base64,AAAA"

	assert.True(t, cfg.SignatureVisible())
	assert.True(t, cfg.ImageVisible())

	cfg.ShowSignature = false
	assert.False(t, cfg.SignatureVisible())
	assert.False(t, cfg.ImageVisible())

	cfg.ShowSignature = true
	cfg.Signature = ""
	assert.False(t, cfg.SignatureVisible())
	assert.True(t, cfg.ImageVisible())
}

func TestRequest(t *testing.T) {
	s := NewStore(DefaultConfig())
	s.SetTopic("the sea")
	s.SetTone("hopeful")
	s.SetLanguage(LanguageUrdu)

	assert.Equal(t, Request{Topic: "the sea", Tone: "hopeful", Language: "Urdu"}, s.Request())
}
