package card

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "english",
			req:  Request{Topic: "creativity", Tone: "inspirational", Language: "English"},
			want: `Generate a short, inspirational quote about "creativity". The quote should be in English. Do not include quotation marks or any attributions.`,
		},
		{
			name: "punjabi pins script",
			req:  Request{Topic: "home", Tone: "hopeful", Language: "Punjabi"},
			want: `Generate a short, hopeful quote about "home". The quote should be in Pakistani Punjabi (Shahmukhi script). Do not include quotation marks or any attributions.`,
		},
		{
			name: "urdu",
			req:  Request{Topic: "time", Tone: "serious", Language: "Urdu"},
			want: `Generate a short, serious quote about "time". The quote should be in Urdu. Do not include quotation marks or any attributions.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prompt(tt.req))
		})
	}
}

func TestCatalogs(t *testing.T) {
	assert.Len(t, Fonts, 9)
	for _, v := range PunjabiFonts {
		_, ok := LookupFont(v)
		assert.True(t, ok, "punjabi font %q missing from catalog", v)
	}
	_, ok := LookupFont(DefaultFont)
	assert.True(t, ok)

	assert.Equal(t, []string{"English", "Urdu", "Punjabi"}, OptionValues(Languages))
	assert.Equal(t, "Witty", OptionName(Tones, "witty"))
	assert.Equal(t, "unknown", OptionName(Tones, "unknown"))

	a, ok := ParseAlignment("right")
	assert.True(t, ok)
	assert.Equal(t, AlignRight, a)
	_, ok = ParseAlignment("justify")
	assert.False(t, ok)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t), 0o644))

	dataURL, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ImageMIME(dataURL))

	img, err := DecodeImage(dataURL)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
}

func TestEncodeImageRejectsText(t *testing.T) {
	_, err := EncodeImage([]byte("just some words"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestEncodeImageDecodableTypes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, src))

	dataURL, err := EncodeImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "image/bmp", ImageMIME(dataURL))

	img, err := DecodeImage(dataURL)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}

func TestEncodeImageRejectsUndecodableImages(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)
	_, err := EncodeImage(svg)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDecodeImageInvalid(t *testing.T) {
	for _, in := range []string{"", "not a url", "data:text/plain;base64,AAAA", "data:image/png;base64,%%%"} {
		_, err := DecodeImage(in)
		assert.ErrorIs(t, err, ErrInvalidDataURL, "input %q", in)
	}
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
