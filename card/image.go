package card

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrNotImage is returned when an uploaded file is not an image.
	ErrNotImage = errors.New("file is not an image")

	// ErrInvalidDataURL is returned when a data URL cannot be decoded.
	ErrInvalidDataURL = errors.New("invalid image data URL")
)

// ImageExtensions are the file extensions offered by the image picker.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tif", ".tiff"}

// decodableTypes are the MIME types with a registered image decoder.
var decodableTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp", "image/bmp", "image/tiff"}

// LoadImage reads the image file at path and returns it as a data URL.
func LoadImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return EncodeImage(data)
}

// EncodeImage returns data as a base64 data URL after checking it is an
// image the renderer can decode.
func EncodeImage(data []byte) (string, error) {
	mime := mimetype.Detect(data)
	// Detect may report parameters, e.g. "text/plain; charset=utf-8".
	typ, _, _ := strings.Cut(mime.String(), ";")
	if !slices.Contains(decodableTypes, typ) {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mime.String())
	}
	return "data:" + typ + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeImage decodes a data URL produced by EncodeImage.
func DecodeImage(dataURL string) (image.Image, error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageMIME returns the MIME type recorded in a data URL, or "" if there is none.
func ImageMIME(dataURL string) string {
	header, _, ok := strings.Cut(dataURL, ",")
	if !ok {
		return ""
	}
	header = strings.TrimPrefix(header, "data:")
	mime, _, _ := strings.Cut(header, ";")
	return mime
}
