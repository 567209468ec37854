package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"quotesmith.codes/tui/card"
)

// ErrNoFace is returned when no font face could be loaded.
var ErrNoFace = errors.New("no usable font face")

type faceKey struct {
	font string
	bold bool
	size float64
}

// Faces resolves card fonts to font faces. Font files are looked up in Dir,
// then on the system font path; the embedded Go fonts are the last resort.
// Faces guards its caches with a mutex, but a returned face must not be
// used from two goroutines at once.
type Faces struct {
	Dir    string
	logger *log.Logger

	mu     sync.Mutex
	parsed map[string]*truetype.Font
	faces  map[faceKey]font.Face
}

// NewFaces creates a face resolver that searches dir first.
func NewFaces(dir string, logger *log.Logger) *Faces {
	if logger == nil {
		logger = log.Default()
	}
	return &Faces{
		Dir:    dir,
		logger: logger,
		parsed: make(map[string]*truetype.Font),
		faces:  make(map[faceKey]font.Face),
	}
}

// Reset drops cached faces so the next lookup reloads them.
func (f *Faces) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parsed = make(map[string]*truetype.Font)
	f.faces = make(map[faceKey]font.Face)
}

// Face returns the face for a catalog font value at size pixels.
func (f *Faces) Face(value string, bold bool, size float64) (font.Face, error) {
	key := faceKey{font: value, bold: bold, size: size}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	ttf, err := f.resolve(value, bold)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face, nil
}

// resolve finds and parses the font file for value. Callers hold f.mu.
func (f *Faces) resolve(value string, bold bool) (*truetype.Font, error) {
	entry, known := card.LookupFont(value)

	files := entry.Files
	if known && !bold && len(files) > 1 {
		// Regular weight sits last in the candidate list.
		files = []string{files[len(files)-1]}
	}
	for _, name := range files {
		path := f.locate(name)
		if path == "" {
			continue
		}
		ttf, err := f.parseFile(path)
		if err != nil {
			f.logger.Warn("skipping unreadable font", "path", path, "err", err)
			continue
		}
		return ttf, nil
	}

	weight := card.WeightRegular
	if bold {
		weight = card.WeightBold
		if known {
			weight = entry.Weight
		}
	}
	return f.parseEmbedded(weight)
}

// locate returns the path of the font file name, or "" when absent.
func (f *Faces) locate(name string) string {
	if f.Dir != "" {
		path := filepath.Join(f.Dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	if path, err := findfont.Find(name); err == nil {
		return path
	}
	return ""
}

func (f *Faces) parseFile(path string) (*truetype.Font, error) {
	if ttf, ok := f.parsed[path]; ok {
		return ttf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	f.parsed[path] = ttf
	return ttf, nil
}

func (f *Faces) parseEmbedded(weight card.FontWeight) (*truetype.Font, error) {
	name := fmt.Sprintf("embedded:%d", weight)
	if ttf, ok := f.parsed[name]; ok {
		return ttf, nil
	}

	var data []byte
	switch weight {
	case card.WeightBold:
		data = gobold.TTF
	case card.WeightMedium:
		data = gomedium.TTF
	default:
		data = goregular.TTF
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFace, err)
	}
	f.parsed[name] = ttf
	return ttf, nil
}

// Source reports where value would be loaded from: a font file path, or
// "embedded" when only the built-in Go fonts apply.
func (f *Faces) Source(value string, bold bool) string {
	entry, known := card.LookupFont(value)
	files := entry.Files
	if known && !bold && len(files) > 1 {
		files = []string{files[len(files)-1]}
	}
	for _, name := range files {
		if path := f.locate(name); path != "" {
			return path
		}
	}
	return "embedded"
}
