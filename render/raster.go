package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"quotesmith.codes/tui/card"
)

// DefaultPixelRatio matches a 2x device-pixel-ratio export.
const DefaultPixelRatio = 2.0

// Options controls a raster export.
type Options struct {
	// PixelRatio scales the 700x700 card; 2 yields 1400x1400 pixels.
	PixelRatio float64

	// CacheBust reloads font faces instead of reusing cached ones.
	CacheBust bool
}

// Renderer rasterizes cards. Render and Rasterize run one at a time: the
// cached font faces keep per-face glyph state.
type Renderer struct {
	mu     sync.Mutex
	faces  *Faces
	logger *log.Logger
}

// NewRenderer creates a renderer resolving fonts through faces.
func NewRenderer(faces *Faces, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	if faces == nil {
		faces = NewFaces("", logger)
	}
	return &Renderer{faces: faces, logger: logger}
}

// WrapText implements Measurer using the resolved font faces.
func (r *Renderer) WrapText(text, font string, bold bool, size, width float64) []string {
	face, err := r.faces.Face(font, bold, size)
	if err != nil {
		r.logger.Warn("cannot measure text", "font", font, "err", err)
		return []string{text}
	}
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return dc.WordWrap(text, width)
}

// Scene composes cfg at the given pixel ratio.
func (r *Renderer) Scene(cfg card.Config, pixelRatio float64) Scene {
	return Compose(cfg, r, pixelRatio)
}

// Render rasterizes cfg.
func (r *Renderer) Render(cfg card.Config, opts Options) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.PixelRatio <= 0 {
		opts.PixelRatio = DefaultPixelRatio
	}
	if opts.CacheBust {
		r.faces.Reset()
	}

	start := time.Now()
	scene := r.Scene(cfg, opts.PixelRatio)
	img, err := r.rasterize(scene)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("card rendered", "size", img.Bounds().Dx(), "elapsed", time.Since(start).Round(time.Millisecond))
	return img, nil
}

// EncodePNG renders cfg and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, cfg card.Config, opts Options) error {
	img, err := r.Render(cfg, opts)
	if err != nil {
		return err
	}
	return encodePNG(w, img)
}

// Rasterize draws a composed scene.
func (r *Renderer) Rasterize(s Scene) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rasterize(s)
}

func (r *Renderer) rasterize(s Scene) (image.Image, error) {
	w := int(math.Round(s.Width))
	h := int(math.Round(s.Height))
	dc := gg.NewContext(w, h)

	// Card body; the accent shape is clipped to its rounded corners.
	bg := s.Background
	dc.DrawRoundedRectangle(bg.X, bg.Y, bg.W, bg.H, bg.Radius)
	dc.SetColor(bg.Color)
	dc.Fill()

	dc.DrawRoundedRectangle(bg.X, bg.Y, bg.W, bg.H, bg.Radius)
	dc.Clip()
	fillRect(dc, s.Accent)
	dc.ResetClip()

	for _, b := range s.Borders {
		fillRect(dc, b)
	}

	if err := r.drawGlyph(dc, s.OpenMark); err != nil {
		return nil, err
	}
	if err := r.drawGlyph(dc, s.CloseMark); err != nil {
		return nil, err
	}

	if s.Image != nil {
		if err := drawImage(dc, *s.Image); err != nil {
			return nil, err
		}
	}

	for _, block := range []*TextBlock{s.Quote, s.Signature} {
		if block == nil {
			continue
		}
		if err := r.drawText(dc, *block); err != nil {
			return nil, err
		}
	}

	return dc.Image(), nil
}

func fillRect(dc *gg.Context, rect Rect) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if rect.Radius > 0 {
		dc.DrawRoundedRectangle(rect.X, rect.Y, rect.W, rect.H, rect.Radius)
	} else {
		dc.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	}
	dc.SetColor(rect.Color)
	dc.Fill()
}

func (r *Renderer) drawGlyph(dc *gg.Context, g Glyph) error {
	face, err := r.faces.Face("", false, g.Size)
	if err != nil {
		return fmt.Errorf("quote mark face: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetColor(g.Color)
	dc.DrawStringAnchored(g.Text, g.X, g.Y, g.AX, g.AY)
	return nil
}

func (r *Renderer) drawText(dc *gg.Context, b TextBlock) error {
	face, err := r.faces.Face(b.Font, b.Bold, b.Size)
	if err != nil {
		return fmt.Errorf("text face: %w", err)
	}
	dc.SetFontFace(face)
	dc.SetColor(b.Color)
	for i, line := range b.Lines {
		y := b.Y + float64(i)*b.LineHeight + b.LineHeight/2
		dc.DrawStringAnchored(line, b.X, y, b.AX, 0.5)
	}
	return nil
}

func drawImage(dc *gg.Context, slot ImageSlot) error {
	src, err := card.DecodeImage(slot.DataURL)
	if err != nil {
		return fmt.Errorf("user image: %w", err)
	}
	size := int(math.Round(slot.Size))
	fitted := imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)

	dc.Push()
	dc.DrawRoundedRectangle(slot.X, slot.Y, slot.Size, slot.Size, slot.Radius)
	dc.Clip()
	dc.DrawImage(fitted, int(math.Round(slot.X)), int(math.Round(slot.Y)))
	dc.ResetClip()
	dc.Pop()
	return nil
}
