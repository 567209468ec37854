package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"quotesmith.codes/tui/clients"
	"quotesmith.codes/tui/internal/archive"
	"quotesmith.codes/tui/internal/config"
	"quotesmith.codes/tui/render"
)

// services holds the long-lived collaborators shared by the TUI and the
// commands.
type services struct {
	cfg       *config.Config
	logger    *log.Logger
	archive   *archive.Store
	generator clients.QuoteGenerator
	renderer  *render.Renderer
}

// openServices builds the services for cfg. A missing API key or an
// unusable archive degrades the affected feature instead of failing.
func openServices(ctx context.Context, cfg *config.Config, logger *log.Logger) *services {
	s := &services{cfg: cfg, logger: logger}

	store, err := archive.Open(cfg.Storage.DBPath, logger)
	if err != nil {
		logger.Warn("archive unavailable", "path", cfg.Storage.DBPath, "err", err)
	} else {
		s.archive = store
	}

	gen, err := clients.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger, clients.GeminiOptions{})
	if err != nil {
		if errors.Is(err, clients.ErrMissingAPIKey) {
			logger.Warn("no API key configured; set GEMINI_API_KEY to enable generation")
		} else {
			logger.Error("could not create gemini client", "err", err)
		}
		s.generator = clients.Unavailable(err)
	} else {
		s.generator = gen
	}

	s.renderer = render.NewRenderer(render.NewFaces(cfg.Fonts.Dir, logger), logger)
	return s
}

// exportOptions converts the export settings for the renderer.
func (s *services) exportOptions() render.Options {
	return render.Options{
		PixelRatio: s.cfg.Export.PixelRatio,
		CacheBust:  s.cfg.Export.CacheBust,
	}
}

func (s *services) Close() {
	if s.archive != nil {
		if err := s.archive.Close(); err != nil {
			s.logger.Warn("closing archive", "err", err)
		}
	}
}
