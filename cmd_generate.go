package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/clients"
	"quotesmith.codes/tui/internal/archive"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	Topic    string `validate:"required"`
	Tone     string `validate:"required,tone"`
	Language string `validate:"required,language"`
	noSave   bool
}

func (o generateOpts) request() card.Request {
	return card.Request{Topic: o.Topic, Tone: o.Tone, Language: o.Language}
}

func newGenerateCmd() *cobra.Command {
	opts := generateOpts{
		Topic:    card.DefaultTopic,
		Tone:     card.DefaultTone,
		Language: card.DefaultLanguage,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one quote and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newValidator().Struct(opts); err != nil {
				return validationError(err)
			}
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			gen, err := clients.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger, clients.GeminiOptions{})
			if err != nil {
				return err
			}

			var store *archive.Store
			if !opts.noSave {
				store, err = archive.Open(cfg.Storage.DBPath, logger)
				if err != nil {
					logger.Warn("archive unavailable, quote will not be saved", "err", err)
				} else {
					defer store.Close()
				}
			}

			quote, err := generateQuote(ctx, gen, store, opts.request(), cfg.LLM.Timeout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), quote)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Topic, "topic", "t", opts.Topic, "what the quote is about")
	cmd.Flags().StringVar(&opts.Tone, "tone", opts.Tone, "tone: inspirational, witty, philosophical, humorous, hopeful, serious")
	cmd.Flags().StringVarP(&opts.Language, "language", "l", opts.Language, "language: English, Urdu, Punjabi")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not record the quote in the archive")

	return cmd
}

// generateQuote runs one generation and archives the result when store is
// set. Archive failures are logged, not returned.
func generateQuote(ctx context.Context, gen clients.QuoteGenerator, store *archive.Store, req card.Request, timeout time.Duration) (string, error) {
	logger := loggerFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := gen.GenerateQuote(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	quote := strings.TrimSpace(text)
	if store != nil {
		if _, err := store.SaveQuote(ctx, req, quote); err != nil {
			logger.Warn("could not archive quote", "err", err)
		}
	}
	return quote, nil
}
