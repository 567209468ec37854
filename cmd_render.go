package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/clients"
	"quotesmith.codes/tui/internal/archive"
	"quotesmith.codes/tui/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	Quote     string
	Topic     string
	Tone      string `validate:"tone"`
	Language  string `validate:"language"`
	Signature string
	Font      string  `validate:"cardfont"`
	Align     string  `validate:"alignment"`
	Theme     string  `validate:"hexcolor"`
	Accent    string  `validate:"hexcolor"`
	Scale     float64 `validate:"gt=0,lte=8"`
	Image     string
	Out       string
	Name      string

	generate    bool
	noSignature bool
	noSave      bool
}

func newRenderCmd() *cobra.Command {
	def := card.DefaultConfig()
	opts := renderOpts{
		Topic:     def.Topic,
		Tone:      def.Tone,
		Language:  def.Language,
		Signature: def.Signature,
		Font:      def.Style.Font,
		Align:     string(def.Style.Alignment),
		Theme:     def.Style.ThemeColor,
		Accent:    def.Style.AccentColor,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a quote card to a PNG file",
		Long: `Render a quote card to a PNG file.

The quote comes from --quote, or from Gemini with --generate. The file is
written to the configured export directory unless --out is given, and an
existing file is never overwritten: "quote.png" becomes "quote (1).png".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("scale") {
				opts.Scale = cfg.Export.PixelRatio
			}
			if err := newValidator().Struct(opts); err != nil {
				return validationError(err)
			}
			if opts.generate && cmd.Flags().Changed("quote") {
				return fmt.Errorf("--quote and --generate are mutually exclusive")
			}

			s := card.NewStore(card.DefaultConfig())
			s.SetTopic(opts.Topic)
			s.SetTone(opts.Tone)
			s.SetFont(opts.Font)
			s.SetLanguage(opts.Language)
			s.SetSignature(opts.Signature)
			s.SetShowSignature(!opts.noSignature)
			s.SetThemeColor(render.NormalizeColor(opts.Theme))
			s.SetAccentColor(render.NormalizeColor(opts.Accent))
			align, _ := card.ParseAlignment(opts.Align)
			s.SetAlignment(align)

			if opts.Image != "" {
				dataURL, err := card.LoadImage(opts.Image)
				if err != nil {
					return err
				}
				s.SetUserImage(dataURL)
			}

			var store *archive.Store
			if !opts.noSave {
				var err error
				store, err = archive.Open(cfg.Storage.DBPath, logger)
				if err != nil {
					logger.Warn("archive unavailable, export will not be recorded", "err", err)
				} else {
					defer store.Close()
				}
			}

			switch {
			case opts.generate:
				gen, err := clients.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger, clients.GeminiOptions{})
				if err != nil {
					return err
				}
				quote, err := generateQuote(ctx, gen, store, s.Request(), cfg.LLM.Timeout)
				if err != nil {
					return err
				}
				s.SetQuote(quote)
			case cmd.Flags().Changed("quote"):
				s.SetQuote(opts.Quote)
			}

			dir := cfg.Export.Dir
			if opts.Out != "" {
				dir = opts.Out
			}
			name := cfg.Export.FileName
			if opts.Name != "" {
				name = opts.Name
			}

			renderer := render.NewRenderer(render.NewFaces(cfg.Fonts.Dir, logger), logger)
			img, err := renderer.Render(s.Config(), render.Options{
				PixelRatio: opts.Scale,
				CacheBust:  cfg.Export.CacheBust,
			})
			if err != nil {
				return fmt.Errorf("render card: %w", err)
			}
			path, err := render.Export(dir, name, img)
			if err != nil {
				return err
			}
			logger.Debug("card exported", "path", path, "scale", opts.Scale)

			if store != nil {
				if _, err := store.RecordExport(ctx, s.Config().Quote, path); err != nil {
					logger.Warn("could not record export", "err", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Quote, "quote", "q", "", "quote text to put on the card")
	f.BoolVarP(&opts.generate, "generate", "g", false, "generate the quote with Gemini first")
	f.StringVarP(&opts.Topic, "topic", "t", opts.Topic, "topic used with --generate")
	f.StringVar(&opts.Tone, "tone", opts.Tone, "tone used with --generate")
	f.StringVarP(&opts.Language, "language", "l", opts.Language, "quote language; Punjabi forces a Punjabi font")
	f.StringVar(&opts.Signature, "signature", opts.Signature, "signature line under the quote")
	f.BoolVar(&opts.noSignature, "no-signature", false, "hide the signature and image")
	f.StringVar(&opts.Font, "font", opts.Font, "font value, see 'quotesmith fonts'")
	f.StringVar(&opts.Align, "align", opts.Align, "quote alignment: left, center, right")
	f.StringVar(&opts.Theme, "theme", opts.Theme, "theme colour as #rrggbb")
	f.StringVar(&opts.Accent, "accent", opts.Accent, "accent colour as #rrggbb")
	f.StringVar(&opts.Image, "image", "", "image file drawn above the signature")
	f.StringVarP(&opts.Out, "out", "o", "", "output directory (default from config)")
	f.StringVar(&opts.Name, "name", "", "file name (default from config)")
	f.Float64Var(&opts.Scale, "scale", render.DefaultPixelRatio, "pixel ratio of the 700x700 card")
	f.BoolVar(&opts.noSave, "no-save", false, "do not record the export in the archive")

	return cmd
}
