package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/render"
)

func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List card fonts and where their faces are loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			faces := render.NewFaces(cfg.Fonts.Dir, loggerFromContext(ctx))
			fmt.Fprintln(cmd.OutOrStdout(), fontsTable(faces))
			return nil
		},
	}
}

func fontsTable(faces *render.Faces) string {
	t := styledTable("Value", "Name", "Bold", "Regular", "Punjabi")
	for _, f := range card.Fonts {
		punjabi := ""
		if card.IsPunjabiFont(f.Value) {
			punjabi = "yes"
		}
		t.Row(f.Value, f.Name, faces.Source(f.Value, true), faces.Source(f.Value, false), punjabi)
	}
	return t.Render()
}
