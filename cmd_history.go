package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/internal/archive"
)

const historyQuoteWidth = 60

func newHistoryCmd() *cobra.Command {
	var (
		limit   int
		exports bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived quotes or exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			store, err := archive.Open(cfg.Storage.DBPath, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if exports {
				list, err := store.ListExports(ctx, limit)
				if err != nil {
					return err
				}
				if len(list) == 0 {
					fmt.Fprintln(out, dimStyle.Render("No exports yet."))
					return nil
				}
				fmt.Fprintln(out, exportsTable(list))
				return nil
			}

			quotes, err := store.ListQuotes(ctx, limit)
			if err != nil {
				return err
			}
			if len(quotes) == 0 {
				fmt.Fprintln(out, dimStyle.Render("No quotes archived yet."))
				return nil
			}
			counts, err := store.CountsByTone(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, quotesTable(quotes))
			fmt.Fprintln(out, toneSummary(counts))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&exports, "exports", false, "list exported PNG files instead of quotes")

	return cmd
}

func styledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

func quotesTable(quotes []archive.Quote) string {
	t := styledTable("When", "Tone", "Language", "Topic", "Quote")
	for _, q := range quotes {
		text := strings.Join(strings.Fields(q.Text), " ")
		t.Row(
			q.CreatedAt.Local().Format("2006-01-02 15:04"),
			card.OptionName(card.Tones, q.Tone),
			q.Language,
			ansi.Truncate(q.Topic, 20, "…"),
			ansi.Truncate(text, historyQuoteWidth, "…"),
		)
	}
	return t.Render()
}

func exportsTable(list []archive.Export) string {
	t := styledTable("When", "File", "Quote")
	for _, e := range list {
		t.Row(
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Path,
			ansi.Truncate(strings.Join(strings.Fields(e.QuoteText), " "), 40, "…"),
		)
	}
	return t.Render()
}

// toneSummary renders "Tone n" pairs, most used first.
func toneSummary(counts []archive.ToneCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = card.OptionName(card.Tones, c.Tone) + " " + strconv.Itoa(c.Count)
	}
	return dimStyle.Render(strings.Join(parts, " · "))
}
