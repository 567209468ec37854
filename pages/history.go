package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/internal/archive"
)

const (
	historyChartHeight = 8
	historyQuoteLimit  = 200
)

// Messages

type historyLoadedMsg struct {
	quotes []archive.Quote
	counts []archive.ToneCount
}

type historyLoadFailedMsg struct {
	err error
}

type historyDeletedMsg struct {
	id string
}

type historyDeleteFailedMsg struct {
	err error
}

// historyKeyMap defines key bindings for the History page.
type historyKeyMap struct {
	Load   key.Binding
	Delete key.Binding
	Reload key.Binding
}

var historyKeys = historyKeyMap{
	Load: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "load into card"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
}

var historyBarStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#4F46E5")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#0EA5E9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
}

// HistoryPage lists archived quotes and how they spread across tones.
type HistoryPage struct {
	store   *archive.Store
	quotes  []archive.Quote
	counts  []archive.ToneCount
	table   table.Model
	chart   barchart.Model
	loading bool
	status  string
	err     error
	width   int
	height  int
}

// NewHistoryPage creates the History page. A nil store shows the archive as
// unavailable.
func NewHistoryPage(store *archive.Store) *HistoryPage {
	p := &HistoryPage{store: store}
	p.buildTable()
	p.buildChart()
	return p
}

func (p *HistoryPage) ID() PageID {
	return HistoryPageID
}

func (p *HistoryPage) Title() Title {
	return Title{
		Text:  "History",
		Color: lipgloss.Color("12"),
	}
}

func (p *HistoryPage) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.buildTable()
	p.buildChart()
}

func (p *HistoryPage) InitCmd() tea.Cmd {
	if p.store == nil {
		return nil
	}
	p.loading = true
	return loadHistoryCmd(p.store)
}

func (p *HistoryPage) KeyMap() []key.Binding {
	if p.store == nil {
		return nil
	}
	if len(p.quotes) == 0 {
		return []key.Binding{historyKeys.Reload}
	}
	return []key.Binding{historyKeys.Load, historyKeys.Delete, historyKeys.Reload}
}

// selected returns the quote under the table cursor.
func (p *HistoryPage) selected() (archive.Quote, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.quotes) {
		return archive.Quote{}, false
	}
	return p.quotes[i], true
}

func (p *HistoryPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		p.loading = false
		p.err = nil
		p.quotes = msg.quotes
		p.counts = msg.counts
		p.buildTable()
		p.buildChart()
		return p, nil

	case historyLoadFailedMsg:
		p.loading = false
		p.err = msg.err
		return p, nil

	case historyDeletedMsg:
		p.status = "Deleted"
		return p, loadHistoryCmd(p.store)

	case historyDeleteFailedMsg:
		p.err = msg.err
		return p, nil

	case tea.KeyMsg:
		if p.store == nil {
			return p, nil
		}
		switch {
		case key.Matches(msg, historyKeys.Reload):
			p.loading = true
			p.status = ""
			return p, loadHistoryCmd(p.store)

		case key.Matches(msg, historyKeys.Load):
			q, ok := p.selected()
			if !ok {
				return p, nil
			}
			return p, func() tea.Msg { return LoadQuoteMsg{Quote: q} }

		case key.Matches(msg, historyKeys.Delete):
			q, ok := p.selected()
			if !ok {
				return p, nil
			}
			return p, deleteQuoteCmd(p.store, q.ID)
		}

		var cmd tea.Cmd
		p.table, cmd = p.table.Update(msg)
		return p, cmd
	}

	return p, nil
}

// buildTable rebuilds the quote table for the current data and size.
func (p *HistoryPage) buildTable() {
	contentWidth := max(p.width-DocStyle.GetHorizontalFrameSize(), 60)
	const (
		whenWidth  = 16
		toneWidth  = 13
		langWidth  = 8
		topicWidth = 14
	)
	// Each column carries one cell of padding on both sides.
	quoteWidth := max(contentWidth-whenWidth-toneWidth-langWidth-topicWidth-10, 20)

	columns := []table.Column{
		{Title: "When", Width: whenWidth},
		{Title: "Tone", Width: toneWidth},
		{Title: "Language", Width: langWidth},
		{Title: "Topic", Width: topicWidth},
		{Title: "Quote", Width: quoteWidth},
	}

	rows := make([]table.Row, 0, len(p.quotes))
	for _, q := range p.quotes {
		text := strings.Join(strings.Fields(q.Text), " ")
		rows = append(rows, table.Row{
			q.CreatedAt.Local().Format("2006-01-02 15:04"),
			card.OptionName(card.Tones, q.Tone),
			q.Language,
			ansi.Truncate(q.Topic, topicWidth, "…"),
			ansi.Truncate(text, quoteWidth, "…"),
		})
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("12")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("12")).
		Bold(false)

	// Account for: chart(8) + headings(4) + status(2).
	fixedContentHeight := historyChartHeight + 6 + DocStyle.GetVerticalFrameSize()
	tableHeight := max(p.height-fixedContentHeight-6, 5)

	cursor := p.table.Cursor()
	p.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
		table.WithStyles(s),
	)
	if cursor > 0 && cursor < len(rows) {
		p.table.SetCursor(cursor)
	}
}

// buildChart rebuilds the quotes-per-tone bar chart.
func (p *HistoryPage) buildChart() {
	chartWidth := max(p.width-DocStyle.GetHorizontalFrameSize()-4, 40)
	p.chart = barchart.New(chartWidth, historyChartHeight)

	data := make([]barchart.BarData, 0, len(p.counts))
	for i, c := range p.counts {
		label := card.OptionName(card.Tones, c.Tone)
		data = append(data, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  label,
				Value: float64(c.Count),
				Style: historyBarStyles[i%len(historyBarStyles)],
			}},
		})
	}
	if len(data) == 0 {
		return
	}
	p.chart.PushAll(data)
	p.chart.Draw()
}

func (p *HistoryPage) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	if p.store == nil {
		b.WriteString(errorStyle.Render("The quote archive is unavailable; check the log for details."))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Quotes per tone"))
	b.WriteString("\n")
	if len(p.counts) > 0 {
		b.WriteString(p.chart.View())
		b.WriteString("\n")
		parts := make([]string, len(p.counts))
		for i, c := range p.counts {
			parts[i] = historyBarStyles[i%len(historyBarStyles)].Render("■") + fmt.Sprintf(" %s %d", card.OptionName(card.Tones, c.Tone), c.Count)
		}
		b.WriteString(strings.Join(parts, "  "))
	} else {
		b.WriteString(infoStyle.Render("Nothing archived yet. Generate a quote on the Compose page."))
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(fmt.Sprintf("Archived quotes (%d)", len(p.quotes))))
	b.WriteString("\n")
	if len(p.quotes) > 0 {
		b.WriteString(p.table.View())
		b.WriteString("\n")
	}

	switch {
	case p.err != nil:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", p.err)))
	case p.loading:
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("Loading..."))
	case p.status != "":
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(p.status))
	}

	return b.String()
}

// Database commands

func loadHistoryCmd(store *archive.Store) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		quotes, err := store.ListQuotes(ctx, historyQuoteLimit)
		if err != nil {
			return historyLoadFailedMsg{err: err}
		}
		counts, err := store.CountsByTone(ctx)
		if err != nil {
			return historyLoadFailedMsg{err: err}
		}
		return historyLoadedMsg{quotes: quotes, counts: counts}
	}
}

func deleteQuoteCmd(store *archive.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if err := store.DeleteQuote(context.Background(), id); err != nil {
			return historyDeleteFailedMsg{err: err}
		}
		return historyDeletedMsg{id: id}
	}
}
