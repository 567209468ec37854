package main

import (
	"github.com/charmbracelet/lipgloss"

	"quotesmith.codes/tui/pages"
)

// docStyle is the shared outer frame style for content areas.
// The actual width/height are set dynamically in AppModel.View based on the
// current terminal size (tea.WindowSizeMsg).
var docStyle = pages.DocStyle

// chromeHeight is the number of rows taken by the title, paginator, help and
// frame around a page.
var chromeHeight = 6 + docStyle.GetVerticalFrameSize()

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFFFFF")).
	Bold(true).
	Padding(0, 1)

// CLI output styles.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)
