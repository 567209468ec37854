package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quotesmith.codes/tui/internal/archive"
)

// DocStyle is the shared outer frame style for content areas.
var DocStyle = lipgloss.NewStyle().Padding(1, 2)

// PageInitializer is an optional interface for pages that need async initialization.
type PageInitializer interface {
	InitCmd() tea.Cmd
}

// PageID identifies each page/view in the application.
type PageID int

const (
	ComposePageID PageID = iota
	HistoryPageID
)

// Title holds the display text and color for a page's header.
type Title struct {
	Text  string
	Color lipgloss.Color
}

// NavigationCapturer is an optional interface for pages that need to suppress
// navigation keys (left/right arrows) or global key bindings (quit, help)
// while a field is being edited.
type NavigationCapturer interface {
	CapturesNavigation() bool
	CapturesGlobalKeys() bool
}

// Page is the interface that all pages must implement.
// Each page manages its own state, handles updates, and renders its content.
type Page interface {
	// ID returns the unique identifier for this page.
	ID() PageID

	// Title returns the page's header title configuration.
	Title() Title

	// SetSize is called when the window resizes so the page can adjust its layout.
	SetSize(width, height int)

	// Update handles messages and returns the updated page and any command.
	Update(msg tea.Msg) (Page, tea.Cmd)

	// View renders the page's content (without the outer frame/title).
	View() string

	// KeyMap returns the page's key bindings for the global help component.
	KeyMap() []key.Binding
}

// LoadQuoteMsg asks the compose page to show an archived quote. The app
// switches to the compose page when it sees it.
type LoadQuoteMsg struct {
	Quote archive.Quote
}

// ArchiveChangedMsg marks the history page stale so it reloads on next view.
type ArchiveChangedMsg struct{}
