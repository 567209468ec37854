package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quotesmith.codes/tui/pages"
)

// globalKeys are available on every page unless it captures global keys.
var globalKeys = struct {
	Pages key.Binding
	Help  key.Binding
	Quit  key.Binding
}{
	Pages: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "pages"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// AppModel is the root Bubble Tea model that manages pages and global state.
type AppModel struct {
	pages       []pages.Page
	paginator   paginator.Model
	help        help.Model
	showAllHelp bool
	initialized map[pages.PageID]bool
	width       int
	height      int
}

// NewAppModel creates and initializes the application model with all pages.
func NewAppModel(svc *services) AppModel {
	compose := pages.NewComposePage(pages.ComposeOptions{
		Generator: svc.generator,
		Renderer:  svc.renderer,
		Archive:   svc.archive,
		Logger:    svc.logger,
		Timeout:   svc.cfg.LLM.Timeout,
		ExportDir: svc.cfg.Export.Dir,
		FileName:  svc.cfg.Export.FileName,
		Export:    svc.exportOptions(),
	})
	return newAppModel(compose, pages.NewHistoryPage(svc.archive))
}

func newAppModel(pp ...pages.Page) AppModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}).Render("•")
	p.SetTotalPages(len(pp))

	return AppModel{
		pages:       pp,
		paginator:   p,
		help:        help.New(),
		initialized: make(map[pages.PageID]bool),
	}
}

// activePage returns the currently active page.
func (m AppModel) activePage() pages.Page {
	idx := m.paginator.Page
	if idx < 0 || idx >= len(m.pages) {
		panic("invalid page index")
	}
	return m.pages[idx]
}

// pageIndex returns the position of the page with id, or -1.
func (m AppModel) pageIndex(id pages.PageID) int {
	for i, p := range m.pages {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

// renderTitle renders the header title for the active page.
func (m AppModel) renderTitle() string {
	t := m.activePage().Title()
	return titleStyle.
		Background(t.Color).
		Render(t.Text)
}

func (m AppModel) capturesGlobalKeys() bool {
	if nc, ok := m.activePage().(pages.NavigationCapturer); ok {
		return nc.CapturesGlobalKeys()
	}
	return false
}

func (m AppModel) capturesNavigation() bool {
	if nc, ok := m.activePage().(pages.NavigationCapturer); ok {
		return nc.CapturesNavigation()
	}
	return false
}

// initPage returns the page's init command the first time it is shown.
func (m AppModel) initPage(page pages.Page) tea.Cmd {
	if pi, ok := page.(pages.PageInitializer); ok && !m.initialized[page.ID()] {
		m.initialized[page.ID()] = true
		return pi.InitCmd()
	}
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initPage(m.activePage())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Notify all pages of the new size
		for _, page := range m.pages {
			page.SetSize(m.width, m.height-chromeHeight)
		}
		return m, nil

	case pages.ArchiveChangedMsg:
		// Reset the History page's initialized state so it refetches on next view
		delete(m.initialized, pages.HistoryPageID)
		if m.activePage().ID() == pages.HistoryPageID {
			return m, m.initPage(m.activePage())
		}
		return m, nil

	case pages.LoadQuoteMsg:
		idx := m.pageIndex(pages.ComposePageID)
		if idx < 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.pages[idx], cmd = m.pages[idx].Update(msg)
		m.paginator.Page = idx
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.capturesGlobalKeys() {
			switch {
			case key.Matches(msg, globalKeys.Quit):
				return m, tea.Quit
			case key.Matches(msg, globalKeys.Help):
				m.showAllHelp = !m.showAllHelp
				return m, nil
			}
		}
	}

	// Async results belong to the page that started them, which may no
	// longer be active.
	if _, ok := msg.(tea.KeyMsg); !ok {
		return m, m.broadcast(msg)
	}

	// Track previous page to detect navigation
	prevPage := m.paginator.Page

	// Update paginator for navigation (left/right keys) unless page captures them
	var paginatorCmd tea.Cmd
	if !m.capturesNavigation() {
		m.paginator, paginatorCmd = m.paginator.Update(msg)
	}

	// Update only the active page
	idx := m.paginator.Page
	var pageCmd tea.Cmd
	if idx == prevPage {
		m.pages[idx], pageCmd = m.pages[idx].Update(msg)
	}

	cmds := []tea.Cmd{paginatorCmd, pageCmd}

	// If page changed, initialize the new page if it hasn't been initialized yet
	if idx != prevPage {
		cmds = append(cmds, m.initPage(m.pages[idx]))
	}

	return m, tea.Batch(cmds...)
}

// broadcast delivers msg to every page.
func (m AppModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.pages))
	for i := range m.pages {
		m.pages[i], cmds[i] = m.pages[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// helpView renders the active page's bindings plus the global ones.
func (m AppModel) helpView() string {
	bindings := m.activePage().KeyMap()
	if !m.capturesNavigation() {
		bindings = append(bindings, globalKeys.Pages)
	}
	if !m.capturesGlobalKeys() {
		bindings = append(bindings, globalKeys.Help, globalKeys.Quit)
	}
	if m.showAllHelp {
		return m.help.FullHelpView([][]key.Binding{bindings})
	}
	return m.help.ShortHelpView(bindings)
}

func (m AppModel) View() string {
	var b strings.Builder

	// View title
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	// View contents from active page
	b.WriteString(m.activePage().View())
	b.WriteString("\n\n")

	// View tab indicator (paginator) and help
	paginatorView := m.paginator.View()
	helpView := m.helpView()
	if m.width > 0 {
		contentWidth := max(m.width-docStyle.GetHorizontalFrameSize(), 0)
		if contentWidth > 0 {
			paginatorView = lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, paginatorView)
		}
	}
	b.WriteString(paginatorView)
	b.WriteString("\n")
	b.WriteString(helpView)

	// Size the outer container to exactly match the terminal window.
	s := docStyle
	if m.width > 0 {
		s = s.Width(m.width)
	}
	if m.height > 0 {
		s = s.Height(m.height)
	}
	return s.Render(b.String())
}
