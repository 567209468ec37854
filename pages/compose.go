package pages

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"quotesmith.codes/tui/card"
	"quotesmith.codes/tui/clients"
	"quotesmith.codes/tui/internal/archive"
	"quotesmith.codes/tui/render"
)

// DefaultGenerationTimeout bounds one generation request.
const DefaultGenerationTimeout = 60 * time.Second

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// composeMode represents the current input mode.
type composeMode int

const (
	composeModeBrowse    composeMode = iota // field navigation, page nav works
	composeModeEditField                    // editing a text field
	composeModeEditQuote                    // editing the quote text
	composeModePickImage                    // choosing an image file
)

// composeField is one row of the control panel.
type composeField int

const (
	fieldTopic composeField = iota
	fieldLanguage
	fieldTone
	fieldSignature
	fieldFont
	fieldAlignment
	fieldThemeColor
	fieldAccentColor
	fieldShowSignature
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTopic:         "Topic",
	fieldLanguage:      "Language",
	fieldTone:          "Tone",
	fieldSignature:     "Signature",
	fieldFont:          "Font",
	fieldAlignment:     "Alignment",
	fieldThemeColor:    "Theme colour",
	fieldAccentColor:   "Accent colour",
	fieldShowSignature: "Show signature",
	fieldImage:         "Image",
}

func (f composeField) isText() bool {
	switch f {
	case fieldTopic, fieldSignature, fieldThemeColor, fieldAccentColor:
		return true
	}
	return false
}

func (f composeField) isChoice() bool {
	switch f {
	case fieldLanguage, fieldTone, fieldFont, fieldAlignment:
		return true
	}
	return false
}

// Message types for compose operations.
type quoteGeneratedMsg struct {
	req  card.Request
	text string
}

type quoteGenerationFailedMsg struct {
	req card.Request
	err error
}

type quoteArchiveFailedMsg struct {
	err error
}

type cardExportedMsg struct {
	path string
}

type cardExportFailedMsg struct {
	err error
}

type imageLoadedMsg struct {
	path    string
	dataURL string
}

type imageLoadFailedMsg struct {
	path string
	err  error
}

type clipboardCopiedMsg struct{}

type clipboardFailedMsg struct {
	err error
}

// composeKeyMap defines key bindings for the Compose page.
type composeKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Prev        key.Binding
	Next        key.Binding
	Enter       key.Binding
	Generate    key.Binding
	EditQuote   key.Binding
	Upload      key.Binding
	RemoveImage key.Binding
	Export      key.Binding
	Copy        key.Binding
	Done        key.Binding
	Cancel      key.Binding
}

var composeKeys = composeKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Prev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous option"),
	),
	Next: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next option"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "edit/toggle"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate"),
	),
	EditQuote: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit quote"),
	),
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "image"),
	),
	RemoveImage: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove image"),
	),
	Export: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "export png"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy quote"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

var quoteEditKeys = []key.Binding{
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "save quote")),
}

// ComposeOptions wires the compose page to its collaborators.
type ComposeOptions struct {
	Generator clients.QuoteGenerator
	Renderer  *render.Renderer
	// Archive is optional; nil disables archiving.
	Archive *archive.Store
	Logger  *log.Logger

	Timeout   time.Duration
	ExportDir string
	FileName  string
	Export    render.Options
	ImageDir  string
}

// ComposePage is the card editor: control panel, live preview and export.
type ComposePage struct {
	opts  ComposeOptions
	store *card.Store

	mode    composeMode
	focus   composeField
	input   textinput.Model
	quote   textarea.Model
	picker  filepicker.Model
	spinner spinner.Model

	exporting bool
	status    string
	statusErr bool

	width  int
	height int
}

// NewComposePage creates the compose page around a fresh card configuration.
func NewComposePage(opts ComposeOptions) *ComposePage {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Generator == nil {
		opts.Generator = clients.Unavailable(clients.ErrMissingAPIKey)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultGenerationTimeout
	}
	if opts.ImageDir == "" {
		opts.ImageDir = "."
	}

	ti := textinput.New()
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = card.PlaceholderQuote
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(card.DefaultThemeColor))

	return &ComposePage{
		opts:    opts,
		store:   card.NewStore(card.DefaultConfig()),
		mode:    composeModeBrowse,
		input:   ti,
		quote:   ta,
		spinner: sp,
	}
}

// Config returns the current card configuration.
func (p *ComposePage) Config() card.Config {
	return p.store.Config()
}

func (p *ComposePage) ID() PageID {
	return ComposePageID
}

func (p *ComposePage) Title() Title {
	return Title{
		Text:  "Compose",
		Color: lipgloss.Color(card.DefaultThemeColor),
	}
}

func (p *ComposePage) SetSize(width, height int) {
	p.width = width
	p.height = height

	contentWidth := max(width-DocStyle.GetHorizontalFrameSize()-4, 30)
	p.quote.SetWidth(min(contentWidth, 80))
	p.quote.SetHeight(5)
	p.input.Width = 30
}

func (p *ComposePage) CapturesNavigation() bool {
	return p.mode != composeModeBrowse
}

func (p *ComposePage) CapturesGlobalKeys() bool {
	return p.mode == composeModeEditField || p.mode == composeModeEditQuote
}

func (p *ComposePage) KeyMap() []key.Binding {
	switch p.mode {
	case composeModeEditField:
		return []key.Binding{composeKeys.Done, composeKeys.Cancel}
	case composeModeEditQuote:
		return quoteEditKeys
	case composeModePickImage:
		return []key.Binding{composeKeys.Cancel}
	}
	bindings := []key.Binding{composeKeys.Up, composeKeys.Down}
	if p.focus.isChoice() {
		bindings = append(bindings, composeKeys.Prev, composeKeys.Next)
	} else {
		bindings = append(bindings, composeKeys.Enter)
	}
	return append(bindings,
		composeKeys.Generate,
		composeKeys.EditQuote,
		composeKeys.Upload,
		composeKeys.RemoveImage,
		composeKeys.Export,
		composeKeys.Copy,
	)
}

func (p *ComposePage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case quoteGeneratedMsg:
		p.store.FinishGeneration(msg.text, nil)
		p.setStatus("Quote generated", false)
		return p, saveQuoteCmd(p.opts.Archive, msg.req, p.store.Config().Quote)

	case quoteGenerationFailedMsg:
		p.store.FinishGeneration("", msg.err)
		p.opts.Logger.Error("quote generation failed", "topic", msg.req.Topic, "tone", msg.req.Tone, "err", msg.err)
		return p, nil

	case quoteArchiveFailedMsg:
		p.opts.Logger.Warn("could not archive quote", "err", msg.err)
		p.setStatus(fmt.Sprintf("archive failed: %v", msg.err), true)
		return p, nil

	case cardExportedMsg:
		p.exporting = false
		p.opts.Logger.Info("card exported", "path", msg.path)
		p.setStatus("Saved "+msg.path, false)
		return p, func() tea.Msg { return ArchiveChangedMsg{} }

	case cardExportFailedMsg:
		p.exporting = false
		p.opts.Logger.Error("card export failed", "err", msg.err)
		return p, nil

	case imageLoadedMsg:
		p.store.SetUserImage(msg.dataURL)
		p.setStatus("Image loaded", false)
		return p, nil

	case imageLoadFailedMsg:
		p.opts.Logger.Warn("image rejected", "path", msg.path, "err", msg.err)
		p.setStatus(fmt.Sprintf("image rejected: %v", msg.err), true)
		return p, nil

	case clipboardCopiedMsg:
		p.setStatus("Quote copied", false)
		return p, nil

	case clipboardFailedMsg:
		p.opts.Logger.Warn("clipboard write failed", "err", msg.err)
		p.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		return p, nil

	case LoadQuoteMsg:
		if p.store.Config().IsGenerating {
			p.setStatus("A quote is still generating; load it again when it finishes", true)
			return p, nil
		}
		p.loadArchived(msg.Quote)
		return p, nil

	case spinner.TickMsg:
		if !p.store.Config().IsGenerating {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKeyMsg(msg)
	}

	// Forward everything else (directory listings, cursor blinks) to the
	// active widget.
	var cmd tea.Cmd
	switch p.mode {
	case composeModePickImage:
		p.picker, cmd = p.picker.Update(msg)
	case composeModeEditField:
		p.input, cmd = p.input.Update(msg)
	case composeModeEditQuote:
		p.quote, cmd = p.quote.Update(msg)
	}
	return p, cmd
}

func (p *ComposePage) handleKeyMsg(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch p.mode {
	case composeModeEditField:
		return p.handleEditField(msg)
	case composeModeEditQuote:
		return p.handleEditQuote(msg)
	case composeModePickImage:
		return p.handlePickImage(msg)
	}
	return p.handleBrowse(msg)
}

func (p *ComposePage) handleBrowse(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, composeKeys.Up):
		p.focus = (p.focus + fieldCount - 1) % fieldCount
		return p, nil

	case key.Matches(msg, composeKeys.Down):
		p.focus = (p.focus + 1) % fieldCount
		return p, nil

	case key.Matches(msg, composeKeys.Prev):
		p.cycle(-1)
		return p, nil

	case key.Matches(msg, composeKeys.Next):
		p.cycle(1)
		return p, nil

	case key.Matches(msg, composeKeys.Enter):
		return p.activateField()

	case key.Matches(msg, composeKeys.Generate):
		return p, p.startGeneration()

	case key.Matches(msg, composeKeys.EditQuote):
		if p.store.Config().IsGenerating {
			return p, nil
		}
		p.mode = composeModeEditQuote
		p.quote.SetValue(p.store.Config().Quote)
		p.quote.Focus()
		return p, textarea.Blink

	case key.Matches(msg, composeKeys.Upload):
		return p, p.openPicker()

	case key.Matches(msg, composeKeys.RemoveImage):
		p.store.RemoveUserImage()
		return p, nil

	case key.Matches(msg, composeKeys.Export):
		return p, p.startExport()

	case key.Matches(msg, composeKeys.Copy):
		return p, copyQuoteCmd(p.store.Config().Quote)
	}
	return p, nil
}

func (p *ComposePage) activateField() (Page, tea.Cmd) {
	switch {
	case p.focus.isText():
		p.mode = composeModeEditField
		p.input.SetValue(p.fieldText(p.focus))
		p.input.CursorEnd()
		p.input.Focus()
		return p, textinput.Blink
	case p.focus.isChoice():
		p.cycle(1)
	case p.focus == fieldShowSignature:
		p.store.SetShowSignature(!p.store.Config().ShowSignature)
	case p.focus == fieldImage:
		return p, p.openPicker()
	}
	return p, nil
}

func (p *ComposePage) handleEditField(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, composeKeys.Cancel):
		p.mode = composeModeBrowse
		p.input.Blur()
		return p, nil
	case key.Matches(msg, composeKeys.Done):
		p.commitField(p.focus, p.input.Value())
		p.mode = composeModeBrowse
		p.input.Blur()
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ComposePage) handleEditQuote(msg tea.KeyMsg) (Page, tea.Cmd) {
	if msg.String() == "esc" {
		p.store.SetQuote(p.quote.Value())
		p.quote.Blur()
		p.mode = composeModeBrowse
		return p, nil
	}
	var cmd tea.Cmd
	p.quote, cmd = p.quote.Update(msg)
	return p, cmd
}

func (p *ComposePage) handlePickImage(msg tea.KeyMsg) (Page, tea.Cmd) {
	if key.Matches(msg, composeKeys.Cancel) {
		p.mode = composeModeBrowse
		return p, nil
	}

	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)

	if ok, path := p.picker.DidSelectFile(msg); ok {
		p.mode = composeModeBrowse
		return p, loadImageCmd(path)
	}
	if ok, path := p.picker.DidSelectDisabledFile(msg); ok {
		p.setStatus("not an image: "+path, true)
	}
	return p, cmd
}

func (p *ComposePage) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = card.ImageExtensions
	fp.CurrentDirectory = p.opts.ImageDir
	fp.SetHeight(max(p.height-14, 5))
	p.picker = fp
	p.mode = composeModePickImage
	return p.picker.Init()
}

// startGeneration begins a generation unless one is already pending.
func (p *ComposePage) startGeneration() tea.Cmd {
	if !p.store.BeginGeneration() {
		return nil
	}
	p.status = ""
	req := p.store.Request()
	p.opts.Logger.Debug("generating quote", "topic", req.Topic, "tone", req.Tone, "language", req.Language)
	return tea.Batch(
		p.spinner.Tick,
		generateQuoteCmd(p.opts.Generator, req, p.opts.Timeout),
	)
}

func (p *ComposePage) startExport() tea.Cmd {
	if p.exporting {
		return nil
	}
	if p.opts.Renderer == nil {
		p.opts.Logger.Error("card export failed", "err", "no renderer configured")
		return nil
	}
	p.exporting = true
	return exportCardCmd(p.opts, p.store.Config())
}

func (p *ComposePage) cycle(delta int) {
	cfg := p.store.Config()
	switch p.focus {
	case fieldLanguage:
		p.store.SetLanguage(cycleValue(card.OptionValues(card.Languages), cfg.Language, delta))
	case fieldTone:
		p.store.SetTone(cycleValue(card.OptionValues(card.Tones), cfg.Tone, delta))
	case fieldFont:
		choices := card.FontValues()
		if cfg.Language == card.LanguagePunjabi {
			choices = card.PunjabiFonts
		}
		p.store.SetFont(cycleValue(choices, cfg.Style.Font, delta))
	case fieldAlignment:
		values := make([]string, len(card.Alignments))
		for i, a := range card.Alignments {
			values[i] = string(a)
		}
		p.store.SetAlignment(card.Alignment(cycleValue(values, string(cfg.Style.Alignment), delta)))
	}
}

// cycleValue returns the value delta steps from current, wrapping around.
// An unknown current value starts from the first entry.
func cycleValue(values []string, current string, delta int) string {
	if len(values) == 0 {
		return current
	}
	idx := slices.Index(values, current)
	if idx < 0 {
		return values[0]
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

func (p *ComposePage) fieldText(f composeField) string {
	cfg := p.store.Config()
	switch f {
	case fieldTopic:
		return cfg.Topic
	case fieldSignature:
		return cfg.Signature
	case fieldThemeColor:
		return cfg.Style.ThemeColor
	case fieldAccentColor:
		return cfg.Style.AccentColor
	}
	return ""
}

func (p *ComposePage) commitField(f composeField, value string) {
	switch f {
	case fieldTopic:
		p.store.SetTopic(value)
	case fieldSignature:
		p.store.SetSignature(value)
	case fieldThemeColor, fieldAccentColor:
		hex := render.NormalizeColor(strings.TrimSpace(value))
		if hex == "" {
			p.setStatus(fmt.Sprintf("not a hex colour: %q", value), true)
			return
		}
		if f == fieldThemeColor {
			p.store.SetThemeColor(hex)
		} else {
			p.store.SetAccentColor(hex)
		}
	}
}

// loadArchived shows an archived quote together with the inputs that
// produced it.
func (p *ComposePage) loadArchived(q archive.Quote) {
	p.store.SetTopic(q.Topic)
	p.store.SetTone(q.Tone)
	p.store.SetLanguage(q.Language)
	p.store.SetQuote(q.Text)
	p.setStatus("Loaded quote from history", false)
}

func (p *ComposePage) setStatus(s string, isErr bool) {
	p.status = s
	p.statusErr = isErr
}

var (
	composeLabelStyle   = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("#888888"))
	composeFocusStyle   = lipgloss.NewStyle().Bold(true)
	composeCursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(card.DefaultThemeColor))
	composeStatusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	composeErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	composeSectionStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

func (p *ComposePage) fieldValue(f composeField) string {
	cfg := p.store.Config()
	switch f {
	case fieldLanguage:
		return card.OptionName(card.Languages, cfg.Language)
	case fieldTone:
		return card.OptionName(card.Tones, cfg.Tone)
	case fieldFont:
		if font, ok := card.LookupFont(cfg.Style.Font); ok {
			return font.Name
		}
		return cfg.Style.Font
	case fieldAlignment:
		return string(cfg.Style.Alignment)
	case fieldThemeColor, fieldAccentColor:
		hex := p.fieldText(f)
		swatch := lipgloss.NewStyle().Foreground(previewColor(hex, card.DefaultThemeColor)).Render("██")
		return swatch + " " + hex
	case fieldShowSignature:
		if cfg.ShowSignature {
			return "[x]"
		}
		return "[ ]"
	case fieldImage:
		return ImageSlot(cfg)
	}
	return p.fieldText(f)
}

func (p *ComposePage) renderControls() string {
	var b strings.Builder
	b.WriteString(composeSectionStyle.Render("Card"))
	b.WriteString("\n")
	for f := composeField(0); f < fieldCount; f++ {
		cursor := "  "
		if f == p.focus {
			cursor = composeCursorStyle.Render("› ")
		}
		value := p.fieldValue(f)
		if f == p.focus && p.mode == composeModeEditField {
			value = p.input.View()
		}
		if f.isChoice() {
			value = "‹ " + value + " ›"
		}
		label := fieldLabels[f]
		if f == p.focus {
			label = composeFocusStyle.Render(label)
		}
		b.WriteString(cursor + composeLabelStyle.Render(label) + value + "\n")
	}
	return b.String()
}

func (p *ComposePage) renderStatus() string {
	cfg := p.store.Config()
	switch {
	case cfg.IsGenerating:
		return p.spinner.View() + " Generating..."
	case p.exporting:
		return composeStatusStyle.Render("Exporting...")
	case p.status != "" && p.statusErr:
		return composeErrorStyle.Render(p.status)
	case p.status != "":
		return composeStatusStyle.Render(p.status)
	}
	return ""
}

func (p *ComposePage) View() string {
	contentWidth := max(p.width-DocStyle.GetHorizontalFrameSize(), 40)

	if p.mode == composeModePickImage {
		var b strings.Builder
		b.WriteString(composeSectionStyle.Render("Choose an image"))
		b.WriteString("\n")
		b.WriteString(p.picker.View())
		if p.status != "" {
			b.WriteString("\n" + p.renderStatus())
		}
		return b.String()
	}

	controls := p.renderControls()
	controlsWidth := lipgloss.Width(controls) + 4

	var body string
	if contentWidth-controlsWidth >= minPreviewWidth+4 {
		preview := CardPreview(p.store.Config(), contentWidth-controlsWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(controlsWidth).Render(controls),
			preview,
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, controls, CardPreview(p.store.Config(), contentWidth))
	}

	var b strings.Builder
	b.WriteString(body)
	if p.mode == composeModeEditQuote {
		b.WriteString("\n\n")
		b.WriteString(composeSectionStyle.Render("Quote"))
		b.WriteString("\n")
		b.WriteString(p.quote.View())
	}
	if status := p.renderStatus(); status != "" {
		b.WriteString("\n\n")
		b.WriteString(status)
	}
	return b.String()
}

// Commands

func generateQuoteCmd(gen clients.QuoteGenerator, req card.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		text, err := gen.GenerateQuote(ctx, req)
		if err != nil {
			return quoteGenerationFailedMsg{req: req, err: err}
		}
		return quoteGeneratedMsg{req: req, text: text}
	}
}

func saveQuoteCmd(store *archive.Store, req card.Request, text string) tea.Cmd {
	if store == nil || text == "" {
		return nil
	}
	return func() tea.Msg {
		if _, err := store.SaveQuote(context.Background(), req, text); err != nil {
			return quoteArchiveFailedMsg{err: err}
		}
		return ArchiveChangedMsg{}
	}
}

func exportCardCmd(opts ComposeOptions, cfg card.Config) tea.Cmd {
	return func() tea.Msg {
		img, err := opts.Renderer.Render(cfg, opts.Export)
		if err != nil {
			return cardExportFailedMsg{err: err}
		}
		path, err := render.Export(opts.ExportDir, opts.FileName, img)
		if err != nil {
			return cardExportFailedMsg{err: err}
		}
		if opts.Archive != nil {
			if _, err := opts.Archive.RecordExport(context.Background(), cfg.Quote, path); err != nil {
				opts.Logger.Warn("could not record export", "path", path, "err", err)
			}
		}
		return cardExportedMsg{path: path}
	}
}

func loadImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		dataURL, err := card.LoadImage(path)
		if err != nil {
			return imageLoadFailedMsg{path: path, err: err}
		}
		return imageLoadedMsg{path: path, dataURL: dataURL}
	}
}

func copyQuoteCmd(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return clipboardFailedMsg{err: err}
		}
		return clipboardCopiedMsg{}
	}
}
