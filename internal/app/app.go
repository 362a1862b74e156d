package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/henri123lemoine/tourguide/internal/assets"
	"github.com/henri123lemoine/tourguide/internal/config"
	"github.com/henri123lemoine/tourguide/internal/content"
	"github.com/henri123lemoine/tourguide/internal/debug"
	"github.com/henri123lemoine/tourguide/internal/exec"
	"github.com/henri123lemoine/tourguide/internal/render"
	"github.com/henri123lemoine/tourguide/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateFilter
	StateHelp
)

// Focus is the pane receiving navigation keys.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusContent
)

// Size used until the first tea.WindowSizeMsg arrives.
const (
	initialWidth  = 80
	initialHeight = 24
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	guide  *content.Guide
	assets assets.Locator

	// Navigation
	items    []content.NavigationItem
	cursor   int
	selected content.Section

	// State
	state  State
	focus  Focus
	err    error
	status string

	// Filter
	filterInput textinput.Model

	// Content
	doc           render.Document
	markdown      string
	viewport      viewport.Model
	renderer      *glamour.TermRenderer
	rendererWidth int
	imageIndex    int

	// UI
	width  int
	height int
	keys   KeyMap

	shouldQuit bool
}

// New creates a new Model showing the configured default section.
func New(cfg *config.Config, guide *content.Guide) Model {
	filterInput := textinput.New()
	filterInput.Placeholder = "filter..."
	filterInput.Prompt = "/ "
	filterInput.CharLimit = 50

	d := ui.Measure(initialWidth, initialHeight, cfg.UI.SidebarWidth)

	m := Model{
		config:      cfg,
		guide:       guide,
		assets:      assets.New(cfg.General.AssetDir),
		items:       content.Navigation(),
		selected:    cfg.InitialSection(),
		state:       StateBrowse,
		focus:       FocusSidebar,
		filterInput: filterInput,
		viewport:    viewport.New(d.ContentWidth, d.ContentHeight),
		width:       initialWidth,
		height:      initialHeight,
		keys:        KeyMapFromConfig(&cfg.Keys),
	}
	m.cursor = m.indexOf(m.selected)
	m.resize()
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(content.AppTitle)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// ctrl+c always quits, even while typing a filter
		if msg.Type == tea.KeyCtrlC {
			m.shouldQuit = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && m.state == StateBrowse {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case OpenedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = "Opened " + msg.Target
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateBrowse:
		return m.handleBrowseKeys(msg)
	case StateFilter:
		return m.handleFilterKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleBrowseKeys handles key presses while browsing sections.
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.focus == FocusContent {
			return m.scroll(tea.KeyMsg{Type: tea.KeyUp})
		}
		m.moveCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		if m.focus == FocusContent {
			return m.scroll(tea.KeyMsg{Type: tea.KeyDown})
		}
		m.moveCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.Home):
		if m.focus == FocusContent {
			m.viewport.GotoTop()
			return m, nil
		}
		m.moveCursor(0)
	case key.Matches(msg, m.keys.End):
		if m.focus == FocusContent {
			m.viewport.GotoBottom()
			return m, nil
		}
		m.moveCursor(len(m.items) - 1)
	case key.Matches(msg, m.keys.Focus):
		if m.focus == FocusSidebar {
			m.focus = FocusContent
		} else {
			m.focus = FocusSidebar
		}
	case key.Matches(msg, m.keys.PageUp):
		return m.scroll(tea.KeyMsg{Type: tea.KeyPgUp})
	case key.Matches(msg, m.keys.PageDown):
		return m.scroll(tea.KeyMsg{Type: tea.KeyPgDown})
	case key.Matches(msg, m.keys.Filter):
		m.state = StateFilter
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Cancel):
		if m.filterInput.Value() != "" {
			m.filterInput.Reset()
			m.applyFilter()
		}
	case key.Matches(msg, m.keys.OpenImage):
		return m.openImage()
	case key.Matches(msg, m.keys.OpenLink):
		return m.openLink()
	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	default:
		if s, ok := sectionForDigit(msg.String()); ok {
			m.filterInput.Reset()
			m.applyFilter()
			m.selectSection(s)
			m.cursor = m.indexOf(s)
			return m, nil
		}
		if m.focus == FocusContent {
			return m.scroll(msg)
		}
	}
	return m, nil
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateBrowse
	return m, nil
}

// handleFilterKeys handles key presses in filter mode.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateBrowse
		m.filterInput.Reset()
		m.filterInput.Blur()
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.state = StateBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// scroll forwards msg to the content viewport.
func (m Model) scroll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openImage opens the next image of the current section. Repeated presses
// cycle through the section's images in document order.
func (m Model) openImage() (tea.Model, tea.Cmd) {
	images := m.doc.Images()
	if len(images) == 0 {
		m.status = "No image in this section"
		return m, nil
	}

	img := images[m.imageIndex%len(images)]
	m.imageIndex++

	path := m.assets.Path(img.File)
	if !m.assets.Exists(img.File) {
		m.err = fmt.Errorf("image not found: %s", path)
		return m, nil
	}

	command := exec.ImageCommand(m.config.Open.ImageCommand)
	return m, openTarget(command, exec.Target{Path: path}, img.File)
}

// openLink opens the first external link of the current section.
func (m Model) openLink() (tea.Model, tea.Cmd) {
	links := m.doc.Links()
	if len(links) == 0 {
		m.status = "No link in this section"
		return m, nil
	}

	link := links[0]
	command := exec.LinkCommand(m.config.Open.LinkCommand)
	return m, openTarget(command, exec.Target{URL: link.URL}, link.URL)
}

// moveCursor moves the sidebar cursor to i, clamped to the visible items,
// and selects the section under it.
func (m *Model) moveCursor(i int) {
	if len(m.items) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.items) {
		i = len(m.items) - 1
	}
	m.cursor = i
	m.selectSection(m.items[i].Key)
}

// selectSection makes s the displayed section.
func (m *Model) selectSection(s content.Section) {
	if s == m.selected {
		return
	}
	debug.Fields("select section", logrus.Fields{"from": m.selected.String(), "to": s.String()})
	m.selected = s
	m.imageIndex = 0
	m.refresh()
}

// indexOf returns the position of s among the visible items, or -1.
func (m Model) indexOf(s content.Section) int {
	for i, item := range m.items {
		if item.Key == s {
			return i
		}
	}
	return -1
}

// navigationSource implements fuzzy.Source for sidebar labels.
type navigationSource []content.NavigationItem

func (n navigationSource) String(i int) string {
	return n[i].Label
}

func (n navigationSource) Len() int {
	return len(n)
}

// applyFilter narrows the sidebar using fuzzy matching. The selection is kept
// when it is still visible; otherwise it moves to the best match.
func (m *Model) applyFilter() {
	all := content.Navigation()
	filter := m.filterInput.Value()
	if filter == "" {
		m.items = all
	} else {
		matches := fuzzy.FindFrom(filter, navigationSource(all))

		m.items = nil
		for _, match := range matches {
			m.items = append(m.items, all[match.Index])
		}
	}

	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	if i := m.indexOf(m.selected); i >= 0 {
		m.cursor = i
		return
	}
	m.moveCursor(0)
}

// refresh re-renders the selected section and scrolls to its top.
func (m *Model) refresh() {
	defer debug.Timed("render " + m.selected.String())()

	m.doc = render.Render(m.selected, m.guide)
	opts := render.MarkdownOptions{}
	if m.config.UI.ShowMissingImages {
		opts.Assets = m.assets
	}
	m.markdown = render.Markdown(m.doc, opts)
	m.restyle()
	m.viewport.GotoTop()
}

// restyle pushes the current Markdown through the terminal renderer.
func (m *Model) restyle() {
	m.viewport.SetContent(ui.StyleMarkdown(m.renderer, m.markdown))
}

// resize fits the viewport to the terminal and rebuilds the Markdown
// renderer when the wrap width changes.
func (m *Model) resize() {
	d := ui.Measure(m.width, m.height, m.config.UI.SidebarWidth)
	m.viewport.Width = d.ContentWidth
	m.viewport.Height = d.ContentHeight

	wrap := d.ContentWidth
	if m.config.UI.WordWrap > 0 && m.config.UI.WordWrap < wrap {
		wrap = m.config.UI.WordWrap
	}
	if m.renderer != nil && wrap == m.rendererWidth {
		return
	}

	r, err := ui.NewMarkdownRenderer(m.config.UI.Theme, wrap)
	if err != nil {
		debug.Warn("markdown renderer: %v", err)
		r = nil
	}
	m.renderer = r
	m.rendererWidth = wrap
	m.restyle()
}

// sectionForDigit maps "1".."7" to the matching navigation entry.
func sectionForDigit(s string) (content.Section, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	sections := content.Sections()
	i := int(s[0] - '1')
	if i >= len(sections) {
		return 0, false
	}
	return sections[i], true
}

// View renders the UI.
func (m Model) View() string {
	return ui.Render(ui.RenderParams{
		State:         int(m.state),
		Focus:         int(m.focus),
		Items:         m.items,
		Selected:      m.selected,
		Content:       m.viewport.View(),
		ScrollPercent: m.viewport.ScrollPercent(),
		Width:         m.width,
		Height:        m.height,
		SidebarWidth:  m.config.UI.SidebarWidth,
		Icons:         m.config.UI.Icons,
		FilterInput:   m.filterInput.View(),
		FilterValue:   m.filterInput.Value(),
		Err:           m.err,
		Status:        m.status,
		HelpSections:  m.keys.HelpSections(),
	})
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Selected returns the section currently displayed.
func (m Model) Selected() content.Section {
	return m.selected
}

// Commands

func openTarget(command string, t exec.Target, label string) tea.Cmd {
	return func() tea.Msg {
		debug.Log("open %s with %q", label, command)
		err := exec.OpenDetached(command, t)
		return OpenedMsg{Target: label, Err: err}
	}
}
