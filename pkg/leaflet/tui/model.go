// Package tui is a terminal reader for a static blog built on bubbletea.
//
// *Model is both a tea.Model and a nav.Surface. Controller work runs on a
// nav.Loop that Update drains, so every surface call happens on the
// bubbletea goroutine.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/leaflet/pkg/leaflet/messages"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/nav"
	"github.com/BrandonKowalski/leaflet/pkg/leaflet/router"
)

// DefaultAccent is used when Options.Accent is empty.
const DefaultAccent = lipgloss.Color("#4FB3BF")

// Options configures a Model.
type Options struct {
	Title    string            // Heading above the post list
	Start    string            // Initial fragment, like "#slug"
	Messages *messages.Catalog // Defaults to messages.Default()
	Accent   lipgloss.Color
	Keys     *KeyMap // Defaults to DefaultKeyMap()
}

// loopReadyMsg reports that the nav loop has work queued.
type loopReadyMsg struct{}

// Model is the terminal reader.
type Model struct {
	loop    *nav.Loop
	history *router.Router
	text    *messages.Catalog
	keys    KeyMap
	styles  Styles
	title   string

	items       []nav.ListItem
	cursor      int
	offset      int
	banner      string
	showingPost bool
	content     nav.Content
	viewport    viewport.Model

	width, height int

	onItem    func(slug string)
	onBack    func()
	onHistory func(slug string)
}

var (
	_ tea.Model   = (*Model)(nil)
	_ nav.Surface = (*Model)(nil)
	_ nav.Events  = (*Model)(nil)
)

// New creates a terminal reader that drains loop.
func New(loop *nav.Loop, opts Options) *Model {
	text := opts.Messages
	if text == nil {
		text = messages.Default()
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	accent := opts.Accent
	if accent == "" {
		accent = DefaultAccent
	}

	m := &Model{
		loop:     loop,
		text:     text,
		keys:     keys,
		styles:   DefaultStyles(accent),
		title:    opts.Title,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}

	m.history = router.New("/", router.ParseFragment(opts.Start)).OnNavigate(func(route router.Route) {
		if m.onHistory != nil {
			m.onHistory(route.Slug)
		}
	})

	return m
}

// History returns the session history the controller should push to.
func (m *Model) History() nav.History {
	return m.history
}

// Router returns the session history with its back/forward controls.
func (m *Model) Router() *router.Router {
	return m.history
}

func (m *Model) OnItemClicked(fn func(slug string))      { m.onItem = fn }
func (m *Model) OnBackClicked(fn func())                 { m.onBack = fn }
func (m *Model) OnHistoryNavigated(fn func(slug string)) { m.onHistory = fn }

func (m *Model) RenderList(items []nav.ListItem) {
	m.items = items
	m.cursor = 0
	m.offset = 0
}

func (m *Model) ShowList() {
	m.showingPost = false
}

func (m *Model) ShowPost() {
	m.showingPost = true
}

func (m *Model) SetPostContent(c nav.Content) {
	m.content = c
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) ScrollToTop() {
	m.viewport.GotoTop()
}

func (m *Model) ShowBanner(message string) {
	m.banner = message
}

// Init starts waiting for controller work.
func (m *Model) Init() tea.Cmd {
	return waitForLoop(m.loop)
}

// waitForLoop returns a tea.Cmd that blocks until the loop has work, then
// delivers a loopReadyMsg so Update can drain it.
func waitForLoop(loop *nav.Loop) tea.Cmd {
	return func() tea.Msg {
		<-loop.Ready()
		return loopReadyMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loopReadyMsg:
		m.loop.Drain()
		return m, waitForLoop(m.loop)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-m.chromeHeight(), 1)
		m.viewport.SetContent(m.renderContent())
		m.scrollTo(m.cursor)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	}

	// Handlers post to the loop; run them now rather than a round trip later.
	m.loop.Drain()

	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.HistoryBack):
		m.history.Back()
		return nil
	case key.Matches(msg, m.keys.HistoryForward):
		m.history.Forward()
		return nil
	}

	if m.showingPost {
		if key.Matches(msg, m.keys.Close) {
			if m.onBack != nil {
				m.onBack()
			}
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.PageUp):
		m.move(-m.visibleItems())
	case key.Matches(msg, m.keys.PageDown):
		m.move(m.visibleItems())
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.items) && m.onItem != nil {
			m.onItem(m.items[m.cursor].Slug)
		}
	}
	return nil
}

// move steps the cursor, clamping at either end.
func (m *Model) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.items)-1)
	m.scrollTo(m.cursor)
}

func (m *Model) scrollTo(index int) {
	visible := m.visibleItems()
	if index < m.offset {
		m.offset = index
	}
	if index >= m.offset+visible {
		m.offset = index - visible + 1
	}
	m.offset = max(min(m.offset, len(m.items)-visible), 0)
}
