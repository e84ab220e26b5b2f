// Package tui is the full-screen documentation browser: a searchable sidebar
// of sections and a scrollable pane showing the selected one.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jorge-barreto/risdocs/internal/logger"
	"github.com/jorge-barreto/risdocs/internal/navigator"
	"github.com/jorge-barreto/risdocs/internal/render"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

const sidebarWidth = 32

type focus int

const (
	focusNav focus = iota
	focusSearch
)

// QueryMsg replaces the search query.
type QueryMsg struct{ Query string }

// SelectMsg selects a section by ID.
type SelectMsg struct{ ID string }

// ToggleThemeMsg flips between light and dark.
type ToggleThemeMsg struct{}

// Options configure a browser Model.
type Options struct {
	Theme   *theme.Flag
	OnTheme func(theme.Mode) error // called after each toggle, e.g. to persist it
	Style   string                 // fixed glamour style; "" follows the theme
}

// Model is the bubbletea model of the browser. It owns its engine.
type Model struct {
	nav     *navigator.Engine
	theme   *theme.Flag
	onTheme func(theme.Mode) error
	style   string

	search   textinput.Model
	content  viewport.Model
	renderer *render.Renderer

	focus  focus
	cursor int
	width  int
	height int
	ready  bool
	status string
	log    *log.Logger
}

// New builds a browser over nav.
func New(nav *navigator.Engine, opts Options) Model {
	flag := opts.Theme
	if flag == nil {
		flag = theme.NewFlag(theme.Light)
	}

	in := textinput.New()
	in.Placeholder = "Search documentation..."
	in.Prompt = "⌕ "
	in.Width = sidebarWidth - 6

	m := Model{
		nav:     nav,
		theme:   flag,
		onTheme: opts.OnTheme,
		style:   opts.Style,
		search:  in,
		content: viewport.New(0, 0),
		log:     logger.New("tui"),
	}
	m.syncCursor(nav.Selection())
	return m
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resize()
		m.refreshContent()
		return m, nil

	case QueryMsg:
		m.search.SetValue(msg.Query)
		m.setQuery(msg.Query)
		return m, nil

	case SelectMsg:
		m.selectID(msg.ID)
		return m, nil

	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.search.Blur()
		m.focus = focusNav
		return m, nil
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.nav.Query() {
		m.setQuery(v)
	}
	return m, cmd
}

func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/", "tab":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "esc":
		if m.nav.Query() != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
		m.status = ""
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if n := len(m.nav.Visible()); n > 0 {
			m.cursor = n - 1
		}
	case "enter", " ", "l", "right":
		visible := m.nav.Visible()
		if len(visible) == 0 {
			m.status = "no section matches the search"
			break
		}
		m.selectID(visible[m.cursor])
	case "t":
		m.toggleTheme()
	case "pgdown", "ctrl+d":
		m.content.HalfViewDown()
	case "pgup", "ctrl+u":
		m.content.HalfViewUp()
	}
	return m, nil
}

func (m *Model) setQuery(q string) {
	var prev string
	if visible := m.nav.Visible(); m.cursor < len(visible) {
		prev = visible[m.cursor]
	}
	m.nav.SetQuery(q)
	m.syncCursor(prev)
}

func (m *Model) selectID(id string) {
	if err := m.nav.SetSelection(id); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.syncCursor(id)
	m.refreshContent()
	m.content.GotoTop()
}

func (m *Model) toggleTheme() {
	mode := m.theme.Toggle()
	m.status = ""
	if m.onTheme != nil {
		if err := m.onTheme(mode); err != nil {
			m.log.Warn("saving theme", "err", err)
			m.status = "could not save theme: " + err.Error()
		}
	}
	m.refreshContent()
}

// syncCursor puts the cursor on id if it is visible, otherwise clamps it.
func (m *Model) syncCursor(id string) {
	visible := m.nav.Visible()
	for i, v := range visible {
		if v == id {
			m.cursor = i
			return
		}
	}
	m.cursor = clamp(m.cursor, 0, len(visible)-1)
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, len(m.nav.Visible())-1)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func (m *Model) resize() {
	m.content.Width = m.contentWidth()
	h := m.height - 3 // title, blank line, status bar
	if h < 1 {
		h = 1
	}
	m.content.Height = h
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 3
	if w < 20 {
		w = 20
	}
	return w
}

// refreshContent re-renders the active section into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	active := m.nav.MustActive()

	style := m.style
	if style == "" {
		style = theme.GlamourStyle(m.theme.Mode())
	}
	width := m.contentWidth() - 4
	if m.renderer == nil || m.renderer.Style() != style || m.renderer.Width() != width {
		r, err := render.New(style, width)
		if err != nil {
			m.log.Error("creating renderer", "err", err)
			m.content.SetContent(active.Body)
			return
		}
		m.renderer = r
	}

	out, err := m.renderer.Body(active)
	if err != nil {
		m.log.Warn("rendering section", "id", active.ID, "err", err)
		out = active.Body
	}
	m.content.SetContent(out)
}
