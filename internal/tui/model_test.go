package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/navigator"
	"github.com/jorge-barreto/risdocs/internal/render"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	nav, err := navigator.New(catalog.Builtin(), catalog.DefaultID)
	require.NoError(t, err)
	if opts.Theme == nil {
		opts.Theme = theme.NewFlag(theme.Light)
	}
	opts.Style = render.PlainStyle
	return send(New(nav, opts), tea.WindowSizeMsg{Width: 110, Height: 32})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m = send(m, keyMsg(k))
	}
	return m
}

func TestView_Initial(t *testing.T) {
	m := newTestModel(t, Options{})
	out := m.View()
	assert.Contains(t, out, "RIS Docs")
	assert.Contains(t, out, "Search documentation...")
	for _, s := range catalog.Builtin().All() {
		assert.Contains(t, out, s.Title)
	}
	assert.Contains(t, out, "RIS is an extended assembly-like language")
	assert.NotContains(t, out, "(hidden by search)")
}

func TestView_BeforeResize(t *testing.T) {
	nav, err := navigator.New(catalog.Builtin(), catalog.DefaultID)
	require.NoError(t, err)
	assert.Equal(t, "loading…", New(nav, Options{}).View())
}

func TestSearch_TypingUpdatesQuery(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "/", "m", "e", "m")

	assert.Equal(t, "mem", m.nav.Query())
	assert.Contains(t, m.nav.Visible(), "memory")
	assert.NotContains(t, m.nav.Visible(), "setup")

	m = press(m, "backspace", "backspace", "backspace")
	assert.Equal(t, "", m.nav.Query())
	assert.Equal(t, catalog.Builtin().IDs(), m.nav.Visible())
}

func TestSearch_KeysAreTextWhileFocused(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "/", "q", "t")
	assert.Equal(t, "qt", m.nav.Query())
	assert.False(t, m.theme.Dark())

	m = press(m, "esc")
	assert.Equal(t, focusNav, m.focus)
	assert.Equal(t, "qt", m.nav.Query())
}

func TestNav_SelectWithCursor(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "down", "down", "enter")

	assert.Equal(t, "memory", m.nav.Selection())
	assert.Contains(t, m.View(), "MEM READ address")
}

func TestSelection_SurvivesFilter(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, SelectMsg{ID: "memory"})
	m = send(m, QueryMsg{Query: "shell"})

	assert.Equal(t, []string{"examples"}, m.nav.Visible())
	assert.Equal(t, "memory", m.nav.Selection())
	assert.Equal(t, 0, m.cursor)

	out := m.View()
	assert.Contains(t, out, "Memory Management")
	assert.Contains(t, out, "MEM WRITE address value")
	assert.Contains(t, out, "(hidden by search)")
	assert.Equal(t, "shell", m.search.Value())

	m = send(m, QueryMsg{Query: "memory"})
	assert.NotContains(t, m.View(), "(hidden by search)")
}

func TestSelect_UnknownKeepsSelection(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, SelectMsg{ID: "setup"})
	m = send(m, SelectMsg{ID: "nonexistent"})

	assert.Equal(t, "setup", m.nav.Selection())
	assert.Contains(t, m.status, `unknown section "nonexistent"`)
	assert.Contains(t, m.View(), "unknown section")
}

func TestNav_EnterWithNoMatches(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, QueryMsg{Query: "zzz"})
	m = press(m, "enter")

	assert.Equal(t, "overview", m.nav.Selection())
	assert.Contains(t, m.View(), "No matching sections")
}

func TestNav_EscClearsQuery(t *testing.T) {
	m := newTestModel(t, Options{})
	m = send(m, QueryMsg{Query: "memory"})
	m = press(m, "esc")

	assert.Equal(t, "", m.nav.Query())
	assert.Equal(t, "", m.search.Value())
}

func TestCursor_FollowsEntryAcrossFilter(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "down", "down", "down") // examples
	m = send(m, QueryMsg{Query: "memory"})

	visible := m.nav.Visible()
	require.Less(t, m.cursor, len(visible))
	assert.Equal(t, "examples", visible[m.cursor])
}

func TestCursor_Clamped(t *testing.T) {
	m := newTestModel(t, Options{})
	m = press(m, "up", "up")
	assert.Equal(t, 0, m.cursor)

	m = press(m, "G")
	assert.Equal(t, catalog.Builtin().Len()-1, m.cursor)
	m = press(m, "down")
	assert.Equal(t, catalog.Builtin().Len()-1, m.cursor)
}

func TestToggleTheme(t *testing.T) {
	var saved []theme.Mode
	m := newTestModel(t, Options{OnTheme: func(mode theme.Mode) error {
		saved = append(saved, mode)
		return nil
	}})

	m = press(m, "t")
	assert.True(t, m.theme.Dark())
	m = send(m, ToggleThemeMsg{})
	assert.False(t, m.theme.Dark())
	assert.Equal(t, []theme.Mode{theme.Dark, theme.Light}, saved)

	assert.Equal(t, "", m.nav.Query())
	assert.Equal(t, "overview", m.nav.Selection())
}

func TestToggleTheme_SaveError(t *testing.T) {
	m := newTestModel(t, Options{OnTheme: func(theme.Mode) error {
		return errors.New("read-only")
	}})
	m = press(m, "t")
	assert.True(t, m.theme.Dark())
	assert.Contains(t, m.status, "read-only")
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, "key %q", k)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}
