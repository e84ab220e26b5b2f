package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

type styles struct {
	sidebar lipgloss.Style
	brand   lipgloss.Style
	item    lipgloss.Style
	active  lipgloss.Style
	cursor  lipgloss.Style
	muted   lipgloss.Style
	main    lipgloss.Style
	title   lipgloss.Style
	status  lipgloss.Style
	warning lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		sidebar: lipgloss.NewStyle().
			Background(p.Surface).
			Foreground(p.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Border).
			Padding(0, 1),
		brand:   lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		item:    lipgloss.NewStyle().Foreground(p.Subtext),
		active:  lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Background(p.Selected),
		cursor:  lipgloss.NewStyle().Foreground(p.Accent),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		main:    lipgloss.NewStyle().Background(p.Background).Foreground(p.Text).PaddingLeft(1),
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		status:  lipgloss.NewStyle().Foreground(p.Muted),
		warning: lipgloss.NewStyle().Foreground(p.Warning),
	}
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	st := newStyles(theme.For(m.theme.Mode()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(st), m.viewMain(st))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus(st))
}

func (m Model) viewSidebar(st styles) string {
	inner := sidebarWidth - 3
	var b strings.Builder

	brand := st.brand.Render("RIS Docs")
	toggle := st.muted.Render(theme.ToggleGlyph(m.theme.Mode()))
	gap := inner - lipgloss.Width(brand) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(brand + strings.Repeat(" ", gap) + toggle + "\n\n")

	p := theme.For(m.theme.Mode())
	in := m.search
	in.PromptStyle = lipgloss.NewStyle().Foreground(p.Muted)
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Muted)
	in.TextStyle = lipgloss.NewStyle().Foreground(p.Text)
	b.WriteString(in.View() + "\n\n")

	cat := m.nav.Catalog()
	visible := m.nav.Visible()
	if len(visible) == 0 {
		b.WriteString(st.muted.Render("No matching sections"))
	}
	for i, id := range visible {
		s, ok := cat.Get(id)
		if !ok {
			continue
		}
		marker := "  "
		if m.focus == focusNav && i == m.cursor {
			marker = st.cursor.Render("› ")
		}
		entry := catalog.Glyph(s.Icon) + " " + s.Title
		if id == m.nav.Selection() {
			entry = st.active.Render(entry)
		} else {
			entry = st.item.Render(entry)
		}
		b.WriteString(marker + entry + "\n")
	}

	return st.sidebar.Width(sidebarWidth).Height(m.height - 1).Render(b.String())
}

func (m Model) viewMain(st styles) string {
	active := m.nav.MustActive()
	title := st.title.Render(catalog.Glyph(active.Icon) + "  " + active.Title)
	if !m.nav.IsVisible(active.ID) {
		title += "  " + st.muted.Render("(hidden by search)")
	}
	return st.main.Width(m.contentWidth()).Height(m.height - 1).
		Render(title + "\n\n" + m.content.View())
}

func (m Model) viewStatus(st styles) string {
	if m.status != "" {
		return st.warning.Render("⚠ " + m.status)
	}
	if m.focus == focusSearch {
		return st.status.Render("type to filter • enter/esc: back to list • ↑/↓: move")
	}
	return st.status.Render("/: search • ↑/↓: move • enter: open • t: theme • pgup/pgdn: scroll • esc: clear • q: quit")
}
