// Package render turns section markdown into styled terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/theme"
)

// PlainStyle renders without ANSI escapes, for pipes and tests.
const PlainStyle = "notty"

// Renderer wraps a glamour renderer for one style and wrap width.
type Renderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
}

// New creates a renderer using a glamour standard style ("light", "dark",
// "notty", ...). Widths below 20 are raised to 20.
func New(style string, width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}
	return &Renderer{style: style, width: width, tr: tr}, nil
}

// ForMode creates a renderer in the glamour style matching m.
func ForMode(m theme.Mode, width int) (*Renderer, error) {
	return New(theme.GlamourStyle(m), width)
}

func (r *Renderer) Style() string { return r.style }
func (r *Renderer) Width() int    { return r.width }

// Markdown renders md.
func (r *Renderer) Markdown(md string) (string, error) {
	out, err := r.tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// Section renders a section with its icon and title as a level-one heading.
func (r *Renderer) Section(s catalog.Section) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", catalog.Glyph(s.Icon), s.Title)
	b.WriteString(s.Body)
	return r.Markdown(b.String())
}

// Body renders only the section body.
func (r *Renderer) Body(s catalog.Section) (string, error) {
	if strings.TrimSpace(s.Body) == "" {
		return "", nil
	}
	return r.Markdown(s.Body)
}
