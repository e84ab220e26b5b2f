package ux

import (
	"fmt"
	"io"

	"github.com/jorge-barreto/risdocs/internal/catalog"
)

// RenderList prints the navigation list: visible sections in catalog order,
// with the active one marked. A hidden active section is noted below.
func RenderList(w io.Writer, cat *catalog.Catalog, visible []string, active, query string) {
	fmt.Fprintf(w, "\n%sRIS Docs%s", Bold, Reset)
	if query != "" {
		fmt.Fprintf(w, "  %ssearch:%s %q  %s(%d of %d)%s", Dim, Reset, query, Dim, len(visible), cat.Len(), Reset)
	}
	fmt.Fprint(w, "\n\n")

	if len(visible) == 0 {
		fmt.Fprintf(w, "  %s(no sections match)%s\n", Dim, Reset)
	}
	shown := false
	for _, id := range visible {
		s, ok := cat.Get(id)
		if !ok {
			continue
		}
		marker := "  "
		title := s.Title
		if id == active {
			marker = fmt.Sprintf("%s→%s ", Blue, Reset)
			title = Bold + Blue + s.Title + Reset
			shown = true
		}
		fmt.Fprintf(w, "  %s%s  %-14s %s\n", marker, catalog.Glyph(s.Icon), id, title)
	}
	if !shown {
		if s, ok := cat.Get(active); ok {
			fmt.Fprintf(w, "\n  %sactive:%s %s %s(hidden by search)%s\n", Dim, Reset, s.Title, Dim, Reset)
		}
	}
	fmt.Fprintln(w)
}

// RenderIDs prints one section ID per line.
func RenderIDs(w io.Writer, ids []string) {
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}
