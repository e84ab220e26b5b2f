// Package navigator holds the search and selection state of a documentation
// browser: the current query, the section visibility it implies, and the
// selected section. Query and selection are independent; filtering never
// changes what is selected.
package navigator

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/logger"
)

// Engine is owned by a single event loop and is not safe for concurrent use.
// Wrap it in a Session when several goroutines share it.
type Engine struct {
	cat       *catalog.Catalog
	query     string
	selection string
	memo      *visibility
	log       *log.Logger
}

// visibility caches Match results for one (query, catalog version) pair.
type visibility struct {
	query   string
	version string
	ids     []string
}

// View is one consistent read of engine state for a renderer.
type View struct {
	Query   string
	Visible []string
	Active  catalog.Section
}

// New creates an engine over cat with defaultID selected and an empty query.
func New(cat *catalog.Catalog, defaultID string) (*Engine, error) {
	e := &Engine{cat: cat, log: logger.New("navigator")}
	if !cat.Has(defaultID) {
		return nil, e.notFound(defaultID)
	}
	e.selection = defaultID
	return e, nil
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Query returns the current query verbatim.
func (e *Engine) Query() string { return e.query }

// SetQuery replaces the query. Any string is accepted as is.
func (e *Engine) SetQuery(q string) {
	e.query = q
	e.memo = nil
	e.log.Debug("query set", "query", q)
}

// Visible returns, in catalog order, the IDs of sections matching the query.
func (e *Engine) Visible() []string {
	if e.memo == nil || e.memo.query != e.query || e.memo.version != e.cat.Version() {
		e.memo = &visibility{
			query:   e.query,
			version: e.cat.Version(),
			ids:     Match(e.cat, e.query),
		}
	}
	out := make([]string, len(e.memo.ids))
	copy(out, e.memo.ids)
	return out
}

// IsVisible reports whether id is in the current visibility set.
func (e *Engine) IsVisible(id string) bool {
	for _, v := range e.Visible() {
		if v == id {
			return true
		}
	}
	return false
}

// Selection returns the selected section ID.
func (e *Engine) Selection() string { return e.selection }

// SetSelection selects id. Sections hidden by the current query may be
// selected. On error the previous selection is kept.
func (e *Engine) SetSelection(id string) error {
	if !e.cat.Has(id) {
		err := e.notFound(id)
		e.log.Warn("selection rejected", "id", id, "err", err)
		return err
	}
	e.selection = id
	e.log.Debug("selection set", "id", id)
	return nil
}

// Active returns the selected section.
func (e *Engine) Active() (catalog.Section, error) {
	s, ok := e.cat.Get(e.selection)
	if !ok {
		err := &SelectionError{Kind: Inconsistent, ID: e.selection}
		e.log.Error("selection invariant broken", "id", e.selection)
		return catalog.Section{}, err
	}
	return s, nil
}

// MustActive is Active for callers that treat a broken selection as fatal.
func (e *Engine) MustActive() catalog.Section {
	s, err := e.Active()
	if err != nil {
		panic(err)
	}
	return s
}

// Snapshot returns the query, visibility and active section together.
func (e *Engine) Snapshot() (View, error) {
	active, err := e.Active()
	if err != nil {
		return View{}, err
	}
	return View{Query: e.query, Visible: e.Visible(), Active: active}, nil
}

func (e *Engine) notFound(id string) *SelectionError {
	return &SelectionError{Kind: NotFound, ID: id, Suggestion: e.cat.Suggest(id)}
}

// Match returns, in catalog order, the IDs of sections whose title or
// flattened body contains query, ignoring case. The empty query matches
// every section.
func Match(cat *catalog.Catalog, query string) []string {
	q := strings.ToLower(query)
	ids := make([]string, 0, cat.Len())
	for _, s := range cat.All() {
		if strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(cat.FoldedText(s.ID), q) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
