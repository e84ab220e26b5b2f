package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultID names the section shown when nothing else is selected.
const DefaultID = "overview"

// ErrInvalid is wrapped by every catalog construction error.
var ErrInvalid = errors.New("invalid catalog")

// Section holds a single documentation article.
type Section struct {
	ID    string `yaml:"id" json:"id"`       // stable key, also the CLI argument
	Title string `yaml:"title" json:"title"` // human-readable label, searchable
	Icon  string `yaml:"icon" json:"icon"`   // symbolic icon name, never searched
	Body  string `yaml:"body" json:"body"`   // markdown source
}

// Catalog is an ordered, read-only set of sections indexed by ID.
type Catalog struct {
	sections []Section
	index    map[string]int
	folded   []string // lower-cased flattened body
	version  string
}

// New validates sections and builds a catalog in the given order.
func New(sections ...Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: at least one section is required", ErrInvalid)
	}
	c := &Catalog{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
		folded:   make([]string, len(sections)),
	}
	copy(c.sections, sections)

	var digest strings.Builder
	for i, s := range c.sections {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: section %d: 'id' is required", ErrInvalid, i+1)
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("%w: section %q: 'title' is required", ErrInvalid, s.ID)
		}
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate section id %q", ErrInvalid, s.ID)
		}
		c.index[s.ID] = i
		c.folded[i] = strings.ToLower(Flatten(s.Body))
		fmt.Fprintf(&digest, "%s\x00%s\x00%s\x00%s\x00", s.ID, s.Title, s.Icon, s.Body)
	}
	c.version = uuid.NewSHA1(uuid.NameSpaceOID, []byte(digest.String())).String()
	return c, nil
}

// MustNew is New for static content; it panics on an invalid catalog.
func MustNew(sections ...Section) *Catalog {
	c, err := New(sections...)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every section in display order.
func (c *Catalog) All() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// IDs returns every section identifier in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Len returns the number of sections.
func (c *Catalog) Len() int { return len(c.sections) }

// Get looks up a section by ID.
func (c *Catalog) Get(id string) (Section, bool) {
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// Has reports whether id names a section.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// FoldedText returns the lower-cased flattened body of a section, or "" if
// id is unknown.
func (c *Catalog) FoldedText(id string) string {
	if i, ok := c.index[id]; ok {
		return c.folded[i]
	}
	return ""
}

// Version identifies the catalog content. Two catalogs built from the same
// sections share a version.
func (c *Catalog) Version() string { return c.version }

type catalogFile struct {
	Sections []Section `yaml:"sections"`
}

// LoadFile reads a YAML catalog of the form `sections: [{id, title, icon, body}]`.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return New(f.Sections...)
}

// Encode renders the catalog as YAML in the format LoadFile reads.
func (c *Catalog) Encode() ([]byte, error) {
	return yaml.Marshal(catalogFile{Sections: c.sections})
}
