package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Order(t *testing.T) {
	want := []string{"overview", "basic", "memory", "examples", "errorHandling", "setup"}
	assert.Equal(t, want, Builtin().IDs())
}

func TestBuiltin_AllFieldsPopulated(t *testing.T) {
	for _, s := range Builtin().All() {
		assert.NotEmpty(t, s.Title, "section %q", s.ID)
		assert.NotEmpty(t, s.Icon, "section %q", s.ID)
		assert.NotEmpty(t, s.Body, "section %q", s.ID)
		assert.NotEmpty(t, Builtin().FoldedText(s.ID), "section %q has no flattened text", s.ID)
	}
}

func TestBuiltin_HasDefault(t *testing.T) {
	assert.True(t, Builtin().Has(DefaultID))
}

func TestBuiltin_ExamplePrograms(t *testing.T) {
	text := Builtin().FoldedText("examples")
	for _, want := range []string{"simple bootloader", "basic shell", "proc kill 2", "goto loop"} {
		assert.Contains(t, text, want)
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "at least one section")
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New(Section{ID: "a", Title: "A"}, Section{ID: "a", Title: "Again"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNew_MissingFields(t *testing.T) {
	_, err := New(Section{Title: "No ID"})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "'id' is required")

	_, err = New(Section{ID: "x", Title: "  "})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "'title' is required")
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Section{{ID: "a", Title: "A"}}
	c, err := New(in...)
	require.NoError(t, err)
	in[0].Title = "changed"

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)

	all := c.All()
	all[0].Title = "changed again"
	got, _ = c.Get("a")
	assert.Equal(t, "A", got.Title)
}

func TestGet_NotFound(t *testing.T) {
	_, ok := Builtin().Get("nonexistent")
	assert.False(t, ok)
	assert.Empty(t, Builtin().FoldedText("nonexistent"))
}

func TestVersion_ContentDerived(t *testing.T) {
	a := MustNew(Section{ID: "a", Title: "A", Body: "x"})
	b := MustNew(Section{ID: "a", Title: "A", Body: "x"})
	c := MustNew(Section{ID: "a", Title: "A", Body: "y"})
	assert.Equal(t, a.Version(), b.Version())
	assert.NotEqual(t, a.Version(), c.Version())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	doc := `sections:
  - id: intro
    title: Introduction
    icon: book
    body: |
      Welcome to **RIS**.
  - id: mem
    title: Memory
    body: "MEM READ address"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "mem"}, c.IDs())
	assert.Equal(t, "welcome to ris.", c.FoldedText("intro"))
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: []\n"), 0644))
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestEncode_ReadsBack(t *testing.T) {
	data, err := Builtin().Encode()
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Builtin().All(), c.All())
	assert.Equal(t, Builtin().Version(), c.Version())
}

func TestSuggest(t *testing.T) {
	c := Builtin()
	assert.Equal(t, "memory", c.Suggest("memry"))
	assert.Equal(t, "setup", c.Suggest("SETUP"))
	assert.Equal(t, "errorHandling", c.Suggest("errorhandlin"))
	assert.Empty(t, c.Suggest("nonexistent"))
	assert.Empty(t, c.Suggest(""))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "⚠", Glyph("alert-triangle"))
	assert.Equal(t, "•", Glyph("no-such-icon"))
}
