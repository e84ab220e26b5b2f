package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/risdocs/internal/theme"
)

func TestLoad_NoExistingPrefs(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.Mode(); ok {
		t.Fatalf("Mode set on empty prefs: %q", p.Theme)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	p := &Prefs{}
	p.SetMode(theme.Dark)
	if err := p.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := loaded.Mode()
	if !ok || m != theme.Dark {
		t.Fatalf("Mode = %v, %v; want dark, true", m, ok)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for corrupt prefs")
	}
}

func TestMode_Unknown(t *testing.T) {
	p := &Prefs{Theme: "sepia"}
	if _, ok := p.Mode(); ok {
		t.Fatal("unknown theme should not be reported as set")
	}
}
