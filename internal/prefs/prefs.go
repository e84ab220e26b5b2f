// Package prefs persists the display preference between runs. Query and
// selection are deliberately not stored.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/risdocs/internal/theme"
)

type Prefs struct {
	Theme string `json:"theme,omitempty"` // "light", "dark", or "" for unset
}

// DefaultPath returns <UserConfigDir>/risdocs/prefs.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "risdocs", "prefs.json"), nil
}

// Load reads preferences from path. Returns empty preferences if not found.
func Load(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Prefs{}, nil
		}
		return nil, err
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &p, nil
}

// Save writes preferences to path, creating its directory.
func (p *Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating prefs directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0644)
}

// Mode returns the stored theme, if any.
func (p *Prefs) Mode() (theme.Mode, bool) {
	switch p.Theme {
	case "light":
		return theme.Light, true
	case "dark":
		return theme.Dark, true
	}
	return theme.Light, false
}

// SetMode records m as the stored theme.
func (p *Prefs) SetMode(m theme.Mode) {
	p.Theme = m.String()
}
