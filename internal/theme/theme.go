// Package theme holds the light/dark display preference and the colors each
// mode renders with. It knows nothing about search or selection.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is a display mode.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// detectDark reports whether the terminal background is dark.
var detectDark = lipgloss.HasDarkBackground

// ParseMode accepts light, dark or auto. Auto (and "") asks the terminal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "", "auto":
		if detectDark() {
			return Dark, nil
		}
		return Light, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (want light, dark or auto)", s)
	}
}

// Flag is the toggleable display preference.
type Flag struct {
	mode Mode
}

// NewFlag returns a flag starting in mode m.
func NewFlag(m Mode) *Flag { return &Flag{mode: m} }

func (f *Flag) Mode() Mode { return f.mode }
func (f *Flag) Dark() bool { return f.mode == Dark }
func (f *Flag) Set(m Mode) { f.mode = m }

// Toggle flips between light and dark and returns the new mode.
func (f *Flag) Toggle() Mode {
	if f.mode == Dark {
		f.mode = Light
	} else {
		f.mode = Dark
	}
	return f.mode
}

// GlamourStyle names the glamour standard style for m.
func GlamourStyle(m Mode) string {
	return m.String()
}
