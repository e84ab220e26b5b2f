package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors the browser draws with.
type Palette struct {
	Text       lipgloss.Color
	Subtext    lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Selected   lipgloss.Color // background of the active navigation entry
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Catppuccin Latte
var light = Palette{
	Text:       "#4c4f69",
	Subtext:    "#6c6f85",
	Muted:      "#9ca0b0",
	Accent:     "#1e66f5",
	Border:     "#bcc0cc",
	Background: "#eff1f5",
	Surface:    "#e6e9ef",
	Selected:   "#dce0e8",
	Warning:    "#df8e1d",
	Error:      "#d20f39",
}

// Catppuccin Mocha
var dark = Palette{
	Text:       "#cdd6f4",
	Subtext:    "#a6adc8",
	Muted:      "#6c7086",
	Accent:     "#89b4fa",
	Border:     "#45475a",
	Background: "#1e1e2e",
	Surface:    "#181825",
	Selected:   "#313244",
	Warning:    "#f9e2af",
	Error:      "#f38ba8",
}

// For returns the palette of mode m.
func For(m Mode) Palette {
	if m == Dark {
		return dark
	}
	return light
}

// ToggleGlyph is the icon of the button that switches away from m.
func ToggleGlyph(m Mode) string {
	if m == Dark {
		return "☀"
	}
	return "☾"
}
