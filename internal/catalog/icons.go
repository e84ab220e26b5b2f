package catalog

var glyphs = map[string]string{
	"book":           "📖",
	"terminal":       "❯",
	"cpu":            "▣",
	"hard-drive":     "▤",
	"files":          "❐",
	"settings":       "⚙",
	"alert-circle":   "●",
	"alert-triangle": "⚠",
	"code":           "‹›",
	"file-code":      "✎",
}

// Glyph maps a symbolic icon name to a terminal glyph. Unknown names get a bullet.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return "•"
}
