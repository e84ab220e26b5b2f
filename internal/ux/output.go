package ux

import (
	"fmt"
	"io"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Error prints an error line.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
}

// Warn prints a non-fatal warning.
func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s⚠ %s%s\n", Yellow, msg, Reset)
}

// Listening prints the server banner.
func Listening(w io.Writer, addr string, sections int) {
	fmt.Fprintf(w, "\n%s%s✓ risdocs serving %d sections on %s%s\n\n", Bold, Green, sections, addr, Reset)
	fmt.Fprintf(w, "  %sGET%s  /api/sections?q=<query>\n", Cyan, Reset)
	fmt.Fprintf(w, "  %sPOST%s /api/sessions\n\n", Cyan, Reset)
}
