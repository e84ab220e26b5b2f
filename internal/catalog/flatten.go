package catalog

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var mdParser = goldmark.DefaultParser()

// Flatten projects markdown source onto its literal text: prose, code spans
// and code block lines, with block boundaries turned into newlines. Markup
// characters, fence info strings and HTML (inline or block) are dropped. A
// line wrapped inside a paragraph reads as a single space.
func Flatten(source string) string {
	src := []byte(source)
	doc := mdParser.Parse(text.NewReader(src))

	var b strings.Builder
	newline := true
	write := func(p []byte) {
		if len(p) == 0 {
			return
		}
		b.Write(p)
		newline = p[len(p)-1] == '\n'
	}
	breakLine := func() {
		if !newline {
			b.WriteByte('\n')
			newline = true
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				breakLine()
			}
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			v := n.Segment.Value(src)
			switch {
			case n.HardLineBreak():
				write(v)
				breakLine()
			case n.SoftLineBreak():
				write(bytes.TrimRight(v, " \t"))
				write([]byte{' '})
			default:
				write(v)
			}
		case *ast.String:
			write(n.Value)
		case *ast.AutoLink:
			write(n.Label(src))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				write(seg.Value(src))
			}
			breakLine()
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(b.String(), "\n")
}
