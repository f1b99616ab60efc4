package mdhtml

import (
	"strings"

	"golang.org/x/net/html/atom"
)

var headings = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func open(a atom.Atom) string {
	return "<" + a.String() + ">"
}

func closing(a atom.Atom) string {
	return "</" + a.String() + ">"
}

func wrap(a atom.Atom, content string) string {
	return open(a) + content + closing(a)
}

// row renders one table row, wrapping every cell in a.
func row(a atom.Atom, cells []string) string {
	var b strings.Builder
	b.WriteString(open(atom.Tr))
	for _, c := range cells {
		b.WriteString(wrap(a, Inline(c)))
	}
	b.WriteString(closing(atom.Tr))
	return b.String()
}
