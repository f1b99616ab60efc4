package mdhtml

import (
	"regexp"

	"golang.org/x/net/html/atom"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	linkRe   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)

	boldRepl   = wrap(atom.Strong, "${1}")
	italicRepl = wrap(atom.Em, "${1}")
	linkRepl   = `<a href="${2}">${1}</a>`
)

// Inline rewrites bold, italic and link markup within a single line of text.
//
// Bold spans are replaced first, then italics over the result, then links.
// Matching is non-greedy, so "**a** and **b**" gives two bold spans. Text is
// not escaped.
func Inline(text string) string {
	text = boldRe.ReplaceAllString(text, boldRepl)
	text = italicRe.ReplaceAllString(text, italicRepl)
	return linkRe.ReplaceAllString(text, linkRepl)
}
