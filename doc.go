/*
Package mdhtml converts a small subset of Markdown into an HTML fragment.

Supported are ATX headings, paragraphs, bold, italic and links, flat
unordered and ordered lists, fenced code blocks, horizontal rules and
GitHub-style tables. The output carries no document wrapper, and text is
not HTML-escaped.

Input is processed line by line in a single pass. Malformed input is never
an error: every line ends up in some block, and open blocks are closed at
end of input.
*/
package mdhtml

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mdhtml'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml")
}
