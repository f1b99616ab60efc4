package mdhtml

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadLines reads UTF-8 text from r line by line. A line ends at "\n",
// "\r\n" or a lone "\r"; terminators are removed. A final line without
// terminator is kept, but a trailing terminator does not produce an extra
// empty line. Invalid UTF-8 is an error.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadString('\n')
		for _, line := range splitCR(chunk) {
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("read markdown: line %d: invalid UTF-8", len(lines)+1)
			}
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read markdown: %w", err)
		}
	}
}

// splitCR splits a chunk ending in at most one "\n" into lines, treating a
// lone "\r" as a line terminator as well.
func splitCR(chunk string) []string {
	if chunk == "" {
		return nil
	}
	terminated := strings.HasSuffix(chunk, "\n")
	if terminated {
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
	}
	parts := strings.Split(chunk, "\r")
	if !terminated && len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Convert convert Markdown to HTML. Read Markdown from r and write the HTML
// fragment to w.
func Convert(w io.Writer, r io.Reader) error {
	lines, err := ReadLines(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, ConvertLines(lines)); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
