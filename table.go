package mdhtml

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

var (
	separatorRe = regexp.MustCompile(`^[:\-| \t]+$`)
	dashRunRe   = regexp.MustCompile(`-{3,}`)
	cellSplitRe = regexp.MustCompile(`\s*\|\s*`)
)

func isSeparator(line string) bool {
	line = strings.TrimSpace(line)
	return separatorRe.MatchString(line) && dashRunRe.MatchString(line)
}

// separatorAfter returns the index of the table separator following the
// header at lines[i], skipping blank lines, or -1 if there is none.
func separatorAfter(lines []string, i int) int {
	j := i + 1
	for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
		j++
	}
	if j < len(lines) && isSeparator(lines[j]) {
		return j
	}
	return -1
}

// cells splits a table row on pipes. A single leading and trailing pipe is
// dropped first.
func cells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := cellSplitRe.Split(line, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// table emits the table whose header is lines[head] and separator is
// lines[sep]. Body rows are consumed up to the first blank or pipe-free
// line. It returns the index of the first line not consumed.
func (s *state) table(lines []string, head, sep int) int {
	header := cells(lines[head])
	s.emit(open(atom.Table), open(atom.Thead))
	s.emit(row(atom.Th, header))
	s.emit(closing(atom.Thead), open(atom.Tbody))

	i := sep + 1
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || !strings.Contains(line, "|") {
			break
		}
		s.emit(row(atom.Td, cells(line)))
		i++
	}
	s.emit(closing(atom.Tbody), closing(atom.Table))
	tracer().Infof("mdhtml: table with %d columns, %d body rows", len(header), i-sep-1)
	return i
}
