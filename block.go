package mdhtml

import (
	"regexp"
	"strings"

	"golang.org/x/net/html/atom"
)

var (
	headingRe   = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	ruleRe      = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	unorderedRe = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
	orderedRe   = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)
)

type lineKind int

const (
	kindFence lineKind = iota
	kindCode
	kindBlank
	kindHeading
	kindRule
	kindUnordered
	kindOrdered
	kindTable
	kindText
)

func (k lineKind) String() string {
	switch k {
	case kindFence:
		return "fence"
	case kindCode:
		return "code"
	case kindBlank:
		return "blank"
	case kindHeading:
		return "heading"
	case kindRule:
		return "rule"
	case kindUnordered:
		return "ul-item"
	case kindOrdered:
		return "ol-item"
	case kindTable:
		return "table"
	}
	return "text"
}

// state is the parser state for one conversion. At most one of inCode,
// list and para is active at a time; entering a block flushes the others.
type state struct {
	out    []string
	inCode bool
	code   []string
	list   atom.Atom // 0, atom.Ul or atom.Ol
	para   []string
}

func (s *state) emit(frags ...string) {
	s.out = append(s.out, frags...)
}

func (s *state) flushPara() {
	if len(s.para) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(s.para, " "))
	s.emit(wrap(atom.P, Inline(text)))
	s.para = nil
}

func (s *state) closeList() {
	if s.list == 0 {
		return
	}
	s.emit(closing(s.list))
	s.list = 0
}

// item emits a list item, switching to list a if another list is open.
func (s *state) item(a atom.Atom, content string) {
	s.flushPara()
	if s.list != a {
		s.closeList()
		s.emit(open(a))
		s.list = a
	}
	s.emit(wrap(atom.Li, Inline(strings.TrimSpace(content))))
}

func (s *state) emitCode() {
	s.emit(open(atom.Pre) + open(atom.Code))
	s.emit(s.code...)
	s.emit(closing(atom.Code) + closing(atom.Pre))
	s.code = nil
}

// fence toggles code mode.
func (s *state) fence() {
	if s.inCode {
		s.emitCode()
		s.inCode = false
		return
	}
	s.flushPara()
	s.closeList()
	s.inCode = true
	s.code = nil
}

// ConvertLines converts Markdown lines to an HTML fragment. Trailing line
// terminators on the lines are ignored. The fragments making up the result
// are joined by newlines.
func ConvertLines(lines []string) string {
	lines = chomp(lines)
	s := &state{}
	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		var kind lineKind
		next := i + 1

		switch {
		case strings.HasPrefix(trimmed, "```"):
			kind = kindFence
			s.fence()
		case s.inCode:
			kind = kindCode
			s.code = append(s.code, line)
		case trimmed == "":
			kind = kindBlank
			s.flushPara()
			s.closeList()
		default:
			kind, next = s.block(lines, i)
		}
		tracer().Debugf("mdhtml: line %d is %s", i+1, kind)
		i = next
	}
	s.flushPara()
	s.closeList()
	if s.inCode {
		tracer().Infof("mdhtml: closing unterminated code block at end of input")
		s.emitCode()
	}
	return strings.Join(s.out, "\n")
}

// block classifies a non-blank line outside of code blocks and emits it. It
// returns the kind found and the index of the next line to examine.
func (s *state) block(lines []string, i int) (lineKind, int) {
	line := lines[i]
	trimmed := strings.TrimSpace(line)

	if m := headingRe.FindStringSubmatch(line); m != nil {
		s.flushPara()
		s.closeList()
		h := headings[len(m[1])-1]
		s.emit(wrap(h, Inline(strings.TrimSpace(m[2]))))
		return kindHeading, i + 1
	}
	if ruleRe.MatchString(trimmed) {
		s.flushPara()
		s.closeList()
		s.emit("<hr />")
		return kindRule, i + 1
	}
	if m := unorderedRe.FindStringSubmatch(line); m != nil {
		s.item(atom.Ul, m[1])
		return kindUnordered, i + 1
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		s.item(atom.Ol, m[1])
		return kindOrdered, i + 1
	}
	if strings.Contains(line, "|") {
		if sep := separatorAfter(lines, i); sep >= 0 {
			s.flushPara()
			s.closeList()
			return kindTable, s.table(lines, i, sep)
		}
	}
	// Text never continues a list item.
	s.closeList()
	s.para = append(s.para, trimmed)
	return kindText, i + 1
}

// chomp strips line terminators, returning a new slice.
func chomp(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		l = strings.TrimSuffix(l, "\n")
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
