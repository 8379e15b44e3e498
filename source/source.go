// Package source defines named rule text with byte offset to line and column conversion.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source is a named rule text. Line breaks are insignificant for parsing,
// but are taken into account when reporting error positions.
type Source struct {
	name       string
	text       string
	lineStarts []int
}

// New creates a source with given name (may be empty) and text.
func New(name, text string) *Source {
	lineCnt := strings.Count(text, "\n") + 1
	s := &Source{name: name, text: text, lineStarts: make([]int, 1, lineCnt)}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

// Name returns source name.
func (s *Source) Name() string {
	return s.name
}

// Text returns source text.
func (s *Source) Text() string {
	return s.text
}

// Len returns text length in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// LineCol converts byte offset to 1-based line and column numbers. Columns count runes.
// Offsets outside of the text are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.text) {
		pos = len(s.text)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.text[lineStart:pos]) + 1
}

// Offset converts 1-based line and column numbers back to byte offset.
// Returns 0 for non-positive arguments and text length for positions past the end.
func (s *Source) Offset(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.text)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1]
	for col > 1 && res < l && s.text[res] != '\n' {
		_, size := utf8.DecodeRuneInString(s.text[res:])
		res += size
		col--
	}
	return res
}

// Pos returns position information for byte offset.
func (s *Source) Pos(offset int) Pos {
	line, col := s.LineCol(offset)
	return Pos{s, offset, line, col}
}

// Pos is a position in source text, implements bnfrule.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Offset() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
