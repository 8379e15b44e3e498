package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ava12/bnfrule/source"
	"github.com/ava12/bnfrule/symbol"
)

const (
	openers    = "([{"
	closers    = ")]}"
	alternator = '|'
)

// stop tells where a scanning function has stopped:
// either at a delimiter at pos (left unconsumed) or at the end of input.
type stop struct {
	pos   int
	atEnd bool
}

var endOfInput = stop{atEnd: true}

func stopAt(pos int) stop {
	return stop{pos: pos}
}

type parseContext struct {
	src  *source.Source
	text string
}

func newParseContext(s *source.Source) *parseContext {
	return &parseContext{s, s.Text()}
}

func isOpener(r rune) bool {
	return strings.ContainsRune(openers, r)
}

func isCloser(r rune) bool {
	return strings.ContainsRune(closers, r)
}

func isDelimiter(r rune) bool {
	return r == alternator || isOpener(r) || isCloser(r)
}

// parseSequence consumes references and literals starting at pos
// until it meets a delimiter or the end of input.
func (c *parseContext) parseSequence(pos int) (symbol.Sequence, stop, error) {
	seq := symbol.Sequence{}
	for pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[pos:])
		switch {
		case r == '<':
			end := strings.IndexByte(c.text[pos+1:], '>')
			if end < 0 {
				return nil, stop{}, unterminatedReferenceError(c.src.Pos(pos))
			}

			seq = append(seq, symbol.Reference(c.text[pos+1:pos+1+end]))
			pos += end + 2

		case r == '"':
			lit, next, e := c.scanLiteral(pos)
			if e != nil {
				return nil, stop{}, e
			}

			seq = append(seq, lit)
			pos = next

		case unicode.IsSpace(r):
			pos += size

		case isDelimiter(r):
			return seq, stopAt(pos), nil

		default:
			return nil, stop{}, unexpectedCharacterError(c.src.Pos(pos), r)
		}
	}

	return seq, endOfInput, nil
}

// scanLiteral scans a quoted literal starting at the opening quote at pos.
// A quote preceded by an odd number of backslashes is content, the last of those backslashes is dropped.
// Any other backslash is content as is.
// Returns the literal and the position next to its closing quote.
func (c *parseContext) scanLiteral(pos int) (symbol.Literal, int, error) {
	buf := make([]byte, 0, 16)
	slashes := 0
	for i := pos + 1; i < len(c.text); i++ {
		b := c.text[i]
		if b == '"' {
			if slashes%2 == 0 {
				return symbol.Literal(buf), i + 1, nil
			}

			buf[len(buf)-1] = b
			slashes = 0
			continue
		}

		if b == '\\' {
			slashes++
		} else {
			slashes = 0
		}
		buf = append(buf, b)
	}

	return "", 0, unterminatedLiteralError(c.src.Pos(pos))
}
