// Package parser parses rule text into a syntax tree and normalizes it.
package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/ava12/bnfrule/normalize"
	"github.com/ava12/bnfrule/source"
	"github.com/ava12/bnfrule/symbol"
)

// ParseString parses and normalizes rule text.
// Returns either a flat symbol.Sequence or a symbol.Alternation of flat sequences on success.
// Returns nil and bnfrule.Error on error.
func ParseString(name, text string) (symbol.Node, error) {
	return Parse(source.New(name, text))
}

// ParseBytes parses and normalizes rule text.
// Returns nil and bnfrule.Error on error.
func ParseBytes(name string, text []byte) (symbol.Node, error) {
	return Parse(source.New(name, string(text)))
}

// Parse parses and normalizes rule source.
// Returns nil and bnfrule.Error on error.
func Parse(s *source.Source) (symbol.Node, error) {
	alt, e := ParseAlternation(s)
	if e != nil {
		return nil, e
	}

	return normalize.Clean(symbol.Sequence{alt})
}

// ParseAlternation parses rule source without normalization.
// Branches may contain embedded alternations (groups).
// Returns nil and bnfrule.Error on error.
func ParseAlternation(s *source.Source) (symbol.Alternation, error) {
	c := newParseContext(s)
	alt, st, e := c.parseAlternation(0)
	if e != nil {
		return nil, e
	}

	if !st.atEnd {
		return nil, c.trailingInputError(st.pos)
	}

	return alt, nil
}

// ParseSequence parses rule source containing only references and literals.
// Any delimiter is an error.
// Returns nil and bnfrule.Error on error.
func ParseSequence(s *source.Source) (symbol.Sequence, error) {
	c := newParseContext(s)
	seq, st, e := c.parseSequence(0)
	if e != nil {
		return nil, e
	}

	if !st.atEnd {
		return nil, c.trailingInputError(st.pos)
	}

	return seq, nil
}

func (c *parseContext) trailingInputError(pos int) error {
	r, _ := utf8.DecodeRuneInString(c.text[pos:])
	return unexpectedTrailingInputError(c.src.Pos(pos), r)
}

// parseAlternation consumes |-separated sequences starting at pos
// until it meets a closing delimiter or the end of input.
// A closing delimiter is left unconsumed.
func (c *parseContext) parseAlternation(pos int) (symbol.Alternation, stop, error) {
	var branches symbol.Alternation
	current := symbol.Sequence{}

	for pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[pos:])
		switch {
		case isOpener(r):
			sub, st, e := c.parseAlternation(pos + size)
			if e != nil {
				return nil, stop{}, e
			}

			current, e = current.Merge(sub)
			if e != nil {
				return nil, stop{}, e
			}

			if st.atEnd {
				return append(branches, current), endOfInput, nil
			}

			_, size = utf8.DecodeRuneInString(c.text[st.pos:])
			pos = st.pos + size

		case r == alternator:
			branches = append(branches, current)
			current = symbol.Sequence{}
			pos += size

		case unicode.IsSpace(r):
			pos += size

		case isCloser(r):
			return append(branches, current), stopAt(pos), nil

		default:
			seq, st, e := c.parseSequence(pos)
			if e == nil {
				current, e = current.Merge(seq)
			}
			if e != nil {
				return nil, stop{}, e
			}

			if st.atEnd {
				return append(branches, current), endOfInput, nil
			}

			pos = st.pos
		}
	}

	return append(branches, current), endOfInput, nil
}
