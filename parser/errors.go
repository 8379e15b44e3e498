package parser

import (
	"github.com/ava12/bnfrule"
	"github.com/ava12/bnfrule/source"
)

const (
	UnterminatedReferenceError = bnfrule.SyntaxErrors + iota
	UnterminatedLiteralError
	UnexpectedCharacterError
	UnexpectedTrailingInputError
)

func unterminatedReferenceError(pos source.Pos) *bnfrule.Error {
	return bnfrule.FormatErrorPos(pos, UnterminatedReferenceError, "unterminated symbol reference, expecting \">\"")
}

func unterminatedLiteralError(pos source.Pos) *bnfrule.Error {
	return bnfrule.FormatErrorPos(pos, UnterminatedLiteralError, "unterminated literal, expecting closing '\"'")
}

func unexpectedCharacterError(pos source.Pos, r rune) *bnfrule.Error {
	return bnfrule.FormatErrorPos(pos, UnexpectedCharacterError, "unexpected character %q", r)
}

func unexpectedTrailingInputError(pos source.Pos, r rune) *bnfrule.Error {
	return bnfrule.FormatErrorPos(pos, UnexpectedTrailingInputError, "unexpected %q, expecting end of input", r)
}
