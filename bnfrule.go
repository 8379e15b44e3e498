/*
Package bnfrule parses a single BNF-style grammar rule and normalizes it into disjunctive form.

Consists of subpackages:
  - cmd/bnfrule: console utility printing normalized rules as text, JSON, or YAML;
  - export: converts rule trees to serializable form and writes them in supported formats;
  - normalize: coalesces adjacent literals and flattens nested alternation;
  - parser: parses rule text into a syntax tree and normalizes it;
  - source: defines named rule text with line and column lookup;
  - symbol: literal, reference, sequence, and alternation types.

A rule is a mix of double-quoted literals ("foo", with \" standing for a quote),
symbol references (<name>), juxtaposition, groups enclosed in (), [], or {},
and alternatives separated by |. E.g.

	<sign> ("0" | <digit> {<digit>})

A normalized rule is either a flat sequence of literals and references,
or an alternation of such sequences:

	(<sign> "0") | (<sign> <digit> <digit>)

Typical usage is:

	node, e := parser.ParseString("rule", `<A> ("b" | "c")`)
	if e == nil {
		fmt.Println(node)
	}
*/
package bnfrule

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors   = 1   // used by parser
	InternalErrors = 101 // used by symbol and normalize, signal a bug rather than malformed input
)

// Error is the error type used by bnfrule subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// IsSyntax reports whether the error was caused by malformed rule text.
func (e *Error) IsSyntax() bool {
	return e.Code >= SyntaxErrors && e.Code < InternalErrors
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
