// Package symbol defines rule tree nodes: literals, references, sequences, and alternations.
package symbol

import (
	"slices"
	"strings"
)

// Node is a rule tree node. Implemented by Literal, Reference, Sequence, and Alternation only.
type Node interface {
	String() string
	node()
}

// Literal is a matched quoted string. Contains unescaped text.
type Literal string

// Reference is a named placeholder enclosed in angle brackets.
type Reference string

// Sequence is a list of nodes matched in order. Before normalization it may contain alternations.
type Sequence []Node

// Alternation is a list of alternative sequences (branches).
type Alternation []Sequence

var literalReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (Literal) node() {}
func (Reference) node() {}
func (Sequence) node() {}
func (Alternation) node() {}

// String returns quoted literal with backslashes and quotes escaped.
func (l Literal) String() string {
	return `"` + literalReplacer.Replace(string(l)) + `"`
}

func (r Reference) String() string {
	return "<" + string(r) + ">"
}

// String returns space-separated renderings of elements.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

// String returns parenthesized branches separated by " | ".
func (a Alternation) String() string {
	parts := make([]string, len(a))
	for i, s := range a {
		parts[i] = "(" + s.String() + ")"
	}
	return strings.Join(parts, " | ")
}

// IsAtom reports whether n is a literal or a reference.
func IsAtom(n Node) bool {
	switch n.(type) {
	case Literal, Reference:
		return true
	default:
		return false
	}
}

// Merge returns a sequence extended with n:
// a literal or a reference is appended, elements of a sequence are concatenated,
// an alternation is appended as a single embedded element.
// Any other value results in InvalidMergeError.
// The receiver is never modified, the result never shares memory with it.
func (s Sequence) Merge(n Node) (Sequence, error) {
	switch v := n.(type) {
	case Literal, Reference, Alternation:
		return append(slices.Clip(s), v), nil
	case Sequence:
		return slices.Concat(s, v), nil
	default:
		return nil, invalidMergeError(n)
	}
}

// HasAdjacentLiterals reports whether two consecutive elements of s are both literals.
func (s Sequence) HasAdjacentLiterals() bool {
	for i := 1; i < len(s); i++ {
		_, prev := s[i-1].(Literal)
		_, cur := s[i].(Literal)
		if prev && cur {
			return true
		}
	}
	return false
}

// IsFlat reports whether n has normalized shape: either a sequence of literals and references,
// or an alternation of at least two such sequences.
// Adjacent literals are not checked, see Sequence.HasAdjacentLiterals.
func IsFlat(n Node) bool {
	switch v := n.(type) {
	case Sequence:
		return isPure(v)
	case Alternation:
		if len(v) < 2 {
			return false
		}
		for _, s := range v {
			if !isPure(s) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isPure(s Sequence) bool {
	for _, n := range s {
		if !IsAtom(n) {
			return false
		}
	}
	return true
}

// Equal reports whether two trees have the same structure and contents.
// Nil sequences and alternations are equal to empty ones.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Literal:
		bv, valid := b.(Literal)
		return valid && av == bv

	case Reference:
		bv, valid := b.(Reference)
		return valid && av == bv

	case Sequence:
		bv, valid := b.(Sequence)
		return valid && slices.EqualFunc(av, bv, Equal)

	case Alternation:
		bv, valid := b.(Alternation)
		return valid && slices.EqualFunc(av, bv, func(x, y Sequence) bool {
			return Equal(x, y)
		})

	default:
		return a == nil && b == nil
	}
}
