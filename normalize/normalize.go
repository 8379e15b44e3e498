/*
Package normalize converts rule trees to disjunctive form.

A normalized tree is either a sequence of literals and references, or an alternation
of two or more such sequences. Normalization of a sequence is done in two passes:

 1. adjacent literals are coalesced into a single literal;
 2. embedded alternations are flattened: the sequence is multiplied by every branch
    of every alternation it contains.

Coalescing runs once, before flattening, so literals that become adjacent only after
flattening are kept apart, e.g. "a" ("b" | <C>) gives ("a" "b") | ("a" <C>).

Branch order follows the order of alternations in a sequence: branches of a later
alternation form contiguous blocks, combinations of earlier ones vary within each block,
e.g. ("a" | "b") ("c" | "d") gives ("a" "c") | ("b" "c") | ("a" "d") | ("b" "d").
*/
package normalize

import (
	"slices"

	"github.com/ava12/bnfrule/symbol"
)

// Node normalizes any tree: an atom or an alternation is treated as a one-element sequence.
func Node(n symbol.Node) (symbol.Node, error) {
	seq, isSeq := n.(symbol.Sequence)
	if !isSeq {
		seq = symbol.Sequence{n}
	}
	return Clean(seq)
}

// Clean normalizes a sequence.
// Returns a flat symbol.Sequence if there is exactly one resulting branch, symbol.Alternation otherwise.
// seq is not modified.
func Clean(seq symbol.Sequence) (symbol.Node, error) {
	branches, e := flatten(Coalesce(seq), []symbol.Sequence{{}})
	if e != nil {
		return nil, e
	}

	if len(branches) == 1 {
		return branches[0], nil
	}

	return symbol.Alternation(branches), nil
}

// Coalesce returns a copy of seq where each run of adjacent literals is replaced with a single literal.
// Embedded sequences and alternations are not inspected.
func Coalesce(seq symbol.Sequence) symbol.Sequence {
	result := make(symbol.Sequence, 0, len(seq))
	for _, n := range seq {
		lit, isLit := n.(symbol.Literal)
		if isLit && len(result) > 0 {
			prev, prevLit := result[len(result)-1].(symbol.Literal)
			if prevLit {
				result[len(result)-1] = prev + lit
				continue
			}
		}

		result = append(result, n)
	}
	return result
}

// flatten extends each partial branch with elements of seq, multiplying partials on each alternation.
// Partials are never extended in place.
func flatten(seq symbol.Sequence, partials []symbol.Sequence) ([]symbol.Sequence, error) {
	var e error
	for _, n := range seq {
		switch v := n.(type) {
		case symbol.Literal, symbol.Reference:
			extended := make([]symbol.Sequence, len(partials))
			for i, p := range partials {
				extended[i] = extend(p, v)
			}
			partials = extended

		case symbol.Sequence:
			partials, e = flatten(v, partials)
			if e != nil {
				return nil, e
			}

		case symbol.Alternation:
			alts, e := alternatives(v)
			if e != nil {
				return nil, e
			}

			multiplied := make([]symbol.Sequence, 0, len(alts)*len(partials))
			for _, alt := range alts {
				for _, p := range partials {
					multiplied = append(multiplied, extend(p, alt...))
				}
			}
			partials = multiplied

		default:
			return nil, invalidNodeError(n)
		}
	}

	return partials, nil
}

// alternatives normalizes each branch of alt, splicing branches that normalize to alternations.
func alternatives(alt symbol.Alternation) ([]symbol.Sequence, error) {
	if len(alt) == 0 {
		return nil, emptyAlternationError()
	}

	result := make([]symbol.Sequence, 0, len(alt))
	for _, branch := range alt {
		cleaned, e := Clean(branch)
		if e != nil {
			return nil, e
		}

		switch v := cleaned.(type) {
		case symbol.Sequence:
			result = append(result, v)
		case symbol.Alternation:
			result = append(result, v...)
		}
	}
	return result, nil
}

func extend(p symbol.Sequence, nodes ...symbol.Node) symbol.Sequence {
	return slices.Concat(p, symbol.Sequence(nodes))
}
