package normalize

import (
	"github.com/ava12/bnfrule"
	"github.com/ava12/bnfrule/symbol"
)

const (
	EmptyAlternationError = symbol.InvalidMergeError + 1 + iota
)

// invalidNodeError reports a value that cannot be merged into a branch,
// uses the same code as symbol.Sequence.Merge.
func invalidNodeError(n symbol.Node) *bnfrule.Error {
	return bnfrule.FormatError(symbol.InvalidMergeError, "cannot merge %T value into sequence", n)
}

func emptyAlternationError() *bnfrule.Error {
	return bnfrule.FormatError(EmptyAlternationError, "alternation has no branches")
}
