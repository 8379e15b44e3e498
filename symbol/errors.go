package symbol

import (
	"github.com/ava12/bnfrule"
)

const (
	InvalidMergeError = bnfrule.InternalErrors + iota
)

func invalidMergeError(n Node) *bnfrule.Error {
	return bnfrule.FormatError(InvalidMergeError, "cannot merge %T value into sequence", n)
}
