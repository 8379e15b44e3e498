// Package export converts rule trees to serializable form and writes them as text, JSON, or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ava12/bnfrule/symbol"
)

// Item kinds.
const (
	LiteralKind     = "literal"
	ReferenceKind   = "reference"
	SequenceKind    = "sequence"
	AlternationKind = "alternation"
)

// Output formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

var formats = []string{Text, JSON, YAML}

// Formats returns names of supported output formats.
func Formats() []string {
	return slices.Clone(formats)
}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	return slices.Contains(formats, name)
}

// Item is a serializable tree node. Value is set for literals and references,
// Items for sequences and alternations.
type Item struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Convert converts a tree to Item. Returns zero Item for nil.
func Convert(n symbol.Node) Item {
	switch v := n.(type) {
	case symbol.Literal:
		return Item{Kind: LiteralKind, Value: string(v)}

	case symbol.Reference:
		return Item{Kind: ReferenceKind, Value: string(v)}

	case symbol.Sequence:
		items := make([]Item, len(v))
		for i, c := range v {
			items[i] = Convert(c)
		}
		return Item{Kind: SequenceKind, Items: items}

	case symbol.Alternation:
		items := make([]Item, len(v))
		for i, c := range v {
			items[i] = Convert(c)
		}
		return Item{Kind: AlternationKind, Items: items}
	}

	return Item{}
}

// Node converts Item back to a tree.
func (it Item) Node() (symbol.Node, error) {
	switch it.Kind {
	case LiteralKind:
		return symbol.Literal(it.Value), nil

	case ReferenceKind:
		return symbol.Reference(it.Value), nil

	case SequenceKind:
		seq := make(symbol.Sequence, len(it.Items))
		for i, c := range it.Items {
			n, e := c.Node()
			if e != nil {
				return nil, e
			}
			seq[i] = n
		}
		return seq, nil

	case AlternationKind:
		alt := make(symbol.Alternation, len(it.Items))
		for i, c := range it.Items {
			n, e := c.Node()
			if e != nil {
				return nil, e
			}

			s, valid := n.(symbol.Sequence)
			if !valid {
				return nil, fmt.Errorf("alternation branch #%d is %s, expecting %s", i, c.Kind, SequenceKind)
			}
			alt[i] = s
		}
		return alt, nil

	default:
		return nil, fmt.Errorf("unknown item kind: %q", it.Kind)
	}
}

// Write writes a tree in given format followed by a line feed.
// YAML documents start with "---" line, so that several trees form a valid stream.
func Write(w io.Writer, n symbol.Node, format string) error {
	var (
		content []byte
		e       error
	)

	switch format {
	case Text:
		content = []byte(n.String() + "\n")
	case JSON:
		content, e = json.MarshalIndent(Convert(n), "", "  ")
		content = append(content, '\n')
	case YAML:
		content, e = yaml.Marshal(Convert(n))
		content = append([]byte("---\n"), content...)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}

	if e == nil {
		_, e = w.Write(content)
	}
	return e
}
