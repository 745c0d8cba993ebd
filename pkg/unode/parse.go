package unode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/dimelords/xmldiff/internal/xerr"
)

var errNoRoot = errors.New("document has no root element")

// Parse parses a well-formed XML document into its canonical UNode tree.
//
// Attribute order is not preserved. Self-closing and open/close forms are
// equivalent. All direct text chunks of an element are concatenated, in
// order, without trimming; the relative interleaving of text and child
// elements is not preserved. Namespace prefixes are kept as part of the
// element's opaque name — no namespace resolution is performed.
func Parse(xmlText string) (*UNode, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlText); err != nil {
		return nil, xerr.Wrap("unode", "parse", "", fmt.Errorf("%w: %w", xerr.ErrMalformedXML, err))
	}
	root := doc.Root()
	if root == nil {
		return nil, xerr.Wrap("unode", "parse", "", fmt.Errorf("%w: %w", xerr.ErrMalformedXML, errNoRoot))
	}
	b := &builder{}
	return b.node(root), nil
}

// builder assigns dense, per-parse ids in document order. The counter is
// local to one Parse call, so ids from two separate calls live in
// disjoint, but overlapping-valued, spaces: callers that memoize across a
// pair of trees must tag the id with which side it came from.
type builder struct {
	nextID int
}

func (b *builder) node(e *etree.Element) *UNode {
	n := &UNode{
		ID:    b.nextID,
		Name:  e.Tag,
		Attrs: make(map[string]string, len(e.Attr)),
	}
	b.nextID++

	for _, a := range e.Attr {
		n.Attrs[a.Key] = a.Value
	}

	var text strings.Builder
	for _, child := range e.Child {
		switch c := child.(type) {
		case *etree.CharData:
			text.WriteString(c.Data)
		case *etree.Element:
			n.Children = append(n.Children, b.node(c))
		}
	}
	n.Text = text.String()

	return n
}
