package overlay

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/dimelords/xmldiff/internal/xerr"
	"github.com/dimelords/xmldiff/internal/xpathaddr"
	"github.com/dimelords/xmldiff/pkg/xmldiff"
)

// Result is the output of ProjectOverlay.
type Result struct {
	OldXML string
	NewXML string

	// UnusedTokens lists, in input order, every token that did not
	// resolve to a colorable element on the side(s) required for its
	// edit type. An unused token is never a fatal error.
	UnusedTokens []xmldiff.Token
}

// ProjectOverlay parses oldXML and newXML into independent DOMs, resolves
// each token's XPath against the side(s) its edit type requires, walks up
// from the resolved element (inclusive) to the nearest colorable
// ancestor, and sets that ancestor's color attribute. It never mutates
// any other element, attribute, or text.
//
// ProjectOverlay is a pure function: it holds no state between calls and
// is safe to call concurrently, provided each call is given its own
// inputs.
func ProjectOverlay(oldXML, newXML string, tokens []xmldiff.Token) (Result, error) {
	oldDoc := etree.NewDocument()
	if err := oldDoc.ReadFromString(oldXML); err != nil {
		return Result{}, xerr.Wrap("overlay", "parse", "old", fmt.Errorf("%w: %w", xerr.ErrMalformedXML, err))
	}
	newDoc := etree.NewDocument()
	if err := newDoc.ReadFromString(newXML); err != nil {
		return Result{}, xerr.Wrap("overlay", "parse", "new", fmt.Errorf("%w: %w", xerr.ErrMalformedXML, err))
	}

	var unused []xmldiff.Token
	for _, tok := range tokens {
		if !project(oldDoc, newDoc, tok) {
			unused = append(unused, tok)
		}
	}

	oldOut, err := oldDoc.WriteToString()
	if err != nil {
		return Result{}, xerr.Wrap("overlay", "write", "old", err)
	}
	newOut, err := newDoc.WriteToString()
	if err != nil {
		return Result{}, xerr.Wrap("overlay", "write", "new", err)
	}

	return Result{OldXML: oldOut, NewXML: newOut, UnusedTokens: unused}, nil
}

// project resolves and colors a single token, returning whether it was
// used (i.e. colored at least one element).
func project(oldDoc, newDoc *etree.Document, tok xmldiff.Token) bool {
	elementPath := xpathaddr.StripTerminal(tok.XPath)

	if tok.NodeType == xmldiff.ElementNode {
		switch tok.EditType {
		case xmldiff.Insert:
			return colorSide(newDoc, elementPath, ColorInsert)
		case xmldiff.Delete:
			return colorSide(oldDoc, elementPath, ColorDelete)
		default:
			// CHANGE is never emitted for ELEMENT tokens.
			return false
		}
	}

	// Attribute and content tokens, of any edit type, project as CHANGE:
	// an attribute or a text node has no element of its own to color, so
	// the nearest colorable ancestor on each side that still exists is
	// colored yellow. A pure attribute INSERT is therefore visually
	// yellow, not green — this is deliberate, not an oversight.
	usedOld := colorSide(oldDoc, elementPath, ColorChange)
	usedNew := colorSide(newDoc, elementPath, ColorChange)
	return usedOld || usedNew
}

func colorSide(doc *etree.Document, elementPath string, color Color) bool {
	el := doc.FindElement(elementPath)
	if el == nil {
		return false
	}
	ancestor := colorableAncestor(el)
	if ancestor == nil {
		return false
	}
	ancestor.CreateAttr(ColorAttr, string(color))
	return true
}

// colorableAncestor walks from e upward through element ancestors,
// including e itself, and returns the first whose tag is in the
// colorable set, or nil if none qualifies.
func colorableAncestor(e *etree.Element) *etree.Element {
	for cur := e; cur != nil; cur = cur.Parent {
		if isColorable(cur.Tag) {
			return cur
		}
	}
	return nil
}
