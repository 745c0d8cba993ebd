package xmldiff

import (
	"github.com/dimelords/xmldiff/internal/costmodel"
	"github.com/dimelords/xmldiff/pkg/unode"
)

// ComputeXMLDiffTokens parses oldXML and newXML and returns the ordered
// sequence of tokens describing the minimal-cost edit mapping from the
// old document to the new one.
//
// If the two documents have different root tag names, no tree-edit
// distance is attempted: the result is a single DELETE of the old root
// and a single INSERT of the new root, both addressed at the document
// root (spec's UnsupportedRootRename — not an error).
//
// Both oldXML and newXML must be well-formed XML; a parse failure on
// either side returns a *xerr.Error wrapping xerr.ErrMalformedXML.
//
// ComputeXMLDiffTokens is a pure function: it holds no state between
// calls and is safe to call concurrently from multiple goroutines,
// provided each call is given its own strings.
func ComputeXMLDiffTokens(oldXML, newXML string) ([]Token, error) {
	oldRoot, err := unode.Parse(oldXML)
	if err != nil {
		return nil, err
	}
	newRoot, err := unode.Parse(newXML)
	if err != nil {
		return nil, err
	}

	if oldRoot.Name != newRoot.Name {
		return []Token{
			newElementToken(Delete, "/"+oldRoot.Name, oldRoot.Name),
			newElementToken(Insert, "/"+newRoot.Name, newRoot.Name),
		}, nil
	}

	model := costmodel.New()
	tokens := make([]Token, 0)
	diffNodes(model, oldRoot, newRoot, "/"+oldRoot.Name, &tokens)
	return tokens, nil
}
