// Package xmlutil provides structural XML comparison used by tests to
// check the overlay projector's purity invariant: a colored document must
// differ from its source only by added or replaced color attributes.
package xmlutil

import (
	"fmt"

	"github.com/beevik/etree"
)

// Difference describes a single structural mismatch found while comparing
// two XML documents.
type Difference struct {
	Path        string // element path, e.g. "/score-partwise/part/measure[2]"
	Type        string // "tag", "attribute", "text", "structure"
	Description string
}

// PurityOptions controls VerifyOverlayPurity.
type PurityOptions struct {
	// AllowedAttrs names attribute keys that are permitted to differ (be
	// added, removed, or changed) between original and colored. Any other
	// attribute difference is a purity violation.
	AllowedAttrs []string
}

// VerifyOverlayPurity compares original and colored and returns every
// difference that is NOT limited to one of AllowedAttrs. An empty result
// means colored is a pure overlay of original: same tags, same non-color
// attributes, same text, same structure, in the same order.
func VerifyOverlayPurity(original, colored []byte, opts PurityOptions) ([]Difference, error) {
	origDoc := etree.NewDocument()
	if err := origDoc.ReadFromBytes(original); err != nil {
		return nil, fmt.Errorf("xmlutil: parse original: %w", err)
	}
	colDoc := etree.NewDocument()
	if err := colDoc.ReadFromBytes(colored); err != nil {
		return nil, fmt.Errorf("xmlutil: parse colored: %w", err)
	}

	allowed := make(map[string]struct{}, len(opts.AllowedAttrs))
	for _, a := range opts.AllowedAttrs {
		allowed[a] = struct{}{}
	}

	var diffs []Difference
	compareElements(origDoc.Root(), colDoc.Root(), "/"+safeTag(origDoc.Root()), allowed, &diffs)
	return diffs, nil
}

func safeTag(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return e.Tag
}

func compareElements(orig, col *etree.Element, path string, allowed map[string]struct{}, diffs *[]Difference) {
	if orig == nil || col == nil {
		if orig != col {
			*diffs = append(*diffs, Difference{Path: path, Type: "structure", Description: "one document has no root element"})
		}
		return
	}

	if orig.Tag != col.Tag {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "tag",
			Description: fmt.Sprintf("tag mismatch: %q vs %q", orig.Tag, col.Tag),
		})
		return
	}

	compareAttrs(orig, col, path, allowed, diffs)

	if orig.Text() != col.Text() {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "text",
			Description: fmt.Sprintf("text differs: %q vs %q", orig.Text(), col.Text()),
		})
	}

	origChildren := orig.ChildElements()
	colChildren := col.ChildElements()
	if len(origChildren) != len(colChildren) {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "structure",
			Description: fmt.Sprintf("child count mismatch: %d vs %d", len(origChildren), len(colChildren)),
		})
		return
	}
	for i := range origChildren {
		childPath := fmt.Sprintf("%s/%s[%d]", path, origChildren[i].Tag, i+1)
		compareElements(origChildren[i], colChildren[i], childPath, allowed, diffs)
	}
}

func compareAttrs(orig, col *etree.Element, path string, allowed map[string]struct{}, diffs *[]Difference) {
	origAttrs := make(map[string]string, len(orig.Attr))
	for _, a := range orig.Attr {
		origAttrs[a.Key] = a.Value
	}
	colAttrs := make(map[string]string, len(col.Attr))
	for _, a := range col.Attr {
		colAttrs[a.Key] = a.Value
	}

	for k, origVal := range origAttrs {
		if _, ok := allowed[k]; ok {
			continue
		}
		colVal, exists := colAttrs[k]
		if !exists {
			*diffs = append(*diffs, Difference{Path: path, Type: "attribute", Description: fmt.Sprintf("attribute %q missing in colored", k)})
		} else if colVal != origVal {
			*diffs = append(*diffs, Difference{Path: path, Type: "attribute", Description: fmt.Sprintf("attribute %q value differs: %q vs %q", k, origVal, colVal)})
		}
	}
	for k := range colAttrs {
		if _, ok := allowed[k]; ok {
			continue
		}
		if _, existed := origAttrs[k]; !existed {
			*diffs = append(*diffs, Difference{Path: path, Type: "attribute", Description: fmt.Sprintf("attribute %q added in colored but not allowed", k)})
		}
	}
}
