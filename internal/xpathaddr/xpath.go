// Package xpathaddr builds the XPath locator strings the diff engine
// attaches to every token: absolute element paths with 1-based positional
// predicates wherever a tag has more than one same-name sibling.
package xpathaddr

import (
	"fmt"
	"strings"

	"github.com/dimelords/xmldiff/pkg/unode"
)

// Build returns the XPath for child, reached from parentPath, given the
// full ordered list of child's siblings (child must be a member of
// siblings). For a root call, parentPath is "".
//
// If more than one sibling shares child's name, the segment carries a
// 1-based positional predicate counting only among same-name siblings;
// otherwise the bare tag name is used.
func Build(parentPath string, child *unode.UNode, siblings []*unode.UNode) string {
	same := 0
	position := 0
	for _, s := range siblings {
		if s.Name != child.Name {
			continue
		}
		same++
		if s == child {
			position = same
		}
	}

	var segment string
	if same <= 1 {
		segment = "/" + child.Name
	} else {
		segment = fmt.Sprintf("/%s[%d]", child.Name, position)
	}
	return parentPath + segment
}

// Attribute returns the XPath for attribute name on the element addressed
// by elementPath.
func Attribute(elementPath, name string) string {
	return elementPath + "/@" + name
}

// Text returns the XPath for the direct text content of the element
// addressed by elementPath.
func Text(elementPath string) string {
	return elementPath + "/text()"
}

// StripTerminal removes a trailing "/@attr" or "/text()" segment from an
// XPath, returning the element path it was attached to. If xpath already
// addresses an element, it is returned unchanged.
func StripTerminal(xpath string) string {
	if idx := strings.LastIndex(xpath, "/@"); idx != -1 {
		return xpath[:idx]
	}
	if strings.HasSuffix(xpath, "/text()") {
		return strings.TrimSuffix(xpath, "/text()")
	}
	return xpath
}
