// Package unode normalizes XML documents into a canonical tree shape that
// the diff engine operates over.
//
// A UNode collapses the irrelevant degrees of freedom in XML — attribute
// order, self-closing vs. open/close form, text interleaved with child
// elements — onto a stable shape: a name, an attribute map, a single
// concatenated text blob, and an ordered list of element children.
// Comments, processing instructions, and namespace resolution are not
// modeled; namespace prefixes are kept as part of the opaque element name.
package unode
