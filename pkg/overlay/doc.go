// Package overlay projects a stream of xmldiff tokens onto a pair of XML
// documents as a MusicXML-aware colored overlay: selected ancestor
// elements gain a "color" attribute so a downstream renderer can
// highlight insertions, deletions, and changes. No other content is
// added, removed, or reordered.
package overlay
