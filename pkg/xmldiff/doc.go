// Package xmldiff computes a minimal-cost, order-preserving edit mapping
// between two XML documents and returns it as a flat stream of typed,
// XPath-addressed tokens.
//
// The entry point is ComputeXMLDiffTokens. Everything else in this
// package — the token shape, the children-alignment planner, the
// tie-breaking rules — exists to make that one call's output well-defined
// and reproducible.
package xmldiff
