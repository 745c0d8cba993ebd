// Package costmodel computes the two memoized cost functions the diff
// planner's children-alignment DP is built on: the cost of discarding a
// whole subtree, and the estimated edit distance between two subtrees of
// the same tag.
package costmodel

import (
	"math"

	"github.com/dimelords/xmldiff/pkg/unode"
)

// Infinite stands in for the "elements with different tags are never
// matched" sentinel. It is kept well below the true int range so that
// repeated addition during DP accumulation cannot wrap around.
const Infinite = math.MaxInt32 / 2

// Side distinguishes which of the two input trees a UNode id belongs to.
// UNode ids are dense per Parse call and therefore collide between the
// "old" and "new" trees; subtree memo keys are tagged with Side, and pair
// memo keys are ordered (old id, new id), so the two id spaces never alias
// each other.
type Side int

const (
	// SideOld tags ids coming from the left-hand ("old") tree.
	SideOld Side = iota
	// SideNew tags ids coming from the right-hand ("new") tree.
	SideNew
)

type nodeKey struct {
	side Side
	id   int
}

type pairKey struct {
	oldID int
	newID int
}

// Model memoizes subtree and pairwise costs for one fixed pair of trees.
// Callers create a fresh Model per top-level diff call and let it go out
// of scope when that call returns — there is no package-level state.
type Model struct {
	subtree map[nodeKey]int
	pair    map[pairKey]int
}

// New returns an empty Model ready to memoize costs for one diff call.
func New() *Model {
	return &Model{
		subtree: make(map[nodeKey]int),
		pair:    make(map[pairKey]int),
	}
}

// SubtreeCost is 1 (n's own presence) + one per attribute + one if n
// carries nonempty direct text, plus the recursive cost of n's element
// children. It is memoized by (side, n.ID).
func (m *Model) SubtreeCost(side Side, n *unode.UNode) int {
	key := nodeKey{side, n.ID}
	if v, ok := m.subtree[key]; ok {
		return v
	}
	cost := 1 + n.AttrCount()
	if n.HasText() {
		cost++
	}
	for _, c := range n.Children {
		cost += m.SubtreeCost(side, c)
	}
	m.subtree[key] = cost
	return cost
}

// ComputeCost estimates the edit distance to transform subtree a (from
// the old tree) into subtree b (from the new tree). It is memoized by
// (a.ID, b.ID); that pair key is unambiguous on its own because a is
// always drawn from the old tree and b always from the new tree in this
// package's calling convention.
func (m *Model) ComputeCost(a, b *unode.UNode) int {
	key := pairKey{a.ID, b.ID}
	if v, ok := m.pair[key]; ok {
		return v
	}

	if a.Name != b.Name {
		m.pair[key] = Infinite
		return Infinite
	}

	cost := m.attrCost(a, b)
	if a.Text != b.Text && (a.Text != "" || b.Text != "") {
		cost++
	}
	cost += m.childAlignmentCost(a, b)

	m.pair[key] = cost
	return cost
}

func (m *Model) attrCost(a, b *unode.UNode) int {
	cost := 0
	seen := make(map[string]struct{}, len(a.Attrs)+len(b.Attrs))
	for k := range a.Attrs {
		seen[k] = struct{}{}
	}
	for k := range b.Attrs {
		seen[k] = struct{}{}
	}
	for k := range seen {
		av, aok := a.Attrs[k]
		bv, bok := b.Attrs[k]
		if aok && bok {
			if av != bv {
				cost++
			}
			continue
		}
		cost++
	}
	return cost
}

func (m *Model) childAlignmentCost(a, b *unode.UNode) int {
	matrix := m.AlignMatrix(a.Children, b.Children)
	return matrix[len(a.Children)][len(b.Children)]
}

// AlignMatrix builds the Wagner-Fischer-style DP matrix for aligning
// aChildren (old side) against bChildren (new side): matrix[i][j] is the
// minimum cost to transform aChildren[:i] into bChildren[:j] using
// per-element delete, insert, and match-with-recursion operations.
//
// It is exposed so the diff planner can build and backtrack its own matrix
// (over the reversed child lists) to reconstruct the chosen operation
// sequence; aligning the same children twice (once here, implicitly, while
// costing an ancestor, and once more explicitly to backtrack) is cheap
// because every cell it depends on —
// SubtreeCost and ComputeCost — is itself memoized.
func (m *Model) AlignMatrix(aChildren, bChildren []*unode.UNode) [][]int {
	rows := len(aChildren) + 1
	cols := len(bChildren) + 1
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}

	for i := 1; i < rows; i++ {
		matrix[i][0] = matrix[i-1][0] + m.SubtreeCost(SideOld, aChildren[i-1])
	}
	for j := 1; j < cols; j++ {
		matrix[0][j] = matrix[0][j-1] + m.SubtreeCost(SideNew, bChildren[j-1])
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			deleteCost := matrix[i-1][j] + m.SubtreeCost(SideOld, aChildren[i-1])
			insertCost := matrix[i][j-1] + m.SubtreeCost(SideNew, bChildren[j-1])
			matchCost := addInfinite(matrix[i-1][j-1], m.ComputeCost(aChildren[i-1], bChildren[j-1]))

			best := deleteCost
			if insertCost < best {
				best = insertCost
			}
			if matchCost < best {
				best = matchCost
			}
			matrix[i][j] = best
		}
	}

	return matrix
}

func addInfinite(a, b int) int {
	if a >= Infinite || b >= Infinite {
		return Infinite
	}
	return a + b
}
