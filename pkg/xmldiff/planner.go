package xmldiff

import (
	"sort"

	"github.com/dimelords/xmldiff/internal/costmodel"
	"github.com/dimelords/xmldiff/internal/xpathaddr"
	"github.com/dimelords/xmldiff/pkg/unode"
)

// diffNodes emits the attribute, content, and child-alignment diffs
// between a and b (same-named nodes, addressed by path) into out.
func diffNodes(model *costmodel.Model, a, b *unode.UNode, path string, out *[]Token) {
	diffAttributes(a, b, path, out)
	diffContent(a, b, path, out)
	diffChildren(model, a, b, path, out)
}

func diffAttributes(a, b *unode.UNode, path string, out *[]Token) {
	keys := make(map[string]struct{}, len(a.Attrs)+len(b.Attrs))
	for k := range a.Attrs {
		keys[k] = struct{}{}
	}
	for k := range b.Attrs {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, k := range sorted {
		av, aok := a.Attrs[k]
		bv, bok := b.Attrs[k]
		attrPath := xpathaddr.Attribute(path, k)
		switch {
		case aok && !bok:
			*out = append(*out, newAttributeToken(Delete, attrPath, k, strPtr(av), nil))
		case !aok && bok:
			*out = append(*out, newAttributeToken(Insert, attrPath, k, nil, strPtr(bv)))
		case aok && bok && av != bv:
			*out = append(*out, newAttributeToken(Change, attrPath, k, strPtr(av), strPtr(bv)))
		}
	}
}

func diffContent(a, b *unode.UNode, path string, out *[]Token) {
	if a.Text == "" && b.Text == "" {
		return
	}
	textPath := xpathaddr.Text(path)
	switch {
	case a.Text != "" && b.Text == "":
		*out = append(*out, newContentToken(Delete, textPath, strPtr(a.Text), nil))
	case a.Text == "" && b.Text != "":
		*out = append(*out, newContentToken(Insert, textPath, nil, strPtr(b.Text)))
	case a.Text != b.Text:
		*out = append(*out, newContentToken(Change, textPath, strPtr(a.Text), strPtr(b.Text)))
	}
}

// childOp is one reconstructed step of the children-alignment edit
// script, in left-to-right emission order.
type childOp struct {
	kind   opKind
	aIndex int // valid for match, delete
	bIndex int // valid for match, insert
}

type opKind int

const (
	opMatch opKind = iota
	opDelete
	opInsert
)

func diffChildren(model *costmodel.Model, a, b *unode.UNode, path string, out *[]Token) {
	// The alignment is solved on the reversed child lists so that backtracking
	// starts at the leftmost children: among equal-cost alignments, children
	// are matched as early as possible and unmatched trailing ones become edits.
	n, m := len(a.Children), len(b.Children)
	revA, revB := make([]*unode.UNode, n), make([]*unode.UNode, m)
	for k, c := range a.Children {
		revA[n-1-k] = c
	}
	for k, c := range b.Children {
		revB[m-1-k] = c
	}
	revOps := backtrack(model, revA, revB, model.AlignMatrix(revA, revB))
	ops := make([]childOp, len(revOps))
	for k, op := range revOps {
		ops[len(revOps)-1-k] = childOp{kind: op.kind, aIndex: n - 1 - op.aIndex, bIndex: m - 1 - op.bIndex}
	}
	ops = groupDeletesBeforeInserts(ops)

	for _, op := range ops {
		switch op.kind {
		case opMatch:
			childA := a.Children[op.aIndex]
			childB := b.Children[op.bIndex]
			childPath := xpathaddr.Build(path, childA, a.Children)
			diffNodes(model, childA, childB, childPath, out)
		case opDelete:
			childA := a.Children[op.aIndex]
			childPath := xpathaddr.Build(path, childA, a.Children)
			*out = append(*out, newElementToken(Delete, childPath, childA.Name))
		case opInsert:
			childB := b.Children[op.bIndex]
			childPath := xpathaddr.Build(path, childB, b.Children)
			*out = append(*out, newElementToken(Insert, childPath, childB.Name))
		}
	}
}

// backtrack walks the DP matrix from (len(a), len(b)) back to (0, 0) and
// returns the chosen operations in left-to-right emission order.
//
// When multiple predecessors achieve the minimum at a cell, match is
// preferred over delete, which is preferred over insert: this yields
// deterministic tokens and matches the intuition that an equal-cost
// change should read as "change" rather than "replace".
func backtrack(model *costmodel.Model, aChildren, bChildren []*unode.UNode, matrix [][]int) []childOp {
	i := len(aChildren)
	j := len(bChildren)
	var reversed []childOp

	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && matchIsOptimal(model, aChildren, bChildren, matrix, i, j):
			reversed = append(reversed, childOp{kind: opMatch, aIndex: i - 1, bIndex: j - 1})
			i--
			j--
		case i > 0 && matrix[i-1][j]+model.SubtreeCost(costmodel.SideOld, aChildren[i-1]) == matrix[i][j]:
			reversed = append(reversed, childOp{kind: opDelete, aIndex: i - 1})
			i--
		default:
			reversed = append(reversed, childOp{kind: opInsert, bIndex: j - 1})
			j--
		}
	}

	ops := make([]childOp, len(reversed))
	for k, op := range reversed {
		ops[len(reversed)-1-k] = op
	}
	return ops
}

func matchIsOptimal(model *costmodel.Model, aChildren, bChildren []*unode.UNode, matrix [][]int, i, j int) bool {
	matchCost := model.ComputeCost(aChildren[i-1], bChildren[j-1])
	if matchCost >= costmodel.Infinite {
		return false
	}
	return matrix[i-1][j-1]+matchCost == matrix[i][j]
}

// groupDeletesBeforeInserts reorders each maximal run of consecutive
// delete/insert ops (a run is bounded by matches or the run's ends) so
// that every delete in the run precedes every insert, each group keeping
// its original relative order. Matrix backtracking alone leaves the
// relative order of same-cost, unrelated deletes and inserts undefined;
// grouping deletes first matches the "change rather than replace" framing
// from the cost tie-break and keeps output deterministic (e.g. a single
// element rename reads as DELETE-then-INSERT, never the reverse).
func groupDeletesBeforeInserts(ops []childOp) []childOp {
	out := make([]childOp, 0, len(ops))
	for i := 0; i < len(ops); {
		if ops[i].kind == opMatch {
			out = append(out, ops[i])
			i++
			continue
		}
		start := i
		for i < len(ops) && ops[i].kind != opMatch {
			i++
		}
		run := ops[start:i]
		for _, op := range run {
			if op.kind == opDelete {
				out = append(out, op)
			}
		}
		for _, op := range run {
			if op.kind == opInsert {
				out = append(out, op)
			}
		}
	}
	return out
}
