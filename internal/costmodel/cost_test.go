package costmodel

import (
	"testing"

	"github.com/dimelords/xmldiff/pkg/unode"
)

func TestSubtreeCost(t *testing.T) {
	n, err := unode.Parse(`<foo bar="1" baz="2">hello<child/></foo>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := New()
	// 1 (self) + 2 attrs + 1 text + 1 (child's own presence) = 5
	if got := m.SubtreeCost(SideOld, n); got != 5 {
		t.Errorf("SubtreeCost() = %d, want 5", got)
	}
}

func TestSubtreeCostMemoizedPerSide(t *testing.T) {
	n, err := unode.Parse(`<foo/>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := New()
	first := m.SubtreeCost(SideOld, n)
	second := m.SubtreeCost(SideOld, n)
	if first != second {
		t.Errorf("memoized cost changed: %d vs %d", first, second)
	}

	// other has the same id as n; its SideNew entry must not reuse n's.
	other, err := unode.Parse(`<foo a="1"/>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := m.SubtreeCost(SideNew, other); got != 2 {
		t.Errorf("SubtreeCost(SideNew) = %d, want 2", got)
	}
}

func TestComputeCostDifferentNamesIsInfinite(t *testing.T) {
	a, _ := unode.Parse(`<foo/>`)
	b, _ := unode.Parse(`<bar/>`)
	m := New()
	if got := m.ComputeCost(a, b); got != Infinite {
		t.Errorf("ComputeCost() = %d, want Infinite", got)
	}
}

func TestComputeCostIdenticalIsZero(t *testing.T) {
	a, _ := unode.Parse(`<foo bar="1"><child/></foo>`)
	b, _ := unode.Parse(`<foo bar="1"><child/></foo>`)
	m := New()
	if got := m.ComputeCost(a, b); got != 0 {
		t.Errorf("ComputeCost() = %d, want 0", got)
	}
}

func TestComputeCostAttributeChange(t *testing.T) {
	a, _ := unode.Parse(`<foo bar="old"/>`)
	b, _ := unode.Parse(`<foo bar="new"/>`)
	m := New()
	if got := m.ComputeCost(a, b); got != 1 {
		t.Errorf("ComputeCost() = %d, want 1", got)
	}
}

func TestComputeCostTextChange(t *testing.T) {
	a, _ := unode.Parse(`<foo>old</foo>`)
	b, _ := unode.Parse(`<foo>new</foo>`)
	m := New()
	if got := m.ComputeCost(a, b); got != 1 {
		t.Errorf("ComputeCost() = %d, want 1", got)
	}
}

func TestAlignMatrixAllDeletesWhenNoMatch(t *testing.T) {
	a, _ := unode.Parse(`<root><x/><y/></root>`)
	b, _ := unode.Parse(`<root></root>`)
	m := New()
	matrix := m.AlignMatrix(a.Children, b.Children)
	got := matrix[len(a.Children)][len(b.Children)]
	want := m.SubtreeCost(SideOld, a.Children[0]) + m.SubtreeCost(SideOld, a.Children[1])
	if got != want {
		t.Errorf("alignment cost = %d, want %d", got, want)
	}
}
