package unode

import (
	"errors"
	"testing"

	"github.com/dimelords/xmldiff/internal/xerr"
)

func TestParseSelfClosingEquivalence(t *testing.T) {
	a, err := Parse(`<x/>`)
	if err != nil {
		t.Fatalf("Parse self-closing: %v", err)
	}
	b, err := Parse(`<x></x>`)
	if err != nil {
		t.Fatalf("Parse open/close: %v", err)
	}

	if a.Name != b.Name {
		t.Errorf("Name = %q, want %q", a.Name, b.Name)
	}
	if a.Text != b.Text {
		t.Errorf("Text = %q, want %q", a.Text, b.Text)
	}
	if len(a.Children) != 0 || len(b.Children) != 0 {
		t.Errorf("expected no children, got %d and %d", len(a.Children), len(b.Children))
	}
}

func TestParseAttributes(t *testing.T) {
	n, err := Parse(`<foo bar="old" baz="1"/>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := n.Attrs["bar"]; got != "old" {
		t.Errorf("Attrs[bar] = %q, want %q", got, "old")
	}
	if got := n.Attrs["baz"]; got != "1" {
		t.Errorf("Attrs[baz] = %q, want %q", got, "1")
	}
	if n.AttrCount() != 2 {
		t.Errorf("AttrCount() = %d, want 2", n.AttrCount())
	}
}

func TestParseCoalescesInterleavedText(t *testing.T) {
	n, err := Parse(`<p>a<b/>c</p>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Text != "ac" {
		t.Errorf("Text = %q, want %q", n.Text, "ac")
	}
	if len(n.Children) != 1 || n.Children[0].Name != "b" {
		t.Errorf("Children = %+v, want single <b>", n.Children)
	}
}

func TestParseChildOrderPreserved(t *testing.T) {
	n, err := Parse(`<root><a/><b/><c/></root>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(n.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(n.Children), len(want))
	}
	for i, name := range want {
		if n.Children[i].Name != name {
			t.Errorf("Children[%d].Name = %q, want %q", i, n.Children[i].Name, name)
		}
	}
}

func TestParseIDsAreDenseWithinOneParse(t *testing.T) {
	n, err := Parse(`<root><a/><b><c/></b></root>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	seen := map[int]bool{}
	var walk func(*UNode)
	walk = func(u *UNode) {
		if seen[u.ID] {
			t.Errorf("duplicate id %d within one parse", u.ID)
		}
		seen[u.ID] = true
		for _, c := range u.Children {
			walk(c)
		}
	}
	walk(n)
	if len(seen) != 4 {
		t.Errorf("saw %d distinct ids, want 4", len(seen))
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, err := Parse(`<foo>`)
	if err == nil {
		t.Fatal("expected error for malformed xml")
	}
	var xe *xerr.Error
	if !errors.As(err, &xe) {
		t.Errorf("expected *xerr.Error, got %T", err)
	}
	if !errors.Is(err, xerr.ErrMalformedXML) {
		t.Error("expected errors.Is(err, xerr.ErrMalformedXML) to hold")
	}
}
