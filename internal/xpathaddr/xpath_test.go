package xpathaddr

import (
	"testing"

	"github.com/dimelords/xmldiff/pkg/unode"
)

func TestBuildSingleSibling(t *testing.T) {
	bar := &unode.UNode{Name: "bar"}
	siblings := []*unode.UNode{bar}

	got := Build("/foo", bar, siblings)
	if got != "/foo/bar" {
		t.Errorf("Build() = %q, want %q", got, "/foo/bar")
	}
}

func TestBuildPositionalAmongSameName(t *testing.T) {
	a := &unode.UNode{Name: "note"}
	b := &unode.UNode{Name: "note"}
	c := &unode.UNode{Name: "note"}
	siblings := []*unode.UNode{a, b, c}

	if got := Build("/root", a, siblings); got != "/root/note[1]" {
		t.Errorf("first note: got %q", got)
	}
	if got := Build("/root", b, siblings); got != "/root/note[2]" {
		t.Errorf("second note: got %q", got)
	}
	if got := Build("/root", c, siblings); got != "/root/note[3]" {
		t.Errorf("third note: got %q", got)
	}
}

func TestBuildIgnoresDifferentlyNamedSiblings(t *testing.T) {
	note := &unode.UNode{Name: "note"}
	rest := &unode.UNode{Name: "rest"}
	siblings := []*unode.UNode{note, rest}

	if got := Build("/measure", note, siblings); got != "/measure/note" {
		t.Errorf("note = %q, want unpositioned since it is the only note", got)
	}
	if got := Build("/measure", rest, siblings); got != "/measure/rest" {
		t.Errorf("rest = %q, want unpositioned", got)
	}
}

func TestAttributeAndText(t *testing.T) {
	if got := Attribute("/foo", "bar"); got != "/foo/@bar" {
		t.Errorf("Attribute() = %q", got)
	}
	if got := Text("/foo"); got != "/foo/text()" {
		t.Errorf("Text() = %q", got)
	}
}

func TestStripTerminal(t *testing.T) {
	cases := map[string]string{
		"/foo/@bar":          "/foo",
		"/root/note[2]/text()": "/root/note[2]",
		"/root/note[2]":      "/root/note[2]",
	}
	for in, want := range cases {
		if got := StripTerminal(in); got != want {
			t.Errorf("StripTerminal(%q) = %q, want %q", in, got, want)
		}
	}
}
