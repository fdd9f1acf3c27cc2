package cluster

import (
	"slices"
	"testing"
)

func TestRegistrySetLookup(t *testing.T) {
	r := NewRegistry()
	leaf := &Leaf{Num: "1", UUID: "u1"}
	r.Set("u1", leaf)

	got, ok := r.Lookup("u1")
	if !ok || got != leaf {
		t.Fatalf("Lookup(u1) = %v, %v; want leaf, true", got, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported ok")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistryEnsureCreatesPlaceholder(t *testing.T) {
	r := NewRegistry()

	e, created := r.Ensure("ghost")
	if !created {
		t.Fatal("Ensure(ghost) created = false, want true")
	}
	g, ok := e.(*Group)
	if !ok {
		t.Fatalf("Ensure(ghost) = %T, want *Group", e)
	}
	if g.Name != "" || g.Len() != 0 {
		t.Errorf("placeholder = %+v, want empty unnamed group", g)
	}

	again, created := r.Ensure("ghost")
	if created || again != e {
		t.Error("second Ensure should return the existing entity")
	}
}

func TestRegistryIDsKeepFirstInsertOrder(t *testing.T) {
	r := NewRegistry()
	r.Set("b", &Leaf{Num: "2"})
	r.Set("a", &Leaf{Num: "1"})
	r.Set("b", NewGroup("B"))

	want := []string{"b", "a"}
	if got := r.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestPromoteLeaf(t *testing.T) {
	r := NewRegistry()
	leaf := &Leaf{Num: "1", UUID: "u1", Name: "Alpha"}
	r.Set("u1", leaf)

	g := r.Promote("u1")

	if cur, _ := r.Lookup("u1"); cur != g {
		t.Fatalf("slot u1 = %T, want promoted group", cur)
	}
	if old, _ := r.Lookup("u1" + PromotedSuffix); old != leaf {
		t.Errorf("slot u1x = %v, want original leaf", old)
	}
	if want := []string{"u1x"}; !slices.Equal(g.Children(), want) {
		t.Errorf("children = %v, want %v", g.Children(), want)
	}
	if g.Name != "Alpha" {
		t.Errorf("promoted name = %q, want %q", g.Name, "Alpha")
	}
}

func TestPromoteGroupIsNoop(t *testing.T) {
	r := NewRegistry()
	g := NewGroup("G", "c1")
	r.Set("g", g)

	if got := r.Promote("g"); got != g {
		t.Error("Promote on a group should return it unchanged")
	}
	if _, ok := r.Lookup("g" + PromotedSuffix); ok {
		t.Error("Promote on a group must not create a re-keyed slot")
	}
}

func TestGroupAddIsSet(t *testing.T) {
	g := NewGroup("G", "a", "b", "a")
	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Len())
	}
	if g.Add("b") {
		t.Error("Add(b) = true for an existing child")
	}
	if !g.Add("c") {
		t.Error("Add(c) = false for a new child")
	}
	if !g.Has("c") || g.Has("z") {
		t.Error("Has reports wrong membership")
	}

	children := g.Children()
	children[0] = "mutated"
	if g.Children()[0] != "a" {
		t.Error("Children() must return a copy")
	}
}

func TestZeroGroupAdd(t *testing.T) {
	var g Group
	if !g.Add("a") || g.Len() != 1 {
		t.Error("zero Group should accept children")
	}
}
