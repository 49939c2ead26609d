package ast

import (
	"testing"
)

func TestAttachRecordsLocationInParent(t *testing.T) {
	tree := NewTree(0)
	typ := tree.New(Node{Kind: NodeType, Name: "A", Interface: true})
	field := tree.New(Node{Kind: NodeField, Name: "X"})
	pub := tree.New(Node{Kind: NodeModifier, Keyword: ModPublic})
	ann := tree.New(Node{Kind: NodeAnnotation, Name: "Deprecated"})

	tree.Attach(typ, SlotMembers, field)
	tree.Attach(field, SlotModifiers, ann)
	tree.Attach(field, SlotModifiers, pub)

	f := tree.Get(field)
	if f.Parent != typ || f.Slot != SlotMembers || f.Index != 0 {
		t.Fatalf("field location = %d/%v/%d", f.Parent, f.Slot, f.Index)
	}
	m := tree.Get(pub)
	if m.Parent != field || m.Slot != SlotModifiers || m.Index != 1 {
		t.Fatalf("modifier location = %d/%v/%d", m.Parent, m.Slot, m.Index)
	}
}

func TestModifiersOnlySkipsAnnotations(t *testing.T) {
	tree := NewTree(0)
	field := tree.New(Node{Kind: NodeField})
	ann := tree.New(Node{Kind: NodeAnnotation, Name: "A"})
	fin := tree.New(Node{Kind: NodeModifier, Keyword: ModFinal})
	stat := tree.New(Node{Kind: NodeModifier, Keyword: ModStatic})
	tree.Attach(field, SlotModifiers, ann)
	tree.Attach(field, SlotModifiers, fin)
	tree.Attach(field, SlotModifiers, stat)

	mods := tree.ModifiersOnly(field)
	if len(mods) != 2 || mods[0] != fin || mods[1] != stat {
		t.Fatalf("ModifiersOnly = %v, want [%d %d]", mods, fin, stat)
	}
}

func TestCopyDetached(t *testing.T) {
	tree := NewTree(0)
	field := tree.New(Node{Kind: NodeField})
	fin := tree.New(Node{Kind: NodeModifier, Keyword: ModFinal})
	tree.Attach(field, SlotModifiers, fin)

	cp := tree.CopyDetached(fin)
	if cp == fin || !cp.IsValid() {
		t.Fatalf("expected a fresh node id, got %d", cp)
	}
	n := tree.Get(cp)
	if !n.Detached || n.Parent != NoNodeID || n.Keyword != ModFinal {
		t.Fatalf("unexpected copy %+v", n)
	}
	// Original stays linked.
	if tree.Get(fin).Parent != field {
		t.Fatalf("original modifier lost its parent")
	}
}

func TestIsInterfaceLike(t *testing.T) {
	tree := NewTree(0)
	iface := tree.New(Node{Kind: NodeType, Interface: true})
	class := tree.New(Node{Kind: NodeType})
	annType := tree.New(Node{Kind: NodeAnnotationType})
	enum := tree.New(Node{Kind: NodeEnum})

	if !tree.IsInterfaceLike(iface) {
		t.Fatalf("interface type should be interface-like")
	}
	if tree.IsInterfaceLike(class) {
		t.Fatalf("class should not be interface-like")
	}
	if !tree.IsInterfaceLike(annType) {
		t.Fatalf("annotation type should be interface-like")
	}
	if tree.IsInterfaceLike(enum) || tree.IsInterfaceLike(NoNodeID) {
		t.Fatalf("enum and invalid ids should not be interface-like")
	}
}
