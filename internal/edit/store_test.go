package edit

import (
	"testing"

	"modnorm/internal/ast"
)

func TestStorePreservesStagingOrder(t *testing.T) {
	tree := ast.NewTree(0)
	field := tree.New(ast.Node{Kind: ast.NodeField})
	fin := tree.New(ast.Node{Kind: ast.NodeModifier, Keyword: ast.ModFinal})
	stat := tree.New(ast.Node{Kind: ast.NodeModifier, Keyword: ast.ModStatic})
	tree.Attach(field, ast.SlotModifiers, fin)
	tree.Attach(field, ast.SlotModifiers, stat)

	s := NewStore()
	cp := tree.CopyDetached(stat)
	s.InsertAt(cp, 0, ast.SlotModifiers, field)
	s.Remove(stat)
	s.Remove(fin)

	ops := s.Ops()
	if len(ops) != 3 {
		t.Fatalf("Len = %d, want 3", len(ops))
	}
	if ops[0].Kind != OpInsertAt || ops[0].Copy != cp || ops[0].Index != 0 || ops[0].Parent != field {
		t.Fatalf("ops[0] = %+v", ops[0])
	}
	if ops[0].Slot != ast.SlotModifiers {
		t.Fatalf("ops[0].Slot = %v", ops[0].Slot)
	}
	if ops[1].Kind != OpRemove || ops[1].Node != stat {
		t.Fatalf("ops[1] = %+v", ops[1])
	}
	if ops[2].Kind != OpRemove || ops[2].Node != fin {
		t.Fatalf("ops[2] = %+v", ops[2])
	}
}

func TestStoreDiscard(t *testing.T) {
	s := NewStore()
	s.Remove(ast.NodeID(1))
	s.Remove(ast.NodeID(2))
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	s.Discard()
	if s.Len() != 0 {
		t.Fatalf("Len after Discard = %d, want 0", s.Len())
	}
}
