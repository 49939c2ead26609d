package edit

import (
	"modnorm/internal/ast"
)

// OpKind discriminates staged edit operations.
type OpKind uint8

const (
	// OpRemove deletes a node from its parent's child list.
	OpRemove OpKind = iota
	// OpInsertAt inserts a detached copy at a position within the named
	// child-list slot of a parent.
	OpInsertAt
)

func (k OpKind) String() string {
	switch k {
	case OpRemove:
		return "remove"
	case OpInsertAt:
		return "insert-at"
	}
	return "unknown"
}

// Op is one staged tree edit. Remove targets an original-tree node;
// InsertAt carries a detached copy plus its destination.
type Op struct {
	Kind   OpKind
	Node   ast.NodeID // Remove target
	Copy   ast.NodeID // InsertAt payload, always a detached copy
	Index  int
	Slot   ast.SlotKind
	Parent ast.NodeID
}

// Store is the append-only edit log for one file-transformation session.
// Rules write it during a pass; the applier reads it exactly once after
// the pass completes. The store performs no cross-edit validation: the
// rule keeps edits non-conflicting via the visit-control protocol.
type Store struct {
	ops []Op
}

func NewStore() *Store {
	return &Store{
		ops: make([]Op, 0, 8),
	}
}

// Remove stages the deletion of node from its parent's child list.
func (s *Store) Remove(node ast.NodeID) {
	s.ops = append(s.ops, Op{
		Kind: OpRemove,
		Node: node,
	})
}

// InsertAt stages the insertion of a detached copy at index within the
// named slot of parent.
func (s *Store) InsertAt(copyID ast.NodeID, index int, slot ast.SlotKind, parent ast.NodeID) {
	s.ops = append(s.ops, Op{
		Kind:   OpInsertAt,
		Copy:   copyID,
		Index:  index,
		Slot:   slot,
		Parent: parent,
	})
}

// Ops returns the staged edits in staging order.
// Callers must not modify the returned slice.
func (s *Store) Ops() []Op {
	return s.ops
}

// Len returns the number of staged edits.
func (s *Store) Len() int {
	return len(s.ops)
}

// Discard drops every staged edit. Used when a pass fails fatally so
// that no partially-staged state can leak into an apply.
func (s *Store) Discard() {
	s.ops = s.ops[:0]
}
