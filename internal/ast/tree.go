package ast

import (
	"fmt"

	"fortio.org/safecast"

	"modnorm/internal/source"
)

// Tree is the declaration tree of one compilation unit. It owns every
// node; rules read it and stage edits elsewhere, so a Tree is never
// mutated during a pass.
type Tree struct {
	File  source.FileID
	nodes *Arena[Node]
	roots []NodeID

	// UnitName is the name of the first top-level type, used by the
	// preview surface to match against a selected element.
	UnitName string
}

// NewTree creates an empty tree for the given file.
func NewTree(file source.FileID) *Tree {
	return &Tree{
		File:  file,
		nodes: NewArena[Node](1 << 6),
	}
}

// New allocates a node and returns its ID.
func (t *Tree) New(node Node) NodeID {
	return NodeID(t.nodes.Allocate(node))
}

// Get returns the node for id, or nil for NoNodeID.
func (t *Tree) Get(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Len returns the number of allocated nodes, detached copies included.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}

// Roots returns the top-level declarations.
func (t *Tree) Roots() []NodeID {
	return t.roots
}

// AddRoot registers a top-level declaration.
func (t *Tree) AddRoot(id NodeID) {
	t.roots = append(t.roots, id)
}

// Attach links child into the named slot of parent, recording the
// location-in-parent (slot and index) on the child.
func (t *Tree) Attach(parent NodeID, slot SlotKind, child NodeID) {
	p := t.Get(parent)
	c := t.Get(child)
	if p == nil || c == nil {
		return
	}

	var index int
	switch slot {
	case SlotModifiers:
		index = len(p.Mods)
		p.Mods = append(p.Mods, child)
	case SlotMembers, SlotParams:
		index = len(p.Children)
		p.Children = append(p.Children, child)
	default:
		return
	}

	idx, err := safecast.Conv[uint32](index)
	if err != nil {
		panic(fmt.Errorf("slot index overflow: %w", err))
	}
	c.Parent = parent
	c.Slot = slot
	c.Index = idx
}

// CopyDetached produces a detached structural copy of a modifier or
// annotation node. The copy carries the original's span (for rendering)
// but no parent link, and is only ever referenced by InsertAt edits.
func (t *Tree) CopyDetached(id NodeID) NodeID {
	orig := t.Get(id)
	if orig == nil {
		return NoNodeID
	}
	cp := *orig
	cp.Parent = NoNodeID
	cp.Slot = SlotNone
	cp.Index = 0
	cp.Mods = nil
	cp.Children = nil
	cp.Detached = true
	return t.New(cp)
}

// ModifiersOnly filters the extended-modifier list of node down to the
// true-modifier subsequence, in source order.
func (t *Tree) ModifiersOnly(id NodeID) []NodeID {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	out := make([]NodeID, 0, len(n.Mods))
	for _, m := range n.Mods {
		if mod := t.Get(m); mod != nil && mod.IsModifier() {
			out = append(out, m)
		}
	}
	return out
}

// IsInterfaceLike reports whether id is a type declaration explicitly
// marked as an interface, or an annotation-type declaration.
func (t *Tree) IsInterfaceLike(id NodeID) bool {
	n := t.Get(id)
	if n == nil {
		return false
	}
	switch n.Kind {
	case NodeType:
		return n.Interface
	case NodeAnnotationType:
		return true
	default:
		return false
	}
}
