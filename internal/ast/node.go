package ast

import (
	"modnorm/internal/source"
)

// NodeKind discriminates tree nodes. The declaration kinds form the
// closed set the rule engine dispatches over; Modifier and Annotation
// are the members of a declaration's extended-modifier list.
type NodeKind uint8

const (
	NodeField NodeKind = iota
	NodeMethod
	NodeType
	NodeEnum
	NodeAnnotationType
	NodeAnnotationTypeMember
	NodeParam

	NodeModifier
	NodeAnnotation
)

func (k NodeKind) String() string {
	switch k {
	case NodeField:
		return "field"
	case NodeMethod:
		return "method"
	case NodeType:
		return "type"
	case NodeEnum:
		return "enum"
	case NodeAnnotationType:
		return "annotation-type"
	case NodeAnnotationTypeMember:
		return "annotation-member"
	case NodeParam:
		return "param"
	case NodeModifier:
		return "modifier"
	case NodeAnnotation:
		return "annotation"
	}
	return "unknown"
}

// IsDeclaration reports whether the kind participates in rule dispatch.
func (k NodeKind) IsDeclaration() bool {
	return k <= NodeParam
}

// SlotKind names the child-list slot a node occupies in its parent.
type SlotKind uint8

const (
	SlotNone SlotKind = iota
	// SlotModifiers is the extended-modifier list of a declaration.
	SlotModifiers
	// SlotMembers holds the member declarations of a type-like node.
	SlotMembers
	// SlotParams holds the formal parameters of a method.
	SlotParams
)

func (s SlotKind) String() string {
	switch s {
	case SlotModifiers:
		return "modifiers"
	case SlotMembers:
		return "members"
	case SlotParams:
		return "params"
	}
	return "none"
}

// Node is one tree node. Nodes are owned by the parsed tree and treated
// as read-only during a rule pass; all mutation goes through the edit log.
type Node struct {
	Kind   NodeKind
	Parent NodeID
	Slot   SlotKind
	Index  uint32
	Span   source.Span

	// Name is the declared name, or the annotation name for NodeAnnotation.
	Name string

	// Keyword is set for NodeModifier only.
	Keyword Keyword

	// Interface marks a NodeType declared with 'interface'.
	Interface bool

	// Mods is the extended-modifier list in source order: a mix of
	// NodeModifier and NodeAnnotation children.
	Mods []NodeID

	// Children are SlotMembers (type-like nodes) or SlotParams (methods).
	Children []NodeID

	// Detached marks a copy produced for insertion; it is not reachable
	// from the parsed tree and must never be the target of an edit.
	Detached bool
}

// IsModifier reports whether the node is a true modifier (not an annotation).
func (n *Node) IsModifier() bool {
	return n.Kind == NodeModifier
}
