package rules

import (
	"modnorm/internal/ast"
)

// VisitControl is the signal a hook returns to the traversal engine.
type VisitControl uint8

const (
	// VisitSubtree lets the engine descend into the node's children.
	VisitSubtree VisitControl = iota
	// DoNotVisitSubtree stops descent for this pass. Returned whenever
	// the node was just edited, so stale modifier positions are never
	// re-derived from a tree the store already has changes against.
	DoNotVisitSubtree
)

func (c VisitControl) String() string {
	if c == DoNotVisitSubtree {
		return "do-not-visit-subtree"
	}
	return "visit-subtree"
}

// Visitor is the rule contract: one hook per declaration kind. The
// engine dispatches with an exhaustive switch over the closed kind set,
// so adding a kind breaks compilation here rather than silently
// skipping nodes.
type Visitor interface {
	VisitField(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitMethod(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitType(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitEnum(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitAnnotationType(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitAnnotationTypeMember(ctx *Context, id ast.NodeID) (VisitControl, error)
	VisitParam(ctx *Context, id ast.NodeID) (VisitControl, error)
}

// BaseVisitor visits every subtree and stages nothing. Rules embed it
// and override only the hooks they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitField(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitMethod(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitType(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitEnum(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitAnnotationType(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitAnnotationTypeMember(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}

func (BaseVisitor) VisitParam(*Context, ast.NodeID) (VisitControl, error) {
	return VisitSubtree, nil
}
