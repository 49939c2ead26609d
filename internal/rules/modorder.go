package rules

import (
	"slices"
	"sort"

	"modnorm/internal/ast"
)

// ModifierOrder removes modifiers implied by the context:
//
//   - public, static and final for interface fields
//   - public and abstract for interface methods and annotation-type members
//   - final for parameters in interface method declarations
//
// and fixes the modifier order everywhere else. It never mutates the
// tree; every decision is staged into the context's edit store, and any
// staged edit forces DoNotVisitSubtree so one pass never derives two
// decisions from the same node.
type ModifierOrder struct {
	BaseVisitor
}

func (r *ModifierOrder) VisitField(ctx *Context, id ast.NodeID) (VisitControl, error) {
	node := ctx.Tree.Get(id)
	if ctx.Tree.IsInterfaceLike(node.Parent) {
		return r.removeImplied(ctx, id, ast.ModPublic, ast.ModStatic, ast.ModFinal), nil
	}
	return r.ensureOrder(ctx, id)
}

func (r *ModifierOrder) VisitMethod(ctx *Context, id ast.NodeID) (VisitControl, error) {
	node := ctx.Tree.Get(id)
	if ctx.Tree.IsInterfaceLike(node.Parent) {
		return r.removeImplied(ctx, id, ast.ModPublic, ast.ModAbstract), nil
	}
	return r.ensureOrder(ctx, id)
}

func (r *ModifierOrder) VisitType(ctx *Context, id ast.NodeID) (VisitControl, error) {
	return r.ensureOrder(ctx, id)
}

func (r *ModifierOrder) VisitEnum(ctx *Context, id ast.NodeID) (VisitControl, error) {
	return r.ensureOrder(ctx, id)
}

func (r *ModifierOrder) VisitAnnotationType(ctx *Context, id ast.NodeID) (VisitControl, error) {
	return r.ensureOrder(ctx, id)
}

func (r *ModifierOrder) VisitAnnotationTypeMember(ctx *Context, id ast.NodeID) (VisitControl, error) {
	return r.removeImplied(ctx, id, ast.ModPublic, ast.ModAbstract), nil
}

func (r *ModifierOrder) VisitParam(ctx *Context, id ast.NodeID) (VisitControl, error) {
	if !r.enclosedByInterfaceMethod(ctx, id) {
		// Unresolvable enclosing chains count as not interface-like:
		// no edit is safer than a wrong one.
		return VisitSubtree, nil
	}
	return r.removeImplied(ctx, id, ast.ModFinal), nil
}

// enclosedByInterfaceMethod reports whether id is a formal parameter of
// a method declared on an interface-like type.
func (r *ModifierOrder) enclosedByInterfaceMethod(ctx *Context, id ast.NodeID) bool {
	node := ctx.Tree.Get(id)
	if node == nil || !node.Parent.IsValid() {
		return false
	}
	method := ctx.Tree.Get(node.Parent)
	if method == nil || method.Kind != ast.NodeMethod {
		return false
	}
	return ctx.Tree.IsInterfaceLike(method.Parent)
}

// removeImplied stages a Remove for every explicit occurrence of the
// implied keywords on the node's true-modifier subsequence.
func (r *ModifierOrder) removeImplied(ctx *Context, id ast.NodeID, implied ...ast.Keyword) VisitControl {
	result := VisitSubtree
	for _, m := range ctx.Tree.ModifiersOnly(id) {
		if slices.Contains(implied, ctx.Tree.Get(m).Keyword) {
			ctx.Edits.Remove(m)
			result = DoNotVisitSubtree
		}
	}
	return result
}

// ensureOrder stages the canonical reordering of the node's modifiers.
// Annotations keep their places; only the true-modifier subsequence is
// re-threaded, one InsertAt(copy)+Remove(original) pair per index from
// startSize onward. The pairs are staged for every such index even when
// only two modifiers swapped; the commit protocol then never needs a
// minimal diff.
func (r *ModifierOrder) ensureOrder(ctx *Context, id ast.NodeID) (VisitControl, error) {
	node := ctx.Tree.Get(id)
	modifiers := ctx.Tree.ModifiersOnly(id)

	ranks := make(map[ast.NodeID]int, len(modifiers))
	for _, m := range modifiers {
		mod := ctx.Tree.Get(m)
		rank, err := ast.CanonicalIndex(mod.Keyword)
		if err != nil {
			// The order table is out of date with the keyword
			// enumeration. Abort before staging anything: a partial
			// ordering would stage inconsistent edits.
			keyword := mod.Name
			if keyword == "" {
				keyword = mod.Keyword.String()
			}
			return VisitSubtree, &ast.UnorderableModifierError{
				Keyword: keyword,
				Span:    mod.Span,
			}
		}
		ranks[m] = rank
	}

	reordered := slices.Clone(modifiers)
	sort.SliceStable(reordered, func(i, j int) bool {
		return ranks[reordered[i]] < ranks[reordered[j]]
	})
	if slices.Equal(modifiers, reordered) {
		return VisitSubtree, nil
	}

	result := VisitSubtree
	startSize := len(node.Mods) - len(modifiers)
	for i := startSize; i < len(reordered); i++ {
		ctx.Edits.InsertAt(ctx.CopyOf(reordered[i]), i, ast.SlotModifiers, id)
		ctx.Edits.Remove(reordered[i])
		result = DoNotVisitSubtree
	}
	return result, nil
}
