package rules

import (
	"fmt"

	"modnorm/internal/ast"
)

// Walk performs a single pre-order depth-first traversal of the tree,
// invoking the visitor's hook for each declaration node. A hook
// returning DoNotVisitSubtree skips that node's children for this pass;
// the children are not deleted, only left undecided until the staged
// edits commit and the tree is re-parsed.
//
// Any hook error aborts the traversal immediately. The caller must then
// discard the pass's store: staged edits from a failed pass are never
// partially applied.
func Walk(ctx *Context, v Visitor) error {
	for _, root := range ctx.Tree.Roots() {
		if err := walkNode(ctx, v, root); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(ctx *Context, v Visitor, id ast.NodeID) error {
	node := ctx.Tree.Get(id)
	if node == nil {
		return nil
	}

	var (
		control VisitControl
		err     error
	)
	switch node.Kind {
	case ast.NodeField:
		control, err = v.VisitField(ctx, id)
	case ast.NodeMethod:
		control, err = v.VisitMethod(ctx, id)
	case ast.NodeType:
		control, err = v.VisitType(ctx, id)
	case ast.NodeEnum:
		control, err = v.VisitEnum(ctx, id)
	case ast.NodeAnnotationType:
		control, err = v.VisitAnnotationType(ctx, id)
	case ast.NodeAnnotationTypeMember:
		control, err = v.VisitAnnotationTypeMember(ctx, id)
	case ast.NodeParam:
		control, err = v.VisitParam(ctx, id)
	case ast.NodeModifier, ast.NodeAnnotation:
		// Extended modifiers hang off the modifier slot and are only
		// ever read through their owning declaration.
		return nil
	default:
		return fmt.Errorf("rules: unknown declaration kind %d", node.Kind)
	}
	if err != nil {
		return err
	}
	if control == DoNotVisitSubtree {
		return nil
	}

	for _, child := range node.Children {
		if err := walkNode(ctx, v, child); err != nil {
			return err
		}
	}
	return nil
}
