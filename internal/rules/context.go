package rules

import (
	"modnorm/internal/ast"
	"modnorm/internal/edit"
)

// Context carries what a rule needs during one pass: the read-only tree
// (also the facility for producing detached node copies) and the active
// edit store for the file under transformation.
type Context struct {
	Tree  *ast.Tree
	Edits *edit.Store
}

func NewContext(tree *ast.Tree) *Context {
	return &Context{
		Tree:  tree,
		Edits: edit.NewStore(),
	}
}

// CopyOf produces a detached structural copy of a node, suitable as an
// InsertAt payload. The original stays linked in the tree.
func (c *Context) CopyOf(id ast.NodeID) ast.NodeID {
	return c.Tree.CopyDetached(id)
}
