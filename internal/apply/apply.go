package apply

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"modnorm/internal/ast"
	"modnorm/internal/edit"
	"modnorm/internal/source"
)

// ErrStaleSource is returned when the text under a staged edit no
// longer matches the tree the edit was computed from.
var ErrStaleSource = errors.New("source changed under staged edits")

// Change is one human-readable description of an applied refactoring.
type Change struct {
	Description string
	Span        source.Span
}

// Result is the outcome of committing one pass's edit store.
type Result struct {
	Content []byte
	Changed bool
	Changes []Change
}

// parentEdits collects the staged ops against one declaration's
// modifier slot, in staging order.
type parentEdits struct {
	parent  ast.NodeID
	ops     []edit.Op
	inserts int
}

type textEdit struct {
	span    source.Span
	oldText string
	newText string
}

// Commit translates the store's op log into text and applies it
// atomically: either every edit lands in the returned content, or the
// original content comes back with an error. The tree itself is never
// mutated; a changed file must be re-parsed before the next pass.
func Commit(fs *source.FileSet, tree *ast.Tree, store *edit.Store) (*Result, error) {
	file := fs.Get(tree.File)
	res := &Result{Content: file.Content}
	if store.Len() == 0 {
		return res, nil
	}

	groups, err := groupByParent(tree, store)
	if err != nil {
		return res, err
	}

	edits := make([]textEdit, 0, len(groups))
	for _, g := range groups {
		te, changes, err := rewriteModifierRegion(fs, tree, g)
		if err != nil {
			return res, err
		}
		edits = append(edits, te)
		res.Changes = append(res.Changes, changes...)
	}

	// Regions of distinct declarations never overlap, so applying
	// from the back keeps every earlier span valid.
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].span.Start > edits[j].span.Start
	})

	working := append([]byte(nil), file.Content...)
	for _, te := range edits {
		start, end := int(te.span.Start), int(te.span.End)
		if start < 0 || end < start || end > len(working) {
			return res, fmt.Errorf("apply: edit span %s out of range: %w", te.span, ErrStaleSource)
		}
		if string(working[start:end]) != te.oldText {
			return res, fmt.Errorf("apply: %s: %w", te.span, ErrStaleSource)
		}
		suffix := append([]byte(nil), working[end:]...)
		working = append(append(working[:start], []byte(te.newText)...), suffix...)
	}

	res.Content = working
	res.Changed = true
	return res, nil
}

// groupByParent buckets the op log per declaration, keeping the staging
// order within each bucket. Only the modifier slot can be edited.
func groupByParent(tree *ast.Tree, store *edit.Store) ([]*parentEdits, error) {
	var order []*parentEdits
	index := make(map[ast.NodeID]*parentEdits)

	groupFor := func(parent ast.NodeID) *parentEdits {
		if g, ok := index[parent]; ok {
			return g
		}
		g := &parentEdits{parent: parent}
		index[parent] = g
		order = append(order, g)
		return g
	}

	for _, op := range store.Ops() {
		switch op.Kind {
		case edit.OpRemove:
			node := tree.Get(op.Node)
			if node == nil || node.Detached {
				return nil, fmt.Errorf("apply: remove targets a node outside the original tree")
			}
			if node.Slot != ast.SlotModifiers {
				return nil, fmt.Errorf("apply: remove targets slot %s", node.Slot)
			}
			g := groupFor(node.Parent)
			g.ops = append(g.ops, op)
		case edit.OpInsertAt:
			cp := tree.Get(op.Copy)
			if cp == nil || !cp.Detached {
				return nil, fmt.Errorf("apply: insert payload is not a detached copy")
			}
			if op.Slot != ast.SlotModifiers {
				return nil, fmt.Errorf("apply: insert targets slot %s", op.Slot)
			}
			g := groupFor(op.Parent)
			g.ops = append(g.ops, op)
			g.inserts++
		default:
			return nil, fmt.Errorf("apply: unknown op kind %d", op.Kind)
		}
	}
	return order, nil
}

// rewriteModifierRegion replays one declaration's ops over its extended
// modifier list and renders the surviving sequence back over the
// original region.
func rewriteModifierRegion(fs *source.FileSet, tree *ast.Tree, g *parentEdits) (textEdit, []Change, error) {
	parent := tree.Get(g.parent)
	if parent == nil || len(parent.Mods) == 0 {
		return textEdit{}, nil, fmt.Errorf("apply: edits target a declaration without modifiers")
	}

	region := tree.Get(parent.Mods[0]).Span
	for _, m := range parent.Mods[1:] {
		region = region.Cover(tree.Get(m).Span)
	}

	// Each modifier keyword must still read back from its recorded
	// span; anything else means the content moved under the tree.
	for _, m := range parent.Mods {
		node := tree.Get(m)
		if node.IsModifier() && fs.Text(node.Span) != node.Keyword.String() {
			return textEdit{}, nil, fmt.Errorf("apply: %s reads %q, want %q: %w",
				node.Span, fs.Text(node.Span), node.Keyword.String(), ErrStaleSource)
		}
	}

	final := append([]ast.NodeID(nil), parent.Mods...)
	for _, op := range g.ops {
		switch op.Kind {
		case edit.OpInsertAt:
			idx := op.Index
			if idx > len(final) {
				idx = len(final)
			}
			final = append(final, ast.NoNodeID)
			copy(final[idx+1:], final[idx:])
			final[idx] = op.Copy
		case edit.OpRemove:
			for i, id := range final {
				if id == op.Node {
					final = append(final[:i], final[i+1:]...)
					break
				}
			}
		}
	}

	parts := make([]string, 0, len(final))
	for _, id := range final {
		parts = append(parts, renderExtModifier(fs, tree, id))
	}
	newText := strings.Join(parts, " ")

	file := fs.Get(tree.File)
	if newText == "" {
		// The whole list went away; swallow the trailing gap so the
		// declaration does not start with stray spaces.
		for region.End < uint32(len(file.Content)) {
			if b := file.Content[region.End]; b != ' ' && b != '\t' {
				break
			}
			region.End++
		}
	}

	te := textEdit{
		span:    region,
		oldText: fs.Text(source.Span{File: tree.File, Start: region.Start, End: region.End}),
		newText: newText,
	}
	return te, describeChanges(tree, g, region), nil
}

// renderExtModifier produces the source text for one surviving
// extended modifier. Copies carry the original's span, so annotations
// render byte for byte.
func renderExtModifier(fs *source.FileSet, tree *ast.Tree, id ast.NodeID) string {
	node := tree.Get(id)
	if node == nil {
		return ""
	}
	if node.IsModifier() {
		return node.Keyword.String()
	}
	return fs.Text(node.Span)
}

// describeChanges derives the preview descriptions for one
// declaration. A pass stages either implied-modifier removals or a
// reorder for a given node, never both.
func describeChanges(tree *ast.Tree, g *parentEdits, region source.Span) []Change {
	parent := tree.Get(g.parent)
	if g.inserts > 0 {
		return []Change{{
			Description: fmt.Sprintf("reordered modifiers on '%s'", parent.Name),
			Span:        region,
		}}
	}
	out := make([]Change, 0, len(g.ops))
	for _, op := range g.ops {
		node := tree.Get(op.Node)
		out = append(out, Change{
			Description: fmt.Sprintf("removed redundant '%s'", node.Keyword),
			Span:        node.Span,
		})
	}
	return out
}
