package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"modnorm/internal/ast"
	"modnorm/internal/diag"
	"modnorm/internal/driver"
	"modnorm/internal/parser"
	"modnorm/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.java>",
	Short: "Dump the declaration tree of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	tree := parser.ParseFile(fs, id, bag)

	out := cmd.OutOrStdout()
	for _, root := range tree.Roots() {
		dumpNode(out, tree, root, 0)
	}
	if bag.Len() > 0 {
		printDiagnostics(out, &driver.FileResult{Path: args[0], FS: fs, Bag: bag})
	}
	if bag.HasErrors() {
		return fmt.Errorf("parse: %s has syntax errors", args[0])
	}
	return nil
}

func dumpNode(out io.Writer, tree *ast.Tree, id ast.NodeID, depth int) {
	node := tree.Get(id)
	if node == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	label := node.Kind.String()
	if node.Kind == ast.NodeType && node.Interface {
		label = "interface"
	}

	var mods []string
	for _, m := range node.Mods {
		em := tree.Get(m)
		if em.IsModifier() {
			mods = append(mods, em.Keyword.String())
		} else {
			mods = append(mods, "@"+em.Name)
		}
	}
	suffix := ""
	if len(mods) > 0 {
		suffix = " [" + strings.Join(mods, " ") + "]"
	}
	fmt.Fprintf(out, "%s%s %s%s\n", indent, label, node.Name, suffix)

	for _, child := range node.Children {
		dumpNode(out, tree, child, depth+1)
	}
}
