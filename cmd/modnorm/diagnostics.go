package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"modnorm/internal/driver"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.Faint)
)

// printDiagnostics renders a file's diagnostic bag as path:line:col
// lines, worst first.
func printDiagnostics(out io.Writer, res *driver.FileResult) {
	if res.Bag == nil || res.FS == nil {
		return
	}
	res.Bag.Sort()
	for _, d := range res.Bag.Items() {
		start, _ := res.FS.Resolve(d.Primary)
		errorColor.Fprintf(out, "%s:%d:%d: ", res.Path, start.Line, start.Col)
		fmt.Fprintf(out, "%s %s\n", d.Code.ID(), d.Message)
		for _, n := range d.Notes {
			ns, _ := res.FS.Resolve(n.Span)
			noteColor.Fprintf(out, "  note %d:%d: %s\n", ns.Line, ns.Col, n.Msg)
		}
	}
}
