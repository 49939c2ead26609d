package apply

import (
	"errors"
	"strings"
	"testing"

	"modnorm/internal/diag"
	"modnorm/internal/parser"
	"modnorm/internal/rules"
	"modnorm/internal/source"
)

// runPass parses src, walks the modifier rule once, and commits the
// staged edits.
func runPass(t *testing.T, src string) (*Result, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.java", []byte(src))
	bag := diag.NewBag(16)
	tree := parser.ParseFile(fs, id, bag)
	if bag.HasErrors() {
		t.Fatalf("parse errors: %v", bag.Items())
	}
	ctx := rules.NewContext(tree)
	if err := rules.Walk(ctx, &rules.ModifierOrder{}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	res, err := Commit(fs, tree, ctx.Edits)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	return res, fs
}

func TestReorderSwapsFinalStatic(t *testing.T) {
	res, _ := runPass(t, "class C { final static int X = 1; }")
	if !res.Changed {
		t.Fatalf("expected a change")
	}
	want := "class C { static final int X = 1; }"
	if string(res.Content) != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
	if len(res.Changes) != 1 || !strings.Contains(res.Changes[0].Description, "reordered modifiers") {
		t.Fatalf("changes = %+v", res.Changes)
	}
}

func TestReorderKeepsModifierMultiset(t *testing.T) {
	res, _ := runPass(t, "class C { native synchronized private void go(); }")
	want := "class C { private synchronized native void go(); }"
	if string(res.Content) != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestInterfaceFieldLosesImpliedModifiers(t *testing.T) {
	res, _ := runPass(t, "interface I { public static final int X = 1; }")
	want := "interface I { int X = 1; }"
	if string(res.Content) != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
	if len(res.Changes) != 3 {
		t.Fatalf("changes = %+v, want 3 removals", res.Changes)
	}
	for i, kw := range []string{"public", "static", "final"} {
		if !strings.Contains(res.Changes[i].Description, "'"+kw+"'") {
			t.Fatalf("changes[%d] = %q", i, res.Changes[i].Description)
		}
	}
}

func TestInterfaceMethodLosesPublicAbstract(t *testing.T) {
	res, _ := runPass(t, "interface I { public abstract void m(); }")
	want := "interface I { void m(); }"
	if string(res.Content) != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestInterfaceParamLosesFinal(t *testing.T) {
	res, _ := runPass(t, "interface I { void m(final int x); }")
	want := "interface I { void m(int x); }"
	if string(res.Content) != want {
		t.Fatalf("content = %q, want %q", res.Content, want)
	}
}

func TestCanonicalInputIsUntouched(t *testing.T) {
	src := "class C { private static final int X = 1; }"
	res, _ := runPass(t, src)
	if res.Changed {
		t.Fatalf("expected no change, got %q", res.Content)
	}
	if string(res.Content) != src {
		t.Fatalf("content = %q, want original", res.Content)
	}
}

func TestSecondPassIsIdempotent(t *testing.T) {
	res, _ := runPass(t, "class C { final static transient int X = 1; }")
	again, _ := runPass(t, string(res.Content))
	if again.Changed {
		t.Fatalf("second pass changed %q into %q", res.Content, again.Content)
	}
}

func TestAnnotationsSurviveReorder(t *testing.T) {
	res, _ := runPass(t, `class C { @Deprecated final static int X = 1; }`)
	// The re-threading indices count the annotation, so only part of
	// the sequence is touched; the annotation itself must survive.
	if !strings.Contains(string(res.Content), "@Deprecated") {
		t.Fatalf("annotation lost: %q", res.Content)
	}
	for _, kw := range []string{"static", "final"} {
		if !strings.Contains(string(res.Content), kw) {
			t.Fatalf("%s lost: %q", kw, res.Content)
		}
	}
}

func TestCommitRefusesStaleSource(t *testing.T) {
	fs := source.NewFileSet()
	src := "class C { final static int X = 1; }"
	id := fs.AddVirtual("test.java", []byte(src))
	bag := diag.NewBag(16)
	tree := parser.ParseFile(fs, id, bag)
	ctx := rules.NewContext(tree)
	if err := rules.Walk(ctx, &rules.ModifierOrder{}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	// Clobber a modifier byte after the pass computed its edits.
	fs.Get(id).Content[len("class C { ")] = 'F'

	if _, err := Commit(fs, tree, ctx.Edits); !errors.Is(err, ErrStaleSource) {
		t.Fatalf("expected ErrStaleSource, got %v", err)
	}
}

func TestCommitWithEmptyStoreIsNoop(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.java", []byte("class C {}"))
	tree := parser.ParseFile(fs, id, diag.NewBag(4))
	res, err := Commit(fs, tree, rules.NewContext(tree).Edits)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if res.Changed || len(res.Changes) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRemoveRejectsDetachedTarget(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.java", []byte("class C { static int X; }"))
	tree := parser.ParseFile(fs, id, diag.NewBag(4))
	class := tree.Get(tree.Roots()[0])
	field := class.Children[0]
	mod := tree.ModifiersOnly(field)[0]

	ctx := rules.NewContext(tree)
	cp := ctx.CopyOf(mod)
	ctx.Edits.Remove(cp) // edits must reference original-tree nodes only

	if _, err := Commit(fs, tree, ctx.Edits); err == nil {
		t.Fatalf("expected an error for a detached remove target")
	}
}
