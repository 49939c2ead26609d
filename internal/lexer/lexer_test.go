package lexer

import (
	"testing"

	"modnorm/internal/source"
	"modnorm/internal/token"
)

func lexAll(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("Test.java", []byte(input))
	lx := New(fs.Get(id))

	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexFieldDeclaration(t *testing.T) {
	toks := lexAll(t, "public static final int X = 1;")

	want := []token.Kind{
		token.KwPublic, token.KwStatic, token.KwFinal,
		token.Ident, token.Ident, token.Assign, token.IntLit, token.Semicolon,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Fatalf("token %d = %v (%q), want %v", i, toks[i].Kind, toks[i].Text, kind)
		}
	}
}

func TestLexSpansMatchSource(t *testing.T) {
	input := "final static int X;"
	toks := lexAll(t, input)

	if toks[0].Text != "final" || toks[0].Span.Start != 0 || toks[0].Span.End != 5 {
		t.Fatalf("unexpected first token %+v", toks[0])
	}
	if toks[1].Text != "static" || toks[1].Span.Start != 6 || toks[1].Span.End != 12 {
		t.Fatalf("unexpected second token %+v", toks[1])
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks := lexAll(t, "// line\npublic /* block\nstill block */ class")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(toks), toks)
	}
	if toks[0].Kind != token.KwPublic || toks[1].Kind != token.KwClass {
		t.Fatalf("unexpected tokens %v", toks)
	}
}

func TestLexAnnotationAndStrings(t *testing.T) {
	toks := lexAll(t, `@Deprecated String s = "a;b";`)

	want := []token.Kind{
		token.At, token.Ident, token.Ident, token.Ident,
		token.Assign, token.StringLit, token.Semicolon,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Fatalf("token %d = %v (%q), want %v", i, toks[i].Kind, toks[i].Text, kind)
		}
	}
	if toks[5].Text != `"a;b"` {
		t.Fatalf("string literal text = %q", toks[5].Text)
	}
}

func TestLexEllipsisAndGenerics(t *testing.T) {
	toks := lexAll(t, "void m(List<String> xs, int... rest)")

	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.Ident, token.Ident, token.LParen,
		token.Ident, token.Lt, token.Ident, token.Gt, token.Ident, token.Comma,
		token.Ident, token.Ellipsis, token.Ident, token.RParen,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
