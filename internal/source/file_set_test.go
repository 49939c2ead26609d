package source

import (
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("class A {}\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag on %q", f.Path)
	}
	if string(f.Content) != "class A {}\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
}

func TestFileSetLatestWins(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("Test.java", []byte("v1"))
	second := fs.AddVirtual("Test.java", []byte("v2"))

	if first == second {
		t.Fatalf("expected distinct file IDs, got %d twice", first)
	}
	latest, ok := fs.GetLatest("Test.java")
	if !ok {
		t.Fatalf("expected Test.java in index")
	}
	if latest != second {
		t.Fatalf("expected latest id %d, got %d", second, latest)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("ab\ncd\nef"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"first line start", 0, LineCol{Line: 1, Col: 1}},
		{"first line end", 1, LineCol{Line: 1, Col: 2}},
		{"second line start", 3, LineCol{Line: 2, Col: 1}},
		{"third line", 6, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Fatalf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("Test.java", []byte("public static final"))

	got := fs.Text(Span{File: id, Start: 7, End: 13})
	if got != "static" {
		t.Fatalf("Text = %q, want %q", got, "static")
	}
}
