package preview

import (
	"strings"
	"testing"
)

func TestSummaryDeduplicatesPreservingOrder(t *testing.T) {
	applied := []string{
		"removed redundant 'public'",
		"reordered modifiers on 'X'",
		"removed redundant 'public'",
		"removed redundant 'final'",
	}
	got := Summary(applied, "Counter", "")
	want := []string{
		"removed redundant 'public'",
		"reordered modifiers on 'X'",
		"removed redundant 'final'",
	}
	if len(got) != len(want) {
		t.Fatalf("Summary = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Summary = %v, want %v", got, want)
		}
	}
}

func TestSummarySelectedElementFilter(t *testing.T) {
	applied := []string{"removed redundant 'public'"}

	if got := Summary(applied, "Counter", "Counter"); len(got) != 1 {
		t.Fatalf("matching selection filtered out: %v", got)
	}
	if got := Summary(applied, "Counter", "Other"); got != nil {
		t.Fatalf("non-matching selection leaked: %v", got)
	}
}

func TestRenderEmptyShowsFixedMessage(t *testing.T) {
	got := Render(nil)
	if got != NoRefactoringApplied {
		t.Fatalf("Render(nil) = %q, want %q", got, NoRefactoringApplied)
	}
	if got := Render(Summary(nil, "Counter", "")); got != NoRefactoringApplied {
		t.Fatalf("empty summary rendered %q", got)
	}
}

func TestRenderOneEntryPerLine(t *testing.T) {
	got := Render([]string{"a", "b", "c"})
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing empty entry in %q", got)
	}
}
