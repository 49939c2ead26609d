package diag

import (
	"testing"

	"modnorm/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Fatalf("first add rejected")
	}
	if !b.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Fatalf("second add rejected")
	}
	if b.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Fatalf("expected third add to be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	spanA := source.Span{File: 0, Start: 20, End: 25}
	spanB := source.Span{File: 0, Start: 5, End: 10}
	b.Add(NewWarning(SynInfo, spanA, "later"))
	b.Add(NewError(SynUnexpectedToken, spanB, "earlier"))
	b.Add(NewError(SynUnexpectedToken, spanB, "earlier dup"))

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", len(items))
	}
	if items[0].Primary != spanB || items[1].Primary != spanA {
		t.Fatalf("unexpected order: %v then %v", items[0].Primary, items[1].Primary)
	}
}

func TestHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(NewWarning(SynInfo, source.Span{}, "warn"))
	if b.HasErrors() {
		t.Fatalf("warnings alone should not count as errors")
	}
	b.Add(NewError(RuleUnorderableModifier, source.Span{}, "boom"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after adding an error")
	}
}
