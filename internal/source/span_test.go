package source

import (
	"testing"
)

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 12, End: 15},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "different file ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Cover(tt.other); got != tt.expected {
				t.Fatalf("Cover = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 10}
	if !s.Contains(5) || !s.Contains(9) {
		t.Fatalf("expected span %v to contain its bounds", s)
	}
	if s.Contains(10) || s.Contains(4) {
		t.Fatalf("expected span %v to exclude 4 and 10", s)
	}
}
