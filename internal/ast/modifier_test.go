package ast

import (
	"errors"
	"testing"
)

func TestCanonicalOrderIsTotalAndInjective(t *testing.T) {
	seen := make(map[int]Keyword, len(canonicalOrder))
	for _, k := range canonicalOrder {
		i, err := CanonicalIndex(k)
		if err != nil {
			t.Fatalf("CanonicalIndex(%v) failed: %v", k, err)
		}
		if prev, dup := seen[i]; dup {
			t.Fatalf("index %d assigned to both %v and %v", i, prev, k)
		}
		seen[i] = k
	}
	if len(seen) != len(canonicalOrder) {
		t.Fatalf("expected %d distinct indices, got %d", len(canonicalOrder), len(seen))
	}
}

func TestCompareKeywords(t *testing.T) {
	tests := []struct {
		name string
		a, b Keyword
		sign int
	}{
		{"public before private", ModPublic, ModPrivate, -1},
		{"static before final", ModStatic, ModFinal, -1},
		{"final after static", ModFinal, ModStatic, +1},
		{"strictfp last", ModStrictfp, ModNative, +1},
		{"same keyword", ModFinal, ModFinal, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareKeywords(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CompareKeywords failed: %v", err)
			}
			switch {
			case tt.sign < 0 && got >= 0:
				t.Fatalf("expected %v < %v, got %d", tt.a, tt.b, got)
			case tt.sign > 0 && got <= 0:
				t.Fatalf("expected %v > %v, got %d", tt.a, tt.b, got)
			case tt.sign == 0 && got != 0:
				t.Fatalf("expected %v == %v, got %d", tt.a, tt.b, got)
			}
		})
	}
}

func TestUnknownKeywordIsUnorderable(t *testing.T) {
	if _, err := CanonicalIndex(ModUnknown); !errors.Is(err, ErrUnorderableModifier) {
		t.Fatalf("expected ErrUnorderableModifier, got %v", err)
	}
	if _, err := CompareKeywords(ModUnknown, ModFinal); !errors.Is(err, ErrUnorderableModifier) {
		t.Fatalf("expected ErrUnorderableModifier, got %v", err)
	}

	var ume *UnorderableModifierError
	_, err := CompareKeywords(ModFinal, ModUnknown)
	if !errors.As(err, &ume) {
		t.Fatalf("expected *UnorderableModifierError, got %T", err)
	}
}

func TestKeywordOf(t *testing.T) {
	if KeywordOf("synchronized") != ModSynchronized {
		t.Fatalf("KeywordOf(synchronized) mismatch")
	}
	if KeywordOf("sealed") != ModUnknown {
		t.Fatalf("expected ModUnknown for unrecognized keyword")
	}
}
