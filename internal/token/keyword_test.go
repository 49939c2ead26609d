package token

import (
	"testing"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"public", KwPublic, true},
		{"strictfp", KwStrictfp, true},
		{"interface", KwInterface, true},
		{"Public", Invalid, false},
		{"finally", Invalid, false},
		{"", Invalid, false},
	}
	for _, tt := range tests {
		kind, ok := LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
		}
		if ok && kind != tt.kind {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", tt.ident, kind, tt.kind)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, kind := range []Kind{KwPublic, KwProtected, KwPrivate, KwStatic,
		KwAbstract, KwFinal, KwTransient, KwVolatile, KwSynchronized,
		KwNative, KwStrictfp} {
		if !(Token{Kind: kind}).IsModifier() {
			t.Fatalf("expected %v to be a modifier", kind)
		}
	}
	for _, kind := range []Kind{Ident, KwClass, KwInterface, At, Semicolon} {
		if (Token{Kind: kind}).IsModifier() {
			t.Fatalf("expected %v not to be a modifier", kind)
		}
	}
}
