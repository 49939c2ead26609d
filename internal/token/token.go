package token

import (
	"modnorm/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsModifier reports whether the token is a declaration modifier keyword.
func (t Token) IsModifier() bool {
	switch t.Kind {
	case KwPublic, KwProtected, KwPrivate, KwStatic, KwAbstract, KwFinal,
		KwTransient, KwVolatile, KwSynchronized, KwNative, KwStrictfp:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	if t.IsModifier() {
		return true
	}
	switch t.Kind {
	case KwClass, KwInterface, KwEnum, KwExtends, KwImplements, KwThrows,
		KwPackage, KwImport, KwDefault:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
