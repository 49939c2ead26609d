package ast

import (
	"errors"
	"fmt"

	"modnorm/internal/source"
)

// Keyword is a declaration modifier keyword.
type Keyword uint8

const (
	// ModUnknown marks a keyword outside the fixed enumeration.
	ModUnknown Keyword = iota
	ModPublic
	ModProtected
	ModPrivate
	ModStatic
	ModAbstract
	ModFinal
	ModTransient
	ModVolatile
	ModSynchronized
	ModNative
	ModStrictfp
)

func (k Keyword) String() string {
	switch k {
	case ModPublic:
		return "public"
	case ModProtected:
		return "protected"
	case ModPrivate:
		return "private"
	case ModStatic:
		return "static"
	case ModAbstract:
		return "abstract"
	case ModFinal:
		return "final"
	case ModTransient:
		return "transient"
	case ModVolatile:
		return "volatile"
	case ModSynchronized:
		return "synchronized"
	case ModNative:
		return "native"
	case ModStrictfp:
		return "strictfp"
	}
	return "unknown"
}

// canonicalOrder is the fixed total order modifiers must appear in:
// visibility first, then static, abstract, final, transient, volatile,
// synchronized, native, strictfp. Built once, never mutated.
var canonicalOrder = [...]Keyword{
	ModPublic,
	ModProtected,
	ModPrivate,
	ModStatic,
	ModAbstract,
	ModFinal,
	ModTransient,
	ModVolatile,
	ModSynchronized,
	ModNative,
	ModStrictfp,
}

var canonicalIndex = func() map[Keyword]int {
	m := make(map[Keyword]int, len(canonicalOrder))
	for i, k := range canonicalOrder {
		m[k] = i
	}
	return m
}()

// ErrUnorderableModifier signals a keyword missing from the canonical
// order table. It means the table is out of date with the keyword
// enumeration, so the whole file's pass must be aborted.
var ErrUnorderableModifier = errors.New("unorderable modifier")

// UnorderableModifierError carries the offending keyword and its location.
type UnorderableModifierError struct {
	Keyword string
	Span    source.Span
}

func (e *UnorderableModifierError) Error() string {
	return fmt.Sprintf("cannot determine order for modifier %q at %s", e.Keyword, e.Span)
}

func (e *UnorderableModifierError) Unwrap() error {
	return ErrUnorderableModifier
}

// CanonicalIndex returns the position of k in the canonical order table.
// The table is total and injective over the enumeration; any miss is a
// programming error surfaced as ErrUnorderableModifier.
func CanonicalIndex(k Keyword) (int, error) {
	if i, ok := canonicalIndex[k]; ok {
		return i, nil
	}
	return 0, &UnorderableModifierError{Keyword: k.String()}
}

// CompareKeywords orders two keywords by canonical index. Distinct known
// keywords never compare equal since indices are injective.
func CompareKeywords(a, b Keyword) (int, error) {
	ia, err := CanonicalIndex(a)
	if err != nil {
		return 0, err
	}
	ib, err := CanonicalIndex(b)
	if err != nil {
		return 0, err
	}
	return ia - ib, nil
}

// KeywordOf maps a source spelling to its keyword, or ModUnknown.
func KeywordOf(text string) Keyword {
	switch text {
	case "public":
		return ModPublic
	case "protected":
		return ModProtected
	case "private":
		return ModPrivate
	case "static":
		return ModStatic
	case "abstract":
		return ModAbstract
	case "final":
		return ModFinal
	case "transient":
		return ModTransient
	case "volatile":
		return ModVolatile
	case "synchronized":
		return ModSynchronized
	case "native":
		return ModNative
	case "strictfp":
		return ModStrictfp
	}
	return ModUnknown
}
