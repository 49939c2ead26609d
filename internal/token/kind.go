package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwPublic represents the 'public' modifier keyword.
	KwPublic // public
	// KwProtected represents the 'protected' modifier keyword.
	KwProtected // protected
	// KwPrivate represents the 'private' modifier keyword.
	KwPrivate // private
	// KwStatic represents the 'static' modifier keyword.
	KwStatic // static
	// KwAbstract represents the 'abstract' modifier keyword.
	KwAbstract // abstract
	// KwFinal represents the 'final' modifier keyword.
	KwFinal // final
	// KwTransient represents the 'transient' modifier keyword.
	KwTransient // transient
	// KwVolatile represents the 'volatile' modifier keyword.
	KwVolatile // volatile
	// KwSynchronized represents the 'synchronized' modifier keyword.
	KwSynchronized // synchronized
	// KwNative represents the 'native' modifier keyword.
	KwNative // native
	// KwStrictfp represents the 'strictfp' modifier keyword.
	KwStrictfp // strictfp

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwThrows represents the 'throws' keyword.
	KwThrows // throws
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwDefault represents the 'default' keyword.
	KwDefault // default

	// Literals are only skipped over, never interpreted.

	// IntLit represents a numeric literal.
	IntLit
	// StringLit represents a string literal.
	StringLit
	// CharLit represents a character literal.
	CharLit

	// At represents '@'.
	At
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Lt represents '<'.
	Lt
	// Gt represents '>'.
	Gt
	// Semicolon represents ';'.
	Semicolon
	// Comma represents ','.
	Comma
	// Dot represents '.'.
	Dot
	// Assign represents '='.
	Assign
	// Ellipsis represents '...'.
	Ellipsis
	// Punct represents any other single-byte punctuation or operator.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwPublic:
		return "public"
	case KwProtected:
		return "protected"
	case KwPrivate:
		return "private"
	case KwStatic:
		return "static"
	case KwAbstract:
		return "abstract"
	case KwFinal:
		return "final"
	case KwTransient:
		return "transient"
	case KwVolatile:
		return "volatile"
	case KwSynchronized:
		return "synchronized"
	case KwNative:
		return "native"
	case KwStrictfp:
		return "strictfp"
	case KwClass:
		return "class"
	case KwInterface:
		return "interface"
	case KwEnum:
		return "enum"
	case KwExtends:
		return "extends"
	case KwImplements:
		return "implements"
	case KwThrows:
		return "throws"
	case KwPackage:
		return "package"
	case KwImport:
		return "import"
	case KwDefault:
		return "default"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case CharLit:
		return "CharLit"
	case At:
		return "@"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Semicolon:
		return ";"
	case Comma:
		return ","
	case Dot:
		return "."
	case Assign:
		return "="
	case Ellipsis:
		return "..."
	case Punct:
		return "Punct"
	}
	return "Unknown"
}
