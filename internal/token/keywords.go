package token

var keywords = map[string]Kind{
	"public":       KwPublic,
	"protected":    KwProtected,
	"private":      KwPrivate,
	"static":       KwStatic,
	"abstract":     KwAbstract,
	"final":        KwFinal,
	"transient":    KwTransient,
	"volatile":     KwVolatile,
	"synchronized": KwSynchronized,
	"native":       KwNative,
	"strictfp":     KwStrictfp,
	"class":        KwClass,
	"interface":    KwInterface,
	"enum":         KwEnum,
	"extends":      KwExtends,
	"implements":   KwImplements,
	"throws":       KwThrows,
	"package":      KwPackage,
	"import":       KwImport,
	"default":      KwDefault,
}

// LookupKeyword returns the kind for a recognized keyword. Keywords are
// case-sensitive, only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
