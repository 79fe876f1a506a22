package token

var keywords = map[string]Kind{
	"classDiagram": KwClassDiagram,
	"class":        KwClass,
	"namespace":    KwNamespace,
	"note":         KwNote,
	"for":          KwFor,
	"direction":    KwDirection,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: 'classdiagram' is just an identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
