package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline separates statements. Consecutive newlines collapse into one.
	Newline

	// Ident represents a bare identifier token.
	Ident
	// EscapedIdent represents a backtick-escaped identifier; Text holds the
	// inner text without the backticks.
	EscapedIdent
	// String represents a double-quoted string (cardinality, note text);
	// Text holds the inner text without the quotes.
	String
	// Text represents raw rest-of-line text (relationship labels).
	Text
	// Frontmatter represents the raw content of a leading '---' fenced
	// block; Text holds everything between the fences.
	Frontmatter

	// KwClassDiagram represents the 'classDiagram' header keyword.
	KwClassDiagram // classDiagram
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwNote represents the 'note' keyword.
	KwNote // note
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwDirection represents the 'direction' keyword.
	KwDirection // direction

	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the qualified-name separator.
	ColonColon // ::
	// Comma represents the comma token.
	Comma // ,
	// Plus represents the public visibility mark.
	Plus // +
	// Minus represents the private visibility mark.
	Minus // -
	// Hash represents the protected visibility mark.
	Hash // #
	// Tilde represents the package visibility mark.
	Tilde // ~
	// Dollar represents the static classifier.
	Dollar // $
	// Star represents the abstract classifier.
	Star // *
	// AnnotationOpen represents the '<<' annotation fence.
	AnnotationOpen // <<
	// AnnotationClose represents the '>>' annotation fence.
	AnnotationClose // >>

	// Relationship arrows. L forms point at the left operand, R forms at
	// the right one. Dot variants use a dotted line.
	InheritanceL    // <|--
	InheritanceR    // --|>
	RealizationL    // <|..
	RealizationR    // ..|>
	CompositionL    // *--
	CompositionR    // --*
	CompositionDotL // *..
	CompositionDotR // ..*
	AggregationL    // o--
	AggregationR    // --o
	AggregationDotL // o..
	AggregationDotR // ..o
	AssociationL    // <--
	AssociationR    // -->
	DependencyL     // <..
	DependencyR     // ..>
	Link            // --
	DashedLink      // ..

	// Recognized-but-unsupported operators, kept distinct so the parser can
	// report them precisely.
	TwoWayArrow // <|--|>, <|..|>
	Lollipop    // --(), ()--
)
