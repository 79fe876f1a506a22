package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for uncategorized failures.
	UnknownCode Code = 0

	// Lexical errors.
	LexInfo                 Code = 1000
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedBacktick Code = 1003
	LexUnterminatedFence    Code = 1004

	// Syntax errors.
	SynInfo            Code = 2000
	SynExpectHeader    Code = 2001
	SynUnexpectedToken Code = 2002
	SynExpectIdent     Code = 2003
	SynExpectLBrace    Code = 2004
	SynUnclosedBrace   Code = 2005
	SynExpectString    Code = 2006
	SynBadDirection    Code = 2007
	SynBadMember       Code = 2008
	SynBadRelation     Code = 2009
	SynNestingTooDeep  Code = 2010
	SynExpectNewline   Code = 2011

	// Semantic conflicts.
	SemInfo           Code = 3000
	SemMemberConflict Code = 3001

	// Recognized-but-unsupported constructs.
	UnsupInfo           Code = 4000
	UnsupAnnotation     Code = 4001
	UnsupTwoWayRelation Code = 4002
	UnsupLollipop       Code = 4003
	UnsupStyling        Code = 4004
	UnsupClassLabel     Code = 4005
	UnsupAbstractMember Code = 4006
	UnsupGenericType    Code = 4007

	// I/O failures surfaced as diagnostics.
	IOInfo          Code = 5000
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                 "Lexical information",
	LexUnknownChar:          "Unknown character",
	LexUnterminatedString:   "Unterminated string literal",
	LexUnterminatedBacktick: "Unterminated backtick identifier",
	LexUnterminatedFence:    "Unterminated frontmatter fence",

	SynInfo:            "Syntax information",
	SynExpectHeader:    "Expected 'classDiagram' header",
	SynUnexpectedToken: "Unexpected token",
	SynExpectIdent:     "Expected identifier",
	SynExpectLBrace:    "Expected '{'",
	SynUnclosedBrace:   "Unclosed '{' block",
	SynExpectString:    "Expected quoted text",
	SynBadDirection:    "Invalid direction value",
	SynBadMember:       "Malformed member declaration",
	SynBadRelation:     "Malformed relationship statement",
	SynNestingTooDeep:  "Namespace nesting exceeds the configured maximum",
	SynExpectNewline:   "Expected end of statement",

	SemInfo:           "Semantic information",
	SemMemberConflict: "Conflicting redeclaration of a class member",

	UnsupInfo:           "Unsupported construct information",
	UnsupAnnotation:     "Annotations are not supported",
	UnsupTwoWayRelation: "Two-way relationships are not supported",
	UnsupLollipop:       "Lollipop interfaces are not supported",
	UnsupStyling:        "Styling directives are not supported",
	UnsupClassLabel:     "Class labels are not supported",
	UnsupAbstractMember: "Abstract member markers are not supported",
	UnsupGenericType:    "Generic type parameters are not supported",

	IOInfo:          "I/O information",
	IOLoadFileError: "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("UNS%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
