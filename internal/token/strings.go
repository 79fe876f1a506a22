package token

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Newline:
		return "Newline"
	case Ident:
		return "Ident"
	case EscapedIdent:
		return "EscapedIdent"
	case String:
		return "String"
	case Text:
		return "Text"
	case Frontmatter:
		return "Frontmatter"
	case KwClassDiagram:
		return "KwClassDiagram"
	case KwClass:
		return "KwClass"
	case KwNamespace:
		return "KwNamespace"
	case KwNote:
		return "KwNote"
	case KwFor:
		return "KwFor"
	case KwDirection:
		return "KwDirection"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Comma:
		return "Comma"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Hash:
		return "Hash"
	case Tilde:
		return "Tilde"
	case Dollar:
		return "Dollar"
	case Star:
		return "Star"
	case AnnotationOpen:
		return "AnnotationOpen"
	case AnnotationClose:
		return "AnnotationClose"
	case InheritanceL:
		return "InheritanceL"
	case InheritanceR:
		return "InheritanceR"
	case RealizationL:
		return "RealizationL"
	case RealizationR:
		return "RealizationR"
	case CompositionL:
		return "CompositionL"
	case CompositionR:
		return "CompositionR"
	case CompositionDotL:
		return "CompositionDotL"
	case CompositionDotR:
		return "CompositionDotR"
	case AggregationL:
		return "AggregationL"
	case AggregationR:
		return "AggregationR"
	case AggregationDotL:
		return "AggregationDotL"
	case AggregationDotR:
		return "AggregationDotR"
	case AssociationL:
		return "AssociationL"
	case AssociationR:
		return "AssociationR"
	case DependencyL:
		return "DependencyL"
	case DependencyR:
		return "DependencyR"
	case Link:
		return "Link"
	case DashedLink:
		return "DashedLink"
	case TwoWayArrow:
		return "TwoWayArrow"
	case Lollipop:
		return "Lollipop"
	default:
		return "Unknown"
	}
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaComment:
		return "Comment"
	default:
		return "Unknown"
	}
}
