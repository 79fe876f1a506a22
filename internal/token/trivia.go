package token

import "mermparse/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	// TriviaComment is a '%%' line comment, including directive-style
	// '%%{...}%%' blocks. Comments never reach the diagram model.
	TriviaComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
