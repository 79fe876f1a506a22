// Package token defines the token vocabulary of the Mermaid class-diagram
// dialect: keywords, punctuation, the closed set of relationship arrows, and
// trivia. Unlike most languages, newlines are significant tokens here because
// statements are line-shaped.
package token
