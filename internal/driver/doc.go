// Package driver wires the lexer, parser, and serializer into whole-file and
// whole-directory operations for the CLI: tokenize, parse, format, round-trip
// checking, and a parallel directory checker with an on-disk result cache.
package driver
