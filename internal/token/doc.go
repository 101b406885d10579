// Package token defines lexical token kinds and payloads for the Ry front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comments are real tokens (Kind: Comment); the parser skips them.
//   - Lexical errors are tokens too (Kind: Invalid) and carry a LexError.
//   - `true` and `false` lex as BoolLit, never as identifiers.
package token
