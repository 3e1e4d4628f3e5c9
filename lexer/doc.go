// Package lexer defines the token model shared by the arithmetic lexer and parser.
//
// The lexer recognises three kinds of lexical unit: runs of ASCII digits (Number), the '+'
// character (Plus) and anything else (Unknown), one rune at a time. Lexing never fails on
// content: unrecognised characters are emitted as Unknown tokens so the parser can report them.
//
// A TokenStream materialises the whole token sequence for one input and always terminates with
// exactly one EOF token.
package lexer
