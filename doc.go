// Package beispiel recognises sums of integers such as "1+2" or "12+34+5".
//
// The language is described by the following EBNF (see Grammar):
//
//	Start  = Number { "+" Number } .
//	Number = digit { digit } .
//	digit  = "0" … "9" .
//
// Input is lexed by package lexer into a TokenStream and validated by a Parser. Malformed input
// never produces an error return or a panic: syntax errors are counted and collected while the
// parser recovers and continues to the end of the stream. Callers inspect the outcome after
// parsing:
//
//	p, err := beispiel.New(lexer.Tokenize("", "1+2+a"))
//	if err != nil {
//		return err
//	}
//	p.Start()
//	if p.SyntaxErrorCount() > 0 {
//		return p.Err()
//	}
//
// Numbers are never evaluated; only the structure of the input is checked.
package beispiel
