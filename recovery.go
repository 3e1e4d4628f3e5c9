package beispiel

import "github.com/omg/beispiel/lexer"

// RecoveryStrategy defines a strategy for recovering from syntax errors.
//
// Recover is called with the stream positioned at the offending token, which is never EOF.
// It discards tokens and returns them, in order, so they can be attached to the parse tree.
// If a strategy consumes nothing the parser discards the offending token itself.
//
// After recovery the parser stays in the state it was in. Until a token is matched, further
// mismatches are not reported, and a token that would have been valid had a single token been
// missing moves the parser past the gap.
type RecoveryStrategy interface {
	Recover(stream *lexer.TokenStream, err *SyntaxError) (skipped []lexer.Token)
}

// SkipTokenStrategy discards exactly the offending token.
type SkipTokenStrategy struct{}

// SkipToken creates the default recovery strategy, which discards the offending token.
func SkipToken() *SkipTokenStrategy {
	return &SkipTokenStrategy{}
}

func (s *SkipTokenStrategy) Recover(stream *lexer.TokenStream, err *SyntaxError) []lexer.Token {
	return []lexer.Token{stream.Consume()}
}

// SkipUntilStrategy discards the offending token, then every token up to the next
// synchronisation token.
//
// This is the classic "panic mode" recovery strategy. The synchronisation token is left in the
// stream for the parser. EOF always synchronises.
type SkipUntilStrategy struct {
	SyncTypes []lexer.TokenType
}

// SkipUntil creates a recovery strategy that resynchronises on the given token types.
//
// With no types it synchronises on Plus.
func SkipUntil(types ...lexer.TokenType) *SkipUntilStrategy {
	if len(types) == 0 {
		types = []lexer.TokenType{lexer.Plus}
	}
	return &SkipUntilStrategy{SyncTypes: types}
}

func (s *SkipUntilStrategy) Recover(stream *lexer.TokenStream, err *SyntaxError) []lexer.Token {
	syncSet := make(map[lexer.TokenType]bool, len(s.SyncTypes))
	for _, t := range s.SyncTypes {
		syncSet[t] = true
	}
	start := stream.Cursor()
	stream.Consume()
	for {
		token := stream.Peek()
		if token.EOF() || syncSet[token.Type] {
			return stream.Range(start, stream.Cursor())
		}
		stream.Consume()
	}
}
