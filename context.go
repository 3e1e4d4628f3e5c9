package beispiel

import "github.com/omg/beispiel/lexer"

// Context for a single parse.
type parseContext struct {
	*lexer.TokenStream
	// recovering is set by a reported error and cleared by the next successful match. While
	// it is set further mismatches are not reported.
	recovering bool
	errors     []*SyntaxError
	maxErrors  int
	truncated  bool
}

func newParseContext(stream *lexer.TokenStream, maxErrors int) *parseContext {
	return &parseContext{
		TokenStream: stream,
		maxErrors:   maxErrors,
	}
}

// Report records err unless the context is already recovering from an earlier error.
//
// Returns true if err was recorded.
func (c *parseContext) Report(err *SyntaxError) bool {
	if c.recovering {
		return false
	}
	c.recovering = true
	c.errors = append(c.errors, err)
	return true
}

// Matched ends error recovery.
func (c *parseContext) Matched() {
	c.recovering = false
}

// Exhausted returns true once the error limit has been reached.
func (c *parseContext) Exhausted() bool {
	return c.maxErrors > 0 && len(c.errors) >= c.maxErrors
}

// Drain consumes the rest of the stream, including EOF, and returns the non-EOF tokens.
func (c *parseContext) Drain() []lexer.Token {
	var out []lexer.Token
	for {
		token := c.Consume()
		if token.EOF() {
			break
		}
		out = append(out, token)
	}
	if len(out) > 0 {
		c.truncated = true
	}
	return out
}
