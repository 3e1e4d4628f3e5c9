package beispiel

import (
	"io"

	"github.com/omg/beispiel/lexer"
)

// parserState is a position in the grammar Start = Number { "+" Number } .
type parserState int

const (
	expectNumber parserState = iota
	expectPlusOrEnd
	done
)

var stateNames = map[parserState]string{
	expectNumber:    "ExpectNumber",
	expectPlusOrEnd: "ExpectPlusOrEnd",
	done:            "Done",
}

func (s parserState) String() string { return stateNames[s] }

// Expected token types in this state.
func (s parserState) expected() []lexer.TokenType {
	switch s {
	case expectNumber:
		return []lexer.TokenType{lexer.Number}
	case expectPlusOrEnd:
		return []lexer.TokenType{lexer.Plus, lexer.EOF}
	}
	return nil
}

func (s parserState) accepts(t lexer.TokenType) bool {
	for _, e := range s.expected() {
		if e == t {
			return true
		}
	}
	return false
}

// other is the state a missing token would have moved us to.
func (s parserState) other() parserState {
	if s == expectNumber {
		return expectPlusOrEnd
	}
	return expectNumber
}

// A Parser validates a single TokenStream.
//
// A Parser is used for exactly one input and then discarded. It is not safe for concurrent use.
type Parser struct {
	stream    *lexer.TokenStream
	recovery  RecoveryStrategy
	maxErrors int
	listeners []ErrorListener
	trace     io.Writer

	ctx  *parseContext
	tree *Start
}

// New creates a Parser over stream.
func New(stream *lexer.TokenStream, options ...Option) (*Parser, error) {
	if stream == nil {
		return nil, ErrNoTokenStream.New()
	}
	p := &Parser{
		stream:   stream,
		recovery: SkipToken(),
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew calls New and panics on error.
func MustNew(stream *lexer.TokenStream, options ...Option) *Parser {
	p, err := New(stream, options...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseString lexes and parses input.
//
// The returned error only reports invalid options. Syntax errors are available from the
// returned Parser.
func ParseString(filename, input string, options ...Option) (*Start, *Parser, error) {
	p, err := New(lexer.Tokenize(filename, input), options...)
	if err != nil {
		return nil, nil, err
	}
	return p.Start(), p, nil
}

// Validate parses input and returns nil if it is a valid sum, or *SyntaxErrors if it is not.
func Validate(filename, input string, options ...Option) error {
	_, p, err := ParseString(filename, input, options...)
	if err != nil {
		return err
	}
	return p.Err()
}

// Start parses the whole token stream and returns its parse tree.
//
// Syntax errors never abort the parse. Each one is counted, passed to the registered listeners
// and recovered from, and parsing continues until EOF has been consumed. Calling Start again
// returns the tree from the first call.
func (p *Parser) Start() *Start {
	if p.tree != nil {
		return p.tree
	}
	ctx := newParseContext(p.stream, p.maxErrors)
	p.ctx = ctx
	tree := &Start{Pos: ctx.Peek().Pos}
	state := expectNumber
	for state != done {
		token := ctx.Peek()
		p.tracef("%s %q", state, token)
		if ctx.Exhausted() {
			for _, skipped := range ctx.Drain() {
				tree.Children = append(tree.Children, &ErrorNode{Token: skipped})
			}
			break
		}
		switch {
		case state.accepts(token.Type):
			ctx.Consume()
			ctx.Matched()
			if token.EOF() {
				state = done
				break
			}
			tree.Children = append(tree.Children, &Terminal{Token: token})
			state = state.other()

		case ctx.recovering && state.other().accepts(token.Type):
			// Assume the missing token and resynchronise.
			p.tracef("  resync %s", state.other())
			state = state.other()

		case token.EOF():
			p.report(ctx, state, token)
			ctx.Consume()
			state = done

		default:
			err := p.report(ctx, state, token)
			cursor := ctx.Cursor()
			skipped := p.recovery.Recover(ctx.TokenStream, err)
			if ctx.Cursor() == cursor {
				skipped = []lexer.Token{ctx.Consume()}
			}
			for _, t := range skipped {
				p.tracef("  skip %q", t)
				tree.Children = append(tree.Children, &ErrorNode{Token: t})
			}
		}
	}
	p.tree = tree
	return tree
}

func (p *Parser) report(ctx *parseContext, state parserState, token lexer.Token) *SyntaxError {
	err := &SyntaxError{Unexpected: token, Expected: state.expected()}
	if !ctx.Report(err) {
		return err
	}
	p.tracef("  error %s", err.Message())
	for _, listener := range p.listeners {
		listener.SyntaxError(err)
	}
	return err
}

// SyntaxErrorCount returns the number of syntax errors reported by Start.
//
// It is zero before Start has been called.
func (p *Parser) SyntaxErrorCount() int {
	if p.ctx == nil {
		return 0
	}
	return len(p.ctx.errors)
}

// Errors returns the syntax errors reported by Start, in input order.
func (p *Parser) Errors() []*SyntaxError {
	if p.ctx == nil {
		return nil
	}
	return append([]*SyntaxError(nil), p.ctx.errors...)
}

// Err returns nil if Start found no syntax errors, otherwise a *SyntaxErrors.
func (p *Parser) Err() error {
	if p.ctx == nil || len(p.ctx.errors) == 0 {
		return nil
	}
	out := &SyntaxErrors{Errors: p.Errors()}
	if p.ctx.truncated {
		out.Limit = ErrTooManyErrors.New(p.maxErrors)
	}
	return out
}
