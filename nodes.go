package beispiel

import "github.com/omg/beispiel/lexer"

// A Node in the parse tree.
type Node interface {
	// Position of the first token covered by the node.
	Position() lexer.Position
	// String renders the subtree.
	String() string
	children() []Node
}

// Start is the root of a parse tree, produced by the rule Start = Number { "+" Number } .
//
// Children holds matched tokens and the tokens discarded during error recovery, in input order.
// The terminating EOF is not part of the tree.
type Start struct {
	Pos      lexer.Position
	Children []Node
}

// Terminal is a token matched by the grammar.
type Terminal struct {
	Token lexer.Token
}

// ErrorNode is a token discarded while recovering from a syntax error.
type ErrorNode struct {
	Token lexer.Token
}

var (
	_ Node = &Start{}
	_ Node = &Terminal{}
	_ Node = &ErrorNode{}
)

func (s *Start) Position() lexer.Position     { return s.Pos }
func (t *Terminal) Position() lexer.Position  { return t.Token.Pos }
func (e *ErrorNode) Position() lexer.Position { return e.Token.Pos }

func (s *Start) children() []Node     { return s.Children }
func (t *Terminal) children() []Node  { return nil }
func (e *ErrorNode) children() []Node { return nil }
