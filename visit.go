package beispiel

import "github.com/omg/beispiel/lexer"

// Visitor is called for each node. Calling next visits the node's children.
type Visitor func(n Node, next func() error) error

// Visit walks the tree rooted at n depth-first.
func Visit(n Node, visitor Visitor) error {
	return visitor(n, func() error {
		for _, child := range n.children() {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

// Operands returns the Number tokens matched under n.
func Operands(n Node) []lexer.Token {
	var out []lexer.Token
	_ = Visit(n, func(n Node, next func() error) error {
		if t, ok := n.(*Terminal); ok && t.Token.Type == lexer.Number {
			out = append(out, t.Token)
		}
		return next()
	})
	return out
}

// Skipped returns the tokens discarded during error recovery under n.
func Skipped(n Node) []lexer.Token {
	var out []lexer.Token
	_ = Visit(n, func(n Node, next func() error) error {
		if e, ok := n.(*ErrorNode); ok {
			out = append(out, e.Token)
		}
		return next()
	})
	return out
}
