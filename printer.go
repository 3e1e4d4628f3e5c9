package beispiel

import "strings"

// String renders the tree in LISP form, eg. "(start 1 + 2 + <error a>)".
func (s *Start) String() string {
	out := &strings.Builder{}
	out.WriteString("(start")
	for _, child := range s.Children {
		out.WriteString(" ")
		out.WriteString(child.String())
	}
	out.WriteString(")")
	return out.String()
}

func (t *Terminal) String() string { return t.Token.Value }

func (e *ErrorNode) String() string { return "<error " + e.Token.Value + ">" }
