package beispiel

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Recover sets the strategy used to continue after a syntax error.
//
// The default is SkipToken().
func Recover(strategy RecoveryStrategy) Option {
	return func(p *Parser) error {
		if strategy == nil {
			return ErrInvalidOption.New("nil recovery strategy")
		}
		p.recovery = strategy
		return nil
	}
}

// MaxErrors stops matching once n syntax errors have been reported.
//
// The rest of the stream is still consumed, into error nodes, and Err will include
// ErrTooManyErrors. Zero, the default, means no limit.
func MaxErrors(n int) Option {
	return func(p *Parser) error {
		if n < 0 {
			return ErrInvalidOption.New("MaxErrors must not be negative")
		}
		p.maxErrors = n
		return nil
	}
}

// Listener registers listeners to be notified of each reported syntax error.
func Listener(listeners ...ErrorListener) Option {
	return func(p *Parser) error {
		for _, l := range listeners {
			if l == nil {
				return ErrInvalidOption.New("nil error listener")
			}
		}
		p.listeners = append(p.listeners, listeners...)
		return nil
	}
}
