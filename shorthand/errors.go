package shorthand

import "fmt"

// SyntaxError reports where a shorthand failed to parse.
// Err is set when a value was rejected rather than the grammar.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shorthand: %q at offset %d: %s: %v", e.Input, e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("shorthand: %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
