package textgrid

import "fmt"

// ParseError is a fatal structural error: a malformed marker, an unknown tier
// class, or a declared count that runs past the end of the input. Parsing of
// the affected file aborts immediately.
type ParseError struct {
	Message string
	Line    int // 1-based line number, 0 when unknown
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// InputError reports malformed caller-supplied data, such as parallel vectors
// of unequal length. It is raised before any TextGrid is constructed.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// ValidationError reports a violated TextGrid invariant. Where identifies the
// offending entity (the TextGrid, a tier by name, or an item by index within
// its tier).
type ValidationError struct {
	Where   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s in %s", e.Message, e.Where)
}
