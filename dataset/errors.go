package dataset

import "fmt"

// ParseError reports a malformed input line. Line and Field are 1-based; Field
// is 0 when the whole record is at fault (e.g. a wrong number of fields).
type ParseError struct {
	Line  int
	Field int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("dataset: line %d, field %d (%q): %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
