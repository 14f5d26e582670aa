package protocol

import (
	"errors"
	"fmt"
)

// ErrUnknownDialect is returned when Parse is called with an undefined Dialect.
var ErrUnknownDialect = errors.New("unknown dialect")

// ParseError reports a line that does not follow the expected dialect.
type ParseError struct {
	Dialect Dialect
	Line    int
	Content string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d is not a valid %s protocol entry: %q", e.Line, e.Dialect, e.Content)
}
