package svg

import "fmt"

// A ParseError describes a syntax or structural problem found while
// tokenizing or building a document. Offset is the byte offset into the
// input at which the problem was detected.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svg: %s at offset %d", e.Message, e.Offset)
}

func parseErrorf(offset int, format string, args ...any) error {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
