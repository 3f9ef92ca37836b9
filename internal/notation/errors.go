package notation

import "fmt"

// ParseError reports malformed cycle notation.
type ParseError struct {
	Text      string // full input
	Offending string // substring that could not be read
	Offset    int    // byte offset of Offending within Text
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: %s at offset %d: %q", e.Reason, e.Offset, e.Offending)
}
