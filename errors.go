package cssprune

import "fmt"

// CapacityError is returned when feeding the token index would push the
// running scanned-byte total past the configured ceiling. The index is
// unusable once this fires; the run must abort.
type CapacityError struct {
	Size  int64 // total that would have been reached
	Limit int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("maximum index size of %dB exceeded (%dB scanned)", e.Limit, e.Size)
}

// UnbalancedBracesError reports a closing brace with no open block.
type UnbalancedBracesError struct {
	Offset int // byte offset of the stray '}'
}

func (e *UnbalancedBracesError) Error() string {
	return fmt.Sprintf("unbalanced braces: unexpected '}' at offset %d", e.Offset)
}

// InvalidNestingError reports a '&' nesting combinator used where no
// enclosing selector exists: in a root block, or directly inside an
// at-rule block.
type InvalidNestingError struct {
	Offset int // Start offset of the offending block
}

func (e *InvalidNestingError) Error() string {
	return fmt.Sprintf("nesting combinator '&' with no enclosing selector at offset %d", e.Offset)
}
