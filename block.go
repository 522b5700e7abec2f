package cssprune

import "strings"

// Block is a node in a stylesheet parse tree: a prelude (selector list or
// at-rule header), the flat text of its brace-delimited body, and the
// nested blocks in document order. Start and End are a half-open byte
// range into the original source text, extended incrementally as content
// and children are appended.
//
// A block's parent is set exactly once, when it is attached to that
// parent's children; parent pointers always lead toward a root, never in
// a cycle.
type Block struct {
	Prelude string
	Body    string
	Start   int
	End     int

	parent   *Block
	children []*Block

	normalized string
	haveNorm   bool
}

// Parent returns the enclosing block, or nil for a root block.
func (b *Block) Parent() *Block {
	return b.parent
}

// Children returns the nested blocks in document order.
func (b *Block) Children() []*Block {
	return b.children
}

// IsRoot reports whether the block has no enclosing block.
func (b *Block) IsRoot() bool {
	return b.parent == nil
}

// IsSelectorRule reports whether the block is a selector rule rather than
// an at-rule. At-rules are recognized by a '@' leading the trimmed
// prelude, so indentation before the header does not matter.
func (b *Block) IsSelectorRule() bool {
	return !strings.HasPrefix(strings.TrimSpace(b.Prelude), "@")
}

// Header returns the prelude with surrounding whitespace stripped, the
// form used for at-rule headers. No combinator expansion is applied.
func (b *Block) Header() string {
	return strings.TrimSpace(b.Prelude)
}

// Normalized resolves the block's fully-qualified selector. Every '&' in
// the prelude is replaced by the parent's normalized selector, recursively,
// and surrounding whitespace is stripped. At-rule blocks yield their
// trimmed header unchanged.
//
// A '&' in a root block, or in a block directly inside an at-rule, has no
// enclosing selector to refer to and fails with *InvalidNestingError.
// The result is memoized: a block's ancestors never change after
// attachment, so the selector is computed at most once.
func (b *Block) Normalized() (string, error) {
	if b.haveNorm {
		return b.normalized, nil
	}

	norm, err := b.normalize()
	if err != nil {
		return "", err
	}

	b.normalized = norm
	b.haveNorm = true
	return norm, nil
}

func (b *Block) normalize() (string, error) {
	if !b.IsSelectorRule() {
		return strings.TrimSpace(b.Prelude), nil
	}

	if !strings.Contains(b.Prelude, "&") {
		return strings.TrimSpace(b.Prelude), nil
	}

	if b.IsRoot() || !b.parent.IsSelectorRule() {
		return "", &InvalidNestingError{Offset: b.Start}
	}

	parent, err := b.parent.Normalized()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.ReplaceAll(b.Prelude, "&", parent)), nil
}

// Selectors splits the normalized selector on whitespace, discarding
// empty fragments, yielding the simple selector list. At-rule blocks have
// no selectors and return nil.
func (b *Block) Selectors() ([]string, error) {
	if !b.IsSelectorRule() {
		return nil, nil
	}

	norm, err := b.Normalized()
	if err != nil {
		return nil, err
	}

	return strings.Fields(norm), nil
}

// appendBody accumulates flat body text and extends the block's span.
func (b *Block) appendBody(text string, end int) {
	b.Body += text
	b.End = end
}

// addChild attaches child to b, establishing the back reference, and
// extends b's span to end.
func (b *Block) addChild(child *Block, end int) {
	child.parent = b
	b.children = append(b.children, child)
	b.End = end
}
