package cssprune

import "strings"

// Parse scans stylesheet text and reconstructs the tree of nested rule
// blocks. A stylesheet may have several top-level blocks side by side, so
// the result is the ordered sequence of roots.
//
// Only '{' and '}' are structural; every other character is classified by
// its position relative to the braces. The span between the previous
// brace and an opening brace is split at the prelude boundary: the later
// of the last ';' and the last newline in the span. Text before the
// boundary is leftover declaration content belonging to the enclosing
// block (dropped at top level), text after it is the new block's prelude.
// This keeps trailing declarations of a previous sibling out of the next
// block's selector, while still allowing a prelude to span several lines.
//
// A '}' with no open block fails with *UnbalancedBracesError. Text after
// the final brace is discarded, and blocks still open at end of input are
// kept in the tree with the content appended so far (their End stays at
// the last consumed offset).
func Parse(text string) ([]*Block, error) {
	var (
		roots   []*Block
		current *Block
		prev    int
	)

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '{' && c != '}' {
			continue
		}

		if c == '{' {
			span := text[prev:i]

			boundary := prev
			if nl := strings.LastIndexByte(span, '\n'); nl >= 0 {
				boundary = prev + nl + 1
			}
			if semi := strings.LastIndexByte(span, ';'); semi >= 0 && prev+semi+1 > boundary {
				boundary = prev + semi + 1
			}

			block := &Block{
				Prelude: text[boundary:i],
				Start:   boundary,
				End:     i,
			}

			if current == nil {
				// Stray top-level text before the boundary is dropped.
				roots = append(roots, block)
			} else {
				current.appendBody(text[prev:boundary], boundary)
				current.addChild(block, i)
			}
			current = block
		} else {
			if current == nil {
				return nil, &UnbalancedBracesError{Offset: i}
			}
			current.appendBody(text[prev:i], i+1)
			current = current.parent
		}

		prev = i + 1
	}

	return roots, nil
}

// Walk visits every block of the given trees in document order, parents
// before children. Walking stops early if visit returns false.
func Walk(roots []*Block, visit func(*Block) bool) {
	var walk func(*Block) bool
	walk = func(b *Block) bool {
		if !visit(b) {
			return false
		}
		for _, child := range b.children {
			if !walk(child) {
				return false
			}
		}
		return true
	}

	for _, root := range roots {
		if !walk(root) {
			return
		}
	}
}
