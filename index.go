package cssprune

// DefaultMaxIndexSize is the default ceiling on cumulative scanned token
// bytes (4 GiB). It bounds memory use when indexing a large search corpus.
const DefaultMaxIndexSize int64 = 4 << 30

// Index is the deduplicated set of tokens found across the search corpus.
// It is built once, sequentially, and read-only afterward.
//
// The byte ceiling is checked against every token examined, including
// tokens already present in the set. The total therefore bounds bytes
// scanned rather than bytes stored, which makes the failure point
// deterministic regardless of deduplication. This matches the original
// behavior and is intentional; see TestIndexCountsDuplicateTokens.
type Index struct {
	tokens map[string]struct{}
	size   int64
	limit  int64
}

// NewIndex creates an empty index with the given ceiling on scanned token
// bytes. A non-positive limit selects DefaultMaxIndexSize.
func NewIndex(limit int64) *Index {
	if limit <= 0 {
		limit = DefaultMaxIndexSize
	}
	return &Index{
		tokens: make(map[string]struct{}),
		limit:  limit,
	}
}

// AddText tokenizes text and inserts every token into the index.
// It fails with a *CapacityError at the first token that would push the
// running total over the ceiling.
func (x *Index) AddText(text string) error {
	for _, token := range FindTokens(text) {
		if err := x.add(token); err != nil {
			return err
		}
	}
	return nil
}

func (x *Index) add(token string) error {
	next := x.size + int64(len(token))
	if next > x.limit {
		return &CapacityError{Size: next, Limit: x.limit}
	}
	x.tokens[token] = struct{}{}
	x.size = next
	return nil
}

// Contains reports whether token was seen in the search corpus.
// Comparison is byte-for-byte.
func (x *Index) Contains(token string) bool {
	_, ok := x.tokens[token]
	return ok
}

// Size returns the cumulative byte length of all tokens scanned,
// duplicates included.
func (x *Index) Size() int64 {
	return x.size
}

// Len returns the number of distinct tokens in the index.
func (x *Index) Len() int {
	return len(x.tokens)
}
