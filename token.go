package cssprune

import "regexp"

var (
	// coarsePattern finds identifier-like spans bounded by delimiter
	// characters. The delimiter is consumed by the match, so two spans
	// separated by a single delimiter yield only the first; end of input
	// counts as a closing delimiter.
	coarsePattern = regexp.MustCompile(`[^\w-]([\w-]+)(?:[^\w-]|$)`)

	// identPattern extracts identifier runs of at least two characters
	// from a coarse span.
	identPattern = regexp.MustCompile(`[\w-]{2,}`)
)

// FindTokens extracts candidate identifier tokens from arbitrary source
// text. A coarse pass locates delimiter-bounded spans so that tokens
// embedded in punctuation-heavy selector syntax (".foo-bar:hover") are
// picked up without a full selector grammar; a fine pass keeps only
// identifier runs of two or more characters.
//
// Duplicates and order are preserved; deduplication happens at the index
// layer. Tokens are compared byte-for-byte, no case folding.
func FindTokens(text string) []string {
	var tokens []string

	for _, match := range coarsePattern.FindAllStringSubmatch(text, -1) {
		span := match[1]
		tokens = append(tokens, identPattern.FindAllString(span, -1)...)
	}

	return tokens
}
