package cssprune

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SelectorTokens extracts the identifier tokens of a simple selector:
// element names, class names, and id names. Pseudo-class and
// pseudo-element names (the identifier after a ':') are not part of any
// rule's identity and are skipped.
func SelectorTokens(selector string) []string {
	lexer := css.NewLexer(parse.NewInputString(selector))

	var (
		tokens     []string
		afterColon bool
	)
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		switch tt {
		case css.ColonToken:
			afterColon = true
			continue
		case css.IdentToken:
			if !afterColon {
				tokens = append(tokens, string(text))
			}
		case css.HashToken:
			tokens = append(tokens, strings.TrimPrefix(string(text), "#"))
		}
		afterColon = false
	}

	return tokens
}

// Used reports whether a selector rule is referenced by the search corpus.
// A simple selector counts as matched when every one of its identifier
// tokens appears in the index; selectors with no identifier tokens (the
// universal selector, bare pseudo-elements) always match. The rule is
// used when at least one of its simple selectors matches, which biases
// the verdict toward keeping rules.
//
// At-rule blocks are always used; their nested rules are judged on their
// own selectors.
func Used(idx *Index, block *Block) (bool, error) {
	if !block.IsSelectorRule() {
		return true, nil
	}

	selectors, err := block.Selectors()
	if err != nil {
		return false, err
	}
	if len(selectors) == 0 {
		return true, nil
	}

	for _, selector := range selectors {
		if selectorMatched(idx, selector) {
			return true, nil
		}
	}
	return false, nil
}

func selectorMatched(idx *Index, selector string) bool {
	tokens := SelectorTokens(selector)
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if !idx.Contains(token) {
			return false
		}
	}
	return true
}
