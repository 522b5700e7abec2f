// Package cssprune finds style rules that are never referenced by a
// source tree, as a first step toward removing unused styles.
//
// The search corpus is tokenized into an index of identifier-like tokens:
//
//	idx := cssprune.NewIndex(cssprune.DefaultMaxIndexSize)
//	err := idx.AddText(sourceText)
//
// Stylesheet text is parsed into a tree of nested rule blocks whose
// selectors, after '&' nesting-combinator expansion, are checked against
// the index:
//
//	blocks, err := cssprune.Parse(cssText)
//	used, err := cssprune.Used(idx, blocks[0])
//
// # CLI Tool
//
// cssprune also provides a CLI tool. Install with:
//
//	go install github.com/styletools/cssprune/cmd/cssprune@latest
package cssprune

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Config holds a full run's configuration.
type Config struct {
	Stylesheets  []string // glob patterns or paths of files with styles
	SearchPaths  []string // glob patterns or paths of files to search for usages
	MaxIndexSize int64    // ceiling on scanned token bytes; <= 0 means DefaultMaxIndexSize

	RespectGitignore bool      // skip gitignored files when expanding globs
	Verbose          bool      // enable per-file logging
	Progress         io.Writer // destination for the progress meter; nil disables it
}

// UnusedRule identifies one style rule with no reference in the search
// corpus.
type UnusedRule struct {
	File     string `json:"file"`
	Offset   int    `json:"offset"` // byte offset of the rule's prelude
	Selector string `json:"selector"`
}

// Result contains the statistics and findings of a run.
type Result struct {
	IndexSize    int64 // cumulative bytes of tokens scanned
	TokenCount   int   // distinct tokens in the index
	FilesScanned int   // search files tokenized
	FilesParsed  int   // stylesheet files parsed
	RulesSeen    int   // selector rules examined

	Unused   []UnusedRule
	Warnings []string
}

// Run builds the token index from the search files, then parses each
// stylesheet file and reports rules whose selectors are not referenced.
//
// Search files are processed strictly in order: the index's running byte
// total must observe insertions in a fixed order for the capacity check
// to be deterministic. Any unreadable file aborts the whole run, as does
// exceeding the index ceiling. A stylesheet with unbalanced braces is
// skipped with a warning naming the file and offset; a block whose '&'
// has no enclosing selector is kept with a warning.
func Run(config Config) (*Result, error) {
	searchFiles, err := expandGlobPatterns(config.SearchPaths, config.RespectGitignore)
	if err != nil {
		return nil, err
	}
	if len(searchFiles) == 0 {
		return nil, fmt.Errorf("no search files matched %v", config.SearchPaths)
	}

	sheetFiles, err := expandGlobPatterns(config.Stylesheets, config.RespectGitignore)
	if err != nil {
		return nil, err
	}
	if len(sheetFiles) == 0 {
		return nil, fmt.Errorf("no stylesheet files matched %v", config.Stylesheets)
	}

	idx := NewIndex(config.MaxIndexSize)

	meter := newProgress(config.Progress, len(searchFiles))
	for _, file := range searchFiles {
		if config.Verbose {
			fmt.Printf("Indexing %s\n", file)
		}

		// #nosec G304 - paths come from the invocation
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read search file: %w", err)
		}
		if err := idx.AddText(string(data)); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", file, err)
		}
		meter.Step()
	}
	meter.Finish()

	result := &Result{
		IndexSize:    idx.Size(),
		TokenCount:   idx.Len(),
		FilesScanned: len(searchFiles),
	}

	meter = newProgress(config.Progress, len(sheetFiles))
	for _, file := range sheetFiles {
		if config.Verbose {
			fmt.Printf("Parsing %s\n", file)
		}

		// #nosec G304 - paths come from the invocation
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet file: %w", err)
		}

		roots, err := Parse(string(data))
		if err != nil {
			var ub *UnbalancedBracesError
			if errors.As(err, &ub) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: skipped: %v", file, err))
				meter.Step()
				continue
			}
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		result.FilesParsed++

		collectUnused(idx, file, roots, result)
		meter.Step()
	}
	meter.Finish()

	return result, nil
}

// collectUnused walks one stylesheet's block trees and records every
// selector rule the index does not account for. A rule inside an unused
// rule is still judged on its own selector, so nested findings are
// reported individually.
func collectUnused(idx *Index, file string, roots []*Block, result *Result) {
	Walk(roots, func(b *Block) bool {
		if !b.IsSelectorRule() {
			return true
		}
		result.RulesSeen++

		used, err := Used(idx, b)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: %v", file, err))
			return true
		}
		if used {
			return true
		}

		selector, _ := b.Normalized()
		result.Unused = append(result.Unused, UnusedRule{
			File:     file,
			Offset:   b.Start,
			Selector: selector,
		})
		return true
	})
}
