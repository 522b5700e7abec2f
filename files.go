package cssprune

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a discovered file is excluded from the
// run. Only relative paths are checked against .gitignore: absolute paths
// (like /tmp/...) are outside the project and should not be affected by
// the project's ignore rules.
func shouldSkipFile(path string, respectGitignore bool) bool {
	if !respectGitignore || filepath.IsAbs(path) {
		return false
	}

	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// expandGlobPatterns expands glob patterns to actual file paths, keeping
// pattern order, dropping duplicates and directories. A pattern without
// meta characters that matches nothing is kept verbatim so that a missing
// file surfaces as a read error later (fail-fast) instead of silently
// shrinking the input list.
func expandGlobPatterns(patterns []string, respectGitignore bool) ([]string, error) {
	var allFiles []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 && !hasGlobMeta(pattern) {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				continue
			}
			if shouldSkipFile(match, respectGitignore) {
				continue
			}
			allFiles = append(allFiles, match)
			seen[match] = true
		}
	}

	return allFiles, nil
}

func hasGlobMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
