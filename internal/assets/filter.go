package assets

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skippedDirs are never descended into.
var skippedDirs = []string{
	".git",
	"node_modules",
	".portfolio",
}

func shouldSkipDir(name string) bool {
	for _, d := range skippedDirs {
		if strings.EqualFold(name, d) {
			return true
		}
	}
	return false
}

// Excluded returns true if the given relative path matches any of the
// exclude patterns. If patterns is empty, nothing is excluded.
func Excluded(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny checks if relPath matches any of the given glob patterns,
// against the full path and against its base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
