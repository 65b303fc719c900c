package iconsty

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrNoStylesheets is returned when the stylesheet patterns match no files
var ErrNoStylesheets = errors.New("no stylesheets matched")

// SourceStats tracks stylesheet discovery statistics
type SourceStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesSkipped    int // Files skipped by .gitignore
}

// Sources expands stylesheet glob patterns into files
type Sources struct {
	gitignore *ignore.GitIgnore
}

// NewSources creates a resolver that honors the .gitignore in the current
// directory. A missing .gitignore is fine.
func NewSources() *Sources {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		gi = nil
	}
	return &Sources{gitignore: gi}
}

// NewSourcesWithIgnore creates a resolver using the given ignore lines
func NewSourcesWithIgnore(lines ...string) *Sources {
	return &Sources{gitignore: ignore.CompileIgnoreLines(lines...)}
}

// Expand resolves patterns in order, deduplicating matches and keeping only
// regular files. Patterns without glob characters must name an existing file
// and are never filtered by .gitignore.
func (s *Sources) Expand(patterns []string) ([]string, SourceStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := SourceStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 && !hasMeta(pattern) {
			// A literal path that does not exist is an unreadable input
			if _, err := os.Stat(pattern); err != nil {
				return nil, stats, fmt.Errorf("stylesheet: %w", err)
			}
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			// A path named literally is always parsed
			if hasMeta(pattern) && s.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, stats, fmt.Errorf("%w: %v", ErrNoStylesheets, patterns)
	}

	return files, stats, nil
}

// shouldSkip applies .gitignore to relative paths only. Absolute paths
// (like /tmp/...) should not be affected by project gitignore.
func (s *Sources) shouldSkip(path string) bool {
	if s.gitignore == nil || filepath.IsAbs(path) {
		return false
	}
	return s.gitignore.MatchesPath(path)
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
