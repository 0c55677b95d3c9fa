// Package ignore drops files that match an ignore-list before they are checked.
//
// An ignore-list is a text file with one glob pattern per line. Surrounding
// whitespace is trimmed, and blank lines and lines starting with '#' are
// skipped. Pattern syntax is described in package glob.
package ignore

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/linecheck/internal/glob"
)

// ParsePatterns extracts the patterns from ignore-list content.
func ParsePatterns(data []byte) []string {
	var patterns []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// LoadPatterns reads and parses the ignore-list at path.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignored files list: %w", err)
	}
	return ParsePatterns(data), nil
}

// Filter returns files minus every name matching at least one pattern.
// Surviving names keep their original order, duplicates included.
func Filter(files, patterns []string) ([]string, error) {
	m := glob.NewMatcher()
	for _, p := range patterns {
		if _, err := m.Compile(p); err != nil {
			return nil, err
		}
	}

	kept := make([]string, 0, len(files))
	for _, f := range files {
		ignored, err := m.MatchAny(patterns, f)
		if err != nil {
			return nil, err
		}
		if !ignored {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// FilterFile loads the ignore-list at path and applies it to files.
func FilterFile(path string, files []string) ([]string, error) {
	patterns, err := LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	return Filter(files, patterns)
}
