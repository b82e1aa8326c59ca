// Package filter decides which directory entries a traversal skips.
package filter

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/dirtally/pkg/dirtally"
)

// Matcher holds validated doublestar exclude patterns. A nil *Matcher
// excludes nothing.
type Matcher struct {
	patterns []string
}

// New validates the patterns. Empty patterns are dropped.
func New(patterns []string) (*Matcher, error) {
	var kept []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, dirtally.ErrInvalidConfig)
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return &Matcher{patterns: kept}, nil
}

// Excluded reports whether the root-relative slash path is excluded.
// A pattern without a slash also matches against the base name, so
// "*.tmp" excludes temp files at any depth.
func (m *Matcher) Excluded(relPath string) bool {
	if m == nil {
		return false
	}
	base := path.Base(relPath)
	for _, p := range m.patterns {
		if doublestar.MatchUnvalidated(p, relPath) {
			return true
		}
		if !strings.Contains(p, "/") && doublestar.MatchUnvalidated(p, base) {
			return true
		}
	}
	return false
}

// Patterns returns the active patterns.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}
