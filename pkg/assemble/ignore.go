// pkg/assemble/ignore.go
package assemble

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides which source paths are left out of a target.
//
// Patterns without a slash are matched against every path component, the
// way "*.meta" hides metadata files at any depth. Patterns with a slash are
// matched against the whole slash-separated path relative to the source root.
type Matcher struct {
	names []string
	paths []string
}

// NewMatcher compiles ignore patterns.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
		if strings.Contains(p, "/") {
			m.paths = append(m.paths, strings.TrimPrefix(p, "/"))
		} else {
			m.names = append(m.names, p)
		}
	}
	return m, nil
}

// Ignored reports whether rel (slash-separated, relative to the source
// root) or any of its parent directories matches a pattern.
func (m *Matcher) Ignored(rel string) bool {
	rel = path.Clean(rel)
	if rel == "." || m.empty() {
		return false
	}

	parts := strings.Split(rel, "/")
	for i, part := range parts {
		for _, p := range m.names {
			if ok, _ := doublestar.Match(p, part); ok {
				return true
			}
		}
		prefix := strings.Join(parts[:i+1], "/")
		for _, p := range m.paths {
			if ok, _ := doublestar.Match(p, prefix); ok {
				return true
			}
		}
	}
	return false
}

func (m *Matcher) empty() bool {
	return len(m.names) == 0 && len(m.paths) == 0
}
