package fileio

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter drops directory entries whose name matches one of its glob patterns.
// The zero value ignores nothing.
type Filter struct {
	patterns []string
}

func NewFilter(patterns ...string) (Filter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return Filter{}, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return Filter{patterns: patterns}, nil
}

func (f Filter) Ignored(name string) bool {
	for _, p := range f.patterns {
		// Patterns were validated in NewFilter, Match cannot fail here.
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
