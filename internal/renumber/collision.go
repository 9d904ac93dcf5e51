package renumber

import (
	"fmt"
	"sort"
	"strings"
)

// Collisions maps a file name to the reasons it cannot be renamed.
type Collisions map[string][]string

func (c Collisions) add(filename, reason string) {
	c[filename] = append(c[filename], reason)
}

func (c Collisions) String() string {
	if len(c) == 0 {
		return "No collisions found"
	}
	var sb strings.Builder
	files := make([]string, 0, len(c))
	for f := range c {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, r := range c[f] {
			fmt.Fprintf(&sb, "%q: %s\n", f, r)
		}
	}
	return sb.String()
}

// CollisionError is returned when a rename would land on a name that is
// already taken. No file has been renamed when it is returned from Plan.
type CollisionError struct {
	Pass       int
	Collisions Collisions
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("pass %d: %d file(s) would collide:\n%s", e.Pass, len(e.Collisions), strings.TrimSuffix(e.Collisions.String(), "\n"))
}
