package sketchdir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beckbria/sketchren/internal/fileio"
)

// Options controls how sketch directories are normalized.
type Options struct {
	Extension string   // Appended to the directory name to form the sketch name. Default: ".ino".
	Ignore    []string // Glob patterns for entries that do not count as files, e.g. "Thumbs.db".
}

func DefaultOptions() Options {
	return Options{Extension: ".ino"}
}

func (o Options) Validate() error {
	if o.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if !strings.HasPrefix(o.Extension, ".") || len(o.Extension) == 1 {
		return fmt.Errorf("extension %q must be a dot followed by a suffix", o.Extension)
	}
	if strings.ContainsAny(o.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", o.Extension)
	}
	if _, err := fileio.NewFilter(o.Ignore...); err != nil {
		return err
	}
	return nil
}
