package renumber

import (
	"fmt"
	"unicode"
)

// Options controls the marker and the numbers written in its place.
type Options struct {
	Marker rune // Flags a file name for renumbering. Default: '#'.
	Step   int  // The n-th file gets Step*n. Default: 10.
	Width  int  // Minimum number of digits, zero padded. Default: 4.
}

func DefaultOptions() Options {
	return Options{Marker: '#', Step: 10, Width: 4}
}

func (o Options) Validate() error {
	switch {
	case o.Marker == 0:
		return fmt.Errorf("marker must be set")
	case unicode.IsDigit(o.Marker):
		return fmt.Errorf("marker %q must not be a digit", o.Marker)
	case o.Marker == '/' || o.Marker == '\\' || o.Marker == unicode.ReplacementChar:
		return fmt.Errorf("marker %q cannot appear in a file name", o.Marker)
	case o.Step <= 0:
		return fmt.Errorf("step must be positive, got %d", o.Step)
	case o.Width <= 0:
		return fmt.Errorf("width must be positive, got %d", o.Width)
	}
	return nil
}
