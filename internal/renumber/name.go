package renumber

import (
	"fmt"
	"strings"
)

// Markable reports whether name contains the marker and takes part in renumbering.
func Markable(name string, marker rune) bool {
	return strings.ContainsRune(name, marker)
}

// StripDigits removes every ASCII decimal digit from name.
func StripDigits(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, name)
}

func (o Options) placeholder() string {
	return strings.Repeat(string(o.Marker), 2)
}

func (o Options) sequence(n int) string {
	return fmt.Sprintf("%0*d", o.Width, o.Step*n)
}

// Intermediate is the first pass name for the n-th marked file: digits are
// dropped and every marker becomes a doubled marker followed by the sequence
// number. With the defaults, Intermediate("blink7#.ino", 1) is "blink##0010.ino".
func (o Options) Intermediate(name string, n int) string {
	return strings.ReplaceAll(StripDigits(name), string(o.Marker), o.placeholder()+o.sequence(n))
}

// Final collapses each doubled marker back to a single one.
func (o Options) Final(name string) string {
	return strings.ReplaceAll(name, o.placeholder(), string(o.Marker))
}
