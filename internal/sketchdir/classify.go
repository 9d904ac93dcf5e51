package sketchdir

import "fmt"

// Kind is the outcome for one child of the root directory.
type Kind int

const (
	KindSkipped      Kind = iota // Not a directory.
	KindEmpty                    // Directory with no files.
	KindAlreadyNamed             // Single file that already carries the directory name.
	KindRenamed                  // Single file renamed after the directory.
	KindMultiple                 // More than one file, left alone.
	KindUnreadable               // Directory whose contents could not be listed.
)

func (k Kind) String() string {
	switch k {
	case KindSkipped:
		return "skipped"
	case KindEmpty:
		return "empty"
	case KindAlreadyNamed:
		return "already named"
	case KindRenamed:
		return "renamed"
	case KindMultiple:
		return "multiple"
	case KindUnreadable:
		return "unreadable"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entry records what happened to one child of the root.
type Entry struct {
	Name   string // Child name relative to the root.
	Kind   Kind
	File   string // The single file, for KindAlreadyNamed and KindRenamed.
	Target string // The sketch name the file should carry.
}

// String returns the status line printed for the entry. Skipped and
// unreadable children have no status line.
func (e Entry) String() string {
	switch e.Kind {
	case KindEmpty:
		return fmt.Sprintf("%s is empty", e.Name)
	case KindAlreadyNamed:
		return fmt.Sprintf("%s contains %s", e.Name, e.File)
	case KindRenamed:
		return fmt.Sprintf("%s rename %s to %s", e.Name, e.File, e.Target)
	case KindMultiple:
		return fmt.Sprintf("%s contains more than one file", e.Name)
	}
	return ""
}

// Classify decides what to do with the directory name holding files.
func Classify(name string, files []string, ext string) Entry {
	target := name + ext
	switch len(files) {
	case 0:
		return Entry{Name: name, Kind: KindEmpty, Target: target}
	case 1:
		if files[0] == target {
			return Entry{Name: name, Kind: KindAlreadyNamed, File: files[0], Target: target}
		}
		return Entry{Name: name, Kind: KindRenamed, File: files[0], Target: target}
	}
	return Entry{Name: name, Kind: KindMultiple, Target: target}
}
