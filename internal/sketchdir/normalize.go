// Package sketchdir renames the lone sketch file in each example directory
// after the directory that holds it.
package sketchdir

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/beckbria/sketchren/internal/fileio"
	"github.com/beckbria/sketchren/internal/hlog"
	"github.com/spf13/afero"
)

// Report lists every child of the root in name order with its outcome.
type Report struct {
	Entries []Entry
}

func (r Report) Count(k Kind) int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Normalize visits each immediate child of root. A directory holding exactly
// one file gets that file renamed to the directory name plus opts.Extension.
// One status line per directory is written to out. The first failed rename
// ends the run; renames already made are kept.
func Normalize(ctx context.Context, fsys afero.Fs, root string, opts Options, out io.Writer) (Report, error) {
	var report Report
	if err := opts.Validate(); err != nil {
		return report, err
	}
	filter, err := fileio.NewFilter(opts.Ignore...)
	if err != nil {
		return report, err
	}

	children, err := fileio.ReadFileNames(fsys, root, fileio.Filter{})
	if err != nil {
		return report, fmt.Errorf("list %s: %w", root, err)
	}

	logger := hlog.From(ctx)
	for _, name := range children {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry, err := visit(fsys, root, name, filter, opts.Extension)
		if err != nil {
			logger.Warn("cannot list directory", "dir", filepath.Join(root, name), "err", err)
			entry = Entry{Name: name, Kind: KindUnreadable}
		}
		report.Entries = append(report.Entries, entry)

		if line := entry.String(); line != "" {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return report, err
			}
		}
		if entry.Kind != KindRenamed {
			continue
		}

		dir := filepath.Join(root, name)
		logger.Debug("renaming", "dir", dir, "from", entry.File, "to", entry.Target)
		if err := fileio.Rename(fsys, dir, entry.File, entry.Target); err != nil {
			return report, err
		}
	}

	return report, nil
}

// visit classifies one child. An error means the child is a directory, or
// may be one, whose contents could not be read.
func visit(fsys afero.Fs, root, name string, filter fileio.Filter, ext string) (Entry, error) {
	path := filepath.Join(root, name)

	isDir, err := fileio.IsDir(fsys, path)
	if err != nil {
		return Entry{}, err
	}
	if !isDir {
		return Entry{Name: name, Kind: KindSkipped}, nil
	}

	files, err := fileio.ReadFileNames(fsys, path, filter)
	if err != nil {
		return Entry{}, err
	}

	return Classify(name, files, ext), nil
}
