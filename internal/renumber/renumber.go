// Package renumber rewrites the numbers in marked file names so the marked
// files of a directory count up in name order.
//
// A file is marked when its name contains the marker ('#' by default). Every
// digit is removed from a marked name and each marker is followed by the
// file's new number: 0010 for the first file in name order, 0020 for the
// second, and so on. The renames are done in two passes through a doubled
// marker so that a freshly numbered name is never mistaken for one still
// waiting to be processed.
package renumber

import (
	"context"
	"fmt"

	"github.com/beckbria/sketchren/internal/fileio"
	"github.com/beckbria/sketchren/internal/hlog"
	"github.com/spf13/afero"
)

// Result lists the renames that were performed.
type Result struct {
	FirstPass  []RenameEntry
	SecondPass []RenameEntry
}

// Renumber renumbers the marked files in dir. Nothing is renamed when the
// plan has a collision. A rename that fails while running aborts the run and
// leaves the earlier renames in place.
func Renumber(ctx context.Context, fsys afero.Fs, dir string, opts Options) (Result, error) {
	var result Result

	names, err := fileio.ReadFileNames(fsys, dir, fileio.Filter{})
	if err != nil {
		return result, fmt.Errorf("list %s: %w", dir, err)
	}
	plan, err := ComputePlan(names, opts)
	if err != nil {
		return result, err
	}

	logger := hlog.From(ctx)
	for _, r := range plan.FirstPass {
		if err := execute(ctx, fsys, dir, r); err != nil {
			return result, fmt.Errorf("first pass: %w", err)
		}
		result.FirstPass = append(result.FirstPass, r)
	}

	// The second pass works from what is on disk now, not from the plan.
	names, err = fileio.ReadFileNames(fsys, dir, fileio.Filter{})
	if err != nil {
		return result, fmt.Errorf("list %s: %w", dir, err)
	}
	for _, r := range secondPass(names, opts) {
		if err := execute(ctx, fsys, dir, r); err != nil {
			return result, fmt.Errorf("second pass: %w", err)
		}
		result.SecondPass = append(result.SecondPass, r)
	}

	logger.Debug("renumbered", "dir", dir, "files", len(result.FirstPass))
	return result, nil
}

func execute(ctx context.Context, fsys afero.Fs, dir string, r RenameEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hlog.From(ctx).Debug("renaming", "from", r.OldName, "to", r.NewName)
	return fileio.Rename(fsys, dir, r.OldName, r.NewName)
}
