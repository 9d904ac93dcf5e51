package renumber

import (
	"fmt"
	"sort"
)

type RenameEntry struct {
	OldName, NewName string
}

// Plan is the full list of renames for one run, in execution order.
type Plan struct {
	FirstPass  []RenameEntry
	SecondPass []RenameEntry
}

// ComputePlan works out both passes for a directory holding names. Both
// passes are simulated one rename at a time against the set of names present
// at that moment, so a rename onto an occupied name is caught here instead of
// silently replacing a file.
func ComputePlan(names []string, opts Options) (Plan, error) {
	var plan Plan
	if err := opts.Validate(); err != nil {
		return plan, err
	}

	present := newNameSet(names)

	renames := firstPass(present.sorted(), opts)
	if err := present.apply(1, renames); err != nil {
		return plan, err
	}
	plan.FirstPass = renames

	renames = secondPass(present.sorted(), opts)
	if err := present.apply(2, renames); err != nil {
		return plan, err
	}
	plan.SecondPass = renames

	return plan, nil
}

// firstPass numbers the marked names in sorted order, starting at 1.
func firstPass(sorted []string, opts Options) []RenameEntry {
	renames := make([]RenameEntry, 0)
	n := 1
	for _, name := range sorted {
		if !Markable(name, opts.Marker) {
			continue
		}
		renames = append(renames, RenameEntry{OldName: name, NewName: opts.Intermediate(name, n)})
		n++
	}
	return renames
}

// secondPass collapses the placeholders left by the first pass. Names that
// would not change are left out.
func secondPass(sorted []string, opts Options) []RenameEntry {
	renames := make([]RenameEntry, 0)
	for _, name := range sorted {
		if !Markable(name, opts.Marker) {
			continue
		}
		if final := opts.Final(name); final != name {
			renames = append(renames, RenameEntry{OldName: name, NewName: final})
		}
	}
	return renames
}

type nameSet map[string]struct{}

func newNameSet(names []string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s nameSet) sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// apply performs renames on the set in order, recording every rename whose
// target is already present.
func (s nameSet) apply(pass int, renames []RenameEntry) error {
	collisions := make(Collisions)
	for _, r := range renames {
		if _, taken := s[r.NewName]; taken {
			collisions.add(r.OldName, fmt.Sprintf("renaming to %q would replace an existing file", r.NewName))
			continue
		}
		delete(s, r.OldName)
		s[r.NewName] = struct{}{}
	}
	if len(collisions) > 0 {
		return &CollisionError{Pass: pass, Collisions: collisions}
	}
	return nil
}
