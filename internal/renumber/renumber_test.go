package renumber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beckbria/sketchren/internal/fileio"
	"github.com/beckbria/sketchren/internal/hlog/hlogtest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/demo"

func setup(t *testing.T, names ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, n), []byte(n), 0o644))
	}
	return fsys
}

func list(t *testing.T, fsys afero.Fs) []string {
	t.Helper()
	names, err := fileio.ReadFileNames(fsys, dir, fileio.Filter{})
	require.NoError(t, err)
	return names
}

func content(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestRenumberBySortedName(t *testing.T) {
	fsys := setup(t, "z#1.txt", "a#3.txt", "m#2.txt")

	_, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"a#0010.txt", "m#0020.txt", "z#0030.txt"}, list(t, fsys))
	assert.Equal(t, "a#3.txt", content(t, fsys, "a#0010.txt"))
	assert.Equal(t, "m#2.txt", content(t, fsys, "m#0020.txt"))
	assert.Equal(t, "z#1.txt", content(t, fsys, "z#0030.txt"))
}

func TestRenumberStripsOldDigits(t *testing.T) {
	fsys := setup(t, "track12#.mp3")

	_, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"track#0010.mp"}, list(t, fsys))
}

func TestRenumberLeavesUnmarkedFiles(t *testing.T) {
	fsys := setup(t, "blink.ino", "b#.ino", "notes 12.txt")
	require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "sub#dir"), 0o755))

	result, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"b#0010.ino", "blink.ino", "notes 12.txt", "sub#0020dir"}, list(t, fsys))
	assert.Equal(t, "blink.ino", content(t, fsys, "blink.ino"))
	assert.Equal(t, "notes 12.txt", content(t, fsys, "notes 12.txt"))
	assert.Len(t, result.FirstPass, 2)
	assert.Len(t, result.SecondPass, 2)
}

func TestRenumberTwice(t *testing.T) {
	fsys := setup(t, "c#.txt", "a#.txt", "b#.txt")

	_, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)
	first := list(t, fsys)

	_, err = Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"a#0010.txt", "b#0020.txt", "c#0030.txt"}, first)
	assert.Equal(t, first, list(t, fsys))
}

func TestRenumberFillsGapsAfterRemoval(t *testing.T) {
	fsys := setup(t, "a#0010.txt", "c#0030.txt", "d#0040.txt")

	_, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"a#0010.txt", "c#0020.txt", "d#0030.txt"}, list(t, fsys))
}

func TestRenumberCollisionRenamesNothing(t *testing.T) {
	fsys := setup(t, "a#.txt", "x# y", "x##0020 y")

	_, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.Error(t, err)

	var cerr *CollisionError
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, []string{"a#.txt", "x# y", "x##0020 y"}, list(t, fsys))
}

// failingFs fails renames onto one target name.
type failingFs struct {
	afero.Fs
	target string
}

func (f failingFs) Rename(oldname, newname string) error {
	if filepath.Base(newname) == f.target {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrPermission}
	}
	return f.Fs.Rename(oldname, newname)
}

func TestRenumberFailureKeepsEarlierRenames(t *testing.T) {
	fsys := failingFs{Fs: setup(t, "a#.txt", "b#.txt", "c#.txt"), target: "b##0020.txt"}

	result, err := Renumber(hlogtest.NewContext(t), fsys, dir, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))

	assert.Equal(t, []RenameEntry{{OldName: "a#.txt", NewName: "a##0010.txt"}}, result.FirstPass)
	assert.Equal(t, []string{"a##0010.txt", "b#.txt", "c#.txt"}, list(t, fsys))
}

func TestRenumberCancelled(t *testing.T) {
	fsys := setup(t, "a#.txt")

	ctx, cancel := context.WithCancel(hlogtest.NewContext(t))
	cancel()

	_, err := Renumber(ctx, fsys, dir, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a#.txt"}, list(t, fsys))
}

func TestRenumberMissingDir(t *testing.T) {
	_, err := Renumber(context.Background(), afero.NewMemMapFs(), "/missing", DefaultOptions())
	assert.Error(t, err)
}

func TestRenumberOnDisk(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"led7#.ino", "button#.ino", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, n), []byte(n), 0o644))
	}

	fsys := afero.NewBasePathFs(afero.NewOsFs(), root)
	_, err := Renumber(hlogtest.NewContext(t), fsys, ".", DefaultOptions())
	require.NoError(t, err)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"button#0010.ino", "led#0020.ino", "readme.md"}, names)
}
