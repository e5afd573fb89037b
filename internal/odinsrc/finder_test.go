package odinsrc

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

func TestFinder_directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.odin":        "A :: 1",
		"b.odin":        "B :: 2",
		"README.md":     "not source",
		"notes.txt":     "not source",
		"sub/c.odin":    "C :: 3", // no recursion
		"vendor/d.odin": "D :: 4",
	})

	var f Finder
	pkg, ok := f.Find(dir)
	require.True(t, ok)

	assert.Equal(t, filepath.Base(dir), pkg.Name)
	assert.Equal(t, dir, pkg.Dir)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.odin"),
		filepath.Join(dir, "b.odin"),
	}, pkg.Files)
}

func TestFinder_unreadableDirectory(t *testing.T) {
	t.Parallel()

	var f Finder
	pkg, ok := f.Find(filepath.Join(t.TempDir(), "does-not-exist"))
	require.True(t, ok, "a missing directory is not a root failure")
	assert.Empty(t, pkg.Files)
}

func TestFinder_core(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"core/strings/builder.odin": "Builder :: struct {}",
		"core/strings/compare.odin": "compare :: proc(a, b: string) -> int",
	})

	t.Run("resolved", func(t *testing.T) {
		t.Parallel()

		f := Finder{Root: root}
		pkg, ok := f.Find("core:strings")
		require.True(t, ok)

		assert.Equal(t, "strings", pkg.Name)
		assert.Equal(t, []string{
			filepath.Join(root, "core", "strings", "builder.odin"),
			filepath.Join(root, "core", "strings", "compare.odin"),
		}, pkg.Files)
	})

	t.Run("no root", func(t *testing.T) {
		t.Parallel()

		var buff bytes.Buffer
		f := Finder{DebugLog: log.New(&buff, "", 0)}
		pkg, ok := f.Find("core:strings")
		assert.False(t, ok)
		assert.Nil(t, pkg)
		assert.Contains(t, buff.String(), "no installation root")
	})

	t.Run("unknown collection", func(t *testing.T) {
		t.Parallel()

		f := Finder{Root: root}
		pkg, ok := f.Find("core:no_such_pkg")
		require.True(t, ok)
		assert.Empty(t, pkg.Files)
	})
}
