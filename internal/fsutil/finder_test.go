package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
	return root
}

func TestExpandGlobs_PatternAndSorting(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, "b.conf", "a.conf", "notes.txt")

	files, err := ExpandGlobs([]string{filepath.Join(root, "*.conf")})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.conf"),
		filepath.Join(root, "b.conf"),
	}, files)
}

func TestExpandGlobs_DirectoryWalk(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, "sub/a.conf", "sub/deep/b.hcl", "sub/readme.md")

	files, err := ExpandGlobs([]string{filepath.Join(root, "sub")})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files, filepath.Join(root, "sub", "a.conf"))
	assert.Contains(t, files, filepath.Join(root, "sub", "deep", "b.hcl"))
}

func TestExpandGlobs_Deduplicates(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, "a.conf")
	pattern := filepath.Join(root, "*.conf")

	files, err := ExpandGlobs([]string{pattern, filepath.Join(root, "a.conf")})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestExpandGlobs_NoMatchIsError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	_, err := ExpandGlobs([]string{filepath.Join(root, "*.conf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched no files")
}
