package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll_SortedByPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	paths := make([]string, 0, 3)
	for _, name := range []string{"c.conf", "a.conf", "b.conf"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		paths = append(paths, path)
	}

	files, err := ReadAll(context.Background(), paths)
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "a.conf"), files[0].Path)
	assert.Equal(t, filepath.Join(root, "b.conf"), files[1].Path)
	assert.Equal(t, filepath.Join(root, "c.conf"), files[2].Path)
	assert.Equal(t, "a.conf", string(files[0].Data))
}

func TestReadAll_FailedReadAbortsRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	good := filepath.Join(root, "a.conf")
	require.NoError(t, os.WriteFile(good, nil, 0o644))

	_, err := ReadAll(context.Background(), []string{good, filepath.Join(root, "missing.conf")})
	require.Error(t, err)
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	files, err := ReadAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
