package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/servermap/servermap/internal/pipeline"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteTree writes the given relative-path -> content files into a fresh
// temp directory and returns its root.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunPipeline writes a config tree and runs the full pipeline over it. The
// environment file must be named "environment.yaml"; every other file is
// treated as a per-server config.
func RunPipeline(t *testing.T, files map[string]string) (*pipeline.Result, error) {
	t.Helper()
	root := WriteTree(t, files)

	envPath := filepath.Join(root, "environment.yaml")
	var serverPaths []string
	for name := range files {
		if name == "environment.yaml" {
			continue
		}
		serverPaths = append(serverPaths, filepath.Join(root, name))
	}

	return pipeline.New().Run(context.Background(), envPath, serverPaths)
}
