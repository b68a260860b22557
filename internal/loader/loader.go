// Package loader reads raw config file bytes. Reads run concurrently as a
// pure performance optimization; results are always presented in
// filename-sorted order so downstream stages stay deterministic.
package loader

import (
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/servermap/servermap/internal/ctxlog"
)

// readConcurrency bounds parallel file reads.
const readConcurrency = 8

// File is the raw content of one config file.
type File struct {
	Path string
	Data []byte
}

// ReadAll reads every path. A single failed read aborts the whole run: a
// missing server's declarations would silently change the meaning of the
// resulting graph.
func ReadAll(ctx context.Context, paths []string) ([]File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading config files.", "count", len(paths))

	files := make([]File, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(readConcurrency)
	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			files[i] = File{Path: path, Data: data}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
