// Package fsutil provides file discovery helpers for the CLI layer.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ConfigExtensions are the file extensions recognized as per-server
// configuration when a directory is given instead of a file.
var ConfigExtensions = []string{".conf", ".hcl"}

// FindFilesByExtension recursively searches rootPath for all files ending
// with one of the given extensions and returns their paths.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ExpandGlobs expands a list of glob patterns into a deduplicated,
// lexically sorted list of config file paths. Patterns matching a directory
// are walked for files with a recognized config extension. A pattern that
// matches nothing is an error: a silently missing server config would change
// the meaning of the resulting graph.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", pattern)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				found, err := FindFilesByExtension(match, ConfigExtensions...)
				if err != nil {
					return nil, err
				}
				for _, f := range found {
					add(f)
				}
				continue
			}
			add(match)
		}
	}

	sort.Strings(files)
	return files, nil
}
