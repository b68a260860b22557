// Package identity attributes each parsed config file to a server node,
// using the environment registry as the authoritative name source.
package identity

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/servermap/servermap/internal/decl"
	"github.com/servermap/servermap/internal/diag"
	"github.com/servermap/servermap/internal/dialect"
)

// UnresolvableIdentityError reports a config file whose server identity
// cannot be determined at all: no in-file directive and an empty filename
// stem. Anything short of that resolves or synthesizes.
type UnresolvableIdentityError struct {
	Path string
}

func (e *UnresolvableIdentityError) Error() string {
	return fmt.Sprintf("cannot resolve server identity for %s: no identity directive and empty filename stem", e.Path)
}

// Resolution is the outcome of attributing every config file to a server.
type Resolution struct {
	// Nodes is the final ordered server set: registry entries in document
	// order, then synthesized unregistered servers in filename order.
	Nodes []decl.ServerEntry
	// Decls is every stream declaration across all files, attributed to its
	// resolved server name.
	Decls []decl.Declaration
	// Diagnostics carries one entry per synthesized unregistered server.
	Diagnostics diag.List
}

// Resolve maps each parsed file to a server node. Resolution order per
// file: the in-file identity directive, then the filename stem matched
// case-insensitively against the registry, then a synthesized unregistered
// node. Files are processed in sorted path order so the first occurrence of
// an unregistered name wins deterministically regardless of input order.
// Endpoints of explicit routing hints that name no known server are
// synthesized too: a hint is still a declaration of flow, and dropping it
// would make the graph lie.
func Resolve(reg *decl.Registry, files []*dialect.ServerFile) (*Resolution, error) {
	res := &Resolution{Nodes: append([]decl.ServerEntry(nil), reg.Servers...)}

	index := make(map[string]int, len(res.Nodes))
	for i, entry := range res.Nodes {
		index[strings.ToLower(entry.Name)] = i
	}

	ordered := append([]*dialect.ServerFile(nil), files...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Path < ordered[j].Path })

	for _, file := range ordered {
		name, err := resolveOne(file)
		if err != nil {
			return nil, err
		}

		if i, ok := index[strings.ToLower(name)]; ok {
			name = res.Nodes[i].Name
			mergeMeta(&res.Nodes[i], file.Meta)
		} else {
			entry := decl.ServerEntry{Name: name, Meta: map[string]string{"unregistered": "true"}}
			mergeMeta(&entry, file.Meta)
			index[strings.ToLower(name)] = len(res.Nodes)
			res.Nodes = append(res.Nodes, entry)
			res.Diagnostics.Add(diag.UnregisteredServer, name,
				"inferred from %s, absent from the environment registry", file.Path)
		}

		for _, d := range file.Decls {
			d.Server = name
			res.Decls = append(res.Decls, d)
		}
	}

	for _, hint := range reg.Hints {
		for _, name := range []string{hint.From, hint.To} {
			if _, ok := index[strings.ToLower(name)]; ok {
				continue
			}
			index[strings.ToLower(name)] = len(res.Nodes)
			res.Nodes = append(res.Nodes, decl.ServerEntry{Name: name, Meta: map[string]string{"unregistered": "true"}})
			res.Diagnostics.Add(diag.UnregisteredServer, name,
				"referenced by a route hint for stream %q, absent from the environment registry", hint.Stream)
		}
	}

	return res, nil
}

// resolveOne determines the claimed name of a single file, before registry
// canonicalization. The in-file directive wins over the filename stem.
func resolveOne(file *dialect.ServerFile) (string, error) {
	if file.Identity != "" {
		return file.Identity, nil
	}

	stem := strings.TrimSuffix(filepath.Base(file.Path), filepath.Ext(file.Path))
	if stem == "" {
		return "", &UnresolvableIdentityError{Path: file.Path}
	}
	return stem, nil
}

// mergeMeta copies file-declared metadata onto the node without clobbering
// registry-declared keys: the environment file is authoritative.
func mergeMeta(entry *decl.ServerEntry, meta map[string]string) {
	if len(meta) == 0 {
		return
	}
	if entry.Meta == nil {
		entry.Meta = make(map[string]string, len(meta))
	}
	for k, v := range meta {
		if _, exists := entry.Meta[k]; !exists {
			entry.Meta[k] = v
		}
	}
}
