package dialect

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/servermap/servermap/internal/decl"
)

// ParseEnvironment parses the environment registry document. The document
// must carry a `servers` mapping; the mapping's document order is preserved
// because it drives deterministic node ordering in the rendered graph.
// Unknown top-level keys are skipped.
func ParseEnvironment(path string, src []byte) (*decl.Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, &MalformedConfigError{Path: path, Reason: "not decodable as YAML", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &MalformedConfigError{Path: path, Reason: "empty environment document"}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &MalformedConfigError{Path: path, Reason: "environment document is not a mapping"}
	}

	reg := &decl.Registry{}
	var serversSeen bool

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "servers":
			serversSeen = true
			if err := parseServers(path, value, reg); err != nil {
				return nil, err
			}
		case "routes":
			if err := parseRoutes(path, value, reg); err != nil {
				return nil, err
			}
		}
	}

	if !serversSeen {
		return nil, &MalformedConfigError{Path: path, Reason: "environment document is missing its servers mapping"}
	}
	return reg, nil
}

// parseServers decodes the ordered name -> metadata mapping.
func parseServers(path string, node *yaml.Node, reg *decl.Registry) error {
	if node.Kind != yaml.MappingNode {
		return &MalformedConfigError{Path: path, Reason: "servers must be a mapping of server name to metadata"}
	}
	seen := make(map[string]struct{})
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := key.Value
		if name == "" {
			return &MalformedConfigError{Path: path, Reason: fmt.Sprintf("empty server name at line %d", key.Line)}
		}
		if _, dup := seen[name]; dup {
			return &MalformedConfigError{Path: path, Reason: fmt.Sprintf("duplicate server %q at line %d", name, key.Line)}
		}
		seen[name] = struct{}{}

		entry := decl.ServerEntry{Name: name}
		if value.Kind == yaml.MappingNode {
			entry.Meta = make(map[string]string, len(value.Content)/2)
			for j := 0; j+1 < len(value.Content); j += 2 {
				mk, mv := value.Content[j], value.Content[j+1]
				if mv.Kind == yaml.ScalarNode {
					entry.Meta[mk.Value] = mv.Value
				}
			}
		}
		reg.Servers = append(reg.Servers, entry)
	}
	return nil
}

// parseRoutes decodes the optional explicit (stream, from, to) hint list.
func parseRoutes(path string, node *yaml.Node, reg *decl.Registry) error {
	if node.Kind != yaml.SequenceNode {
		return &MalformedConfigError{Path: path, Reason: "routes must be a list"}
	}
	for _, item := range node.Content {
		var hint struct {
			Stream string `yaml:"stream"`
			From   string `yaml:"from"`
			To     string `yaml:"to"`
		}
		if err := item.Decode(&hint); err != nil {
			return &MalformedConfigError{Path: path, Reason: fmt.Sprintf("invalid route at line %d", item.Line), Err: err}
		}
		if hint.Stream == "" || hint.From == "" || hint.To == "" {
			return &MalformedConfigError{
				Path:   path,
				Reason: fmt.Sprintf("route at line %d must declare stream, from, and to", item.Line),
			}
		}
		reg.Hints = append(reg.Hints, decl.RouteHint(hint))
	}
	return nil
}
