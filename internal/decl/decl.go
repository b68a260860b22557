package decl

import (
	"fmt"
	"strings"
)

// Direction tells whether a server emits or ingests a stream.
type Direction int

const (
	Produces Direction = iota
	Consumes
)

// String implements fmt.Stringer, matching the config-file keywords.
func (d Direction) String() string {
	switch d {
	case Produces:
		return "produces"
	case Consumes:
		return "consumes"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Declaration is a single produces/consumes statement extracted from a
// config file. Immutable once parsed; Server is filled in by the identity
// resolver, everything else by the dialect parser.
type Declaration struct {
	// Server is the resolved owning server name. Empty until resolution.
	Server string
	// Direction is produces or consumes.
	Direction Direction
	// Stream is the bare stream identifier used for matching.
	Stream string
	// Qualifier is the optional format/version suffix (the part after '@').
	// It never participates in matching; it is preserved for diagnostics.
	Qualifier string
	// File and Line point back at the source statement for error messages.
	File string
	Line int
}

// SplitQualifier splits a raw stream identifier into its bare id and
// optional qualifier at the first '@'.
func SplitQualifier(raw string) (stream, qualifier string) {
	if i := strings.Index(raw, "@"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}

// RouteHint is an explicit stream routing declared in the environment file,
// independent of any per-server produce/consume statements.
type RouteHint struct {
	Stream string
	From   string
	To     string
}

// ServerEntry is one server in the environment registry, with optional
// free-form metadata.
type ServerEntry struct {
	Name string
	Meta map[string]string
}

// Registry is the environment file's authoritative view of the deployment:
// an ordered list of known servers plus explicit routing hints. Order
// follows the environment document and drives deterministic rendering.
type Registry struct {
	Servers []ServerEntry
	Hints   []RouteHint
}

// Lookup finds a registry entry by name, case-insensitively, and returns
// the canonical entry. Registry names are unique within a run.
func (r *Registry) Lookup(name string) (ServerEntry, bool) {
	for _, s := range r.Servers {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return ServerEntry{}, false
}
