// Package diag collects the non-fatal findings of a run. Diagnostics are
// surfaced as warnings alongside a still-valid graph and never affect the
// exit code.
package diag

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	// UnregisteredServer marks a server synthesized from a config filename
	// that is absent from the environment registry.
	UnregisteredServer Kind = "unregistered-server"
	// UnmatchedStream marks a stream identifier declared only as produces
	// or only as consumes, which therefore yields no edge.
	UnmatchedStream Kind = "unmatched-stream"
)

// Diagnostic is one non-fatal finding.
type Diagnostic struct {
	Kind    Kind
	Subject string
	Detail  string
}

// String renders the diagnostic the way it is printed as a warning.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %q: %s", d.Kind, d.Subject, d.Detail)
}

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Add appends a diagnostic.
func (l *List) Add(kind Kind, subject, format string, args ...any) {
	*l = append(*l, Diagnostic{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)})
}
