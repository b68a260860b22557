package dialect

import "fmt"

// MalformedConfigError reports a configuration file that could not be
// parsed: undecodable text or a violation of the dialect's required
// structure. Skippable content (comments, unknown directives) never
// produces this error.
type MalformedConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed config %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed config %s: %s", e.Path, e.Reason)
}

func (e *MalformedConfigError) Unwrap() error {
	return e.Err
}
