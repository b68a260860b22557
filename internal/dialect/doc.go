// Package dialect turns raw configuration text into the shared declaration
// model. Each supported syntax is a closed enum member with a pure parse
// function, so there is no runtime type sniffing and every parser can be
// unit tested on a string.
//
// Three dialects are recognized:
//
//   - Environment (.yml/.yaml): the authoritative registry of servers plus
//     optional explicit routing hints.
//   - Conf (.conf): line-oriented per-server declarations, one
//     `produces <id>` or `consumes <id>` statement per line.
//   - HCL (.hcl): a per-server `server "<name>" { ... }` block with
//     produces/consumes lists and optional metadata.
//
// Parsing is tolerant: unrecognized lines, attributes, and keys are skipped
// so comments and unsupported directives do not break a run. A
// MalformedConfigError is returned only when a file is not decodable at all
// or violates the dialect's required structure.
package dialect
