// Package decl holds the format-agnostic value types shared by every
// pipeline stage: stream declarations, routing hints, and the environment
// registry. Dialect parsers produce these types; nothing in this package
// knows about YAML, HCL, or the line-oriented conf syntax.
package decl
