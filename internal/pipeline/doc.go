// Package pipeline sequences the analysis stages: load raw files, parse
// each dialect, resolve file identities against the environment registry,
// join producer and consumer declarations into edges, and assemble the
// final graph. Each stage consumes the previous stage's immutable output;
// there is no shared mutable state, so a pipeline can run repeatedly within
// one process.
package pipeline
