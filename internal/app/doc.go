// Package app owns the application lifecycle: configuration, logger setup,
// and the sequencing of pipeline run and output rendering.
package app
