// Package cli translates command-line arguments into an app.Config. It is
// a thin wrapper with no algorithmic content; everything interesting lives
// behind the app package.
package cli
