package dialect

import (
	"path/filepath"
	"strings"

	"github.com/servermap/servermap/internal/decl"
)

// Dialect identifies one of the supported configuration syntaxes.
type Dialect int

const (
	// Environment is the YAML registry/topology document.
	Environment Dialect = iota
	// Conf is the line-oriented per-server syntax.
	Conf
	// HCL is the block-structured per-server syntax.
	HCL
)

// String implements fmt.Stringer.
func (d Dialect) String() string {
	switch d {
	case Environment:
		return "environment"
	case Conf:
		return "conf"
	case HCL:
		return "hcl"
	default:
		return "unknown"
	}
}

// ServerFile is the parsed form of one per-server configuration file.
type ServerFile struct {
	// Path is the source file path, used for identity resolution and errors.
	Path string
	// Dialect records which syntax the file was parsed as.
	Dialect Dialect
	// Identity is the in-file identity directive, if any. Empty means the
	// filename stem decides.
	Identity string
	// Meta holds metadata declared in the file itself (HCL only).
	Meta map[string]string
	// Decls are the produces/consumes statements in file order. Server is
	// unset until the identity resolver attributes them.
	Decls []decl.Declaration
}

// Detect maps a file path to its dialect by extension.
func Detect(path string) (Dialect, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return Environment, true
	case ".conf":
		return Conf, true
	case ".hcl":
		return HCL, true
	}
	return 0, false
}

// ParseServerFile parses a per-server config file in whichever per-server
// dialect its extension indicates.
func ParseServerFile(path string, src []byte) (*ServerFile, error) {
	d, ok := Detect(path)
	if !ok || d == Environment {
		return nil, &MalformedConfigError{Path: path, Reason: "not a recognized per-server config dialect"}
	}
	if d == HCL {
		return ParseHCL(path, src)
	}
	return ParseConf(path, src)
}
