package dialect

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/servermap/servermap/internal/decl"
)

// hclRoot is the decode target for a per-server HCL file.
type hclRoot struct {
	Servers []*hclServer `hcl:"server,block"`
	Remain  hcl.Body     `hcl:",remain"`
}

// hclServer is a single `server "<name>" { ... }` block.
type hclServer struct {
	Name     string    `hcl:"name,label"`
	Produces []string  `hcl:"produces,optional"`
	Consumes []string  `hcl:"consumes,optional"`
	Meta     cty.Value `hcl:"meta,optional"`
	Remain   hcl.Body  `hcl:",remain"`
}

// ParseHCL parses the block-structured per-server syntax:
//
//	server "billing" {
//	  produces = ["invoices"]
//	  consumes = ["orders@v2"]
//	  meta     = { role = "billing" }
//	}
//
// At most one server block is allowed per file; its label is the identity
// directive. A file with no server block parses to an empty declaration
// list, leaving identity to the filename stem.
func ParseHCL(path string, src []byte) (*ServerFile, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, &MalformedConfigError{Path: path, Reason: "failed to parse HCL", Err: diags}
	}

	var root hclRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, &MalformedConfigError{Path: path, Reason: "failed to decode HCL", Err: diags}
	}

	file := &ServerFile{Path: path, Dialect: HCL}
	if len(root.Servers) == 0 {
		return file, nil
	}
	if len(root.Servers) > 1 {
		return nil, &MalformedConfigError{
			Path:   path,
			Reason: fmt.Sprintf("only one server block is allowed, found %d", len(root.Servers)),
		}
	}

	block := root.Servers[0]
	file.Identity = block.Name

	meta, err := decodeMeta(path, block.Meta)
	if err != nil {
		return nil, err
	}
	file.Meta = meta

	line := serverBlockLine(hclFile.Body)
	for _, raw := range block.Produces {
		file.Decls = append(file.Decls, newHCLDecl(path, line, decl.Produces, raw))
	}
	for _, raw := range block.Consumes {
		file.Decls = append(file.Decls, newHCLDecl(path, line, decl.Consumes, raw))
	}

	return file, nil
}

// serverBlockLine reports the line of the server block definition, for
// declaration provenance. HCL list attributes do not expose per-item
// positions, so every declaration in the block shares its line.
func serverBlockLine(body hcl.Body) int {
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return 0
	}
	for _, block := range syntaxBody.Blocks {
		if block.Type == "server" {
			return block.DefRange().Start.Line
		}
	}
	return 0
}

// decodeMeta converts the optional meta object into string metadata. Every
// value must be convertible to a string.
func decodeMeta(path string, val cty.Value) (map[string]string, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, &MalformedConfigError{Path: path, Reason: "meta must be an object of string values"}
	}

	meta := make(map[string]string)
	for key, v := range val.AsValueMap() {
		converted, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, &MalformedConfigError{
				Path:   path,
				Reason: fmt.Sprintf("meta value for %q is not a string", key),
				Err:    err,
			}
		}
		if converted.IsNull() {
			continue
		}
		meta[key] = converted.AsString()
	}
	return meta, nil
}

func newHCLDecl(path string, line int, dir decl.Direction, raw string) decl.Declaration {
	stream, qualifier := decl.SplitQualifier(raw)
	return decl.Declaration{
		Direction: dir,
		Stream:    stream,
		Qualifier: qualifier,
		File:      path,
		Line:      line,
	}
}
