package dialect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servermap/servermap/internal/decl"
)

func TestParseHCL_ServerBlock(t *testing.T) {
	t.Parallel()

	src := `
server "billing" {
  produces = ["invoices", "receipts@v1"]
  consumes = ["orders"]
  meta = {
    role = "billing"
    tier = 2
  }
}
`
	file, err := ParseHCL("billing.hcl", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "billing", file.Identity)
	assert.Equal(t, HCL, file.Dialect)
	// Numeric meta values convert to their string form.
	assert.Equal(t, map[string]string{"role": "billing", "tier": "2"}, file.Meta)

	require.Len(t, file.Decls, 3)
	assert.Equal(t, decl.Produces, file.Decls[0].Direction)
	assert.Equal(t, "invoices", file.Decls[0].Stream)
	assert.Equal(t, "receipts", file.Decls[1].Stream)
	assert.Equal(t, "v1", file.Decls[1].Qualifier)
	assert.Equal(t, decl.Consumes, file.Decls[2].Direction)
	assert.Equal(t, "orders", file.Decls[2].Stream)
}

func TestParseHCL_NoServerBlock(t *testing.T) {
	t.Parallel()

	file, err := ParseHCL("d.hcl", []byte(""))
	require.NoError(t, err)
	assert.Empty(t, file.Identity)
	assert.Empty(t, file.Decls)
}

func TestParseHCL_MultipleServerBlocks(t *testing.T) {
	t.Parallel()

	src := `
server "a" {}
server "b" {}
`
	_, err := ParseHCL("two.hcl", []byte(src))
	var malformed *MalformedConfigError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Reason, "one server block")
}

func TestParseHCL_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseHCL("bad.hcl", []byte(`server "x" {`))
	var malformed *MalformedConfigError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "bad.hcl", malformed.Path)
}

func TestParseServerFile_DispatchesByExtension(t *testing.T) {
	t.Parallel()

	conf, err := ParseServerFile("a.conf", []byte("produces x\n"))
	require.NoError(t, err)
	assert.Equal(t, Conf, conf.Dialect)

	hcl, err := ParseServerFile("a.hcl", []byte(`server "a" { produces = ["x"] }`))
	require.NoError(t, err)
	assert.Equal(t, HCL, hcl.Dialect)

	_, err = ParseServerFile("a.ini", []byte(""))
	require.Error(t, err)
}
