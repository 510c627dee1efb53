package generator

import (
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/ffigen/go-ffigen/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSpec = `{
	"package": "foo",
	"ctypes_prefix": "example.com/ctypes",
	"attributes": [{"list": "allow", "items": [{"word": "dead_code"}]}],
	"decls": [
		{
			"kind": "opaque",
			"name": "Foo",
			"doc": "Foo is opaque.",
			"location": {"file": "foo.h", "line": 3, "column": 1},
			"layout": {"size": 16, "align": 8}
		},
		{
			"kind": "func",
			"name": "FooNew",
			"link_name": "foo_new",
			"params": [{"name": "n", "type": {"c": "int"}}],
			"result": {"name": "Foo", "pointer": 1}
		},
		{
			"kind": "const",
			"name": "FooMax",
			"value": {"uint": 42}
		}
	]
}`

func TestParse(t *testing.T) {
	spec, err := Parse([]byte(exampleSpec))
	require.NoError(t, err)

	assert.Equal(t, "foo", spec.Package)
	assert.Equal(t, "example.com/ctypes", spec.CTypesPrefix)
	require.Len(t, spec.Attributes, 1)
	assert.Equal(t, "allow", spec.Attributes[0].List)
	require.Len(t, spec.Decls, 3)

	opaque := spec.Decls[0]
	assert.Equal(t, KindOpaque, opaque.Kind)
	assert.Equal(t, &layout.Layout{Size: 16, Align: 8}, opaque.Layout)
	assert.Equal(t, token.Position{Filename: "foo.h", Line: 3, Column: 1}, opaque.Location.Position())

	fn := spec.Decls[1]
	assert.Equal(t, "foo_new", fn.LinkName)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "int", fn.Params[0].Type.C)
	require.NotNil(t, fn.Result)
	assert.Equal(t, 1, fn.Result.Pointer)

	constant := spec.Decls[2]
	require.NotNil(t, constant.Value)
	require.NotNil(t, constant.Value.Uint)
	assert.Equal(t, uint64(42), *constant.Value.Uint)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid json", data: `{"package": `},
		{name: "unknown field", data: `{"package": "foo", "decls": [], "pkg": "bar"}`},
		{name: "unknown decl field", data: `{"package": "foo", "decls": [{"kind": "opaque", "name": "Foo", "size": 4}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.json")
	require.NoError(t, os.WriteFile(path, []byte(exampleSpec), 0644))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "foo", spec.Package)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocation_Position(t *testing.T) {
	var loc *Location
	assert.Equal(t, token.Position{}, loc.Position())
	pos := loc.Position()
	assert.False(t, pos.IsValid())

	loc = &Location{File: "bar.h", Line: 10}
	assert.Equal(t, "bar.h:10", loc.Position().String())
}
