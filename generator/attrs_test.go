package generator

import (
	"testing"

	"github.com/ffigen/go-ffigen/internal/attr"
	"github.com/ffigen/go-ffigen/internal/lit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildAttr(t *testing.T) {
	tests := []struct {
		name       string
		spec       AttrSpec
		wantString string
		wantStyle  attr.Style
		wantDoc    bool
	}{
		{
			name:       "word",
			spec:       AttrSpec{Word: "inline"},
			wantString: "inline",
		},
		{
			name:       "inner word",
			spec:       AttrSpec{Word: "no_std", Inner: true},
			wantString: "no_std",
			wantStyle:  attr.Inner,
		},
		{
			name: "list",
			spec: AttrSpec{List: "derive", Items: []AttrSpec{
				{Word: "Clone"},
				{Word: "Copy"},
			}},
			wantString: "derive(Clone, Copy)",
		},
		{
			name: "nested list",
			spec: AttrSpec{List: "cfg", Items: []AttrSpec{
				{List: "any", Items: []AttrSpec{
					{Word: "unix"},
					{Name: "target_os", Value: &ValueSpec{Str: ptr("linux")}},
				}},
				{Word: "test"},
			}},
			wantString: `cfg(any(unix, target_os = "linux"), test)`,
		},
		{
			name:       "name value",
			spec:       AttrSpec{Name: "align", Value: &ValueSpec{Uint: ptr(uint64(8))}},
			wantString: "align = 8",
		},
		{
			name:       "doc",
			spec:       AttrSpec{Doc: "hello"},
			wantString: `doc = "hello"`,
			wantDoc:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := buildAttr(tt.spec)
			require.NoError(t, err)
			require.NotNil(t, a.Value)
			assert.Equal(t, tt.wantString, a.Value.String())
			assert.Equal(t, tt.wantStyle, a.Style)
			assert.Equal(t, tt.wantDoc, a.IsSugaredDoc)
		})
	}
}

func TestBuildAttr_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec AttrSpec
	}{
		{name: "empty", spec: AttrSpec{}},
		{name: "name without value", spec: AttrSpec{Name: "align"}},
		{name: "empty value", spec: AttrSpec{Name: "align", Value: &ValueSpec{}}},
		{name: "empty list item", spec: AttrSpec{List: "derive", Items: []AttrSpec{{}}}},
		{name: "nested error", spec: AttrSpec{List: "cfg", Items: []AttrSpec{
			{List: "any", Items: []AttrSpec{{Name: "x"}}},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildAttr(tt.spec)
			assert.Error(t, err)
		})
	}
}

func TestApplyValue(t *testing.T) {
	tests := []struct {
		name string
		v    *ValueSpec
		want lit.Kind
	}{
		{name: "str", v: &ValueSpec{Str: ptr("x")}, want: lit.Str},
		{name: "cstring", v: &ValueSpec{CString: ptr("x")}, want: lit.ByteStr},
		{name: "int", v: &ValueSpec{Int: ptr(int64(-1))}, want: lit.Int},
		{name: "uint", v: &ValueSpec{Uint: ptr(uint64(1))}, want: lit.Uint},
		{name: "float", v: &ValueSpec{Float: ptr(1.5)}, want: lit.Float},
		{name: "bool", v: &ValueSpec{Bool: ptr(false)}, want: lit.Bool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := applyValue(lit.New(), tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Kind)
		})
	}

	_, err := applyValue(lit.New(), nil)
	assert.ErrorIs(t, err, errEmptyValue)
}

func TestBuildAttrs_JoinsErrors(t *testing.T) {
	attrs, err := buildAttrs([]AttrSpec{
		{Word: "inline"},
		{},
		{Name: "align"},
		{Word: "cold"},
	})
	assert.Error(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "inline", attrs[0].Name())
	assert.Equal(t, "cold", attrs[1].Name())
}
