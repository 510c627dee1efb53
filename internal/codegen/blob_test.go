package codegen

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/dave/dst"
	"github.com/ffigen/go-ffigen/internal/layout"
	"github.com/ffigen/go-ffigen/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrayOf(n string, elt string) dst.Expr {
	return &dst.ArrayType{
		Len: &dst.BasicLit{Kind: token.INT, Value: n},
		Elt: dst.NewIdent(elt),
	}
}

func TestBlobType(t *testing.T) {
	tests := []struct {
		name   string
		layout layout.Layout
		want   dst.Expr
	}{
		{
			name:   "single u64",
			layout: layout.New(8, 8),
			want:   dst.NewIdent("uint64"),
		},
		{
			name:   "two u64",
			layout: layout.New(16, 8),
			want:   arrayOf("2", "uint64"),
		},
		{
			name:   "u32 array",
			layout: layout.New(12, 4),
			want:   arrayOf("3", "uint32"),
		},
		{
			name:   "single u16",
			layout: layout.New(2, 2),
			want:   dst.NewIdent("uint16"),
		},
		{
			name:   "bytes",
			layout: layout.New(3, 1),
			want:   arrayOf("3", "uint8"),
		},
		{
			name:   "single byte",
			layout: layout.New(1, 1),
			want:   dst.NewIdent("uint8"),
		},
		{
			name:   "empty",
			layout: layout.New(0, 8),
			want:   arrayOf("0", "uint64"),
		},
		{
			name:   "unknown alignment counts bytes",
			layout: layout.New(5, 0),
			want:   arrayOf("5", "uint8"),
		},
		{
			name:   "wide alignment falls back to bytes",
			layout: layout.New(32, 16),
			want:   arrayOf("32", "uint8"),
		},
		{
			name:   "inconsistent layout truncates",
			layout: layout.New(6, 4),
			want:   dst.NewIdent("uint32"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlobType(tt.layout)
			assert.True(t, util.AssertExpressionEqual(tt.want, got), "got %s, want %s", util.ExprString(got), util.ExprString(tt.want))
		})
	}
}

func TestBlobTypeMatchesLayout(t *testing.T) {
	sizes := types.SizesFor("gc", "amd64")
	for _, align := range []uint64{1, 2, 4, 8} {
		for n := uint64(0); n <= 5; n++ {
			l := layout.New(n*align, align)
			typ, err := util.TypeOf(BlobType(l))
			require.NoError(t, err)

			got := layout.Of(typ, sizes)
			assert.Equal(t, l.Size, got.Size, "size of placeholder for %s", l)
			if n > 0 {
				assert.Equal(t, l.Align, got.Align, "alignment of placeholder for %s", l)
			}
		}
	}
}

func TestBlobTypeFreshNodes(t *testing.T) {
	l := layout.New(16, 8)
	a := BlobType(l)
	b := BlobType(l)
	assert.NotSame(t, a, b)
}
