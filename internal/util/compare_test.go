package util

import (
	"go/token"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

func TestCompareExpr(t *testing.T) {
	tests := []struct {
		name string
		a    dst.Expr
		b    dst.Expr
		want bool
	}{
		{
			name: "both nil",
			want: true,
		},
		{
			name: "one nil",
			a:    dst.NewIdent("x"),
			want: false,
		},
		{
			name: "identical basic literals",
			a:    &dst.BasicLit{Kind: token.INT, Value: "42"},
			b:    &dst.BasicLit{Kind: token.INT, Value: "42"},
			want: true,
		},
		{
			name: "different basic literal kinds",
			a:    &dst.BasicLit{Kind: token.INT, Value: "1"},
			b:    &dst.BasicLit{Kind: token.FLOAT, Value: "1"},
			want: false,
		},
		{
			name: "identifiers with different paths",
			a:    &dst.Ident{Name: "int", Path: "C"},
			b:    &dst.Ident{Name: "int"},
			want: false,
		},
		{
			name: "identical arrays",
			a: &dst.ArrayType{
				Len: &dst.BasicLit{Kind: token.INT, Value: "2"},
				Elt: dst.NewIdent("uint64"),
			},
			b: &dst.ArrayType{
				Len: &dst.BasicLit{Kind: token.INT, Value: "2"},
				Elt: dst.NewIdent("uint64"),
			},
			want: true,
		},
		{
			name: "arrays of different length",
			a: &dst.ArrayType{
				Len: &dst.BasicLit{Kind: token.INT, Value: "2"},
				Elt: dst.NewIdent("uint64"),
			},
			b: &dst.ArrayType{
				Len: &dst.BasicLit{Kind: token.INT, Value: "3"},
				Elt: dst.NewIdent("uint64"),
			},
			want: false,
		},
		{
			name: "slice and array",
			a:    &dst.ArrayType{Elt: dst.NewIdent("byte")},
			b: &dst.ArrayType{
				Len: &dst.Ellipsis{},
				Elt: dst.NewIdent("byte"),
			},
			want: false,
		},
		{
			name: "composite literals with different elements",
			a: &dst.CompositeLit{
				Type: dst.NewIdent("T"),
				Elts: []dst.Expr{&dst.BasicLit{Kind: token.INT, Value: "1"}},
			},
			b: &dst.CompositeLit{
				Type: dst.NewIdent("T"),
				Elts: []dst.Expr{&dst.BasicLit{Kind: token.INT, Value: "2"}},
			},
			want: false,
		},
		{
			name: "identical calls",
			a: &dst.CallExpr{
				Fun:  &dst.Ident{Name: "Inf", Path: "math"},
				Args: []dst.Expr{&dst.BasicLit{Kind: token.INT, Value: "1"}},
			},
			b: &dst.CallExpr{
				Fun:  &dst.Ident{Name: "Inf", Path: "math"},
				Args: []dst.Expr{&dst.BasicLit{Kind: token.INT, Value: "1"}},
			},
			want: true,
		},
		{
			name: "unary with different operators",
			a:    &dst.UnaryExpr{Op: token.SUB, X: dst.NewIdent("x")},
			b:    &dst.UnaryExpr{Op: token.ADD, X: dst.NewIdent("x")},
			want: false,
		},
		{
			name: "unsupported expression",
			a:    &dst.FuncLit{},
			b:    &dst.FuncLit{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AssertExpressionEqual(tt.a, tt.b))
		})
	}
}
