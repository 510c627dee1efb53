package util

import (
	"path"
	"strings"

	"github.com/dave/dst"
)

// ExprString returns a human readable Go rendering of a generated expression,
// for log messages and diagnostics. Identifiers carrying an import path are
// qualified with the last element of that path. Expressions it does not know
// are rendered as "...".
func ExprString(expr dst.Expr) string {
	b := &strings.Builder{}
	writeExpr(b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr dst.Expr) {
	switch v := expr.(type) {
	case *dst.Ident:
		if v.Path != "" {
			b.WriteString(path.Base(v.Path))
			b.WriteByte('.')
		}
		b.WriteString(v.Name)
	case *dst.BasicLit:
		b.WriteString(v.Value)
	case *dst.ArrayType:
		b.WriteByte('[')
		if v.Len != nil {
			writeExpr(b, v.Len)
		}
		b.WriteByte(']')
		writeExpr(b, v.Elt)
	case *dst.Ellipsis:
		b.WriteString("...")
		if v.Elt != nil {
			writeExpr(b, v.Elt)
		}
	case *dst.StarExpr:
		b.WriteByte('*')
		writeExpr(b, v.X)
	case *dst.UnaryExpr:
		b.WriteString(v.Op.String())
		writeExpr(b, v.X)
	case *dst.CallExpr:
		writeExpr(b, v.Fun)
		b.WriteByte('(')
		writeList(b, v.Args)
		b.WriteByte(')')
	case *dst.CompositeLit:
		writeExpr(b, v.Type)
		b.WriteByte('{')
		writeList(b, v.Elts)
		b.WriteByte('}')
	case nil:
	default:
		b.WriteString("...")
	}
}

func writeList(b *strings.Builder, exprs []dst.Expr) {
	for i, expr := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, expr)
	}
}
