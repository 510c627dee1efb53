package util

import (
	"reflect"

	"github.com/dave/dst"
)

// AssertExpressionEqual reports whether two expressions have the same
// structure. Decorations are ignored; identifiers must agree on both name and
// import path.
func AssertExpressionEqual(a dst.Expr, b dst.Expr) bool {
	return compareExpr(a, b)
}

func compareExprs(a, b []dst.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compareExpr(a dst.Expr, b dst.Expr) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *dst.BasicLit:
		b := b.(*dst.BasicLit)
		return a.Kind == b.Kind && a.Value == b.Value
	case *dst.Ident:
		b := b.(*dst.Ident)
		return a.Name == b.Name && a.Path == b.Path
	case *dst.ArrayType:
		b := b.(*dst.ArrayType)
		return compareExpr(a.Len, b.Len) && compareExpr(a.Elt, b.Elt)
	case *dst.Ellipsis:
		b := b.(*dst.Ellipsis)
		return compareExpr(a.Elt, b.Elt)
	case *dst.CompositeLit:
		b := b.(*dst.CompositeLit)
		return compareExpr(a.Type, b.Type) && compareExprs(a.Elts, b.Elts)
	case *dst.BinaryExpr:
		b := b.(*dst.BinaryExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Y, b.Y) && a.Op == b.Op
	case *dst.CallExpr:
		b := b.(*dst.CallExpr)
		return compareExpr(a.Fun, b.Fun) && compareExprs(a.Args, b.Args)
	case *dst.ParenExpr:
		b := b.(*dst.ParenExpr)
		return compareExpr(a.X, b.X)
	case *dst.SelectorExpr:
		b := b.(*dst.SelectorExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Sel, b.Sel)
	case *dst.StarExpr:
		b := b.(*dst.StarExpr)
		return compareExpr(a.X, b.X)
	case *dst.UnaryExpr:
		b := b.(*dst.UnaryExpr)
		return a.Op == b.Op && compareExpr(a.X, b.X)
	default:
		return false
	}
}
