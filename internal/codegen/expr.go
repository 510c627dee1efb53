package codegen

import (
	"go/token"
	"math"
	"strconv"

	"github.com/dave/dst"
	"github.com/ffigen/go-ffigen/internal/lit"
)

// IntExpr returns an integer literal for val. Negative values are written as
// a negated literal, which also covers math.MinInt64.
func IntExpr(val int64) dst.Expr {
	if val >= 0 {
		return UintExpr(uint64(val))
	}
	return &dst.UnaryExpr{
		Op: token.SUB,
		X:  UintExpr(uint64(-(val + 1)) + 1),
	}
}

// UintExpr returns an integer literal for val.
func UintExpr(val uint64) *dst.BasicLit {
	return &dst.BasicLit{
		Kind:  token.INT,
		Value: strconv.FormatUint(val, 10),
	}
}

// BoolExpr returns the predeclared identifier true or false.
func BoolExpr(val bool) *dst.Ident {
	return dst.NewIdent(strconv.FormatBool(val))
}

// ByteArrayExpr returns a [...]byte composite literal holding bytes followed
// by a terminating zero.
func ByteArrayExpr(bytes []byte) *dst.CompositeLit {
	elts := make([]dst.Expr, 0, len(bytes)+1)
	for _, b := range bytes {
		elts = append(elts, UintExpr(uint64(b)))
	}
	elts = append(elts, UintExpr(0))

	return &dst.CompositeLit{
		Type: &dst.ArrayType{
			Len: &dst.Ellipsis{},
			Elt: dst.NewIdent("byte"),
		},
		Elts: elts,
	}
}

// CStrExpr returns a string literal for s with a terminating NUL appended.
func CStrExpr(s string) *dst.BasicLit {
	return &dst.BasicLit{
		Kind:  token.STRING,
		Value: strconv.Quote(s + "\x00"),
	}
}

// FloatExpr returns a floating point literal for f. The literal always has a
// decimal point so it is never typed as an integer. NaN and infinities are
// written as calls into the math package.
func FloatExpr(f float64) dst.Expr {
	switch {
	case math.IsNaN(f):
		return &dst.CallExpr{
			Fun: &dst.Ident{Name: "NaN", Path: "math"},
		}
	case math.IsInf(f, 0):
		sign := int64(1)
		if f < 0 {
			sign = -1
		}
		return &dst.CallExpr{
			Fun:  &dst.Ident{Name: "Inf", Path: "math"},
			Args: []dst.Expr{IntExpr(sign)},
		}
	case math.Signbit(f):
		return &dst.UnaryExpr{
			Op: token.SUB,
			X:  FloatExpr(-f),
		}
	}

	return &dst.BasicLit{
		Kind:  token.FLOAT,
		Value: (&lit.Lit{Kind: lit.Float, Float: f}).String(),
	}
}

// LitExpr returns the expression for a literal value. Byte strings are written
// as string literals; use ByteArrayExpr for NUL terminated byte arrays.
func LitExpr(l *lit.Lit) dst.Expr {
	if l == nil {
		return nil
	}
	switch l.Kind {
	case lit.Str, lit.ByteStr:
		return l.BasicLit()
	case lit.Int:
		return IntExpr(l.Int)
	case lit.Uint:
		return UintExpr(l.Uint)
	case lit.Float:
		return FloatExpr(l.Float)
	case lit.Bool:
		return BoolExpr(l.Bool)
	default:
		return nil
	}
}
