package util

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/dave/dst"
)

// TypeOf returns the go/types type of a generated type expression built from
// predeclared identifiers, arrays and pointers. It is used to check generated
// placeholders against the layout they were built for.
func TypeOf(expr dst.Expr) (types.Type, error) {
	switch v := expr.(type) {
	case *dst.Ident:
		if v.Path != "" {
			return nil, fmt.Errorf("type %s.%s is not predeclared", v.Path, v.Name)
		}
		obj := types.Universe.Lookup(v.Name)
		if obj == nil {
			return nil, fmt.Errorf("unknown type %s", v.Name)
		}
		tn, ok := obj.(*types.TypeName)
		if !ok {
			return nil, fmt.Errorf("%s is not a type", v.Name)
		}
		return tn.Type(), nil
	case *dst.ArrayType:
		elem, err := TypeOf(v.Elt)
		if err != nil {
			return nil, err
		}
		if v.Len == nil {
			return types.NewSlice(elem), nil
		}
		n, err := arrayLen(v.Len)
		if err != nil {
			return nil, err
		}
		return types.NewArray(elem, n), nil
	case *dst.StarExpr:
		elem, err := TypeOf(v.X)
		if err != nil {
			return nil, err
		}
		return types.NewPointer(elem), nil
	case nil:
		return nil, fmt.Errorf("nil type expression")
	default:
		return nil, fmt.Errorf("unsupported type expression %T", expr)
	}
}

func arrayLen(expr dst.Expr) (int64, error) {
	lit, ok := expr.(*dst.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, fmt.Errorf("array length must be an integer literal, got %T", expr)
	}
	n, ok := constant.Int64Val(constant.MakeFromLiteral(lit.Value, token.INT, 0))
	if !ok || n < 0 {
		return 0, fmt.Errorf("invalid array length %s", lit.Value)
	}
	return n, nil
}
