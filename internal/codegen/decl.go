package codegen

import (
	"go/token"

	"github.com/dave/dst"
)

// TypeDecl returns a `type name typ` declaration.
func TypeDecl(name string, typ dst.Expr) *dst.GenDecl {
	return &dst.GenDecl{
		Tok: token.TYPE,
		Specs: []dst.Spec{
			&dst.TypeSpec{
				Name: dst.NewIdent(name),
				Type: dst.Clone(typ).(dst.Expr),
			},
		},
	}
}

// AliasDecl returns a `type name = typ` declaration.
func AliasDecl(name string, typ dst.Expr) *dst.GenDecl {
	decl := TypeDecl(name, typ)
	decl.Specs[0].(*dst.TypeSpec).Assign = true
	return decl
}

// Field returns a struct field. An empty name makes an embedded field.
func Field(name string, typ dst.Expr) *dst.Field {
	field := &dst.Field{
		Type: dst.Clone(typ).(dst.Expr),
		Decs: dst.FieldDecorations{
			NodeDecs: dst.NodeDecs{
				Before: dst.NewLine,
				After:  dst.NewLine,
			},
		},
	}
	if name != "" {
		field.Names = []*dst.Ident{dst.NewIdent(name)}
	}
	return field
}

// StructDecl returns a `type name struct { ... }` declaration holding fields.
func StructDecl(name string, fields ...*dst.Field) *dst.GenDecl {
	return TypeDecl(name, &dst.StructType{
		Fields: &dst.FieldList{
			List:    fields,
			Opening: true,
			Closing: true,
		},
	})
}

// ConstDecl returns a `const name = value` declaration. A nil typ leaves the
// constant untyped.
func ConstDecl(name string, typ, value dst.Expr) *dst.GenDecl {
	return valueDecl(token.CONST, name, typ, value)
}

// VarDecl returns a `var name = value` declaration, for values that cannot be
// constants such as arrays.
func VarDecl(name string, typ, value dst.Expr) *dst.GenDecl {
	return valueDecl(token.VAR, name, typ, value)
}

func valueDecl(tok token.Token, name string, typ, value dst.Expr) *dst.GenDecl {
	spec := &dst.ValueSpec{
		Names:  []*dst.Ident{dst.NewIdent(name)},
		Values: []dst.Expr{dst.Clone(value).(dst.Expr)},
	}
	if typ != nil {
		spec.Type = dst.Clone(typ).(dst.Expr)
	}
	return &dst.GenDecl{
		Tok:   tok,
		Specs: []dst.Spec{spec},
	}
}

// Param is a named function parameter or result.
type Param struct {
	Name string
	Type dst.Expr
}

// ExternFuncDecl returns a body-less function declaration for a foreign
// function. The implementation is supplied at link time.
func ExternFuncDecl(name string, params []Param, results []Param, variadic bool) *dst.FuncDecl {
	fn := &dst.FuncDecl{
		Name: dst.NewIdent(name),
		Type: &dst.FuncType{
			Func:   true,
			Params: fieldList(params),
		},
	}
	if variadic {
		var names []*dst.Ident
		if len(params) == 0 || params[0].Name != "" {
			names = []*dst.Ident{dst.NewIdent("args")}
		}
		fn.Type.Params.List = append(fn.Type.Params.List, &dst.Field{
			Names: names,
			Type: &dst.Ellipsis{
				Elt: dst.NewIdent("any"),
			},
		})
	}
	if len(results) > 0 {
		fn.Type.Results = fieldList(results)
	}
	return fn
}

func fieldList(params []Param) *dst.FieldList {
	list := &dst.FieldList{
		List: make([]*dst.Field, 0, len(params)),
	}
	for _, p := range params {
		field := &dst.Field{
			Type: dst.Clone(p.Type).(dst.Expr),
		}
		if p.Name != "" {
			field.Names = []*dst.Ident{dst.NewIdent(p.Name)}
		}
		list.List = append(list.List, field)
	}
	return list
}
