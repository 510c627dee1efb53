package generator

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"slices"

	"github.com/dave/dst"
	"github.com/ffigen/go-ffigen/generator/facts"
	"github.com/ffigen/go-ffigen/internal/attr"
	"github.com/ffigen/go-ffigen/internal/codegen"
	"github.com/ffigen/go-ffigen/internal/comment"
	"github.com/ffigen/go-ffigen/internal/layout"
	"github.com/ffigen/go-ffigen/internal/lit"
	"github.com/ffigen/go-ffigen/internal/util"
	"go.uber.org/zap"
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// Code generated by ffigen. DO NOT EDIT."

var floatKinds = map[string]codegen.FloatKind{
	"float":       codegen.Float,
	"double":      codegen.Double,
	"long double": codegen.LongDouble,
	"__float128":  codegen.Float128,
}

// Generator turns a Spec into a Go file.
type Generator struct {
	spec  *Spec
	opts  codegen.TypeOptions
	facts facts.Keeper
}

// generated is a declaration together with what should be attached to it.
type generated struct {
	decl     dst.Decl
	attrs    []attr.Attribute
	warnings []string
	infos    []string
}

func NewGenerator(spec *Spec) *Generator {
	return &Generator{
		spec: spec,
		opts: codegen.TypeOptions{
			CTypesPrefix:  spec.CTypesPrefix,
			ConvertFloats: spec.ConvertFloats,
		},
		facts: facts.NewKeeper(),
	}
}

// Generate builds the file for the spec. Declarations that fail are left out
// of the file and their errors are joined into the returned error; the file
// is still returned so callers can inspect what was generated.
func (g *Generator) Generate() (*dst.File, error) {
	if g.spec.Package == "" {
		return nil, errors.New("package name is required")
	}
	if err := checkName("package", g.spec.Package); err != nil {
		return nil, err
	}

	g.facts = facts.NewKeeper()
	if err := g.collectFacts(); err != nil {
		return nil, err
	}

	file := &dst.File{
		Name: dst.NewIdent(g.spec.Package),
	}
	file.Decs.Start.Append(GeneratedHeader, "\n")

	var errs []error
	fileAttrs := make([]AttrSpec, len(g.spec.Attributes))
	for i, s := range g.spec.Attributes {
		s.Inner = true
		fileAttrs[i] = s
	}
	attrs, err := buildAttrs(fileAttrs)
	if err != nil {
		errs = append(errs, fmt.Errorf("file attributes: %w", err))
	}
	attr.Decorate(file, nil, attrs...)

	for _, d := range g.spec.Decls {
		gen, err := g.generateDecl(d)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", d.Kind, d.Name, err))
			continue
		}

		attr.Decorate(file, gen.decl, gen.attrs...)
		for _, w := range gen.warnings {
			comment.Warn(d.Location.Position(), gen.decl, w)
			Logger().Warn(w, zap.String("decl", d.Name))
		}
		for _, info := range gen.infos {
			comment.Info(d.Location.Position(), gen.decl, info)
		}
		file.Decls = append(file.Decls, gen.decl)
		Logger().Debug("generated declaration",
			zap.String("kind", d.Kind),
			zap.String("name", d.Name),
			zap.Int("attributes", len(gen.attrs)))
	}

	file.Decls = groupConstants(file.Decls)
	codegen.CreateDeclBlock(true, file.Decls...)

	return file, errors.Join(errs...)
}

// collectFacts records every declared name before generation, so that
// declarations may refer to types declared after them.
func (g *Generator) collectFacts() error {
	var errs []error
	for _, d := range g.spec.Decls {
		if err := checkName("declaration", d.Name); err != nil {
			errs = append(errs, err)
			continue
		}
		var fact facts.Fact
		switch d.Kind {
		case KindOpaque:
			fact = facts.OpaqueType
		case KindStruct:
			fact = facts.StructType
		case KindAlias:
			fact = facts.AliasType
		case KindFunc:
			fact = facts.Function
		case KindConst:
			fact = facts.Constant
		default:
			errs = append(errs, fmt.Errorf("%s: unknown declaration kind %q", d.Name, d.Kind))
			continue
		}
		if err := g.facts.AddFact(facts.Entry{Name: d.Name, Fact: fact}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (g *Generator) generateDecl(d Decl) (*generated, error) {
	var (
		gen *generated
		err error
	)
	switch d.Kind {
	case KindOpaque:
		gen, err = g.opaque(d)
	case KindStruct:
		gen, err = g.structure(d)
	case KindFunc:
		gen, err = g.function(d)
	case KindConst:
		gen, err = g.constant(d)
	case KindAlias:
		gen, err = g.alias(d)
	default:
		return nil, fmt.Errorf("unknown declaration kind %q", d.Kind)
	}
	if err != nil {
		return nil, err
	}

	for _, w := range append(slices.Clone(d.Derives), d.Repr...) {
		if err := checkName("attribute item", w); err != nil {
			return nil, err
		}
	}

	extra, err := buildAttrs(d.Attributes)
	if err != nil {
		return nil, err
	}

	attrs := []attr.Attribute{}
	if d.Doc != "" {
		attrs = append(attrs, codegen.Doc(d.Doc))
	}
	attrs = append(attrs, gen.attrs...)
	if len(d.Derives) > 0 {
		attrs = append(attrs, codegen.Derives(d.Derives...))
	}
	gen.attrs = append(attrs, extra...)
	return gen, nil
}

// reprAttr returns the repr attribute of a type declaration, repr(C) unless
// the declaration says otherwise.
func reprAttr(d Decl) attr.Attribute {
	if len(d.Repr) == 0 {
		return codegen.Repr("C")
	}
	return codegen.ReprList(d.Repr...)
}

// placeholderSizes is the target placeholders are checked against.
var placeholderSizes = types.SizesFor("gc", "amd64")

// checkPlaceholder returns a warning when blob, generated for l, does not
// have l's size and alignment.
func checkPlaceholder(what string, l layout.Layout, blob dst.Expr) (string, bool) {
	typ, err := util.TypeOf(blob)
	if err != nil {
		return fmt.Sprintf("%s: placeholder %s cannot be checked: %v", what, util.ExprString(blob), err), true
	}
	got := layout.Of(typ, placeholderSizes)
	if l.Consistent() && got == l {
		return "", false
	}
	return fmt.Sprintf("%s has layout %s, which no placeholder matches exactly; using %s with layout %s",
		what, l, util.ExprString(blob), got), true
}

func (g *Generator) opaque(d Decl) (*generated, error) {
	if d.Layout == nil {
		return nil, errors.New("opaque type requires a layout")
	}

	blob := codegen.BlobType(*d.Layout)
	gen := &generated{
		decl:  codegen.TypeDecl(d.Name, blob),
		attrs: []attr.Attribute{reprAttr(d)},
	}
	if w, ok := checkPlaceholder(d.Name, *d.Layout, blob); ok {
		gen.warnings = append(gen.warnings, w)
	}

	Logger().Debug("opaque placeholder",
		zap.String("name", d.Name),
		zap.Stringer("layout", d.Layout),
		zap.String("type", util.ExprString(blob)))
	return gen, nil
}

func (g *Generator) structure(d Decl) (*generated, error) {
	gen := &generated{
		attrs: []attr.Attribute{reprAttr(d)},
	}

	fields := make([]*dst.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name != "" {
			if err := checkName("field", f.Name); err != nil {
				return nil, err
			}
		}
		typ, err := g.resolveType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		field := codegen.Field(f.Name, typ)
		if f.Doc != "" {
			attr.Decorate(nil, field, codegen.Doc(f.Doc))
		}
		if l := f.Type.Layout; l != nil && f.Type.Pointer == 0 {
			if w, ok := checkPlaceholder("field "+f.Name, *l, codegen.BlobType(*l)); ok {
				gen.warnings = append(gen.warnings, w)
			}
		}
		fields = append(fields, field)
	}

	gen.decl = codegen.StructDecl(d.Name, fields...)
	return gen, nil
}

func (g *Generator) function(d Decl) (*generated, error) {
	params := make([]codegen.Param, 0, len(d.Params))
	for i, p := range d.Params {
		if p.Name != "" {
			if err := checkName("parameter", p.Name); err != nil {
				return nil, err
			}
		}
		typ, err := g.resolveType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		params = append(params, codegen.Param{Name: p.Name, Type: typ})
	}

	var results []codegen.Param
	if d.Result != nil {
		typ, err := g.resolveType(*d.Result)
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}
		results = append(results, codegen.Param{Type: typ})
	}

	gen := &generated{
		decl: codegen.ExternFuncDecl(d.Name, params, results, d.Variadic),
	}
	if d.LinkName != "" {
		gen.attrs = append(gen.attrs, codegen.LinkName(d.LinkName))
	}
	if d.Inline {
		gen.attrs = append(gen.attrs, codegen.Inline())
	}
	return gen, nil
}

func (g *Generator) constant(d Decl) (*generated, error) {
	value, err := applyValue(lit.New(), d.Value)
	if err != nil {
		return nil, err
	}

	var typ dst.Expr
	if d.Type != nil {
		typ, err = g.resolveType(*d.Type)
		if err != nil {
			return nil, fmt.Errorf("type: %w", err)
		}
	}

	switch expr := codegen.LitExpr(value); {
	case value.Kind == lit.ByteStr && isIdent(typ, "string"):
		return &generated{decl: codegen.ConstDecl(d.Name, typ, codegen.CStrExpr(string(value.Bytes)))}, nil
	case value.Kind == lit.ByteStr:
		return &generated{
			decl:  codegen.VarDecl(d.Name, typ, codegen.ByteArrayExpr(value.Bytes)),
			infos: []string{d.Name + " is a C string, declared as a NUL terminated byte array variable"},
		}, nil
	case isCall(expr):
		return &generated{
			decl:  codegen.VarDecl(d.Name, typ, expr),
			infos: []string{fmt.Sprintf("%s = %s has no constant form, declared as a variable", d.Name, value)},
		}, nil
	default:
		return &generated{decl: codegen.ConstDecl(d.Name, typ, expr)}, nil
	}
}

func isIdent(expr dst.Expr, name string) bool {
	id, ok := expr.(*dst.Ident)
	return ok && id.Path == "" && id.Name == name
}

// checkName rejects names that would not print as a single Go identifier.
func checkName(what, name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("invalid %s name %q", what, name)
	}
	return nil
}

func isCall(expr dst.Expr) bool {
	switch v := expr.(type) {
	case *dst.CallExpr:
		return true
	case *dst.UnaryExpr:
		return isCall(v.X)
	default:
		return false
	}
}

func (g *Generator) alias(d Decl) (*generated, error) {
	if d.Type == nil {
		return nil, errors.New("alias requires a target type")
	}
	typ, err := g.resolveType(*d.Type)
	if err != nil {
		return nil, err
	}
	return &generated{decl: codegen.AliasDecl(d.Name, typ)}, nil
}

// resolveType returns the Go type expression for t. Pointers are applied to
// the base type before the array length, so {pointer: 1, len: 4} is [4]*T.
func (g *Generator) resolveType(t TypeRef) (dst.Expr, error) {
	set := 0
	for _, ok := range []bool{t.Name != "", t.C != "", t.Float != "", t.Layout != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("type must set exactly one of name, c, float or layout")
	}

	var typ dst.Expr
	switch {
	case t.Layout != nil:
		typ = codegen.BlobType(*t.Layout)
	case t.C != "":
		if err := checkName("C type", t.C); err != nil {
			return nil, err
		}
		typ = codegen.RawType(g.opts, t.C)
	case t.Float != "":
		fk, ok := floatKinds[t.Float]
		if !ok {
			return nil, fmt.Errorf("unknown float kind %q", t.Float)
		}
		typ = codegen.FloatKindType(g.opts, fk)
	default:
		if !isPredeclaredType(t.Name) && !g.facts.GetFact(t.Name).IsType() {
			return nil, fmt.Errorf("unknown type %s", t.Name)
		}
		typ = dst.NewIdent(t.Name)
	}

	for range t.Pointer {
		typ = &dst.StarExpr{X: typ}
	}
	if t.Len != nil {
		typ = &dst.ArrayType{
			Len: codegen.UintExpr(*t.Len),
			Elt: typ,
		}
	}
	return typ, nil
}

func isPredeclaredType(name string) bool {
	_, ok := types.Universe.Lookup(name).(*types.TypeName)
	return ok
}

// groupConstants merges runs of undecorated constant declarations into
// parenthesized groups.
func groupConstants(decls []dst.Decl) []dst.Decl {
	out := make([]dst.Decl, 0, len(decls))
	var run []*dst.GenDecl

	flush := func() {
		if group, ok := codegen.GroupSpecs(run...); ok {
			out = append(out, group)
		} else {
			for _, d := range run {
				out = append(out, d)
			}
		}
		run = nil
	}

	for _, decl := range decls {
		gd, ok := decl.(*dst.GenDecl)
		if ok && gd.Tok == token.CONST && len(gd.Decs.Start) == 0 {
			run = append(run, gd)
			continue
		}
		flush()
		out = append(out, decl)
	}
	flush()
	return out
}
