package codegen

import (
	"github.com/dave/dst"
)

// CreateDeclBlock modifies the formatting of a set of declarations so that
// each one starts on its own line, separated from the previous one by an
// empty line.
//
// If spacingBefore == false, the first declaration is only placed on a new
// line, with no empty line before it.
func CreateDeclBlock(spacingBefore bool, decls ...dst.Decl) {
	for i, decl := range decls {
		decs := decl.Decorations()
		decs.Before = dst.EmptyLine
		decs.After = dst.None

		if i == 0 && !spacingBefore {
			decs.Before = dst.NewLine
		}
		if i == len(decls)-1 {
			decs.After = dst.NewLine
		}
	}
}

// GroupSpecs merges declarations of the same token into a single
// parenthesized declaration, keeping their order. Declarations carrying
// comments cannot be grouped since a group would detach their comments.
// It reports false if fewer than two declarations are passed, or if the
// declarations cannot be grouped.
func GroupSpecs(decls ...*dst.GenDecl) (*dst.GenDecl, bool) {
	if len(decls) < 2 {
		return nil, false
	}

	tok := decls[0].Tok
	group := &dst.GenDecl{
		Tok:    tok,
		Lparen: true,
		Rparen: true,
	}
	for _, decl := range decls {
		if decl.Tok != tok || len(decl.Decs.Start) > 0 {
			return nil, false
		}
		for _, spec := range decl.Specs {
			spec = dst.Clone(spec).(dst.Spec)
			decs := spec.Decorations()
			decs.Before = dst.NewLine
			decs.After = dst.NewLine
			group.Specs = append(group.Specs, spec)
		}
	}
	return group, true
}
