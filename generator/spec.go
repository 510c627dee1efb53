package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/token"
	"os"

	"github.com/ffigen/go-ffigen/internal/layout"
)

// Declaration kinds accepted in a Spec.
const (
	KindOpaque = "opaque"
	KindStruct = "struct"
	KindFunc   = "func"
	KindConst  = "const"
	KindAlias  = "alias"
)

// Spec describes the foreign declarations to generate bindings for. It is
// produced by whatever front end resolved the foreign headers; layouts are
// taken as given.
type Spec struct {
	Package       string     `json:"package"`
	CTypesPrefix  string     `json:"ctypes_prefix,omitempty"`
	ConvertFloats bool       `json:"convert_floats,omitempty"`
	Attributes    []AttrSpec `json:"attributes,omitempty"`
	Decls         []Decl     `json:"decls"`
}

// Location is where a declaration was found in the foreign sources.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Position converts l for diagnostics. A nil Location is an unknown position.
func (l *Location) Position() token.Position {
	if l == nil {
		return token.Position{}
	}
	return token.Position{
		Filename: l.File,
		Line:     l.Line,
		Column:   l.Column,
	}
}

// Decl is a single foreign declaration. Which fields apply depends on Kind.
type Decl struct {
	Kind       string     `json:"kind"`
	Name       string     `json:"name"`
	Doc        string     `json:"doc,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	Derives    []string   `json:"derives,omitempty"`
	Repr       []string   `json:"repr,omitempty"`
	Attributes []AttrSpec `json:"attributes,omitempty"`

	// opaque
	Layout *layout.Layout `json:"layout,omitempty"`

	// struct
	Fields []FieldSpec `json:"fields,omitempty"`

	// func
	Params   []ParamSpec `json:"params,omitempty"`
	Result   *TypeRef    `json:"result,omitempty"`
	Variadic bool        `json:"variadic,omitempty"`
	LinkName string      `json:"link_name,omitempty"`
	Inline   bool        `json:"inline,omitempty"`

	// const
	Value *ValueSpec `json:"value,omitempty"`

	// const (optional) and alias
	Type *TypeRef `json:"type,omitempty"`
}

// TypeRef names the Go type of a field, parameter, constant or alias target.
// Exactly one of Name, C, Float and Layout is set.
type TypeRef struct {
	// Name is a predeclared Go type or a type declared in the same Spec.
	Name string `json:"name,omitempty"`
	// C is a C type name spelled through the ctypes package.
	C string `json:"c,omitempty"`
	// Float is one of "float", "double", "long double" or "__float128".
	Float string `json:"float,omitempty"`
	// Layout asks for a placeholder blob of the given layout.
	Layout *layout.Layout `json:"layout,omitempty"`

	Pointer int     `json:"pointer,omitempty"`
	Len     *uint64 `json:"len,omitempty"`
}

type FieldSpec struct {
	Name string  `json:"name"`
	Type TypeRef `json:"type"`
	Doc  string  `json:"doc,omitempty"`
}

type ParamSpec struct {
	Name string  `json:"name,omitempty"`
	Type TypeRef `json:"type"`
}

// ValueSpec is a literal value. Exactly one field is set. CString holds a C
// string, which is generated as a NUL terminated byte array.
type ValueSpec struct {
	Str     *string  `json:"str,omitempty"`
	CString *string  `json:"cstring,omitempty"`
	Int     *int64   `json:"int,omitempty"`
	Uint    *uint64  `json:"uint,omitempty"`
	Float   *float64 `json:"float,omitempty"`
	Bool    *bool    `json:"bool,omitempty"`
}

// AttrSpec describes an attribute tree. Exactly one of Word, List, Name and
// Doc is set; Items belong to List and Value to Name.
type AttrSpec struct {
	Word  string     `json:"word,omitempty"`
	List  string     `json:"list,omitempty"`
	Items []AttrSpec `json:"items,omitempty"`
	Name  string     `json:"name,omitempty"`
	Value *ValueSpec `json:"value,omitempty"`
	Doc   string     `json:"doc,omitempty"`
	Inner bool       `json:"inner,omitempty"`
}

// Load reads a Spec from a JSON file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes a Spec from JSON. Unknown fields are rejected so that typos
// in hand written specs are not silently ignored.
func Parse(data []byte) (*Spec, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	spec := &Spec{}
	if err := dec.Decode(spec); err != nil {
		return nil, fmt.Errorf("decoding spec: %w", err)
	}
	return spec, nil
}
