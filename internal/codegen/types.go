package codegen

import (
	"github.com/dave/dst"
	"github.com/ffigen/go-ffigen/internal/layout"
)

const (
	// CgoImportPath is the pseudo package cgo exposes C types through.
	CgoImportPath = "C"
)

// FloatKind is the kind of a foreign floating point type.
type FloatKind uint8

const (
	Float FloatKind = iota
	Double
	LongDouble
	Float128
)

func (fk FloatKind) String() string {
	switch fk {
	case Float:
		return "float"
	case Double:
		return "double"
	case LongDouble:
		return "long double"
	case Float128:
		return "__float128"
	default:
		return "unknown"
	}
}

// TypeOptions controls how foreign primitive types are spelled.
type TypeOptions struct {
	// CTypesPrefix is the import path of the package providing C type
	// names. Empty means the cgo pseudo package "C".
	CTypesPrefix string
	// ConvertFloats spells float types as Go's float32 and float64 instead
	// of their C names.
	ConvertFloats bool
}

// RawType returns a reference to the C type name, qualified by the configured
// ctypes package.
func RawType(opts TypeOptions, name string) *dst.Ident {
	path := opts.CTypesPrefix
	if path == "" {
		path = CgoImportPath
	}
	return &dst.Ident{
		Name: name,
		Path: path,
	}
}

// FloatKindType returns the Go type for a foreign float kind. long double is
// mapped to double, and __float128 has no Go equivalent so it becomes a
// sixteen byte blob.
func FloatKindType(opts TypeOptions, fk FloatKind) dst.Expr {
	switch fk {
	case Float128:
		return BlobType(layout.New(16, 1))
	case Float:
		if opts.ConvertFloats {
			return dst.NewIdent("float32")
		}
		return RawType(opts, "float")
	default:
		if opts.ConvertFloats {
			return dst.NewIdent("float64")
		}
		return RawType(opts, "double")
	}
}
