package codegen

import (
	"go/token"
	"strconv"

	"github.com/dave/dst"
	"github.com/ffigen/go-ffigen/internal/layout"
)

// BlobType returns a type with the size and alignment of l, for fields and
// types whose structure is unknown.
//
// The element type is the unsigned integer as wide as the alignment, falling
// back to uint8 for any alignment other than 2, 4 or 8. A single element is
// returned as the bare scalar, anything else as an array.
//
// Layouts that are not Consistent are not rejected: the result is the best
// byte approximation and may not match l.
func BlobType(l layout.Layout) dst.Expr {
	unit := blobUnit(l.Align)

	count := l.Size
	if unit != "uint8" {
		count = l.Size / l.Alignment()
	}

	if count == 1 {
		return dst.NewIdent(unit)
	}
	return &dst.ArrayType{
		Len: &dst.BasicLit{
			Kind:  token.INT,
			Value: strconv.FormatUint(count, 10),
		},
		Elt: dst.NewIdent(unit),
	}
}

func blobUnit(align uint64) string {
	switch align {
	case 8:
		return "uint64"
	case 4:
		return "uint32"
	case 2:
		return "uint16"
	default:
		return "uint8"
	}
}
