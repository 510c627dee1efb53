// Package layout describes the memory footprint of a foreign type.
//
// A Layout is supplied by whatever resolved the foreign type; this package
// never inspects C declarations. Of computes a Layout for a Go type and is
// used to check generated placeholders against the layout they stand in for.
package layout

import (
	"fmt"
	"go/types"
)

// Layout is a size and alignment, both in bytes.
type Layout struct {
	Size  uint64 `json:"size"`
	Align uint64 `json:"align"`
}

func New(size, align uint64) Layout {
	return Layout{Size: size, Align: align}
}

// Alignment returns the alignment, treating 0 as 1.
func (l Layout) Alignment() uint64 {
	return max(l.Align, 1)
}

// Consistent reports whether a placeholder can match l exactly: the
// alignment must be a power of two no wider than 8 and the size a multiple
// of it.
func (l Layout) Consistent() bool {
	switch l.Align {
	case 1, 2, 4, 8:
		return l.Size%l.Align == 0
	default:
		return false
	}
}

func (l Layout) String() string {
	return fmt.Sprintf("{size: %d, align: %d}", l.Size, l.Align)
}

// Of returns the layout of t under sizes.
func Of(t types.Type, sizes types.Sizes) Layout {
	return Layout{
		Size:  uint64(sizes.Sizeof(t)),
		Align: uint64(sizes.Alignof(t)),
	}
}
