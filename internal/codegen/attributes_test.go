package codegen

import (
	"testing"

	"github.com/ffigen/go-ffigen/internal/attr"
	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		attr attr.Attribute
		want []string
	}{
		{"repr", Repr("C"), []string{"//ffigen:repr(C)"}},
		{"repr list", ReprList("C", "packed"), []string{"//ffigen:repr(C, packed)"}},
		{"derives", Derives("Clone", "Copy", "Debug"), []string{"//ffigen:derive(Clone, Copy, Debug)"}},
		{"inline", Inline(), []string{"//ffigen:inline"}},
		{"doc", Doc("Frobnicates."), []string{"// Frobnicates."}},
		{"link name", LinkName("frob_v2"), []string{`//ffigen:link_name = "frob_v2"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, attr.Outer, tt.attr.Style)
			assert.Equal(t, tt.want, attr.Lines(tt.attr))
		})
	}
}

func TestDocIsSugared(t *testing.T) {
	assert.True(t, Doc("x").IsSugaredDoc)
	assert.False(t, LinkName("x").IsSugaredDoc)
}
