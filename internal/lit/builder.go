package lit

import (
	"go/token"

	"github.com/ffigen/go-ffigen/internal/invoke"
)

// Builder is a one-shot literal builder: each of its finishing methods
// creates a Lit and hands it to the callback.
type Builder[R any] struct {
	callback invoke.Invoker[*Lit, R]
	pos      token.Pos
}

// New returns a Builder that yields the literal itself.
func New() Builder[*Lit] {
	return WithCallback[*Lit](invoke.Identity[*Lit]{})
}

// WithCallback returns a Builder that forwards the literal to callback.
func WithCallback[R any](callback invoke.Invoker[*Lit, R]) Builder[R] {
	return Builder[R]{
		callback: callback,
		pos:      token.NoPos,
	}
}

// Span sets the position recorded on the literal.
func (b Builder[R]) Span(pos token.Pos) Builder[R] {
	b.pos = pos
	return b
}

// Build forwards a fully formed literal, overriding its position with the
// builder's when one was set.
func (b Builder[R]) Build(l *Lit) R {
	if b.pos.IsValid() {
		cp := *l
		cp.Pos = b.pos
		l = &cp
	}
	return b.callback.Invoke(l)
}

func (b Builder[R]) Str(s string) R {
	return b.callback.Invoke(&Lit{Kind: Str, Str: s, Pos: b.pos})
}

// ByteStr copies v, so later changes to v do not leak into the literal.
func (b Builder[R]) ByteStr(v []byte) R {
	bytes := make([]byte, len(v))
	copy(bytes, v)
	return b.callback.Invoke(&Lit{Kind: ByteStr, Bytes: bytes, Pos: b.pos})
}

func (b Builder[R]) Int(v int64) R {
	return b.callback.Invoke(&Lit{Kind: Int, Int: v, Pos: b.pos})
}

func (b Builder[R]) Uint(v uint64) R {
	return b.callback.Invoke(&Lit{Kind: Uint, Uint: v, Pos: b.pos})
}

func (b Builder[R]) Float(v float64) R {
	return b.callback.Invoke(&Lit{Kind: Float, Float: v, Pos: b.pos})
}

func (b Builder[R]) Bool(v bool) R {
	return b.callback.Invoke(&Lit{Kind: Bool, Bool: v, Pos: b.pos})
}
