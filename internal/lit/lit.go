// Package lit builds the literal values carried by name/value attributes and
// constant declarations.
package lit

import (
	"go/token"
	"math"
	"strconv"
	"strings"

	"github.com/dave/dst"
)

// Kind identifies which field of a Lit holds its value.
type Kind uint8

const (
	Str Kind = iota
	ByteStr
	Int
	Uint
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case Str:
		return "Str"
	case ByteStr:
		return "ByteStr"
	case Int:
		return "Int"
	case Uint:
		return "Uint"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Lit is an immutable literal value.
type Lit struct {
	Kind  Kind
	Str   string
	Bytes []byte
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Pos   token.Pos
}

// String renders the literal in Go syntax. Floats always carry a decimal
// point so they are never read back as integers.
func (l *Lit) String() string {
	if l == nil {
		return ""
	}
	switch l.Kind {
	case Str:
		return strconv.Quote(l.Str)
	case ByteStr:
		return strconv.Quote(string(l.Bytes))
	case Int:
		return strconv.FormatInt(l.Int, 10)
	case Uint:
		return strconv.FormatUint(l.Uint, 10)
	case Float:
		return formatFloat(l.Float)
	case Bool:
		return strconv.FormatBool(l.Bool)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

// Token returns the go/token kind a BasicLit for this literal would use, and
// false for literals that have no BasicLit form.
func (l *Lit) Token() (token.Token, bool) {
	switch l.Kind {
	case Str, ByteStr:
		return token.STRING, true
	case Int, Uint:
		return token.INT, true
	case Float:
		if math.IsNaN(l.Float) || math.IsInf(l.Float, 0) {
			return token.ILLEGAL, false
		}
		return token.FLOAT, true
	default:
		return token.ILLEGAL, false
	}
}

// BasicLit returns the literal as a dst.BasicLit, or nil for kinds without a
// BasicLit form (bools, non-finite floats).
func (l *Lit) BasicLit() *dst.BasicLit {
	tok, ok := l.Token()
	if !ok {
		return nil
	}
	return &dst.BasicLit{
		Kind:  tok,
		Value: l.String(),
	}
}
