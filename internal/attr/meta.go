// Package attr builds the attributes attached to generated declarations.
//
// An attribute wraps a meta item, which is one of three shapes:
//
//	Word       inline
//	List       derive(Clone, Copy)
//	NameValue  link_name = "foo"
//
// Items are assembled with Builder and ListBuilder. Every builder is a value:
// each method returns a new builder and the finishing method hands the built
// item to the builder's continuation (see package invoke), so builders nest by
// using their parent as the continuation.
package attr

import (
	"go/token"
	"strings"

	"github.com/ffigen/go-ffigen/internal/lit"
	"github.com/ffigen/go-ffigen/internal/symbol"
)

// Style says what an attribute is attached to.
type Style uint8

const (
	// Outer attributes decorate the declaration that follows them.
	Outer Style = iota
	// Inner attributes decorate the enclosing scope (the generated file).
	Inner
)

func (s Style) String() string {
	switch s {
	case Outer:
		return "Outer"
	case Inner:
		return "Inner"
	default:
		return "Unknown"
	}
}

// MetaKind is the shape of a MetaItem.
type MetaKind uint8

const (
	Word MetaKind = iota
	List
	NameValue
)

func (k MetaKind) String() string {
	switch k {
	case Word:
		return "Word"
	case List:
		return "List"
	case NameValue:
		return "NameValue"
	default:
		return "Unknown"
	}
}

// MetaItem is a single node of an attribute tree. Items is only set for
// List items and Value only for NameValue items.
type MetaItem struct {
	Kind  MetaKind
	Name  symbol.Symbol
	Items []*MetaItem
	Value *lit.Lit
	Pos   token.Pos
}

// NewWord returns a Word item.
func NewWord(name symbol.Symbol, pos token.Pos) *MetaItem {
	return &MetaItem{Kind: Word, Name: name, Pos: pos}
}

// NewList returns a List item holding items in the given order.
func NewList(name symbol.Symbol, pos token.Pos, items ...*MetaItem) *MetaItem {
	return &MetaItem{Kind: List, Name: name, Items: items, Pos: pos}
}

// NewNameValue returns a NameValue item.
func NewNameValue(name symbol.Symbol, pos token.Pos, value *lit.Lit) *MetaItem {
	return &MetaItem{Kind: NameValue, Name: name, Value: value, Pos: pos}
}

// String renders the item as it appears after the directive prefix.
func (m *MetaItem) String() string {
	if m == nil {
		return ""
	}
	b := strings.Builder{}
	m.write(&b)
	return b.String()
}

func (m *MetaItem) write(b *strings.Builder) {
	b.WriteString(m.Name.String())
	switch m.Kind {
	case List:
		b.WriteByte('(')
		for i, item := range m.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b)
		}
		b.WriteByte(')')
	case NameValue:
		b.WriteString(" = ")
		b.WriteString(m.Value.String())
	}
}

// Attribute is a meta item attached to a declaration or to the file.
type Attribute struct {
	Style        Style
	Value        *MetaItem
	IsSugaredDoc bool
	Pos          token.Pos
}

// Name returns the name of the attribute's top level item.
func (a Attribute) Name() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.Name.String()
}

// DocText returns the text of a sugared doc attribute.
func (a Attribute) DocText() (string, bool) {
	if !a.IsSugaredDoc || a.Value == nil || a.Value.Kind != NameValue || a.Value.Value == nil {
		return "", false
	}
	if a.Value.Value.Kind != lit.Str {
		return "", false
	}
	return a.Value.Value.Str, true
}
