package attr

import (
	"go/token"
	"slices"

	"github.com/ffigen/go-ffigen/internal/invoke"
	"github.com/ffigen/go-ffigen/internal/lit"
	"github.com/ffigen/go-ffigen/internal/symbol"
)

// Builder builds a single Attribute and passes it to its callback.
type Builder[R any] struct {
	callback     invoke.Invoker[Attribute, R]
	pos          token.Pos
	style        Style
	isSugaredDoc bool
}

// New returns a Builder whose finishing methods return the Attribute.
func New() Builder[Attribute] {
	return WithCallback[Attribute](invoke.Identity[Attribute]{})
}

// WithCallback returns a Builder that hands the Attribute to callback.
func WithCallback[R any](callback invoke.Invoker[Attribute, R]) Builder[R] {
	return Builder[R]{
		callback: callback,
		pos:      token.NoPos,
		style:    Outer,
	}
}

func (b Builder[R]) Span(pos token.Pos) Builder[R] {
	b.pos = pos
	return b
}

// Inner attaches the attribute to the enclosing scope instead of the
// following declaration.
func (b Builder[R]) Inner() Builder[R] {
	b.style = Inner
	return b
}

// BuildMetaItem finishes the attribute around an already built item.
func (b Builder[R]) BuildMetaItem(item *MetaItem) R {
	return b.callback.Invoke(Attribute{
		Style:        b.style,
		Value:        item,
		IsSugaredDoc: b.isSugaredDoc,
		Pos:          b.pos,
	})
}

// Invoke lets a Builder act as the continuation of a ListBuilder.
func (b Builder[R]) Invoke(item *MetaItem) R {
	return b.BuildMetaItem(item)
}

func (b Builder[R]) Word(name string) R {
	return b.BuildMetaItem(NewWord(symbol.Intern(name), b.pos))
}

// List starts a list item; its Build finishes this attribute.
func (b Builder[R]) List(name string) ListBuilder[R] {
	return ListWithCallback[R](name, b).Span(b.pos)
}

// NameValue starts a name/value item; supplying the literal finishes this
// attribute.
func (b Builder[R]) NameValue(name string) lit.Builder[R] {
	return lit.WithCallback[R](nameValue[R]{
		callback: b,
		name:     symbol.Intern(name),
		pos:      b.pos,
	}).Span(b.pos)
}

// Doc builds a sugared doc attribute. The text is emitted as written, one
// comment line per line of text.
func (b Builder[R]) Doc(text string) R {
	b.isSugaredDoc = true
	return b.NameValue("doc").Str(text)
}

func (b Builder[R]) AutomaticallyDerived() R {
	return b.Word("automatically_derived")
}

func (b Builder[R]) Inline() R {
	return b.Word("inline")
}

func (b Builder[R]) Test() R {
	return b.Word("test")
}

func (b Builder[R]) Allow(names ...string) R {
	return b.List("allow").Words(names...).Build()
}

func (b Builder[R]) Warn(names ...string) R {
	return b.List("warn").Words(names...).Build()
}

func (b Builder[R]) Deny(names ...string) R {
	return b.List("deny").Words(names...).Build()
}

func (b Builder[R]) Features(names ...string) R {
	return b.List("feature").Words(names...).Build()
}

func (b Builder[R]) Plugins(names ...string) R {
	return b.List("plugin").Words(names...).Build()
}

// ListBuilder accumulates the children of a List item. Children are only ever
// appended, in call order.
type ListBuilder[R any] struct {
	callback invoke.Invoker[*MetaItem, R]
	pos      token.Pos
	name     symbol.Symbol
	items    []*MetaItem
}

// NewListBuilder returns a ListBuilder whose Build returns the List item.
func NewListBuilder(name string) ListBuilder[*MetaItem] {
	return ListWithCallback[*MetaItem](name, invoke.Identity[*MetaItem]{})
}

// ListWithCallback returns a ListBuilder that hands the List item to callback.
func ListWithCallback[R any](name string, callback invoke.Invoker[*MetaItem, R]) ListBuilder[R] {
	return ListBuilder[R]{
		callback: callback,
		pos:      token.NoPos,
		name:     symbol.Intern(name),
	}
}

func (b ListBuilder[R]) Span(pos token.Pos) ListBuilder[R] {
	b.pos = pos
	return b
}

// WithMetaItem appends item. The returned builder never shares its backing
// array with b, so earlier builder values keep their children.
func (b ListBuilder[R]) WithMetaItem(item *MetaItem) ListBuilder[R] {
	b.items = append(slices.Clip(b.items), item)
	return b
}

func (b ListBuilder[R]) WithMetaItems(items ...*MetaItem) ListBuilder[R] {
	b.items = append(slices.Clip(b.items), items...)
	return b
}

func (b ListBuilder[R]) Word(name string) ListBuilder[R] {
	return b.WithMetaItem(NewWord(symbol.Intern(name), b.pos))
}

func (b ListBuilder[R]) Words(names ...string) ListBuilder[R] {
	items := make([]*MetaItem, len(names))
	for i, name := range symbol.InternAll(names...) {
		items[i] = NewWord(name, b.pos)
	}
	return b.WithMetaItems(items...)
}

// List appends a nested list. fill receives a fresh builder for the nested
// list and returns its built item, which is appended to b.
func (b ListBuilder[R]) List(name string, fill func(ListBuilder[*MetaItem]) *MetaItem) ListBuilder[R] {
	nested := NewListBuilder(name).Span(b.pos)
	return b.WithMetaItem(fill(nested))
}

// NameValue starts a nested name/value item; supplying the literal appends it
// to b and returns the updated builder.
func (b ListBuilder[R]) NameValue(name string) lit.Builder[ListBuilder[R]] {
	return lit.WithCallback[ListBuilder[R]](nameValue[ListBuilder[R]]{
		callback: b,
		name:     symbol.Intern(name),
		pos:      b.pos,
	}).Span(b.pos)
}

// Invoke lets a ListBuilder act as the continuation of a nested builder.
func (b ListBuilder[R]) Invoke(item *MetaItem) ListBuilder[R] {
	return b.WithMetaItem(item)
}

// Build wraps the children into a List item and passes it on.
func (b ListBuilder[R]) Build() R {
	return b.callback.Invoke(NewList(b.name, b.pos, slices.Clone(b.items)...))
}

// nameValue pairs a name with the literal it receives.
type nameValue[R any] struct {
	callback invoke.Invoker[*MetaItem, R]
	name     symbol.Symbol
	pos      token.Pos
}

func (nv nameValue[R]) Invoke(value *lit.Lit) R {
	return nv.callback.Invoke(NewNameValue(nv.name, nv.pos, value))
}
