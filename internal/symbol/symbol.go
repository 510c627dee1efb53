// Package symbol interns the names used in generated declarations so that
// equal names share a single canonical handle.
package symbol

import "unique"

// Symbol is an interned name. The zero Symbol is not valid; use Intern.
type Symbol struct {
	h unique.Handle[string]
}

// Intern returns the canonical Symbol for name. Empty names are interned like
// any other; rejecting them is up to the caller.
func Intern(name string) Symbol {
	return Symbol{h: unique.Make(name)}
}

// InternAll interns every name, preserving order.
func InternAll(names ...string) []Symbol {
	syms := make([]Symbol, len(names))
	for i, name := range names {
		syms[i] = Intern(name)
	}
	return syms
}

// String returns the name the Symbol was interned from.
func (s Symbol) String() string {
	if s == (Symbol{}) {
		return ""
	}
	return s.h.Value()
}

// IsValid reports whether s was produced by Intern.
func (s Symbol) IsValid() bool {
	return s != (Symbol{})
}
