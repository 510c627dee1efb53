package codegen

import "github.com/ffigen/go-ffigen/internal/attr"

// Repr returns a repr(which) attribute.
func Repr(which string) attr.Attribute {
	return attr.New().List("repr").Words(which).Build()
}

// ReprList returns a repr attribute listing every representation in which.
func ReprList(which ...string) attr.Attribute {
	return attr.New().List("repr").Words(which...).Build()
}

// Derives returns a derive attribute listing the given traits.
func Derives(which ...string) attr.Attribute {
	return attr.New().List("derive").Words(which...).Build()
}

// Inline returns an inline attribute.
func Inline() attr.Attribute {
	return attr.New().Inline()
}

// Doc returns a sugared doc attribute holding comment.
func Doc(comment string) attr.Attribute {
	return attr.New().Doc(comment)
}

// LinkName returns a link_name = "name" attribute, naming the symbol a
// declaration binds to.
func LinkName(name string) attr.Attribute {
	return attr.New().NameValue("link_name").Str(name)
}
