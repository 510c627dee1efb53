// Package codegen creates the dst nodes of generated bindings: attribute
// shorthands, placeholder types for opaque layouts, literal expressions and
// the declarations that hold them. Anything that builds a node for the
// generated file belongs here.
//
// Rules for functions in this package:
//
//  1. Nodes taken as inputs are cloned before they become part of an output.
//     A node that appears twice in a tree makes the printer panic.
//  2. Every exported function is documented with what it returns.
//  3. Every returned node must print. Add a test that renders it.
package codegen
