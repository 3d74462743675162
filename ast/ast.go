// Package ast defines the abstract syntax tree produced by package parser,
// per spec.md §3.2. The tree is a rooted collection of Definition nodes;
// every node carries enough position information to report errors and
// round-trip through JSON (spec.md §6.3, §8).
package ast

import "github.com/go-webidl/webidl/token"

// Node is the common interface implemented by every AST node: definitions,
// types, values, members, arguments, and extended attributes.
type Node interface {
	// Pos returns the position of the token the node starts at.
	Pos() token.Position
}

// Definition is the sum type over top-level WebIDL declarations
// (spec.md §3.2). Implementations: Interface, InterfaceMixin, Dictionary,
// Enum, Typedef, Callback, CallbackInterface, Includes, Namespace.
type Definition interface {
	Node
	definitionNode()
	// Kind returns the tagged-union discriminator used by the JSON
	// representation (spec.md §6.3): "interface", "interface_mixin",
	// "dictionary", "enum", "typedef", "callback", "callback_interface",
	// "includes", "namespace".
	Kind() string
}

// File is the root of the AST: an ordered list of Definitions in source
// order, matching the order a round-trip JSON serialization must preserve
// (spec.md §8 idempotence property).
type File struct {
	Definitions []Definition
}

// Pos returns the position of the first definition, or line 1, column 1
// for an empty file.
func (f *File) Pos() token.Position {
	if len(f.Definitions) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return f.Definitions[0].Pos()
}

// ExtendedAttribute is a bracketed annotation `[Name]`, `[Name=Value]`,
// `[Name=(a, b, c)]`, `[Name(a, b)]`, or `[Name(a, b)=Value]` attached to a
// definition, member, argument, or dictionary member. The parser records
// extended attributes verbatim; it does not interpret them (spec.md §4.2).
type ExtendedAttribute struct {
	Name token.Token

	// Value holds the attribute's value form, or nil for a bare
	// identifier attribute like [Clamp].
	Value ExtendedAttributeValue

	// Arguments holds the parenthesised argument list for the
	// `Name(arg, arg)` / `Name(arg, arg)=Value` forms, or nil.
	Arguments []*Argument

	Position token.Position
}

func (e *ExtendedAttribute) Pos() token.Position { return e.Position }

// ExtendedAttributeValue is the value half of `[Name=Value]`: either a bare
// identifier or a parenthesised identifier list.
type ExtendedAttributeValue struct {
	// Identifier is set for the `=identifier` form.
	Identifier string
	// IdentifierList is set for the `=(ident, ident, ...)` form.
	IdentifierList []string
	// HasValue distinguishes "no value at all" ([Clamp]) from a value
	// that happens to be the empty list, which WebIDL does not produce
	// but which a permissive parser should still represent distinctly.
	HasValue bool
}

// Argument is a single parameter in an operation, constructor, or callback
// signature (spec.md §3.2).
type Argument struct {
	Name               token.Token
	Type               Type
	Optional           bool
	Variadic           bool
	DefaultValue       Value // nil unless Optional
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (a *Argument) Pos() token.Position { return a.Position }
