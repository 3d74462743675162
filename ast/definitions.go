package ast

import "github.com/go-webidl/webidl/token"

// Interface is `[partial] interface Name [: Parent] { members };`.
type Interface struct {
	Name               token.Token
	Parent             string // empty if no inheritance
	Members            []InterfaceMember
	ExtendedAttributes []*ExtendedAttribute
	Partial            bool

	Position token.Position
}

func (d *Interface) definitionNode()       {}
func (d *Interface) Pos() token.Position   { return d.Position }
func (d *Interface) Kind() string          { return "interface" }

// InterfaceMixin is `[partial] interface mixin Name { members };`.
type InterfaceMixin struct {
	Name               token.Token
	Members            []InterfaceMember
	ExtendedAttributes []*ExtendedAttribute
	Partial            bool

	Position token.Position
}

func (d *InterfaceMixin) definitionNode()       {}
func (d *InterfaceMixin) Pos() token.Position   { return d.Position }
func (d *InterfaceMixin) Kind() string          { return "interface_mixin" }

// Dictionary is `[partial] dictionary Name [: Parent] { members };`.
type Dictionary struct {
	Name               token.Token
	Parent             string
	Members            []*DictionaryMember
	ExtendedAttributes []*ExtendedAttribute
	Partial            bool

	Position token.Position
}

func (d *Dictionary) definitionNode()       {}
func (d *Dictionary) Pos() token.Position   { return d.Position }
func (d *Dictionary) Kind() string          { return "dictionary" }

// Enum is `enum Name { "a", "b", ... };`. Invariant (spec.md §3.2): at
// least one value, no duplicates — enforced by the parser at construction
// time, not by this type.
type Enum struct {
	Name               token.Token
	Values             []string
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (d *Enum) definitionNode()       {}
func (d *Enum) Pos() token.Position   { return d.Position }
func (d *Enum) Kind() string          { return "enum" }

// Typedef is `typedef T Name;`.
type Typedef struct {
	Name               token.Token
	Type               Type
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (d *Typedef) definitionNode()       {}
func (d *Typedef) Pos() token.Position   { return d.Position }
func (d *Typedef) Kind() string          { return "typedef" }

// Callback is `callback Name = ReturnType (args);`.
type Callback struct {
	Name               token.Token
	ReturnType         Type
	Arguments          []*Argument
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (d *Callback) definitionNode()       {}
func (d *Callback) Pos() token.Position   { return d.Position }
func (d *Callback) Kind() string          { return "callback" }

// CallbackInterface is `callback interface Name { members };`.
type CallbackInterface struct {
	Name               token.Token
	Members            []InterfaceMember
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (d *CallbackInterface) definitionNode()       {}
func (d *CallbackInterface) Pos() token.Position   { return d.Position }
func (d *CallbackInterface) Kind() string          { return "callback_interface" }

// Includes is `Interface includes Mixin;`.
type Includes struct {
	Interface string
	Mixin     string

	Position token.Position
}

func (d *Includes) definitionNode()       {}
func (d *Includes) Pos() token.Position   { return d.Position }
func (d *Includes) Kind() string          { return "includes" }

// Namespace is `[partial] namespace Name { members };`. Namespace members
// reuse InterfaceMember (only Attribute and Operation are valid inside one;
// the parser rejects constructors, consts, maplike/setlike, and
// iterables there).
type Namespace struct {
	Name               token.Token
	Members            []InterfaceMember
	ExtendedAttributes []*ExtendedAttribute
	Partial            bool

	Position token.Position
}

func (d *Namespace) definitionNode()       {}
func (d *Namespace) Pos() token.Position   { return d.Position }
func (d *Namespace) Kind() string          { return "namespace" }
