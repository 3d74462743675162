package ast

import "github.com/go-webidl/webidl/token"

// InterfaceMember is the sum type over members that may appear inside an
// interface, interface mixin, or callback interface body (spec.md §3.2).
type InterfaceMember interface {
	Node
	interfaceMemberNode()
	Kind() string
}

// Special identifies which special operation form an Operation represents,
// if any (spec.md §3.2).
type Special int

const (
	NoSpecial Special = iota
	SpecialGetter
	SpecialSetter
	SpecialDeleter
	SpecialStringifier
)

// Attribute is `[readonly] [static] [inherit] [stringifier] attribute T name;`.
type Attribute struct {
	Name               token.Token
	Type               Type
	Readonly           bool
	Static             bool
	Stringifier        bool
	Inherit            bool
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (m *Attribute) interfaceMemberNode()  {}
func (m *Attribute) Pos() token.Position   { return m.Position }
func (m *Attribute) Kind() string          { return "attribute" }

// Operation is a regular or special (getter/setter/deleter/stringifier)
// operation. Name is empty for an anonymous special operation
// (`getter DOMString (unsigned long index);`).
type Operation struct {
	Name               string
	ReturnType         Type
	Arguments          []*Argument
	Static             bool
	SpecialForm        Special
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (m *Operation) interfaceMemberNode() {}
func (m *Operation) Pos() token.Position  { return m.Position }
func (m *Operation) Kind() string         { return "operation" }

// Const is `const T name = value;`.
type Const struct {
	Name               token.Token
	Type               Type
	Value              Value
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (m *Const) interfaceMemberNode() {}
func (m *Const) Pos() token.Position  { return m.Position }
func (m *Const) Kind() string         { return "const" }

// Constructor is `constructor(args);`.
type Constructor struct {
	Arguments          []*Argument
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (m *Constructor) interfaceMemberNode() {}
func (m *Constructor) Pos() token.Position  { return m.Position }
func (m *Constructor) Kind() string         { return "constructor" }

// StringifierForm distinguishes the three surface forms a stringifier
// declaration may take (spec.md §3.2).
type StringifierForm int

const (
	StringifierBare StringifierForm = iota
	StringifierAttributeForm
	StringifierOperationForm
)

// Stringifier is `stringifier;` (bare), an attribute marked `stringifier`,
// or an operation marked `stringifier`. The bare form is represented
// directly by this node; the other two forms are represented as an
// Attribute/Operation with Stringifier/SpecialForm set, and this node type
// is used only for the bare keyword-only production.
type Stringifier struct {
	Form     StringifierForm
	Position token.Position
}

func (m *Stringifier) interfaceMemberNode() {}
func (m *Stringifier) Pos() token.Position  { return m.Position }
func (m *Stringifier) Kind() string         { return "stringifier" }

// Iterable is `iterable<V>;` (value-only) or `iterable<K, V>;` (pair
// iterable). KeyType is nil for the value-only form.
type Iterable struct {
	KeyType   Type
	ValueType Type

	Position token.Position
}

func (m *Iterable) interfaceMemberNode() {}
func (m *Iterable) Pos() token.Position  { return m.Position }
func (m *Iterable) Kind() string         { return "iterable" }

// AsyncIterable is `async iterable<V>;`, `async iterable<K, V>;`, or either
// form with a trailing argument list (`async iterable<V>(args);`).
type AsyncIterable struct {
	KeyType   Type
	ValueType Type
	Arguments []*Argument

	Position token.Position
}

func (m *AsyncIterable) interfaceMemberNode() {}
func (m *AsyncIterable) Pos() token.Position  { return m.Position }
func (m *AsyncIterable) Kind() string         { return "async_iterable" }

// Maplike is `[readonly] maplike<K, V>;`.
type Maplike struct {
	KeyType   Type
	ValueType Type
	Readonly  bool

	Position token.Position
}

func (m *Maplike) interfaceMemberNode() {}
func (m *Maplike) Pos() token.Position  { return m.Position }
func (m *Maplike) Kind() string         { return "maplike" }

// Setlike is `[readonly] setlike<V>;`.
type Setlike struct {
	ValueType Type
	Readonly  bool

	Position token.Position
}

func (m *Setlike) interfaceMemberNode() {}
func (m *Setlike) Pos() token.Position  { return m.Position }
func (m *Setlike) Kind() string         { return "setlike" }

// DictionaryMember is one field of a Dictionary: name, type, required
// flag, optional default value, and its own extended attributes. Invariant
// (spec.md §3.2): DefaultValue is non-nil only when Required is false.
type DictionaryMember struct {
	Name               token.Token
	Type               Type
	Required           bool
	DefaultValue       Value
	ExtendedAttributes []*ExtendedAttribute

	Position token.Position
}

func (m *DictionaryMember) Pos() token.Position { return m.Position }
