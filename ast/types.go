package ast

import "github.com/go-webidl/webidl/token"

// Type is the sum type over IDL type expressions (spec.md §3.2):
// primitives, a user-defined identifier reference, and the parameterized
// forms sequence<T>, FrozenArray<T>, ObservableArray<T>, record<K,V>,
// Promise<T>, nullable T?, and union (A or B or ...).
type Type interface {
	Node
	typeNode()
	// Kind returns the JSON discriminator. Primitive types serialize as a
	// bare string (spec.md §6.3); Kind still identifies them for internal
	// dispatch.
	Kind() string
}

// PrimitiveKind enumerates the built-in IDL primitive type names.
type PrimitiveKind int

const (
	Any PrimitiveKind = iota
	Undefined
	Boolean
	Byte
	Octet
	Short
	UnsignedShort
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Float
	UnrestrictedFloat
	Double
	UnrestrictedDouble
	BigInt
	DOMString
	ByteString
	USVString
	Object
	Symbol
)

var primitiveNames = map[PrimitiveKind]string{
	Any: "any", Undefined: "undefined", Boolean: "boolean",
	Byte: "byte", Octet: "octet", Short: "short", UnsignedShort: "unsigned short",
	Long: "long", UnsignedLong: "unsigned long", LongLong: "long long",
	UnsignedLongLong: "unsigned long long",
	Float:              "float", UnrestrictedFloat: "unrestricted float",
	Double: "double", UnrestrictedDouble: "unrestricted double",
	BigInt: "bigint", DOMString: "DOMString", ByteString: "ByteString",
	USVString: "USVString", Object: "object", Symbol: "symbol",
}

func (k PrimitiveKind) String() string { return primitiveNames[k] }

// PrimitiveType is one of the built-in IDL scalar types.
type PrimitiveType struct {
	Primitive PrimitiveKind
	Position  token.Position
}

func NewPrimitiveType(kind PrimitiveKind, pos token.Position) *PrimitiveType {
	return &PrimitiveType{Primitive: kind, Position: pos}
}

func (t *PrimitiveType) typeNode()          {}
func (t *PrimitiveType) Pos() token.Position { return t.Position }
func (t *PrimitiveType) Kind() string        { return "primitive" }
func (t *PrimitiveType) String() string      { return t.Primitive.String() }

// TypeReference is a reference to a user-defined type: an interface,
// dictionary, enum, typedef, callback, or callback interface name.
type TypeReference struct {
	Name     string
	Position token.Position
}

func (t *TypeReference) typeNode()          {}
func (t *TypeReference) Pos() token.Position { return t.Position }
func (t *TypeReference) Kind() string        { return "reference" }

// SequenceType is `sequence<T>`.
type SequenceType struct {
	Element  Type
	Position token.Position
}

func (t *SequenceType) typeNode()          {}
func (t *SequenceType) Pos() token.Position { return t.Position }
func (t *SequenceType) Kind() string        { return "sequence" }

// FrozenArrayType is `FrozenArray<T>`.
type FrozenArrayType struct {
	Element  Type
	Position token.Position
}

func (t *FrozenArrayType) typeNode()          {}
func (t *FrozenArrayType) Pos() token.Position { return t.Position }
func (t *FrozenArrayType) Kind() string        { return "frozen_array" }

// ObservableArrayType is `ObservableArray<T>`.
type ObservableArrayType struct {
	Element  Type
	Position token.Position
}

func (t *ObservableArrayType) typeNode()          {}
func (t *ObservableArrayType) Pos() token.Position { return t.Position }
func (t *ObservableArrayType) Kind() string        { return "observable_array" }

// RecordType is `record<K, V>`. Per the WebIDL grammar K is always a
// string type (DOMString, ByteString, or USVString); the parser enforces
// that when it reduces the type, but the AST node itself just holds
// whatever Type was parsed so a malformed-key error can reference it.
type RecordType struct {
	Key      Type
	Value    Type
	Position token.Position
}

func (t *RecordType) typeNode()          {}
func (t *RecordType) Pos() token.Position { return t.Position }
func (t *RecordType) Kind() string        { return "record" }

// PromiseType is `Promise<T>`. Invariant (spec.md §3.2): never wrapped in
// NullableType; the parser rejects `Promise<T>?`.
type PromiseType struct {
	Result   Type
	Position token.Position
}

func (t *PromiseType) typeNode()          {}
func (t *PromiseType) Pos() token.Position { return t.Position }
func (t *PromiseType) Kind() string        { return "promise" }

// NullableType is `T?`. Invariant: Inner is never itself a NullableType
// (the parser flattens/rejects nullable-of-nullable) and never a
// PromiseType.
type NullableType struct {
	Inner    Type
	Position token.Position
}

func (t *NullableType) typeNode()          {}
func (t *NullableType) Pos() token.Position { return t.Position }
func (t *NullableType) Kind() string        { return "nullable" }

// UnionType is `(A or B or ...)`. Invariant: at least two members, no two
// structurally identical modulo nullability, and no direct member is
// itself nullable (a nullable union wraps the whole UnionType instead).
type UnionType struct {
	Members  []Type
	Position token.Position
}

func (t *UnionType) typeNode()          {}
func (t *UnionType) Pos() token.Position { return t.Position }
func (t *UnionType) Kind() string        { return "union" }
