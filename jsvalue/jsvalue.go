// Package jsvalue models the small slice of ECMAScript values the
// conversion algorithms in package convert need to inspect (spec.md §4.3):
// undefined, null, boolean, number, bigint, string, and opaque object
// references. It stands in for the "JS value" input type that a real
// JavaScript engine binding would otherwise supply.
package jsvalue

import (
	"fmt"
	"math/big"
)

// Kind discriminates the Value variants.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindBigInt
	KindString
	KindObject
)

var kindNames = map[Kind]string{
	KindUndefined: "undefined", KindNull: "null", KindBoolean: "boolean",
	KindNumber: "number", KindBigInt: "bigint", KindString: "string", KindObject: "object",
}

func (k Kind) String() string { return kindNames[k] }

// Object is the minimal surface package convert needs from a JS object: a
// way to coerce it toward a primitive the way ECMAScript's ToPrimitive
// abstract operation would, and a membership test for the few algorithms
// that need to tell a plain object from an exotic one (buffer sources).
type Object interface {
	// ToPrimitive returns the object's default primitive conversion. hint
	// is "number", "string", or "default", mirroring ECMA-262 OrdinaryToPrimitive.
	ToPrimitive(hint string) (Value, error)
	// ClassName reports an implementation-defined label ("ArrayBuffer",
	// "Uint8Array", ...) used by [AllowShared]/[AllowResizable] checks; the
	// empty string means "plain object".
	ClassName() string
	// IsShared and IsResizable describe the buffer-specific flags that
	// [AllowShared] and [AllowResizable] gate on (spec.md §4.4). Non-buffer
	// objects return false for both.
	IsShared() bool
	IsResizable() bool
}

// Value is a tagged ECMAScript value.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	bigint  *big.Int
	str     string
	object  Object
}

func Undefined() Value { return Value{kind: KindUndefined} }
func Null() Value      { return Value{kind: KindNull} }

func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }
func Number(n float64) Value { return Value{kind: KindNumber, number: n} }
func BigInt(b *big.Int) Value { return Value{kind: KindBigInt, bigint: b} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func FromObject(o Object) Value { return Value{kind: KindObject, object: o} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) IsNullOrUndefined() bool { return v.kind == KindNull || v.kind == KindUndefined }

// Bool returns the boolean payload. Only meaningful when Kind() == KindBoolean.
func (v Value) Bool() bool { return v.boolean }

// Float64 returns the number payload. Only meaningful when Kind() == KindNumber.
func (v Value) Float64() float64 { return v.number }

// BigIntValue returns the bigint payload. Only meaningful when Kind() == KindBigInt.
func (v Value) BigIntValue() *big.Int { return v.bigint }

// Str returns the string payload. Only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.str }

// ObjectValue returns the object payload. Only meaningful when Kind() == KindObject.
func (v Value) ObjectValue() Object { return v.object }

func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return fmt.Sprintf("%t", v.boolean)
	case KindNumber:
		return fmt.Sprintf("%v", v.number)
	case KindBigInt:
		if v.bigint == nil {
			return "0n"
		}
		return v.bigint.String() + "n"
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindObject:
		if v.object != nil {
			return fmt.Sprintf("[object %s]", v.object.ClassName())
		}
		return "[object Object]"
	default:
		return "<invalid>"
	}
}

// ToBoolean implements ECMA-262 ToBoolean, the first step of every IDL
// boolean conversion (spec.md §4.3).
func (v Value) ToBoolean() bool {
	switch v.kind {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.boolean
	case KindNumber:
		return v.number != 0 && !isNaN(v.number)
	case KindBigInt:
		return v.bigint != nil && v.bigint.Sign() != 0
	case KindString:
		return v.str != ""
	case KindObject:
		return true
	default:
		return false
	}
}

func isNaN(f float64) bool { return f != f }

// ToNumber implements a pared-down ECMA-262 ToNumber: strings are parsed
// with the StringToNumber grammar (spec.md §4.3 ToByte et al. step 1),
// objects go through ToPrimitive with hint "number", bigint throws per the
// spec (represented here as an error since this package has no TypeError
// type of its own; callers translate it to domexception.SimpleException).
func (v Value) ToNumber() (float64, error) {
	switch v.kind {
	case KindUndefined:
		return nan(), nil
	case KindNull:
		return 0, nil
	case KindBoolean:
		if v.boolean {
			return 1, nil
		}
		return 0, nil
	case KindNumber:
		return v.number, nil
	case KindBigInt:
		return 0, fmt.Errorf("jsvalue: cannot convert a BigInt to a number")
	case KindString:
		return stringToNumber(v.str), nil
	case KindObject:
		prim, err := v.object.ToPrimitive("number")
		if err != nil {
			return 0, err
		}
		if prim.kind == KindObject {
			return 0, fmt.Errorf("jsvalue: ToPrimitive returned an object")
		}
		return prim.ToNumber()
	default:
		return nan(), nil
	}
}

func nan() float64 { var z float64; return z / z }
