package jsvalue

import (
	"math"
	"math/big"
	"testing"
)

type fakeObject struct {
	primitive Value
	err       error
	className string
	shared    bool
	resizable bool
}

func (o *fakeObject) ToPrimitive(hint string) (Value, error) { return o.primitive, o.err }
func (o *fakeObject) ClassName() string                       { return o.className }
func (o *fakeObject) IsShared() bool                          { return o.shared }
func (o *fakeObject) IsResizable() bool                       { return o.resizable }

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindUndefined, "undefined"}, {KindNull, "null"}, {KindBoolean, "boolean"},
		{KindNumber, "number"}, {KindBigInt, "bigint"}, {KindString, "string"}, {KindObject, "object"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestConstructorsAndAccessors(t *testing.T) {
	if !Undefined().IsUndefined() || !Undefined().IsNullOrUndefined() {
		t.Error("Undefined() accessors wrong")
	}
	if !Null().IsNull() || !Null().IsNullOrUndefined() {
		t.Error("Null() accessors wrong")
	}
	if Boolean(true).Bool() != true {
		t.Error("Boolean(true).Bool() = false")
	}
	if Number(3.5).Float64() != 3.5 {
		t.Error("Number(3.5).Float64() != 3.5")
	}
	n := big.NewInt(42)
	if BigInt(n).BigIntValue().Cmp(n) != 0 {
		t.Error("BigInt round trip failed")
	}
	if String("hi").Str() != "hi" {
		t.Error("String(hi).Str() != hi")
	}
	obj := &fakeObject{className: "Uint8Array"}
	if FromObject(obj).ObjectValue() != obj {
		t.Error("FromObject round trip failed")
	}
}

func TestToBoolean(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Undefined(), false},
		{Null(), false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), false},
		{Number(math.NaN()), false},
		{Number(1), true},
		{Number(-1), true},
		{BigInt(big.NewInt(0)), false},
		{BigInt(big.NewInt(5)), true},
		{String(""), false},
		{String("0"), true},
		{FromObject(&fakeObject{}), true},
	}
	for i, tt := range tests {
		if got := tt.v.ToBoolean(); got != tt.want {
			t.Errorf("case %d: ToBoolean() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	if n, err := Undefined().ToNumber(); err != nil || !math.IsNaN(n) {
		t.Errorf("Undefined().ToNumber() = %v, %v, want NaN, nil", n, err)
	}
	if n, err := Null().ToNumber(); err != nil || n != 0 {
		t.Errorf("Null().ToNumber() = %v, %v, want 0, nil", n, err)
	}
	if n, err := Boolean(true).ToNumber(); err != nil || n != 1 {
		t.Errorf("Boolean(true).ToNumber() = %v, %v, want 1, nil", n, err)
	}
	if n, err := Boolean(false).ToNumber(); err != nil || n != 0 {
		t.Errorf("Boolean(false).ToNumber() = %v, %v, want 0, nil", n, err)
	}
	if n, err := Number(2.5).ToNumber(); err != nil || n != 2.5 {
		t.Errorf("Number(2.5).ToNumber() = %v, %v, want 2.5, nil", n, err)
	}
	if _, err := BigInt(big.NewInt(1)).ToNumber(); err == nil {
		t.Error("BigInt.ToNumber() should error")
	}
	if n, err := String("  3.25  ").ToNumber(); err != nil || n != 3.25 {
		t.Errorf("String(\"  3.25  \").ToNumber() = %v, %v, want 3.25, nil", n, err)
	}
	if n, err := String("").ToNumber(); err != nil || n != 0 {
		t.Errorf("String(\"\").ToNumber() = %v, %v, want 0, nil", n, err)
	}
	if n, err := String("Infinity").ToNumber(); err != nil || !math.IsInf(n, 1) {
		t.Errorf("String(Infinity).ToNumber() = %v, %v, want +Inf, nil", n, err)
	}
	if n, err := String("-Infinity").ToNumber(); err != nil || !math.IsInf(n, -1) {
		t.Errorf("String(-Infinity).ToNumber() = %v, %v, want -Inf, nil", n, err)
	}
	if n, err := String("not a number").ToNumber(); err != nil || !math.IsNaN(n) {
		t.Errorf("String(garbage).ToNumber() = %v, %v, want NaN, nil", n, err)
	}
	if n, err := String("0x1p0").ToNumber(); err != nil || !math.IsNaN(n) {
		t.Errorf("String(hex float).ToNumber() = %v, %v, want NaN (rejected), nil", n, err)
	}

	obj := &fakeObject{primitive: Number(7)}
	if n, err := FromObject(obj).ToNumber(); err != nil || n != 7 {
		t.Errorf("FromObject(obj).ToNumber() = %v, %v, want 7, nil", n, err)
	}

	objToObj := &fakeObject{}
	objToObj.primitive = FromObject(objToObj)
	if _, err := FromObject(objToObj).ToNumber(); err == nil {
		t.Error("ToPrimitive returning an object should error")
	}
}

func TestValueStringRendering(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Undefined(), "undefined"},
		{Null(), "null"},
		{Boolean(true), "true"},
		{String("hi"), `"hi"`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := BigInt(big.NewInt(9)).String(); got != "9n" {
		t.Errorf("BigInt(9).String() = %q, want 9n", got)
	}
}
