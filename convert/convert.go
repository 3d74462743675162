// Package convert implements the WebIDL JS-value-to-IDL-value conversion
// algorithms (spec.md §4.3): one function per primitive IDL type, each
// taking a jsvalue.Value and a set of Options derived from the extended
// attributes ([Clamp], [EnforceRange], [LegacyNullToEmptyString],
// [AllowShared], [AllowResizable]) that modify it.
//
// Integer conversions follow ECMA-262's generic algorithm parameterised by
// bit width and signedness (ToInt8/ToUint8/... in spirit); this package
// exposes one named function per IDL integer type, and every one of them
// delegates to the shared toInteger engine with its own width and
// signedness.
package convert

import (
	"fmt"
	"math"

	"github.com/go-webidl/webidl/domexception"
	"github.com/go-webidl/webidl/jsvalue"
)

// Options carries the extended-attribute modifiers that change how a
// conversion behaves. The zero value is every modifier off.
type Options struct {
	Clamp                   bool
	EnforceRange            bool
	LegacyNullToEmptyString bool
	AllowShared             bool
	AllowResizable          bool
}

// Option mutates an Options value; the functional-options idiom keeps call
// sites like ToLong(v, convert.Clamp()) readable without a positional bool.
type Option func(*Options)

func Clamp() Option                   { return func(o *Options) { o.Clamp = true } }
func EnforceRange() Option            { return func(o *Options) { o.EnforceRange = true } }
func LegacyNullToEmptyString() Option { return func(o *Options) { o.LegacyNullToEmptyString = true } }
func AllowShared() Option             { return func(o *Options) { o.AllowShared = true } }
func AllowResizable() Option          { return func(o *Options) { o.AllowResizable = true } }

func resolve(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToBoolean implements the WebIDL `boolean` conversion: identical to
// ECMA-262 ToBoolean, no extended attributes apply.
func ToBoolean(v jsvalue.Value) (bool, error) {
	return v.ToBoolean(), nil
}

const (
	byteMin = -(1 << 7)
	byteMax = (1 << 7) - 1

	octetMax = (1 << 8) - 1

	shortMin = -(1 << 15)
	shortMax = (1 << 15) - 1

	unsignedShortMax = (1 << 16) - 1

	longMin = -(1 << 31)
	longMax = (1 << 31) - 1

	unsignedLongMax = (1 << 32) - 1
)

var longLongMin = int64(math.MinInt64)
var longLongMax = int64(math.MaxInt64)
var unsignedLongLongMax = uint64(math.MaxUint64)

// ToByte implements the IDL `byte` conversion (8-bit signed).
func ToByte(v jsvalue.Value, opts ...Option) (int8, error) {
	n, err := toInteger(v, resolve(opts), 8, true)
	if err != nil {
		return 0, err
	}
	return int8(n), nil
}

// ToOctet implements the IDL `octet` conversion (8-bit unsigned).
func ToOctet(v jsvalue.Value, opts ...Option) (uint8, error) {
	n, err := toInteger(v, resolve(opts), 8, false)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

// ToShort implements the IDL `short` conversion (16-bit signed).
func ToShort(v jsvalue.Value, opts ...Option) (int16, error) {
	n, err := toInteger(v, resolve(opts), 16, true)
	if err != nil {
		return 0, err
	}
	return int16(n), nil
}

// ToUnsignedShort implements the IDL `unsigned short` conversion.
func ToUnsignedShort(v jsvalue.Value, opts ...Option) (uint16, error) {
	n, err := toInteger(v, resolve(opts), 16, false)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

// ToLong implements the IDL `long` conversion (32-bit signed).
func ToLong(v jsvalue.Value, opts ...Option) (int32, error) {
	n, err := toInteger(v, resolve(opts), 32, true)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

// ToUnsignedLong implements the IDL `unsigned long` conversion.
func ToUnsignedLong(v jsvalue.Value, opts ...Option) (uint32, error) {
	n, err := toInteger(v, resolve(opts), 32, false)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// ToLongLong implements the IDL `long long` conversion (64-bit signed).
func ToLongLong(v jsvalue.Value, opts ...Option) (int64, error) {
	n, err := toInteger(v, resolve(opts), 64, true)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ToUnsignedLongLong implements the IDL `unsigned long long` conversion.
func ToUnsignedLongLong(v jsvalue.Value, opts ...Option) (uint64, error) {
	n, err := toInteger(v, resolve(opts), 64, false)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// toInteger is the shared engine behind every integer conversion (spec.md
// §4.3): it computes x = ToNumber(V), then applies [EnforceRange] (throw on
// non-finite or out-of-range), [Clamp] (saturate to the type's range,
// rounding ties to even), or, lacking either, ECMA-262's modulo wraparound.
// The result is always returned widened to int64; callers narrow it to the
// requested width after the fact since Go has no fixed-width "signed
// N-bit integer" storage type for arbitrary N.
func toInteger(v jsvalue.Value, o Options, bits int, signed bool) (int64, error) {
	x, err := v.ToNumber()
	if err != nil {
		return 0, err
	}

	lo, hi := integerRange(bits, signed)

	if o.EnforceRange {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, typeError("value is not a finite number")
		}
		x = trunc(x)
		if x < float64(lo) || x > float64(hi) {
			return 0, typeError(fmt.Sprintf("value %v is outside the range [%d, %d]", x, lo, hi))
		}
		return int64(x), nil
	}

	if o.Clamp {
		if math.IsNaN(x) {
			return 0, nil
		}
		if x < float64(lo) {
			return lo, nil
		}
		if x > float64(hi) {
			return hi, nil
		}
		return int64(roundHalfToEven(x)), nil
	}

	if math.IsNaN(x) || x == 0 {
		return 0, nil
	}

	return wrapModulo(x, bits, signed), nil
}

// roundHalfToEven implements the banker's-rounding tie-break the [Clamp]
// algorithm specifies (spec.md §4.3), used instead of math.Round (which
// rounds ties away from zero).
func roundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}

// integerRange returns the inclusive [min, max] bounds for a signed or
// unsigned integer of the given bit width.
func integerRange(bits int, signed bool) (int64, int64) {
	if !signed {
		return 0, int64(uint64(1)<<uint(bits) - 1)
	}
	return -(int64(1) << uint(bits-1)), int64(1)<<uint(bits-1) - 1
}

// trunc implements ECMA-262's IntegerPart-style truncation toward zero used
// before range checks; it does not round.
func trunc(x float64) float64 {
	if x < 0 {
		return math.Ceil(x)
	}
	return math.Floor(x)
}

// wrapModulo implements ECMA-262's modular-reduction step, the fallback
// behavior when neither [Clamp] nor [EnforceRange] is present: the value is
// truncated, reduced mod 2^bits, and reinterpreted as signed if requested.
func wrapModulo(x float64, bits int, signed bool) int64 {
	x = trunc(x)
	if math.IsInf(x, 0) {
		return 0
	}
	modulus := math.Pow(2, float64(bits))
	x = math.Mod(x, modulus)
	if x < 0 {
		x += modulus
	}
	u := uint64(x)
	if !signed {
		return int64(u)
	}
	signBit := uint64(1) << uint(bits-1)
	if u >= signBit {
		u -= uint64(1) << uint(bits)
	}
	return int64(u)
}

func typeError(msg string) error {
	return domexception.NewSimpleException(domexception.TypeError, msg)
}

func syntaxError(msg string) error {
	return domexception.NewSimpleException(domexception.SyntaxErrorKind, msg)
}
