package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-webidl/webidl/internal/ascii"
	"github.com/go-webidl/webidl/jsvalue"
)

// ToDOMString implements the IDL `DOMString` conversion (spec.md §4.3): an
// ECMA-262 ToString, with [LegacyNullToEmptyString] short-circuiting a null
// input to "" instead of the literal string "null". DOMString has no
// content restriction beyond being a sequence of UTF-16 code units, which a
// Go string already represents faithfully via its UTF-8 encoding as long
// as every conversion in this package stays consistent about treating
// "string" as "UTF-16 code unit sequence", not "Unicode scalar sequence" —
// see ToUSVString for where that distinction actually bites.
func ToDOMString(v jsvalue.Value, opts ...Option) (string, error) {
	o := resolve(opts)
	if o.LegacyNullToEmptyString && v.IsNull() {
		return "", nil
	}
	return toString(v)
}

func toString(v jsvalue.Value) (string, error) {
	switch v.Kind() {
	case jsvalue.KindUndefined:
		return "undefined", nil
	case jsvalue.KindNull:
		return "null", nil
	case jsvalue.KindBoolean:
		if v.Bool() {
			return "true", nil
		}
		return "false", nil
	case jsvalue.KindNumber:
		return formatNumber(v.Float64()), nil
	case jsvalue.KindBigInt:
		if v.BigIntValue() == nil {
			return "0", nil
		}
		return v.BigIntValue().String(), nil
	case jsvalue.KindString:
		return v.Str(), nil
	case jsvalue.KindObject:
		prim, err := v.ObjectValue().ToPrimitive("string")
		if err != nil {
			return "", err
		}
		if prim.Kind() == jsvalue.KindObject {
			return "", typeError("ToPrimitive returned an object")
		}
		return toString(prim)
	default:
		return "", typeError("unsupported value kind")
	}
}

// formatNumber implements ECMA-262 §7.1.12.1 Number::toString: the shortest
// decimal digit string that round-trips to f, laid out with a decimal point,
// zero-padding, or exponential notation depending on the magnitude of the
// value's decimal exponent. Go's %g/%e/%f verbs switch notation at different
// thresholds than JS, so the digits and exponent are pulled out of Go's
// shortest round-trip scientific form and re-laid-out by hand.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	neg := f < 0
	if neg {
		f = -f
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	n := exp + 1

	var out string
	switch {
	case k <= n && n <= 21:
		out = digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		out = digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		out = "0." + strings.Repeat("0", -n) + digits
	default:
		mant := digits[:1]
		if k > 1 {
			mant += "." + digits[1:]
		}
		e := n - 1
		sign := "+"
		if e < 0 {
			sign = "-"
			e = -e
		}
		out = mant + "e" + sign + strconv.Itoa(e)
	}

	if neg {
		return "-" + out
	}
	return out
}

// ToByteString implements the IDL `ByteString` conversion (spec.md §4.3):
// ToDOMString, then a check that every UTF-16 code unit fits in a single
// byte. Unlike DOMString/USVString, ByteString content is restricted to
// code points U+0000..U+00FF, which this package represents as the same Go
// string type used elsewhere — callers that need actual raw bytes decode
// it with encoding/latin-style widening themselves.
func ToByteString(v jsvalue.Value) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	for _, u := range ascii.CodeUnits(s) {
		if u > 0xFF {
			return "", typeError(fmt.Sprintf("ByteString conversion found code unit %#x outside the range [0, 255]", u))
		}
	}
	return s, nil
}

// ToUSVString implements the IDL `USVString` conversion (spec.md §4.3):
// ToDOMString, then every lone (unpaired) surrogate in the UTF-16 code unit
// sequence is replaced with U+FFFD REPLACEMENT CHARACTER, since a USVString
// may contain only scalar values. A Go string is UTF-8, which cannot
// represent an unpaired surrogate directly; this function round-trips
// through the UTF-16 code unit view so the replacement happens at the
// right granularity regardless of that representational gap.
func ToUSVString(v jsvalue.Value) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	// ascii.FromCodeUnits round-trips through unicode/utf16, which replaces
	// any unpaired surrogate with U+FFFD — exactly the USVString rule.
	return ascii.FromCodeUnits(ascii.CodeUnits(s)), nil
}
