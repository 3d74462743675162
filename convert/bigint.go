package convert

import (
	"math"
	"math/big"

	"github.com/go-webidl/webidl/jsvalue"
)

// ToBigInt implements the IDL `bigint` conversion (spec.md §4.3): ECMA-262
// ToBigInt, which accepts bigint, boolean, and string values directly. A
// number is rejected unless it is an integer (no fractional part, finite),
// in which case it exact-converts rather than throwing — WebIDL's one
// carve-out from ECMA-262's own ToBigInt, which rejects every Number.
func ToBigInt(v jsvalue.Value) (*big.Int, error) {
	switch v.Kind() {
	case jsvalue.KindBigInt:
		if v.BigIntValue() == nil {
			return big.NewInt(0), nil
		}
		return new(big.Int).Set(v.BigIntValue()), nil
	case jsvalue.KindBoolean:
		if v.Bool() {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case jsvalue.KindString:
		return stringToBigInt(v.Str())
	case jsvalue.KindNumber:
		f, err := v.ToNumber()
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, typeError("cannot convert a non-integer number to a BigInt")
		}
		bf := new(big.Float).SetFloat64(f)
		n, _ := bf.Int(nil)
		return n, nil
	case jsvalue.KindUndefined, jsvalue.KindNull:
		return nil, typeError("cannot convert undefined or null to a BigInt")
	case jsvalue.KindObject:
		prim, err := v.ObjectValue().ToPrimitive("number")
		if err != nil {
			return nil, err
		}
		if prim.Kind() == jsvalue.KindObject {
			return nil, typeError("ToPrimitive returned an object")
		}
		return ToBigInt(prim)
	default:
		return nil, typeError("unsupported value kind")
	}
}

// ToBigIntRange applies ToBigInt and then clamps or range-checks the result
// against [lo, hi], for the sized bigint64/biguint64 typed-array element
// types where [EnforceRange] and [Clamp] apply to a BigInt conversion
// (spec.md §4.3). With neither option set, an out-of-range result wraps
// modulo 2^(bit width) the same way toInteger's unmarked path does; callers
// pass bits as the element width (64 for [Big]Int64Array/BigUint64Array).
func ToBigIntRange(v jsvalue.Value, lo, hi *big.Int, bits int, opts ...Option) (*big.Int, error) {
	o := resolve(opts)
	n, err := ToBigInt(v)
	if err != nil {
		return nil, err
	}

	inRange := n.Cmp(lo) >= 0 && n.Cmp(hi) <= 0
	if inRange {
		return n, nil
	}

	switch {
	case o.EnforceRange:
		return nil, typeError("BigInt value is outside the range [" + lo.String() + ", " + hi.String() + "]")
	case o.Clamp:
		if n.Cmp(lo) < 0 {
			return new(big.Int).Set(lo), nil
		}
		return new(big.Int).Set(hi), nil
	default:
		mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		wrapped := new(big.Int).Mod(n, mod)
		if wrapped.Sign() < 0 {
			wrapped.Add(wrapped, mod)
		}
		half := new(big.Int).Rsh(mod, 1)
		if lo.Sign() < 0 && wrapped.Cmp(half) >= 0 {
			wrapped.Sub(wrapped, mod)
		}
		return wrapped, nil
	}
}

// stringToBigInt parses a StringToBigInt-grammar literal (spec.md §4.3):
// an optional sign, decimal/hex/octal/binary digits, no trailing garbage.
// Empty or whitespace-only input is zero, matching StringNumericLiteral's
// treatment of the empty string.
func stringToBigInt(s string) (*big.Int, error) {
	trimmed := trimASCIIWhitespace(s)
	if trimmed == "" {
		return big.NewInt(0), nil
	}
	n := new(big.Int)
	base := 10
	rest := trimmed
	neg := false
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	switch {
	case hasPrefixFold(rest, "0x"):
		base, rest = 16, rest[2:]
	case hasPrefixFold(rest, "0o"):
		base, rest = 8, rest[2:]
	case hasPrefixFold(rest, "0b"):
		base, rest = 2, rest[2:]
	}
	if rest == "" {
		return nil, syntaxError("invalid BigInt syntax: " + s)
	}
	if (base != 10) && neg {
		return nil, syntaxError("invalid BigInt syntax: sign not allowed with radix prefix: " + s)
	}
	if _, ok := n.SetString(rest, base); !ok {
		return nil, syntaxError("invalid BigInt syntax: " + s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := range prefix {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

func trimASCIIWhitespace(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
