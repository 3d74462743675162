package convert

import "math"

// ToFloat implements the IDL `float` conversion: restricted floats reject
// NaN and ±Infinity (spec.md §4.3), then narrow to float32, rounding to the
// nearest representable value per IEEE 754 round-to-nearest-even (Go's
// float64-to-float32 conversion already does this).
func ToFloat(v floatSource) (float32, error) {
	x, err := v.ToNumber()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, typeError("value is not a finite, non-NaN number")
	}
	f32 := float32(x)
	if math.IsInf(float64(f32), 0) {
		return 0, typeError("value is out of range for a restricted float")
	}
	return f32, nil
}

// ToUnrestrictedFloat implements `unrestricted float`: the same narrowing
// as ToFloat but without the finiteness check.
func ToUnrestrictedFloat(v floatSource) (float32, error) {
	x, err := v.ToNumber()
	if err != nil {
		return 0, err
	}
	return float32(x), nil
}

// ToDouble implements the IDL `double` conversion.
func ToDouble(v floatSource) (float64, error) {
	x, err := v.ToNumber()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, typeError("value is not a finite, non-NaN number")
	}
	return x, nil
}

// ToUnrestrictedDouble implements `unrestricted double`.
func ToUnrestrictedDouble(v floatSource) (float64, error) {
	return v.ToNumber()
}

// floatSource is the minimal surface ToFloat/ToDouble need: anything that
// knows how to ECMA-262 ToNumber itself, which is exactly jsvalue.Value's
// method set. Declared as an interface here (rather than importing
// jsvalue.Value by name) only so this file reads self-contained; the real
// call sites always pass a jsvalue.Value.
type floatSource interface {
	ToNumber() (float64, error)
}
