package convert

import "golang.org/x/text/unicode/norm"

// IsNFC reports whether s is already in Unicode Normalization Form C. None
// of the DOMString/ByteString/USVString conversions normalize their input —
// WebIDL string conversion is explicitly code-unit-preserving, not
// normalizing — so this helper exists only so callers (and this package's
// own tests) can assert that ToDOMString/ToUSVString leave non-normalized
// input exactly as non-normalized as it arrived.
func IsNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}

// NormalizeNFC returns the NFC-normalized form of s. It is never called by
// any conversion in this package; it is exposed for callers one layer up
// (e.g. a binding comparing two DOMStrings for equality under Unicode
// canonical equivalence) who need normalization as a separate, explicit
// step rather than folded into conversion.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}
