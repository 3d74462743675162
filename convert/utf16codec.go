package convert

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodeUTF16LE and decodeUTF16LE bridge a Go UTF-8 string to the
// little-endian UTF-16 byte layout a buffer-backed DOMString actually
// carries on the wire (a Uint16Array view, a DataView read, or an
// ArrayBuffer handed to a binding). golang.org/x/text's UTF16 codec is used
// rather than hand-rolling a byte-order loop over unicode/utf16's code
// units, since the pack already depends on x/text for exactly this kind of
// transcoding.
var (
	utf16LEEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

func encodeUTF16LE(s string) []byte {
	out, _ := transform.Bytes(utf16LEEncoding.NewEncoder(), []byte(s))
	return out
}

func decodeUTF16LE(b []byte) (string, error) {
	out, _, err := transform.Bytes(utf16LEEncoding.NewDecoder(), b)
	if err != nil {
		return "", typeError("invalid UTF-16 buffer source: " + err.Error())
	}
	return string(out), nil
}
