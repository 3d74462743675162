// Package forgivingbase64 implements the WHATWG Infra "forgiving-base64"
// decode and encode algorithms: the same base64 alphabet as RFC 4648, but
// tolerant of embedded ASCII whitespace and the omission of trailing
// padding, the way `atob`-adjacent buffer-source helpers need to be
// (spec.md's Primitive operations module lists forgiving-base64 alongside
// ASCII classification and ordered-map/ordered-set containers as a shared
// low-level dependency of the rest of the toolkit).
package forgivingbase64

import (
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var reverseAlphabet = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i, c := range alphabet {
		table[byte(c)] = int8(i)
	}
	return table
}()

// Decode implements the forgiving-base64 decode algorithm: ASCII whitespace
// anywhere in data is stripped first, one or two trailing '=' are trimmed
// only when the stripped data (padding included) is a multiple of four code
// points long, and a remainder of 1 after that (impossible to complete a
// valid group) is an error.
func Decode(data string) ([]byte, error) {
	data = stripASCIIWhitespace(data)

	if len(data)%4 == 0 {
		switch {
		case strings.HasSuffix(data, "=="):
			data = data[:len(data)-2]
		case strings.HasSuffix(data, "="):
			data = data[:len(data)-1]
		}
	}

	if len(data)%4 == 1 {
		return nil, fmt.Errorf("forgivingbase64: invalid length after stripping whitespace and padding")
	}

	out := make([]byte, 0, len(data)*3/4+3)
	var buf [4]int8
	n := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		v := reverseAlphabet[c]
		if v < 0 {
			return nil, fmt.Errorf("forgivingbase64: invalid character %q", c)
		}
		buf[n] = v
		n++
		if n == 4 {
			out = append(out,
				byte(buf[0])<<2|byte(buf[1])>>4,
				byte(buf[1])<<4|byte(buf[2])>>2,
				byte(buf[2])<<6|byte(buf[3]),
			)
			n = 0
		}
	}
	switch n {
	case 0:
		// exact multiple of 4, nothing left over
	case 2:
		out = append(out, byte(buf[0])<<2|byte(buf[1])>>4)
	case 3:
		out = append(out,
			byte(buf[0])<<2|byte(buf[1])>>4,
			byte(buf[1])<<4|byte(buf[2])>>2,
		)
	}
	return out, nil
}

// Encode implements the matching forgiving-base64 encode algorithm: plain
// RFC 4648 base64 with '=' padding, since the "forgiving" tolerance only
// applies to decoding malformed/whitespace-laden input.
func Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data) + 2) / 3 * 4)
	for i := 0; i < len(data); i += 3 {
		var b0, b1, b2 byte
		b0 = data[i]
		hasB1 := i+1 < len(data)
		hasB2 := i+2 < len(data)
		if hasB1 {
			b1 = data[i+1]
		}
		if hasB2 {
			b2 = data[i+2]
		}
		sb.WriteByte(alphabet[b0>>2])
		sb.WriteByte(alphabet[(b0<<4|b1>>4)&0x3F])
		if hasB1 {
			sb.WriteByte(alphabet[(b1<<2|b2>>6)&0x3F])
		} else {
			sb.WriteByte('=')
		}
		if hasB2 {
			sb.WriteByte(alphabet[b2&0x3F])
		} else {
			sb.WriteByte('=')
		}
	}
	return sb.String()
}

func stripASCIIWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\f':
			continue
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
