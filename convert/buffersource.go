package convert

import "github.com/go-webidl/webidl/jsvalue"

// BufferSource is the minimal descriptor the buffer-source conversion
// (spec.md §4.3) inspects: the allocation kind (e.g. "ArrayBuffer",
// "SharedArrayBuffer", "Uint8Array"), whether the backing memory is shared
// or resizable, and whether it has been detached. Bytes is populated only
// when the caller actually has the backing memory available (as opposed to
// just inspecting its shared/resizable/detached flags).
type BufferSource struct {
	Kind      string
	Shared    bool
	Resizable bool
	Detached  bool
	Bytes     []byte
}

// ToBufferSource validates v's descriptor against the [AllowShared] and
// [AllowResizable] modifiers (spec.md §4.3): a shared or resizable buffer
// is rejected unless the corresponding extended attribute allows it, and a
// detached buffer is always rejected regardless of modifiers.
func ToBufferSource(v BufferSource, opts ...Option) (BufferSource, error) {
	o := resolve(opts)
	if v.Detached {
		return BufferSource{}, typeError("buffer source is detached")
	}
	if v.Shared && !o.AllowShared {
		return BufferSource{}, typeError("shared buffer source requires [AllowShared]")
	}
	if v.Resizable && !o.AllowResizable {
		return BufferSource{}, typeError("resizable buffer source requires [AllowResizable]")
	}
	return v, nil
}

// BufferSourceFromObject reads a BufferSource descriptor off a jsvalue
// Object via the shared/resizable predicates on jsvalue.Object, for callers
// that only have the generic Value form in hand.
func BufferSourceFromObject(o jsvalue.Object) BufferSource {
	return BufferSource{Kind: o.ClassName(), Shared: o.IsShared(), Resizable: o.IsResizable()}
}

// DOMStringFromBufferSource decodes v's backing bytes as little-endian
// UTF-16, the layout a DOMString-typed argument takes when it arrives
// backed by a Uint16Array/DataView rather than a native JS string. Invalid
// or unpaired code units are replaced rather than rejected, matching
// ToUSVString's scrubbing rule, since a buffer-backed string has no
// "native string" representation to fall back on.
func DOMStringFromBufferSource(v BufferSource, opts ...Option) (string, error) {
	v, err := ToBufferSource(v, opts...)
	if err != nil {
		return "", err
	}
	return decodeUTF16LE(v.Bytes)
}

// BufferSourceFromDOMString is the inverse of DOMStringFromBufferSource: it
// encodes s to little-endian UTF-16 bytes and wraps them in a detached-false,
// non-shared, non-resizable BufferSource descriptor of the given kind (e.g.
// "Uint16Array").
func BufferSourceFromDOMString(s, kind string) BufferSource {
	return BufferSource{Kind: kind, Bytes: encodeUTF16LE(s)}
}
