package runtime

import "errors"

// ErrReadonlyMap is returned by every mutating Maplike method when the
// Maplike was constructed readonly (spec.md §4.4).
var ErrReadonlyMap = errors.New("runtime: map is readonly")

// ErrReadonlySet is the Setlike counterpart of ErrReadonlyMap.
var ErrReadonlySet = errors.New("runtime: set is readonly")

// ErrSequenceClosed is returned by BufferedAsyncSequence.Push once Close
// has been called (spec.md §4.4).
var ErrSequenceClosed = errors.New("runtime: sequence is closed")
