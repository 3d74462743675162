// Package domexception implements the WebIDL error-propagation model
// (spec.md §4.4/§4.5): the 33 fixed DOMException names with their legacy
// numeric codes, the four SimpleException kinds JavaScript's own built-in
// errors cover, and ErrorResult, the universal "did this operation fail"
// out-channel the rest of the toolkit's runtime layer threads through.
package domexception

import "fmt"

// Name is one of the 33 DOMException names fixed by the WebIDL
// specification (spec.md §4.4). The constants below are the closed standard
// set; Name is a plain string type, so this package does not stop a caller
// from converting another string to a Name (see New).
type Name string

const (
	IndexSizeError             Name = "IndexSizeError"
	HierarchyRequestError      Name = "HierarchyRequestError"
	WrongDocumentError         Name = "WrongDocumentError"
	InvalidCharacterError      Name = "InvalidCharacterError"
	NoModificationAllowedError Name = "NoModificationAllowedError"
	NotFoundError              Name = "NotFoundError"
	NotSupportedError          Name = "NotSupportedError"
	InUseAttributeError        Name = "InUseAttributeError"
	InvalidStateError          Name = "InvalidStateError"
	SyntaxErrorName            Name = "SyntaxError"
	InvalidModificationError   Name = "InvalidModificationError"
	NamespaceError             Name = "NamespaceError"
	InvalidAccessError         Name = "InvalidAccessError"
	TypeMismatchError          Name = "TypeMismatchError"
	SecurityError              Name = "SecurityError"
	NetworkError               Name = "NetworkError"
	AbortError                 Name = "AbortError"
	URLMismatchError           Name = "URLMismatchError"
	QuotaExceededError         Name = "QuotaExceededError"
	TimeoutError               Name = "TimeoutError"
	InvalidNodeTypeError       Name = "InvalidNodeTypeError"
	DataCloneError             Name = "DataCloneError"
	EncodingError              Name = "EncodingError"
	NotReadableError           Name = "NotReadableError"
	UnknownError               Name = "UnknownError"
	ConstraintError            Name = "ConstraintError"
	DataError                  Name = "DataError"
	TransactionInactiveError   Name = "TransactionInactiveError"
	ReadOnlyError              Name = "ReadOnlyError"
	VersionError               Name = "VersionError"
	OperationError             Name = "OperationError"
	NotAllowedError            Name = "NotAllowedError"
	OptOutError                Name = "OptOutError"
)

// legacyCodes maps the historical subset of names to the numeric codes
// `DOMException.code` exposed for backward compatibility (spec.md §4.4).
// Names introduced after the legacy-code table was frozen map to 0.
var legacyCodes = map[Name]int{
	IndexSizeError:             1,
	HierarchyRequestError:      3,
	WrongDocumentError:         4,
	InvalidCharacterError:      5,
	NoModificationAllowedError: 7,
	NotFoundError:              8,
	NotSupportedError:          9,
	InUseAttributeError:        10,
	InvalidStateError:          11,
	SyntaxErrorName:            12,
	InvalidModificationError:   13,
	NamespaceError:             14,
	InvalidAccessError:         15,
	TypeMismatchError:          17,
	SecurityError:              18,
	NetworkError:               19,
	AbortError:                 20,
	URLMismatchError:           21,
	QuotaExceededError:         22,
	TimeoutError:               23,
	InvalidNodeTypeError:       24,
	DataCloneError:             25,
}

// LegacyCode returns the historical numeric code for name, or 0 if name has
// no legacy code (spec.md §4.4: "DOMException names defined after the code
// attribute was frozen have a code of 0").
func LegacyCode(name Name) int {
	return legacyCodes[name]
}

// DOMException is the WebIDL exception type (spec.md §4.4): a name drawn
// from the fixed set above, plus a human-readable message. It implements
// error so it can flow through ordinary Go error returns as well as
// through ErrorResult.
type DOMException struct {
	DOMName Name
	Message string
}

// New constructs a DOMException. It does not validate that name is one of
// the 33 standard names: extended attributes and test code are free to
// mint application-specific DOMException-shaped errors, matching how the
// WebIDL `DOMException(message, name)` constructor itself accepts any
// string.
func New(name Name, message string) *DOMException {
	return &DOMException{DOMName: name, Message: message}
}

func (e *DOMException) Error() string {
	return fmt.Sprintf("%s: %s", e.DOMName, e.Message)
}

// Code returns e's legacy numeric code, per LegacyCode.
func (e *DOMException) Code() int { return LegacyCode(e.DOMName) }

// SimpleExceptionKind enumerates the four built-in JavaScript error types
// WebIDL conversion algorithms throw directly rather than as a
// DOMException (spec.md §4.5): a malformed conversion is a language-level
// error, not a platform one.
type SimpleExceptionKind int

const (
	TypeError SimpleExceptionKind = iota
	RangeError
	SyntaxErrorKind
	URIError
)

var simpleExceptionNames = map[SimpleExceptionKind]string{
	TypeError: "TypeError", RangeError: "RangeError",
	SyntaxErrorKind: "SyntaxError", URIError: "URIError",
}

func (k SimpleExceptionKind) String() string { return simpleExceptionNames[k] }

// SimpleException wraps one of the four ECMAScript native error kinds.
type SimpleException struct {
	ExceptionKind SimpleExceptionKind
	Message       string
}

// NewSimpleException constructs a SimpleException and returns it as an
// error, the shape every conversion function in package convert returns on
// failure.
func NewSimpleException(kind SimpleExceptionKind, message string) error {
	return &SimpleException{ExceptionKind: kind, Message: message}
}

func (e *SimpleException) Error() string {
	return fmt.Sprintf("%s: %s", e.ExceptionKind, e.Message)
}
