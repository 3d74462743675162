// Package token defines the lexical token kinds and the Token value the
// WebIDL lexer produces, one per call, for the parser to consume.
package token

import "fmt"

// Kind identifies the category of a Token. Kinds are grouped below by
// purpose: structural/special, literals, punctuation, and keywords (modern
// WebIDL plus the tolerated legacy CORBA-IDL set).
type Kind int

const (
	// Special tokens.
	Invalid Kind = iota // unrecognised character; the lexer never errors, it emits this
	EOF                 // end of input

	// Literal categories.
	Identifier
	StringLiteral
	IntegerLiteral
	FloatLiteral
	True
	False
	Null
	Infinity
	NegativeInfinity
	NaN

	// Punctuation.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LAngle    // <
	RAngle    // >
	Equals    // =
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Question  // ?
	Star      // *
	Minus     // -
	DoubleColon // ::
	Ellipsis    // ...

	keywordBegin

	// Interface / dictionary / structural keywords.
	KwInterface
	KwMixin
	KwPartial
	KwDictionary
	KwEnum
	KwTypedef
	KwCallback
	KwNamespace
	KwIncludes
	KwImplements // legacy alias sometimes seen alongside includes; tolerated, not produced by the parser

	// Member keywords.
	KwAttribute
	KwReadonly
	KwStatic
	KwStringifier
	KwInherit
	KwConst
	KwConstructor
	KwGetter
	KwSetter
	KwDeleter
	KwIterable
	KwAsync
	KwMaplike
	KwSetlike
	KwRequired
	KwOptional
	KwUnrestricted

	// Type keywords.
	KwAny
	KwUndefined
	KwBoolean
	KwByte
	KwOctet
	KwShort
	KwLong
	KwUnsigned
	KwFloat
	KwDouble
	KwBigint
	KwDOMString
	KwByteString
	KwUSVString
	KwObject
	KwSymbol
	KwSequence
	KwFrozenArray
	KwObservableArray
	KwRecord
	KwPromise
	KwOr

	// Legacy CORBA-IDL tolerance keywords (always in the keyword table; see
	// keywords below).
	KwIn
	KwRaises
	KwPragma
	KwModule

	keywordEnd
)

var kindNames = map[Kind]string{
	Invalid:          "invalid",
	EOF:              "eof",
	Identifier:       "identifier",
	StringLiteral:    "string_literal",
	IntegerLiteral:   "integer_literal",
	FloatLiteral:     "float_literal",
	True:             "true",
	False:            "false",
	Null:             "null",
	Infinity:         "Infinity",
	NegativeInfinity: "-Infinity",
	NaN:              "NaN",

	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", LAngle: "<", RAngle: ">",
	Equals: "=", Colon: ":", Semicolon: ";", Comma: ",",
	Question: "?", Star: "*", Minus: "-",
	DoubleColon: "::", Ellipsis: "...",

	KwInterface: "interface", KwMixin: "mixin", KwPartial: "partial",
	KwDictionary: "dictionary", KwEnum: "enum", KwTypedef: "typedef",
	KwCallback: "callback", KwNamespace: "namespace", KwIncludes: "includes",
	KwImplements: "implements",

	KwAttribute: "attribute", KwReadonly: "readonly", KwStatic: "static",
	KwStringifier: "stringifier", KwInherit: "inherit", KwConst: "const",
	KwConstructor: "constructor", KwGetter: "getter", KwSetter: "setter",
	KwDeleter: "deleter", KwIterable: "iterable", KwAsync: "async",
	KwMaplike: "maplike", KwSetlike: "setlike", KwRequired: "required",
	KwOptional: "optional", KwUnrestricted: "unrestricted",

	KwAny: "any", KwUndefined: "undefined", KwBoolean: "boolean",
	KwByte: "byte", KwOctet: "octet", KwShort: "short", KwLong: "long",
	KwUnsigned: "unsigned", KwFloat: "float", KwDouble: "double",
	KwBigint: "bigint", KwDOMString: "DOMString", KwByteString: "ByteString",
	KwUSVString: "USVString", KwObject: "object", KwSymbol: "symbol",
	KwSequence: "sequence", KwFrozenArray: "FrozenArray",
	KwObservableArray: "ObservableArray", KwRecord: "record",
	KwPromise: "Promise", KwOr: "or",

	KwIn: "in", KwRaises: "raises", KwPragma: "pragma", KwModule: "module",
}

// String implements fmt.Stringer, mainly for diagnostics and test failure
// messages.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved words, modern or
// legacy.
func (k Kind) IsKeyword() bool {
	return k > keywordBegin && k < keywordEnd
}

// keywords maps a lexeme to its keyword Kind. Built once; reused by the
// lexer on every identifier it scans. Legacy CORBA-IDL words are always in
// the table (see spec.md §6.2) — the parser, not the lexer, decides whether
// to tolerate or reject them.
var keywords = map[string]Kind{
	"interface": KwInterface, "mixin": KwMixin, "partial": KwPartial,
	"dictionary": KwDictionary, "enum": KwEnum, "typedef": KwTypedef,
	"callback": KwCallback, "namespace": KwNamespace, "includes": KwIncludes,
	"implements": KwImplements,

	"attribute": KwAttribute, "readonly": KwReadonly, "static": KwStatic,
	"stringifier": KwStringifier, "inherit": KwInherit, "const": KwConst,
	"constructor": KwConstructor, "getter": KwGetter, "setter": KwSetter,
	"deleter": KwDeleter, "iterable": KwIterable, "async": KwAsync,
	"maplike": KwMaplike, "setlike": KwSetlike, "required": KwRequired,
	"optional": KwOptional, "unrestricted": KwUnrestricted,

	"any": KwAny, "undefined": KwUndefined, "boolean": KwBoolean,
	"byte": KwByte, "octet": KwOctet, "short": KwShort, "long": KwLong,
	"unsigned": KwUnsigned, "float": KwFloat, "double": KwDouble,
	"bigint": KwBigint, "DOMString": KwDOMString, "ByteString": KwByteString,
	"USVString": KwUSVString, "object": KwObject, "symbol": KwSymbol,
	"sequence": KwSequence, "FrozenArray": KwFrozenArray,
	"ObservableArray": KwObservableArray, "record": KwRecord,
	"Promise": KwPromise, "or": KwOr,

	"true": True, "false": False, "null": Null,
	"Infinity": Infinity, "NaN": NaN,

	"in": KwIn, "raises": KwRaises, "pragma": KwPragma, "module": KwModule,
}

// Lookup returns the keyword Kind for lexeme, or (Identifier, false) if
// lexeme is not a reserved word.
func Lookup(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	if !ok {
		return Identifier, false
	}
	return k, true
}

// Position is a 1-indexed line/column pair, plus the 0-indexed byte offset
// into the source buffer. It is embedded in every Token and carried onto
// every AST node derived from that token.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders the position as "line:column", the form used by
// parser.ParseError and domexception diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable lexical unit: a Kind, the original source lexeme,
// and its starting Position. Tokens never outlive a single parse; the
// Lexeme string aliases the source buffer in the common case but may be
// synthesized (e.g. EOF has an empty Lexeme).
type Token struct {
	Kind    Kind
	Lexeme  string
	Pos     Position
}

// String renders a Token for diagnostics: kind name, and the lexeme when it
// carries information the kind name does not (identifiers and literals).
func (t Token) String() string {
	switch t.Kind {
	case Identifier, StringLiteral, IntegerLiteral, FloatLiteral:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	default:
		return t.Kind.String()
	}
}
