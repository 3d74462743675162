package lexer

import (
	"testing"

	"github.com/go-webidl/webidl/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, source string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.EOF)
	got := kinds(Lex(source))
	if len(got) != len(want) {
		t.Fatalf("Lex(%q) produced %d tokens %v, want %d %v", source, len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lex(%q)[%d] = %v, want %v (full: %v)", source, i, got[i], want[i], got)
		}
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	assertKinds(t, "interface Foo", token.KwInterface, token.Identifier)
	assertKinds(t, "readonly attribute", token.KwReadonly, token.KwAttribute)
	assertKinds(t, "DOMString", token.KwDOMString)
	assertKinds(t, "notAKeyword", token.Identifier)
}

func TestLexStringLiteral(t *testing.T) {
	toks := Lex(`"hello world"`)
	if toks[0].Kind != token.StringLiteral {
		t.Fatalf("kind = %v, want StringLiteral", toks[0].Kind)
	}
	if toks[0].Lexeme != `"hello world"` {
		t.Fatalf("lexeme = %q", toks[0].Lexeme)
	}
}

func TestLexUnterminatedStringIsInvalid(t *testing.T) {
	toks := Lex(`"unterminated`)
	if toks[0].Kind != token.Invalid {
		t.Fatalf("kind = %v, want Invalid", toks[0].Kind)
	}
}

func TestLexStringWithEscape(t *testing.T) {
	toks := Lex(`"a\"b"`)
	if toks[0].Kind != token.StringLiteral {
		t.Fatalf("kind = %v, want StringLiteral", toks[0].Kind)
	}
	if toks[0].Lexeme != `"a\"b"` {
		t.Fatalf("lexeme = %q", toks[0].Lexeme)
	}
}

func TestLexIntegerLiterals(t *testing.T) {
	tests := []string{"0", "42", "0x1A", "0X1a", "0777"}
	for _, in := range tests {
		toks := Lex(in)
		if toks[0].Kind != token.IntegerLiteral {
			t.Errorf("Lex(%q)[0].Kind = %v, want IntegerLiteral", in, toks[0].Kind)
		}
		if toks[0].Lexeme != in {
			t.Errorf("Lex(%q)[0].Lexeme = %q, want %q", in, toks[0].Lexeme, in)
		}
	}
}

func TestLexFloatLiterals(t *testing.T) {
	tests := []string{"3.14", "1e10", "1.5e-3", "2E+4"}
	for _, in := range tests {
		toks := Lex(in)
		if toks[0].Kind != token.FloatLiteral {
			t.Errorf("Lex(%q)[0].Kind = %v, want FloatLiteral", in, toks[0].Kind)
		}
	}
}

func TestLexNegativeHexLiteral(t *testing.T) {
	toks := Lex("-0x1A")
	if toks[0].Kind != token.IntegerLiteral || toks[0].Lexeme != "-0x1A" {
		t.Fatalf("got %v %q, want IntegerLiteral -0x1A", toks[0].Kind, toks[0].Lexeme)
	}
}

func TestLexMinusIsItsOwnTokenOutsideHex(t *testing.T) {
	assertKinds(t, "-Infinity", token.Minus, token.Infinity)
	assertKinds(t, "-5", token.Minus, token.IntegerLiteral)
}

func TestLexExponentBacktrackWhenNotFollowedByDigits(t *testing.T) {
	// "1e" with no following digit: the 'e' is not part of the number.
	toks := Lex("1e")
	if toks[0].Kind != token.IntegerLiteral || toks[0].Lexeme != "1" {
		t.Fatalf("got %v %q, want IntegerLiteral \"1\"", toks[0].Kind, toks[0].Lexeme)
	}
	if toks[1].Kind != token.Identifier || toks[1].Lexeme != "e" {
		t.Fatalf("got %v %q, want Identifier \"e\"", toks[1].Kind, toks[1].Lexeme)
	}
}

func TestLexPunctuation(t *testing.T) {
	assertKinds(t, "(){}[]<>=:;,?*...",
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket, token.LAngle, token.RAngle,
		token.Equals, token.Colon, token.Semicolon, token.Comma,
		token.Question, token.Star, token.Ellipsis)
}

func TestLexDoubleColon(t *testing.T) {
	assertKinds(t, "::", token.DoubleColon)
	assertKinds(t, ":", token.Colon)
}

func TestLexInvalidDotIsNotEllipsis(t *testing.T) {
	assertKinds(t, "..", token.Invalid, token.Invalid)
}

func TestLexLineComment(t *testing.T) {
	assertKinds(t, "interface // a comment\nFoo", token.KwInterface, token.Identifier)
}

func TestLexBlockComment(t *testing.T) {
	assertKinds(t, "interface /* multi\nline */ Foo", token.KwInterface, token.Identifier)
}

func TestLexHashPreprocessorLine(t *testing.T) {
	assertKinds(t, "# pragma foo\ninterface", token.KwInterface)
}

func TestLexUnknownCharacterIsInvalid(t *testing.T) {
	assertKinds(t, "@", token.Invalid)
}

func TestLexEOFIsStable(t *testing.T) {
	l := New("")
	first := l.Next()
	second := l.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatalf("expected EOF twice, got %v then %v", first.Kind, second.Kind)
	}
}

func TestLexBOMIsStripped(t *testing.T) {
	toks := Lex("\xef\xbb\xbfinterface Foo")
	if toks[0].Kind != token.KwInterface {
		t.Fatalf("first token = %v, want KwInterface (BOM not stripped)", toks[0].Kind)
	}
}

func TestWithHyphenatedIdentifiers(t *testing.T) {
	toks := Lex("foo-bar", WithHyphenatedIdentifiers(true))
	if toks[0].Kind != token.Identifier || toks[0].Lexeme != "foo-bar" {
		t.Fatalf("got %v %q, want Identifier \"foo-bar\"", toks[0].Kind, toks[0].Lexeme)
	}

	without := Lex("foo-bar")
	if without[0].Lexeme != "foo" {
		t.Fatalf("without the option, got lexeme %q, want \"foo\"", without[0].Lexeme)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	toks := Lex("foo bar\nbaz")
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Fatalf("first token pos = %v, want 1:1", toks[0].Pos)
	}
	if toks[1].Pos.Line != 1 || toks[1].Pos.Column != 5 {
		t.Fatalf("second token pos = %v, want 1:5", toks[1].Pos)
	}
	if toks[2].Pos.Line != 2 || toks[2].Pos.Column != 1 {
		t.Fatalf("third token pos = %v, want 2:1", toks[2].Pos)
	}
}
