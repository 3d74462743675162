package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		lexeme   string
		wantKind Kind
		wantOK   bool
	}{
		{"interface", KwInterface, true},
		{"dictionary", KwDictionary, true},
		{"DOMString", KwDOMString, true},
		{"module", KwModule, true},
		{"raises", KwRaises, true},
		{"notAKeyword", Identifier, false},
		{"", Identifier, false},
	}
	for _, tt := range tests {
		kind, ok := Lookup(tt.lexeme)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.lexeme, ok, tt.wantOK)
			continue
		}
		if ok && kind != tt.wantKind {
			t.Errorf("Lookup(%q) kind = %v, want %v", tt.lexeme, kind, tt.wantKind)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !KwInterface.IsKeyword() {
		t.Error("KwInterface.IsKeyword() = false, want true")
	}
	if !KwModule.IsKeyword() {
		t.Error("KwModule.IsKeyword() = false, want true")
	}
	if Identifier.IsKeyword() {
		t.Error("Identifier.IsKeyword() = true, want false")
	}
	if EOF.IsKeyword() {
		t.Error("EOF.IsKeyword() = true, want false")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LParen, "("},
		{Semicolon, ";"},
		{KwInterface, "interface"},
		{Identifier, "identifier"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
	if got := Kind(99999).String(); got == "" {
		t.Error("unknown Kind.String() returned empty string")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Identifier, Lexeme: "foo"}, `identifier("foo")`},
		{Token{Kind: IntegerLiteral, Lexeme: "42"}, `integer_literal("42")`},
		{Token{Kind: Semicolon, Lexeme: ";"}, ";"},
		{Token{Kind: EOF}, "eof"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}
