package ascii

import "testing"

func TestIsLetter(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'Z', true}, {'_', true},
		{'0', false}, {'-', false}, {' ', false},
	}
	for _, tt := range tests {
		if got := IsLetter(tt.r); got != tt.want {
			t.Errorf("IsLetter(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	if !IsDigit('5') || IsDigit('a') {
		t.Fatal("IsDigit misclassified a digit/non-digit")
	}
}

func TestIsHexDigit(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'0', true}, {'9', true}, {'a', true}, {'F', true}, {'g', false}, {'-', false},
	}
	for _, tt := range tests {
		if got := IsHexDigit(tt.r); got != tt.want {
			t.Errorf("IsHexDigit(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsIdentifierContinue(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true}, {'9', true}, {'-', true}, {'_', true}, {'.', false}, {' ', false},
	}
	for _, tt := range tests {
		if got := IsIdentifierContinue(tt.r); got != tt.want {
			t.Errorf("IsIdentifierContinue(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\r', '\n'} {
		if !IsWhitespace(r) {
			t.Errorf("IsWhitespace(%q) = false, want true", r)
		}
	}
	if IsWhitespace('x') {
		t.Error("IsWhitespace('x') = true, want false")
	}
}

func TestCodeUnitsRoundTrip(t *testing.T) {
	tests := []string{"", "hello", "café", "\U0001F600"}
	for _, s := range tests {
		units := CodeUnits(s)
		got := FromCodeUnits(units)
		if got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func TestCodeUnitsSurrogatePair(t *testing.T) {
	units := CodeUnits("\U0001F600")
	if len(units) != 2 {
		t.Fatalf("expected a surrogate pair for an astral code point, got %d units", len(units))
	}
	if !IsHighSurrogate(units[0]) {
		t.Errorf("units[0] = %x, want a high surrogate", units[0])
	}
	if !IsLowSurrogate(units[1]) {
		t.Errorf("units[1] = %x, want a low surrogate", units[1])
	}
	if !IsSurrogate(units[0]) || !IsSurrogate(units[1]) {
		t.Error("IsSurrogate should report true for both halves of a pair")
	}
}

func TestFromCodeUnitsUnpairedSurrogate(t *testing.T) {
	// A lone high surrogate with no following low surrogate.
	units := []uint16{0x0041, 0xD800, 0x0042}
	got := FromCodeUnits(units)
	want := "A�B"
	if got != want {
		t.Errorf("FromCodeUnits(lone surrogate) = %q, want %q", got, want)
	}
}

func TestIsSurrogateBoundaries(t *testing.T) {
	if IsSurrogate(0xD7FF) || IsSurrogate(0xE000) {
		t.Error("boundary code units just outside the surrogate range misclassified")
	}
	if !IsSurrogate(0xD800) || !IsSurrogate(0xDFFF) {
		t.Error("boundary code units just inside the surrogate range misclassified")
	}
}
