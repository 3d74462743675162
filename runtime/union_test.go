package runtime

import "testing"

func TestUnionMemberIndexAndValue(t *testing.T) {
	u := NewUnion(1, "a string")
	if u.MemberIndex() != 1 {
		t.Errorf("MemberIndex() = %d, want 1", u.MemberIndex())
	}
	s, ok := u.Value().(string)
	if !ok || s != "a string" {
		t.Errorf("Value() = %#v, want \"a string\"", u.Value())
	}
}

func TestUnionDistinguishesMembersOfSameGoType(t *testing.T) {
	long := NewUnion(0, int32(42))
	short := NewUnion(2, int32(42))
	if long.MemberIndex() == short.MemberIndex() {
		t.Error("two union members sharing a Go type should remain distinguishable by index")
	}
}
