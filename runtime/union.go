package runtime

// Union models a runtime value belonging to an IDL union type `(A or B or
// ...)`. Go has no sum type matching the grammar's arbitrary member list,
// so Union stores the active member generically and tags it by index into
// the union's member list (as ordered in the ast.UnionType this value was
// converted against) rather than attempting to encode each union shape as
// its own generated Go type.
type Union struct {
	memberIndex int
	value       any
}

// NewUnion tags value as belonging to the union member at memberIndex.
func NewUnion(memberIndex int, value any) Union {
	return Union{memberIndex: memberIndex, value: value}
}

// MemberIndex returns which union member produced this value.
func (u Union) MemberIndex() int { return u.memberIndex }

// Value returns the underlying value, typed as `any`; callers type-assert
// or switch on MemberIndex to recover the concrete Go type a particular
// union member converts to.
func (u Union) Value() any { return u.value }
