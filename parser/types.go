package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/token"
)

// parseType parses one IDL type expression, including a union wrapped in
// parentheses, and the trailing `?` nullable suffix where the grammar allows
// it (spec.md §3.2). A union is just as nullable-eligible as any other base
// type, so both paths fall through to the same suffix check. Promise<T>
// forbids a nullable suffix, and a second `?` directly after the first is
// rejected as nullable-of-nullable; both checks happen here rather than
// being encoded in the grammar, matching how the Working Group restricts
// them structurally rather than syntactically.
func (p *Parser) parseType() ast.Type {
	pos := p.curToken.Pos

	var base ast.Type
	if p.curIs(token.LParen) {
		base = p.parseUnionType(pos)
	} else {
		base = p.parseSingleType(pos)
	}

	if !p.curIs(token.Question) {
		return base
	}
	if _, isPromise := base.(*ast.PromiseType); isPromise {
		p.errorf(KindNullablePromise, p.curToken.Pos, "Promise<T> may not be marked nullable")
		p.nextToken()
		return base
	}
	p.nextToken()
	if p.curIs(token.Question) {
		p.errorf(KindNullableOfNullable, p.curToken.Pos, "a nullable type may not itself be marked nullable")
		p.nextToken()
		return &ast.NullableType{Inner: base, Position: pos}
	}
	return &ast.NullableType{Inner: base, Position: pos}
}

// parseSingleType parses everything parseType handles except the leading
// union-parenthesis form and the trailing nullable suffix.
func (p *Parser) parseSingleType(pos token.Position) ast.Type {
	switch p.curToken.Kind {
	case token.KwAny:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Any, Position: pos}
	case token.KwUndefined:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Undefined, Position: pos}
	case token.KwBoolean:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Boolean, Position: pos}
	case token.KwByte:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Byte, Position: pos}
	case token.KwOctet:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Octet, Position: pos}
	case token.KwShort:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Short, Position: pos}
	case token.KwUnsigned:
		p.nextToken()
		return p.parseUnsignedIntegerType(pos)
	case token.KwLong:
		return p.parseLongType(pos, false)
	case token.KwUnrestricted:
		p.nextToken()
		return p.parseUnrestrictedFloatType(pos)
	case token.KwFloat:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Float, Position: pos}
	case token.KwDouble:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Double, Position: pos}
	case token.KwBigint:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.BigInt, Position: pos}
	case token.KwDOMString:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.DOMString, Position: pos}
	case token.KwByteString:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.ByteString, Position: pos}
	case token.KwUSVString:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.USVString, Position: pos}
	case token.KwObject:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Object, Position: pos}
	case token.KwSymbol:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.Symbol, Position: pos}
	case token.KwSequence:
		p.nextToken()
		p.expect(token.LAngle)
		el := p.parseType()
		p.expect(token.RAngle)
		return &ast.SequenceType{Element: el, Position: pos}
	case token.KwFrozenArray:
		p.nextToken()
		p.expect(token.LAngle)
		el := p.parseType()
		p.expect(token.RAngle)
		return &ast.FrozenArrayType{Element: el, Position: pos}
	case token.KwObservableArray:
		p.nextToken()
		p.expect(token.LAngle)
		el := p.parseType()
		p.expect(token.RAngle)
		return &ast.ObservableArrayType{Element: el, Position: pos}
	case token.KwRecord:
		p.nextToken()
		p.expect(token.LAngle)
		key := p.parseType()
		p.expect(token.Comma)
		value := p.parseType()
		p.expect(token.RAngle)
		return &ast.RecordType{Key: key, Value: value, Position: pos}
	case token.KwPromise:
		p.nextToken()
		p.expect(token.LAngle)
		result := p.parseType()
		p.expect(token.RAngle)
		return &ast.PromiseType{Result: result, Position: pos}
	case token.Identifier:
		name := p.curToken.Lexeme
		p.nextToken()
		return &ast.TypeReference{Name: name, Position: pos}
	default:
		p.errorf(KindUnexpectedToken, pos, "expected a type, found %s", p.curToken)
		name := p.curToken.Lexeme
		p.nextToken()
		return &ast.TypeReference{Name: name, Position: pos}
	}
}

// parseUnsignedIntegerType parses the `unsigned` prefix forms: `unsigned
// short`, `unsigned long`, `unsigned long long`.
func (p *Parser) parseUnsignedIntegerType(pos token.Position) ast.Type {
	switch p.curToken.Kind {
	case token.KwShort:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.UnsignedShort, Position: pos}
	case token.KwLong:
		return p.parseLongType(pos, true)
	default:
		p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected 'short' or 'long' after 'unsigned', found %s", p.curToken)
		return &ast.PrimitiveType{Primitive: ast.UnsignedLong, Position: pos}
	}
}

// parseLongType parses `long` or `long long`, with or without the unsigned
// flag already consumed by the caller.
func (p *Parser) parseLongType(pos token.Position, unsigned bool) ast.Type {
	p.nextToken() // consume 'long'
	if p.curIs(token.KwLong) {
		p.nextToken()
		if unsigned {
			return &ast.PrimitiveType{Primitive: ast.UnsignedLongLong, Position: pos}
		}
		return &ast.PrimitiveType{Primitive: ast.LongLong, Position: pos}
	}
	if unsigned {
		return &ast.PrimitiveType{Primitive: ast.UnsignedLong, Position: pos}
	}
	return &ast.PrimitiveType{Primitive: ast.Long, Position: pos}
}

// parseUnrestrictedFloatType parses `unrestricted float` / `unrestricted
// double`.
func (p *Parser) parseUnrestrictedFloatType(pos token.Position) ast.Type {
	switch p.curToken.Kind {
	case token.KwFloat:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.UnrestrictedFloat, Position: pos}
	case token.KwDouble:
		p.nextToken()
		return &ast.PrimitiveType{Primitive: ast.UnrestrictedDouble, Position: pos}
	default:
		p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected 'float' or 'double' after 'unrestricted', found %s", p.curToken)
		return &ast.PrimitiveType{Primitive: ast.UnrestrictedDouble, Position: pos}
	}
}

// parseUnionType parses `(A or B or ...)`, flattening a nullable member's
// `?` onto that member's own NullableType rather than the union as a whole;
// a nullable union instead wraps the whole parsed UnionType (handled by the
// caller, parseType).
func (p *Parser) parseUnionType(pos token.Position) ast.Type {
	p.nextToken() // consume '('
	var members []ast.Type
	members = append(members, p.parseType())
	for p.curIs(token.KwOr) {
		p.nextToken()
		members = append(members, p.parseType())
	}
	p.expect(token.RParen)
	if len(members) < 2 {
		p.errorf(KindUnionTooFewMembers, pos, "union type must have at least two members")
	}
	return &ast.UnionType{Members: members, Position: pos}
}
