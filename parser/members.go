package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/token"
)

// parseInterfaceMemberList parses `{ member... };` for interfaces, mixins,
// and callback interfaces.
func (p *Parser) parseInterfaceMemberList() []ast.InterfaceMember {
	if !p.expect(token.LBrace) {
		return nil
	}
	var members []ast.InterfaceMember
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if m := p.parseInterfaceMember(); m != nil {
			members = append(members, m)
		}
	}
	p.expect(token.RBrace)
	p.expect(token.Semicolon)
	return members
}

// parseNamespaceMemberList is parseInterfaceMemberList restricted to the
// members a namespace body may contain: regular operations and readonly
// attributes (spec.md §3.2). Any other member is a fatal UnexpectedToken
// error, so Parse returns no tree.
func (p *Parser) parseNamespaceMemberList() []ast.InterfaceMember {
	members := p.parseInterfaceMemberList()
	for _, m := range members {
		switch mv := m.(type) {
		case *ast.Operation:
			// fine
		case *ast.Attribute:
			if !mv.Readonly {
				p.errorf(KindUnexpectedToken, mv.Pos(), "namespace attributes must be readonly")
			}
		default:
			p.errorf(KindUnexpectedToken, m.Pos(), "namespace bodies may only contain operations and readonly attributes")
		}
	}
	return members
}

// parseInterfaceMember parses one member production: attribute, const,
// constructor, stringifier, iterable/async iterable, maplike, setlike, or
// a regular/special operation.
func (p *Parser) parseInterfaceMember() ast.InterfaceMember {
	pos := p.curToken.Pos
	attrs := p.parseExtendedAttributesOpt()

	static := false
	if p.curIs(token.KwStatic) {
		static = true
		p.nextToken()
	}

	switch p.curToken.Kind {
	case token.KwConst:
		return p.parseConst(pos, attrs)
	case token.KwConstructor:
		if static {
			p.errorf(KindUnexpectedToken, pos, "constructor may not be marked static")
		}
		p.nextToken()
		args := p.parseArgumentList()
		p.expect(token.Semicolon)
		return &ast.Constructor{Arguments: args, ExtendedAttributes: attrs, Position: pos}
	case token.KwStringifier:
		return p.parseStringifierOrPrefixedMember(pos, attrs, static)
	case token.KwReadonly:
		return p.parseAttributeOrMaplikeSetlike(pos, attrs, static, false)
	case token.KwInherit:
		p.nextToken()
		ro := false
		if p.curIs(token.KwReadonly) {
			ro = true
			p.nextToken()
		}
		p.expect(token.KwAttribute)
		return p.parseAttributeTail(pos, attrs, static, ro, true)
	case token.KwAttribute:
		p.nextToken()
		return p.parseAttributeTail(pos, attrs, static, false, false)
	case token.KwGetter:
		p.nextToken()
		return p.parseSpecialOperation(pos, attrs, ast.SpecialGetter)
	case token.KwSetter:
		p.nextToken()
		return p.parseSpecialOperation(pos, attrs, ast.SpecialSetter)
	case token.KwDeleter:
		p.nextToken()
		return p.parseSpecialOperation(pos, attrs, ast.SpecialDeleter)
	case token.KwIterable:
		return p.parseIterable(pos)
	case token.KwAsync:
		p.nextToken()
		p.expect(token.KwIterable)
		return p.parseAsyncIterable(pos)
	case token.KwMaplike:
		return p.parseMaplike(pos, false)
	case token.KwSetlike:
		return p.parseSetlike(pos, false)
	default:
		return p.parseRegularOperation(pos, attrs, static)
	}
}

// parseAttributeOrMaplikeSetlike resolves the ambiguity after `readonly`:
// it precedes either `attribute`, `maplike<..>`, or `setlike<..>`.
func (p *Parser) parseAttributeOrMaplikeSetlike(pos token.Position, attrs []*ast.ExtendedAttribute, static, inherit bool) ast.InterfaceMember {
	p.nextToken() // consume 'readonly'
	switch p.curToken.Kind {
	case token.KwAttribute:
		p.nextToken()
		return p.parseAttributeTail(pos, attrs, static, true, inherit)
	case token.KwMaplike:
		return p.parseMaplike(pos, true)
	case token.KwSetlike:
		return p.parseSetlike(pos, true)
	default:
		p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected 'attribute', 'maplike', or 'setlike' after 'readonly', found %s", p.curToken)
		return p.parseRegularOperation(pos, attrs, static)
	}
}

func (p *Parser) parseAttributeTail(pos token.Position, attrs []*ast.ExtendedAttribute, static, readonly, inherit bool) *ast.Attribute {
	typ := p.parseType()
	name := p.expectIdentifier("attribute name")
	p.expect(token.Semicolon)
	return &ast.Attribute{
		Name: name, Type: typ, Readonly: readonly, Static: static, Inherit: inherit,
		ExtendedAttributes: attrs, Position: pos,
	}
}

// parseStringifierOrPrefixedMember handles `stringifier;` (bare),
// `stringifier attribute T name;`, and `stringifier T name(args);`.
func (p *Parser) parseStringifierOrPrefixedMember(pos token.Position, attrs []*ast.ExtendedAttribute, static bool) ast.InterfaceMember {
	p.nextToken() // consume 'stringifier'
	if p.curIs(token.Semicolon) {
		p.nextToken()
		return &ast.Stringifier{Form: ast.StringifierBare, Position: pos}
	}
	if p.curIs(token.KwAttribute) {
		p.nextToken()
		a := p.parseAttributeTail(pos, attrs, static, false, false)
		a.Stringifier = true
		return a
	}
	op := p.parseRegularOperation(pos, attrs, static)
	if o, ok := op.(*ast.Operation); ok {
		o.SpecialForm = ast.SpecialStringifier
	}
	return op
}

func (p *Parser) parseConst(pos token.Position, attrs []*ast.ExtendedAttribute) *ast.Const {
	p.nextToken() // consume 'const'
	typ := p.parseType()
	name := p.expectIdentifier("const name")
	p.expect(token.Equals)
	value := p.parseDefaultValue()
	p.expect(token.Semicolon)
	return &ast.Const{Name: name, Type: typ, Value: value, ExtendedAttributes: attrs, Position: pos}
}

// parseSpecialOperation parses the body after a getter/setter/deleter
// keyword: an optional return type already expected to be first, then an
// anonymous or named operation signature.
func (p *Parser) parseSpecialOperation(pos token.Position, attrs []*ast.ExtendedAttribute, special ast.Special) *ast.Operation {
	returnType := p.parseType()
	name := ""
	if p.curIs(token.Identifier) {
		name = p.curToken.Lexeme
		p.nextToken()
	}
	args := p.parseArgumentList()
	p.expect(token.Semicolon)
	return &ast.Operation{
		Name: name, ReturnType: returnType, Arguments: args, SpecialForm: special,
		ExtendedAttributes: attrs, Position: pos,
	}
}

func (p *Parser) parseRegularOperation(pos token.Position, attrs []*ast.ExtendedAttribute, static bool) ast.InterfaceMember {
	returnType := p.parseType()
	name := ""
	if p.curIs(token.Identifier) {
		name = p.curToken.Lexeme
		p.nextToken()
	}
	if !p.curIs(token.LParen) {
		p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected '(' to begin operation argument list, found %s", p.curToken)
		return &ast.Operation{Name: name, ReturnType: returnType, Static: static, ExtendedAttributes: attrs, Position: pos}
	}
	args := p.parseArgumentList()
	p.expect(token.Semicolon)
	return &ast.Operation{
		Name: name, ReturnType: returnType, Arguments: args, Static: static,
		ExtendedAttributes: attrs, Position: pos,
	}
}

func (p *Parser) parseIterable(pos token.Position) *ast.Iterable {
	p.nextToken() // consume 'iterable'
	p.expect(token.LAngle)
	first := p.parseType()
	var key, value ast.Type
	if p.curIs(token.Comma) {
		p.nextToken()
		key = first
		value = p.parseType()
	} else {
		value = first
	}
	p.expect(token.RAngle)
	p.expect(token.Semicolon)
	return &ast.Iterable{KeyType: key, ValueType: value, Position: pos}
}

func (p *Parser) parseAsyncIterable(pos token.Position) *ast.AsyncIterable {
	p.expect(token.LAngle)
	first := p.parseType()
	var key, value ast.Type
	if p.curIs(token.Comma) {
		p.nextToken()
		key = first
		value = p.parseType()
	} else {
		value = first
	}
	p.expect(token.RAngle)
	var args []*ast.Argument
	if p.curIs(token.LParen) {
		args = p.parseArgumentList()
	}
	p.expect(token.Semicolon)
	return &ast.AsyncIterable{KeyType: key, ValueType: value, Arguments: args, Position: pos}
}

func (p *Parser) parseMaplike(pos token.Position, readonly bool) *ast.Maplike {
	p.nextToken() // consume 'maplike'
	p.expect(token.LAngle)
	key := p.parseType()
	p.expect(token.Comma)
	value := p.parseType()
	p.expect(token.RAngle)
	p.expect(token.Semicolon)
	return &ast.Maplike{KeyType: key, ValueType: value, Readonly: readonly, Position: pos}
}

func (p *Parser) parseSetlike(pos token.Position, readonly bool) *ast.Setlike {
	p.nextToken() // consume 'setlike'
	p.expect(token.LAngle)
	value := p.parseType()
	p.expect(token.RAngle)
	p.expect(token.Semicolon)
	return &ast.Setlike{ValueType: value, Readonly: readonly, Position: pos}
}
