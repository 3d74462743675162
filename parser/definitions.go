package parser

import (
	"github.com/go-webidl/webidl/ast"
	"github.com/go-webidl/webidl/token"
)

// parseInterfaceOrMixin parses the body following `interface`, dispatching
// to the mixin variant when the next keyword is `mixin`.
func (p *Parser) parseInterfaceOrMixin(pos token.Position, attrs []*ast.ExtendedAttribute, partial bool) ast.Definition {
	p.nextToken() // consume 'interface'

	if p.curIs(token.KwMixin) {
		p.nextToken()
		return p.parseInterfaceMixinBody(pos, attrs, partial)
	}
	return p.parseInterfaceBody(pos, attrs, partial)
}

func (p *Parser) parseInterfaceBody(pos token.Position, attrs []*ast.ExtendedAttribute, partial bool) *ast.Interface {
	name := p.expectIdentifier("interface name")

	var parent string
	if p.curIs(token.Colon) {
		p.nextToken()
		parent = p.expectIdentifier("parent interface name").Lexeme
	}

	members := p.parseInterfaceMemberList()

	return &ast.Interface{
		Name: name, Parent: parent, Members: members,
		ExtendedAttributes: attrs, Partial: partial, Position: pos,
	}
}

func (p *Parser) parseInterfaceMixinBody(pos token.Position, attrs []*ast.ExtendedAttribute, partial bool) *ast.InterfaceMixin {
	name := p.expectIdentifier("mixin name")
	members := p.parseInterfaceMemberList()
	return &ast.InterfaceMixin{
		Name: name, Members: members, ExtendedAttributes: attrs,
		Partial: partial, Position: pos,
	}
}

func (p *Parser) parseCallbackOrCallbackInterface(pos token.Position, attrs []*ast.ExtendedAttribute) ast.Definition {
	p.nextToken() // consume 'callback'

	if p.curIs(token.KwInterface) {
		p.nextToken()
		name := p.expectIdentifier("callback interface name")
		members := p.parseInterfaceMemberList()
		return &ast.CallbackInterface{Name: name, Members: members, ExtendedAttributes: attrs, Position: pos}
	}

	name := p.expectIdentifier("callback name")
	p.expect(token.Equals)
	returnType := p.parseType()
	var args []*ast.Argument
	if p.curIs(token.LParen) {
		args = p.parseArgumentList()
	} else {
		p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected '(' to begin callback argument list, found %s", p.curToken)
	}
	p.expect(token.Semicolon)
	return &ast.Callback{Name: name, ReturnType: returnType, Arguments: args, ExtendedAttributes: attrs, Position: pos}
}

func (p *Parser) parseNamespace(pos token.Position, attrs []*ast.ExtendedAttribute, partial bool) ast.Definition {
	p.nextToken() // consume 'namespace'
	name := p.expectIdentifier("namespace name")
	members := p.parseNamespaceMemberList()
	return &ast.Namespace{Name: name, Members: members, ExtendedAttributes: attrs, Partial: partial, Position: pos}
}

func (p *Parser) parseDictionary(pos token.Position, attrs []*ast.ExtendedAttribute, partial bool) ast.Definition {
	p.nextToken() // consume 'dictionary'
	name := p.expectIdentifier("dictionary name")

	var parent string
	if p.curIs(token.Colon) {
		p.nextToken()
		parent = p.expectIdentifier("parent dictionary name").Lexeme
	}

	if !p.expect(token.LBrace) {
		return &ast.Dictionary{Name: name, Parent: parent, ExtendedAttributes: attrs, Partial: partial, Position: pos}
	}

	var members []*ast.DictionaryMember
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		members = append(members, p.parseDictionaryMember())
	}
	p.expect(token.RBrace)
	p.expect(token.Semicolon)

	return &ast.Dictionary{
		Name: name, Parent: parent, Members: members,
		ExtendedAttributes: attrs, Partial: partial, Position: pos,
	}
}

func (p *Parser) parseDictionaryMember() *ast.DictionaryMember {
	pos := p.curToken.Pos
	memberAttrs := p.parseExtendedAttributesOpt()

	required := false
	if p.curIs(token.KwRequired) {
		required = true
		p.nextToken()
	}

	typ := p.parseType()
	name := p.expectIdentifier("dictionary member name")

	var def ast.Value
	if p.curIs(token.Equals) {
		p.nextToken()
		def = p.parseDefaultValue()
	}
	p.expect(token.Semicolon)

	return &ast.DictionaryMember{
		Name: name, Type: typ, Required: required, DefaultValue: def,
		ExtendedAttributes: memberAttrs, Position: pos,
	}
}

func (p *Parser) parseEnum(pos token.Position, attrs []*ast.ExtendedAttribute) ast.Definition {
	p.nextToken() // consume 'enum'
	name := p.expectIdentifier("enum name")

	if !p.expect(token.LBrace) {
		return &ast.Enum{Name: name, ExtendedAttributes: attrs, Position: pos}
	}

	seen := make(map[string]bool)
	var values []string
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		if !p.curIs(token.StringLiteral) {
			p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected a string literal enum value, found %s", p.curToken)
			p.nextToken()
		} else {
			v := p.curToken.Lexeme
			if seen[v] {
				p.errorf(KindDuplicateEnumValue, p.curToken.Pos, "duplicate enum value %q", v)
			}
			seen[v] = true
			values = append(values, v)
			p.nextToken()
		}
		if p.curIs(token.Comma) {
			p.nextToken()
		}
	}
	p.expect(token.RBrace)
	p.expect(token.Semicolon)

	if len(values) == 0 {
		p.errorf(KindEmptyEnum, pos, "enum %q must declare at least one value", name.Lexeme)
	}

	return &ast.Enum{Name: name, Values: values, ExtendedAttributes: attrs, Position: pos}
}

// parseTypedef parses `typedef [attrs] Type Name;`. The type-level extended
// attribute block (e.g. `typedef [EnforceRange] long ClampedLong;`) has
// nowhere of its own to live in this AST, since Typedef carries a single
// ExtendedAttributes list, so it is merged into that list alongside any
// attributes preceding `typedef` itself, rather than silently dropped.
func (p *Parser) parseTypedef(pos token.Position, attrs []*ast.ExtendedAttribute) ast.Definition {
	p.nextToken() // consume 'typedef'
	typeAttrs := p.parseExtendedAttributesOpt()
	typ := p.parseType()
	attrs = append(attrs, typeAttrs...)
	name := p.expectIdentifier("typedef name")
	p.expect(token.Semicolon)
	return &ast.Typedef{Name: name, Type: typ, ExtendedAttributes: attrs, Position: pos}
}

// expectIdentifier consumes curToken as a name. Only an Identifier token is
// accepted; a keyword in this position is reported as an UnexpectedToken
// naming what was expected. (Argument and extended-attribute names, which
// do accept keywords, are parsed by their own code paths.)
func (p *Parser) expectIdentifier(what string) token.Token {
	if p.curIs(token.Identifier) {
		t := p.curToken
		p.nextToken()
		return t
	}
	p.errorf(KindUnexpectedToken, p.curToken.Pos, "expected %s, found %s", what, p.curToken)
	t := p.curToken
	if !p.curIs(token.EOF) {
		p.nextToken()
	}
	return t
}
