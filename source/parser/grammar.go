package parser

import (
	"strconv"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/lexer"
	"github.com/tim-hardcastle/curly/source/token"
)

// An expression is either a group in braces or an atom.
func (p *Parser) parseExpression() ast.Node {
	if p.atLimit() {
		p.Throw("parse/empty", p.curToken())
		return nil
	}
	if p.curToken().Type == token.LBRACE {
		return p.parseBraces()
	}
	return p.parseAtom()
}

func (p *Parser) parseBraces() ast.Node {
	open := p.curToken()
	saved := p.enterGroup()
	var result ast.Node
	if p.atLimit() {
		p.Throw("parse/empty", p.curToken())
	} else {
		switch p.curToken().Type {
		case token.IF:
			result = p.parseConditional()
		case token.PROC:
			result = p.parseProcedure()
		case token.DECLARE:
			result = p.parseDeclare()
		default:
			result = p.parseApplication(open)
		}
	}
	if !p.exitGroup(saved, result != nil) {
		return nil
	}
	return result
}

func (p *Parser) parseAtom() ast.Node {
	tok := p.curToken()
	switch tok.Type {
	case token.STRING:
		value, ok := lexer.Unquote(tok.Literal)
		if !ok {
			p.Throw("parse/atom", tok)
			return nil
		}
		p.pos++
		return &ast.StringLiteral{Token: *tok, Value: value}
	case token.INT:
		value, e := strconv.ParseInt(tok.Literal, 0, 64)
		if e != nil {
			p.Throw("parse/int", tok)
			return nil
		}
		p.pos++
		return &ast.IntegerLiteral{Token: *tok, Value: int(value)}
	case token.TRUE, token.FALSE:
		p.pos++
		return &ast.BooleanLiteral{Token: *tok, Value: tok.Type == token.TRUE}
	case token.IDENT:
		p.pos++
		return &ast.Identifier{Token: *tok, Value: tok.Literal}
	}
	if op, ok := p.parseOperator(); ok {
		return op
	}
	p.Throw("parse/atom", tok)
	return nil
}

// {if guard then other}
func (p *Parser) parseConditional() ast.Node {
	ifTok, ok := p.expect(token.IF, "parse/if")
	if !ok {
		return nil
	}
	guard := p.parseExpression()
	if guard == nil {
		return nil
	}
	then := p.parseExpression()
	if then == nil {
		return nil
	}
	other := p.parseExpression()
	if other == nil {
		return nil
	}
	return &ast.Conditional{Token: *ifTok, Guard: guard, Then: then, Other: other}
}

// {proc (params) : returnType body}, where the return type is optional.
func (p *Parser) parseProcedure() ast.Node {
	procTok, ok := p.expect(token.PROC, "parse/expected", "proc")
	if !ok {
		return nil
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}
	returnType, ok := p.parseOptionalAnnotation(p.bodyStart)
	if !ok {
		return nil
	}
	body := p.parseExpression()
	if body == nil {
		return nil
	}
	return &ast.Procedure{Token: *procTok, Parameters: params, Body: body, ReturnType: returnType}
}

func (p *Parser) parseParameterList() ([]*ast.Identifier, bool) {
	if p.atLimit() || p.curToken().Type != token.LPAREN {
		p.Throw("parse/expected", p.curToken(), "(")
		return nil, false
	}
	saved := p.enterGroup()
	params := zeroOrMore(p, p.parseName)
	return params, p.exitGroup(saved, true)
}

// A name is either a bare identifier or an annotated one, [name : type].
func (p *Parser) parseName() (*ast.Identifier, bool) {
	tok := p.curToken()
	switch {
	case p.atLimit():
	case tok.Type == token.IDENT:
		p.pos++
		return &ast.Identifier{Token: *tok, Value: tok.Literal}, true
	case tok.Type == token.LBRACK:
		return p.parseAnnotatedName()
	}
	p.Throw("parse/ident", tok)
	return nil, false
}

func (p *Parser) parseAnnotatedName() (*ast.Identifier, bool) {
	saved := p.enterGroup()
	result, ok := func() (*ast.Identifier, bool) {
		tok, ok := p.expect(token.IDENT, "parse/ident")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.COLON, "parse/colon"); !ok {
			return nil, false
		}
		annotation, ok := p.parseTypeAnnotation(p.limit())
		if !ok {
			return nil, false
		}
		return &ast.Identifier{Token: *tok, Value: tok.Literal, TypeAnnotation: annotation}, true
	}()
	if !p.exitGroup(saved, ok) {
		return nil, false
	}
	return result, true
}

// A colon followed by a type which runs up to the index given by end, or nothing.
func (p *Parser) parseOptionalAnnotation(end func() int) (*ast.TypeAnnotation, bool) {
	if p.atLimit() || p.curToken().Type != token.COLON {
		return nil, true
	}
	p.pos++
	return p.parseTypeAnnotation(end())
}

// Exists only while we parse a declare expression.
type clause struct {
	name    *ast.Identifier
	binding ast.Node
}

// {declare ([name binding] ...) : returnType in body}, where the return type is optional.
// This is sugar for applying a procedure with the names as its parameters to the bindings.
func (p *Parser) parseDeclare() ast.Node {
	declareTok, ok := p.expect(token.DECLARE, "parse/expected", "declare")
	if !ok {
		return nil
	}
	clauses, ok := p.parseClauseList()
	if !ok {
		return nil
	}
	returnType, ok := p.parseOptionalAnnotation(func() int { return p.find(token.IN) })
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.IN, "parse/declare/in"); !ok {
		return nil
	}
	body := p.parseExpression()
	if body == nil {
		return nil
	}
	params := make([]*ast.Identifier, 0, len(clauses))
	args := make([]ast.Node, 0, len(clauses))
	for _, c := range clauses {
		params = append(params, c.name)
		args = append(args, c.binding)
	}
	proc := &ast.Procedure{Token: *declareTok, Parameters: params, Body: body, ReturnType: returnType}
	return &ast.Application{Token: *declareTok, Callee: proc, Args: args}
}

func (p *Parser) parseClauseList() ([]clause, bool) {
	if p.atLimit() || p.curToken().Type != token.LPAREN {
		p.Throw("parse/expected", p.curToken(), "(")
		return nil, false
	}
	saved := p.enterGroup()
	clauses := zeroOrMore(p, p.parseClause)
	return clauses, p.exitGroup(saved, true)
}

// [name binding]
func (p *Parser) parseClause() (clause, bool) {
	if p.atLimit() || p.curToken().Type != token.LBRACK {
		p.Throw("parse/clause/brackets", p.curToken())
		return clause{}, false
	}
	saved := p.enterGroup()
	result, ok := func() (clause, bool) {
		name, ok := p.parseName()
		if !ok {
			return clause{}, false
		}
		binding := p.parseExpression()
		if binding == nil {
			return clause{}, false
		}
		return clause{name: name, binding: binding}, true
	}()
	if !p.exitGroup(saved, ok) {
		return clause{}, false
	}
	return result, true
}

// {callee arg ...}
func (p *Parser) parseApplication(open *token.Token) ast.Node {
	callee := p.parseExpression()
	if callee == nil {
		return nil
	}
	args := zeroOrMore(p, func() (ast.Node, bool) {
		arg := p.parseExpression()
		return arg, arg != nil
	})
	return &ast.Application{Token: *open, Callee: callee, Args: args}
}
