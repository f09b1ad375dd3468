package parser

import (
	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/token"
)

// Reports whether the next token in the current group is one of the binary operators.
// Nothing is consumed.
func (p *Parser) peekOperator() bool {
	return !p.atLimit() && token.IsBinaryOperator(p.curToken().Type)
}

// Consumes an operator token, if that's what comes next.
func (p *Parser) parseOperator() (*ast.Operator, bool) {
	if !p.peekOperator() {
		return nil, false
	}
	tok := p.curToken()
	p.pos++
	return &ast.Operator{Token: *tok, Operator: tok.Literal}, true
}
