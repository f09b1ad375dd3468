package parser

import (
	"strings"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/token"
)

// A type annotation is a type in the host language, and Curly doesn't look inside it. We check
// that it's made of the sort of tokens a Go type is made of, and keep its source text, with
// any run of whitespace between tokens reduced to a single space.

var typeStarts = map[token.TokenType]bool{
	token.IDENT: true, token.ASTERISK: true, token.LBRACK: true, token.LPAREN: true, token.LT: true,
	token.DOT: true,
}

var typeTokens = map[token.TokenType]bool{
	token.IDENT: true, token.INT: true, token.ASTERISK: true, token.DOT: true, token.COMMA: true,
	token.LT: true, token.MINUS: true,
	token.LPAREN: true, token.RPAREN: true, token.LBRACK: true, token.RBRACK: true,
	token.LBRACE: true, token.RBRACE: true,
}

// Parses the type annotation made of the tokens from the current one up to, but not including,
// the token at end.
func (p *Parser) parseTypeAnnotation(end int) (*ast.TypeAnnotation, bool) {
	start := p.pos
	if end <= start || !typeStarts[p.tokens[start].Type] {
		p.Throw("parse/type", p.curToken())
		return nil, false
	}
	for i := start; i < end; i++ {
		if !typeTokens[p.tokens[i].Type] {
			p.Throw("parse/type", &p.tokens[i])
			return nil, false
		}
	}
	p.pos = end
	return &ast.TypeAnnotation{Token: p.tokens[start], Text: p.typeText(start, end)}, true
}

func (p *Parser) typeText(start, end int) string {
	var sb strings.Builder
	for i := start; i < end; i++ {
		tok := &p.tokens[i]
		if i > start {
			prev := &p.tokens[i-1]
			if prev.Line != tok.Line || prev.ChEnd < tok.ChStart {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(tok.Literal)
	}
	return sb.String()
}

// Where the body of a procedure starts, given that a return type comes first: the body is the
// last expression in the group. If only one expression is left, it can only be the type.
func (p *Parser) bodyStart() int {
	last := p.limit() - 1
	if last < p.pos {
		return p.limit()
	}
	if token.TokenTypeIsCloser(p.tokens[last].Type) {
		last = p.openers[last]
	}
	if last == p.pos {
		return p.limit()
	}
	return last
}

// The index of the first token of the given type in the current group, outside any inner
// groups, or the end of the group if there isn't one.
func (p *Parser) find(tokType token.TokenType) int {
	for i := p.pos; i < p.limit(); i++ {
		if p.tokens[i].Type == tokType {
			return i
		}
		if token.TokenTypeIsOpener(p.tokens[i].Type) {
			i = p.closers[i]
		}
	}
	return p.limit()
}
