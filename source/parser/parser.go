package parser

import (
	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/lexer"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/token"
)

// The parser works on a slice of tokens ending in EOF. Every bracket is matched up with its
// partner before parsing begins, so that each rule works within the bounds of the group it
// is parsing and can tell when it has used the group up.
//
// Where the grammar has zero or more of something, the parser tries to parse one more,
// and if that fails, it winds the position and the error list back to where they were
// before the attempt.
type Parser struct {
	Errors err.Errors

	tokens      []token.Token
	pos         int
	closers     []int      // For each opening bracket, the index of the bracket that closes it.
	openers     []int      // And vice versa.
	ends        []int      // The indices of the closing brackets of the groups we're inside.
	lastFailure *err.Error // The error that stopped the last repetition in the current group.
}

func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		eof := token.Token{Type: token.EOF, Literal: "EOF"}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof.Line, eof.ChStart, eof.ChEnd, eof.Source = last.Line, last.ChEnd, last.ChEnd, last.Source
		}
		tokens = append(tokens, eof)
	}
	return &Parser{
		Errors:  []*err.Error{},
		tokens:  tokens,
		closers: make([]int, len(tokens)),
		openers: make([]int, len(tokens)),
	}
}

// Parse turns the tokens of one expression into an AST. If anything goes wrong, the node
// returned is nil and there is at least one error.
func Parse(tokens []token.Token) (ast.Node, err.Errors) {
	p := New(tokens)
	node := p.ParseExpression()
	if p.ErrorsExist() {
		return nil, p.Errors
	}
	if settings.SHOW_PARSER {
		logging.Debugf("parser: %s", node.String())
	}
	return node, nil
}

// ParseLine lexes and parses the input. If there are lexer errors, it doesn't try to parse.
func ParseLine(source, input string) (ast.Node, err.Errors) {
	tokens, errs := lexer.Tokenize(source, input)
	if len(errs) > 0 {
		return nil, errs
	}
	return Parse(tokens)
}

// ParseExpression parses exactly one expression, which must use up all the tokens.
func (p *Parser) ParseExpression() ast.Node {
	if !p.matchBrackets() {
		return nil
	}
	node := p.parseExpression()
	if node == nil {
		return nil
	}
	if !p.atLimit() {
		p.Throw("parse/trailing", p.curToken())
		return nil
	}
	return node
}

// Finds the partner of every bracket, and complains if there isn't one.
func (p *Parser) matchBrackets() bool {
	stack := []int{}
	for i := range p.tokens {
		tok := &p.tokens[i]
		switch {
		case token.TokenTypeIsOpener(tok.Type):
			stack = append(stack, i)
		case token.TokenTypeIsCloser(tok.Type):
			if len(stack) == 0 {
				p.Throw("parse/closer", tok)
				return false
			}
			opener := stack[len(stack)-1]
			if token.Closer(p.tokens[opener].Type) != tok.Type {
				p.Throw("parse/match", tok, p.tokens[opener].Literal)
				return false
			}
			p.closers[opener] = i
			p.openers[i] = opener
			stack = stack[:len(stack)-1]
		case tok.Type == token.EOF:
			if len(stack) > 0 {
				p.Throw("parse/close", &p.tokens[stack[len(stack)-1]])
				return false
			}
			return true
		}
	}
	return true
}

// The index of the token which ends the current group: its closing bracket, or EOF.
func (p *Parser) limit() int {
	if len(p.ends) == 0 {
		return len(p.tokens) - 1
	}
	return p.ends[len(p.ends)-1]
}

func (p *Parser) atLimit() bool {
	return p.pos >= p.limit()
}

// At the end of a group, this is the closing bracket.
func (p *Parser) curToken() *token.Token {
	return &p.tokens[min(p.pos, p.limit())]
}

// Moves inside the group opened by the current token. It returns the last failure of the
// enclosing group, which exitGroup will need to restore.
func (p *Parser) enterGroup() *err.Error {
	p.ends = append(p.ends, p.closers[p.pos])
	p.pos++
	saved := p.lastFailure
	p.lastFailure = nil
	return saved
}

// Moves past the end of the current group. If ok is true, i.e. we've parsed what we wanted,
// then the group must have been used up: if not, we throw the error that stopped the last
// repetition in the group, if there was one, or complain about the first unused token.
func (p *Parser) exitGroup(saved *err.Error, ok bool) bool {
	if ok && !p.atLimit() {
		if p.lastFailure != nil {
			p.Errors = append(p.Errors, p.lastFailure)
		} else {
			p.Throw("parse/extra", p.curToken())
		}
		ok = false
	}
	p.pos = p.limit() + 1
	p.ends = p.ends[:len(p.ends)-1]
	p.lastFailure = saved
	return ok
}

type mark struct {
	pos, errors, ends int
}

func (p *Parser) mark() mark {
	return mark{p.pos, len(p.Errors), len(p.ends)}
}

func (p *Parser) reset(m mark) {
	p.pos = m.pos
	p.Errors = p.Errors[:m.errors]
	p.ends = p.ends[:m.ends]
}

// Parses items until one fails or the group runs out. The failed attempt is undone, but its
// first error is kept in case the group turns out not to be used up.
func zeroOrMore[T any](p *Parser, item func() (T, bool)) []T {
	result := []T{}
	for !p.atLimit() {
		m := p.mark()
		next, ok := item()
		if !ok {
			if len(p.Errors) > m.errors {
				p.lastFailure = p.Errors[m.errors]
			}
			p.reset(m)
			break
		}
		result = append(result, next)
	}
	return result
}

// Consumes the current token if it's of the given type, otherwise throws the error.
func (p *Parser) expect(tokType token.TokenType, errorID string, args ...any) (*token.Token, bool) {
	tok := p.curToken()
	if p.atLimit() || tok.Type != tokType {
		p.Throw(errorID, tok, args...)
		return nil, false
	}
	p.pos++
	return tok, true
}

func (p *Parser) Throw(errorID string, tok *token.Token, args ...any) {
	p.Errors = err.Throw(errorID, p.Errors, tok, args...)
}

func (p *Parser) ErrorsExist() bool {
	return len(p.Errors) > 0
}

func (p *Parser) ReturnErrors() string {
	return err.GetList(p.Errors)
}
