package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/token"
)

type lexer struct {
	runes  *RuneSupplier
	tstart int // the value of char at the start of a token
	tpos   int // the offset in the code of the start of a token
	lineNo int
	Ers    err.Errors
	source string
}

func NewLexer(source, input string) *lexer {
	return &lexer{
		runes:  NewRuneSupplier([]rune(input)),
		Ers:    []*err.Error{},
		source: source,
		lineNo: 1,
	}
}

// Tokenize returns all the tokens of the input up to and including EOF, without the comments,
// together with any errors found on the way.
func Tokenize(source, input string) ([]token.Token, err.Errors) {
	l := NewLexer(source, input)
	result := []token.Token{}
	for {
		tok := l.NextToken()
		if tok.Type == token.COMMENT {
			continue
		}
		result = append(result, tok)
		if tok.Type == token.EOF {
			return result, l.Ers
		}
	}
}

func (l *lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.lineNo, l.tstart = l.runes.Position()
	l.tpos = l.runes.pos
	if l.runes.AtEnd() {
		return l.MakeToken(token.EOF, "EOF")
	}
	switch l.runes.CurrentRune() {
	case ':':
		return l.NewToken(token.COLON, ":")
	case '.':
		return l.NewToken(token.DOT, ".")
	case ',':
		return l.NewToken(token.COMMA, ",")
	case '{':
		return l.NewToken(token.LBRACE, "{")
	case '}':
		return l.NewToken(token.RBRACE, "}")
	case '[':
		return l.NewToken(token.LBRACK, "[")
	case ']':
		return l.NewToken(token.RBRACK, "]")
	case '(':
		return l.NewToken(token.LPAREN, "(")
	case ')':
		return l.NewToken(token.RPAREN, ")")
	// We may have a formatted string.
	case '"':
		if _, ok := l.runes.ReadFormattedString(); !ok {
			return l.Throw("lex/quote/a")
		}
		lit := l.runes.Slice(l.tpos, l.runes.pos+1)
		if bad, ok := badEscape(lit); ok {
			return l.Throw("lex/escape", bad)
		}
		return l.NewToken(token.STRING, lit)
	// Or a plaintext string.
	case '`':
		if _, ok := l.runes.ReadPlaintextString(); !ok {
			return l.Throw("lex/quote/b")
		}
		return l.NewToken(token.STRING, l.runes.Slice(l.tpos, l.runes.pos+1))
	case '/':
		if l.runes.PeekRune() == '/' {
			l.runes.Next()
			return l.NewToken(token.COMMENT, l.runes.ReadComment())
		}
		return l.NewToken(token.SLASH, "/")
	case '+':
		return l.NewToken(token.PLUS, "+")
	case '-':
		return l.NewToken(token.MINUS, "-")
	case '*':
		return l.NewToken(token.ASTERISK, "*")
	case '%':
		return l.NewToken(token.PERCENT, "%")
	case '^':
		return l.NewToken(token.CARET, "^")
	case '&':
		if l.runes.PeekRune() == '&' {
			l.runes.Next()
			return l.NewToken(token.AND, "&&")
		}
		return l.NewToken(token.AMPERSAND, "&")
	case '|':
		if l.runes.PeekRune() == '|' {
			l.runes.Next()
			return l.NewToken(token.OR, "||")
		}
		return l.NewToken(token.PIPE, "|")
	case '<':
		switch l.runes.PeekRune() {
		case '<':
			l.runes.Next()
			return l.NewToken(token.SHL, "<<")
		case '=':
			l.runes.Next()
			return l.NewToken(token.LT_EQ, "<=")
		}
		return l.NewToken(token.LT, "<")
	case '>':
		switch l.runes.PeekRune() {
		case '>':
			l.runes.Next()
			return l.NewToken(token.SHR, ">>")
		case '=':
			l.runes.Next()
			return l.NewToken(token.GT_EQ, ">=")
		}
		return l.NewToken(token.GT, ">")
	case '=':
		if l.runes.PeekRune() == '=' {
			l.runes.Next()
			return l.NewToken(token.EQ, "==")
		}
	case '!':
		if l.runes.PeekRune() == '=' {
			l.runes.Next()
			return l.NewToken(token.NOT_EQ, "!=")
		}
	}

	// We may have an integer literal, in any of the bases Go allows. Anything that fits the
	// syntax but not an int64 is left for the parser to complain about.
	if IsDigit(l.runes.CurrentRune()) {
		numString := l.runes.ReadNumber()
		if _, e := strconv.ParseInt(numString, 0, 64); e == nil || errors.Is(e, strconv.ErrRange) {
			return l.NewToken(token.INT, numString)
		}
		return l.Throw("lex/num", numString)
	}

	// We may have an identifier, keyword, or boolean.
	if IsLegalStart(l.runes.CurrentRune()) {
		lit := l.runes.ReadIdentifier()
		return l.NewToken(token.LookupIdent(lit), lit)
	}

	// Or we have nothing recognizable.
	return l.Throw("lex/ill", l.runes.CurrentRune())
}

func (l *lexer) skipWhitespace() {
	for !l.runes.AtEnd() && IsWhitespace(l.runes.CurrentRune()) {
		l.runes.Next()
	}
}

// Reads the digits, letters, and underscores making up a numeric literal. Anything that
// isn't a valid number, e.g. '12ab', is read in full so that it can be reported as such.
func (runes *RuneSupplier) ReadNumber() string {
	result := string(runes.CurrentRune())
	for IsDigit(runes.PeekRune()) || IsLetter(runes.PeekRune()) || IsUnderscore(runes.PeekRune()) {
		runes.Next()
		result = result + string(runes.CurrentRune())
	}
	return result
}

func (runes *RuneSupplier) ReadComment() string {
	result := ""
	for !(runes.PeekRune() == '\n' || runes.PeekRune() == 0) {
		result = result + string(runes.PeekRune())
		runes.Next()
	}
	return result
}

func (runes *RuneSupplier) ReadFormattedString() (string, bool) {
	escape := false
	result := ""
	for {
		runes.Next()
		if (runes.CurrentRune() == '"' && !escape) || runes.AtEnd() || runes.CurrentRune() == 13 || runes.CurrentRune() == 10 {
			break
		}
		if runes.CurrentRune() == '\\' && !escape {
			escape = true
			continue
		}

		charToAdd := runes.CurrentRune()

		if escape {
			escape = false
			switch runes.CurrentRune() {
			case 'n':
				charToAdd = '\n'
			case 'r':
				charToAdd = '\r'
			case 't':
				charToAdd = '\t'
			case '"':
				charToAdd = '"'
			case '\\':
				charToAdd = '\\'
			case 'e':
				charToAdd = '\033'
			}
		}
		result = result + string(charToAdd)
	}
	if runes.CurrentRune() == 13 || runes.AtEnd() || runes.CurrentRune() == 10 {
		return result, false
	}
	return result, true
}

func (runes *RuneSupplier) ReadPlaintextString() (string, bool) {
	result := ""
	for {
		runes.Next()
		if runes.CurrentRune() == '`' || runes.AtEnd() || runes.CurrentRune() == 13 || runes.CurrentRune() == 10 {
			break
		}
		result = result + string(runes.CurrentRune())
	}
	if runes.CurrentRune() == 13 || runes.AtEnd() || runes.CurrentRune() == 10 {
		return result, false
	}
	return result, true
}

func (runes *RuneSupplier) ReadIdentifier() string {
	result := string(runes.CurrentRune()) // i.e. the character that suggested this was an identifier.
	for IsLetter(runes.PeekRune()) || IsDigit(runes.PeekRune()) || IsUnderscore(runes.PeekRune()) {
		runes.Next()
		result = result + string(runes.CurrentRune())
	}
	return result
}

// The characters which may follow a backslash in a formatted string.
const escapes = `nrt"\e`

// Returns the first escape sequence in the literal which ReadFormattedString wouldn't understand.
func badEscape(lit string) (string, bool) {
	runes := []rune(lit)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != '\\' {
			continue
		}
		if !strings.ContainsRune(escapes, runes[i+1]) {
			return string(runes[i : i+2]), true
		}
		i++
	}
	return "", false
}

// Unquote decodes the source text of a string literal, as kept in the literal of a STRING token.
func Unquote(lit string) (string, bool) {
	runes := []rune(lit)
	if len(runes) < 2 {
		return "", false
	}
	rs := NewRuneSupplier(runes)
	switch runes[0] {
	case '"':
		return rs.ReadFormattedString()
	case '`':
		return rs.ReadPlaintextString()
	}
	return "", false
}

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func IsUnderscore(ch rune) bool {
	return ch == '_'
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func IsLegalStart(ch rune) bool {
	return IsLetter(ch) || IsUnderscore(ch)
}

func (l *lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	l.runes.Next()
	return l.MakeToken(tokenType, st)
}

func (l *lexer) MakeToken(tokenType token.TokenType, st string) token.Token {
	if settings.SHOW_LEXER {
		logging.Debugf("lexer: %s %s", tokenType, st)
	}
	_, chNo := l.runes.Position()
	return token.Token{Type: tokenType, Literal: st, Source: l.source, Line: l.lineNo, ChStart: l.tstart, ChEnd: chNo}
}

// Makes an ILLEGAL token covering the current character, and records the error.
func (l *lexer) Throw(errorID string, args ...any) token.Token {
	tok := l.NewToken(token.ILLEGAL, errorID)
	l.Ers = err.Throw(errorID, l.Ers, &tok, args...)
	return tok
}
