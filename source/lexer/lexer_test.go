package lexer

import (
	"strings"
	"testing"

	"github.com/tim-hardcastle/curly/source/token"
)

func TestBrackets(t *testing.T) {
	input := `{proc ([a : int] b) : []string {f a}}`
	items := []testItem{
		{token.LBRACE, "{", 1},
		{token.PROC, "proc", 1},
		{token.LPAREN, "(", 1},
		{token.LBRACK, "[", 1},
		{token.IDENT, "a", 1},
		{token.COLON, ":", 1},
		{token.IDENT, "int", 1},
		{token.RBRACK, "]", 1},
		{token.IDENT, "b", 1},
		{token.RPAREN, ")", 1},
		{token.COLON, ":", 1},
		{token.LBRACK, "[", 1},
		{token.RBRACK, "]", 1},
		{token.IDENT, "string", 1},
		{token.LBRACE, "{", 1},
		{token.IDENT, "f", 1},
		{token.IDENT, "a", 1},
		{token.RBRACE, "}", 1},
		{token.RBRACE, "}", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestTypePunctuation(t *testing.T) {
	input := `[f : func(time.Duration, ...int)]`
	items := []testItem{
		{token.LBRACK, "[", 1},
		{token.IDENT, "f", 1},
		{token.COLON, ":", 1},
		{token.IDENT, "func", 1},
		{token.LPAREN, "(", 1},
		{token.IDENT, "time", 1},
		{token.DOT, ".", 1},
		{token.IDENT, "Duration", 1},
		{token.COMMA, ",", 1},
		{token.DOT, ".", 1},
		{token.DOT, ".", 1},
		{token.DOT, ".", 1},
		{token.IDENT, "int", 1},
		{token.RPAREN, ")", 1},
		{token.RBRACK, "]", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestOperators(t *testing.T) {
	input := `+ - * / % & | ^ << >> == != < <= > >= && || <<= &&&`
	items := []testItem{
		{token.PLUS, "+", 1},
		{token.MINUS, "-", 1},
		{token.ASTERISK, "*", 1},
		{token.SLASH, "/", 1},
		{token.PERCENT, "%", 1},
		{token.AMPERSAND, "&", 1},
		{token.PIPE, "|", 1},
		{token.CARET, "^", 1},
		{token.SHL, "<<", 1},
		{token.SHR, ">>", 1},
		{token.EQ, "==", 1},
		{token.NOT_EQ, "!=", 1},
		{token.LT, "<", 1},
		{token.LT_EQ, "<=", 1},
		{token.GT, ">", 1},
		{token.GT_EQ, ">=", 1},
		{token.AND, "&&", 1},
		{token.OR, "||", 1},
		{token.SHL, "<<", 1},
		{token.ILLEGAL, "lex/ill", 1},
		{token.AND, "&&", 1},
		{token.AMPERSAND, "&", 1},
		{token.EOF, "EOF", 1},
	}
	testLexingString(t, input, items)
}

func TestLiteralsAndComments(t *testing.T) {
	input := `// A comment
{declare ([x 0x1F] [y 1_000]) in // another
  {concat "a\tb" ` + "`c\\d`" + ` true false}}
`
	items := []testItem{
		{token.COMMENT, " A comment", 1},
		{token.LBRACE, "{", 2},
		{token.DECLARE, "declare", 2},
		{token.LPAREN, "(", 2},
		{token.LBRACK, "[", 2},
		{token.IDENT, "x", 2},
		{token.INT, "0x1F", 2},
		{token.RBRACK, "]", 2},
		{token.LBRACK, "[", 2},
		{token.IDENT, "y", 2},
		{token.INT, "1_000", 2},
		{token.RBRACK, "]", 2},
		{token.RPAREN, ")", 2},
		{token.IN, "in", 2},
		{token.COMMENT, " another", 2},
		{token.LBRACE, "{", 3},
		{token.IDENT, "concat", 3},
		{token.STRING, `"a\tb"`, 3},
		{token.STRING, "`c\\d`", 3},
		{token.TRUE, "true", 3},
		{token.FALSE, "false", 3},
		{token.RBRACE, "}", 3},
		{token.RBRACE, "}", 3},
		{token.EOF, "EOF", 4},
	}
	testLexingString(t, input, items)
}

func TestErrors(t *testing.T) {
	input := "12ab $ \"unclosed\n`also unclosed"
	items := []testItem{
		{token.ILLEGAL, "lex/num", 1},
		{token.ILLEGAL, "lex/ill", 1},
		{token.ILLEGAL, "lex/quote/a", 1},
		{token.ILLEGAL, "lex/quote/b", 2},
		{token.EOF, "EOF", 2},
	}
	l := NewLexer("dummy source", input)
	runTest(t, l, items)
	if len(l.Ers) != 4 {
		t.Fatalf("expected 4 errors, got %d", len(l.Ers))
	}
}

func TestTokenizeDropsComments(t *testing.T) {
	toks, errs := Tokenize("dummy source", "{+ 4 7} // sum")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %s", errs.String())
	}
	if len(toks) != 6 {
		t.Fatalf("expected 6 tokens, got %d", len(toks))
	}
	if toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("last token should be EOF, got %q", toks[len(toks)-1].Type)
	}
}

func TestPositions(t *testing.T) {
	toks, _ := Tokenize("dummy source", "{<= x\n  100}")
	want := []struct{ line, start, end int }{
		{1, 0, 1}, {1, 1, 3}, {1, 4, 5}, {2, 2, 5}, {2, 5, 6},
	}
	for i, w := range want {
		tok := toks[i]
		if tok.Line != w.line || tok.ChStart != w.start || tok.ChEnd != w.end {
			t.Fatalf("tests[%d] - position of %q wrong. expected=%d:%d-%d, got=%d:%d-%d",
				i, tok.Literal, w.line, w.start, w.end, tok.Line, tok.ChStart, tok.ChEnd)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"Hello!"`, "Hello!"},
		{`"a\nb"`, "a\nb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{"`raw\\n`", `raw\n`},
	}
	for i, tt := range tests {
		got, ok := Unquote(tt.input)
		if !ok || got != tt.want {
			t.Fatalf("tests[%d] - Unquote(%s) wrong. expected=%q, got=%q (ok=%v)", i, tt.input, tt.want, got, ok)
		}
	}
}

type testItem struct {
	expectedType    token.TokenType
	expectedLiteral string
	expectedLine    int
}

func testLexingString(t *testing.T, input string, items []testItem) {
	l := NewLexer("dummy source", input)
	runTest(t, l, items)
}

func runTest(t *testing.T, l *lexer, items []testItem) {
	for i, tt := range items {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q with literal %q, got=%q with literal %q",
				i, tt.expectedType, tt.expectedLiteral, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tok.Line)
		}
	}
}

func TestUnknownEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"\q"`, `\q`},
		{`"caf\u00e9"`, `\u`},
		{`"ok\\q\x"`, `\x`},
	}
	for i, tt := range tests {
		l := NewLexer("dummy source", tt.input)
		tok := l.NextToken()
		if tok.Type != token.ILLEGAL || tok.Literal != "lex/escape" {
			t.Fatalf("tests[%d] - expected lex/escape for %s, got=%q with literal %q", i, tt.input, tok.Type, tok.Literal)
		}
		if len(l.Ers) != 1 || !strings.Contains(l.Ers[0].Message, tt.want) {
			t.Fatalf("tests[%d] - error should name %s, got %s", i, tt.want, l.Ers.String())
		}
	}
	toks, errs := Tokenize("dummy source", `"tab\there \"quoted\" \e[0m\\"`)
	if len(errs) != 0 || toks[0].Type != token.STRING {
		t.Fatalf("known escapes rejected: %s", errs.String())
	}
}
