package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT   = "IDENT"   // add, foobar, x, y, ...
	INT     = "int"     // 1343456, 0xff
	STRING  = "string"  // "foo", `bar`
	TRUE    = "true"
	FALSE   = "false"
	COMMENT = "COMMENT" // // foo bar zort troz

	COLON = ":"

	// Only found in type annotations
	DOT   = "."
	COMMA = ","

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	// Keywords
	IF      = "if"
	PROC    = "proc"
	DECLARE = "declare"
	IN      = "in"

	// Arithmetic operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"

	// Bitwise operators
	AMPERSAND = "&"
	PIPE      = "|"
	CARET     = "^"
	SHL       = "<<"
	SHR       = ">>"

	// Comparison operators
	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	LT_EQ  = "<="
	GT     = ">"
	GT_EQ  = ">="

	// Logical operators
	AND = "&&"
	OR  = "||"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

var keywords = map[string]TokenType{
	"true":  TRUE,
	"false": FALSE,

	"if":      IF,
	"proc":    PROC,
	"declare": DECLARE,
	"in":      IN,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// The binary operators, in the order in which they're listed in the docs.
var BinaryOperators = []TokenType{
	PLUS, MINUS, ASTERISK, SLASH, PERCENT,
	AMPERSAND, PIPE, CARET, SHL, SHR,
	EQ, NOT_EQ, LT, LT_EQ, GT, GT_EQ,
	AND, OR,
}

var binaryOperatorSet = func() map[TokenType]bool {
	result := map[TokenType]bool{}
	for _, t := range BinaryOperators {
		result[t] = true
	}
	return result
}()

func IsBinaryOperator(t TokenType) bool {
	return binaryOperatorSet[t]
}

func TokenTypeIsOpener(t TokenType) bool {
	return t == LPAREN || t == LBRACE || t == LBRACK
}

func TokenTypeIsCloser(t TokenType) bool {
	return t == RPAREN || t == RBRACE || t == RBRACK
}

// Returns the closing bracket matching an opening bracket.
func Closer(t TokenType) TokenType {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACE:
		return RBRACE
	case LBRACK:
		return RBRACK
	}
	return ILLEGAL
}
