package text

// This consists of a bunch of text utilities to help in generating pretty and meaningful
// help messages, error messages, etc.

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/tim-hardcastle/curly/source/token"
)

const (
	VERSION        = "0.2.0"
	BULLET         = "  ▪ "
	BULLET_SPACING = "    " // I.e. whitespace the same width as BULLET.
	PROMPT         = "→ "
)

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// Colour is on by default when stdout is a terminal; the hub and the CLI may turn it off.
func SetColor(on bool) {
	color.NoColor = !on
}

func Cyan(s string) string {
	return cyan(s)
}

func Emph(s string) string {
	return cyan("'" + s + "'")
}

func ErrorLabel() string {
	return red("error") + ": "
}

func Ok() string {
	return green("OK")
}

func Logo() string {
	titleText := " Curly version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	brace := Cyan("{")
	endBrace := Cyan("}")
	logoString := "\n" +
		leftMargin + "╔" + bar + brace + endBrace + bar + "╗\n" +
		leftMargin + "║" + titleText + " ║\n" +
		leftMargin + "╚" + bar + brace + endBrace + bar + "╝\n\n"
	return logoString
}

func DescribePos(tok *token.Token) string {
	prettySource := tok.Source
	if prettySource == "" {
		return ""
	}
	if prettySource != "REPL input" {
		prettySource = "'" + prettySource + "'"
	}
	if tok.Line > 0 {
		result := strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.ChStart)
		if tok.ChEnd > tok.ChStart+1 {
			result = result + "-" + strconv.Itoa(tok.ChEnd)
		}
		return " at line " + result + " of " + prettySource
	}
	return " in " + prettySource
}

// Describes a token for the purposes of error messages etc.
func DescribeTok(tok *token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of input"
	case token.STRING:
		return "string " + tok.Literal
	case token.INT:
		return "integer " + tok.Literal
	case token.TRUE, token.FALSE:
		return "boolean " + tok.Literal
	case token.IDENT:
		return "identifier '" + tok.Literal + "'"
	}
	return "'" + tok.Literal + "'"
}

func DescribeOpposite(tok *token.Token) string {
	switch tok.Type {
	case token.LPAREN:
		return "')'"
	case token.LBRACK:
		return "']'"
	case token.LBRACE:
		return "'}'"
	case token.RPAREN:
		return "'('"
	case token.RBRACK:
		return "'['"
	case token.RBRACE:
		return "'{'"
	}
	return "nothing"
}

// Indents every non-empty line of s by the given margin.
func Indent(s, margin string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = margin + line
		}
	}
	return strings.Join(lines, "\n")
}
