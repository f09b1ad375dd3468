package err

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tim-hardcastle/curly/source/text"
	"github.com/tim-hardcastle/curly/source/token"
)

// A map from error identifiers to functions that supply the corresponding error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifers.
//
// Major categories are eval, lex, lower, and parse.
//
// Two otherwise identical errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ErrorCreatorMap = map[string]ErrorCreator{

	// TEMPLATE
	"": {
		Message: func(tok *token.Token, args ...any) string {
			return ""
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return ""
		},
	},

	"err/misdirect": {
		Message: func(tok *token.Token, args ...any) string {
			return "error with no corresponding error message"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly has thrown an error with an identifier that doesn't correspond to anything in its list of errors. " +
				"This is a bug in Curly itself and should be reported as an issue."
		},
	},

	"eval/apply/arity": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("procedure expects %v, but was given %v", plural(args[0], "argument"), args[1])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A procedure must be applied to exactly as many arguments as it has parameters. " +
				"For example " + emph("{{proc (a b) {+ a b}} 1}") + " is an error because the procedure " +
				"has two parameters and only one argument was supplied."
		},
	},

	"eval/apply/func": {
		Message: func(tok *token.Token, args ...any) string {
			return "trying to apply " + emph(args[0]) + ", which isn't a function"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The first thing inside braces is applied to the rest as a function, so it has to " +
				"evaluate to a procedure, an operator, or a function supplied by the host. In this case it evaluated to " +
				emph(args[0]) + "."
		},
	},

	"eval/builtin": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("%v: %v", emph(args[0]), args[1])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The host function " + emph(args[0]) + " refused its arguments. The message above is " +
				"the one it supplied."
		},
	},

	"eval/depth": {
		Message: func(tok *token.Token, args ...any) string {
			return fmt.Sprintf("evaluation nested more than %v deep", args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly stops evaluating when procedure calls nest too deeply, which usually means " +
				"that a procedure calls itself without end, as in " +
				emph("{{proc (f) {f f}} {proc (f) {f f}}}") + ". The limit is " + emph(args[0]) +
				", and can be changed with " + emph("max_depth") + " in the configuration file."
		},
	},

	"eval/div/zero": {
		Message: func(tok *token.Token, args ...any) string {
			return "division by zero"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Because 'x * 0 == y * 0' for any integers 'x' and 'y', mathematicians consider the result of " +
				"dividing by zero to be undefined: there is no right answer, it's the wrong question. So Curly " +
				"throws this error when you ask it."
		},
	},

	"eval/ident": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown identifier " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The identifier " + emph(args[0]) + " isn't a parameter of any enclosing procedure or " +
				"declaration, and the host doesn't supply anything of that name either."
		},
	},

	"eval/if/bool": {
		Message: func(tok *token.Token, args ...any) string {
			return "guard of conditional should be " + emph("bool") + ", not " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "In an expression of the form " + emph("{if guard then other}") + " the guard must " +
				"evaluate to " + emph("true") + " or " + emph("false") + "."
		},
	},

	"eval/op/type": {
		Message: func(tok *token.Token, args ...any) string {
			return "can't apply " + emph(args[0]) + " to values of type " + emph(args[1]) + " and " + emph(args[2])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Arithmetic and bitwise operators apply to integers, the logical operators " +
				emph("&&") + " and " + emph("||") + " apply to booleans, " + emph("+") + " can also join " +
				"two strings, and the comparison operators need both sides to have the same type."
		},
	},

	"eval/shift": {
		Message: func(tok *token.Token, args ...any) string {
			return "negative shift count " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The right-hand operand of " + emph("<<") + " or " + emph(">>") + " says how many " +
				"places to shift by, and so can't be negative."
		},
	},

	"lex/escape": {
		Message: func(tok *token.Token, args ...any) string {
			return "unknown escape sequence " + emph(args[0]) + " in string"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "In a string in double quotes, a backslash must be followed by one of " +
				emph(`n r t " \ e`) + ". To put a backslash itself in the string, write two of them, " +
				"or use a string in backquotes, where backslashes have no special meaning."
		},
	},

	"lex/ill": {
		Message: func(tok *token.Token, args ...any) string {
			return "illegal character " + emph(string(args[0].(rune))) + " in source"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "That character doesn't belong to any token in Curly: it isn't a bracket, a colon, " +
				"an operator, or part of a literal or identifier."
		},
	},

	"lex/num": {
		Message: func(tok *token.Token, args ...any) string {
			return "malformed number " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly thinks you're trying to write an integer literal, but it can't make sense of " +
				emph(args[0]) + " as one. Integers can be written in decimal, or in hexadecimal, octal, " +
				"or binary with the prefixes " + emph("0x") + ", " + emph("0o") + ", and " + emph("0b") + "."
		},
	},

	"lex/quote/a": {
		Message: func(tok *token.Token, args ...any) string {
			return "string literal isn't closed"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A string literal beginning with " + emph("\"") + " must be closed by another " +
				emph("\"") + " before the end of the line."
		},
	},

	"lex/quote/b": {
		Message: func(tok *token.Token, args ...any) string {
			return "raw string literal isn't closed"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A raw string literal beginning with " + emph("`") + " must be closed by another " +
				emph("`") + " before the end of the line."
		},
	},

	"lower/arity": {
		Message: func(tok *token.Token, args ...any) string {
			return "arity error: operator " + emph(args[0]) + " expects 2 arguments, got " + strconv.Itoa(args[1].(int))
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The operators are all binary, and so an application whose first element is an operator " +
				"must have exactly two arguments, as in " + emph("{+ 4 7}") + ". Curly doesn't fold extra " +
				"arguments or drop them: it won't guess what you meant."
		},
	},

	"lower/format": {
		Message: func(tok *token.Token, args ...any) string {
			return "can't format generated program: " + fmt.Sprint(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The program Curly generated isn't syntactically valid Go. Since Curly's own output " +
				"is always valid, this usually means the prelude isn't a list of Go declarations."
		},
	},

	"parse/atom": {
		Message: func(tok *token.Token, args ...any) string {
			return "failed to parse atom: found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Outside of braces, an expression must be a literal, an identifier, or an operator. " +
				"Curly found " + text.DescribeTok(tok) + " instead, which is none of those."
		},
	},

	"parse/clause/brackets": {
		Message: func(tok *token.Token, args ...any) string {
			return "missing clause brackets: found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Each clause of a " + emph("declare") + " expression is a name and a value in square " +
				"brackets, as in " + emph("{declare ([x 4] [y 7]) in {+ x y}}") + "."
		},
	},

	"parse/close": {
		Message: func(tok *token.Token, args ...any) string {
			return emph(tok.Literal) + " is never closed"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Every opening bracket must be matched by a closing one: Curly reached the end of " +
				"the input still looking for " + text.DescribeOpposite(tok) + "."
		},
	},

	"parse/closer": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected closing " + emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "This closing bracket doesn't correspond to any " + text.DescribeOpposite(tok) +
				" that needs closing."
		},
	},

	"parse/colon": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(":") + " after annotated name, found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "An annotated name is written in square brackets with a colon between the name and " +
				"its type, as in " + emph("[a : int]") + "."
		},
	},

	"parse/declare/in": {
		Message: func(tok *token.Token, args ...any) string {
			return "missing keyword " + emph("in") + ": found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A " + emph("declare") + " expression has its clauses in parentheses, then optionally a " +
				"type annotation, then the keyword " + emph("in") + ", then its body."
		},
	},

	"parse/empty": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected an expression, found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly needed an expression here: for example the empty braces " + emph("{}") +
				" are an error, because an application must at least say what is being applied."
		},
	},

	"parse/expected": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected " + emph(args[0]) + ", found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The grammar requires " + emph(args[0]) + " at this point."
		},
	},

	"parse/extra": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly has parsed everything it expected to find inside these brackets, and then " +
				"found " + text.DescribeTok(tok) + " as well. For example, a conditional has exactly three " +
				"parts after the " + emph("if") + ", so " + emph("{if a b c d}") + " is an error."
		},
	},

	"parse/ident": {
		Message: func(tok *token.Token, args ...any) string {
			return "expected identifier, found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "The parameters of a procedure and the names in a declaration must be identifiers, " +
				"optionally annotated with a type, as in " + emph("x") + " or " + emph("[x : int]") + "."
		},
	},

	"parse/if": {
		Message: func(tok *token.Token, args ...any) string {
			return "missing keyword " + emph("if") + ": found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A conditional is written " + emph("{if guard then other}") + "."
		},
	},

	"parse/int": {
		Message: func(tok *token.Token, args ...any) string {
			return "integer literal " + emph(tok.Literal) + " is out of range"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Integer literals must fit in a signed 64-bit integer."
		},
	},

	"parse/match": {
		Message: func(tok *token.Token, args ...any) string {
			return "closing " + emph(tok.Literal) + " doesn't match opening " + emph(args[0])
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Brackets must nest properly: something of the form " + emph("{f (x}") + " is an error " +
				"because the parenthesis is closed by a brace."
		},
	},

	"parse/trailing": {
		Message: func(tok *token.Token, args ...any) string {
			return "unexpected " + text.DescribeTok(tok) + " after end of expression"
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "Curly parses one expression at a time. After it had finished, it found more input, " +
				"e.g. " + emph("{+ 1 2} 3") + "."
		},
	},

	"parse/type": {
		Message: func(tok *token.Token, args ...any) string {
			return "malformed type annotation: found " + text.DescribeTok(tok)
		},
		Explanation: func(errors Errors, pos int, tok *token.Token, args ...any) string {
			return "A type annotation is a Go type, such as " + emph("int") + ", " + emph("[]string") +
				" or " + emph("func(int) bool") + ". Curly passes its text through to the generated code " +
				"without checking it, but it must be made of the names, numbers, brackets and punctuation " +
				"that Go types are made of, and it can't be empty. The type of a procedure comes between " +
				"the parameters and the body, so a procedure with a return type must have a body after it."
		},
	},
}

func emph(s any) string {
	if t, ok := s.(string); ok {
		s = strings.TrimSpace(t)
	}
	return fmt.Sprintf("'%v'", s)
}

func plural(n any, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%v %vs", n, noun)
}
