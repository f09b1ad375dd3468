// Package compiler lowers an AST to Go source: either a single Go expression with the same
// value, or a complete program which prints it.
package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/settings"
)

type Options struct {
	// The Go type of unannotated parameters, and of anything whose type can't be worked out.
	// If empty, it's "int".
	DefaultType string
	// The result types of the functions defined in the host prelude.
	HostResults map[string]string
}

type Compiler struct {
	opts   Options
	Errors err.Errors
}

func New(opts Options) *Compiler {
	if opts.HostResults == nil {
		opts.HostResults = DefaultHostResults
	}
	return &Compiler{opts: opts, Errors: []*err.Error{}}
}

// Lower lowers the node with the default options.
func Lower(node ast.Node) (string, err.Errors) {
	return New(Options{}).Lower(node)
}

// Lower returns the Go expression equivalent to the node. If there are errors, then it still
// returns the expression, but the places where the errors are will call 'compileError', which
// doesn't exist, so that the Go compiler won't accept it.
func (cp *Compiler) Lower(node ast.Node) (string, err.Errors) {
	cp.Errors = []*err.Error{}
	var sb strings.Builder
	cp.lower(&sb, node, NewEnvironment())
	if settings.SHOW_COMPILER {
		logging.Debugf("compiler: %s -> %s", node.String(), sb.String())
	}
	return sb.String(), cp.Errors
}

func (cp *Compiler) defaultType() string {
	if cp.opts.DefaultType == "" {
		return settings.DEFAULT_TYPE
	}
	return cp.opts.DefaultType
}

func (cp *Compiler) lower(sb *strings.Builder, node ast.Node, env *Environment) {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprint(sb, node.Token.Literal)
	case *ast.BooleanLiteral:
		fmt.Fprint(sb, node.Token.Literal)
	case *ast.StringLiteral:
		fmt.Fprint(sb, strconv.Quote(node.Value))
	case *ast.Identifier:
		fmt.Fprint(sb, goName(node.Value))
	case *ast.Operator:
		// As a value, an operator becomes a function of two arguments.
		operand, result := cp.operatorTypes(node.Operator)
		fmt.Fprint(sb, "func(a, b ", operand, ") ", result, " { return a ", node.Operator, " b }")
	case *ast.Conditional:
		fmt.Fprint(sb, "func() ", cp.typeOf(node.Then, env), " { if ")
		cp.lower(sb, node.Guard, env)
		fmt.Fprint(sb, " { return ")
		cp.lower(sb, node.Then, env)
		fmt.Fprint(sb, " } else { return ")
		cp.lower(sb, node.Other, env)
		fmt.Fprint(sb, " } }()")
	case *ast.Procedure:
		inner := cp.paramEnvironment(node, env)
		fmt.Fprint(sb, "func(")
		sep := ""
		for _, param := range node.Parameters {
			fmt.Fprint(sb, sep, goName(param.Value), " ", cp.paramType(param))
			sep = ", "
		}
		fmt.Fprint(sb, ") ", cp.returnType(node, inner), " { return ")
		cp.lower(sb, node.Body, inner)
		fmt.Fprint(sb, " }")
	case *ast.Application:
		if op, ok := node.Callee.(*ast.Operator); ok {
			cp.lowerOperatorApplication(sb, node, op, env)
			return
		}
		cp.lower(sb, node.Callee, env)
		fmt.Fprint(sb, "(")
		sep := ""
		for _, arg := range node.Args {
			fmt.Fprint(sb, sep)
			cp.lower(sb, arg, env)
			sep = ", "
		}
		fmt.Fprint(sb, ")")
	default:
		cp.Errors = err.Throw("err/misdirect", cp.Errors, node.GetToken())
	}
}

func (cp *Compiler) lowerOperatorApplication(sb *strings.Builder, node *ast.Application, op *ast.Operator, env *Environment) {
	if len(node.Args) != 2 {
		e := err.CreateErr("lower/arity", &node.Token, op.Operator, len(node.Args))
		cp.Errors = append(cp.Errors, e)
		fmt.Fprint(sb, "compileError(", strconv.Quote(e.Message), ")")
		// The arguments may have errors of their own.
		var discard strings.Builder
		for _, arg := range node.Args {
			cp.lower(&discard, arg, env)
		}
		return
	}
	fmt.Fprint(sb, "(")
	cp.lower(sb, node.Args[0], env)
	fmt.Fprint(sb, " ", op.Operator, " ")
	cp.lower(sb, node.Args[1], env)
	fmt.Fprint(sb, ")")
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true, "default": true,
	"defer": true, "else": true, "fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "import": true, "interface": true, "map": true, "package": true, "range": true,
	"return": true, "select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// Curly identifiers which are Go keywords get an underscore on the end.
func goName(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}
