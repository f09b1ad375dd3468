package compiler

import (
	"strings"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/token"
)

// Curly doesn't check types, but Go needs to be told what a function literal returns. So we
// make an estimate: from annotations where there are any, from the operators and literals
// where there aren't, and failing that, the default type.

var comparisonOrLogic = map[string]bool{
	token.EQ: true, token.NOT_EQ: true,
	token.LT: true, token.LT_EQ: true, token.GT: true, token.GT_EQ: true,
	token.AND: true, token.OR: true,
}

func (cp *Compiler) typeOf(node ast.Node, env *Environment) string {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return "int"
	case *ast.BooleanLiteral:
		return "bool"
	case *ast.StringLiteral:
		return "string"
	case *ast.Identifier:
		if t, ok := env.GetType(node.Value); ok {
			return t
		}
		return cp.defaultType()
	case *ast.Operator:
		return cp.operatorType(node.Operator)
	case *ast.Conditional:
		return cp.typeOf(node.Then, env)
	case *ast.Procedure:
		return cp.signature(node, env)
	case *ast.Application:
		switch callee := node.Callee.(type) {
		case *ast.Operator:
			if comparisonOrLogic[callee.Operator] {
				return "bool"
			}
			if len(node.Args) > 0 {
				return cp.typeOf(node.Args[0], env)
			}
		case *ast.Identifier:
			if _, ok := env.GetType(callee.Value); !ok {
				if t, ok := cp.opts.HostResults[callee.Value]; ok {
					return t
				}
				return cp.defaultType()
			}
		}
		if result, ok := resultOf(cp.typeOf(node.Callee, env)); ok {
			return result
		}
	}
	return cp.defaultType()
}

// The type of a function literal: func(T1, T2) R.
func (cp *Compiler) signature(proc *ast.Procedure, env *Environment) string {
	inner := cp.paramEnvironment(proc, env)
	params := make([]string, 0, len(proc.Parameters))
	for _, param := range proc.Parameters {
		params = append(params, cp.paramType(param))
	}
	return "func(" + strings.Join(params, ", ") + ") " + cp.returnType(proc, inner)
}

func (cp *Compiler) paramType(param *ast.Identifier) string {
	if param.TypeAnnotation != nil {
		return param.TypeAnnotation.Text
	}
	return cp.defaultType()
}

func (cp *Compiler) paramEnvironment(proc *ast.Procedure, env *Environment) *Environment {
	inner := NewEnclosedEnvironment(env)
	for _, param := range proc.Parameters {
		inner.SetType(param.Value, cp.paramType(param))
	}
	return inner
}

func (cp *Compiler) returnType(proc *ast.Procedure, inner *Environment) string {
	if proc.ReturnType != nil {
		return proc.ReturnType.Text
	}
	return cp.typeOf(proc.Body, inner)
}

// The operands and result of an operator used as a value.
func (cp *Compiler) operatorTypes(op string) (string, string) {
	switch {
	case op == token.AND || op == token.OR:
		return "bool", "bool"
	case comparisonOrLogic[op]:
		return cp.defaultType(), "bool"
	}
	return cp.defaultType(), cp.defaultType()
}

func (cp *Compiler) operatorType(op string) string {
	operand, result := cp.operatorTypes(op)
	return "func(" + operand + ", " + operand + ") " + result
}

// Given the text of a function type, returns the text of its result type.
func resultOf(funcType string) (string, bool) {
	if !strings.HasPrefix(funcType, "func(") {
		return "", false
	}
	depth := 0
	for i, ch := range funcType {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				result := strings.TrimSpace(funcType[i+1:])
				return result, result != ""
			}
		}
	}
	return "", false
}
