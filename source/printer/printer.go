// Package printer writes the structural trace of an AST: one line for each node, and a
// labelled line for each group of children, indented two spaces for every level of nesting.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tim-hardcastle/curly/source/ast"
)

// Print returns the trace of the node, starting at the given level of indentation.
func Print(node ast.Node, indent int) string {
	var out strings.Builder
	Fprint(&out, node, indent) // Writing to a strings.Builder doesn't fail.
	return out.String()
}

// Fprint writes the trace of the node to w, stopping at the first write error.
func Fprint(w io.Writer, node ast.Node, indent int) error {
	pr := &printer{w: w}
	pr.print(node, indent)
	return pr.err
}

type printer struct {
	w   io.Writer
	err error
}

func (pr *printer) line(indent int, s string) {
	if pr.err != nil {
		return
	}
	_, pr.err = fmt.Fprint(pr.w, strings.Repeat("  ", indent), s, "\n")
}

func (pr *printer) print(node ast.Node, indent int) {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		pr.line(indent, "Number: "+node.Token.Literal)
	case *ast.BooleanLiteral:
		pr.line(indent, "Bool: "+node.Token.Literal)
	case *ast.StringLiteral:
		pr.line(indent, "String: "+node.Token.Literal)
	case *ast.Identifier:
		if node.TypeAnnotation == nil {
			pr.line(indent, "Identifier: "+node.Value)
		} else {
			pr.line(indent, "Identifier: "+node.Value+" : "+node.TypeAnnotation.Text)
		}
	case *ast.Operator:
		pr.line(indent, "BinOp: "+node.Operator)
	case *ast.Conditional:
		pr.line(indent, "If Expression:")
		pr.line(indent, "Guard:")
		pr.print(node.Guard, indent+1)
		pr.line(indent, "Then:")
		pr.print(node.Then, indent+1)
		pr.line(indent, "Other:")
		pr.print(node.Other, indent+1)
	case *ast.Procedure:
		pr.line(indent, "Procedure:")
		pr.line(indent, "Parameters:")
		for i, param := range node.Parameters {
			pr.line(indent, fmt.Sprintf("Param %d:", i))
			pr.print(param, indent+1)
		}
		if node.ReturnType == nil {
			pr.line(indent, "Return Type Annotation:")
		} else {
			pr.line(indent, "Return Type Annotation: "+node.ReturnType.Text)
		}
		pr.line(indent, "Body:")
		pr.print(node.Body, indent+1)
	case *ast.Application:
		pr.line(indent, "Application:")
		pr.line(indent, "Procedure:")
		pr.print(node.Callee, indent+1)
		pr.line(indent, "Arguments:")
		for i, arg := range node.Args {
			pr.line(indent, fmt.Sprintf("Arg %d:", i))
			pr.print(arg, indent+1)
		}
	default:
		pr.line(indent, fmt.Sprintf("Unknown node %T", node))
	}
}
