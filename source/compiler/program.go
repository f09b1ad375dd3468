package compiler

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/err"
)

// The Go definitions of the host functions that the evaluator's default environment supplies.
const DefaultPrelude = `func sq(x int) int { return x * x }

func strlen(s string) int { return len(s) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

func concat(s, t string) string { return s + t }

func not(b bool) bool { return !b }
`

// The result types of the functions in the default prelude.
var DefaultHostResults = map[string]string{
	"abs":    "int",
	"concat": "string",
	"max":    "int",
	"min":    "int",
	"not":    "bool",
	"sq":     "int",
	"strlen": "int",
}

// Program returns a formatted Go program which prints the value of the node. The prelude
// should consist of Go declarations, and may use fmt but not import anything else.
func (cp *Compiler) Program(node ast.Node, prelude string) (string, err.Errors) {
	expr, errors := cp.Lower(node)
	var sb strings.Builder
	fmt.Fprint(&sb, "package main\n\nimport \"fmt\"\n\n")
	if strings.TrimSpace(prelude) != "" {
		fmt.Fprint(&sb, prelude, "\n\n")
	}
	fmt.Fprint(&sb, "func main() {\n\tfmt.Println(", expr, ")\n}\n")
	formatted, e := format.Source([]byte(sb.String()))
	if e != nil {
		return sb.String(), err.Throw("lower/format", errors, node.GetToken(), e.Error())
	}
	return string(formatted), errors
}
