package ast

import (
	"bytes"

	"github.com/tim-hardcastle/curly/source/token"
)

// The base Node interface
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

// Nodes in alphabetical order. Other structures and functions are in a separate section at the bottom.

// An application of a callee to zero or more arguments, `{f a b}`. A `declare` expression
// is also represented as an application, of a procedure to the bindings.
type Application struct {
	Token  token.Token
	Callee Node
	Args   []Node
}

func (ap *Application) Children() []Node       { return append([]Node{ap.Callee}, ap.Args...) }
func (ap *Application) GetToken() *token.Token { return &ap.Token }
func (ap *Application) String() string {
	var out bytes.Buffer

	out.WriteString("{")
	out.WriteString(ap.Callee.String())
	for _, arg := range ap.Args {
		out.WriteString(" ")
		out.WriteString(arg.String())
	}
	out.WriteString("}")

	return out.String()
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Children() []Node       { return []Node{} }
func (b *BooleanLiteral) GetToken() *token.Token { return &b.Token }
func (b *BooleanLiteral) String() string         { return b.Token.Literal }

type Conditional struct {
	Token token.Token
	Guard Node
	Then  Node
	Other Node
}

func (c *Conditional) Children() []Node       { return []Node{c.Guard, c.Then, c.Other} }
func (c *Conditional) GetToken() *token.Token { return &c.Token }
func (c *Conditional) String() string {
	var out bytes.Buffer

	out.WriteString("{if ")
	out.WriteString(c.Guard.String())
	out.WriteString(" ")
	out.WriteString(c.Then.String())
	out.WriteString(" ")
	out.WriteString(c.Other.String())
	out.WriteString("}")

	return out.String()
}

type Identifier struct {
	Token          token.Token
	Value          string
	TypeAnnotation *TypeAnnotation // Only ever non-nil for the parameters of a procedure.
}

func (i *Identifier) Children() []Node       { return []Node{} }
func (i *Identifier) GetToken() *token.Token { return &i.Token }
func (i *Identifier) String() string {
	if i.TypeAnnotation == nil {
		return i.Value
	}
	return "[" + i.Value + " : " + i.TypeAnnotation.Text + "]"
}

type IntegerLiteral struct {
	Token token.Token
	Value int
}

func (il *IntegerLiteral) Children() []Node       { return []Node{} }
func (il *IntegerLiteral) GetToken() *token.Token { return &il.Token }
func (il *IntegerLiteral) String() string         { return il.Token.Literal }

// One of the binary operators, either as the callee of an application or as a value in its own right.
type Operator struct {
	Token    token.Token
	Operator string
}

func (op *Operator) Children() []Node       { return []Node{} }
func (op *Operator) GetToken() *token.Token { return &op.Token }
func (op *Operator) String() string         { return op.Operator }

type Procedure struct {
	Token      token.Token
	Parameters []*Identifier
	Body       Node
	ReturnType *TypeAnnotation
}

func (p *Procedure) Children() []Node {
	result := make([]Node, 0, len(p.Parameters)+1)
	for _, param := range p.Parameters {
		result = append(result, param)
	}
	return append(result, p.Body)
}
func (p *Procedure) GetToken() *token.Token { return &p.Token }
func (p *Procedure) String() string {
	var out bytes.Buffer

	out.WriteString("{proc (")
	for i, param := range p.Parameters {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(param.String())
	}
	out.WriteString(") ")
	if p.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(p.ReturnType.Text)
		out.WriteString(" ")
	}
	out.WriteString(p.Body.String())
	out.WriteString("}")

	return out.String()
}

// The Token keeps the literal as it appears in the source, quotes and escapes and all.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Children() []Node       { return []Node{} }
func (sl *StringLiteral) GetToken() *token.Token { return &sl.Token }
func (sl *StringLiteral) String() string         { return sl.Token.Literal }

// Other structures and functions.

// The text of a type as written in the source. Nothing in Curly interprets it: it is
// carried through to the output.
type TypeAnnotation struct {
	Token token.Token
	Text  string
}

func (ta *TypeAnnotation) String() string {
	if ta == nil {
		return ""
	}
	return ta.Text
}

// Inspect traverses the tree depth-first, calling f on each node. If f returns false, the
// children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range node.Children() {
		Inspect(child, f)
	}
}
