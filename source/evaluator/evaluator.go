package evaluator

import (
	"src.elv.sh/pkg/persistent/vector"

	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/token"
	"github.com/tim-hardcastle/curly/source/values"
)

// The evaluator lowers an AST straight to a value by walking the tree. Its bill of goods is
// just the environment supplied by the host, which it extends as it goes.
type Evaluator struct {
	// How deeply evaluation may nest, counting procedure calls, before it gives up. If it is
	// zero or less, settings.DEFAULT_MAX_DEPTH is used.
	MaxDepth int

	env   *Environment
	depth int
}

// New returns an evaluator which looks up free identifiers in env. If env is nil, it gets
// the default host functions.
func New(env *Environment) *Evaluator {
	if env == nil {
		env = DefaultEnvironment()
	}
	return &Evaluator{env: env, MaxDepth: settings.DEFAULT_MAX_DEPTH}
}

func (ev *Evaluator) maxDepth() int {
	if ev.MaxDepth <= 0 {
		return settings.DEFAULT_MAX_DEPTH
	}
	return ev.MaxDepth
}

// A procedure together with the environment it was made in.
type Closure struct {
	Proc *ast.Procedure
	Env  *Environment
}

func (c *Closure) String() string {
	return c.Proc.String()
}

// Evaluate checks the arity of all the operators in the tree, and if they're all right,
// evaluates it. An error stops evaluation, so there's at most one error from the second step.
func (ev *Evaluator) Evaluate(node ast.Node) (values.Value, err.Errors) {
	if errors := CheckArity(node); len(errors) > 0 {
		return values.UNDEFINED, errors
	}
	ev.depth = 0
	result, e := ev.eval(node, ev.env)
	if e != nil {
		return values.UNDEFINED, err.Errors{e}
	}
	if settings.SHOW_EVALUATOR {
		logging.Debugf("evaluator: %s -> %s", node.String(), result.Describe())
	}
	return result, nil
}

// CheckArity finds every application of an operator to other than two arguments.
func CheckArity(node ast.Node) err.Errors {
	errors := err.Errors{}
	ast.Inspect(node, func(n ast.Node) bool {
		if app, ok := n.(*ast.Application); ok {
			if op, ok := app.Callee.(*ast.Operator); ok && len(app.Args) != 2 {
				errors = err.Throw("lower/arity", errors, &app.Token, op.Operator, len(app.Args))
			}
		}
		return true
	})
	return errors
}

func (ev *Evaluator) eval(node ast.Node, env *Environment) (values.Value, *err.Error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > ev.maxDepth() {
		return values.UNDEFINED, newError("eval/depth", node.GetToken(), ev.maxDepth())
	}
	switch node := node.(type) {

	case *ast.IntegerLiteral:
		return values.MakeInt(node.Value), nil

	case *ast.BooleanLiteral:
		return values.MakeBool(node.Value), nil

	case *ast.StringLiteral:
		return values.MakeString(node.Value), nil

	case *ast.Identifier:
		val, ok := env.Get(node.Value)
		if !ok {
			return values.UNDEFINED, newError("eval/ident", &node.Token, node.Value)
		}
		return val, nil

	case *ast.Operator:
		return values.Value{T: values.OPERATOR, V: node.Operator}, nil

	case *ast.Conditional:
		guard, e := ev.eval(node.Guard, env)
		if e != nil {
			return values.UNDEFINED, e
		}
		if guard.T != values.BOOL {
			return values.UNDEFINED, newError("eval/if/bool", node.Guard.GetToken(), guard.TypeName())
		}
		if guard.V.(bool) {
			return ev.eval(node.Then, env)
		}
		return ev.eval(node.Other, env)

	case *ast.Procedure:
		return values.Value{T: values.FUNC, V: &Closure{Proc: node, Env: env}}, nil

	case *ast.Application:
		if op, ok := node.Callee.(*ast.Operator); ok {
			return ev.evalOperatorApplication(op, node.Args, &node.Token, env)
		}
		callee, e := ev.eval(node.Callee, env)
		if e != nil {
			return values.UNDEFINED, e
		}
		args := vector.Empty
		for _, arg := range node.Args {
			val, e := ev.eval(arg, env)
			if e != nil {
				return values.UNDEFINED, e
			}
			args = args.Conj(val)
		}
		return ev.apply(callee, args, &node.Token)
	}
	return values.UNDEFINED, newError("err/misdirect", node.GetToken())
}

// Applies an operator in callee position. This is where '&&' and '||' get to skip their
// right-hand operand.
func (ev *Evaluator) evalOperatorApplication(op *ast.Operator, args []ast.Node, tok *token.Token, env *Environment) (values.Value, *err.Error) {
	if len(args) != 2 {
		return values.UNDEFINED, newError("lower/arity", tok, op.Operator, len(args))
	}
	left, e := ev.eval(args[0], env)
	if e != nil {
		return values.UNDEFINED, e
	}
	if op.Operator == token.AND || op.Operator == token.OR {
		if left.T != values.BOOL {
			right, e := ev.eval(args[1], env)
			if e != nil {
				return values.UNDEFINED, e
			}
			return values.UNDEFINED, newError("eval/op/type", tok, op.Operator, left.TypeName(), right.TypeName())
		}
		if left.V.(bool) == (op.Operator == token.OR) {
			return left, nil
		}
		right, e := ev.eval(args[1], env)
		if e != nil {
			return values.UNDEFINED, e
		}
		if right.T != values.BOOL {
			return values.UNDEFINED, newError("eval/op/type", tok, op.Operator, left.TypeName(), right.TypeName())
		}
		return right, nil
	}
	right, e := ev.eval(args[1], env)
	if e != nil {
		return values.UNDEFINED, e
	}
	return applyOperator(op.Operator, left, right, tok)
}

func (ev *Evaluator) apply(callee values.Value, args vector.Vector, tok *token.Token) (values.Value, *err.Error) {
	switch callee.T {
	case values.FUNC:
		closure := callee.V.(*Closure)
		params := closure.Proc.Parameters
		if args.Len() != len(params) {
			return values.UNDEFINED, newError("eval/apply/arity", tok, len(params), args.Len())
		}
		env := closure.Env
		for i, param := range params {
			arg, _ := args.Index(i)
			env = env.With(param.Value, arg.(values.Value))
		}
		return ev.eval(closure.Proc.Body, env)
	case values.OPERATOR:
		if args.Len() != 2 {
			return values.UNDEFINED, newError("eval/apply/arity", tok, 2, args.Len())
		}
		left, _ := args.Index(0)
		right, _ := args.Index(1)
		return applyOperator(callee.V.(string), left.(values.Value), right.(values.Value), tok)
	case values.BUILTIN:
		builtin := callee.V.(*Builtin)
		if args.Len() != len(builtin.Params) {
			return values.UNDEFINED, newError("eval/apply/arity", tok, len(builtin.Params), args.Len())
		}
		argSlice := make([]values.Value, 0, args.Len())
		for it := args.Iterator(); it.HasElem(); it.Next() {
			argSlice = append(argSlice, it.Elem().(values.Value))
		}
		result, e := builtin.call(argSlice)
		if e != nil {
			return values.UNDEFINED, newError("eval/builtin", tok, builtin.Name, e.Error())
		}
		return result, nil
	}
	return values.UNDEFINED, newError("eval/apply/func", tok, callee.Describe())
}

func newError(errorID string, tok *token.Token, args ...any) *err.Error {
	return err.CreateErr(errorID, tok, args...)
}
