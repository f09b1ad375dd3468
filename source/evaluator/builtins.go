package evaluator

import (
	"github.com/pkg/errors"

	"github.com/tim-hardcastle/curly/source/values"
)

// A Builtin is a function supplied by the host. The evaluator checks the number and types
// of the arguments before calling Fn.
type Builtin struct {
	Name   string
	Params []values.ValueType
	Fn     func(args []values.Value) (values.Value, error)
}

func (b *Builtin) String() string {
	return b.Name
}

func (b *Builtin) call(args []values.Value) (values.Value, error) {
	for i, arg := range args {
		if arg.T != b.Params[i] {
			want := values.Value{T: b.Params[i]}
			return values.UNDEFINED, errors.Errorf("argument %d should be of type %s, not %s", i, want.TypeName(), arg.TypeName())
		}
	}
	return b.Fn(args)
}

var builtins = []*Builtin{
	{"abs", []values.ValueType{values.INT}, func(args []values.Value) (values.Value, error) {
		i := args[0].V.(int)
		if i < 0 {
			return values.MakeInt(-i), nil
		}
		return args[0], nil
	}},
	{"concat", []values.ValueType{values.STRING, values.STRING}, func(args []values.Value) (values.Value, error) {
		return values.MakeString(args[0].V.(string) + args[1].V.(string)), nil
	}},
	{"max", []values.ValueType{values.INT, values.INT}, func(args []values.Value) (values.Value, error) {
		return values.MakeInt(max(args[0].V.(int), args[1].V.(int))), nil
	}},
	{"min", []values.ValueType{values.INT, values.INT}, func(args []values.Value) (values.Value, error) {
		return values.MakeInt(min(args[0].V.(int), args[1].V.(int))), nil
	}},
	{"not", []values.ValueType{values.BOOL}, func(args []values.Value) (values.Value, error) {
		return values.MakeBool(!args[0].V.(bool)), nil
	}},
	{"sq", []values.ValueType{values.INT}, func(args []values.Value) (values.Value, error) {
		i := args[0].V.(int)
		return values.MakeInt(i * i), nil
	}},
	{"strlen", []values.ValueType{values.STRING}, func(args []values.Value) (values.Value, error) {
		return values.MakeInt(len(args[0].V.(string))), nil
	}},
}

// DefaultEnvironment binds the host functions that the compiler's default prelude also defines.
func DefaultEnvironment() *Environment {
	env := NewEnvironment()
	for _, b := range builtins {
		env = env.With(b.Name, MakeBuiltin(b))
	}
	return env
}

func MakeBuiltin(b *Builtin) values.Value {
	return values.Value{T: values.BUILTIN, V: b}
}

// Wraps a Go function of ints, e.g. for adding host functions in tests and from the hub.
func IntFunction(name string, arity int, f func(args ...int) int) *Builtin {
	params := make([]values.ValueType, arity)
	for i := range params {
		params[i] = values.INT
	}
	return &Builtin{Name: name, Params: params, Fn: func(args []values.Value) (values.Value, error) {
		ints := make([]int, len(args))
		for i, arg := range args {
			ints[i] = arg.V.(int)
		}
		return values.MakeInt(f(ints...)), nil
	}}
}
