package values

import (
	"fmt"
	"strconv"
)

type ValueType uint32

const (
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	INT
	BOOL
	STRING
	FUNC     // A closure: the V field holds something from the evaluator.
	OPERATOR // One of the binary operators used as a value: the V field holds its symbol.
	BUILTIN  // A function supplied by the host.
)

var typeNames = map[ValueType]string{
	UNDEFINED_VALUE: "undefined",
	INT:             "int",
	BOOL:            "bool",
	STRING:          "string",
	FUNC:            "func",
	OPERATOR:        "func",
	BUILTIN:         "func",
}

type Value struct {
	T ValueType
	V any
}

var (
	FALSE     = Value{T: BOOL, V: false}
	TRUE      = Value{T: BOOL, V: true}
	UNDEFINED = Value{T: UNDEFINED_VALUE}
)

func MakeInt(i int) Value {
	return Value{T: INT, V: i}
}

func MakeBool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func MakeString(s string) Value {
	return Value{T: STRING, V: s}
}

func (v Value) TypeName() string {
	if name, ok := typeNames[v.T]; ok {
		return name
	}
	return "unknown"
}

func (v Value) IsFunction() bool {
	return v.T == FUNC || v.T == OPERATOR || v.T == BUILTIN
}

// String gives the value as the generated Go program would print it.
func (v Value) String() string {
	switch v.T {
	case INT:
		return strconv.Itoa(v.V.(int))
	case BOOL:
		return strconv.FormatBool(v.V.(bool))
	case STRING:
		return v.V.(string)
	case OPERATOR:
		return v.V.(string)
	}
	if s, ok := v.V.(fmt.Stringer); ok {
		return s.String()
	}
	return "<" + v.TypeName() + ">"
}

// Describe gives the value in a form suitable for error messages, in which e.g. strings are quoted.
func (v Value) Describe() string {
	if v.T == STRING {
		return strconv.Quote(v.V.(string))
	}
	return v.String()
}

// Equals is Go's == for the types on which Go defines it. It doesn't say anything about
// functions, which the caller should check for first.
func (v Value) Equals(w Value) bool {
	return v.T == w.T && v.V == w.V
}
