package evaluator

import (
	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/token"
	"github.com/tim-hardcastle/curly/source/values"
)

// Applies a binary operator to two values, with the semantics of the same operator in Go.
func applyOperator(op string, left, right values.Value, tok *token.Token) (values.Value, *err.Error) {
	typeError := func() (values.Value, *err.Error) {
		return values.UNDEFINED, newError("eval/op/type", tok, op, left.TypeName(), right.TypeName())
	}
	switch op {
	case token.EQ, token.NOT_EQ:
		if left.T != right.T || left.IsFunction() {
			return typeError()
		}
		return values.MakeBool(left.Equals(right) == (op == token.EQ)), nil
	case token.AND, token.OR:
		if left.T != values.BOOL || right.T != values.BOOL {
			return typeError()
		}
		if op == token.AND {
			return values.MakeBool(left.V.(bool) && right.V.(bool)), nil
		}
		return values.MakeBool(left.V.(bool) || right.V.(bool)), nil
	}
	if left.T == values.STRING && right.T == values.STRING {
		l, r := left.V.(string), right.V.(string)
		switch op {
		case token.PLUS:
			return values.MakeString(l + r), nil
		case token.LT:
			return values.MakeBool(l < r), nil
		case token.LT_EQ:
			return values.MakeBool(l <= r), nil
		case token.GT:
			return values.MakeBool(l > r), nil
		case token.GT_EQ:
			return values.MakeBool(l >= r), nil
		}
		return typeError()
	}
	if left.T != values.INT || right.T != values.INT {
		return typeError()
	}
	l, r := left.V.(int), right.V.(int)
	switch op {
	case token.PLUS:
		return values.MakeInt(l + r), nil
	case token.MINUS:
		return values.MakeInt(l - r), nil
	case token.ASTERISK:
		return values.MakeInt(l * r), nil
	case token.SLASH:
		if r == 0 {
			return values.UNDEFINED, newError("eval/div/zero", tok)
		}
		return values.MakeInt(l / r), nil
	case token.PERCENT:
		if r == 0 {
			return values.UNDEFINED, newError("eval/div/zero", tok)
		}
		return values.MakeInt(l % r), nil
	case token.AMPERSAND:
		return values.MakeInt(l & r), nil
	case token.PIPE:
		return values.MakeInt(l | r), nil
	case token.CARET:
		return values.MakeInt(l ^ r), nil
	case token.SHL:
		if r < 0 {
			return values.UNDEFINED, newError("eval/shift", tok, r)
		}
		return values.MakeInt(l << r), nil
	case token.SHR:
		if r < 0 {
			return values.UNDEFINED, newError("eval/shift", tok, r)
		}
		return values.MakeInt(l >> r), nil
	case token.LT:
		return values.MakeBool(l < r), nil
	case token.LT_EQ:
		return values.MakeBool(l <= r), nil
	case token.GT:
		return values.MakeBool(l > r), nil
	case token.GT_EQ:
		return values.MakeBool(l >= r), nil
	}
	return typeError()
}
