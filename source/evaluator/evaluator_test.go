package evaluator_test

import (
	"fmt"
	"testing"

	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/evaluator"
	"github.com/tim-hardcastle/curly/source/parser"
	"github.com/tim-hardcastle/curly/source/test_helper"
)

func TestEvaluator(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `4`, Want: `4`},
		{Input: `0x1F`, Want: `31`},
		{Input: `1_000`, Want: `1000`},
		{Input: `true`, Want: `true`},
		{Input: `"a\tb"`, Want: "a\tb"},
		{Input: `+`, Want: `+`},
		{Input: `{+ 4 7}`, Want: `11`},
		{Input: `{- 4 7}`, Want: `-3`},
		{Input: `{* 6 7}`, Want: `42`},
		{Input: `{/ 7 2}`, Want: `3`},
		{Input: `{% 7 2}`, Want: `1`},
		{Input: `{& 6 3}`, Want: `2`},
		{Input: `{| 6 3}`, Want: `7`},
		{Input: `{^ 6 3}`, Want: `5`},
		{Input: `{<< 1 4}`, Want: `16`},
		{Input: `{>> 16 2}`, Want: `4`},
		{Input: `{== 1 1}`, Want: `true`},
		{Input: `{!= "a" "a"}`, Want: `false`},
		{Input: `{< 1 2}`, Want: `true`},
		{Input: `{<= 2 2}`, Want: `true`},
		{Input: `{> "b" "a"}`, Want: `true`},
		{Input: `{>= 1 2}`, Want: `false`},
		{Input: `{&& true false}`, Want: `false`},
		{Input: `{|| false true}`, Want: `true`},
		{Input: `{+ "Hello, " "world!"}`, Want: `Hello, world!`},
		{Input: `{if true 5 7}`, Want: `5`},
		{Input: `{if false 5 7}`, Want: `7`},
		{Input: `{if {< 2 1} "yes" "no"}`, Want: `no`},
		{Input: `{{proc (a) {* a a}} 7}`, Want: `49`},
		{Input: `{{proc ([a : int] [b : int]) : int {- a b}} 10 3}`, Want: `7`},
		{Input: `{declare ([x 4] [y 7]) in {+ x y}}`, Want: `11`},
		{Input: `{declare ([a 1] [b 2] [c 3]) in {- {- a b} c}}`, Want: `-4`},
		{Input: `{declare ([x 1]) in {declare ([x 2]) in x}}`, Want: `2`},
		{Input: `{{proc (f) {f 1 2}} +}`, Want: `3`},
		{Input: `{{proc (f) {f 3 4}} {proc (a b) {* a b}}}`, Want: `12`},
		{Input: `{declare ([adder {proc (n) {proc (m) {+ n m}}}]) in {{adder 3} 4}}`, Want: `7`},
		{Input: `{sq 7}`, Want: `49`},
		{Input: `{strlen "Hello!"}`, Want: `6`},
		{Input: `{abs {- 0 5}}`, Want: `5`},
		{Input: `{max 3 9}`, Want: `9`},
		{Input: `{min 3 9}`, Want: `3`},
		{Input: `{concat "foo" "bar"}`, Want: `foobar`},
		{Input: `{not false}`, Want: `true`},
		{Input: `{&& false {/ 1 0}}`, Want: `false`},
		{Input: `{|| true {undefined}}`, Want: `true`},
		{Input: `{proc (x) x}`, Want: `{proc (x) x}`},
	}
	test_helper.RunTest(t, tests, testEvaluatorOutput)
}

func TestEvaluatorErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `{+ 1 2 3}`, Want: `lower/arity`},
		{Input: `{if true 1 {+ 1}}`, Want: `lower/arity`},
		{Input: `x`, Want: `eval/ident`},
		{Input: `{if 1 2 3}`, Want: `eval/if/bool`},
		{Input: `{/ 1 0}`, Want: `eval/div/zero`},
		{Input: `{% 1 0}`, Want: `eval/div/zero`},
		{Input: `{<< 1 {- 0 1}}`, Want: `eval/shift`},
		{Input: `{+ 1 "a"}`, Want: `eval/op/type`},
		{Input: `{- "a" "b"}`, Want: `eval/op/type`},
		{Input: `{== 1 true}`, Want: `eval/op/type`},
		{Input: `{== sq sq}`, Want: `eval/op/type`},
		{Input: `{&& 1 true}`, Want: `eval/op/type`},
		{Input: `{&& true 1}`, Want: `eval/op/type`},
		{Input: `{{proc (a b) a} 1}`, Want: `eval/apply/arity`},
		{Input: `{{proc (f) {f 1 2 3}} +}`, Want: `eval/apply/arity`},
		{Input: `{sq 1 2}`, Want: `eval/apply/arity`},
		{Input: `{1 2}`, Want: `eval/apply/func`},
		{Input: `{sq "a"}`, Want: `eval/builtin`},
		{Input: `{{proc (f) {f f}} {proc (f) {f f}}}`, Want: `eval/depth`},
	}
	test_helper.RunErrorTest(t, tests, testEvaluatorOutput)
}

func TestArityErrorsAreAllReported(t *testing.T) {
	node, errs := parser.ParseLine("test", `{f {+ 1} {* 1 2 3}}`)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %s", errs.String())
	}
	errs = evaluator.CheckArity(node)
	if len(errs) != 2 {
		t.Fatalf("expected 2 arity errors, got %d", len(errs))
	}
}

func TestMaxDepth(t *testing.T) {
	// Counting down from n takes about 2n levels of evaluation.
	countdown := `{declare ([down {proc (self n) {if {== n 0} "done" {self self {- n 1}}}}]) in {down down %d}}`
	tests := []struct {
		n       int
		wantErr bool
	}{
		{10, false},
		{100, true},
	}
	for i, tt := range tests {
		node, errs := parser.ParseLine("test", fmt.Sprintf(countdown, tt.n))
		if len(errs) > 0 {
			t.Fatalf("tests[%d] - unexpected errors: %s", i, errs.String())
		}
		ev := evaluator.New(nil)
		ev.MaxDepth = 100
		v, errs := ev.Evaluate(node)
		if tt.wantErr {
			if len(errs) != 1 || errs[0].ErrorId != "eval/depth" {
				t.Fatalf("tests[%d] - expected eval/depth, got %v", i, errs.Ids())
			}
			continue
		}
		if len(errs) > 0 || v.String() != "done" {
			t.Fatalf("tests[%d] - expected done, got %s %s", i, v.String(), errs.String())
		}
		// Evaluating again starts from zero depth.
		if _, errs := ev.Evaluate(node); len(errs) > 0 {
			t.Fatalf("tests[%d] - second evaluation failed: %s", i, errs.String())
		}
	}
}

func TestHostFunctions(t *testing.T) {
	env := evaluator.NewEnvironment().
		With("triple", evaluator.MakeBuiltin(evaluator.IntFunction("triple", 1, func(args ...int) int { return 3 * args[0] })))
	node, _ := parser.ParseLine("test", `{triple 14}`)
	v, errs := evaluator.New(env).Evaluate(node)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %s", errs.String())
	}
	if v.String() != "42" {
		t.Fatalf("expected 42, got %s", v.String())
	}
	node, _ = parser.ParseLine("test", `{sq 2}`)
	if _, errs := evaluator.New(env).Evaluate(node); len(errs) == 0 || errs[0].ErrorId != "eval/ident" {
		t.Fatalf("expected sq to be unknown in a bare environment")
	}
}

func testEvaluatorOutput(s string) (string, err.Errors) {
	node, errs := parser.ParseLine("test", s)
	if len(errs) > 0 {
		return "", errs
	}
	v, errs := evaluator.New(nil).Evaluate(node)
	if len(errs) > 0 {
		return "", errs
	}
	return v.String(), nil
}
