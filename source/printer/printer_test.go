package printer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/parser"
	"github.com/tim-hardcastle/curly/source/printer"
	"github.com/tim-hardcastle/curly/source/test_helper"
)

func TestLeaves(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `4`, Want: "Number: 4\n"},
		{Input: `0b101`, Want: "Number: 0b101\n"},
		{Input: `true`, Want: "Bool: true\n"},
		{Input: `"5"`, Want: "String: \"5\"\n"},
		{Input: `a`, Want: "Identifier: a\n"},
		{Input: `+`, Want: "BinOp: +\n"},
		{Input: `>=`, Want: "BinOp: >=\n"},
	}
	test_helper.RunTest(t, tests, testPrinterOutput)
}

func TestComposites(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `{+ 4 7}`,
			Want: `Application:
Procedure:
  BinOp: +
Arguments:
Arg 0:
  Number: 4
Arg 1:
  Number: 7
`},
		{Input: `{if true 5 {f}}`,
			Want: `If Expression:
Guard:
  Bool: true
Then:
  Number: 5
Other:
  Application:
  Procedure:
    Identifier: f
  Arguments:
`},
		{Input: `{proc ([a : u32] b) : u32 {* a b}}`,
			Want: `Procedure:
Parameters:
Param 0:
  Identifier: a : u32
Param 1:
  Identifier: b
Return Type Annotation: u32
Body:
  Application:
  Procedure:
    BinOp: *
  Arguments:
  Arg 0:
    Identifier: a
  Arg 1:
    Identifier: b
`},
		{Input: `{declare ([x 4]) in x}`,
			Want: `Application:
Procedure:
  Procedure:
  Parameters:
  Param 0:
    Identifier: x
  Return Type Annotation:
  Body:
    Identifier: x
Arguments:
Arg 0:
  Number: 4
`},
	}
	test_helper.RunTest(t, tests, testPrinterOutput)
}

func TestIndentIncreasesWithNesting(t *testing.T) {
	node, errs := parser.ParseLine("test", `{if {if c 1 2} 3 4}`)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %s", errs.String())
	}
	want := `    If Expression:
    Guard:
      If Expression:
      Guard:
        Identifier: c
      Then:
        Number: 1
      Other:
        Number: 2
    Then:
      Number: 3
    Other:
      Number: 4
`
	if got := printer.Print(node, 2); got != want {
		t.Fatalf("wrong trace at indent 2. expected=\n%s\ngot=\n%s", want, got)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("broken") }

func TestFprint(t *testing.T) {
	node, _ := parser.ParseLine("test", `{f 1}`)
	var buf bytes.Buffer
	if e := printer.Fprint(&buf, node, 0); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	if buf.String() != printer.Print(node, 0) {
		t.Fatalf("Fprint and Print disagree: %q", buf.String())
	}
	if e := printer.Fprint(brokenWriter{}, node, 0); e == nil {
		t.Fatalf("expected an error from a broken writer")
	}
}

func testPrinterOutput(s string) (string, err.Errors) {
	node, errs := parser.ParseLine("test", s)
	if len(errs) > 0 {
		return "", errs
	}
	return printer.Print(node, 0), nil
}
