package test_helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/text"
)

// Auxiliary types and functions for testing the parser, printer, compiler, and evaluator.

type TestItem struct {
	Input string
	Want  string
}

// Runs F on each input and compares the result with what we want. The inputs must not
// produce errors.
func RunTest(t *testing.T, tests []TestItem, F func(s string) (string, err.Errors)) {
	t.Helper()
	for i, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		got, e := F(test.Input)
		if len(e) > 0 {
			t.Fatalf("tests[%d] - there were errors with input %s:\n%s", i, test.Input, e.String())
		}
		if diff := cmp.Diff(test.Want, got); diff != "" {
			t.Fatalf("tests[%d] - test failed with input %s (-want +got):\n%s", i, test.Input, diff)
		}
	}
}

// Runs F on each input, which must produce an error, and compares the identifier of the first
// error with the one we want.
func RunErrorTest(t *testing.T, tests []TestItem, F func(s string) (string, err.Errors)) {
	t.Helper()
	for i, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		got, e := F(test.Input)
		if len(e) == 0 {
			t.Fatalf("tests[%d] - expected error %s with input %s, got result %s", i, test.Want, test.Input, got)
		}
		if e[0].ErrorId != test.Want {
			t.Fatalf("tests[%d] - wrong error with input %s | Wanted : %s | Got : %s (%s).",
				i, test.Input, test.Want, e[0].ErrorId, e[0].Message)
		}
	}
}
