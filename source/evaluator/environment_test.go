package evaluator

import (
	"testing"

	"github.com/tim-hardcastle/curly/source/values"
)

func TestEnvironmentIsPersistent(t *testing.T) {
	env := NewEnvironment()
	a := env.With("x", values.MakeInt(1))
	b := a.With("x", values.MakeInt(2)).With("y", values.TRUE)
	if _, ok := env.Get("x"); ok {
		t.Fatalf("binding x changed the original environment")
	}
	if v, _ := a.Get("x"); v.V.(int) != 1 {
		t.Fatalf("rebinding x changed the environment it was rebound in")
	}
	if v, _ := b.Get("x"); v.V.(int) != 2 {
		t.Fatalf("expected x to be 2, got %s", v.String())
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 names, got %d", b.Len())
	}
}

func TestDefaultEnvironmentNames(t *testing.T) {
	want := []string{"abs", "concat", "max", "min", "not", "sq", "strlen"}
	got := DefaultEnvironment().Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tests[%d] - name wrong. expected=%s, got=%s", i, want[i], got[i])
		}
	}
}
