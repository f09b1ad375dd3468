package hub_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tim-hardcastle/curly/source/hub"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/text"
)

func newTestHub(t *testing.T) (*hub.Hub, *bytes.Buffer) {
	text.SetColor(false)
	cfg := settings.Default()
	cfg.Archive.DSN = ":memory:"
	out := &bytes.Buffer{}
	h, e := hub.New(out, cfg)
	require.NoError(t, e)
	t.Cleanup(func() { require.NoError(t, h.Close()) })
	return h, out
}

func TestEvaluatesPlainLines(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	require.False(t, h.Do(ctx, `{+ 4 7}`))
	require.Equal(t, "11\n", out.String())
	out.Reset()
	require.False(t, h.Do(ctx, `:eval {declare ([x 2] [y 3]) in {* x y}}`))
	require.Equal(t, "6\n", out.String())
}

func TestIgnoresBlankLines(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	require.False(t, h.Do(ctx, ""))
	require.False(t, h.Do(ctx, "   "))
	require.False(t, h.Do(ctx, "// a comment"))
	require.Empty(t, out.String())
}

func TestPrintAndLower(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	h.Do(ctx, `:print {+ 4 7}`)
	require.Equal(t, "Application:\nProcedure:\n  BinOp: +\nArguments:\nArg 0:\n  Number: 4\nArg 1:\n  Number: 7\n", out.String())
	out.Reset()
	h.Do(ctx, `:lower {+ 4 7}`)
	require.Equal(t, "(4 + 7)\n", out.String())
	out.Reset()
	h.Do(ctx, `:program {sq 3}`)
	require.Contains(t, out.String(), "package main")
	require.Contains(t, out.String(), "fmt.Println(sq(3))")
}

func TestErrorsAndWhy(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	require.False(t, h.Do(ctx, `{+ 1 2 3}`))
	require.Contains(t, out.String(), "[0] error: ")
	require.Contains(t, out.String(), ":why")
	out.Reset()
	h.Do(ctx, `:why 0`)
	require.NotEmpty(t, out.String())
	out.Reset()
	h.Do(ctx, `:why 7`)
	require.Contains(t, out.String(), "there is no error number 7")
	out.Reset()
	h.Do(ctx, `:why x`)
	require.Contains(t, out.String(), "error: ")
}

func TestWhyOnlyExplainsTheLastLine(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	h.Do(ctx, `{+ 1 2 3}`)
	h.Do(ctx, `{+ 1 2}`)
	out.Reset()
	h.Do(ctx, `:why 0`)
	require.Contains(t, out.String(), "there are no recent errors")
	h.Do(ctx, `{1 2}`)
	out.Reset()
	h.Do(ctx, `:why 0`)
	require.NotContains(t, out.String(), "no recent errors")
	out.Reset()
	h.Do(ctx, `:why 0`)
	require.NotContains(t, out.String(), "no recent errors")
}

func TestMaxDepthFromConfig(t *testing.T) {
	text.SetColor(false)
	cfg := settings.Default()
	cfg.MaxDepth = 20
	out := &bytes.Buffer{}
	h, e := hub.New(out, cfg)
	require.NoError(t, e)
	countdown := `{declare ([down {proc (self n) {if {== n 0} "done" {self self {- n 1}}}}]) in {down down %d}}`
	require.True(t, h.Eval(fmt.Sprintf(countdown, 3)))
	require.Equal(t, "done\n", out.String())
	out.Reset()
	require.False(t, h.Eval(fmt.Sprintf(countdown, 30)))
	require.Contains(t, out.String(), "nested more than 20 deep")
}

func TestUnknownCommand(t *testing.T) {
	h, out := newTestHub(t)
	require.False(t, h.Do(context.Background(), `:frobnicate`))
	require.Contains(t, out.String(), "unknown command ':frobnicate'")
}

func TestHelpAndQuit(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	require.False(t, h.Do(ctx, `:help`))
	require.Contains(t, out.String(), ":save NAME EXPR")
	out.Reset()
	require.True(t, h.Do(ctx, `:quit`))
	require.Contains(t, out.String(), "Have a nice day!")
}

func TestArchiveCommands(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()

	h.Do(ctx, `:list`)
	require.Equal(t, "The archive is empty.\n", out.String())
	out.Reset()

	h.Do(ctx, `:save seven   {+ 3 4}`)
	require.Equal(t, "OK\n", out.String())
	out.Reset()

	h.Do(ctx, `:load seven`)
	require.Contains(t, out.String(), "seven = {+ 3 4}")
	require.Contains(t, out.String(), "(3 + 4)")
	require.Contains(t, out.String(), "BinOp: +")
	require.Contains(t, out.String(), "\n7\n")
	out.Reset()

	h.Do(ctx, `:list`)
	require.Contains(t, out.String(), "NAME")
	require.Contains(t, out.String(), "seven")
	out.Reset()

	h.Do(ctx, `:delete seven`)
	require.Equal(t, "OK\n", out.String())
	out.Reset()

	h.Do(ctx, `:load seven`)
	require.Contains(t, out.String(), "no such expression in the archive")
}

func TestSaveRefusesBadExpressions(t *testing.T) {
	h, out := newTestHub(t)
	ctx := context.Background()
	h.Do(ctx, `:save bad {+ 1}`)
	require.Contains(t, out.String(), "[0] error: ")
	out.Reset()
	h.Do(ctx, `:save`)
	require.Contains(t, out.String(), "usage is")
	out.Reset()
	h.Do(ctx, `:list`)
	require.Equal(t, "The archive is empty.\n", out.String())
}

func TestCustomPrelude(t *testing.T) {
	text.SetColor(false)
	path := filepath.Join(t.TempDir(), "prelude.go")
	require.NoError(t, os.WriteFile(path, []byte("func twice(x int) int { return 2 * x }\n"), 0o644))
	cfg := settings.Default()
	cfg.Prelude = path
	out := &bytes.Buffer{}
	h, e := hub.New(out, cfg)
	require.NoError(t, e)
	h.Program(`{twice 4}`)
	require.Contains(t, out.String(), "func twice(x int) int")
	require.NotContains(t, out.String(), "func strlen")
}

func TestMissingPrelude(t *testing.T) {
	cfg := settings.Default()
	cfg.Prelude = filepath.Join(t.TempDir(), "nowhere.go")
	_, e := hub.New(&bytes.Buffer{}, cfg)
	require.Error(t, e)
}
