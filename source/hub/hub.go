package hub

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tim-hardcastle/curly/source/archive"
	"github.com/tim-hardcastle/curly/source/ast"
	"github.com/tim-hardcastle/curly/source/compiler"
	"github.com/tim-hardcastle/curly/source/err"
	"github.com/tim-hardcastle/curly/source/evaluator"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/parser"
	"github.com/tim-hardcastle/curly/source/printer"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/text"
)

// The hub takes a line of input, from the REPL or the command line, and does what it says:
// either a command beginning with ':', or an expression to be evaluated.
type Hub struct {
	Source  string // What to call the input in error messages.
	cfg     *settings.Config
	out     io.Writer
	env     *evaluator.Environment
	prelude string
	archive *archive.Archive
	ers     err.Errors // The errors from the last line, for ':why'.
}

func New(out io.Writer, cfg *settings.Config) (*Hub, error) {
	prelude, e := cfg.ReadPrelude()
	if e != nil {
		return nil, e
	}
	if prelude == "" {
		prelude = compiler.DefaultPrelude
	}
	return &Hub{
		Source:  "REPL input",
		cfg:     cfg,
		out:     out,
		env:     evaluator.DefaultEnvironment(),
		prelude: prelude,
	}, nil
}

func (hub *Hub) Close() error {
	if hub.archive == nil {
		return nil
	}
	return hub.archive.Close()
}

var blankLine = regexp.MustCompile(`^\s*(|//.*)$`)

// Do does what the line says. It returns true if the line asks us to quit.
func (hub *Hub) Do(ctx context.Context, line string) bool {
	if blankLine.MatchString(line) {
		return false
	}
	logging.Debugf("hub: %s", line)
	if strings.Fields(line)[0] != ":why" {
		hub.ers = nil
	}
	if !strings.HasPrefix(strings.TrimSpace(line), ":") {
		hub.Eval(line)
		return false
	}
	verb, rest, _ := strings.Cut(strings.TrimSpace(line)[1:], " ")
	rest = strings.TrimSpace(rest)
	switch verb {
	case "print":
		hub.Print(rest)
	case "lower":
		hub.Lower(rest)
	case "program":
		hub.Program(rest)
	case "eval":
		hub.Eval(rest)
	case "save":
		name, expr, _ := strings.Cut(rest, " ")
		if name == "" || strings.TrimSpace(expr) == "" {
			hub.WriteError("usage is " + text.Emph(":save NAME EXPR"))
			return false
		}
		hub.Save(ctx, name, expr)
	case "load":
		hub.Load(ctx, rest)
	case "list":
		hub.List(ctx)
	case "delete":
		hub.Delete(ctx, rest)
	case "why":
		hub.Why(rest)
	case "help":
		hub.help()
	case "quit":
		hub.WriteString(text.Ok() + "\n" + text.Logo() + "Thank you for using Curly. Have a nice day!\n\n")
		return true
	default:
		hub.WriteError("unknown command " + text.Emph(":"+verb) + ", try " + text.Emph(":help"))
	}
	return false
}

func (hub *Hub) parse(line string) (ast.Node, bool) {
	node, errs := parser.ParseLine(hub.Source, line)
	if len(errs) > 0 {
		hub.WriteErrors(errs)
		return nil, false
	}
	return node, true
}

func (hub *Hub) compiler() *compiler.Compiler {
	return compiler.New(compiler.Options{DefaultType: hub.cfg.DefaultType})
}

// Print writes the structural trace of the expression.
func (hub *Hub) Print(line string) bool {
	node, ok := hub.parse(line)
	if !ok {
		return false
	}
	hub.WriteString(printer.Print(node, 0))
	return true
}

// Lower writes the Go expression equivalent to the expression.
func (hub *Hub) Lower(line string) bool {
	node, ok := hub.parse(line)
	if !ok {
		return false
	}
	code, errs := hub.compiler().Lower(node)
	if len(errs) > 0 {
		hub.WriteErrors(errs)
		return false
	}
	hub.WriteString(code + "\n")
	return true
}

// Program writes a Go program which prints the value of the expression.
func (hub *Hub) Program(line string) bool {
	node, ok := hub.parse(line)
	if !ok {
		return false
	}
	code, errs := hub.compiler().Program(node, hub.prelude)
	if len(errs) > 0 {
		hub.WriteErrors(errs)
		return false
	}
	hub.WriteString(code)
	return true
}

// Eval writes the value of the expression.
func (hub *Hub) Eval(line string) bool {
	node, ok := hub.parse(line)
	if !ok {
		return false
	}
	if logging.DebugEnabled() {
		logging.Debugf("hub: evaluating\n%s", printer.Print(node, 0))
	}
	ev := evaluator.New(hub.env)
	ev.MaxDepth = hub.cfg.MaxDepth
	val, errs := ev.Evaluate(node)
	if len(errs) > 0 {
		hub.WriteErrors(errs)
		return false
	}
	hub.WriteString(val.String() + "\n")
	return true
}

func (hub *Hub) getArchive(ctx context.Context) (*archive.Archive, error) {
	if hub.archive != nil {
		return hub.archive, nil
	}
	a, e := archive.Open(ctx, hub.cfg.Archive.Driver, hub.cfg.Archive.DSN)
	if e != nil {
		return nil, e
	}
	hub.archive = a
	return a, nil
}

// Save stores the expression in the archive, together with its trace and Go code. Expressions
// that don't parse or lower aren't saved.
func (hub *Hub) Save(ctx context.Context, name, line string) bool {
	node, ok := hub.parse(line)
	if !ok {
		return false
	}
	code, errs := hub.compiler().Lower(node)
	if len(errs) > 0 {
		hub.WriteErrors(errs)
		return false
	}
	a, e := hub.getArchive(ctx)
	if e != nil {
		hub.writeHostError(e)
		return false
	}
	entry := &archive.Entry{Name: name, Source: node.String(), Trace: printer.Print(node, 0), Code: code}
	if e := a.Put(ctx, entry); e != nil {
		hub.writeHostError(e)
		return false
	}
	logging.Debugf("hub: saved %q", name)
	hub.WriteString(text.Ok() + "\n")
	return true
}

// Load writes out what the archive has on the named expression, and its value.
func (hub *Hub) Load(ctx context.Context, name string) bool {
	a, e := hub.getArchive(ctx)
	if e != nil {
		hub.writeHostError(e)
		return false
	}
	entry, e := a.Get(ctx, name)
	if e != nil {
		hub.WriteError(describeArchiveError(e))
		return false
	}
	hub.WriteString(fmt.Sprintf("%s = %s\n\n%s\n%s\n\n", text.Cyan(entry.Name), entry.Source, entry.Trace, entry.Code))
	return hub.Eval(entry.Source)
}

func (hub *Hub) List(ctx context.Context) bool {
	a, e := hub.getArchive(ctx)
	if e != nil {
		hub.writeHostError(e)
		return false
	}
	entries, e := a.List(ctx)
	if e != nil {
		hub.writeHostError(e)
		return false
	}
	if len(entries) == 0 {
		hub.WriteString("The archive is empty.\n")
		return true
	}
	archive.WriteTable(hub.out, entries)
	return true
}

func (hub *Hub) Delete(ctx context.Context, name string) bool {
	a, e := hub.getArchive(ctx)
	if e != nil {
		hub.writeHostError(e)
		return false
	}
	if e := a.Delete(ctx, name); e != nil {
		hub.WriteError(describeArchiveError(e))
		return false
	}
	hub.WriteString(text.Ok() + "\n")
	return true
}

func describeArchiveError(e error) string {
	if errors.Is(e, archive.ErrNotFound) {
		return e.Error()
	}
	return "archive: " + e.Error()
}

// Why explains the error with the given number from the last line.
func (hub *Hub) Why(arg string) {
	if len(hub.ers) == 0 {
		hub.WriteError("there are no recent errors")
		return
	}
	n := 0
	if arg != "" {
		var e error
		n, e = strconv.Atoi(arg)
		if e != nil {
			hub.WriteError("the argument of " + text.Emph(":why") + " should be the number of an error")
			return
		}
	}
	hub.WriteString(text.Indent(hub.ers.Explain(n), text.BULLET_SPACING) + "\n")
}

var helpText = []string{
	"an expression, e.g. '{+ 4 7}', is evaluated",
	":print EXPR shows the structure of the expression",
	":lower EXPR shows the equivalent Go expression",
	":program EXPR shows a Go program printing the value",
	":eval EXPR evaluates the expression",
	":save NAME EXPR puts the expression in the archive",
	":load NAME shows an expression from the archive",
	":list lists the archive",
	":delete NAME removes an expression from the archive",
	":why N explains error N from the last line",
	":quit says goodbye",
}

func (hub *Hub) help() {
	hub.WriteString("\n")
	for _, v := range helpText {
		hub.WriteString(text.BULLET + v + "\n")
	}
	hub.WriteString("\n")
}

func (hub *Hub) WriteErrors(errs err.Errors) {
	hub.ers = errs
	hub.WriteString(err.GetList(errs))
	hub.WriteString("\nFor more information about an error type ':why <error number>'.\n")
}

// Reports a failure of the host, e.g. of the database, rather than of the user's code.
func (hub *Hub) writeHostError(e error) {
	logging.Errorf("hub: %v", e)
	hub.WriteError(e.Error())
}

func (hub *Hub) WriteError(s string) {
	hub.WriteString(text.ErrorLabel() + s + "\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.out, s)
}
