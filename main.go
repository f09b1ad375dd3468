// Curly is a small functional language written in braces. The curly command parses, prints,
// evaluates and lowers Curly expressions to Go, and keeps named expressions in an SQL archive.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tim-hardcastle/curly/source/hub"
	"github.com/tim-hardcastle/curly/source/logging"
	"github.com/tim-hardcastle/curly/source/repl"
	"github.com/tim-hardcastle/curly/source/settings"
	"github.com/tim-hardcastle/curly/source/text"
)

// The hub has already written out what went wrong.
var errReported = errors.New("reported")

type rootEnv struct {
	configPath string
	noColor    bool
	verbose    bool
	prelude    string
	program    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err != errReported {
			fmt.Fprintln(os.Stderr, text.ErrorLabel()+err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	env := &rootEnv{}
	root := &cobra.Command{
		Use:           "curly",
		Short:         "Parse, print, evaluate and lower Curly expressions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          env.runRepl,
	}
	root.PersistentFlags().StringVar(&env.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVar(&env.noColor, "no-color", false, "Turn off colored output")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log debugging information to stderr")

	lower := &cobra.Command{
		Use:   "lower EXPR",
		Short: "Write the Go equivalent of the expression.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  env.runLower,
	}
	lower.Flags().BoolVar(&env.program, "program", false, "Write a complete Go program printing the value")
	lower.Flags().StringVar(&env.prelude, "prelude", "", "Go source declaring the functions the program may call")

	archive := &cobra.Command{
		Use:   "archive",
		Short: "Manage the archive of named expressions.",
	}
	archive.AddCommand(
		&cobra.Command{
			Use:   "save NAME EXPR",
			Short: "Save the expression under the given name.",
			Args:  cobra.MinimumNArgs(2),
			RunE: env.withHub(func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error) {
				expr, err := expression(cmd.InOrStdin(), args[1:])
				if err != nil {
					return false, err
				}
				return hb.Save(cmd.Context(), args[0], expr), nil
			}),
		},
		&cobra.Command{
			Use:   "show NAME",
			Short: "Show the named expression and its value.",
			Args:  cobra.ExactArgs(1),
			RunE: env.withHub(func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error) {
				return hb.Load(cmd.Context(), args[0]), nil
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the archive.",
			Args:  cobra.NoArgs,
			RunE: env.withHub(func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error) {
				return hb.List(cmd.Context()), nil
			}),
		},
		&cobra.Command{
			Use:   "delete NAME",
			Short: "Remove the named expression from the archive.",
			Args:  cobra.ExactArgs(1),
			RunE: env.withHub(func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error) {
				return hb.Delete(cmd.Context(), args[0]), nil
			}),
		},
	)

	root.AddCommand(
		&cobra.Command{
			Use:   "print EXPR",
			Short: "Write the structure of the expression.",
			Args:  cobra.MinimumNArgs(1),
			RunE:  env.withExpression((*hub.Hub).Print),
		},
		&cobra.Command{
			Use:   "eval EXPR",
			Short: "Write the value of the expression.",
			Args:  cobra.MinimumNArgs(1),
			RunE:  env.withExpression((*hub.Hub).Eval),
		},
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive shell.",
			Args:  cobra.NoArgs,
			RunE:  env.runRepl,
		},
		lower,
		archive,
	)
	return root
}

func (env *rootEnv) makeHub(out io.Writer) (*hub.Hub, *settings.Config, error) {
	cfg, err := settings.Load(env.configPath)
	if err != nil {
		return nil, nil, err
	}
	if env.prelude != "" {
		cfg.Prelude = env.prelude
	}
	cfg.Log.Verbose = cfg.Log.Verbose || env.verbose
	logging.SetLogger(logging.New(os.Stderr, cfg.Log.Verbose))
	text.SetColor(cfg.Color && !env.noColor)
	hb, err := hub.New(out, cfg)
	if err != nil {
		return nil, nil, err
	}
	return hb, cfg, nil
}

func (env *rootEnv) withHub(f func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		hb, _, err := env.makeHub(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer hb.Close()
		hb.Source = "command line"
		ok, err := f(cmd, hb, args)
		if err != nil {
			return err
		}
		if !ok {
			return errReported
		}
		return nil
	}
}

func (env *rootEnv) withExpression(f func(*hub.Hub, string) bool) func(*cobra.Command, []string) error {
	return env.withHub(func(cmd *cobra.Command, hb *hub.Hub, args []string) (bool, error) {
		expr, err := expression(cmd.InOrStdin(), args)
		if err != nil {
			return false, err
		}
		return f(hb, expr), nil
	})
}

func (env *rootEnv) runLower(cmd *cobra.Command, args []string) error {
	if env.program {
		return env.withExpression((*hub.Hub).Program)(cmd, args)
	}
	return env.withExpression((*hub.Hub).Lower)(cmd, args)
}

func (env *rootEnv) runRepl(cmd *cobra.Command, args []string) error {
	hb, cfg, err := env.makeHub(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer hb.Close()
	repl.Start(cmd.Context(), hb, cfg.Prompt)
	return nil
}

// The expression is the arguments joined by spaces, or the whole of stdin if the only argument is "-".
func expression(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}
