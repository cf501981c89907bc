package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/keypad"
)

// app holds state shared by all commands.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	in      string
	echo    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "calculator [expr...]",
		Short: "Evaluate four-function arithmetic",
		Long: `Evaluates expressions like "4 + 5 * 2" with * and / binding more tightly
than + and -, left to right otherwise. Tokens are separated by single spaces.
Each argument is one expression. With no arguments, expressions are read one
per line from --in or stdin.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runEval,
	}
	pf := root.PersistentFlags()
	pf.Bool("strict", false, "reject tokens that are neither numbers nor operators")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log each evaluation to stderr")
	pf.StringVar(&a.in, "in", "", "input file, one expression per line (default stdin if no args given)")

	f := root.Flags()
	f.String("fmt", "", "result formatting verb, e.g. %g (default calculator display style)")
	f.BoolVar(&a.echo, "echo", false, "print the postfix form before each result")

	root.AddCommand(newPostfixCmd(a), newTUICmd(a), newVersionCmd())
	return root
}

// setup loads configuration, applies flag overrides, and creates the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Lookup("fmt") != nil && flags.Changed("fmt") {
		cfg.Format, _ = flags.GetString("fmt")
	}
	if flags.Lookup("dark") != nil && flags.Changed("dark") {
		if dark, _ := flags.GetBool("dark"); dark {
			cfg.Theme = config.ThemeDark
		} else {
			cfg.Theme = config.ThemeLight
		}
	}
	a.cfg = cfg

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured", "strict", cfg.Strict, "format", cfg.Format, "theme", cfg.Theme)
	return nil
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	exprs, err := a.inputs(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	failed := 0
	for _, src := range exprs {
		e, err := calculator.Parse(src, a.cfg.Options()...)
		if err == nil {
			if a.echo {
				fmt.Fprintf(out, "%v : ", e)
			}
			var r float64
			r, err = e.Eval()
			if err == nil {
				a.log.Debug("evaluated", "expr", src, "postfix", e.String(), "result", r)
				fmt.Fprintln(out, a.format(r))
				continue
			}
		}
		failed++
		a.log.Debug("evaluation failed", "expr", src, "err", err)
		fmt.Fprintln(out, err)
	}
	return failures(failed, len(exprs))
}

func (a *app) format(r float64) string {
	if a.cfg.Format == "" {
		return keypad.Format(r)
	}
	return fmt.Sprintf(a.cfg.Format, r)
}

// inputs collects expressions from the input file, then the arguments. Stdin
// is read only when there is neither.
func (a *app) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	var exprs []string
	r, closer, err := infile(a.in, len(args) == 0, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if r != nil {
		defer closer.Close()
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			exprs = append(exprs, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
	return append(exprs, args...), nil
}

func infile(inname string, std bool, stdin io.Reader) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, f, nil
	case inname == "-", std:
		return stdin, io.NopCloser(nil), nil
	}
	return nil, nil, nil
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d expressions failed", failed, total)
}
