package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jcgregorio/logger"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/parsemaths/internal/config"
	"github.com/zephyrtronium/parsemaths/internal/repl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}

// exitCode gives the process status for the result of a command. An
// interrupt ends a session normally.
func exitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

type options struct {
	cfgFile string
	verbose bool
	echo    bool
	color   bool
	format  string
	inname  string
}

func newRootCmd(stdin io.Reader, stdout io.Writer, logs logger.SyncWriter) *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:   "parsemaths",
		Short: "Evaluate arithmetic expressions",
		Long: `parsemaths evaluates arithmetic expressions over real numbers, such as
2*3+(4-5)+2^3/4. It supports + - * / and ^, unary minus, parentheses, and
implicit multiplication between parenthesized groups, e.g. (1+2)(3+4).

With no subcommand, it reads one expression per line from stdin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd, stdin, stdout, logs)
			if err != nil {
				return err
			}
			return s.Run(cmd.Context())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file (.toml, .yaml, or .yml)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug messages to stderr")
	pf.BoolVar(&o.echo, "echo", false, "print parse trees")
	pf.BoolVar(&o.color, "color", true, "style output for a terminal")
	pf.StringVar(&o.format, "fmt", "%g", "result formatting string")

	eval := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions from arguments or a file",
		Long: `eval evaluates each argument as an expression and prints one result per line.
With --in, each line of the file is also an expression; --in - reads stdin,
which is the default when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session(cmd, stdin, stdout, logs)
			if err != nil {
				return err
			}
			inname := o.inname
			if inname == "" && len(args) == 0 {
				inname = "-"
			}
			lines, err := readLines(inname, stdin)
			if err != nil {
				return err
			}
			return s.RunBatch(cmd.Context(), append(lines, args...))
		},
	}
	eval.Flags().StringVar(&o.inname, "in", "", `input file, one expression per line ("-" for stdin)`)
	root.AddCommand(eval)
	return root
}

// session loads the config file and applies any flags given explicitly on top
// of it.
func (o *options) session(cmd *cobra.Command, stdin io.Reader, stdout io.Writer, logs logger.SyncWriter) (*repl.Session, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("echo") {
		cfg.Echo = o.echo
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("fmt") {
		cfg.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.NewFromOptions(&logger.Options{
		SyncWriter:   logs,
		IncludeDebug: cfg.Verbose,
	})
	log.Debugf("config: %+v", *cfg)
	return repl.New(cfg, stdin, stdout, log), nil
}

func readLines(inname string, stdin io.Reader) ([]string, error) {
	var r io.Reader
	switch inname {
	case "":
		return nil, nil
	case "-":
		r = stdin
	default:
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inname, err)
	}
	return lines, nil
}
