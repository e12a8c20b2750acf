// Package repl drives the calculator: it reads expressions, strips their
// whitespace, evaluates them, and writes the outcome for a person to read.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jcgregorio/slog"

	"github.com/zephyrtronium/parsemaths"
	"github.com/zephyrtronium/parsemaths/internal/config"
)

// Messages shown to the user.
const (
	Banner = `Hello, world! Welcome to Arithmetic expression evaluator.
You can calculate value for expression such as 2*3+(4-5)+2^3/4.
Allowed numbers: positive, negative and decimals.
Supported operations: Add, Subtract, Multiply, Divide, PowerOf(^).
Enter your arithmetic expression below:
`
	ResultPrefix = "The computed number is "
	TreePrefix   = "The generated AST is "
	InvalidInput = "Error in evaluating expression. Please enter valid expression"
)

// Session is an interactive calculator session. It is not safe to use
// concurrently.
type Session struct {
	cfg *config.Config
	in  io.Reader
	out io.Writer
	log slog.Logger

	resultStyle lipgloss.Style
	errStyle    lipgloss.Style
	bannerStyle lipgloss.Style
}

// New creates a session reading expressions from in and writing outcomes to
// out.
func New(cfg *config.Config, in io.Reader, out io.Writer, log slog.Logger) *Session {
	return &Session{
		cfg:         cfg,
		in:          in,
		out:         out,
		log:         log,
		resultStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		bannerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// paint applies st to text if color is enabled.
func (s *Session) paint(st lipgloss.Style, text string) string {
	if !s.cfg.Color {
		return text
	}
	return st.Render(text)
}

// Run reads one expression per line until the input ends or ctx is done.
// Blank lines are skipped. Invalid expressions are reported to the user and
// do not end the session; the only errors returned are from reading the
// input or from ctx.
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.Banner {
		fmt.Fprint(s.out, s.paint(s.bannerStyle, Banner))
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, errc := s.scan(ctx)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.cfg.Prompt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					s.log.Errorf("reading input: %s", err)
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			n++
			expr := StripSpace(text)
			if expr == "" {
				continue
			}
			r := Evaluate(expr)
			r.Line = n
			s.show(r)
		}
	}
}

// scan reads lines from the session input in its own goroutine so that Run
// can stop waiting when ctx is done. The goroutine stays blocked in a read
// until the input produces data or fails. Once lines is closed, errc holds
// the scanner's error.
func (s *Session) scan(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()
	return lines, errc
}

// show writes the outcome of one evaluation.
func (s *Session) show(r Result) {
	if r.Err != nil {
		s.log.Debugf("line %d: %q: %s", r.Line, r.Expr, r.Err)
		fmt.Fprintln(s.out, s.paint(s.errStyle, InvalidInput))
		return
	}
	s.log.Debugf("line %d: %q parsed as %v = %v in %s", r.Line, r.Expr, r.Tree, r.Value, r.Elapsed)
	if s.cfg.Echo {
		fmt.Fprintln(s.out, TreePrefix+r.Tree.String())
	}
	fmt.Fprintln(s.out, ResultPrefix+s.paint(s.resultStyle, fmt.Sprintf(s.cfg.Format, r.Value)))
}

// RunBatch evaluates lines independently and writes one outcome per
// non-blank line, in order. The error lists every line that failed.
func (s *Session) RunBatch(ctx context.Context, lines []string) error {
	results, err := EvalLines(ctx, s.cfg.Workers, lines)
	if results == nil && err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			s.log.Debugf("line %d: %q: %s", r.Line, r.Expr, r.Err)
			fmt.Fprintln(s.out, s.paint(s.errStyle, fmt.Sprintf("%d: %s", r.Line, r.Err)))
			continue
		}
		if s.cfg.Echo {
			fmt.Fprintln(s.out, TreePrefix+r.Tree.String())
		}
		fmt.Fprintln(s.out, s.paint(s.resultStyle, fmt.Sprintf(s.cfg.Format, r.Value)))
	}
	return err
}

// StripSpace removes all whitespace from s.
func StripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Result is the outcome of evaluating one expression.
type Result struct {
	// Line is the 1-based line number of the expression in its input, or 0
	// if it has none.
	Line int
	// Expr is the expression with whitespace removed.
	Expr string
	// Tree is the parsed expression. It is nil if parsing failed.
	Tree *parsemaths.Node
	// Value is the value of the expression.
	Value float64
	// Err is the parse error, if any.
	Err error
	// Elapsed is the time spent parsing and evaluating.
	Elapsed time.Duration
}

// Evaluate parses and evaluates one expression, which must already have its
// whitespace removed.
func Evaluate(expr string) Result {
	start := time.Now()
	r := Result{Expr: expr}
	r.Tree, r.Err = parsemaths.ParseString(expr)
	if r.Err == nil {
		r.Value = r.Tree.Eval()
	}
	r.Elapsed = time.Since(start)
	return r
}
