package repl

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// EvalLines evaluates each non-blank line with at most workers evaluations in
// flight. Results are in input order, numbered by their line in lines. If any
// expression is invalid, the returned error is a *multierror.Error holding
// one error per failed line, and the results are still returned. If ctx ends
// first, the results are nil.
func EvalLines(ctx context.Context, workers int, lines []string) ([]Result, error) {
	var idx []int
	for i, line := range lines {
		if StripSpace(line) != "" {
			idx = append(idx, i)
		}
	}
	results := make([]Result, len(idx))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for k, i := range idx {
		k, i := k, i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := Evaluate(StripSpace(lines[i]))
			r.Line = i + 1
			results[k] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var errs *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %q: %w", r.Line, r.Expr, r.Err))
		}
	}
	return results, errs.ErrorOrNil()
}
