package calc

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/calebcase/bigint/integer"
)

type binary func(a, b integer.Int) (integer.Int, error)

func total(fn func(a, b integer.Int) integer.Int) binary {
	return func(a, b integer.Int) (integer.Int, error) {
		return fn(a, b), nil
	}
}

var binaries = map[string]binary{
	"+":   total(integer.Int.Add),
	"-":   total(integer.Int.Sub),
	"*":   total(integer.Int.Mult),
	"/":   integer.Int.Div,
	"%":   integer.Int.Rem,
	"mod": integer.Int.Mod,
	"^":   integer.Int.Exp,
	"cmp": func(a, b integer.Int) (integer.Int, error) {
		return integer.New(int64(a.Cmp(b))), nil
	},
}

var unaries = map[string]func(a integer.Int) integer.Int{
	"neg": integer.Int.Negate,
	"abs": integer.Int.Abs,
}

// Eval runs the tokens of line against st. On error st holds whatever the
// tokens before the failing one left on it.
func Eval(line string, st *Stack) (err error) {
	for i, tok := range strings.Fields(line) {
		err = step(tok, st)
		if err != nil {
			return Error.New("token %d %q: %w", i, tok, err)
		}
	}

	return nil
}

func step(tok string, st *Stack) (err error) {
	if fn, ok := binaries[tok]; ok {
		xs, err := st.PopN(2)
		if err != nil {
			return err
		}

		x, err := fn(xs[0], xs[1])
		if err != nil {
			// Leave the operands in place.
			st.Push(xs[0])
			st.Push(xs[1])

			return err
		}

		st.Push(x)

		return nil
	}

	if fn, ok := unaries[tok]; ok {
		x, err := st.Pop()
		if err != nil {
			return err
		}

		st.Push(fn(x))

		return nil
	}

	switch tok {
	case "dup":
		x, ok := st.Top()
		if !ok {
			return ErrUnderflow
		}

		st.Push(x.Clone())
	case "drop":
		_, err = st.Pop()

		return err
	case "swap":
		xs, err := st.PopN(2)
		if err != nil {
			return err
		}

		st.Push(xs[1])
		st.Push(xs[0])
	default:
		x, err := integer.Parse(tok)
		if err != nil {
			return err
		}

		st.Push(x)
	}

	return nil
}

// Result is the outcome of evaluating one line with EvalAll.
type Result struct {
	Line  string
	Stack Stack
	Err   error
}

// EvalAll evaluates each line on its own empty stack using up to jobs
// goroutines. Results are in input order. A failing line only sets its own
// Err; the returned error is the context's error if ctx is done before every
// line has been evaluated.
func EvalAll(ctx context.Context, lines []string, jobs int) ([]Result, error) {
	results := make([]Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			st := Stack{}
			err := Eval(line, &st)

			results[i] = Result{
				Line:  line,
				Stack: st,
				Err:   err,
			}

			return nil
		})
	}

	return results, g.Wait()
}
