package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/internal/calc"
)

const maxLine = 64 << 20

func newEvalCmd(a *app) *cobra.Command {
	var (
		jobs  int
		state string
	)

	cmd := &cobra.Command{
		Use:   "eval [EXPR...]",
		Short: "Evaluate reverse Polish notation",
		Long: `Evaluate reverse Polish notation.

With arguments, they are joined into one program and the final stack is
printed, bottom first. With --state the stack is loaded from and saved back
to a file, so successive invocations build on each other.

Without arguments, each line of standard input is an independent program
(blank lines and lines starting with # are skipped) and the top of each
final stack is printed. Lines are evaluated in parallel.

Separate programs that start with a negative number with --:

  bigcalc eval -- -2 3 '*'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Jobs
			}

			if !cmd.Flags().Changed("state") {
				state = a.cfg.State
			}

			if len(args) > 0 {
				return evalArgs(a, strings.Join(args, " "), state)
			}

			return evalLines(cmd, a, jobs)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "lines evaluated in parallel (default from config)")
	cmd.Flags().StringVar(&state, "state", "", "stack state file (default from config)")

	return cmd
}

func loadState(path string) (st calc.Stack, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return calc.Stack{}, nil
	}
	if err != nil {
		return nil, oops.Trace(err)
	}
	defer f.Close()

	return calc.Load(f)
}

func saveState(path string, st calc.Stack) error {
	return replaceFile(path, func(w io.Writer) error {
		return calc.Save(w, st)
	})
}

// replaceFile writes a sibling temporary file and renames it over path, so
// path keeps its old contents if write fails.
func replaceFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return oops.Trace(err)
	}

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	err = write(f)
	if err != nil {
		return err
	}

	err = f.Close()
	if err != nil {
		return oops.Trace(err)
	}

	err = os.Rename(f.Name(), path)
	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

func evalArgs(a *app, program, state string) (err error) {
	st := calc.Stack{}

	if state != "" {
		st, err = loadState(state)
		if err != nil {
			return err
		}
	}

	err = calc.Eval(program, &st)
	if err != nil {
		return err
	}

	for _, x := range st {
		err = a.out.Int(x)
		if err != nil {
			return err
		}
	}

	if state != "" {
		return saveState(state, st)
	}

	return nil
}

func readLines(r io.Reader) (lines []string, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	err = s.Err()
	if err != nil {
		return nil, oops.Trace(err)
	}

	return lines, nil
}

func evalLines(cmd *cobra.Command, a *app, jobs int) error {
	lines, err := readLines(cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results, err := calc.EvalAll(ctx, lines, jobs)
	if err != nil {
		return err
	}

	failed := 0

	for _, res := range results {
		if res.Err != nil {
			failed++
			a.out.Fail("%s: %v", res.Line, res.Err)

			continue
		}

		top, ok := res.Stack.Top()
		if !ok {
			failed++
			a.out.Fail("%s: empty stack", res.Line)

			continue
		}

		err = a.out.Int(top)
		if err != nil {
			return err
		}
	}

	if failed > 0 {
		return Error.New("%d of %d lines failed", failed, len(results))
	}

	return nil
}
