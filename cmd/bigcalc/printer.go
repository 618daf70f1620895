package main

import (
	"io"
	"os"

	"github.com/calebcase/oops"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/calebcase/bigint/integer"
	"github.com/calebcase/bigint/internal/config"
)

// printer writes results, highlighting negative values and failures when
// color is enabled.
type printer struct {
	w    io.Writer
	errW io.Writer

	neg  *color.Color
	fail *color.Color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func newPrinter(w, errW io.Writer, mode string) *printer {
	p := &printer{
		w:    w,
		errW: errW,
		neg:  color.New(color.FgRed),
		fail: color.New(color.FgRed, color.Bold),
	}

	enabled := mode == config.ColorOn || (mode == config.ColorAuto && isTerminal(w))
	for _, c := range []*color.Color{p.neg, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *printer) Int(x integer.Int) (err error) {
	if x.IsNegative() {
		_, err = p.neg.Fprintln(p.w, x.String())
	} else {
		_, err = io.WriteString(p.w, x.String()+"\n")
	}

	if err != nil {
		return oops.Trace(err)
	}

	return nil
}

func (p *printer) Fail(format string, args ...interface{}) {
	p.fail.Fprintf(p.errW, format+"\n", args...)
}
