// Package trace records the progress of a sampling run as a tab
// separated table, one row per report.
package trace

import (
	"bufio"
	"fmt"
	"os"

	"github.com/unixpickle/essentials"

	"github.com/bobonovski/bhmm/model"
)

const header = "iteration\taccuracy\tlikelihood\tvi\ttemperature\n"

// Writer appends progress rows to a file. The first write error is
// kept and returned by Close.
type Writer struct {
	f   *os.File
	w   *bufio.Writer
	err error
}

func Create(fn string) (*Writer, error) {
	f, err := os.Create(fn)
	if err != nil {
		return nil, essentials.AddCtx("create trace", err)
	}
	w := &Writer{f: f, w: bufio.NewWriter(f)}
	_, w.err = w.w.WriteString(header)
	return w, nil
}

// Record writes one row. It matches the model.Options.OnProgress signature.
func (w *Writer) Record(p model.Progress) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, "%d\t%f\t%f\t%f\t%f\n",
		p.Iteration, p.Accuracy, p.Likelihood, p.VI, p.Temperature)
	if w.err == nil {
		w.err = w.w.Flush()
	}
}

func (w *Writer) Close() (err error) {
	defer essentials.AddCtxTo("close trace", &err)
	if w.err == nil {
		w.err = w.w.Flush()
	}
	if cerr := w.f.Close(); w.err == nil {
		w.err = cerr
	}
	return w.err
}
