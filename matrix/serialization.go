package matrix

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/unixpickle/essentials"
)

// The serialized form is a text file whose first line holds the shape
// "rows,cols" followed by one "row,col,value" line per nonzero element.

// serialize count table to file
func Uint32Serialize(m *Uint32Matrix, fn string) (err error) {
	defer essentials.AddCtxTo("serialize "+fn, &err)
	r, c := m.Shape()
	return writeSparse(fn, r, c, func(ridx, cidx uint32) (string, bool) {
		val := m.Get(ridx, cidx)
		return strconv.FormatUint(uint64(val), 10), val > 0
	})
}

// serialize real valued table to file
func Float64Serialize(m *Float64Matrix, fn string) (err error) {
	defer essentials.AddCtxTo("serialize "+fn, &err)
	r, c := m.Shape()
	return writeSparse(fn, r, c, func(ridx, cidx uint32) (string, bool) {
		val := m.Get(ridx, cidx)
		return strconv.FormatFloat(val, 'e', -1, 64), val != 0
	})
}

// deserialize count table from file
func Uint32Deserialize(fn string) (m *Uint32Matrix, err error) {
	defer essentials.AddCtxTo("deserialize "+fn, &err)
	err = readSparse(fn,
		func(r, c uint32) { m = NewUint32Matrix(r, c) },
		func(ridx, cidx uint32, txt string) error {
			val, err := strconv.ParseUint(txt, 10, 32)
			if err != nil {
				return err
			}
			m.Set(ridx, cidx, uint32(val))
			return nil
		})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// deserialize real valued table from file
func Float64Deserialize(fn string) (m *Float64Matrix, err error) {
	defer essentials.AddCtxTo("deserialize "+fn, &err)
	err = readSparse(fn,
		func(r, c uint32) { m = NewFloat64Matrix(r, c) },
		func(ridx, cidx uint32, txt string) error {
			val, err := strconv.ParseFloat(txt, 64)
			if err != nil {
				return err
			}
			m.Set(ridx, cidx, val)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func writeSparse(fn string, r, c uint32, cell func(r, c uint32) (string, bool)) error {
	out, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	// write the matrix shape
	fmt.Fprintf(w, "%d,%d\n", r, c)

	nonzero := 0
	for ridx := uint32(0); ridx < r; ridx += 1 {
		for cidx := uint32(0); cidx < c; cidx += 1 {
			if val, ok := cell(ridx, cidx); ok { // only write out nonzero value
				fmt.Fprintf(w, "%d,%d,%s\n", ridx, cidx, val)
				nonzero += 1
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.V(1).Infof("wrote %dx%d matrix with %d nonzero cells to %s", r, c, nonzero, fn)
	return out.Close()
}

func readSparse(fn string, shape func(r, c uint32), cell func(r, c uint32, val string) error) error {
	file, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer file.Close()

	var nrow, ncol uint32
	lineIdx := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		txt := scanner.Text()
		lineIdx += 1
		if lineIdx == 1 {
			vals := strings.Split(txt, ",")
			if len(vals) != 2 {
				return fmt.Errorf("%w: shape not found: %s", ErrCorrupted, txt)
			}
			row, err := strconv.ParseUint(vals[0], 10, 32)
			if err != nil {
				return err
			}
			col, err := strconv.ParseUint(vals[1], 10, 32)
			if err != nil {
				return err
			}
			if row == 0 || col == 0 {
				return ErrBadShape
			}
			nrow, ncol = uint32(row), uint32(col)
			shape(nrow, ncol)
			continue
		}

		vals := strings.Split(txt, ",")
		if len(vals) != 3 {
			return fmt.Errorf("%w: line %d: %s", ErrCorrupted, lineIdx, txt)
		}
		ridx, err := strconv.ParseUint(vals[0], 10, 32)
		if err != nil {
			return err
		}
		cidx, err := strconv.ParseUint(vals[1], 10, 32)
		if err != nil {
			return err
		}
		if uint32(ridx) >= nrow || uint32(cidx) >= ncol {
			return fmt.Errorf("%w: line %d: cell (%d, %d) outside %dx%d",
				ErrCorrupted, lineIdx, ridx, cidx, nrow, ncol)
		}
		if err := cell(uint32(ridx), uint32(cidx), vals[2]); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if lineIdx == 0 {
		return fmt.Errorf("%w: empty file", ErrCorrupted)
	}
	return nil
}
