// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Read parses the puzzle text format: a "SIZE n" header, a "PUZZLE"
// marker, then n rows of n space separated integers with 0 marking empty
// cells.  Blank lines are skipped anywhere.  A trailing "SOLUTION" block
// is ignored.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<20)
	var g *Grid
	row, reading := 0, false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch {
		case g == nil:
			fs := strings.Fields(line)
			if len(fs) != 2 || fs[0] != "SIZE" {
				return nil, fmt.Errorf("bad header %q: want \"SIZE n\"", line)
			}
			n, e := strconv.Atoi(fs[1])
			if e != nil {
				return nil, fmt.Errorf("bad size %q: %w", fs[1], e)
			}
			if g, e = New(n); e != nil {
				return nil, e
			}
		case line == "PUZZLE":
			reading = true
		case line == "SOLUTION":
			reading = false
		case reading && row < g.N:
			fs := strings.Fields(line)
			if len(fs) != g.N {
				return nil, fmt.Errorf("row %d: got %d cells, want %d", row, len(fs), g.N)
			}
			for c, f := range fs {
				v, e := strconv.Atoi(f)
				if e != nil {
					return nil, fmt.Errorf("row %d: bad cell %q: %w", row, f, e)
				}
				if v < 0 || v > g.N {
					return nil, fmt.Errorf("cell (%d,%d): value %d out of range [0,%d]", row, c, v, g.N)
				}
				g.Cells[row*g.N+c] = v
			}
			row++
		}
	}
	if e := sc.Err(); e != nil {
		return nil, e
	}
	if g == nil {
		return nil, fmt.Errorf("no SIZE header")
	}
	if row != g.N {
		return nil, fmt.Errorf("got %d rows, want %d", row, g.N)
	}
	return g, nil
}

// ReadFile reads a puzzle from path.
func ReadFile(path string) (*Grid, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()
	g, e := Read(f)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return g, nil
}

// Write writes g in the puzzle text format.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "SIZE %d\n", g.N)
	fmt.Fprintln(bw, "PUZZLE")
	bw.WriteString(g.String())
	return bw.Flush()
}

// WriteFile writes g to path in the puzzle text format.
func WriteFile(path string, g *Grid) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	if e = Write(f, g); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}

// WriteSolution writes a solution artifact: size, solve time, method, and
// status lines, then the solved rows under a SOLUTION marker when g is non
// nil.  status is one of SOLVED, UNSOLVABLE, TIMEOUT.
func WriteSolution(w io.Writer, g *Grid, n int, method, status string, d time.Duration) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "SIZE %d\n", n)
	fmt.Fprintf(bw, "SOLVE_TIME_SEC %.6f\n", d.Seconds())
	fmt.Fprintf(bw, "METHOD %s\n", method)
	fmt.Fprintf(bw, "STATUS %s\n", status)
	if g != nil {
		fmt.Fprintln(bw, "SOLUTION")
		bw.WriteString(g.String())
	}
	return bw.Flush()
}
