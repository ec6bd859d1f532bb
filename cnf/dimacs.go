// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDIMACS writes the reduced formula in dimacs cnf format.  source
// names the board in a leading comment when non empty.
func WriteDIMACS(w io.Writer, enc *Encoding, source string) error {
	bw := bufio.NewWriter(w)
	if source != "" {
		fmt.Fprintf(bw, "c %s\n", source)
	}
	fmt.Fprintf(bw, "c reduced sudoku encoding, size %d\n", enc.N)
	fmt.Fprintf(bw, "c %d variables %d clauses\n", enc.Vars, len(enc.Clauses))
	fmt.Fprintf(bw, "p cnf %d %d\n", enc.Vars, len(enc.Clauses))
	var buf []byte
	for _, cl := range enc.Clauses {
		buf = buf[:0]
		for _, m := range cl {
			buf = strconv.AppendInt(buf, int64(m), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, e := bw.Write(buf); e != nil {
			return e
		}
	}
	return bw.Flush()
}

// WriteMap writes the sidecar that accompanies a dimacs file: a header,
// one v line per variable with its atom, and one f line per fixed cell.
// The sidecar alone suffices to decode a model back into a full board.
func WriteMap(w io.Writer, m *VarMap) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "map %d %d %d\n", m.N, len(m.Atoms), len(m.Fixed))
	for i, a := range m.Atoms {
		fmt.Fprintf(bw, "v %d %d %d %d\n", i+1, a.Row, a.Col, a.Val)
	}
	for _, a := range m.Fixed {
		fmt.Fprintf(bw, "f %d %d %d\n", a.Row, a.Col, a.Val)
	}
	return bw.Flush()
}

// ReadMap parses a sidecar written by WriteMap.
func ReadMap(r io.Reader) (*VarMap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	if !sc.Scan() {
		if e := sc.Err(); e != nil {
			return nil, e
		}
		return nil, fmt.Errorf("empty sidecar")
	}
	var n, vars, fixed int
	if _, e := fmt.Sscanf(sc.Text(), "map %d %d %d", &n, &vars, &fixed); e != nil {
		return nil, fmt.Errorf("bad sidecar header %q: %w", sc.Text(), e)
	}
	m := &VarMap{N: n, Atoms: make([]Atom, 0, vars), Fixed: make([]Atom, 0, fixed)}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fs := strings.Fields(line)
		switch {
		case fs[0] == "v" && len(fs) == 5:
			idx, e := atoi4(fs[1:])
			if e != nil {
				return nil, fmt.Errorf("bad v line %q: %w", line, e)
			}
			if idx[0] != len(m.Atoms)+1 {
				return nil, fmt.Errorf("v line out of order: got %d, want %d", idx[0], len(m.Atoms)+1)
			}
			m.Atoms = append(m.Atoms, Atom{Row: idx[1], Col: idx[2], Val: idx[3]})
		case fs[0] == "f" && len(fs) == 4:
			idx, e := atoi4(fs[1:])
			if e != nil {
				return nil, fmt.Errorf("bad f line %q: %w", line, e)
			}
			m.Fixed = append(m.Fixed, Atom{Row: idx[0], Col: idx[1], Val: idx[2]})
		default:
			return nil, fmt.Errorf("bad sidecar line %q", line)
		}
	}
	if e := sc.Err(); e != nil {
		return nil, e
	}
	if len(m.Atoms) != vars {
		return nil, fmt.Errorf("sidecar lists %d variables, header says %d", len(m.Atoms), vars)
	}
	if len(m.Fixed) != fixed {
		return nil, fmt.Errorf("sidecar lists %d fixed cells, header says %d", len(m.Fixed), fixed)
	}
	return m, nil
}

func atoi4(fs []string) ([4]int, error) {
	var out [4]int
	for i, f := range fs {
		v, e := strconv.Atoi(f)
		if e != nil {
			return out, e
		}
		out[i] = v
	}
	return out, nil
}
