// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package sat

import (
	"testing"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

func TestStatusString(t *testing.T) {
	for _, tc := range []struct {
		st   int
		want string
	}{
		{Sat, "SATISFIABLE"},
		{Unsat, "UNSATISFIABLE"},
		{Unknown, "UNKNOWN"},
	} {
		if got := StatusString(tc.st); got != tc.want {
			t.Errorf("StatusString(%d) = %q, want %q", tc.st, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "gini"} {
		s, e := New(name)
		if e != nil {
			t.Fatalf("New(%q): %v", name, e)
		}
		if s.Name() != "gini" {
			t.Errorf("New(%q).Name() = %q", name, s.Name())
		}
	}
	s, e := New("gophersat")
	if e != nil {
		t.Fatal(e)
	}
	if s.Name() != "gophersat" {
		t.Errorf("Name() = %q", s.Name())
	}
	if _, e := New("no-such-solver-anywhere"); e == nil {
		t.Error("unknown engine name resolved")
	}
}

func encodeRows(t *testing.T, rows [][]int) (*grid.Grid, *cnf.Encoding) {
	t.Helper()
	g, e := grid.FromRows(rows)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := cnf.Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	return g, enc
}

var satRows = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 2, 0, 0, 3},
	{0, 0, 0, 4, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 5, 0, 0},
	{4, 0, 1, 6, 0, 0, 0, 0, 0},
	{0, 0, 7, 1, 0, 0, 0, 0, 0},
	{0, 5, 0, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 8, 0, 0, 4, 0},
	{0, 3, 0, 9, 1, 0, 0, 0, 0},
}

// consistent clues with no completion: both blanks of row 0 need a 4
var unsatRows = [][]int{
	{0, 1, 2, 0},
	{3, 0, 0, 0},
	{0, 0, 0, 3},
	{0, 0, 0, 0},
}

// checkSat runs s on a satisfiable board and checks the decoded model.
func checkSat(t *testing.T, s Solver, rows [][]int) {
	t.Helper()
	g, enc := encodeRows(t, rows)
	res, e := s.Solve(enc, 0)
	if e != nil {
		t.Fatal(e)
	}
	if res.Status != Sat {
		t.Fatalf("%s: status %d, want %d", s.Name(), res.Status, Sat)
	}
	sol, e := enc.Map().Decode(res.Model)
	if e != nil {
		t.Fatalf("%s: decode: %v", s.Name(), e)
	}
	if !sol.Solved() {
		t.Fatalf("%s: decoded board not solved", s.Name())
	}
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if g.At(r, c) != 0 && sol.At(r, c) != g.At(r, c) {
				t.Fatalf("%s: clue (%d,%d) changed", s.Name(), r, c)
			}
		}
	}
}

// checkUnsat runs s on a board with no completion.
func checkUnsat(t *testing.T, s Solver, rows [][]int) {
	t.Helper()
	_, enc := encodeRows(t, rows)
	res, e := s.Solve(enc, 0)
	if e != nil {
		t.Fatal(e)
	}
	if res.Status != Unsat {
		t.Fatalf("%s: status %d, want %d", s.Name(), res.Status, Unsat)
	}
	if res.Model != nil {
		t.Fatalf("%s: unsat result carries a model", s.Name())
	}
}
