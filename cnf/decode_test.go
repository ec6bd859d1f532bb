// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package cnf

import (
	"strings"
	"testing"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/bt"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// modelOf lists the true variables of enc under the complete board sol.
func modelOf(t *testing.T, enc *Encoding, sol *grid.Grid) []int {
	t.Helper()
	var model []int
	for v := 1; v <= enc.Vars; v++ {
		a := enc.AtomOf(v)
		if sol.At(a.Row, a.Col) == a.Val {
			model = append(model, v)
		}
	}
	return model
}

func solve(t *testing.T, rows [][]int) (*grid.Grid, *grid.Grid) {
	t.Helper()
	g, e := grid.FromRows(rows)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	sol := g.Clone()
	s, e := bt.New(sol, ps)
	if e != nil {
		t.Fatal(e)
	}
	if st := s.Try(time.Minute); st != bt.Solved {
		t.Fatalf("reference solve ended %s", st)
	}
	return g, sol
}

func TestDecodeRoundTrip(t *testing.T) {
	g, sol := solve(t, royle17)
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	got, e := enc.Map().Decode(modelOf(t, enc, sol))
	if e != nil {
		t.Fatal(e)
	}
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if got.At(r, c) != sol.At(r, c) {
				t.Fatalf("cell (%d,%d): decoded %d, solved %d", r, c, got.At(r, c), sol.At(r, c))
			}
			if g.At(r, c) != 0 && got.At(r, c) != g.At(r, c) {
				t.Fatalf("clue (%d,%d) changed", r, c)
			}
		}
	}
}

func TestDecodeSignedModel(t *testing.T) {
	g, sol := solve(t, royle17)
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	truth := make(map[int]bool, enc.Vars)
	for _, v := range modelOf(t, enc, sol) {
		truth[v] = true
	}
	signed := make([]int, 0, enc.Vars)
	for v := 1; v <= enc.Vars; v++ {
		if truth[v] {
			signed = append(signed, v)
		} else {
			signed = append(signed, -v)
		}
	}
	got, e := enc.Map().Decode(signed)
	if e != nil {
		t.Fatal(e)
	}
	if !got.Solved() {
		t.Error("signed model did not decode to a solved board")
	}
}

func TestDecodeEmptyModel(t *testing.T) {
	enc := mustEncode(t, royle17)
	_, e := enc.Map().Decode(nil)
	if e == nil || !strings.Contains(e.Error(), "empty") {
		t.Errorf("empty model error = %v", e)
	}
}

func TestDecodeConflictingModel(t *testing.T) {
	g, sol := solve(t, royle17)
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	model := modelOf(t, enc, sol)
	extra := 0
	for v := 1; v <= enc.Vars; v++ {
		a := enc.AtomOf(v)
		if sol.At(a.Row, a.Col) != a.Val {
			extra = v
			break
		}
	}
	if extra == 0 {
		t.Fatal("no off-solution variable found")
	}
	if _, e := enc.Map().Decode(append(model, extra)); e == nil {
		t.Error("conflicting model decoded")
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	enc := mustEncode(t, singleClue4)
	if _, e := enc.Map().Decode([]int{enc.Vars + 1}); e == nil {
		t.Error("out of range literal accepted")
	}
}
